package handlers

import (
	"AyurCare/models"
	"AyurCare/services"
	"AyurCare/utils"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	UserService services.UserService
}

func NewAuthHandler(userService services.UserService) *AuthHandler {
	return &AuthHandler{
		UserService: userService,
	}
}

// Helper function to extract token from URL query parameters
func extractAccessToken(c *gin.Context) (string, error) {
	token := c.DefaultQuery("accessToken", "")
	if token == "" {
		return "", fmt.Errorf("access token is required")
	}
	return token, nil
}

func claimsFromUser(user *models.User) utils.TokenClaims {
	claims := utils.TokenClaims{
		UserID:   strconv.FormatInt(user.ID, 10),
		Role:     user.Role.Name,
		ClinicID: user.ClinicID,
	}
	if user.PatientID != nil {
		claims.PatientID = *user.PatientID
	}
	return claims
}

// Register handles new user registration
func (h *AuthHandler) Register(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	if err := h.UserService.ValidateAndCreateUser(ctx, &user); err != nil {
		c.JSON(400, gin.H{"error": fmt.Sprintf("Validation failed: %v", err)})
		return
	}

	c.Status(201)
}

// Login authenticates the user and returns tokens along with user info
func (h *AuthHandler) Login(c *gin.Context) {
	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	user, err := h.UserService.AuthenticateUser(ctx, credentials.Email, credentials.Password)
	if err != nil {
		c.JSON(401, gin.H{"error": "Invalid email or password"})
		return
	}

	accessToken, refreshToken, err := utils.GenerateTokens(claimsFromUser(user))
	if err != nil {
		c.JSON(500, gin.H{"error": fmt.Sprintf("Failed to generate tokens: %v", err)})
		return
	}

	utils.SetAuthCookies(c, accessToken, refreshToken)
	c.JSON(200, gin.H{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
		"role":         user.Role.Name,
		"clinicId":     user.ClinicID,
	})
}

// RefreshToken refreshes the user's access token
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	token, err := extractAccessToken(c)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	claims, err := utils.ValidateToken(token)
	if err != nil {
		c.JSON(401, gin.H{"error": "Invalid access token"})
		return
	}

	accessToken, err := utils.GenerateAccessToken(*claims)
	if err != nil {
		c.JSON(500, gin.H{"error": fmt.Sprintf("Failed to generate access token: %v", err)})
		return
	}

	c.JSON(200, gin.H{
		"accessToken": accessToken,
	})
}

// Logoff logs the user out by clearing cookies
func (h *AuthHandler) Logoff(c *gin.Context) {
	utils.ClearAuthCookies(c)
	c.Status(200)
}

// DeleteAccount removes a user's account
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid user ID"})
		return
	}

	ctx := c.Request.Context()
	if err := h.UserService.DeleteUser(ctx, id); err != nil {
		c.JSON(500, gin.H{"error": fmt.Sprintf("Failed to delete user account: %v", err)})
		return
	}

	c.Status(200)
}

// SendResetCode sends a password reset code to the user's email
func (h *AuthHandler) SendResetCode(c *gin.Context) {
	var data struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	user, err := h.UserService.GetUserByEmail(ctx, data.Email)
	if err != nil || user == nil {
		c.JSON(404, gin.H{"error": "User not found"})
		return
	}

	code := utils.GenerateResetCode()
	if err := utils.SetResetCode(ctx, user.Email, code); err != nil {
		c.JSON(500, gin.H{"error": fmt.Sprintf("Failed to set reset code: %v", err)})
		return
	}

	if err := utils.SendResetCodeEmail(user.Email, code); err != nil {
		c.JSON(500, gin.H{"error": fmt.Sprintf("Failed to send reset code email: %v", err)})
		return
	}

	c.Status(200)
}

// ChangePassword updates the user's password after verifying the reset code
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var data struct {
		Email       string `json:"email"`
		Code        string `json:"code"`
		NewPassword string `json:"new_password"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	if err := h.UserService.ChangePassword(ctx, data.Email, data.Code, data.NewPassword); err != nil {
		c.JSON(401, gin.H{"error": fmt.Sprintf("Failed to change password: %v", err)})
		return
	}

	c.Status(200)
}

// ChangeEmail updates the user's email
func (h *AuthHandler) ChangeEmail(c *gin.Context) {
	token, err := extractAccessToken(c)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	claims, err := utils.ValidateToken(token)
	if err != nil {
		c.JSON(401, gin.H{"error": "Invalid access token"})
		return
	}

	var data struct {
		NewEmail string `json:"new_email"`
	}
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	ctx := c.Request.Context()
	userID, err := strconv.ParseInt(claims.UserID, 10, 64)
	if err != nil {
		c.JSON(500, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := h.UserService.UpdateUserEmail(ctx, userID, data.NewEmail); err != nil {
		c.JSON(500, gin.H{"error": fmt.Sprintf("Failed to change email: %v", err)})
		return
	}

	c.Status(200)
}

// GetUserProfile retrieves the current user's profile
func (h *AuthHandler) GetUserProfile(c *gin.Context) {
	token, err := extractAccessToken(c)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	claims, err := utils.ValidateToken(token)
	if err != nil {
		c.JSON(401, gin.H{"error": "Invalid access token"})
		return
	}

	ctx := c.Request.Context()
	userID, err := strconv.ParseInt(claims.UserID, 10, 64)
	if err != nil {
		c.JSON(500, gin.H{"error": "Invalid user ID"})
		return
	}

	user, err := h.UserService.GetUserByID(ctx, userID)
	if err != nil || user == nil {
		c.JSON(404, gin.H{"error": "User not found"})
		return
	}

	c.JSON(200, gin.H{"user": user})
}

// UpdateUserProfile updates the user's profile information
func (h *AuthHandler) UpdateUserProfile(c *gin.Context) {
	token, err := extractAccessToken(c)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	claims, err := utils.ValidateToken(token)
	if err != nil {
		c.JSON(401, gin.H{"error": "Invalid access token"})
		return
	}

	ctx := c.Request.Context()
	userID, err := strconv.ParseInt(claims.UserID, 10, 64)
	if err != nil {
		c.JSON(500, gin.H{"error": "Invalid user ID"})
		return
	}

	var updateData struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	if err := c.ShouldBindJSON(&updateData); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.UserService.UpdateUserProfile(ctx, userID, updateData.Username, updateData.Email); err != nil {
		c.JSON(500, gin.H{"error": fmt.Sprintf("Failed to update profile: %v", err)})
		return
	}

	c.Status(200)
}

// ManageUsers lists the users of the caller's clinic for the owner
func (h *AuthHandler) ManageUsers(c *gin.Context) {
	token, err := extractAccessToken(c)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	claims, err := utils.ValidateToken(token, models.RoleOwner)
	if err != nil {
		c.JSON(401, gin.H{"error": "Invalid access token"})
		return
	}

	ctx := c.Request.Context()
	users, err := h.UserService.GetAllUsers(ctx, claims.ClinicID)
	if err != nil {
		c.JSON(500, gin.H{"error": fmt.Sprintf("Failed to retrieve users: %v", err)})
		return
	}

	c.JSON(200, users)
}
