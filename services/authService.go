package services

import (
	"AyurCare/database"
	"AyurCare/models"
	"AyurCare/repositories"
	"AyurCare/utils"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

type UserService interface {
	ValidateAndCreateUser(ctx context.Context, user *models.User) error
	AuthenticateUser(ctx context.Context, email, password string) (*models.User, error)
	UpdateUserEmail(ctx context.Context, userID int64, newEmail string) error
	ChangePassword(ctx context.Context, email, resetCode, newPassword string) error
	GetAllUsers(ctx context.Context, clinicID string) ([]models.User, error)
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUserProfile(ctx context.Context, userID int64, username, email string) error
	DeleteUser(ctx context.Context, userID int64) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) ValidateAndCreateUser(ctx context.Context, user *models.User) error {
	lockKey := fmt.Sprintf("user_lock:%s", user.Email)
	lockValue := uuid.New().String()
	locked, err := database.NewLock(ctx, lockKey, lockValue, time.Minute)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return errors.New("failed to acquire lock")
	}
	defer func() {
		if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	if err := utils.ValidateUserData(*user); err != nil {
		return fmt.Errorf("invalid user data: %w", err)
	}

	if exists, err := s.userRepo.EmailExists(ctx, user.Email); err != nil || exists {
		return errors.New("email already registered")
	}

	if err := s.userRepo.ValidateRoleID(ctx, user.RoleID); err != nil {
		return fmt.Errorf("invalid role ID: %w", err)
	}

	hashedPassword, err := utils.HashPassword(user.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = hashedPassword

	return s.userRepo.CreateUser(ctx, user)
}

func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetUserWithPassword(ctx, email)
	if err != nil {
		return nil, err
	}
	if err := utils.VerifyPassword(user.Password, password); err != nil {
		return nil, errors.New("invalid email or password")
	}
	user.Password = ""
	return user, nil
}

func (s *userService) UpdateUserEmail(ctx context.Context, userID int64, newEmail string) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil || user == nil {
		return errors.New("user not found")
	}
	if err := s.userRepo.UpdateUserEmail(ctx, userID, newEmail); err != nil {
		return err
	}
	// Drop every cache entry that may hold the stale address.
	for _, key := range []string{user.Email, user.Username, fmt.Sprintf("%d", userID)} {
		if err := s.userRepo.DeleteUserCache(ctx, key); err != nil {
			log.Printf("Failed to delete user cache: %v", err)
		}
	}
	return nil
}

// ChangePassword verifies the emailed reset code and stores the new hash.
func (s *userService) ChangePassword(ctx context.Context, email, resetCode, newPassword string) error {
	if err := utils.ValidatePasswordReset(resetCode, newPassword); err != nil {
		return err
	}

	stored, err := utils.GetResetCode(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to load reset code: %w", err)
	}
	if stored == nil || *stored != resetCode {
		return errors.New("invalid reset code")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil || user == nil {
		return errors.New("user not found")
	}

	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdateUserPassword(ctx, user.ID, hashedPassword); err != nil {
		return err
	}
	return utils.DeleteResetCode(ctx, email)
}

func (s *userService) GetAllUsers(ctx context.Context, clinicID string) ([]models.User, error) {
	return s.userRepo.GetAllUsers(ctx, clinicID)
}

func (s *userService) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.userRepo.GetUserByUsername(ctx, username)
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.userRepo.GetUserByEmail(ctx, email)
}

func (s *userService) UpdateUserProfile(ctx context.Context, userID int64, username, email string) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil || user == nil {
		return errors.New("user not found")
	}
	if err := s.userRepo.UpdateUserProfile(ctx, userID, username, email); err != nil {
		return err
	}
	for _, key := range []string{user.Email, user.Username, fmt.Sprintf("%d", userID)} {
		if err := s.userRepo.DeleteUserCache(ctx, key); err != nil {
			log.Printf("Failed to delete user cache: %v", err)
		}
	}
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, userID int64) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("user not found")
	}
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		return err
	}
	for _, key := range []string{user.Email, user.Username, fmt.Sprintf("%d", userID)} {
		if err := s.userRepo.DeleteUserCache(ctx, key); err != nil {
			log.Printf("Failed to delete user cache: %v", err)
		}
	}
	return nil
}
