package repositories

import (
	"AyurCare/cache"
	"AyurCare/models"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

const (
	UserCacheExpiry = 24 * time.Hour
)

type UserRepository interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	GetUserWithPassword(ctx context.Context, email string) (*models.User, error)
	ValidateRoleID(ctx context.Context, roleID int64) error
	UpdateUserEmail(ctx context.Context, userID int64, newEmail string) error
	UpdateUserPassword(ctx context.Context, userID int64, hashedPassword string) error
	GetAllUsers(ctx context.Context, clinicID string) ([]models.User, error)
	DeleteUserCache(ctx context.Context, identifier string) error
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
	UpdateUserProfile(ctx context.Context, userID int64, username, email string) error
	DeleteUser(ctx context.Context, userID int64) error
}

type userRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewUserRepository(db *gorm.DB, cache *cache.Cache) UserRepository {
	return &userRepository{db: db, cache: cache}
}

func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return count > 0, nil
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getUser(ctx, "username = ?", username, username)
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getUser(ctx, "email = ?", email, email)
}

func (r *userRepository) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	return r.getUser(ctx, "id = ?", userID, fmt.Sprintf("%d", userID))
}

// getUser loads a user through the cache. The password column is never
// selected here; authentication goes through GetUserWithPassword.
func (r *userRepository) getUser(ctx context.Context, condition string, value interface{}, cacheID string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.userCacheKey(cacheID)
	var cached models.User
	if err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Printf("Failed to get user from cache: %v", err)
	}

	var user models.User
	err := r.db.Select("id, clinic_id, username, email, role_id, patient_id, created_at").
		Preload("Role", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, description")
		}).
		Where(condition, value).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if err := r.cache.SetJSON(ctx, cacheKey, user, UserCacheExpiry); err != nil {
		log.Printf("Failed to set user in cache: %v", err)
	}

	return &user, nil
}

// GetUserWithPassword loads the user including the password hash for
// credential verification. Never cached.
func (r *userRepository) GetUserWithPassword(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.Select("id, clinic_id, username, email, password, role_id, patient_id, created_at").
		Preload("Role", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, description")
		}).
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("invalid email or password")
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ValidateRoleID(ctx context.Context, roleID int64) error {
	var count int64
	err := r.db.Model(&models.Role{}).Where("id = ?", roleID).Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to validate role ID: %w", err)
	}
	if count == 0 {
		return errors.New("role does not exist")
	}
	return nil
}

func (r *userRepository) UpdateUserEmail(ctx context.Context, userID int64, newEmail string) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).Update("email", newEmail).Error
}

func (r *userRepository) UpdateUserPassword(ctx context.Context, userID int64, hashedPassword string) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).Update("password", hashedPassword).Error
}

func (r *userRepository) GetAllUsers(ctx context.Context, clinicID string) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var users []models.User
	err := r.db.Select("id, clinic_id, username, email, role_id, patient_id, created_at").
		Preload("Role", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, description")
		}).
		Where("clinic_id = ?", clinicID).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) DeleteUserCache(ctx context.Context, identifier string) error {
	return r.cache.Delete(ctx, r.userCacheKey(identifier))
}

func (r *userRepository) UpdateUserProfile(ctx context.Context, userID int64, username, email string) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"username": username,
		"email":    email,
	}).Error
}

func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	return r.db.Delete(&models.User{}, userID).Error
}

func (r *userRepository) userCacheKey(identifier string) string {
	return fmt.Sprintf("user_cache:%s", identifier)
}
