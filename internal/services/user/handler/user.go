package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"mime/multipart"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"staffdir-system/internal/apperr"
	"staffdir-system/internal/database/models"
	"staffdir-system/internal/salary"
	"staffdir-system/internal/storage"
)

const (
	USER_CACHE_PREFIX   = "user:"
	USER_LIST_CACHE_KEY = "users:list"
	CACHE_TTL_SHORT     = 5 * time.Minute
)

type UserHandler struct {
	db    *gorm.DB
	redis *redis.Client
	files *storage.FileStore
}

func NewUserHandler(db *gorm.DB, redisClient *redis.Client, files *storage.FileStore) *UserHandler {
	return &UserHandler{
		db:    db,
		redis: redisClient,
		files: files,
	}
}

type CreateUserInput struct {
	Name       string
	Email      string
	CompanyID  int64
	BaseSalary string
	ProfilePic *multipart.FileHeader
}

// UpdateUserInput mirrors the edit form: company and salary arrive as the
// values already on the record and are stored as submitted, never recomputed.
type UpdateUserInput struct {
	Name       string
	Email      string
	CompanyID  int64
	Salary     string
	ProfilePic *multipart.FileHeader
}

type ListUsersQuery struct {
	Page     int
	PageSize int
}

// CreateUser resolves the company, computes the net salary once, stores the
// upload if present and persists the record.
func (s *UserHandler) CreateUser(ctx context.Context, input CreateUserInput) (*models.User, error) {
	var company models.Company
	if err := s.db.WithContext(ctx).First(&company, input.CompanyID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.ErrCompanyNotFound
		}
		return nil, err
	}

	netSalary, err := salary.Net(input.BaseSalary, company)
	if err != nil {
		return nil, err
	}

	var existing models.User
	if err := s.db.WithContext(ctx).Where("email = ?", input.Email).First(&existing).Error; err == nil {
		return nil, apperr.ErrEmailTaken
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	profilePic := ""
	if input.ProfilePic != nil {
		ref, err := s.files.Save(input.ProfilePic)
		if err != nil {
			return nil, err
		}
		profilePic = ref
	}

	user := models.User{
		Name:       input.Name,
		Email:      input.Email,
		ProfilePic: profilePic,
		Salary:     netSalary,
		CompanyID:  company.ID,
	}

	if err := s.db.WithContext(ctx).Omit("Company").Create(&user).Error; err != nil {
		if profilePic != "" {
			if rmErr := s.files.Remove(profilePic); rmErr != nil {
				log.Printf("Error removing orphaned upload %s: %v", profilePic, rmErr)
			}
		}
		return nil, err
	}

	user.Company = company
	s.InvalidateUserCaches(ctx)

	return &user, nil
}

func (s *UserHandler) GetUser(ctx context.Context, id int64) (*models.User, error) {
	cacheKey := fmt.Sprintf("%s%d", USER_CACHE_PREFIX, id)

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Bytes(); err == nil {
			var user models.User
			if err := json.Unmarshal(cached, &user); err == nil {
				return &user, nil
			}
		}
	}

	var user models.User
	if err := s.db.WithContext(ctx).Preload("Company").First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.ErrUserNotFound
		}
		return nil, err
	}

	if s.redis != nil {
		if payload, err := json.Marshal(user); err == nil {
			_ = s.redis.Set(ctx, cacheKey, payload, CACHE_TTL_SHORT)
		}
	}

	return &user, nil
}

// ListUsers returns directory entries newest first with the company
// populated on each.
func (s *UserHandler) ListUsers(ctx context.Context, query ListUsersQuery) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	q := s.db.WithContext(ctx).Model(&models.User{}).Preload("Company")

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	pageSize := query.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	pageNumber := query.Page
	if pageNumber <= 0 {
		pageNumber = 1
	}

	offset := (pageNumber - 1) * pageSize
	if err := q.Order("created_at DESC, id DESC").Offset(offset).Limit(pageSize).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// UpdateUser stores a new profile picture before dropping the old one, so a
// failed write never leaves the record without a readable image. Deleting
// the old file is best-effort.
func (s *UserHandler) UpdateUser(ctx context.Context, id int64, input UpdateUserInput) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.ErrUserNotFound
		}
		return nil, err
	}

	if input.Email != user.Email {
		var existing models.User
		if err := s.db.WithContext(ctx).Where("email = ? AND id <> ?", input.Email, id).First(&existing).Error; err == nil {
			return nil, apperr.ErrEmailTaken
		} else if err != gorm.ErrRecordNotFound {
			return nil, err
		}
	}

	if input.ProfilePic != nil {
		ref, err := s.files.Save(input.ProfilePic)
		if err != nil {
			return nil, err
		}
		oldRef := user.ProfilePic
		user.ProfilePic = ref
		if oldRef != "" {
			if err := s.files.Remove(oldRef); err != nil {
				log.Printf("Error deleting old profile picture %s: %v", oldRef, err)
			}
		}
	}

	user.Name = input.Name
	user.Email = input.Email
	user.CompanyID = input.CompanyID
	user.Salary = input.Salary

	if err := s.db.WithContext(ctx).Omit("Company").Save(&user).Error; err != nil {
		return nil, err
	}

	s.db.WithContext(ctx).First(&user.Company, user.CompanyID)

	s.InvalidateUserCaches(ctx, user.ID)

	return &user, nil
}

// DeleteUser removes the record and best-effort deletes its stored file.
func (s *UserHandler) DeleteUser(ctx context.Context, id int64) error {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperr.ErrUserNotFound
		}
		return err
	}

	if user.ProfilePic != "" {
		if err := s.files.Remove(user.ProfilePic); err != nil {
			log.Printf("Error deleting profile picture %s: %v", user.ProfilePic, err)
		}
	}

	if err := s.db.WithContext(ctx).Delete(&models.User{}, id).Error; err != nil {
		return err
	}

	s.InvalidateUserCaches(ctx, id)

	return nil
}

func (s *UserHandler) InvalidateUserCaches(ctx context.Context, userIDs ...int64) {
	if s.redis == nil {
		return
	}

	_ = s.redis.Del(ctx, USER_LIST_CACHE_KEY)

	for _, id := range userIDs {
		cacheKey := fmt.Sprintf("%s%d", USER_CACHE_PREFIX, id)
		_ = s.redis.Del(ctx, cacheKey)
	}
}
