package handler

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"staffdir-system/internal/apperr"
	"staffdir-system/internal/database/models"
)

const (
	COMPANY_LIST_CACHE_KEY = "companies:list"
	CACHE_TTL_MEDIUM       = 30 * time.Minute
)

var rateCap = decimal.NewFromFloat(100.00)

type CompanyHandler struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewCompanyHandler(db *gorm.DB, redisClient *redis.Client) *CompanyHandler {
	return &CompanyHandler{
		db:    db,
		redis: redisClient,
	}
}

// CreateCompanyInput carries the raw form values; rates are validated and
// parsed here, not at the transport layer.
type CreateCompanyInput struct {
	Name string
	TA   string
	DA   string
	HRA  string
	PF   string
}

// validate checks every field and reports all violations together so the
// client can render per-field feedback.
func (in CreateCompanyInput) validate() apperr.Violations {
	v := apperr.Violations{}

	if strings.TrimSpace(in.Name) == "" {
		v["name"] = "name is required"
	}

	rates := map[string]string{"ta": in.TA, "da": in.DA, "hra": in.HRA, "pf": in.PF}
	for field, raw := range rates {
		rate, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			v[field] = "must be a number"
			continue
		}
		// Capped at 100.00; no lower bound.
		if rate.GreaterThan(rateCap) {
			v[field] = "must not exceed 100.00"
		}
	}

	return v
}

func (s *CompanyHandler) CreateCompany(ctx context.Context, input CreateCompanyInput) (*models.Company, error) {
	if v := input.validate(); !v.Empty() {
		return nil, v
	}

	company := models.Company{
		Name: strings.TrimSpace(input.Name),
		TA:   strings.TrimSpace(input.TA),
		DA:   strings.TrimSpace(input.DA),
		HRA:  strings.TrimSpace(input.HRA),
		PF:   strings.TrimSpace(input.PF),
	}

	if err := s.db.WithContext(ctx).Create(&company).Error; err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)

	return &company, nil
}

func (s *CompanyHandler) GetCompany(ctx context.Context, id int64) (*models.Company, error) {
	var company models.Company
	if err := s.db.WithContext(ctx).First(&company, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (s *CompanyHandler) ListCompanies(ctx context.Context) ([]models.Company, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, COMPANY_LIST_CACHE_KEY).Bytes(); err == nil {
			var companies []models.Company
			if err := json.Unmarshal(cached, &companies); err == nil {
				return companies, nil
			}
		}
	}

	var companies []models.Company
	if err := s.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&companies).Error; err != nil {
		return nil, err
	}

	if s.redis != nil {
		if payload, err := json.Marshal(companies); err == nil {
			_ = s.redis.Set(ctx, COMPANY_LIST_CACHE_KEY, payload, CACHE_TTL_MEDIUM)
		}
	}

	return companies, nil
}

func (s *CompanyHandler) invalidateListCache(ctx context.Context) {
	if s.redis != nil {
		_ = s.redis.Del(ctx, COMPANY_LIST_CACHE_KEY)
	}
}
