package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	companyhandler "staffdir-system/internal/services/company/handler"
)

type CompanyHTTPHandler struct {
	companies *companyhandler.CompanyHandler
}

func NewCompanyHTTPHandler(companies *companyhandler.CompanyHandler) *CompanyHTTPHandler {
	return &CompanyHTTPHandler{
		companies: companies,
	}
}

// Rates arrive as text and are parsed by the service so a bad value is
// reported per field instead of failing the whole bind.
type CreateCompanyRequest struct {
	Name string `json:"name" binding:"required"`
	TA   string `json:"ta" binding:"required"`
	DA   string `json:"da" binding:"required"`
	HRA  string `json:"hra" binding:"required"`
	PF   string `json:"pf" binding:"required"`
}

func (h *CompanyHTTPHandler) CreateCompany(c *gin.Context) {
	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	company, err := h.companies.CreateCompany(ctx, companyhandler.CreateCompanyInput{
		Name: req.Name,
		TA:   req.TA,
		DA:   req.DA,
		HRA:  req.HRA,
		PF:   req.PF,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse("company created successfully", company))
}

func (h *CompanyHTTPHandler) ListCompanies(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	companies, err := h.companies.ListCompanies(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse("companies retrieved successfully", companies))
}

func (h *CompanyHTTPHandler) GetCompany(c *gin.Context) {
	companyID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid company ID"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	company, err := h.companies.GetCompany(ctx, companyID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse("company retrieved successfully", company))
}
