package handlers

import (
	"context"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	userhandler "staffdir-system/internal/services/user/handler"
)

type UserHTTPHandler struct {
	users *userhandler.UserHandler
}

func NewUserHTTPHandler(users *userhandler.UserHandler) *UserHTTPHandler {
	return &UserHTTPHandler{
		users: users,
	}
}

// CreateUserForm binds the multipart form from the create page. The salary
// field carries the operator-entered base salary; the stored value is the
// net salary computed by the service.
type CreateUserForm struct {
	Name       string                `form:"name" binding:"required"`
	Email      string                `form:"email" binding:"required,email"`
	Company    int64                 `form:"company" binding:"required"`
	Salary     string                `form:"salary" binding:"required"`
	ProfilePic *multipart.FileHeader `form:"profilePic"`
}

// UpdateUserForm carries the edit form; company and salary are submitted
// back unchanged by the client and stored as-is.
type UpdateUserForm struct {
	Name       string                `form:"name" binding:"required"`
	Email      string                `form:"email" binding:"required,email"`
	Company    int64                 `form:"company" binding:"required"`
	Salary     string                `form:"salary" binding:"required"`
	ProfilePic *multipart.FileHeader `form:"profilePic"`
}

type ListUsersQuery struct {
	Page     int `form:"page,default=1"`
	PageSize int `form:"page_size,default=10"`
}

func (h *UserHTTPHandler) CreateUser(c *gin.Context) {
	var form CreateUserForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	user, err := h.users.CreateUser(ctx, userhandler.CreateUserInput{
		Name:       form.Name,
		Email:      form.Email,
		CompanyID:  form.Company,
		BaseSalary: form.Salary,
		ProfilePic: form.ProfilePic,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse("user created successfully", user))
}

func (h *UserHTTPHandler) GetUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid user ID"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.users.GetUser(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse("user retrieved successfully", user))
}

func (h *UserHTTPHandler) ListUsers(c *gin.Context) {
	var query ListUsersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid query parameters"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	users, total, err := h.users.ListUsers(ctx, userhandler.ListUsersQuery{
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successWithMetaResponse("users retrieved successfully", users, gin.H{
		"total":     total,
		"page":      query.Page,
		"page_size": query.PageSize,
	}))
}

func (h *UserHTTPHandler) UpdateUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid user ID"))
		return
	}

	var form UpdateUserForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	user, err := h.users.UpdateUser(ctx, userID, userhandler.UpdateUserInput{
		Name:       form.Name,
		Email:      form.Email,
		CompanyID:  form.Company,
		Salary:     form.Salary,
		ProfilePic: form.ProfilePic,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse("user updated successfully", user))
}

func (h *UserHTTPHandler) DeleteUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid user ID"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if err := h.users.DeleteUser(ctx, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse("user deleted successfully", nil))
}
