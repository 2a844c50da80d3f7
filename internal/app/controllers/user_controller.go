package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/melisdmr/brightnest/internal/app/models"
	"github.com/melisdmr/brightnest/internal/app/models/dto"
	"github.com/melisdmr/brightnest/internal/app/repositories"
	"github.com/melisdmr/brightnest/internal/middleware"
)

// UserController handles account read operations
type UserController struct {
	userRepo *repositories.UserRepository
	logger   zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(userRepo *repositories.UserRepository, logger zerolog.Logger) *UserController {
	return &UserController{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Me handles the current account lookup
// @Summary Get the authenticated account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Account"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /users/me [get]
func (c *UserController) Me(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	user, err := c.userRepo.GetByID(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromUser(user)))
}

// ListStaff handles the staff roster listing
// @Summary List staff accounts
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.UserResponse} "Staff accounts"
// @Router /users/staff [get]
func (c *UserController) ListStaff(ctx *gin.Context) {
	staff, err := c.userRepo.ListByRole(ctx.Request.Context(), models.RoleStaff)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.UserResponse, 0, len(staff))
	for _, user := range staff {
		items = append(items, dto.FromUser(user))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(items))
}
