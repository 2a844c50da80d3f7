package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/melisdmr/brightnest/internal/app/models/dto"
	"github.com/melisdmr/brightnest/internal/app/services"
	"github.com/melisdmr/brightnest/internal/middleware"
	"github.com/melisdmr/brightnest/internal/pkg/helpers"
)

// ChildController handles child profile operations
type ChildController struct {
	childService *services.ChildService
	logger       zerolog.Logger
}

// NewChildController creates a new ChildController
func NewChildController(childService *services.ChildService, logger zerolog.Logger) *ChildController {
	return &ChildController{
		childService: childService,
		logger:       logger,
	}
}

// Create handles child enrollment
// @Summary Enroll a child
// @Description Creates a child profile. Age is always derived from the date of birth at read time.
// @Tags children
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateChildRequest true "Child information"
// @Success 201 {object} dto.APIResponse{data=dto.ChildResponse} "Child enrolled"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or future date of birth"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /children [post]
func (c *ChildController) Create(ctx *gin.Context) {
	var req dto.CreateChildRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	child, err := c.childService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("childID", child.ID).Msg("Child enrolled")
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromChild(child, time.Now())))
}

// GetByID handles child profile retrieval
// @Summary Get a child profile
// @Tags children
// @Produce json
// @Security BearerAuth
// @Param id path int true "Child ID"
// @Success 200 {object} dto.APIResponse{data=dto.ChildResponse} "Child profile"
// @Failure 404 {object} dto.ErrorResponse "Child not found"
// @Router /children/{id} [get]
func (c *ChildController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	child, err := c.childService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromChild(child, time.Now())))
}

// List handles paginated child listing
// @Summary List children
// @Description Lists child profiles with pagination. Deactivated profiles are excluded unless includeInactive=true.
// @Tags children
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Param includeInactive query bool false "Include deactivated profiles"
// @Success 200 {object} dto.APIResponse{data=dto.ChildListResponse} "Children"
// @Router /children [get]
func (c *ChildController) List(ctx *gin.Context) {
	page, pageSize := helpers.GetPaginationParams(ctx)
	includeInactive := ctx.Query("includeInactive") == "true"

	children, total, err := c.childService.List(ctx.Request.Context(), page, pageSize, !includeInactive)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	now := time.Now()
	items := make([]dto.ChildResponse, 0, len(children))
	for _, child := range children {
		items = append(items, dto.FromChild(child, now))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ChildListResponse{
		Children:   items,
		Pagination: helpers.NewPaginationInfo(page, pageSize, total),
	}))
}

// ListMine handles a parent's own children listing
// @Summary List my children
// @Description Lists the children linked to the authenticated parent account.
// @Tags children
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ChildResponse} "Children"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /children/mine [get]
func (c *ChildController) ListMine(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	children, err := c.childService.ListByParent(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	now := time.Now()
	items := make([]dto.ChildResponse, 0, len(children))
	for _, child := range children {
		items = append(items, dto.FromChild(child, now))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(items))
}

// Update handles child profile updates
// @Summary Update a child profile
// @Tags children
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Child ID"
// @Param request body dto.UpdateChildRequest true "Updated child information"
// @Success 200 {object} dto.APIResponse{data=dto.ChildResponse} "Updated child profile"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Child not found"
// @Router /children/{id} [put]
func (c *ChildController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateChildRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	child, err := c.childService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromChild(child, time.Now())))
}

// Delete handles child profile deactivation
// @Summary Deactivate a child profile
// @Description Soft-deletes the profile. Attendance history is preserved.
// @Tags children
// @Produce json
// @Security BearerAuth
// @Param id path int true "Child ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Child deactivated"
// @Failure 404 {object} dto.ErrorResponse "Child not found"
// @Router /children/{id} [delete]
func (c *ChildController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.childService.Deactivate(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("childID", id).Msg("Child profile deactivated")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Child profile deactivated"}))
}

// parseIDParam reads a positive integer path parameter, writing a 400
// response when it is malformed.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
