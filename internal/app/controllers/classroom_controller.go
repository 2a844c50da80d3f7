package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/melisdmr/brightnest/internal/app/models/dto"
	"github.com/melisdmr/brightnest/internal/app/services"
	"github.com/melisdmr/brightnest/internal/middleware"
)

// ClassroomController handles classroom management operations
type ClassroomController struct {
	classroomService *services.ClassroomService
	logger           zerolog.Logger
}

// NewClassroomController creates a new ClassroomController
func NewClassroomController(classroomService *services.ClassroomService, logger zerolog.Logger) *ClassroomController {
	return &ClassroomController{
		classroomService: classroomService,
		logger:           logger,
	}
}

// Create handles classroom creation
// @Summary Create a classroom
// @Tags classrooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateClassroomRequest true "Classroom information"
// @Success 201 {object} dto.APIResponse{data=dto.ClassroomResponse} "Classroom created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 409 {object} dto.ErrorResponse "Classroom name already in use"
// @Router /classrooms [post]
func (c *ClassroomController) Create(ctx *gin.Context) {
	var req dto.CreateClassroomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	room, err := c.classroomService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("classroomID", room.ID).Str("name", room.Name).Msg("Classroom created")
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.FromClassroom(room)))
}

// GetByID handles classroom retrieval
// @Summary Get a classroom
// @Tags classrooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Classroom ID"
// @Success 200 {object} dto.APIResponse{data=dto.ClassroomResponse} "Classroom"
// @Failure 404 {object} dto.ErrorResponse "Classroom not found"
// @Router /classrooms/{id} [get]
func (c *ClassroomController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	room, err := c.classroomService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromClassroom(room)))
}

// List handles classroom listing
// @Summary List classrooms
// @Tags classrooms
// @Produce json
// @Security BearerAuth
// @Param includeInactive query bool false "Include deactivated classrooms"
// @Success 200 {object} dto.APIResponse{data=[]dto.ClassroomResponse} "Classrooms"
// @Router /classrooms [get]
func (c *ClassroomController) List(ctx *gin.Context) {
	includeInactive := ctx.Query("includeInactive") == "true"

	rooms, err := c.classroomService.List(ctx.Request.Context(), includeInactive)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.ClassroomResponse, 0, len(rooms))
	for _, room := range rooms {
		items = append(items, dto.FromClassroom(room))
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(items))
}

// Update handles classroom updates
// @Summary Update a classroom
// @Tags classrooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Classroom ID"
// @Param request body dto.UpdateClassroomRequest true "Updated classroom information"
// @Success 200 {object} dto.APIResponse{data=dto.ClassroomResponse} "Updated classroom"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Classroom not found"
// @Failure 409 {object} dto.ErrorResponse "Classroom name already in use"
// @Router /classrooms/{id} [put]
func (c *ClassroomController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateClassroomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	room, err := c.classroomService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromClassroom(room)))
}

// Delete handles classroom deactivation
// @Summary Deactivate a classroom
// @Description Closes the classroom. Fails while children are still assigned to it.
// @Tags classrooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Classroom ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Classroom deactivated"
// @Failure 404 {object} dto.ErrorResponse "Classroom not found"
// @Failure 409 {object} dto.ErrorResponse "Classroom still has assigned children"
// @Router /classrooms/{id} [delete]
func (c *ClassroomController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.classroomService.Deactivate(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("classroomID", id).Msg("Classroom deactivated")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Classroom deactivated"}))
}

// Roster handles the classroom roster view
// @Summary Get a classroom roster
// @Description Lists the children assigned to the classroom with their live presence state.
// @Tags classrooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Classroom ID"
// @Success 200 {object} dto.APIResponse{data=dto.ClassroomRosterResponse} "Roster"
// @Failure 404 {object} dto.ErrorResponse "Classroom not found"
// @Router /classrooms/{id}/roster [get]
func (c *ClassroomController) Roster(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	roster, err := c.classroomService.Roster(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(roster))
}
