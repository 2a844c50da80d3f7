package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/melisdmr/brightnest/internal/app/models/dto"
	"github.com/melisdmr/brightnest/internal/app/services"
	"github.com/melisdmr/brightnest/internal/middleware"
)

// AttendanceController handles check-in/check-out, classroom assignment and
// staff attendance operations
type AttendanceController struct {
	occupancyService *services.OccupancyService
	logger           zerolog.Logger
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(occupancyService *services.OccupancyService, logger zerolog.Logger) *AttendanceController {
	return &AttendanceController{
		occupancyService: occupancyService,
		logger:           logger,
	}
}

// CheckIn handles child check-in
// @Summary Check a child in
// @Description Opens a check-in record for the child in the given classroom. A child can hold only one open record at a time.
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CheckInRequest true "Check-in information"
// @Success 201 {object} dto.APIResponse{data=dto.CheckInResponse} "Child checked in"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Child or classroom not found"
// @Failure 409 {object} dto.ErrorResponse "Child is already checked in"
// @Router /attendance/check-in [post]
func (c *AttendanceController) CheckIn(ctx *gin.Context) {
	var req dto.CheckInRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	rec, err := c.occupancyService.CheckIn(ctx.Request.Context(), req.ChildID, req.ClassroomID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("childID", rec.ChildID).
		Int64("classroomID", rec.ClassroomID).
		Msg("Child checked in")

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.CheckInResponse{
		CheckInID:   rec.ID,
		ChildID:     rec.ChildID,
		ClassroomID: rec.ClassroomID,
		CheckInTime: rec.CheckInTime,
	}))
}

// CheckOut handles child check-out
// @Summary Check a child out
// @Description Closes the child's open check-in record and reports the total hours.
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CheckOutRequest true "Check-out information"
// @Success 200 {object} dto.APIResponse{data=dto.CheckOutResponse} "Child checked out"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Child not found or not checked in"
// @Router /attendance/check-out [post]
func (c *AttendanceController) CheckOut(ctx *gin.Context) {
	var req dto.CheckOutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	rec, err := c.occupancyService.CheckOut(ctx.Request.Context(), req.ChildID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.CheckOutResponse{
		CheckInID: rec.ID,
		ChildID:   rec.ChildID,
	}
	if rec.CheckOutTime != nil {
		resp.CheckOutTime = *rec.CheckOutTime
	}
	if rec.TotalHours != nil {
		resp.TotalHours = *rec.TotalHours
	}

	c.logger.Info().
		Int64("childID", rec.ChildID).
		Float64("totalHours", resp.TotalHours).
		Msg("Child checked out")

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// AssignChild handles classroom assignment
// @Summary Assign a child to a classroom
// @Description Moves the child to the classroom, closing any previous assignment. Assigning to the current classroom is a no-op.
// @Tags classrooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Classroom ID"
// @Param request body dto.AssignChildRequest true "Child to assign"
// @Success 200 {object} dto.APIResponse{data=dto.AssignmentResponse} "Active assignment"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Child or classroom not found"
// @Failure 409 {object} dto.ErrorResponse "Child or classroom is inactive"
// @Router /classrooms/{id}/children [post]
func (c *AttendanceController) AssignChild(ctx *gin.Context) {
	classroomID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AssignChildRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	a, err := c.occupancyService.AssignChild(ctx.Request.Context(), req.ChildID, classroomID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("childID", a.ChildID).
		Int64("classroomID", a.ClassroomID).
		Msg("Child assigned to classroom")

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.FromAssignment(a)))
}

// RemoveChild handles assignment removal
// @Summary Remove a child from their classroom
// @Description Closes the child's active classroom assignment.
// @Tags classrooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Child ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Assignment closed"
// @Failure 404 {object} dto.ErrorResponse "Child not found or not assigned"
// @Router /children/{id}/classroom [delete]
func (c *AttendanceController) RemoveChild(ctx *gin.Context) {
	childID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	a, err := c.occupancyService.RemoveChild(ctx.Request.Context(), childID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("childID", a.ChildID).
		Int64("classroomID", a.ClassroomID).
		Msg("Child removed from classroom")

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Child removed from classroom"}))
}

// StaffSignIn handles staff sign-in
// @Summary Sign in for the day
// @Description Opens today's attendance record for the authenticated staff member.
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Success 201 {object} dto.APIResponse{data=dto.StaffSignInResponse} "Signed in"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 409 {object} dto.ErrorResponse "Already signed in today"
// @Router /staff/attendance/sign-in [post]
func (c *AttendanceController) StaffSignIn(ctx *gin.Context) {
	staffID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	rec, err := c.occupancyService.StaffSignIn(ctx.Request.Context(), staffID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("staffID", rec.StaffID).Msg("Staff signed in")

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.StaffSignInResponse{
		AttendanceID: rec.ID,
		StaffID:      rec.StaffID,
		SignInTime:   rec.SignInTime,
	}))
}

// StaffSignOut handles staff sign-out
// @Summary Sign out for the day
// @Description Closes today's open attendance record for the authenticated staff member.
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.StaffSignOutResponse} "Signed out"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Not signed in today"
// @Router /staff/attendance/sign-out [post]
func (c *AttendanceController) StaffSignOut(ctx *gin.Context) {
	staffID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	rec, err := c.occupancyService.StaffSignOut(ctx.Request.Context(), staffID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.StaffSignOutResponse{
		AttendanceID: rec.ID,
		StaffID:      rec.StaffID,
	}
	if rec.SignOutTime != nil {
		resp.SignOutTime = *rec.SignOutTime
	}
	if rec.TotalHours != nil {
		resp.TotalHours = *rec.TotalHours
	}

	c.logger.Info().
		Int64("staffID", rec.StaffID).
		Float64("totalHours", resp.TotalHours).
		Msg("Staff signed out")

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// StaffPresence handles the staff attendance listing
// @Summary List staff attendance for a date
// @Description Lists attendance records for the given date (today when omitted).
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=[]dto.StaffPresenceResponse} "Attendance records"
// @Failure 400 {object} dto.ErrorResponse "Invalid date format"
// @Router /staff/attendance [get]
func (c *AttendanceController) StaffPresence(ctx *gin.Context) {
	day := time.Now()
	if raw := ctx.Query("date"); raw != "" {
		parsed, err := time.Parse(dto.DateOnly, raw)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "date must be YYYY-MM-DD")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		day = parsed
	}

	records, err := c.occupancyService.StaffPresence(ctx.Request.Context(), day)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.StaffPresenceResponse, 0, len(records))
	for _, rec := range records {
		entry := dto.StaffPresenceResponse{
			Staff:       dto.FromUser(rec.Staff),
			SignedIn:    rec.Open(),
			SignInTime:  &rec.SignInTime,
			SignOutTime: rec.SignOutTime,
			TotalHours:  rec.TotalHours,
		}
		items = append(items, entry)
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(items))
}
