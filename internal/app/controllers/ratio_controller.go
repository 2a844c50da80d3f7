package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/melisdmr/brightnest/internal/app/models/dto"
	"github.com/melisdmr/brightnest/internal/app/services"
	"github.com/melisdmr/brightnest/internal/middleware"
)

// RatioController serves live staff-ratio snapshots
type RatioController struct {
	ratioService     *services.RatioService
	dashboardService *services.DashboardService
	logger           zerolog.Logger
}

// NewRatioController creates a new RatioController
func NewRatioController(ratioService *services.RatioService, dashboardService *services.DashboardService, logger zerolog.Logger) *RatioController {
	return &RatioController{
		ratioService:     ratioService,
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// ClassroomRatio handles a single classroom's ratio snapshot
// @Summary Get a classroom's ratio status
// @Description Evaluates the classroom's staff-ratio compliance from the children currently checked in. Nothing is cached; every call recomputes from current state.
// @Tags ratios
// @Produce json
// @Security BearerAuth
// @Param id path int true "Classroom ID"
// @Success 200 {object} dto.APIResponse{data=dto.RatioSnapshotResponse} "Ratio snapshot"
// @Failure 404 {object} dto.ErrorResponse "Classroom not found"
// @Failure 409 {object} dto.ErrorResponse "Classroom is inactive"
// @Router /classrooms/{id}/ratio [get]
func (c *RatioController) ClassroomRatio(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	snap, err := c.ratioService.ClassroomSnapshot(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if snap.IsOverRatio {
		c.logger.Warn().
			Int64("classroomID", snap.ClassroomID).
			Int("staffCount", snap.StaffCount).
			Int("childrenCount", snap.ChildrenCount).
			Int("maxAllowed", snap.MaxAllowedChildren).
			Msg("Classroom over ratio")
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(snap))
}

// Dashboard handles the center-wide ratio dashboard
// @Summary Get the center-wide ratio dashboard
// @Description Evaluates every active classroom and aggregates center totals.
// @Tags ratios
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardResponse} "Dashboard snapshot"
// @Router /dashboard/ratios [get]
func (c *RatioController) Dashboard(ctx *gin.Context) {
	resp, err := c.dashboardService.Snapshot(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if resp.Totals.RoomsOverRatio > 0 {
		c.logger.Warn().
			Int("roomsOverRatio", resp.Totals.RoomsOverRatio).
			Msg("Classrooms over ratio on dashboard")
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}
