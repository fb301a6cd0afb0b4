package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"expeditor/internal/core/application/usecases/commands"
	"expeditor/internal/core/application/usecases/queries"
)

// GetStaff handles GET /api/v1/staff - the roster with schedules.
func (s *Server) GetStaff(ctx echo.Context) error {
	roster, err := s.getStaffHandler.Handle(ctx.Request().Context(), queries.NewGetStaffQuery())
	if err != nil {
		return internalError(ctx, "Failed to retrieve staff")
	}

	response := make([]StaffDTO, 0, len(roster))
	for _, worker := range roster {
		response = append(response, toStaffDTO(worker))
	}
	return ctx.JSON(http.StatusOK, response)
}

// SetStaffAvailability handles PUT /api/v1/staff/:name/availability.
func (s *Server) SetStaffAvailability(ctx echo.Context) error {
	var request SetAvailabilityRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetStaffAvailabilityCommand(ctx.Param("name"), request.Available)
	if err != nil {
		return badRequest(ctx, "Invalid availability data: "+err.Error())
	}

	if handleErr := s.setAvailabilityHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return internalError(ctx, "Failed to update availability")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateStaffSchedule handles PUT /api/v1/staff/:name/schedule.
func (s *Server) UpdateStaffSchedule(ctx echo.Context) error {
	var request UpdateScheduleRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	schedule, ok := toSchedule(request.Schedule)
	if !ok {
		return badRequest(ctx, "Schedule must cover exactly seven days")
	}

	cmd, err := commands.NewUpdateStaffScheduleCommand(ctx.Param("name"), schedule)
	if err != nil {
		return badRequest(ctx, "Invalid schedule data: "+err.Error())
	}

	if handleErr := s.updateScheduleHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return internalError(ctx, "Failed to update schedule")
	}

	return ctx.NoContent(http.StatusNoContent)
}
