package handlers

import (
	"net/http"

	"lightning-talks-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	talkService *services.TalkService
}

func NewScheduleHandler(talkService *services.TalkService) *ScheduleHandler {
	return &ScheduleHandler{talkService: talkService}
}

// DailySchedule godoc
// @Summary      Approved talks for a date
// @Description  Ordered by start time ascending, unscheduled talks last; is_live is computed per row
// @Tags         schedule
// @Produce      json
// @Param        date query string true "YYYY-MM-DD"
// @Success      200 {array} services.ScheduleEntry
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /daily-schedule [get]
func (h *ScheduleHandler) DailySchedule(c *gin.Context) {
	entries, err := h.talkService.DailySchedule(c.Request.Context(), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// BulkSetStartTimes godoc
// @Summary      Bulk-assign talk start times
// @Description  Assign presentation start times for a batch of talks in one transaction
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body []services.StartTimeUpdate true "Start time assignments"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /daily-schedule [post]
func (h *ScheduleHandler) BulkSetStartTimes(c *gin.Context) {
	var updates []services.StartTimeUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.talkService.BulkSetStartTimes(c.Request.Context(), updates); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "start times updated"})
}

// ScheduleDates godoc
// @Summary      Dates with approved talks
// @Description  Distinct session dates that have at least one approved talk, ascending
// @Tags         schedule
// @Produce      json
// @Success      200 {array} string
// @Failure      500 {object} ErrorResponse
// @Router       /schedule-dates [get]
func (h *ScheduleHandler) ScheduleDates(c *gin.Context) {
	dates, err := h.talkService.ScheduleDates(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dates)
}
