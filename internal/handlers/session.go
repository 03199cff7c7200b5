package handlers

import (
	"net/http"
	"strconv"

	"lightning-talks-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionService *services.SessionService
}

func NewSessionHandler(sessionService *services.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// ListSessions godoc
// @Summary      List sessions
// @Description  Upcoming sessions by default; includeAll=true returns every session, most recent first
// @Tags         sessions
// @Produce      json
// @Param        includeAll query bool false "include past sessions"
// @Success      200 {array} Session
// @Failure      500 {object} ErrorResponse
// @Router       /sessions [get]
func (h *SessionHandler) ListSessions(c *gin.Context) {
	includeAll := c.Query("includeAll") == "true"

	sessions, err := h.sessionService.List(c.Request.Context(), includeAll)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// CreateSession godoc
// @Summary      Create a session
// @Description  Create a scheduled lightning talk session
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.SessionInput true "Session data"
// @Success      201 {object} Session
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var input services.SessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	session, err := h.sessionService.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

// UpdateSession godoc
// @Summary      Update a session
// @Description  Update date, venue, times, title or archive link; body carries the id
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.SessionUpdateInput true "Fields to update"
// @Success      200 {object} Session
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /sessions [put]
func (h *SessionHandler) UpdateSession(c *gin.Context) {
	var input services.SessionUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	session, err := h.sessionService.Update(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// DeleteSession godoc
// @Summary      Delete a session
// @Description  Delete a session; talks bound to it are kept and unbound
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        id query int true "session id"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /sessions [delete]
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	id, err := strconv.ParseUint(c.Query("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}

	if err := h.sessionService.Delete(c.Request.Context(), uint(id)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "session deleted"})
}

// AvailableSessions godoc
// @Summary      Sessions open for submission
// @Description  Reduced session shape for the submission form's picker
// @Tags         sessions
// @Produce      json
// @Param        includeAll query bool false "include past sessions"
// @Success      200 {object} map[string]interface{}
// @Failure      500 {object} ErrorResponse
// @Router       /available-sessions [get]
func (h *SessionHandler) AvailableSessions(c *gin.Context) {
	includeAll := c.Query("includeAll") == "true"

	sessions, err := h.sessionService.Available(c.Request.Context(), includeAll)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessions": sessions,
		"total":    len(sessions),
	})
}
