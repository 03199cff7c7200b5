package handlers

import (
	"net/http"
	"strconv"

	"lightning-talks-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type TalkHandler struct {
	talkService *services.TalkService
}

func NewTalkHandler(talkService *services.TalkService) *TalkHandler {
	return &TalkHandler{talkService: talkService}
}

// ListTalks godoc
// @Summary      List all talks
// @Description  Every submitted talk, newest submission first
// @Tags         talks
// @Produce      json
// @Success      200 {array} Talk
// @Failure      500 {object} ErrorResponse
// @Router       /talks [get]
func (h *TalkHandler) ListTalks(c *gin.Context) {
	talks, err := h.talkService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, talks)
}

// MyTalks godoc
// @Summary      List own talks
// @Description  Talks submitted by the authenticated user, including orphaned ones
// @Tags         talks
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Talk
// @Failure      401 {object} ErrorResponse
// @Router       /my-talks [get]
func (h *TalkHandler) MyTalks(c *gin.Context) {
	userID := c.GetUint("user_id")

	talks, err := h.talkService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, talks)
}

// CreateTalk godoc
// @Summary      Submit a talk
// @Description  Submit a talk proposal; status starts as pending
// @Tags         talks
// @Accept       json
// @Produce      json
// @Param        request body services.TalkInput true "Talk data"
// @Success      201 {object} Talk
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /talks [post]
func (h *TalkHandler) CreateTalk(c *gin.Context) {
	var input services.TalkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	var userID *uint
	if v, ok := c.Get("user_id"); ok {
		id := v.(uint)
		userID = &id
	}

	talk, err := h.talkService.Create(c.Request.Context(), input, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "talk submitted",
		"talk":    talk,
	})
}

// GetTalk godoc
// @Summary      Read one talk
// @Tags         talks
// @Produce      json
// @Param        id path int true "talk id"
// @Success      200 {object} Talk
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /talk/{id} [get]
func (h *TalkHandler) GetTalk(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid talk id"})
		return
	}

	talk, err := h.talkService.Get(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, talk)
}

// UpdateTalk godoc
// @Summary      Update a talk
// @Description  Owner-only rewrite of the submitted fields
// @Tags         talks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "talk id"
// @Param        request body services.TalkInput true "Talk data"
// @Success      200 {object} Talk
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /talk/{id} [put]
func (h *TalkHandler) UpdateTalk(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid talk id"})
		return
	}

	var input services.TalkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	talk, err := h.talkService.Update(c.Request.Context(), uint(id),
		c.GetUint("user_id"), c.GetBool("is_admin"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, talk)
}

// DeleteTalk godoc
// @Summary      Delete a talk
// @Description  Owner-only; the bound session is unaffected
// @Tags         talks
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "talk id"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /talk/{id} [delete]
func (h *TalkHandler) DeleteTalk(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid talk id"})
		return
	}

	if err := h.talkService.Delete(c.Request.Context(), uint(id),
		c.GetUint("user_id"), c.GetBool("is_admin")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "talk deleted"})
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required" example:"approved"`
}

// SetTalkStatus godoc
// @Summary      Transition review status
// @Description  Set pending, approved or rejected; any direction, same status is a no-op
// @Tags         talks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "talk id"
// @Param        request body SetStatusRequest true "New status"
// @Success      200 {object} Talk
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /talk/{id} [patch]
func (h *TalkHandler) SetTalkStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid talk id"})
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	talk, err := h.talkService.SetStatus(c.Request.Context(), uint(id), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, talk)
}
