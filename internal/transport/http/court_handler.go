package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adrianburcea94/tennis-courts-v1/internal/service"
)

type CourtHandler struct {
	svc *service.CourtSvc
}

func NewCourtHandler(s *service.CourtSvc) *CourtHandler {
	return &CourtHandler{svc: s}
}

// POST /tennis-courts
func (h *CourtHandler) Add(c *gin.Context) {
	var in struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	court, err := h.svc.Add(c, in.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", "/tennis-courts/"+court.ID)
	c.JSON(http.StatusCreated, court)
}

// GET /tennis-courts/:id
func (h *CourtHandler) Find(c *gin.Context) {
	court, err := h.svc.FindByID(c, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, court)
}

// GET /tennis-courts
func (h *CourtHandler) List(c *gin.Context) {
	list, err := h.svc.List(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /tennis-courts/:id/schedules
func (h *CourtHandler) FindWithSchedules(c *gin.Context) {
	court, schedules, err := h.svc.FindByIDWithSchedules(c, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"court": court, "schedules": schedules})
}
