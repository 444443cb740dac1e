package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adrianburcea94/tennis-courts-v1/internal/service"
)

type ScheduleHandler struct {
	svc *service.ScheduleSvc
}

func NewScheduleHandler(s *service.ScheduleSvc) *ScheduleHandler {
	return &ScheduleHandler{svc: s}
}

// POST /schedules
func (h *ScheduleHandler) Add(c *gin.Context) {
	var in struct {
		CourtID       string `json:"tennisCourtId" binding:"required"`
		StartDateTime string `json:"startDateTime" binding:"required"` // RFC3339
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	start, err := time.Parse(time.RFC3339, in.StartDateTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDateTime must be RFC3339"})
		return
	}
	sched, err := h.svc.Add(c, in.CourtID, start.UTC())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", "/schedules/"+sched.ID)
	c.JSON(http.StatusCreated, sched)
}

// GET /schedules/:id
func (h *ScheduleHandler) Find(c *gin.Context) {
	sched, err := h.svc.FindByID(c, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sched)
}

// GET /schedules?startDate=2006-01-02&endDate=2006-01-02
func (h *ScheduleHandler) FindByDates(c *gin.Context) {
	from, err := time.Parse("2006-01-02", c.Query("startDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startDate must be YYYY-MM-DD"})
		return
	}
	to, err := time.Parse("2006-01-02", c.Query("endDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must be YYYY-MM-DD"})
		return
	}
	// Whole days: from midnight on startDate to the end of endDate.
	list, err := h.svc.FindByDateRange(c, from, to.Add(24*time.Hour-time.Second))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
