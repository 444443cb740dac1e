package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adrianburcea94/tennis-courts-v1/internal/service"
)

type ReservationHandler struct {
	svc *service.ReservationSvc
}

func NewReservationHandler(s *service.ReservationSvc) *ReservationHandler {
	return &ReservationHandler{svc: s}
}

// POST /reservations
func (h *ReservationHandler) Book(c *gin.Context) {
	var in struct {
		GuestID    string `json:"guestId" binding:"required"`
		ScheduleID string `json:"scheduleId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.svc.Book(c, in.GuestID, in.ScheduleID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", "/reservations/"+res.ID)
	c.JSON(http.StatusCreated, res)
}

// GET /reservations/:id
func (h *ReservationHandler) Find(c *gin.Context) {
	res, err := h.svc.FindByID(c, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// PUT /reservations/:id/cancel
func (h *ReservationHandler) Cancel(c *gin.Context) {
	res, err := h.svc.Cancel(c, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// PUT /reservations/:id
func (h *ReservationHandler) Reschedule(c *gin.Context) {
	var in struct {
		ScheduleID string `json:"scheduleId"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.svc.Reschedule(c, c.Param("id"), in.ScheduleID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /reservations/history
func (h *ReservationHandler) History(c *gin.Context) {
	list, err := h.svc.ShowPastReservations(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
