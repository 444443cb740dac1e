package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adrianburcea94/tennis-courts-v1/internal/service"
)

type GuestHandler struct {
	svc *service.GuestSvc
}

func NewGuestHandler(s *service.GuestSvc) *GuestHandler {
	return &GuestHandler{svc: s}
}

// POST /guests
func (h *GuestHandler) Add(c *gin.Context) {
	var in struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	g, err := h.svc.Add(c, in.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", "/guests/"+g.ID)
	c.JSON(http.StatusCreated, g)
}

// GET /guests/:id
func (h *GuestHandler) Find(c *gin.Context) {
	g, err := h.svc.FindByID(c, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// GET /guests?name=
func (h *GuestHandler) List(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		list, err := h.svc.FindByName(c, name)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
		return
	}
	list, err := h.svc.List(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// PUT /guests/:id
func (h *GuestHandler) Update(c *gin.Context) {
	var in struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	g, err := h.svc.Update(c, c.Param("id"), in.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// DELETE /guests/:id
func (h *GuestHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
