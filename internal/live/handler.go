package live

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Logananthan283/Veyil-Gaming/internal/api"
	"github.com/Logananthan283/Veyil-Gaming/internal/logger"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Overview(c *gin.Context) {
	overview, err := h.service.Overview(c.Request.Context())
	if err != nil {
		logger.Errorf("failed to build live overview: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, overview)
}

func (h *Handler) Summary(c *gin.Context) {
	overview, err := h.service.Overview(c.Request.Context())
	if err != nil {
		logger.Errorf("failed to build live summary: %v", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total":     overview.Total,
		"occupied":  overview.Occupied,
		"available": overview.Available,
	})
}
