package catalog

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/Logananthan283/Veyil-Gaming/internal/api"
)

type Handler struct {
	repo Repository
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{repo: NewRepository(db)}
}

func NewHandlerWithRepo(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// activeOnly reads the ?active=true toggle used by the booking form, which
// only offers active catalog entries while the masters screen shows all.
func activeOnly(c *gin.Context) bool {
	return c.Query("active") == "true"
}

func (h *Handler) ListConsoles(c *gin.Context) {
	consoles, err := h.repo.GetConsoles(c.Request.Context(), activeOnly(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch consoles"})
		return
	}
	c.JSON(http.StatusOK, consoles)
}

func (h *Handler) CreateConsole(c *gin.Context) {
	var req CreateConsoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ValidationMessage(err)})
		return
	}

	console, err := h.repo.CreateConsole(c.Request.Context(), req.Name, req.Status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create console"})
		return
	}
	c.JSON(http.StatusCreated, console)
}

func (h *Handler) DeleteConsole(c *gin.Context) {
	h.deleteEntry(c, h.repo.DeleteConsole)
}

func (h *Handler) ListHours(c *gin.Context) {
	hours, err := h.repo.GetHours(c.Request.Context(), activeOnly(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch hours"})
		return
	}
	c.JSON(http.StatusOK, hours)
}

func (h *Handler) CreateHour(c *gin.Context) {
	var req CreateHourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ValidationMessage(err)})
		return
	}

	hour, err := h.repo.CreateHour(c.Request.Context(), req.HourValue, req.Label)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create hour entry"})
		return
	}
	c.JSON(http.StatusCreated, hour)
}

func (h *Handler) DeleteHour(c *gin.Context) {
	h.deleteEntry(c, h.repo.DeleteHour)
}

func (h *Handler) ListPlayerCounts(c *gin.Context) {
	counts, err := h.repo.GetPlayerCounts(c.Request.Context(), activeOnly(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch player counts"})
		return
	}
	c.JSON(http.StatusOK, counts)
}

func (h *Handler) CreatePlayerCount(c *gin.Context) {
	var req CreatePlayerCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ValidationMessage(err)})
		return
	}

	count, err := h.repo.CreatePlayerCount(c.Request.Context(), req.PlayerCount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create player count"})
		return
	}
	c.JSON(http.StatusCreated, count)
}

func (h *Handler) DeletePlayerCount(c *gin.Context) {
	h.deleteEntry(c, h.repo.DeletePlayerCount)
}

func (h *Handler) ListRates(c *gin.Context) {
	rates, err := h.repo.GetRates(c.Request.Context(), activeOnly(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch rates"})
		return
	}
	c.JSON(http.StatusOK, rates)
}

func (h *Handler) CreateRate(c *gin.Context) {
	var req CreateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ValidationMessage(err)})
		return
	}

	rate, err := h.repo.CreateRate(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create rate"})
		return
	}
	c.JSON(http.StatusCreated, rate)
}

func (h *Handler) DeleteRate(c *gin.Context) {
	h.deleteEntry(c, h.repo.DeleteRate)
}

func (h *Handler) ListMenuItems(c *gin.Context) {
	items, err := h.repo.GetMenuItems(c.Request.Context(), activeOnly(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch menu items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateMenuItem(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: api.ValidationMessage(err)})
		return
	}

	item, err := h.repo.CreateMenuItem(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create menu item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handler) DeleteMenuItem(c *gin.Context) {
	h.deleteEntry(c, h.repo.DeleteMenuItem)
}

func (h *Handler) deleteEntry(c *gin.Context, del func(ctx context.Context, id int) error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid id"})
		return
	}

	if err := del(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete entry"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Deleted"})
}
