package report

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/Logananthan283/Veyil-Gaming/internal/api"
	"github.com/Logananthan283/Veyil-Gaming/internal/logger"
)

type Handler struct {
	repo Repository
	now  func() time.Time
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{repo: NewRepository(db), now: time.Now}
}

func NewHandlerWithRepo(repo Repository) *Handler {
	return &Handler{repo: repo, now: time.Now}
}

func queryRange(c *gin.Context) Range {
	return Range{From: c.Query("from"), To: c.Query("to")}
}

func (h *Handler) Summary(c *gin.Context) {
	summary, err := h.repo.GetSummary(c.Request.Context(), queryRange(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *Handler) Daily(c *gin.Context) {
	rows, err := h.repo.GetDailyRevenue(c.Request.Context(), queryRange(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": rows})
}

func (h *Handler) Consoles(c *gin.Context) {
	rows, err := h.repo.GetConsoleUsage(c.Request.Context(), queryRange(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"consoles": rows})
}

func (h *Handler) PeakHours(c *gin.Context) {
	rows, err := h.repo.GetPeakHours(c.Request.Context(), queryRange(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hours": rows})
}

func (h *Handler) PaymentMethods(c *gin.Context) {
	rows, err := h.repo.GetPaymentBreakdown(c.Request.Context(), queryRange(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"methods": rows})
}

func (h *Handler) Loyalty(c *gin.Context) {
	limit := 10
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid limit"})
			return
		}
		limit = n
	}
	rows, err := h.repo.GetLoyalCustomers(c.Request.Context(), queryRange(c), limit)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": rows})
}

func (h *Handler) ExportCSV(c *gin.Context) {
	data, err := h.repo.ExportCSV(c.Request.Context(), queryRange(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="revenue-report.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

func (h *Handler) ExportPDF(c *gin.Context) {
	data, err := h.repo.ExportPDF(c.Request.Context(), queryRange(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="revenue-report.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *Handler) Dashboard(c *gin.Context) {
	now := h.now()
	dashboard, err := h.repo.GetDashboard(c.Request.Context(),
		now.Format("2006-01-02"), now.Format("2006-01"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

func (h *Handler) fail(c *gin.Context, err error) {
	logger.Errorf("report request failed: %v", err)
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
}
