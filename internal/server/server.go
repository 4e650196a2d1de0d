package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/Logananthan283/Veyil-Gaming/internal/auth"
	"github.com/Logananthan283/Veyil-Gaming/internal/booking"
	"github.com/Logananthan283/Veyil-Gaming/internal/catalog"
	"github.com/Logananthan283/Veyil-Gaming/internal/config"
	"github.com/Logananthan283/Veyil-Gaming/internal/expense"
	"github.com/Logananthan283/Veyil-Gaming/internal/inventory"
	"github.com/Logananthan283/Veyil-Gaming/internal/live"
	"github.com/Logananthan283/Veyil-Gaming/internal/notify"
	"github.com/Logananthan283/Veyil-Gaming/internal/report"
	"github.com/Logananthan283/Veyil-Gaming/internal/settings"
	"github.com/Logananthan283/Veyil-Gaming/internal/user"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
}

func New(db *sqlx.DB, cfg *config.Config, notifier *notify.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())

	bookingRepo := booking.NewRepository(db)
	catalogRepo := catalog.NewRepository(db)
	bookingService := booking.NewService(bookingRepo, catalogRepo, notifier)

	userHandler := user.NewHandler(user.NewService(user.NewRepository(db), cfg.JWTSecret))
	bookingHandler := booking.NewHandler(bookingService)
	catalogHandler := catalog.NewHandlerWithRepo(catalogRepo)
	liveHandler := live.NewHandler(live.NewService(catalogRepo, bookingRepo))
	expenseHandler := expense.NewHandler(db)
	inventoryHandler := inventory.NewHandler(db)
	reportHandler := report.NewHandler(db)
	settingsHandler := settings.NewHandler(db)

	public := router.Group("/auth")
	public.Use(RateLimitMiddleware(5, 10))
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.Refresh)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.Me)
		protected.PUT("/me/profile", userHandler.UpdateProfile)
		protected.PUT("/me/password", userHandler.ChangePassword)

		protected.POST("/bookings", bookingHandler.Create)
		protected.GET("/bookings", bookingHandler.List)
		protected.POST("/bookings/quote", bookingHandler.Quote)
		protected.GET("/bookings/:id", bookingHandler.Get)
		protected.PUT("/bookings/:id", bookingHandler.Update)
		protected.DELETE("/bookings/:id", bookingHandler.Delete)
		protected.POST("/bookings/:id/complete", bookingHandler.Complete)

		protected.GET("/live", liveHandler.Overview)
		protected.GET("/live/summary", liveHandler.Summary)
		protected.POST("/live/sessions/:id/end", bookingHandler.Complete)

		protected.GET("/consoles", catalogHandler.ListConsoles)
		protected.GET("/hours", catalogHandler.ListHours)
		protected.GET("/players", catalogHandler.ListPlayerCounts)
		protected.GET("/rates", catalogHandler.ListRates)
		protected.GET("/menu-items", catalogHandler.ListMenuItems)

		protected.POST("/expenses", expenseHandler.Create)
		protected.GET("/expenses", expenseHandler.List)
		protected.GET("/expenses/stats", expenseHandler.Stats)
		protected.PUT("/expenses/:id", expenseHandler.Update)
		protected.DELETE("/expenses/:id", expenseHandler.Delete)
		protected.POST("/expenses/:id/paid", expenseHandler.MarkPaid)

		protected.POST("/inventory", inventoryHandler.Create)
		protected.GET("/inventory", inventoryHandler.List)
		protected.GET("/inventory/stats", inventoryHandler.Stats)
		protected.PUT("/inventory/:id", inventoryHandler.Update)
		protected.DELETE("/inventory/:id", inventoryHandler.Delete)
		protected.POST("/inventory/:id/restock", inventoryHandler.Restock)

		protected.GET("/dashboard", reportHandler.Dashboard)
		protected.GET("/reports/summary", reportHandler.Summary)
		protected.GET("/reports/daily", reportHandler.Daily)
		protected.GET("/reports/consoles", reportHandler.Consoles)
		protected.GET("/reports/peak-hours", reportHandler.PeakHours)
		protected.GET("/reports/payment-methods", reportHandler.PaymentMethods)
		protected.GET("/reports/loyalty", reportHandler.Loyalty)
		protected.GET("/reports/export.csv", reportHandler.ExportCSV)
		protected.GET("/reports/export.pdf", reportHandler.ExportPDF)
	}

	adminMiddleware := auth.RequireRole("admin")
	admin := router.Group("/admin")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.POST("/consoles", catalogHandler.CreateConsole)
		admin.DELETE("/consoles/:id", catalogHandler.DeleteConsole)
		admin.POST("/hours", catalogHandler.CreateHour)
		admin.DELETE("/hours/:id", catalogHandler.DeleteHour)
		admin.POST("/players", catalogHandler.CreatePlayerCount)
		admin.DELETE("/players/:id", catalogHandler.DeletePlayerCount)
		admin.POST("/rates", catalogHandler.CreateRate)
		admin.DELETE("/rates/:id", catalogHandler.DeleteRate)
		admin.POST("/menu-items", catalogHandler.CreateMenuItem)
		admin.DELETE("/menu-items/:id", catalogHandler.DeleteMenuItem)

		admin.GET("/settings", settingsHandler.Get)
		admin.PUT("/settings", settingsHandler.Update)
		admin.GET("/settings/backup", settingsHandler.Backup)
		admin.POST("/settings/restore", settingsHandler.Restore)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:         ":" + port,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
