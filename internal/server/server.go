// Package server assembles the HTTP API: repositories, services, handlers,
// middleware and routes.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"temple-admin/internal/config"
	"temple-admin/internal/handlers"
	"temple-admin/internal/middleware"
	"temple-admin/internal/models"
	"temple-admin/internal/repositories"
	"temple-admin/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Server serves the admin API
type Server struct {
	echo        *echo.Echo
	cfg         *config.Config
	logger      *slog.Logger
	rateLimiter *middleware.IPRateLimiter
}

type routeHandlers struct {
	health       *handlers.HealthCheckHandler
	auth         *handlers.AuthHandler
	summary      *handlers.SummaryHandler
	communities  *handlers.CommunityHandler
	members      *handlers.MemberHandler
	applications *handlers.ApplicationHandler
	donations    *handlers.DonationHandler
	expenses     *handlers.ExpenseHandler
	volunteers   *handlers.VolunteerHandler
	pujas        *handlers.PujaHandler
	templates    *handlers.TemplateHandler
	transactions *handlers.TransactionHandler
	audit        *handlers.AuditHandler
}

// New wires every layer on top of db. Metrics are registered on reg and
// served from gatherer at /metrics.
func New(cfg *config.Config, db *gorm.DB, logger *slog.Logger, reg prometheus.Registerer, gatherer prometheus.Gatherer) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.IPExtractor = middleware.NewIPExtractor(cfg.Server.TrustedProxies)
	httpMetrics := middleware.NewHTTPMetrics(reg)
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(logger, cfg.Server.ExposeErrorDetails, httpMetrics)
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	metrics := services.NewPrometheusMetrics(reg)
	activity := services.NewActivityLogger(logger)

	userRepo := repositories.NewUserRepository(db)
	communityRepo := repositories.NewCommunityRepository(db)
	memberRepo := repositories.NewMemberRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	donationRepo := repositories.NewDonationRepository(db)
	expenseRepo := repositories.NewExpenseRepository(db)
	volunteerRepo := repositories.NewVolunteerRepository(db)
	pujaRepo := repositories.NewPujaRepository(db)
	templateRepo := repositories.NewTemplateRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	auditRepo := repositories.NewAuditLogRepository(db)
	revokedTokenRepo := repositories.NewRevokedTokenRepository(db)

	auditService := services.NewAuditService(auditRepo, metrics, logger)
	passwordService := services.NewPasswordService(cfg.Security.BCryptCost, cfg.Security.PasswordMinLength)
	tokenService := services.NewTokenService(&cfg.JWT)
	authService := services.NewAuthService(userRepo, revokedTokenRepo, passwordService, tokenService, auditService, metrics, logger)

	h := routeHandlers{
		health:       handlers.NewHealthCheckHandler(db),
		auth:         handlers.NewAuthHandler(authService),
		summary:      handlers.NewSummaryHandler(services.NewFinancialSummaryService(transactionRepo, metrics, activity)),
		communities:  handlers.NewCommunityHandler(services.NewCommunityService(communityRepo, auditService)),
		members:      handlers.NewMemberHandler(services.NewMemberService(memberRepo, communityRepo, auditService)),
		applications: handlers.NewApplicationHandler(services.NewApplicationService(applicationRepo, communityRepo, auditService, metrics, activity)),
		donations: handlers.NewDonationHandler(services.NewDonationService(
			donationRepo, communityRepo, services.NewReportService(), auditService, metrics, activity)),
		expenses:     handlers.NewExpenseHandler(services.NewExpenseService(expenseRepo, communityRepo, auditService, metrics, activity)),
		volunteers:   handlers.NewVolunteerHandler(services.NewVolunteerService(volunteerRepo, communityRepo, auditService)),
		pujas:        handlers.NewPujaHandler(services.NewPujaService(pujaRepo, communityRepo, auditService, metrics, activity)),
		templates:    handlers.NewTemplateHandler(services.NewTemplateService(templateRepo, auditService)),
		transactions: handlers.NewTransactionHandler(services.NewTransactionService(transactionRepo, auditService, metrics, activity)),
		audit:        handlers.NewAuditHandler(auditService),
	}

	s := &Server{
		echo:        e,
		cfg:         cfg,
		logger:      logger,
		rateLimiter: middleware.NewIPRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst),
	}

	e.Use(middleware.RequestID())
	e.Use(handlers.ExposeErrorDetails(cfg.Server.ExposeErrorDetails))
	e.Use(httpMetrics.Middleware())
	e.Use(middleware.PanicRecovery(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit(cfg.Server.BodyLimit))
	e.Use(s.rateLimiter.Middleware())

	e.GET("/health", h.health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	registerRoutes(e.Group("/api/v1"), h,
		middleware.RequireAuth(tokenService, authService),
		middleware.RequireRole(activity, models.RoleSuperAdmin, models.RoleAdmin),
		middleware.RequireRole(activity, models.RoleSuperAdmin),
	)

	return s
}

// registerRoutes mounts the API. Reads need any console user, writes need an
// admin and user management needs a super admin.
func registerRoutes(v1 *echo.Group, h routeHandlers, auth, write, super echo.MiddlewareFunc) {
	v1.POST("/auth/login", h.auth.Login)
	v1.POST("/auth/logout", h.auth.Logout, auth)
	v1.GET("/auth/me", h.auth.Me, auth)

	v1.GET("/users", h.auth.ListUsers, auth, super)
	v1.POST("/users", h.auth.CreateUser, auth, super)
	v1.GET("/audit-logs", h.audit.ListAuditLogs, auth, super)

	v1.GET("/summary", h.summary.GetSummary, auth)
	v1.GET("/summary/categories", h.summary.GetCategorySummaries, auth)

	v1.GET("/communities", h.communities.ListCommunities, auth)
	v1.POST("/communities", h.communities.CreateCommunity, auth, write)
	v1.GET("/communities/:id", h.communities.GetCommunity, auth)
	v1.PATCH("/communities/:id", h.communities.UpdateCommunity, auth, write)
	v1.DELETE("/communities/:id", h.communities.DeleteCommunity, auth, write)

	v1.GET("/members", h.members.ListMembers, auth)
	v1.POST("/members", h.members.CreateMember, auth, write)
	v1.GET("/members/:id", h.members.GetMember, auth)
	v1.PATCH("/members/:id", h.members.UpdateMember, auth, write)
	v1.DELETE("/members/:id", h.members.DeleteMember, auth, write)

	// the membership form is public
	v1.POST("/applications", h.applications.SubmitApplication)
	v1.GET("/applications", h.applications.ListApplications, auth)
	v1.GET("/applications/:id", h.applications.GetApplication, auth)
	v1.POST("/applications/:id/approve", h.applications.ApproveApplication, auth, write)
	v1.POST("/applications/:id/reject", h.applications.RejectApplication, auth, write)

	v1.GET("/donations", h.donations.ListDonations, auth)
	v1.GET("/donations/export", h.donations.ExportDonations, auth, write)
	v1.POST("/donations", h.donations.RecordDonation, auth, write)
	v1.GET("/donations/:id", h.donations.GetDonation, auth)
	v1.PATCH("/donations/:id", h.donations.UpdateDonation, auth, write)
	v1.DELETE("/donations/:id", h.donations.DeleteDonation, auth, write)

	v1.GET("/expenses", h.expenses.ListExpenses, auth)
	v1.POST("/expenses", h.expenses.RecordExpense, auth, write)
	v1.GET("/expenses/:id", h.expenses.GetExpense, auth)
	v1.PATCH("/expenses/:id", h.expenses.UpdateExpense, auth, write)
	v1.DELETE("/expenses/:id", h.expenses.DeleteExpense, auth, write)

	v1.GET("/volunteers", h.volunteers.ListVolunteers, auth)
	v1.POST("/volunteers", h.volunteers.CreateVolunteer, auth, write)
	v1.GET("/volunteers/:id", h.volunteers.GetVolunteer, auth)
	v1.PATCH("/volunteers/:id", h.volunteers.UpdateVolunteer, auth, write)
	v1.DELETE("/volunteers/:id", h.volunteers.DeleteVolunteer, auth, write)

	v1.GET("/pujas", h.pujas.ListPujas, auth)
	v1.GET("/pujas/upcoming", h.pujas.UpcomingPujas, auth)
	v1.POST("/pujas", h.pujas.SchedulePuja, auth, write)
	v1.GET("/pujas/:id", h.pujas.GetPuja, auth)
	v1.PATCH("/pujas/:id", h.pujas.UpdatePuja, auth, write)
	v1.DELETE("/pujas/:id", h.pujas.DeletePuja, auth, write)
	v1.POST("/pujas/:id/cancel", h.pujas.CancelPuja, auth, write)
	v1.POST("/pujas/:id/complete", h.pujas.CompletePuja, auth, write)

	v1.GET("/templates", h.templates.ListTemplates, auth)
	v1.POST("/templates", h.templates.CreateTemplate, auth, write)
	v1.GET("/templates/:id", h.templates.GetTemplate, auth)
	v1.PATCH("/templates/:id", h.templates.UpdateTemplate, auth, write)
	v1.DELETE("/templates/:id", h.templates.DeleteTemplate, auth, write)
	v1.POST("/templates/:id/render", h.templates.RenderTemplate, auth)

	v1.GET("/transactions", h.transactions.ListTransactions, auth)
	v1.POST("/transactions", h.transactions.CreateTransaction, auth, write)
	v1.GET("/transactions/:id", h.transactions.GetTransaction, auth)
	v1.PATCH("/transactions/:id", h.transactions.UpdateTransaction, auth, write)
	v1.DELETE("/transactions/:id", h.transactions.DeleteTransaction, auth, write)
}

// ServeHTTP lets tests drive the router without a listener
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start listens on the configured address until Shutdown is called. The rate
// limiter's visitor cleanup runs for as long as ctx is alive.
func (s *Server) Start(ctx context.Context) error {
	go s.rateLimiter.Cleanup(ctx)

	s.logger.Info("starting http server",
		"addr", s.cfg.Server.Address(),
		"environment", s.cfg.Server.Environment,
	)
	return s.echo.Start(s.cfg.Server.Address())
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.echo.Shutdown(ctx)
}
