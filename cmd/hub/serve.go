package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"ubuntuhub/docs"
	"ubuntuhub/internal/config"
	"ubuntuhub/internal/database"
	"ubuntuhub/internal/database/migration"
	handlers "ubuntuhub/internal/http/handler"
	"ubuntuhub/internal/http/middleware"
	"ubuntuhub/internal/logging"
	"ubuntuhub/internal/metrics"
	"ubuntuhub/internal/otel"
	"ubuntuhub/internal/repository/postgres"
	"ubuntuhub/internal/service"
	"ubuntuhub/internal/storage"
)

func serveCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if port != "" {
				cfg.Port = port
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")

	return cmd
}

func serve(ctx context.Context, cfg *config.AppConfig) error {
	log := logging.New(os.Stdout, cfg.Location())
	logging.SetDefault(log)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
		return err
	}

	objStore, err := storage.NewMinIO(ctx, cfg.MinIO)
	if err != nil {
		return fmt.Errorf("failed to initialize object storage: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	domainMetrics, err := metrics.NewDomain(reg)
	if err != nil {
		return err
	}
	httpMetrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return err
	}

	facilities := postgres.NewFacilityPostgres(db)
	svc := handlers.Services{
		Organizations: service.NewOrganizationService(postgres.NewOrganizationPostgres(db)),
		Facilities:    service.NewFacilityService(facilities),
		Bookings:      service.NewBookingService(facilities, postgres.NewBookingPostgres(db), cfg.Booking.MaxDuration(), domainMetrics),
		Polls:         service.NewPollService(postgres.NewPollPostgres(db), domainMetrics),
		Volunteers:    service.NewVolunteerService(postgres.NewVolunteerPostgres(db), domainMetrics),
		Campaigns:     service.NewCampaignService(postgres.NewCampaignPostgres(db), domainMetrics),
		Events:        service.NewEventService(postgres.NewEventPostgres(db), domainMetrics),
		Documents:     service.NewDocumentService(objStore, postgres.NewDocumentPostgres(db), cfg.MinIO.PresignExpiry()),
		Businesses:    service.NewBusinessService(postgres.NewBusinessPostgres(db), postgres.NewBusinessCardPostgres(db)),
		Groups:        service.NewGroupService(postgres.NewGroupPostgres(db)),
		Memberships:   service.NewMembershipPlanService(postgres.NewMembershipPlanPostgres(db)),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    32 << 20,
	})

	app.Use(recover.New())
	// RequestID first so every log line and error envelope carries it
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics" || strings.HasPrefix(c.Path(), "/health")
	})))
	app.Use(middleware.Logger())
	app.Use(httpMetrics.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	configureSwagger(cfg)
	app.Get("/swagger/*", swagger.HandlerDefault)

	handlers.RegisterRoutes(app, db, objStore, svc)

	errCh := make(chan error, 1)
	go func() {
		log.Info("server_started", map[string]any{"port": cfg.Port, "app_host": cfg.AppHost})
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	log.Info("server_stopping", nil)
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.ShutdownWithContext(sctx)
}

// configureSwagger sets the advertised host and scheme. Call it before the server
// accepts requests; SwaggerInfo is read by every doc request.
func configureSwagger(cfg *config.AppConfig) {
	docs.SwaggerInfo.Host = cfg.AppHost
	docs.SwaggerInfo.Schemes = []string{cfg.AppScheme}
}
