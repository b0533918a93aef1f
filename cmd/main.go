package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"

	"github.com/mstepanov/evreg/internal/handlers"
	"github.com/mstepanov/evreg/internal/jwt"
	"github.com/mstepanov/evreg/internal/logger"
	"github.com/mstepanov/evreg/internal/mailer"
	"github.com/mstepanov/evreg/internal/middlewares"
	"github.com/mstepanov/evreg/internal/migrations"
	"github.com/mstepanov/evreg/internal/models"
	"github.com/mstepanov/evreg/internal/repositories"
	"github.com/mstepanov/evreg/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title evreg API
// @version 1.0.0
// @description Event registration service: accounts, registrations, projects and file attachments
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// config holds application, database, mail, Kafka, upload, logging and JWT
// configuration.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	JWTSecretKey        string
	JWTAccessExpSecond  int
	JWTRefreshExpSecond int

	UIDSecret          string
	CodeTTLSecond      int
	CodeCooldownSecond int

	UploadDir     string
	UploadMaxSize int64
	PublicBaseURL string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	KafkaAddr  string
	KafkaTopic string
}

// parseConfig loads environment variables from a file and returns the
// application configuration with defaults applied.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTAccessExpSecond, err = strconv.Atoi(getEnv("JWT_ACCESS_EXP_SECOND", "900")); err != nil {
		return
	}
	if cfg.JWTRefreshExpSecond, err = strconv.Atoi(getEnv("JWT_REFRESH_EXP_SECOND", "604800")); err != nil {
		return
	}

	// Auth workflow config
	cfg.UIDSecret = getEnv("UID_SECRET", "uid_secret")
	if cfg.CodeTTLSecond, err = strconv.Atoi(getEnv("CODE_TTL_SECOND", "300")); err != nil {
		return
	}
	if cfg.CodeCooldownSecond, err = strconv.Atoi(getEnv("CODE_COOLDOWN_SECOND", "60")); err != nil {
		return
	}

	// Upload config
	cfg.UploadDir = getEnv("UPLOAD_DIR", "uploads")
	if cfg.UploadMaxSize, err = strconv.ParseInt(getEnv("UPLOAD_MAX_SIZE", "10485760"), 10, 64); err != nil {
		return
	}
	cfg.PublicBaseURL = getEnv("PUBLIC_BASE_URL", "")

	// SMTP config; empty host disables delivery
	cfg.SMTPHost = getEnv("SMTP_HOST", "")
	if cfg.SMTPPort, err = strconv.Atoi(getEnv("SMTP_PORT", "587")); err != nil {
		return
	}
	cfg.SMTPUser = getEnv("SMTP_USER", "")
	cfg.SMTPPassword = getEnv("SMTP_PASSWORD", "")
	cfg.SMTPFrom = getEnv("SMTP_FROM", "noreply@localhost")

	// Kafka config; empty address disables the audit stream
	cfg.KafkaAddr = getEnv("KAFKA_ADDR", "")
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "evreg-audit")

	return
}

// run initializes the logger, database, mailer, Kafka writer and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	// Apply migrations
	if err := migrations.Run(ctx, db.DB); err != nil {
		logger.Log.Fatal("migrations failed:", err)
	}

	// Kafka audit stream, optional
	var events services.EventWriter
	if cfg.KafkaAddr != "" {
		kw := &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaAddr),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kw.Close()
		events = kw
		logger.Log.Infof("Kafka audit stream enabled: %s topic %s", cfg.KafkaAddr, cfg.KafkaTopic)
	}

	// Mail delivery, optional
	var sender services.CodeSender
	if cfg.SMTPHost != "" {
		sender = mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom)
	}

	// Initialize JWT service
	tokens := jwt.New(cfg.JWTSecretKey,
		time.Duration(cfg.JWTAccessExpSecond)*time.Second,
		time.Duration(cfg.JWTRefreshExpSecond)*time.Second)

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	codeRepo := repositories.NewVerificationCodeRepository(db, txGetter)
	regReadRepo := repositories.NewRegistrationReadRepository(db, txGetter)
	regWriteRepo := repositories.NewRegistrationWriteRepository(db, txGetter)
	projectReadRepo := repositories.NewProjectReadRepository(db, txGetter)
	projectWriteRepo := repositories.NewProjectWriteRepository(db, txGetter)
	attachmentRepo := repositories.NewAttachmentRepository(db, txGetter)
	statsRepo := repositories.NewStatsReadRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, codeRepo, tokens, sender, events, services.AuthConfig{
		UIDSecret:    cfg.UIDSecret,
		CodeTTL:      time.Duration(cfg.CodeTTLSecond) * time.Second,
		CodeCooldown: time.Duration(cfg.CodeCooldownSecond) * time.Second,
	})
	userService := services.NewUserService(userReadRepo, userWriteRepo)
	registrationService := services.NewRegistrationService(regReadRepo, regWriteRepo, attachmentRepo, events)
	projectService := services.NewProjectService(projectReadRepo, projectWriteRepo, attachmentRepo)
	uploadService := services.NewUploadService(attachmentRepo, services.UploadConfig{
		Dir:           cfg.UploadDir,
		PublicBaseURL: cfg.PublicBaseURL,
		MaxSize:       cfg.UploadMaxSize,
	})
	statsService := services.NewStatsService(statsRepo)

	// Middlewares
	authMW := middlewares.AuthMiddleware(tokens, userReadRepo)
	adminMW := middlewares.AdminMiddleware()
	txMW := middlewares.TxMiddleware(db)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Route("/auth", func(r chi.Router) {
			r.With(txMW).Post("/send-verification-code", handlers.NewSendCodeHandler(authService, models.CodeTypeRegister))
			r.With(txMW).Post("/register", handlers.NewRegisterHandler(authService))
			r.Post("/login", handlers.NewLoginHandler(authService))
			r.With(txMW).Post("/forgot-password/send-code", handlers.NewSendCodeHandler(authService, models.CodeTypeReset))
			r.With(txMW).Post("/forgot-password/reset", handlers.NewResetPasswordHandler(authService))
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMW)

			r.Get("/user/profile", handlers.NewGetProfileHandler())
			r.With(txMW).Put("/user/profile", handlers.NewUpdateProfileHandler(userService))

			r.With(txMW).Post("/registration", handlers.NewCreateRegistrationHandler(registrationService))
			r.Get("/registration/status", handlers.NewRegistrationStatusHandler(registrationService))

			r.With(txMW).Post("/project", handlers.NewCreateProjectHandler(projectService))
			r.Get("/project/my", handlers.NewMyProjectsHandler(projectService))
			r.Get("/project/{projectID}", handlers.NewProjectDetailsHandler(projectService))

			r.With(txMW).Post("/upload/image", handlers.NewUploadHandler(uploadService, cfg.UploadMaxSize))

			// Admin routes
			r.Route("/admin", func(r chi.Router) {
				r.Use(adminMW)

				r.Get("/ping", handlers.NewAdminPingHandler())
				r.Get("/stats", handlers.NewAdminStatsHandler(statsService))
				r.Get("/users", handlers.NewAdminListUsersHandler(userReadRepo))

				r.Get("/registrations", handlers.NewAdminListRegistrationsHandler(registrationService))
				r.With(txMW).Post("/registrations", handlers.NewAdminCreateRegistrationHandler(registrationService))
				r.Get("/registrations/{id}", handlers.NewAdminGetRegistrationHandler(registrationService))
				r.With(txMW).Put("/registrations/{id}", handlers.NewAdminUpdateRegistrationNoteHandler(registrationService))
				r.With(txMW).Delete("/registrations/{id}", handlers.NewAdminDeleteRegistrationHandler(registrationService))
				r.With(txMW).Put("/registrations/{id}/audit", handlers.NewAdminAuditRegistrationHandler(registrationService))

				r.Get("/projects", handlers.NewAdminListProjectsHandler(projectService))
				r.Get("/projects/{id}", handlers.NewAdminGetProjectHandler(projectService))
				r.With(txMW).Put("/projects/{id}", handlers.NewAdminUpdateProjectHandler(projectService))
				r.With(txMW).Delete("/projects/{id}", handlers.NewAdminDeleteProjectHandler(projectService))
			})
		})
	})

	r.Get("/healthz", handlers.NewHealthHandler(db))

	// Uploaded files
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.UploadDir))))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
