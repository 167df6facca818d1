package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/africommerce/backend/internal/application/catalog"
	dashboardapp "github.com/africommerce/backend/internal/application/dashboard"
	logisticsapp "github.com/africommerce/backend/internal/application/logistics"
	partnerapp "github.com/africommerce/backend/internal/application/partner"
	tradeapp "github.com/africommerce/backend/internal/application/trade"
	"github.com/africommerce/backend/internal/domain/insight"
	"github.com/africommerce/backend/internal/infrastructure/auth"
	"github.com/africommerce/backend/internal/infrastructure/config"
	"github.com/africommerce/backend/internal/infrastructure/logger"
	"github.com/africommerce/backend/internal/infrastructure/notify"
	"github.com/africommerce/backend/internal/infrastructure/persistence"
	"github.com/africommerce/backend/internal/infrastructure/storage"
	"github.com/africommerce/backend/internal/infrastructure/telemetry"
	"github.com/africommerce/backend/internal/interfaces/http/handler"
	"github.com/africommerce/backend/internal/interfaces/http/middleware"
	"github.com/africommerce/backend/internal/interfaces/http/router"
	appsync "github.com/africommerce/backend/internal/sync"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting AfriCommerce Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize tracing
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Initialize database connection with a zap-backed GORM logger
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	serviceRepo := persistence.NewGormServiceRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	deliveryRepo := persistence.NewGormDeliveryRepository(db.DB)

	// Object storage for product images
	var objectStorage catalogapp.ObjectStorageService
	if cfg.Storage.Enabled {
		s3Storage, err := storage.NewS3ObjectStorage(cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		objectStorage = s3Storage
		log.Info("Object storage enabled", zap.String("bucket", cfg.Storage.Bucket))
	} else {
		objectStorage = storage.NewStubObjectStorage()
		log.Info("Object storage disabled, using in-memory stub")
	}

	// VIP classification thresholds from config
	vipPolicy := insight.VIPPolicy{
		MinSpend:  decimal.NewFromFloat(cfg.Dashboard.VIPMinSpend),
		MinOrders: cfg.Dashboard.VIPMinOrders,
	}

	// Initialize application services
	productService := catalogapp.NewProductService(productRepo, objectStorage)
	serviceService := catalogapp.NewServiceService(serviceRepo)
	customerService := partnerapp.NewCustomerService(customerRepo, orderRepo, vipPolicy)
	orderService := tradeapp.NewOrderService(orderRepo, productRepo, serviceRepo, customerRepo)
	deliveryService := logisticsapp.NewDeliveryService(deliveryRepo, orderRepo, customerRepo)
	summaryService := dashboardapp.NewSummaryService(orderRepo, productRepo, customerRepo, deliveryRepo, vipPolicy)

	// Authentication
	jwtService := auth.NewJWTService(cfg.JWT)
	sessionProvider := auth.NewContextSessionProvider()

	// Mutation notifications over Redis pub/sub; fall back to a no-op
	// when Redis is unreachable so the dashboard still works standalone.
	var notifier appsync.Notifier
	redisNotifier, err := notify.NewRedisNotifier(cfg.Redis, notify.WithNotifierLogger(log))
	if err != nil {
		log.Warn("Redis unavailable, mutation notifications disabled", zap.Error(err))
		notifier = appsync.NopNotifier{}
	} else {
		notifier = redisNotifier
		defer func() {
			if err := redisNotifier.Close(); err != nil {
				log.Error("Error closing notifier", zap.Error(err))
			}
		}()
		log.Info("Redis notifier connected", zap.String("addr", cfg.Redis.Addr()))
	}

	// Dashboard workspaces: one synchronizer per management screen,
	// handed out per vendor so sessions never share collections
	workspaceHub := dashboardapp.NewWorkspaceHub(orderRepo, productRepo, serviceRepo, customerRepo, deliveryRepo, sessionProvider, notifier)
	defer workspaceHub.Close()

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService)
	serviceHandler := handler.NewServiceHandler(serviceService)
	customerHandler := handler.NewCustomerHandler(customerService)
	orderHandler := handler.NewOrderHandler(orderService)
	deliveryHandler := handler.NewDeliveryHandler(deliveryService)
	dashboardHandler := handler.NewDashboardHandler(summaryService, workspaceHub)
	systemHandler := handler.NewSystemHandler()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request ID first so every later stage can tag
	// its logs, then panic recovery, request logging, tracing, security
	// headers, and CORS.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	if tracerProvider.IsEnabled() {
		engine.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	}
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	// Versioned API routes behind JWT authentication
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/api/v1/ping",
			"/api/v1/system/ping",
			"/api/v1/system/info",
		},
		Logger: log,
	}))

	// Catalog domain (products, services)
	catalogRoutes := router.NewDomainGroup("catalog", "/catalog")
	catalogRoutes.POST("/products", productHandler.Create)
	catalogRoutes.GET("/products", productHandler.List)
	catalogRoutes.GET("/products/:id", productHandler.GetByID)
	catalogRoutes.PUT("/products/:id", productHandler.Update)
	catalogRoutes.PATCH("/products/:id/stock", productHandler.AdjustStock)
	catalogRoutes.POST("/products/:id/image", productHandler.UploadImage)
	catalogRoutes.DELETE("/products/:id", productHandler.Delete)

	catalogRoutes.POST("/services", serviceHandler.Create)
	catalogRoutes.GET("/services", serviceHandler.List)
	catalogRoutes.GET("/services/:id", serviceHandler.GetByID)
	catalogRoutes.PUT("/services/:id", serviceHandler.Update)
	catalogRoutes.PATCH("/services/:id/active", serviceHandler.SetActive)
	catalogRoutes.DELETE("/services/:id", serviceHandler.Delete)

	// Partner domain (customers)
	partnerRoutes := router.NewDomainGroup("partner", "/partner")
	partnerRoutes.POST("/customers", customerHandler.Create)
	partnerRoutes.GET("/customers", customerHandler.List)
	partnerRoutes.GET("/customers/:id", customerHandler.GetByID)
	partnerRoutes.PUT("/customers/:id", customerHandler.Update)
	partnerRoutes.DELETE("/customers/:id", customerHandler.Delete)

	// Trade domain (orders)
	tradeRoutes := router.NewDomainGroup("trade", "/trade")
	tradeRoutes.POST("/orders", orderHandler.Create)
	tradeRoutes.GET("/orders", orderHandler.List)
	tradeRoutes.GET("/orders/:id", orderHandler.GetByID)
	tradeRoutes.PATCH("/orders/:id/status", orderHandler.Transition)
	tradeRoutes.DELETE("/orders/:id", orderHandler.Delete)

	// Logistics domain (deliveries)
	logisticsRoutes := router.NewDomainGroup("logistics", "/logistics")
	logisticsRoutes.POST("/deliveries", deliveryHandler.Create)
	logisticsRoutes.GET("/deliveries", deliveryHandler.List)
	logisticsRoutes.GET("/deliveries/:id", deliveryHandler.GetByID)
	logisticsRoutes.PUT("/deliveries/:id", deliveryHandler.Update)
	logisticsRoutes.PATCH("/deliveries/:id/status", deliveryHandler.Transition)
	logisticsRoutes.DELETE("/deliveries/:id", deliveryHandler.Delete)

	// Dashboard domain (derived summary, screen refresh)
	dashboardRoutes := router.NewDomainGroup("dashboard", "/dashboard")
	dashboardRoutes.GET("/summary", dashboardHandler.Summary)
	dashboardRoutes.GET("/screens", dashboardHandler.Screens)
	dashboardRoutes.POST("/refresh", dashboardHandler.Refresh)

	// System routes
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/ping", systemHandler.Ping)

	r.Register(catalogRoutes).
		Register(partnerRoutes).
		Register(tradeRoutes).
		Register(logisticsRoutes).
		Register(dashboardRoutes).
		Register(systemRoutes)

	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler reports process and database liveness
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
