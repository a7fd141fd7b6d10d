package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"gallery/internal/auth"
	"gallery/internal/client/met"
	"gallery/internal/config"
	cronrunner "gallery/internal/cron"
	"gallery/internal/db"
	"gallery/internal/handler"
	"gallery/internal/logger"
	gormrepository "gallery/internal/repository/gorm"
	"gallery/internal/service"

	_ "gallery/docs"
)

func main() {
	cfgPath := os.Getenv("GALLERY_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	envOnly := false
	if envOnlyRaw := os.Getenv("GALLERY_ENV_ONLY"); envOnlyRaw != "" {
		envOnly = strings.EqualFold(envOnlyRaw, "true") || envOnlyRaw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		panic(err)
	}

	logger, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	dbConn, err := db.Open(cfg.DB)
	if err != nil {
		logger.Fatal("db open failed", zap.Error(err))
	}
	defer db.Close(dbConn)

	if err := db.SetTimezone(dbConn, cfg.DB.Timezone); err != nil {
		logger.Warn("failed to set timezone", zap.Error(err))
	}
	if err := db.AutoMigrate(dbConn); err != nil {
		logger.Fatal("auto-migrate failed", zap.Error(err))
	}

	catalogHTTP := &http.Client{Timeout: cfg.Catalog.Timeout}
	catalogClient := met.NewClient(catalogHTTP, cfg.Catalog.BaseURL, cfg.Catalog.Timeout)
	store := gormrepository.New(dbConn.Gorm)

	authService := &auth.Service{Repo: store, Config: cfg.Auth, Logger: logger}
	if err := authService.EnsureAdminUser(context.Background()); err != nil {
		logger.Warn("admin bootstrap failed", zap.Error(err))
	}

	resolver := &service.ArtworkResolver{
		Client:     catalogClient,
		Logger:     logger,
		WindowSize: cfg.Catalog.ResolveWindow,
	}
	linkService := &service.LinkService{Repo: store, Client: catalogClient, Logger: logger}
	coverService := &service.CoverService{Repo: store, Client: catalogClient, Logger: logger}

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware())

	requireAdmin := auth.RequireAdminMiddleware(cfg.Auth)

	healthHandler := &handler.HealthHandler{DB: dbConn.Gorm}
	healthHandler.Register(engine)
	authHandler := &handler.AuthHandler{Service: authService, Config: cfg.Auth, Logger: logger}
	authHandler.Register(engine, requireAdmin)
	collectionHandler := &handler.CollectionHandler{
		Repo:     store,
		Covers:   coverService,
		Resolver: resolver,
		Links:    linkService,
		Logger:   logger,
	}
	collectionHandler.Register(engine)
	adminHandler := &handler.AdminCollectionHandler{Repo: store, Links: linkService, Logger: logger}
	adminHandler.Register(engine, requireAdmin)
	favoriteHandler := &handler.FavoriteHandler{Repo: store, Logger: logger}
	favoriteHandler.Register(engine)
	commentHandler := &handler.CommentHandler{Repo: store, Logger: logger}
	commentHandler.Register(engine)

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Cron.Enabled {
		cronRunner := cronrunner.New(logger, ctx)
		_, err := cronRunner.Add(cfg.Cron.CoverBackfill, func(ctx context.Context) {
			filled, err := coverService.BackfillMissing(ctx, 100)
			if err != nil {
				logger.Warn("cover backfill sweep failed", zap.Error(err))
				return
			}
			if filled > 0 {
				logger.Info("cover backfill sweep ok", zap.Int("filled", filled))
			}
		})
		if err != nil {
			logger.Warn("cron register cover backfill failed", zap.Error(err))
		}
		cronRunner.Start()
		defer cronRunner.Stop()
	}

	errCh := make(chan error, 1)

	go func() {
		logger.Info("http server starting", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,PATCH,DELETE,OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
