package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"vinyl-api/config"
	"vinyl-api/database"
	routes "vinyl-api/internal/app/http"
	"vinyl-api/internal/app/http/middleware"
	"vinyl-api/internal/infra/password"
	"vinyl-api/internal/infra/token"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	logger := config.GetLogger()

	hasher := password.NewHasher()
	s, loader, err := database.InitStore(hasher, logger)
	if err != nil {
		logger.WithError(err).Fatal("bootstrap failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if config.AUTO_RESET {
		go database.RunAutoReset(ctx, s, loader, database.ResetInterval, logger)
		logger.WithField("next_reset_in", database.NextResetIn(s.CreatedAt(), s.Now(), database.ResetInterval).String()).Info("auto reset enabled")
	}

	metrics := middleware.NewMetrics("vinyl")

	r := newEngine(logger, metrics)

	routes.RegisterRoutes(r, routes.Deps{
		Store:     s,
		Loader:    loader,
		Hasher:    hasher,
		Tokens:    token.NewHMAC(config.JWT_SECRET, time.Duration(config.JWT_TTL)*time.Hour),
		Metrics:   metrics,
		Logger:    logger,
		AutoReset: config.AUTO_RESET,
	})

	srv := &http.Server{
		Addr:              ":" + config.PORT,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.WithField("port", config.PORT).Info("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server stopped")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("shutdown")
	}
}

// newEngine registers Recovery innermost, so a recovered panic still reaches
// the access log and metrics as a 500.
func newEngine(logger *logrus.Logger, metrics *middleware.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.RequestLogger(logger), metrics.Middleware(), gin.Recovery())

	// ✅ Add CORS middleware BEFORE registering routes
	r.Use(cors.New(corsConfig(config.CORS_ORIGIN)))
	return r
}

// corsConfig allows any origin for "*" (without credentials), otherwise the
// comma-separated list with credentials.
func corsConfig(origin string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders: []string{"Content-Length", middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	origin = strings.TrimSpace(origin)
	if origin == "" || origin == "*" {
		cfg.AllowAllOrigins = true
		return cfg
	}
	for _, o := range strings.Split(origin, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, o)
		}
	}
	cfg.AllowCredentials = true
	return cfg
}
