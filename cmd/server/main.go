package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"accreditation-gateway/internal/admin"
	"accreditation-gateway/internal/api"
	"accreditation-gateway/internal/config"
	"accreditation-gateway/internal/configstore"
	"accreditation-gateway/internal/database"
	"accreditation-gateway/internal/letters"
	"accreditation-gateway/internal/logger"
	"accreditation-gateway/internal/models"
	"accreditation-gateway/internal/submissions"
	"accreditation-gateway/internal/ws"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	log := logger.New(cfg.Env)
	defer log.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("failed to connect to document store", zap.Error(err))
	}

	ctx := context.Background()

	// Configuration load gates form interactivity: the visibility map used
	// for validation is whatever this load produces.
	store := configstore.New(db, cfg.CachePath, log)
	loaded, loadErr := store.Load(ctx)
	degraded := false
	if loadErr != nil {
		log.Warn("config load failed, adopting hardcoded default", zap.Error(loadErr))
		loaded = models.DefaultConfig()
		degraded = true
	}
	state := configstore.NewState(loaded)
	saver := configstore.NewSaver(store, cfg.SaveDelay, log)

	letterClient, err := letters.New(ctx, cfg.GeminiKey, cfg.GeminiModel, log)
	if err != nil {
		log.Warn("letter service unavailable, apology text will be served", zap.Error(err))
	}

	recorder := submissions.NewRecorder(db, log)
	sessions := admin.NewManager(state)

	hub := ws.NewHub()
	go hub.Run()
	state.Subscribe(func(c models.AppConfig) { go hub.NotifyConfig(c) })

	portalHandler := api.NewPortalHandler(state, letterClient, recorder, hub, log, degraded)
	adminHandler := api.NewAdminHandler(state, saver, sessions, recorder, log)

	r := gin.Default()

	// CORS Middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, X-Admin-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "OK") })
	r.GET("/ws", func(c *gin.Context) { hub.ServeWs(c.Writer, c.Request) })

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/portal", portalHandler.GetPortal)
		apiGroup.GET("/countries", portalHandler.GetCountries)
		apiGroup.GET("/translations/:lang", portalHandler.GetTranslations)
		apiGroup.POST("/submit", portalHandler.Submit)

		adminGroup := apiGroup.Group("/admin")
		{
			adminGroup.POST("/login", adminHandler.Login)

			authed := adminGroup.Group("")
			authed.Use(adminHandler.RequireAuth())
			authed.GET("/config", adminHandler.GetConfig)
			authed.PUT("/config", adminHandler.UpdateConfig)
			authed.GET("/requests", adminHandler.ListRequests)
		}
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info("Server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)

	// Flush any pending debounced config write before exiting.
	saver.Stop()
}
