package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/subosito/gotenv"
	"go.uber.org/zap"

	"github.com/kaito5551995/slack-estimate-bot/internal/api"
	"github.com/kaito5551995/slack-estimate-bot/internal/canvas"
	"github.com/kaito5551995/slack-estimate-bot/internal/config"
	"github.com/kaito5551995/slack-estimate-bot/internal/generator"
	"github.com/kaito5551995/slack-estimate-bot/internal/layout"
	"github.com/kaito5551995/slack-estimate-bot/internal/render"
	"github.com/kaito5551995/slack-estimate-bot/internal/slackbot"
	"github.com/kaito5551995/slack-estimate-bot/pkg/utils"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = gotenv.Load()

	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := utils.NewLogger(utils.LoggerConfig{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting estimate bot",
		zap.Int("port", cfg.Server.Port))

	// One canvas per document; the factory captures only immutable
	// options, so concurrent generations stay independent.
	canvasOpts := canvas.Options{
		FontDir: cfg.Fonts.Dir,
		Seal: canvas.SealText{
			Right:  cfg.Seal.Right,
			Middle: cfg.Seal.Middle,
			Left:   cfg.Seal.Left,
		},
	}
	newCanvas := func() canvas.Canvas { return canvas.NewPDF(canvasOpts) }

	layoutEngine := layout.NewEngine(cfg.Layout, cfg.Issuer, logger)
	docGenerator := generator.NewGenerator(layoutEngine, newCanvas, logger)
	excelRenderer := render.NewExcelRenderer(cfg.Issuer.Name, logger)

	slackClient := slackbot.NewClient(cfg.Slack.BotToken, logger)
	slackHandler := slackbot.NewHandler(slackClient, docGenerator,
		cfg.Slack.SigningSecret, cfg.Slack.APITimeout, logger)
	apiHandler := api.NewHandler(docGenerator, excelRenderer, logger)

	if cfg.Logger.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "slack-estimate-bot",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	router.POST(cfg.Slack.CommandPath, slackHandler.HandleCommand)
	router.POST(cfg.Slack.InteractPath, slackHandler.HandleInteraction)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/documents", apiHandler.CreateDocument)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited successfully")
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}
