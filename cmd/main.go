package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"textbook-chat-backend/internal/client"
	"textbook-chat-backend/internal/config"
	"textbook-chat-backend/internal/handler"
	"textbook-chat-backend/internal/service"
	"textbook-chat-backend/internal/storage"
	"textbook-chat-backend/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "./configs/config.yaml", "配置文件路径")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}

	logger.Infof("Q&A backend: %s, session store: %s", cfg.Backend.BaseURL, cfg.Store.BaseURL)

	// 外部协作方客户端，超时随配置
	qaClient := client.NewQAClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	storeClient := client.NewStoreClient(cfg.Store.BaseURL, cfg.Store.Timeout)

	store := storage.NewMemoryStore()
	chatService := service.NewChatService(store, qaClient)
	historyService := service.NewHistoryService(store, storeClient)

	chatHandler := handler.NewChatHandler(chatService, historyService)

	router := setupRouter(cfg, chatHandler)

	server := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:        router,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	go func() {
		logger.Infof("服务器启动在端口 %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("服务器启动失败: %v", err)
		}
	}()

	// 等待信号优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("服务器正在关闭...")
	if err := server.Close(); err != nil {
		logger.Errorf("服务器关闭失败: %v", err)
	}
	logger.Info("服务器已关闭")
}

func setupRouter(cfg *config.Config, chatHandler *handler.ChatHandler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           time.Duration(cfg.CORS.MaxAge) * time.Second,
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Unix(),
		})
	})

	api := router.Group("/api")
	{
		chat := api.Group("/chat")
		{
			chat.POST("/ask", chatHandler.Ask)
			chat.GET("/turns", chatHandler.GetTurns)
			chat.GET("/history", chatHandler.GetHistory)
			chat.POST("/history/clear", chatHandler.ClearHistory)
			chat.POST("/history/toggle", chatHandler.ToggleHistory)
			chat.POST("/scroll", chatHandler.Scroll)
		}

		api.POST("/render/preview", chatHandler.RenderPreview)
	}

	return router
}
