package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"miniboard/internal/api"
	"miniboard/internal/middleware"
	"miniboard/internal/models"
	"miniboard/internal/repository"
	"miniboard/internal/service"
	"miniboard/internal/storage"
	"miniboard/internal/utils"
	"miniboard/pkg/config"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// 載入應用程式配置
	cfg, err := config.Load(os.Getenv("MINIBOARD_CONFIG_PATH"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(level)
	} else {
		log.WithError(err).Warn("invalid log level, using info")
	}

	// 初始化資料庫連接
	db, err := storage.Open(cfg.DB, log)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	// 確保在程序結束時關閉數據庫連接
	defer db.Close()

	// 自動遷移資料庫結構
	if err := db.AutoMigrate(&models.User{}, &models.Message{}); err != nil {
		log.Fatalf("Failed to auto migrate database: %v", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, cfg.Board.PageSize, log)

	tokens := utils.NewTokenManager(cfg.Session.Secret, time.Duration(cfg.Session.TTLHours)*time.Hour)

	gin.SetMode(gin.ReleaseMode)
	r, err := api.NewRouter(services, api.Options{
		Sessions: middleware.NewSessionManager(tokens, cfg.Session.Cookie),
		Metrics:  middleware.NewMetrics(),
		Logger:   log,
		Title:    cfg.Board.Title,
	})
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	srv := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	go func() {
		log.WithFields(logrus.Fields{"address": cfg.Server.Address, "driver": cfg.DB.Driver}).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to run server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server shutdown")
	}
}
