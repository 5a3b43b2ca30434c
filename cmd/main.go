package main

import (
	"cloud-drive-server/config"
	_ "cloud-drive-server/docs"
	"cloud-drive-server/internal/handler"
	"cloud-drive-server/internal/middleware"
	"cloud-drive-server/internal/ports"
	"cloud-drive-server/internal/repository"
	"cloud-drive-server/internal/security"
	"cloud-drive-server/internal/service"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Cloud-drive-server
// @version 1.0
// @description REST API файлового хранилища: загрузка, поиск, совместный доступ и учёт занятого места

// @host localhost:8080

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	configPath := os.Getenv("DRIVE_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	if cfg.DatabaseConfig.Migrate {
		if err := config.MigrateDatabase(cfg.DatabaseConfig.DSN); err != nil {
			log.Fatalf("Ошибка миграции БД: %v", err)
		}
	}

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка при закрытии БД: %v", err)
		}
	}()

	var views ports.ViewRevalidator = repository.LogRevalidator{}
	if cfg.RedisConfig.Addr != "" {
		redisClient, err := config.SetupRedis(&cfg.RedisConfig)
		if err != nil {
			log.Fatalf("Ошибка подключения к Redis: %v", err)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("Ошибка при закрытии Redis: %v", err)
			}
		}()
		views = repository.NewViewRepository(redisClient)
	} else {
		log.Println("Redis не настроен, ревалидация представлений только логируется")
	}

	blobs, err := setupBlobStore(ctx, &cfg.S3Config)
	if err != nil {
		log.Fatalf("Ошибка создания объектного хранилища: %v", err)
	}

	srv, router := config.SetupServer(cfg.ServerAddr)

	fileRepo := repository.NewFileRepository(db)
	userRepo := repository.NewUserRepository(db)

	jwtService := security.NewJWTService(&cfg.JWT)
	userService := service.NewUserService(userRepo, jwtService, &cfg.Admin)
	fileService := service.NewFileService(fileRepo, blobs, userService, views)

	authHandler := handler.NewAuthenticationHandler(userService)
	userHandler := handler.NewUserHandler(userService)
	fileHandler := handler.NewFileHandler(fileService, views, &cfg.Files)

	router.Use(middleware.Metrics)
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	setupAuthRoutes(router, authHandler, jwtService)
	setupUserRoutes(router, userHandler)
	setupFileRoutes(router, fileHandler, jwtService)

	runServer(ctx, srv)
}

func setupBlobStore(ctx context.Context, cfg *config.S3Config) (ports.BlobStore, error) {
	if cfg.Driver == "minio" {
		return service.NewMinioService(ctx, cfg)
	}
	return service.NewS3Service(ctx, cfg)
}

func setupAuthRoutes(r chi.Router, h *handler.AuthenticationHandler, jwtService *security.JWTService) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Use(security.JWTMiddleware(jwtService))
		r.Get("/me", h.Me)
	})
}

func setupUserRoutes(r chi.Router, h *handler.UserHandler) {
	r.Post("/api/users", h.RegisterUser)
}

func setupFileRoutes(r chi.Router, h *handler.FileHandler, jwtService *security.JWTService) {
	r.Route("/api/files", func(r chi.Router) {
		r.Use(security.JWTMiddleware(jwtService))
		r.Get("/", h.ListFiles)
		r.Post("/", h.UploadFile)
		r.Get("/usage", h.GetUsage)
		r.Get("/types/{type}", h.ListFilesByType)

		r.Route("/{file_id}", func(r chi.Router) {
			r.Patch("/", h.RenameFile)
			r.Delete("/", h.DeleteFile)
			r.Get("/download", h.DownloadFile)
			r.Post("/share", h.ShareFile)
		})
	})
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		log.Println("сервер запущен на " + server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("ошибка работы сервера: %v", err)
		}
	case sig := <-signalChannel:
		log.Printf("получен сигнал %v остановки работы сервера ", sig)
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		log.Printf("ошибка при остановке сервера: %v", err)
	} else {
		log.Println("Сервер успешно остановлен")
	}
}
