package main

import (
	"fmt"
	"os"

	"anpr-service/internal/auth"
	"anpr-service/internal/config"
	"anpr-service/internal/db"
	httphandler "anpr-service/internal/http"
	"anpr-service/internal/http/middleware"
	"anpr-service/internal/logger"
	"anpr-service/internal/ocr"
	"anpr-service/internal/repository"
	"anpr-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	database, err := db.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect database")
	}

	recognitionRepo := repository.NewRecognitionRepository(database)
	eventRepo := repository.NewLprEventRepository(database)

	ocrEngine := ocr.NewClient(cfg)
	recognitionService := service.NewRecognitionService(ocrEngine, recognitionRepo, eventRepo, appLogger)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)

	handler := httphandler.NewHandler(recognitionService, appLogger)
	authMiddleware := middleware.Auth(tokenParser)
	internalMiddleware := middleware.InternalToken(cfg.Auth.InternalToken)
	router := httphandler.NewRouter(handler, authMiddleware, internalMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().Str("addr", addr).Msg("starting anpr service")

	if err := router.Run(addr); err != nil {
		appLogger.Error().Err(err).Msg("failed to start server")
		os.Exit(1)
	}
}
