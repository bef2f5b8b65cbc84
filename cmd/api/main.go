package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/FyliaCare/Cv-Builder-App/internal/api"
	"github.com/FyliaCare/Cv-Builder-App/internal/config"
	"github.com/FyliaCare/Cv-Builder-App/internal/generate"
	"github.com/FyliaCare/Cv-Builder-App/internal/resume"
)

func main() {
	cfg := config.MustLoad()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	generator := generate.New()

	seedBullets := generator.Generate(
		resume.SeedDescription,
		"Sales Representative",
		"Intertek",
		cfg.Editor.DefaultBulletCount,
	)
	session := resume.NewSession(resume.NewRecord(seedBullets))
	logger.Info("editing session ready")

	router := api.NewRouter(logger)
	api.RegisterRoutes(router, session, generator, cfg, logger)

	address := fmt.Sprintf(":%d", cfg.API.Port)
	logger.Info("api listening", slog.String("address", address))

	if err := router.Run(address); err != nil {
		log.Fatalf("failed to start api server: %v", err)
	}
}
