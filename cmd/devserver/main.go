package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"sixcities/internal/config"
	"sixcities/internal/database"
	jwtsvc "sixcities/internal/pkg/jwt"
	"sixcities/internal/server"
)

func main() {
	_ = godotenv.Load()

	log := slog.New(tint.NewHandler(os.Stderr, nil))
	slog.SetDefault(log)

	cfg, err := config.LoadServer()
	if err != nil {
		log.Error("load config", "err", err)
		os.Exit(1)
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Error("connect database", "err", err)
		os.Exit(1)
	}
	if err := database.Migrate(db); err != nil {
		log.Error("migrate database", "err", err)
		os.Exit(1)
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	r := server.New(db, j)

	log.Info("dev server listening", "addr", cfg.Addr, "base_path", server.BasePath)
	if err := r.Run(cfg.Addr); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
