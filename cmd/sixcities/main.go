// Command sixcities wires the state engine to a running backend and walks
// through a browse session from the terminal: verify the saved session, load
// the catalog, show per-city counts and, with credentials in the
// environment, log in and list favorites.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"sixcities/internal/client"
	"sixcities/internal/config"
	"sixcities/internal/domain"
	"sixcities/internal/store"
	"sixcities/internal/token"
)

func main() {
	_ = godotenv.Load()

	log := slog.New(tint.NewHandler(os.Stderr, nil))
	slog.SetDefault(log)

	cfg, err := config.LoadClient()
	if err != nil {
		log.Error("load config", "err", err)
		os.Exit(1)
	}

	tokens, err := token.NewFileStore(cfg.TokenFile)
	if err != nil {
		log.Error("open token store", "err", err)
		os.Exit(1)
	}

	api := client.New(cfg.BaseURL, tokens, client.WithTimeout(cfg.Timeout))
	st := store.New()
	api.OnUnauthorized(st.ForceUnauthorized)
	actions := store.NewActions(api, st, tokens)

	ctx := context.Background()

	if err := actions.VerifySession(ctx); err != nil {
		log.Info("no active session", "err", err)
	}
	log.Info("session", "status", st.AuthStatus())

	if email, password := os.Getenv("LOGIN_EMAIL"), os.Getenv("LOGIN_PASSWORD"); email != "" {
		if err := actions.Login(ctx, email, password); err != nil {
			log.Error("login", "err", err)
			os.Exit(1)
		}
		if e := st.ServerError(); e != nil {
			log.Error("login rejected", "message", e.Message)
			os.Exit(1)
		}
		log.Info("logged in", "email", email)
	}

	if err := actions.FetchAllOffers(ctx); err != nil {
		log.Error("fetch offers", "err", err)
		os.Exit(1)
	}
	if e := st.ServerError(); e != nil {
		log.Error("fetch offers failed", "status", e.Status, "message", e.Message)
		os.Exit(1)
	}

	fmt.Printf("%d offers loaded\n", len(st.AllOffers()))
	for _, city := range st.Cities() {
		st.SwitchCity(city)
		fmt.Printf("  %-12s %d offers\n", city.Name, len(st.OffersInCity()))
	}

	if st.AuthStatus() == domain.AuthAuthorized {
		if err := actions.FetchFavorites(ctx); err != nil {
			log.Error("fetch favorites", "err", err)
			os.Exit(1)
		}
		fmt.Printf("%d favorites\n", len(st.FavoriteOffers()))
	}
}
