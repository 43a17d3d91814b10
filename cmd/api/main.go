package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/splitty/internal/config"
	splittyHttp "github.com/MrJamesThe3rd/splitty/internal/http"
	billHandler "github.com/MrJamesThe3rd/splitty/internal/http/bill"
	friendHandler "github.com/MrJamesThe3rd/splitty/internal/http/friend"
	sessionHandler "github.com/MrJamesThe3rd/splitty/internal/http/session"
	"github.com/MrJamesThe3rd/splitty/internal/logging"
	"github.com/MrJamesThe3rd/splitty/internal/roster"
	"github.com/MrJamesThe3rd/splitty/internal/roster/store"
	"github.com/MrJamesThe3rd/splitty/internal/seed"
	"github.com/MrJamesThe3rd/splitty/internal/session"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Setup(os.Stderr, cfg.Log.Level, true)

	friends, err := seed.Initial(cfg.Seed.File, cfg.Seed.Defaults, cfg.Avatar.BaseURL)
	if err != nil {
		slog.Error("failed to load initial friends", "error", err)
		os.Exit(1)
	}

	sess := session.New(roster.NewService(store.New()))
	if err := sess.Seed(context.Background(), friends); err != nil {
		slog.Error("failed to seed roster", "error", err)
		os.Exit(1)
	}

	var (
		sessionH = sessionHandler.NewHandler(sess)
		friendH  = friendHandler.NewHandler(sess, cfg.Avatar.BaseURL)
		billH    = billHandler.NewHandler(sess)
	)

	router := splittyHttp.New(cfg.Server.CORSOrigins, sessionH, friendH, billH)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "addr", server.Addr, "friends", len(friends))

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
