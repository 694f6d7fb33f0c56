// Package main runs the adventure game server: one TCP client, one
// session, one adventure per process.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/sophistafunk/socket-adventure/internal/config"
	"github.com/sophistafunk/socket-adventure/internal/game/session"
	"github.com/sophistafunk/socket-adventure/internal/game/world"
	"github.com/sophistafunk/socket-adventure/internal/observability"
	"github.com/sophistafunk/socket-adventure/internal/server"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file (optional)")
	port := flag.Int("port", 0, "listen port override")
	flag.Parse()

	var cfg config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
		if err := cfg.Validate(); err != nil {
			log.Fatalf("invalid port override: %v", err)
		}
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	w, err := world.Load()
	if err != nil {
		logger.Fatal("loading world", zap.Error(err))
	}
	logger.Info("world loaded",
		zap.String("game", w.Name),
		zap.Int("rooms", w.RoomCount()),
	)

	runner := session.NewRunner(w, logger)
	srv := server.New(cfg.Server, runner, logger)

	lifecycle := server.NewLifecycle(logger)
	lifecycle.Add("game", &server.FuncService{
		StartFn: func() error {
			return srv.ListenAndServe()
		},
		StopFn: func() {
			srv.Stop()
		},
	})

	logger.Info("adventure server initialized",
		zap.String("addr", cfg.Server.Addr()),
		zap.Duration("startup", time.Since(start)),
	)

	if err := lifecycle.Run(context.Background()); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
