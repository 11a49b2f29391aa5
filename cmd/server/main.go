package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/sakaryaihh/akifweb/internal/app"
	"github.com/sakaryaihh/akifweb/internal/config"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	migrateOnly := flag.Bool("migrate", false, "run database migrations and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	setupLogging(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *migrateOnly {
		if errMigrate := app.Migrate(ctx, cfg); errMigrate != nil {
			log.Fatalf("migrate: %v", errMigrate)
		}
		log.Info("migrations applied")
		return
	}

	if errRun := app.RunServer(ctx, cfg); errRun != nil {
		log.Fatalf("server: %v", errRun)
	}
}

// setupLogging routes logrus to stdout, mirrored into a rotated file
// when one is configured.
func setupLogging(cfg *config.Config) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if cfg.Log.File == "" {
		return
	}
	rotated := &lumberjack.Logger{
		Filename:   cfg.Log.File,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		Compress:   true,
	}
	log.SetOutput(io.MultiWriter(os.Stdout, rotated))
}
