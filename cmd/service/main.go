package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/JustRob12/HomeWorkoutGenerator/internal"
	"github.com/JustRob12/HomeWorkoutGenerator/internal/config"
	"github.com/JustRob12/HomeWorkoutGenerator/internal/logging"

	log "github.com/sirupsen/logrus"
)

// secrets never live in config.toml
type secrets struct {
	sentryDSN        string
	postgresPassword string
	redisPassword    string
	honeycombEnabled bool
}

func secretsFromEnv() secrets {
	s := secrets{
		sentryDSN:        os.Getenv("SENTRY_DSN"),
		postgresPassword: os.Getenv("HWG_POSTGRES_PASS"),
		redisPassword:    os.Getenv("HWG_REDIS_PASS"),
		honeycombEnabled: os.Getenv("HONEYCOMB_ENABLED") == "true",
	}
	if s.postgresPassword == "" {
		log.Warnln("postgres password not set, use HWG_POSTGRES_PASS")
	}
	if s.redisPassword == "" {
		log.Warnln("redis password not set, use HWG_REDIS_PASS")
	}
	if s.honeycombEnabled && os.Getenv("HONEYCOMB_API_KEY") == "" {
		log.Warnln("honeycomb enabled but HONEYCOMB_API_KEY not set")
	}
	return s
}

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	if err := run(*env, *configPath); err != nil {
		fmt.Fprintf(os.Stderr, "home workout service: %s\n", err)
		os.Exit(1)
	}
}

func run(env, configPath string) error {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	sec := secretsFromEnv()
	if err := logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        sec.sentryDSN,
		SentryServerName: "home-workout-backend",
	}); err != nil {
		log.Errorf("logging setup: %s", err)
	}

	log.WithFields(log.Fields{
		"env":       cfg.Environment,
		"port":      cfg.Port,
		"logs_path": cfg.LogsPath,
		"honeycomb": sec.honeycombEnabled,
	}).Warn("starting home workout service")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, err := internal.NewServer(ctx, internal.NewServerParams{
		Config:                  cfg,
		PostgresPassword:        sec.postgresPassword,
		RedisPassword:           sec.redisPassword,
		HoneycombTracingEnabled: sec.honeycombEnabled,
	})
	if err != nil {
		return fmt.Errorf("new server: %w", err)
	}

	server.Serve(cfg.Host, cfg.Port)

	<-ctx.Done()
	log.Warnf("shutdown signal received: %s", context.Cause(ctx))
	server.GracefulShutdown()

	return nil
}
