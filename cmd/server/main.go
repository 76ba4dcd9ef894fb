// Package main provides the entry point for the MediLabs AI site server
package main

import (
	"log/slog"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/rahulchoudhary2961/MediLabsAI/domain/contact"
	"github.com/rahulchoudhary2961/MediLabsAI/domain/email"
	"github.com/rahulchoudhary2961/MediLabsAI/domain/health"
	"github.com/rahulchoudhary2961/MediLabsAI/domain/scheduler"
	"github.com/rahulchoudhary2961/MediLabsAI/domain/site"
	"github.com/rahulchoudhary2961/MediLabsAI/domain/tracing"
	"github.com/rahulchoudhary2961/MediLabsAI/internal/config"
	"github.com/rahulchoudhary2961/MediLabsAI/internal/server"
	"github.com/rahulchoudhary2961/MediLabsAI/pkg/logger"
)

func main() {
	// Load .env files if present (for local development)
	// Load() won't overwrite existing vars, Overload() will
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	fx.New(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),
		modules(),
	).Run()
}

func modules() fx.Option {
	return fx.Options(
		// Infrastructure modules
		logger.Module,
		config.Module,
		server.Module,
		tracing.Module,

		// Scheduler module (cron-based housekeeping)
		scheduler.Module,

		// Email module (EmailJS, Mailgun or no-op delivery)
		email.Module,

		// Domain modules
		contact.Module,
		health.Module,
		site.Module,
	)
}
