// Package main implements the entry point for the taskboard API server,
// which handles user accounts, sessions, and per-user task boards.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := initializeApp(ctx)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
