// Package main is the entry point for the We Are Creatives API server.
// Configuration comes from the environment; everything else is wired in
// internal/server.
package main

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/wearecreatives/api/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	port := 8080
	if portStr := os.Getenv("PORT"); portStr != "" {
		var err error
		port, err = strconv.Atoi(portStr)
		if err != nil {
			logger.Error("invalid PORT value", slog.String("value", portStr))
			os.Exit(1)
		}
	}

	srv := server.New(server.Config{Port: port}, logger)

	if err := srv.Start(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
