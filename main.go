package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/playlabs/tictactoe-arcade/internal"
	"github.com/playlabs/tictactoe-arcade/internal/config"
)

// main - loads the configuration, builds the logger and hands control to
// the application loop.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	logger := newLogger(conf.LogLevel)

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initConfig - resolves config.yml relative to the working directory.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("resolve working directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "config.yml"))
}

// newLogger - builds a JSON logger; any level other than debug falls back
// to info.
func newLogger(logLevel string) *slog.Logger {
	level := slog.LevelInfo
	if logLevel == "debug" {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
