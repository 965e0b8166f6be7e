package main

import (
	"errors"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"readySet/tent"
	"readySet/tower"
)

func main() {
	err := godotenv.Load("readyset.env")
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      logLevel(os.Getenv("LOG_LEVEL")),
		TimeFormat: time.Kitchen,
	})))

	mode := os.Getenv("READYSET_MODE")
	switch mode {
	case "":
		tower.NewBot().Run()
	case "console":
		sitter := tent.NewSitter(tent.NewHooks(), os.Stdout)
		if err := sitter.Run(os.Stdin); err != nil {
			log.Fatalf("Console error: %v", err)
		}
	case "replay":
		sitter := tent.NewSitter(tent.NewHooks(), os.Stdout)
		launcher, err := tent.NewLauncher(os.Getenv("SCRIPT_URL"), sitter)
		if err != nil {
			log.Fatalf("Launcher error: %v", err)
		}
		if err := launcher.Run(); err != nil {
			log.Fatalf("Replay error: %v", err)
		}
	default:
		log.Println("Invalid mode:", mode)
	}
}

func logLevel(name string) slog.Level {
	var level slog.Level
	if name == "" {
		return slog.LevelInfo
	}
	if err := level.UnmarshalText([]byte(name)); err != nil {
		log.Printf("Invalid LOG_LEVEL %q, using info", name)
		return slog.LevelInfo
	}
	return level
}
