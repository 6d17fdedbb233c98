package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"VeriUser/internal/cli/commands"
	"VeriUser/internal/config"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// requestTimeout ограничивает одну команду целиком (импорт крупного файла включительно).
const requestTimeout = 2 * time.Minute

func main() {
	cfg := config.NewConfig()

	if cfg.Version {
		fmt.Printf("VeriUser CLI %s (built %s)\nServer: %s\n", version, buildDate, cfg.ServerURL)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	code := commands.Dispatch(ctx, cfg, flag.Args())
	if code != commands.ExitOK {
		cancel()
		stop()
		os.Exit(code)
	}
}
