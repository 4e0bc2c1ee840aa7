package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/wgopar/usd-conversions-agent/internal/cli"
)

var version = "dev"

// @title USD Conversions Agent API
// @version 0.1.0
// @description Live USD exchange rates with provider fallback and an optional generated market summary.
// @BasePath /
func main() {
	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand(version).ExecuteContext(ctx); err != nil {
		logrus.WithError(err).Error("usd-conversions-agent failed")
		stop()
		os.Exit(1)
	}
}
