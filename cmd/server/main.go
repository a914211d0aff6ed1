package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/stparse/stparse/pkg/config"
	"github.com/stparse/stparse/pkg/server"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		Prefix:          "stparse",
	})

	var (
		port    = flag.String("port", "", "Server port (overrides config)")
		cfgFile = flag.String("config", "", "Config file")
	)
	flag.Parse()

	cfg, err := config.Build(*cfgFile, nil)
	if err != nil {
		logger.Fatal("config error", "err", err)
	}
	if *port != "" {
		cfg.Server.Port = *port
	}

	srv := server.New(cfg, logger)
	addr := fmt.Sprintf("0.0.0.0:%s", cfg.Server.Port)
	logger.Info("starting server", "addr", addr)
	if err := srv.Start(addr); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
