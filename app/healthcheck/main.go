package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"smartCampusReco/internal/healthcheck"
	"smartCampusReco/pkg/config"
)

// Exits 0 only when the service reports a connected store.
func main() {
	defaultURL := "http://localhost:5002"
	if cfg, err := config.Load(); err == nil {
		defaultURL = cfg.HealthCheck.URL
	}

	url := flag.String("url", defaultURL, "base URL of the recommendation service")
	flag.Parse()

	report, err := healthcheck.NewChecker(*url, nil).Run(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	report.Print(os.Stdout)
	if !report.Connected {
		os.Exit(1)
	}
}
