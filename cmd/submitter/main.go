// Command submitter reads an application from a JSON file and submits it to
// the MSP intake service configured via MSP_API_BASE_URL.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"mspdirect/internal/msp/intake"
	"mspdirect/internal/msp/metrics"
	"mspdirect/internal/msp/models"
	"mspdirect/internal/msp/submitter"
	"mspdirect/internal/platform/config"
	"mspdirect/internal/platform/logger"
)

func main() {
	var (
		file = flag.String("file", "", "path to the application JSON file")
		kind = flag.String("kind", string(models.KindEnrolment), "application kind: enrolment or assistance")
	)
	flag.Parse()

	if err := run(*file, *kind); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(file, rawKind string) error {
	if file == "" {
		return fmt.Errorf("-file is required")
	}

	kind, err := models.ParseKind(rawKind)
	if err != nil {
		return err
	}

	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("open application file: %w", err)
	}
	defer f.Close()

	app, err := models.DecodeApplication(kind, f)
	if err != nil {
		return fmt.Errorf("decode application: %w", err)
	}

	cfg := config.FromEnv()
	log := logger.New()

	client := intake.NewClient(cfg.BaseURL, cfg.Timeout, log)
	svc := submitter.New(client, log, submitter.WithMetrics(metrics.New()))

	if err := svc.Submit(context.Background(), app); err != nil {
		return err
	}

	fmt.Println(app.Base().ReferenceNumber)
	return nil
}
