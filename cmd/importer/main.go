package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"mutual_cartera/internal/adapter/persistence/repository"
	"mutual_cartera/internal/infrastructure/config"
	"mutual_cartera/internal/infrastructure/database"
	"mutual_cartera/internal/infrastructure/logging"
	"mutual_cartera/internal/infrastructure/spreadsheet"
	"mutual_cartera/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
	"github.com/schollz/progressbar/v3"
)

func main() {
	file := flag.String("file", "", "Excel workbook to import (.xlsx)")
	configPath := flag.String("config", config.Path(), "TOML config file")
	verbose := flag.Bool("v", false, "List skipped rows")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: importer -file cartera.xlsx [-config config/cartera.toml]")
		os.Exit(2)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.NewLogger(cfg.Logging.Level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger, *file, *verbose); err != nil {
		logger.Error().Err(err).Msg("import failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *logging.Logger, path string, verbose bool) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	ddb, err := database.ConnectDynamoDB(ctx, logger)
	if err != nil {
		return err
	}

	uc := usecase.NewImportUseCase(
		spreadsheet.NewExcelReader(),
		repository.NewInstallmentDynamoRepository(ddb, cfg.Storage.InstallmentsTable, logger),
		repository.NewClientDynamoRepository(ddb, cfg.Storage.ClientsTable, logger),
		usecase.ImportOptions{
			BatchSize:            cfg.Import.BatchSize,
			MaxConcurrentBatches: cfg.Import.MaxConcurrentBatches,
			BatchesPerSecond:     cfg.Import.BatchesPerSecond,
			Location:             cfg.Location(),
		},
		logger,
	)

	var bar *progressbar.ProgressBar
	uc.WithProgress(func(committed, total int) {
		if bar == nil {
			bar = progressbar.Default(int64(total), "batches")
		}
		_ = bar.Set(committed)
	})

	summary, err := uc.Import(ctx, f)
	if bar != nil {
		_ = bar.Finish()
		fmt.Println()
	}
	if err != nil {
		return err
	}

	fmt.Printf("import %s\n", summary.ImportID)
	fmt.Printf("  rows:         %d\n", summary.Rows)
	fmt.Printf("  installments: %d\n", summary.Installments)
	fmt.Printf("  clients:      %d\n", summary.Clients)
	fmt.Printf("  batches:      %d\n", summary.Batches)
	fmt.Printf("  skipped:      %d\n", len(summary.Skipped))
	if verbose {
		for _, s := range summary.Skipped {
			fmt.Printf("    row %d: %v\n", s.Row, s.Reason)
		}
	}
	fmt.Printf("  took:         %s\n", summary.FinishedAt.Sub(summary.StartedAt))
	return nil
}
