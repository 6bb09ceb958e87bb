package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/metinatakli/cinema-management-system/internal/app"
	"github.com/metinatakli/cinema-management-system/internal/auth"
	"github.com/metinatakli/cinema-management-system/internal/catalog"
	"github.com/metinatakli/cinema-management-system/internal/config"
	"github.com/metinatakli/cinema-management-system/internal/domain"
	"github.com/metinatakli/cinema-management-system/internal/maintenance"
	"github.com/metinatakli/cinema-management-system/internal/receipt"
	"github.com/metinatakli/cinema-management-system/internal/store"
	"github.com/metinatakli/cinema-management-system/internal/ticketing"
	appvalidator "github.com/metinatakli/cinema-management-system/internal/validator"
	"github.com/metinatakli/cinema-management-system/internal/vcs"
)

var (
	version = vcs.Version()
)

func main() {
	if err := run(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flag.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "directory holding the record store files")
	flag.StringVar(&cfg.ReceiptDir, "receipt-dir", cfg.ReceiptDir, "directory receipts are written to")
	displayVersion := flag.Bool("version", false, "Display version and exit")
	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		return nil
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()

	users, err := store.NewFile(filepath.Join(cfg.DataDir, "users.txt"), domain.UserCodec{})
	if err != nil {
		return err
	}
	movies, err := store.NewFile(filepath.Join(cfg.DataDir, "movies.csv"), domain.MovieCodec{})
	if err != nil {
		return err
	}
	auditoriums, err := store.NewFile(filepath.Join(cfg.DataDir, "auditoriums.csv"), domain.AuditoriumCodec{})
	if err != nil {
		return err
	}
	showtimes, err := store.NewFile(filepath.Join(cfg.DataDir, "showtimes.csv"), domain.ShowtimeCodec{})
	if err != nil {
		return err
	}
	bookings, err := store.NewFile(filepath.Join(cfg.DataDir, "bookings.csv"), domain.BookingCodec{})
	if err != nil {
		return err
	}
	equipment, err := store.NewFile(filepath.Join(cfg.DataDir, "equipment.csv"), domain.EquipmentCodec{})
	if err != nil {
		return err
	}
	issues, err := store.NewFile(filepath.Join(cfg.DataDir, "issues.csv"), domain.IssueCodec{})
	if err != nil {
		return err
	}

	receipts, err := receipt.NewFileSink(cfg.ReceiptDir)
	if err != nil {
		return err
	}

	catalogService := catalog.NewService(movies, auditoriums, showtimes, validator, logger)
	inventory := ticketing.NewInventory(showtimes, bookings, catalogService, validator, logger)
	ledger := ticketing.NewLedger(inventory, bookings, receipts, validator, logger)
	authService := auth.NewService(users, validator, logger)
	maintenanceService := maintenance.NewService(equipment, issues, catalogService, validator, logger)

	logger.Info("starting cinema ticketing system", "env", cfg.Env, "data", cfg.DataDir)

	shell := app.New(app.Options{
		Logger:      logger,
		Auth:        authService,
		Catalog:     catalogService,
		Inventory:   inventory,
		Ledger:      ledger,
		Maintenance: maintenanceService,
		Input:       os.Stdin,
		Output:      os.Stdout,
	})

	return shell.Run()
}
