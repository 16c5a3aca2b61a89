package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"ballotbox/cliparse"
	"ballotbox/db"
	"ballotbox/election"
	"ballotbox/router"
)

func main() {
	var err error

	// Load .env if present, then parse configuration
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded .env file")
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the person registry
	driver := "sqlite"
	if cfg.DatabaseType == "postgres" {
		driver = "postgres"
	}
	dbConn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Person registry ready", "driver", driver)

	// Build the electoral board over the registry
	directory := db.NewDirectory(dbConn)
	board, err := election.NewBoard(directory)
	if err != nil {
		slog.Error("board creation failed", "error", err)
		os.Exit(1)
	}

	// Bootstrap the administrator. A missing or unknown admin is not
	// fatal: the server runs, admin operations are just unavailable.
	if cfg.AdminSSN == "" {
		slog.Warn("no ADMIN_SSN configured, proceeding without an administrator")
	} else {
		admin, err := directory.FindByID(cfg.AdminSSN)
		switch {
		case err != nil:
			slog.Error("admin lookup failed", "error", err)
			os.Exit(1)
		case admin == nil:
			slog.Warn("configured admin is not a registered person", "ssn", cfg.AdminSSN)
		default:
			if err := board.SetAdmin(admin); err != nil {
				slog.Error("failed to set admin", "error", err)
				os.Exit(1)
			}
			slog.Info("Administrator set", "ssn", admin.SSN)
		}
	}

	// Create router
	mux := router.NewRouter(board, cfg)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
