package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/gedgen/internal/cli"
	"github.com/alexanderramin/gedgen/internal/db"
	"github.com/alexanderramin/gedgen/internal/repository"
	"github.com/alexanderramin/gedgen/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.gedgen/gedgen.db
	dbPath := os.Getenv("GEDGEN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".gedgen", "gedgen.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	var observers []service.UseCaseObserver
	if os.Getenv("GEDGEN_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	names := service.NewNameBankService(repository.NewSQLiteNameRepo(database), observers...)

	app := &cli.App{
		Generate: service.NewGenerateService(names, observers...),
		Names:    names,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
