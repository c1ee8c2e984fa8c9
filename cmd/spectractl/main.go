package main

import (
	"context"
	"fmt"
	"os"

	"github.com/GanonMaor/spectra-salon-website-sub004/internal/config"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/observability"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/store"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "spectractl",
		Short:         "Operator tooling for the Spectra CRM backend",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(usersCmd())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openStore connects with the database settings only, so operators do not
// need the API secrets to run maintenance commands.
func openStore() (store.Store, *observability.Logger, error) {
	logger := observability.NewLogger()
	dbCfg, err := config.LoadDatabase()
	if err != nil {
		return store.Store{}, nil, fmt.Errorf("failed to load database configuration: %w", err)
	}
	s, err := store.New(dbCfg, logger)
	if err != nil {
		return store.Store{}, nil, err
	}
	return s, logger, nil
}
