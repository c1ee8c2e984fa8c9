package main

import (
	"fmt"

	authProcessor "github.com/GanonMaor/spectra-salon-website-sub004/internal/auth/processor"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/store"

	"github.com/spf13/cobra"
)

const minPasswordLength = 8

func usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage staff accounts",
	}
	cmd.AddCommand(createUserCmd())
	return cmd
}

func createUserCmd() *cobra.Command {
	var (
		email    string
		password string
		fullName string
		role     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an admin or support user",
		Example: `  spectractl users create --email maya@spectra.app --password 's3cret-pass' --name Maya --role admin
  spectractl users create --email lior@spectra.app --password 's3cret-pass' --role support`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !authProcessor.IsValidRole(role) {
				return fmt.Errorf("role must be %q or %q", store.UserRoleAdmin, store.UserRoleSupport)
			}
			if len(password) < minPasswordLength {
				return fmt.Errorf("password must be at least %d characters", minPasswordLength)
			}

			s, logger, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()

			// Token signing is never exercised here.
			p := authProcessor.New(&s, "", logger)
			user, err := p.CreateUser(cmd.Context(), email, password, fullName, role)
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created %s user %s (%s)\n", user.Role, user.Email, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().StringVar(&password, "password", "", "initial password")
	cmd.Flags().StringVar(&fullName, "name", "", "display name")
	cmd.Flags().StringVar(&role, "role", store.UserRoleSupport, "admin or support")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
