package commands

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/propertyhub-dev/propertyhub/internal/roles"
)

// NewLoginCmd creates the login command
func NewLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with the PropertyHub backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(email, password)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (or set PROPERTYHUB_EMAIL)")
	cmd.Flags().StringVar(&password, "password", "", "Password (or set PROPERTYHUB_PASSWORD, will prompt if not provided)")

	return cmd
}

func runLogin(email, password string) error {
	// Environment variables are useful for CI/CD
	if email == "" {
		email = os.Getenv("PROPERTYHUB_EMAIL")
	}
	if password == "" {
		password = os.Getenv("PROPERTYHUB_PASSWORD")
	}

	if email == "" {
		return fmt.Errorf("email is required (use --email flag or PROPERTYHUB_EMAIL env var)")
	}

	// Prompt for password if not provided via flag or env var
	if password == "" {
		if term.IsTerminal(int(syscall.Stdin)) {
			fmt.Print("Password: ")
			bytePassword, err := term.ReadPassword(int(syscall.Stdin))
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password = string(bytePassword)
			fmt.Println()
		} else {
			return fmt.Errorf("password is required in non-interactive mode (use --password flag or PROPERTYHUB_PASSWORD env var)")
		}
	}

	e, err := newEnv()
	if err != nil {
		return err
	}

	fmt.Printf("Logging in to %s...\n", e.cfg.API.BaseURL)

	if err := e.sessions.Login(context.Background(), email, password); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	snap := e.sessions.Snapshot()
	fmt.Println("✓ Login successful!")
	if snap.User != nil {
		fmt.Printf("  User: %s (%s)\n", snap.User.Name, snap.User.Email)
		if snap.User.Roles.Elevated() {
			fmt.Println("  Role: Landlord/Admin")
		} else if snap.User.Roles.Has(roles.Tenant) {
			fmt.Println("  Role: Tenant")
		}
	}

	return nil
}
