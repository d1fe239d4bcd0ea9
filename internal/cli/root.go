package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/propertyhub-dev/propertyhub/internal/cli/commands"
)

var version = "dev" // Will be set during build

var rootCmd = &cobra.Command{
	Use:   "propertyhub",
	Short: "PropertyHub - property management front end",
	Long: `PropertyHub front end - browse your portfolio from one place.

The serve command hosts the local web UI; login, logout and whoami manage
the session from the terminal. All commands talk to the PropertyHub
backend configured via API_BASE_URL.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("propertyhub version %s\n", version)
		},
	})

	rootCmd.AddCommand(commands.NewServeCmd())
	rootCmd.AddCommand(commands.NewLoginCmd())
	rootCmd.AddCommand(commands.NewLogoutCmd())
	rootCmd.AddCommand(commands.NewWhoamiCmd())
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
