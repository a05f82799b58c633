package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/juniperhealth/juniper_backend/cmd/http"
	systemcmd "github.com/juniperhealth/juniper_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "juniper",
	Short: "Juniper multi-tenant practice management platform for behavioral health.",
	Long: `Juniper is a multi-tenant practice management backend for behavioral
health practices. It keeps recurring appointment schedules, clinician calendars
and external busy blocks consistent behind a single HTTP API.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
