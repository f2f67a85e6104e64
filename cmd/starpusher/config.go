package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-pusher/internal/config"
)

var flagForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective config to the user config file",
	Long: `Write the currently effective configuration (defaults merged with
--config, if given) to ~/.starpusher/configs/pusher.yaml.

Examples:
  starpusher config init
  starpusher config init --force`,
	Args: cobra.NoArgs,
	Run:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective config",
	Args:  cobra.NoArgs,
	Run:   runConfigShow,
}

func init() {
	configInitCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(_ *cobra.Command, _ []string) {
	path := config.UserConfigPath()
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: cannot determine home directory")
		os.Exit(1)
	}
	if _, err := os.Stat(path); err == nil && !flagForce {
		fmt.Fprintf(os.Stderr, "Error: %s already exists (use --force to overwrite)\n", path)
		os.Exit(1)
	}

	if err := config.Save(path, loadConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", path)
}

func runConfigShow(_ *cobra.Command, _ []string) {
	data, err := config.Marshal(loadConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data) //nolint:errcheck
}
