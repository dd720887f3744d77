package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiFlag string
	keyFlag string
	rootCmd = &cobra.Command{
		Use:   "lineupctl",
		Short: "CLI client for the Lineup REST API",
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:8080", "Lineup service base URL")
	rootCmd.PersistentFlags().StringVarP(&keyFlag, "key", "k", "sk_local_lineup_dev_key", "API key sent as bearer token")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
