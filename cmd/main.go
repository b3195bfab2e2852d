package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "horizon-scanner",
	Short: "A CLI for managing the Regulatory Horizon Scanner services",
	Long:  `Regulatory Horizon Scanner ingests UK regulatory publications, scores them per firm and raises alerts...`,
}

func main() {

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your CLI '%s'", err)
		os.Exit(1)
	}
}
