package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "seeder",
	Short: "Restaurante Seeder - Synthetic data for the restaurant database",
	Long: `Restaurante Seeder populates the restaurant ordering database with
synthetic but referentially plausible data for development and load testing.

It fills the restaurantes, usuarios, ordenes and resenas collections,
sampling order line items from the pre-existing articulos_menu collection.
Re-running appends: the tool never resets or deduplicates existing data.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
