// Package main provides the cvparse CLI: CV document parsing and profile
// completion validation.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cvparse",
	Short: "CV parsing and profile completion toolkit",
	Long:  "cvparse extracts structured designer profiles from CV documents (PDF, DOCX, plain text) and validates them against the MVP profile completion rubric.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
