package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hubhub/cvparser/internal/config"
	"github.com/hubhub/cvparser/internal/observability"
	"github.com/hubhub/cvparser/internal/profile"
	"github.com/hubhub/cvparser/internal/types"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a parsed CV against the profile completion rubric",
	Long:  "Validate parsed CV JSON (produced by the parse command) together with user-declared MVP fields against the weighted profile completion rubric.",
	RunE:  runValidate,
}

var (
	validateCVFile     string
	validateMVPFile    string
	validateConfigFile string
	validateJSONOut    string
	validateStrict     bool
)

func init() {
	validateCmd.Flags().StringVarP(&validateCVFile, "cv", "i", "", "Path to parsed CV JSON file (required)")
	validateCmd.Flags().StringVar(&validateMVPFile, "mvp", "", "Path to MVP data JSON file (title, availability, proficiencies)")
	validateCmd.Flags().StringVarP(&validateConfigFile, "config", "c", "", "Path to JSON config file (its mvp block is used when --mvp is absent)")
	validateCmd.Flags().StringVarP(&validateJSONOut, "out", "o", "", "Write the full validation result JSON to this path")
	validateCmd.Flags().BoolVar(&validateStrict, "strict", false, "Exit with an error when the profile is incomplete")
	_ = validateCmd.MarkFlagRequired("cv")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	data, err := loadParsedCV(validateCVFile)
	if err != nil {
		return err
	}

	mvp, err := loadMVPData()
	if err != nil {
		return err
	}

	if mvp != nil {
		if mvp.Title != "" && !profile.IsKnownTitle(mvp.Title) {
			fmt.Fprintf(os.Stderr, "Warning: title %q is not a recognized option\n", mvp.Title)
		}
		if mvp.Availability != "" && !profile.IsKnownAvailability(mvp.Availability) {
			fmt.Fprintf(os.Stderr, "Warning: availability %q is not a recognized option\n", mvp.Availability)
		}
	}

	result := profile.ValidateProfileCompletion(data, mvp)

	observability.NewPrinter(os.Stdout).PrintValidationResult(result)

	if validateJSONOut != "" {
		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal validation result: %w", err)
		}
		if err := os.WriteFile(validateJSONOut, jsonBytes, 0o644); err != nil {
			return fmt.Errorf("failed to write validation result: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Output: %s\n", validateJSONOut)
	}

	if validateStrict && !result.IsValid {
		return fmt.Errorf("profile is incomplete (%d%%): missing %d field(s)",
			result.CompletionPercentage, len(result.MissingFields))
	}
	return nil
}

func loadParsedCV(path string) (*types.ParsedCVData, error) {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parsed CV file: %w", err)
	}
	data := types.NewParsedCVData()
	if err := json.Unmarshal(fileBytes, data); err != nil {
		return nil, fmt.Errorf("failed to parse CV JSON: %w", err)
	}
	return data, nil
}

func loadMVPData() (*types.MVPData, error) {
	if validateMVPFile != "" {
		fileBytes, err := os.ReadFile(validateMVPFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read MVP data file: %w", err)
		}
		var mvp types.MVPData
		if err := json.Unmarshal(fileBytes, &mvp); err != nil {
			return nil, fmt.Errorf("failed to parse MVP JSON: %w", err)
		}
		if err := mvp.Validate(); err != nil {
			return nil, fmt.Errorf("invalid MVP data: %w", err)
		}
		return &mvp, nil
	}

	if validateConfigFile != "" {
		cfg, err := config.LoadConfig(validateConfigFile)
		if err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cfg.MVP, nil
	}

	// Validation without MVP data is allowed; the rubric reports the
	// user-declared fields as missing.
	return nil, nil
}
