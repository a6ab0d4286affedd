package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hubhub/cvparser/internal/aiparse"
	"github.com/hubhub/cvparser/internal/config"
	"github.com/hubhub/cvparser/internal/extraction"
	"github.com/hubhub/cvparser/internal/observability"
	"github.com/hubhub/cvparser/internal/parsing"
	"github.com/hubhub/cvparser/internal/schemas"
	"github.com/hubhub/cvparser/internal/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse <cv-file> [cv-file...]",
	Short: "Parse CV documents into structured profile JSON",
	Long:  "Parse one or more CV documents (PDF, DOCX or plain text) into structured ParsedCVData JSON that validates against the parsed_cv schema.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

var (
	parseConfigFile  string
	parseOutDir      string
	parseAPIKey      string
	parseUseAI       bool
	parseNoRawText   bool
	parseStrict      bool
	parseVerbose     bool
	parseConcurrency int
)

func init() {
	parseCmd.Flags().StringVarP(&parseConfigFile, "config", "c", "", "Path to JSON config file")
	parseCmd.Flags().StringVarP(&parseOutDir, "out", "o", "", "Directory for output JSON files (default: alongside inputs)")
	parseCmd.Flags().StringVar(&parseAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	parseCmd.Flags().BoolVar(&parseUseAI, "ai", false, "Use AI extraction with regex fallback instead of the heuristic analyzer")
	parseCmd.Flags().BoolVar(&parseNoRawText, "no-raw-text", false, "Omit the raw extracted text from output")
	parseCmd.Flags().BoolVar(&parseStrict, "strict", false, "Fail parses that are missing required fields")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a summary of every parsed CV")
	parseCmd.Flags().IntVar(&parseConcurrency, "concurrency", 4, "Maximum files parsed in parallel")

	rootCmd.AddCommand(parseCmd)
}

// parseSettings is the merged flag/config/env view one run operates on.
type parseSettings struct {
	outDir      string
	apiKey      string
	useAI       bool
	includeRaw  bool
	strict      bool
	verbose     bool
	concurrency int
}

func resolveParseSettings(flags *cobra.Command) (*parseSettings, error) {
	settings := &parseSettings{
		outDir:      parseOutDir,
		apiKey:      parseAPIKey,
		useAI:       parseUseAI,
		includeRaw:  !parseNoRawText,
		strict:      parseStrict,
		verbose:     parseVerbose,
		concurrency: parseConcurrency,
	}

	if parseConfigFile != "" {
		cfg, err := config.LoadConfig(parseConfigFile)
		if err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		// Flags override config; config fills anything left at its default.
		if settings.outDir == "" {
			settings.outDir = cfg.OutDir
		}
		if settings.apiKey == "" {
			settings.apiKey = cfg.APIKey
		}
		if !flags.Flags().Changed("ai") {
			settings.useAI = cfg.UseAI
		}
		if !flags.Flags().Changed("no-raw-text") {
			settings.includeRaw = cfg.IncludeRaw()
		}
		if !flags.Flags().Changed("strict") {
			settings.strict = cfg.StrictParsing
		}
		if !flags.Flags().Changed("verbose") {
			settings.verbose = cfg.Verbose
		}
		if !flags.Flags().Changed("concurrency") && cfg.Concurrency > 0 {
			settings.concurrency = cfg.Concurrency
		}
	}

	if settings.apiKey == "" {
		settings.apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if settings.useAI && settings.apiKey == "" {
		return nil, fmt.Errorf("--ai requires an API key (set GEMINI_API_KEY or use --api-key)")
	}
	if settings.concurrency < 1 {
		settings.concurrency = 1
	}
	return settings, nil
}

func runParse(cmd *cobra.Command, args []string) error {
	settings, err := resolveParseSettings(cmd)
	if err != nil {
		return err
	}

	ctx := context.Background()

	var aiParser *aiparse.Parser
	if settings.useAI {
		aiParser, err = aiparse.New(ctx, settings.apiKey)
		if err != nil {
			return fmt.Errorf("failed to initialize AI parser: %w", err)
		}
		defer func() { _ = aiParser.Close() }()
	}

	if settings.outDir != "" {
		if err := os.MkdirAll(settings.outDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(settings.concurrency)

	for _, inputPath := range args {
		inputPath := inputPath
		group.Go(func() error {
			return parseOne(groupCtx, inputPath, settings, aiParser)
		})
	}

	return group.Wait()
}

func parseOne(ctx context.Context, inputPath string, settings *parseSettings, aiParser *aiparse.Parser) error {
	fileBytes, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inputPath, err)
	}
	mimeType := extraction.MimeTypeForExtension(filepath.Ext(inputPath))

	var data *types.ParsedCVData
	if aiParser != nil {
		extracted, err := extraction.Extract(fileBytes, mimeType)
		if err != nil {
			return fmt.Errorf("%s: %w", inputPath, err)
		}
		if strings.TrimSpace(extracted.Content) == "" {
			return fmt.Errorf("%s: no text content found in the CV file", inputPath)
		}
		data = aiParser.ParseWithFallback(ctx, extracted.Content)
		if settings.strict {
			if quality := parsing.ValidateParsedData(data); !quality.IsValid {
				return fmt.Errorf("%s: missing required fields: %s", inputPath, strings.Join(quality.MissingFields, ", "))
			}
		}
		if !settings.includeRaw {
			data.RawText = ""
		}
	} else {
		includeRaw := settings.includeRaw
		result := parsing.ParseCV(ctx, fileBytes, mimeType, parsing.Options{
			IncludeRawText: &includeRaw,
			StrictParsing:  settings.strict,
		})
		if !result.Success {
			return fmt.Errorf("%s: %s", inputPath, result.Error)
		}
		data = result.Data
	}

	outputPath := outputPathFor(inputPath, settings.outDir)
	if err := writeParsedCV(outputPath, data); err != nil {
		return fmt.Errorf("%s: %w", inputPath, err)
	}

	if settings.verbose {
		observability.NewPrinter(os.Stdout).PrintParsedCV(data)
	}
	fmt.Fprintf(os.Stdout, "Parsed %s -> %s\n", inputPath, outputPath)
	return nil
}

func outputPathFor(inputPath, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath)) + ".json"
	if outDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base)
	}
	return filepath.Join(outDir, base)
}

func writeParsedCV(outputPath string, data *types.ParsedCVData) error {
	jsonBytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(outputPath, jsonBytes, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	// Validate the artifact when the schema file is reachable; schema
	// loading problems degrade to a warning like every other run mode.
	if err := schemas.ValidateParsedCV(string(jsonBytes)); err != nil {
		var validationErr *schemas.ValidationError
		var schemaLoadErr *schemas.SchemaLoadError
		switch {
		case errors.As(err, &validationErr):
			return fmt.Errorf("generated JSON does not validate against schema: %w", err)
		case errors.As(err, &schemaLoadErr):
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema (schema loading failed): %v\n", err)
		default:
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate output against schema: %v\n", err)
		}
	}
	return nil
}
