// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/hubhub/cvparser/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintParsedCV outputs a human-readable summary of a parsed CV.
func (p *Printer) PrintParsedCV(data *types.ParsedCVData) {
	if data == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:       %s\n", orUnknown(data.Personal.Name)))
	sb.WriteString(fmt.Sprintf("Email:      %s\n", orUnknown(data.Personal.Email)))
	sb.WriteString(fmt.Sprintf("Phone:      %s\n", orUnknown(data.Personal.Phone)))
	sb.WriteString(fmt.Sprintf("Confidence: %.0f%%\n", data.Confidence*100))

	if len(data.WorkExperience) > 0 {
		sb.WriteString("\nWork Experience:\n")
		count := min(len(data.WorkExperience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := data.WorkExperience[i]
			sb.WriteString(fmt.Sprintf("  • %s", orUnknown(exp.JobTitle)))
			if exp.Company != nil && *exp.Company != "" {
				sb.WriteString(fmt.Sprintf(" at %s", *exp.Company))
			}
			if exp.IsCurrent {
				sb.WriteString(" (current)")
			}
			sb.WriteString("\n")
		}
		if len(data.WorkExperience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(data.WorkExperience)-maxItemsToShow))
		}
	}

	allSkills := data.Skills.AllSkills()
	if len(allSkills) > 0 {
		sb.WriteString("\nSkills:\n")
		count := min(len(allSkills), maxItemsToShow)
		sb.WriteString(fmt.Sprintf("  %s", strings.Join(allSkills[:count], ", ")))
		if len(allSkills) > count {
			sb.WriteString(fmt.Sprintf(" ... and %d more", len(allSkills)-count))
		}
		sb.WriteString("\n")
	}

	if len(data.Errors) > 0 {
		sb.WriteString("\nParse Errors:\n")
		for _, msg := range data.Errors {
			sb.WriteString(fmt.Sprintf("  ! %s\n", msg))
		}
	}

	p.printBox("Parsed CV", strings.TrimRight(sb.String(), "\n"))
}

// PrintValidationResult outputs a human-readable profile completion report.
func (p *Printer) PrintValidationResult(result *types.ValidationResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Completion: %d%%\n", result.CompletionPercentage))
	sb.WriteString(fmt.Sprintf("Severity:   %s\n", result.Severity))
	if result.IsValid {
		sb.WriteString("Status:     profile is complete\n")
	} else {
		sb.WriteString("Status:     profile is incomplete\n")
	}

	if len(result.MissingFields) > 0 {
		sb.WriteString("\nMissing:\n")
		for _, field := range result.MissingFields {
			sb.WriteString(fmt.Sprintf("  • %s\n", field))
		}
	}

	if len(result.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		count := min(len(result.Suggestions), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  - %s\n", result.Suggestions[i]))
		}
		if len(result.Suggestions) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Suggestions)-maxItemsToShow))
		}
	}

	p.printBox("Profile Completion", strings.TrimRight(sb.String(), "\n"))
}

func orUnknown(s *string) string {
	if s == nil || *s == "" {
		return "(not found)"
	}
	return *s
}
