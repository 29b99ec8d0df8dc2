// Package display provides output formatting and display functions for nameforge.
//
// This package handles all user-facing output formatting including table and
// JSON output for name suggestions, availability results, and cache
// statistics. It provides consistent formatting across all nameforge
// commands with support for verbose mode and different output formats.
//
// The display functions handle:
// - Scored suggestion tables with per-dimension breakdowns in verbose mode
// - Availability results grouped by verdict with color-coded status
// - Grade-tier grouping for quality-first browsing
// - Consistent table formatting using text/tabwriter
// - JSON output with proper indentation and error handling
//
// All display functions respect global configuration for output format and
// verbosity while maintaining clean separation from business logic.
package display

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/nameforge-dev/nameforge/cmd/nameforge/config"
	"github.com/nameforge-dev/nameforge/internal/cache"
	"github.com/nameforge-dev/nameforge/internal/checker"
	"github.com/nameforge-dev/nameforge/internal/generate"
	"github.com/nameforge-dev/nameforge/internal/logging"
)

// Verdict and grade styles, aligned with the logging package palette
var (
	availableStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#60F281"))
	registeredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4473"))
	unknownStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE763"))
	gradeAStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#60F281")).Bold(true)
	gradeBStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#42E7FF"))
	gradeCStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE763"))
)

// DisplaySuggestions displays scored name suggestions in tabular or JSON
// format. Verbose mode adds the per-dimension score breakdown columns.
func DisplaySuggestions(suggestions []generate.Suggestion) {
	if len(suggestions) == 0 {
		if config.Global.Output == "json" {
			fmt.Println("[]")
		} else {
			fmt.Println("No suggestions cleared the quality floor")
		}
		return
	}

	if config.Global.Output == "json" {
		encodeJSON(suggestions)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	if config.Global.Verbose {
		fmt.Fprintln(w, "NAME\tSCORE\tGRADE\tPRONOUNCE\tLENGTH\tBRAND\tMEMORY\tTYPING")
	} else {
		fmt.Fprintln(w, "NAME\tSCORE\tGRADE")
	}

	for _, s := range suggestions {
		grade := styleGrade(s.Scoring.Grade)
		if config.Global.Verbose {
			b := s.Scoring.Breakdown
			fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%d\t%d\t%d\t%d\n",
				s.Name, s.Score, grade,
				b.Pronounceability, b.Length, b.Brandability, b.Memorability, b.TypingEase)
		} else {
			fmt.Fprintf(w, "%s\t%d\t%s\n", s.Name, s.Score, grade)
		}
	}
}

// DisplayGradeBuckets displays suggestions grouped into grade tiers.
func DisplayGradeBuckets(buckets generate.GradeBuckets) {
	if config.Global.Output == "json" {
		encodeJSON(buckets)
		return
	}

	tiers := []struct {
		title       string
		suggestions []generate.Suggestion
	}{
		{"PREMIUM (A)", buckets.Premium},
		{"GOOD (B)", buckets.Good},
		{"ACCEPTABLE (C)", buckets.Acceptable},
	}

	shown := false
	for _, tier := range tiers {
		if len(tier.suggestions) == 0 {
			continue
		}
		if shown {
			fmt.Println()
		}
		fmt.Println(tier.title)
		DisplaySuggestions(tier.suggestions)
		shown = true
	}
	if !shown {
		fmt.Println("No suggestions cleared the quality floor")
	}
}

// DisplayCheckResults displays availability results grouped by verdict.
func DisplayCheckResults(results []checker.Result) {
	if config.Global.Output == "json" {
		encodeJSON(checker.GroupByStatus(results))
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	if config.Global.Verbose {
		fmt.Fprintln(w, "DOMAIN\tSTATUS\tMETHOD\tCACHED\tERROR")
	} else {
		fmt.Fprintln(w, "DOMAIN\tSTATUS\tMETHOD")
	}

	for _, r := range results {
		status := styleStatus(r.Status)
		if config.Global.Verbose {
			fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\n",
				r.Domain, status, r.Method, r.Cached, r.Error)
		} else {
			fmt.Fprintf(w, "%s\t%s\t%s\n", r.Domain, status, r.Method)
		}
	}
}

// HuntRow pairs a suggestion with its availability verdicts for JSON output.
type HuntRow struct {
	Suggestion generate.Suggestion `json:"suggestion"`
	Results    []checker.Result    `json:"results"`
}

// DisplayHuntResults displays the hunt pipeline output: each suggestion's
// score alongside its per-TLD availability verdicts. Results arrive in
// name-major order matching the suggestions slice.
func DisplayHuntResults(suggestions []generate.Suggestion, results []checker.Result, tlds []string) {
	rows := make([]HuntRow, len(suggestions))
	for i, s := range suggestions {
		start := i * len(tlds)
		end := start + len(tlds)
		if end > len(results) {
			end = len(results)
		}
		rows[i] = HuntRow{Suggestion: s, Results: results[start:end]}
	}

	if config.Global.Output == "json" {
		encodeJSON(rows)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	header := "NAME\tSCORE\tGRADE"
	for _, tld := range tlds {
		header += "\t" + strings.ToUpper(strings.TrimPrefix(tld, "."))
	}
	fmt.Fprintln(w, header)

	for _, row := range rows {
		line := fmt.Sprintf("%s\t%d\t%s",
			row.Suggestion.Name, row.Suggestion.Score, styleGrade(row.Suggestion.Scoring.Grade))
		for _, r := range row.Results {
			line += "\t" + styleStatus(shortStatus(r.Status))
		}
		fmt.Fprintln(w, line)
	}
}

// DisplayCacheStats displays availability cache statistics.
func DisplayCacheStats(stats cache.Stats) {
	if config.Global.Output == "json" {
		encodeJSON(stats)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "Entries:\t%d\n", stats.Entries)
	fmt.Fprintf(w, "Hits:\t%d\n", stats.HitCount)
	fmt.Fprintf(w, "Misses:\t%d\n", stats.MissCount)
	fmt.Fprintf(w, "Evictions:\t%d\n", stats.Evictions)
}

// Progress reports batch progress on stderr so table output stays clean.
// Used as the checker's progress callback in table mode; suppressed for
// JSON output where partial lines would corrupt the stream.
func Progress(completed, total int) {
	if config.Global.Output == "json" {
		return
	}
	fmt.Fprintf(os.Stderr, "\rChecked %d/%d domains", completed, total)
	if completed == total {
		fmt.Fprintln(os.Stderr)
	}
}

// encodeJSON writes indented JSON to stdout
func encodeJSON(v any) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		logging.Error("Failed to encode JSON: %v", err)
		fmt.Println("Error encoding JSON output")
	}
}

// styleStatus colors an availability status for table output
func styleStatus(status string) string {
	switch status {
	case checker.StatusAvailable, "yes":
		return availableStyle.Render(status)
	case checker.StatusRegistered, "no":
		return registeredStyle.Render(status)
	default:
		return unknownStyle.Render(status)
	}
}

// styleGrade colors a letter grade for table output
func styleGrade(grade string) string {
	switch grade[0] {
	case 'A':
		return gradeAStyle.Render(grade)
	case 'B':
		return gradeBStyle.Render(grade)
	case 'C':
		return gradeCStyle.Render(grade)
	default:
		return grade
	}
}

// shortStatus compresses verdicts for the hunt matrix columns
func shortStatus(status string) string {
	switch status {
	case checker.StatusAvailable:
		return "yes"
	case checker.StatusRegistered:
		return "no"
	case checker.StatusUnknown:
		return "?"
	default:
		return "err"
	}
}
