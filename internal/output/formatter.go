package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/finconsult/sipcalc/internal/domain"
)

// ErrUnsupportedFormat is returned for an unknown report format name.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(report *domain.PlanReport) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// WriteFormatted runs a formatter and writes its output to a file in dir named
// after the report's generation time.
func WriteFormatted(f Formatter, report *domain.PlanReport, dir string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("sip_report_%s.%s", report.GeneratedAt.Format("20060102_150405"), Extension(f.Name()))
	filename := filepath.Join(dir, name)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", filename, err)
	}
	return filename, nil
}

// Extension returns the file extension for a canonical formatter name.
func Extension(name string) string {
	switch {
	case strings.Contains(name, "csv"):
		return "csv"
	case name == "json", name == "html":
		return name
	default:
		return "txt"
	}
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleVerboseFormatter{},
	ConsoleFormatter{},
	CSVSummarizer{},
	CSVScheduleExporter{},
	CSVYearlyExporter{},
	HTMLFormatter{},
	JSONFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"console-verbose": "console",
	"verbose":         "console",
	"text":            "console-lite",
	"lite":            "console-lite",
	"csv-summary":     "csv",
	"summary-csv":     "csv",
	"csv-schedule":    "schedule-csv",
	"schedule":        "schedule-csv",
	"csv-yearly":      "yearly-csv",
	"yearly":          "yearly-csv",
	"html-report":     "html",
	"json-pretty":     "json",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
