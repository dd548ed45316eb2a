package output

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/quantdash/retirement-planner/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned when no formatter matches the requested name.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// GenerateReport runs the named formatter (or "all") and writes its output to
// a timestamped file in the working directory.
func GenerateReport(results *domain.PlanComparison, format string) error {
	if format == "all" {
		for _, f := range builtInFormatters {
			if _, err := WriteFormatted(f, results, extensionFor(f.Name())); err != nil {
				return err
			}
		}
		return nil
	}
	if f := GetFormatterByName(format); f != nil {
		_, err := WriteFormatted(f, results, extensionFor(f.Name()))
		return err
	}
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

func extensionFor(name string) string {
	switch name {
	case "console":
		return "txt"
	case "detailed-csv":
		return "csv"
	default:
		return name
	}
}

// SaveConfiguration writes a configuration back out as YAML (used by the
// example command).
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
