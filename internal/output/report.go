package output

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/finconsult/sipcalc/internal/config"
	"github.com/finconsult/sipcalc/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport renders report in the named format and writes it to w.
func GenerateReport(w io.Writer, report *domain.PlanReport, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// SaveConfiguration writes a plan file as TOML for .toml paths and YAML otherwise.
func SaveConfiguration(cfg *domain.Configuration, filename string) error {
	var (
		b   []byte
		err error
	)
	if config.FormatFromPath(filename) == "toml" {
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(cfg)
		b = buf.Bytes()
	} else {
		b, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}
	return os.WriteFile(filename, b, 0644)
}
