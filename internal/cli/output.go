package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/Pure-Company/pureext/internal/config"
)

// printer writes a command result in the configured format. Text output is
// produced by the command itself; json and yaml encode the value.
type printer struct {
	w      io.Writer
	format string
	color  bool
}

func (p printer) print(v any, text func(w io.Writer) error) error {
	switch p.format {
	case config.FormatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case config.FormatYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return text(p.w)
	}
}

// lines prints one value per line in text mode.
func (p printer) lines(values []string) error {
	return p.print(values, func(w io.Writer) error {
		for _, v := range values {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return err
			}
		}
		return nil
	})
}

// header renders a section title, colored when enabled.
func (p printer) header(title string) string {
	c := color.New(color.FgCyan, color.Bold)
	if p.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(title + ":")
}
