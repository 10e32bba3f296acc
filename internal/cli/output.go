package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aretw0/tripwizard/internal/presentation/tui"
	"gopkg.in/yaml.v3"
)

// Output formats for summaries and listings.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
)

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteYAML writes v as YAML.
func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// WriteMarkdown writes markdown, rendered for the terminal when rich is set.
func WriteMarkdown(w io.Writer, markdown string, rich bool) error {
	if rich {
		render, err := tui.NewRenderer()
		if err != nil {
			return fmt.Errorf("failed to init renderer: %w", err)
		}
		out, err := render(markdown)
		if err != nil {
			return fmt.Errorf("failed to render: %w", err)
		}
		markdown = out
	}
	_, err := io.WriteString(w, markdown)
	return err
}

// ValidFormat reports whether f is a known output format.
func ValidFormat(f string) bool {
	switch f {
	case FormatText, FormatJSON, FormatYAML, FormatMarkdown:
		return true
	}
	return false
}
