package remark

import (
	"bytes"
	"fmt"

	"github.com/DevSymphony/fmtsetup/pkg/schema"
	"gopkg.in/yaml.v3"
)

// RemarkConfig represents .remarkrc.yaml structure.
type RemarkConfig struct {
	Settings Settings      `yaml:"settings"`
	Plugins  []interface{} `yaml:"plugins"`
}

// Settings are remark-stringify options.
type Settings struct {
	Bullet         string `yaml:"bullet"`
	Emphasis       string `yaml:"emphasis"`
	Strong         string `yaml:"strong"`
	ListItemIndent string `yaml:"listItemIndent"`
	Quote          string `yaml:"quote"`
}

var quoteMarks = map[string]string{
	schema.QuoteSingle: "'",
	schema.QuoteDouble: `"`,
}

// generateConfig maps a resolved style to remark settings and lint plugins.
// Only the line width and quote style apply to markdown.
func generateConfig(style schema.StyleDescriptor) ([]byte, error) {
	quote, ok := quoteMarks[style.QuoteStyle]
	if !ok {
		return nil, fmt.Errorf("unsupported quoteStyle %q", style.QuoteStyle)
	}
	if style.LineWidth <= 0 {
		return nil, fmt.Errorf("unsupported lineWidth %d", style.LineWidth)
	}

	config := &RemarkConfig{
		Settings: Settings{
			Bullet:         "-",
			Emphasis:       "_",
			Strong:         "*",
			ListItemIndent: "one",
			Quote:          quote,
		},
		Plugins: []interface{}{
			"remark-preset-lint-consistent",
			"remark-preset-lint-recommended",
			[]interface{}{"remark-lint-maximum-line-length", style.LineWidth},
		},
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(config); err != nil {
		return nil, fmt.Errorf("failed to marshal YAML config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal YAML config: %w", err)
	}

	return buf.Bytes(), nil
}
