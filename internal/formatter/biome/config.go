package biome

import (
	"encoding/json"
	"fmt"

	"github.com/DevSymphony/fmtsetup/pkg/schema"
)

// SchemaURL pins the biome.json schema the template targets.
const SchemaURL = "https://biomejs.dev/schemas/1.9.4/schema.json"

// BiomeConfig represents biome.json structure.
type BiomeConfig struct {
	Schema          string          `json:"$schema"`
	OrganizeImports toggle          `json:"organizeImports"`
	Formatter       formatterConfig `json:"formatter"`
	Linter          linterConfig    `json:"linter"`
	JavaScript      javaScript      `json:"javascript"`
}

type toggle struct {
	Enabled bool `json:"enabled"`
}

type formatterConfig struct {
	Enabled     bool   `json:"enabled"`
	IndentStyle string `json:"indentStyle"`
	IndentWidth int    `json:"indentWidth"`
	LineWidth   int    `json:"lineWidth"`
}

type linterConfig struct {
	Enabled bool        `json:"enabled"`
	Rules   linterRules `json:"rules"`
}

type linterRules struct {
	Recommended bool `json:"recommended"`
}

type javaScript struct {
	Formatter jsFormatter `json:"formatter"`
}

type jsFormatter struct {
	QuoteStyle     string `json:"quoteStyle"`
	JSXQuoteStyle  string `json:"jsxQuoteStyle"`
	Semicolons     string `json:"semicolons"`     // "always", "asNeeded"
	TrailingCommas string `json:"trailingCommas"` // "all", "es5", "none"
}

// Biome spells some enums differently from Prettier.
var semicolons = map[string]string{
	schema.SemicolonsAlways:   "always",
	schema.SemicolonsAsNeeded: "asNeeded",
}

var trailingCommas = map[string]string{
	schema.TrailingCommasAll:  "all",
	schema.TrailingCommasES5:  "es5",
	schema.TrailingCommasNone: "none",
}

var quoteStyles = map[string]string{
	schema.QuoteSingle: "single",
	schema.QuoteDouble: "double",
}

// generateConfig maps a resolved style to biome.json.
func generateConfig(style schema.StyleDescriptor) ([]byte, error) {
	semi, ok := semicolons[style.Semicolons]
	if !ok {
		return nil, fmt.Errorf("unsupported semicolons %q", style.Semicolons)
	}
	comma, ok := trailingCommas[style.TrailingCommas]
	if !ok {
		return nil, fmt.Errorf("unsupported trailingCommas %q", style.TrailingCommas)
	}
	quote, ok := quoteStyles[style.QuoteStyle]
	if !ok {
		return nil, fmt.Errorf("unsupported quoteStyle %q", style.QuoteStyle)
	}
	jsxQuote, ok := quoteStyles[style.JSXQuoteStyle]
	if !ok {
		return nil, fmt.Errorf("unsupported jsxQuoteStyle %q", style.JSXQuoteStyle)
	}

	config := &BiomeConfig{
		Schema:          SchemaURL,
		OrganizeImports: toggle{Enabled: true},
		Formatter: formatterConfig{
			Enabled:     true,
			IndentStyle: "space",
			IndentWidth: style.IndentWidth,
			LineWidth:   style.LineWidth,
		},
		Linter: linterConfig{
			Enabled: true,
			Rules:   linterRules{Recommended: true},
		},
		JavaScript: javaScript{
			Formatter: jsFormatter{
				QuoteStyle:     quote,
				JSXQuoteStyle:  jsxQuote,
				Semicolons:     semi,
				TrailingCommas: comma,
			},
		},
	}

	content, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return append(content, '\n'), nil
}
