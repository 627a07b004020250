package prettier

import (
	"encoding/json"
	"fmt"

	"github.com/DevSymphony/fmtsetup/pkg/schema"
)

// PrettierConfig represents .prettierrc.json structure.
type PrettierConfig struct {
	PrintWidth     int    `json:"printWidth"`
	TabWidth       int    `json:"tabWidth"`
	UseTabs        bool   `json:"useTabs"`
	Semi           bool   `json:"semi"`
	SingleQuote    bool   `json:"singleQuote"`
	JSXSingleQuote bool   `json:"jsxSingleQuote"`
	TrailingComma  string `json:"trailingComma"` // "none", "es5", "all"
}

var trailingCommas = map[string]string{
	schema.TrailingCommasAll:  "all",
	schema.TrailingCommasES5:  "es5",
	schema.TrailingCommasNone: "none",
}

var semicolons = map[string]bool{
	schema.SemicolonsAlways:   true,
	schema.SemicolonsAsNeeded: false,
}

var singleQuote = map[string]bool{
	schema.QuoteSingle: true,
	schema.QuoteDouble: false,
}

// generateConfig maps a resolved style to Prettier options.
func generateConfig(style schema.StyleDescriptor) ([]byte, error) {
	comma, ok := trailingCommas[style.TrailingCommas]
	if !ok {
		return nil, fmt.Errorf("unsupported trailingCommas %q", style.TrailingCommas)
	}
	semi, ok := semicolons[style.Semicolons]
	if !ok {
		return nil, fmt.Errorf("unsupported semicolons %q", style.Semicolons)
	}
	quote, ok := singleQuote[style.QuoteStyle]
	if !ok {
		return nil, fmt.Errorf("unsupported quoteStyle %q", style.QuoteStyle)
	}
	jsxQuote, ok := singleQuote[style.JSXQuoteStyle]
	if !ok {
		return nil, fmt.Errorf("unsupported jsxQuoteStyle %q", style.JSXQuoteStyle)
	}

	config := &PrettierConfig{
		PrintWidth:     style.LineWidth,
		TabWidth:       style.IndentWidth,
		UseTabs:        false,
		Semi:           semi,
		SingleQuote:    quote,
		JSXSingleQuote: jsxQuote,
		TrailingComma:  comma,
	}

	content, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return append(content, '\n'), nil
}
