package eslint

import (
	"encoding/json"
	"fmt"

	"github.com/DevSymphony/fmtsetup/pkg/schema"
)

// ESLintConfig represents .eslintrc.json structure.
type ESLintConfig struct {
	Root          bool                   `json:"root"`
	Env           map[string]bool        `json:"env"`
	ParserOptions map[string]interface{} `json:"parserOptions"`
	Extends       []string               `json:"extends"`
	Rules         map[string]interface{} `json:"rules"`
}

const severity = "error"

var semiRule = map[string]string{
	schema.SemicolonsAlways:   "always",
	schema.SemicolonsAsNeeded: "never",
}

var jsxQuoteRule = map[string]string{
	schema.QuoteSingle: "prefer-single",
	schema.QuoteDouble: "prefer-double",
}

var quoteRule = map[string]string{
	schema.QuoteSingle: "single",
	schema.QuoteDouble: "double",
}

// commaDangle translates the trailing-comma policy into the comma-dangle
// rule option. ES5 allows trailing commas everywhere except function
// parameters and arguments.
func commaDangle(policy string) (interface{}, error) {
	switch policy {
	case schema.TrailingCommasAll:
		return "always-multiline", nil
	case schema.TrailingCommasES5:
		return map[string]string{
			"arrays":    "always-multiline",
			"objects":   "always-multiline",
			"imports":   "always-multiline",
			"exports":   "always-multiline",
			"functions": "never",
		}, nil
	case schema.TrailingCommasNone:
		return "never", nil
	default:
		return nil, fmt.Errorf("unsupported trailingCommas %q", policy)
	}
}

// generateConfig maps a resolved style to ESLint stylistic rules.
func generateConfig(style schema.StyleDescriptor) ([]byte, error) {
	semi, ok := semiRule[style.Semicolons]
	if !ok {
		return nil, fmt.Errorf("unsupported semicolons %q", style.Semicolons)
	}
	quotes, ok := quoteRule[style.QuoteStyle]
	if !ok {
		return nil, fmt.Errorf("unsupported quoteStyle %q", style.QuoteStyle)
	}
	jsxQuotes, ok := jsxQuoteRule[style.JSXQuoteStyle]
	if !ok {
		return nil, fmt.Errorf("unsupported jsxQuoteStyle %q", style.JSXQuoteStyle)
	}
	comma, err := commaDangle(style.TrailingCommas)
	if err != nil {
		return nil, err
	}

	config := &ESLintConfig{
		Root: true,
		Env: map[string]bool{
			"es2021":  true,
			"node":    true,
			"browser": true,
		},
		ParserOptions: map[string]interface{}{
			"ecmaVersion": "latest",
			"sourceType":  "module",
			"ecmaFeatures": map[string]bool{
				"jsx": true,
			},
		},
		Extends: []string{"eslint:recommended"},
		Rules: map[string]interface{}{
			"max-len": []interface{}{severity, map[string]interface{}{
				"code":           style.LineWidth,
				"ignoreUrls":     true,
				"ignoreStrings":  true,
				"ignoreComments": false,
			}},
			"indent":       []interface{}{severity, style.IndentWidth},
			"quotes":       []interface{}{severity, quotes, map[string]bool{"avoidEscape": true}},
			"jsx-quotes":   []interface{}{severity, jsxQuotes},
			"semi":         []interface{}{severity, semi},
			"comma-dangle": []interface{}{severity, comma},
		},
	}

	content, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return append(content, '\n'), nil
}
