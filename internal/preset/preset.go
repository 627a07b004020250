// Package preset holds the built-in formatting presets and resolves a
// preset name plus caller overrides into a complete style.
package preset

import (
	"errors"
	"fmt"

	"github.com/DevSymphony/fmtsetup/pkg/schema"
)

// Built-in preset names.
const (
	Standard = "standard"
	Strict   = "strict"
	Relaxed  = "relaxed"
)

// ErrInvalidPreset is returned for an unknown preset name or an override
// value that no formatter template can express.
var ErrInvalidPreset = errors.New("invalid preset")

// builtins is process-wide constant data. Get returns copies.
var builtins = map[string]schema.StyleDescriptor{
	Standard: {
		LineWidth:      80,
		IndentWidth:    2,
		QuoteStyle:     schema.QuoteSingle,
		JSXQuoteStyle:  schema.QuoteDouble,
		Semicolons:     schema.SemicolonsAlways,
		TrailingCommas: schema.TrailingCommasES5,
	},
	Strict: {
		LineWidth:      80,
		IndentWidth:    2,
		QuoteStyle:     schema.QuoteSingle,
		JSXQuoteStyle:  schema.QuoteDouble,
		Semicolons:     schema.SemicolonsAlways,
		TrailingCommas: schema.TrailingCommasAll,
	},
	Relaxed: {
		LineWidth:      120,
		IndentWidth:    4,
		QuoteStyle:     schema.QuoteDouble,
		JSXQuoteStyle:  schema.QuoteDouble,
		Semicolons:     schema.SemicolonsAsNeeded,
		TrailingCommas: schema.TrailingCommasES5,
	},
}

var names = []string{Standard, Strict, Relaxed}

// Names returns the built-in preset names in display order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Get returns the built-in preset called name.
func Get(name string) (schema.StyleDescriptor, error) {
	style, ok := builtins[name]
	if !ok {
		return schema.StyleDescriptor{}, fmt.Errorf("%w: unknown preset %q (available: standard, strict, relaxed)", ErrInvalidPreset, name)
	}
	return style, nil
}

// Resolve starts from the named preset (standard when name is empty) and
// overlays every field set in overrides. The result is validated so that
// templates never see an unset or unknown value.
func Resolve(name string, overrides *schema.StyleOverrides) (schema.StyleDescriptor, error) {
	if name == "" {
		name = Standard
	}

	style, err := Get(name)
	if err != nil {
		return schema.StyleDescriptor{}, err
	}

	if overrides != nil {
		if overrides.LineWidth != nil {
			style.LineWidth = *overrides.LineWidth
		}
		if overrides.IndentWidth != nil {
			style.IndentWidth = *overrides.IndentWidth
		}
		if overrides.QuoteStyle != nil {
			style.QuoteStyle = *overrides.QuoteStyle
		}
		if overrides.JSXQuoteStyle != nil {
			style.JSXQuoteStyle = *overrides.JSXQuoteStyle
		}
		if overrides.Semicolons != nil {
			style.Semicolons = *overrides.Semicolons
		}
		if overrides.TrailingCommas != nil {
			style.TrailingCommas = *overrides.TrailingCommas
		}
	}

	if err := Validate(style); err != nil {
		return schema.StyleDescriptor{}, err
	}
	return style, nil
}

// Validate checks that every field of style holds a supported value.
func Validate(style schema.StyleDescriptor) error {
	if style.LineWidth <= 0 {
		return fmt.Errorf("%w: lineWidth must be positive, got %d", ErrInvalidPreset, style.LineWidth)
	}
	if style.IndentWidth <= 0 {
		return fmt.Errorf("%w: indentWidth must be positive, got %d", ErrInvalidPreset, style.IndentWidth)
	}
	if err := oneOf("quoteStyle", style.QuoteStyle, schema.QuoteSingle, schema.QuoteDouble); err != nil {
		return err
	}
	if err := oneOf("jsxQuoteStyle", style.JSXQuoteStyle, schema.QuoteSingle, schema.QuoteDouble); err != nil {
		return err
	}
	if err := oneOf("semicolons", style.Semicolons, schema.SemicolonsAlways, schema.SemicolonsAsNeeded); err != nil {
		return err
	}
	return oneOf("trailingCommas", style.TrailingCommas,
		schema.TrailingCommasAll, schema.TrailingCommasES5, schema.TrailingCommasNone)
}

func oneOf(field, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%w: %s must be one of %v, got %q", ErrInvalidPreset, field, allowed, value)
}
