package eslint

import (
	"encoding/json"
	"testing"

	"github.com/DevSymphony/fmtsetup/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func style() schema.StyleDescriptor {
	return schema.StyleDescriptor{
		LineWidth:      80,
		IndentWidth:    2,
		QuoteStyle:     schema.QuoteSingle,
		JSXQuoteStyle:  schema.QuoteDouble,
		Semicolons:     schema.SemicolonsAlways,
		TrailingCommas: schema.TrailingCommasAll,
	}
}

func parse(t *testing.T, content []byte) map[string]interface{} {
	t.Helper()
	var cfg map[string]interface{}
	require.NoError(t, json.Unmarshal(content, &cfg))
	return cfg
}

func TestGenerateConfig_Rules(t *testing.T) {
	content, err := generateConfig(style())
	require.NoError(t, err)

	cfg := parse(t, content)
	assert.Equal(t, true, cfg["root"])
	assert.Equal(t, []interface{}{"eslint:recommended"}, cfg["extends"])

	rules := cfg["rules"].(map[string]interface{})
	assert.Equal(t, []interface{}{"error", float64(2)}, rules["indent"])
	assert.Equal(t, []interface{}{"error", "always"}, rules["semi"])
	assert.Equal(t, []interface{}{"error", "prefer-double"}, rules["jsx-quotes"])
	assert.Equal(t, []interface{}{"error", "always-multiline"}, rules["comma-dangle"])

	quotes := rules["quotes"].([]interface{})
	assert.Equal(t, "single", quotes[1])

	maxLen := rules["max-len"].([]interface{})
	assert.Equal(t, float64(80), maxLen[1].(map[string]interface{})["code"])
}

func TestGenerateConfig_SemiNever(t *testing.T) {
	s := style()
	s.Semicolons = schema.SemicolonsAsNeeded

	content, err := generateConfig(s)
	require.NoError(t, err)

	rules := parse(t, content)["rules"].(map[string]interface{})
	assert.Equal(t, []interface{}{"error", "never"}, rules["semi"])
}

func TestCommaDangle(t *testing.T) {
	t.Run("es5 keeps function params bare", func(t *testing.T) {
		v, err := commaDangle(schema.TrailingCommasES5)
		require.NoError(t, err)
		opts := v.(map[string]string)
		assert.Equal(t, "never", opts["functions"])
		assert.Equal(t, "always-multiline", opts["objects"])
	})

	t.Run("none", func(t *testing.T) {
		v, err := commaDangle(schema.TrailingCommasNone)
		require.NoError(t, err)
		assert.Equal(t, "never", v)
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := commaDangle("sometimes")
		assert.Error(t, err)
	})
}
