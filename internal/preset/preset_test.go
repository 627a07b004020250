package preset

import (
	"testing"

	"github.com/DevSymphony/fmtsetup/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestResolve_Deterministic(t *testing.T) {
	a, err := Resolve(Strict, &schema.StyleOverrides{})
	require.NoError(t, err)
	b, err := Resolve(Strict, &schema.StyleOverrides{})
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestResolve_SingleOverride(t *testing.T) {
	base, err := Get(Standard)
	require.NoError(t, err)

	got, err := Resolve(Standard, &schema.StyleOverrides{LineWidth: intPtr(100 + 20)})
	require.NoError(t, err)

	want := base
	want.LineWidth = 120
	assert.Equal(t, want, got, "only lineWidth should change")
}

func TestResolve_LineWidth100OnStandard(t *testing.T) {
	base, err := Get(Standard)
	require.NoError(t, err)
	require.NotEqual(t, 100, base.LineWidth)

	got, err := Resolve(Standard, &schema.StyleOverrides{LineWidth: intPtr(100)})
	require.NoError(t, err)

	want := base
	want.LineWidth = 100
	assert.Equal(t, want, got)
	assert.NotEqual(t, base, got)
}

func TestBuiltins_StrictIsStricterThanStandard(t *testing.T) {
	standard, err := Get(Standard)
	require.NoError(t, err)
	strict, err := Get(Strict)
	require.NoError(t, err)

	assert.LessOrEqual(t, strict.LineWidth, standard.LineWidth)
	assert.Equal(t, schema.TrailingCommasES5, standard.TrailingCommas)
	assert.Equal(t, schema.TrailingCommasAll, strict.TrailingCommas)
	assert.NotEqual(t, standard, strict)
}

func TestResolve_EmptyNameUsesStandard(t *testing.T) {
	got, err := Resolve("", &schema.StyleOverrides{Semicolons: strPtr(schema.SemicolonsAsNeeded)})
	require.NoError(t, err)

	standard, _ := Get(Standard)
	assert.Equal(t, standard.LineWidth, got.LineWidth)
	assert.Equal(t, schema.SemicolonsAsNeeded, got.Semicolons)
}

func TestResolve_NilOverrides(t *testing.T) {
	got, err := Resolve(Relaxed, nil)
	require.NoError(t, err)

	relaxed, _ := Get(Relaxed)
	assert.Equal(t, relaxed, got)
}

func TestResolve_UnknownPreset(t *testing.T) {
	_, err := Resolve("prettier-default", nil)
	assert.ErrorIs(t, err, ErrInvalidPreset)
}

func TestResolve_InvalidOverride(t *testing.T) {
	tests := []struct {
		name      string
		overrides schema.StyleOverrides
	}{
		{"zero line width", schema.StyleOverrides{LineWidth: intPtr(0)}},
		{"negative indent", schema.StyleOverrides{IndentWidth: intPtr(-2)}},
		{"unknown quote", schema.StyleOverrides{QuoteStyle: strPtr("backtick")}},
		{"unknown jsx quote", schema.StyleOverrides{JSXQuoteStyle: strPtr("")}},
		{"unknown semicolons", schema.StyleOverrides{Semicolons: strPtr("never")}},
		{"unknown trailing commas", schema.StyleOverrides{TrailingCommas: strPtr("multiline")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(Standard, &tt.overrides)
			assert.ErrorIs(t, err, ErrInvalidPreset)
		})
	}
}

func TestBuiltinsAreComplete(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			style, err := Get(name)
			require.NoError(t, err)
			assert.NoError(t, Validate(style))
		})
	}
}

func TestResolve_DoesNotMutateBuiltins(t *testing.T) {
	_, err := Resolve(Strict, &schema.StyleOverrides{LineWidth: intPtr(200)})
	require.NoError(t, err)

	strict, _ := Get(Strict)
	assert.Equal(t, 80, strict.LineWidth)
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Equal(t, []string{Standard, Strict, Relaxed}, names)

	names[0] = "mutated"
	assert.Equal(t, Standard, Names()[0])
}
