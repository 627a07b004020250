package eslint

import (
	"github.com/DevSymphony/fmtsetup/internal/formatter"
)

// Name is the registry name of the ESLint linter.
const Name = "eslint"

// Descriptor describes ESLint. It only lints, so it contributes no
// format scripts.
var Descriptor = formatter.Descriptor{
	Name:       Name,
	Order:      30,
	Packages:   []string{"eslint"},
	ConfigFile: ".eslintrc.json",
	ConfigPatterns: []string{
		".eslintrc",
		".eslintrc.*",
		"eslint.config.*",
	},
	ManifestKey:    "eslintConfig",
	Roles:          []string{formatter.RoleLint},
	LintCommand:    "eslint .",
	LintFixCommand: "eslint . --fix",
}

func init() {
	_ = formatter.Global().Register(Descriptor, generateConfig)
}
