package biome

import (
	"github.com/DevSymphony/fmtsetup/internal/formatter"
)

// Name is the registry name of the Biome formatter.
const Name = "biome"

// Descriptor describes Biome. It both formats and lints, so it conflicts
// with Prettier and ESLint when they are present too.
var Descriptor = formatter.Descriptor{
	Name:       Name,
	Order:      20,
	Packages:   []string{"@biomejs/biome"},
	ConfigFile: "biome.json",
	ConfigPatterns: []string{
		"biome.json",
		"biome.jsonc",
	},
	Roles:          []string{formatter.RoleFormat, formatter.RoleLint},
	FormatCommand:  "biome format --write .",
	CheckCommand:   "biome format .",
	LintCommand:    "biome lint .",
	LintFixCommand: "biome lint --write .",
}

func init() {
	_ = formatter.Global().Register(Descriptor, generateConfig)
}
