package prettier

import (
	"github.com/DevSymphony/fmtsetup/internal/formatter"
)

// Name is the registry name of the Prettier formatter.
const Name = "prettier"

// Descriptor describes Prettier.
var Descriptor = formatter.Descriptor{
	Name:       Name,
	Order:      10,
	Packages:   []string{"prettier"},
	ConfigFile: ".prettierrc.json",
	ConfigPatterns: []string{
		".prettierrc",
		".prettierrc.*",
		"prettier.config.*",
	},
	ManifestKey:   "prettier",
	Roles:         []string{formatter.RoleFormat},
	FormatCommand: "prettier --write .",
	CheckCommand:  "prettier --check .",
}

func init() {
	_ = formatter.Global().Register(Descriptor, generateConfig)
}
