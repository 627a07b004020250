package remark

import (
	"github.com/DevSymphony/fmtsetup/internal/formatter"
)

// Name is the registry name of the remark markdown formatter.
const Name = "remark"

// Descriptor describes remark-cli.
var Descriptor = formatter.Descriptor{
	Name:       Name,
	Order:      40,
	Packages:   []string{"remark-cli", "remark"},
	ConfigFile: ".remarkrc.yaml",
	ConfigPatterns: []string{
		".remarkrc",
		".remarkrc.*",
	},
	ManifestKey:   "remarkConfig",
	Roles:         []string{formatter.RoleMarkdown},
	FormatCommand: "remark . --output",
	CheckCommand:  "remark . --frail --quiet",
}

func init() {
	_ = formatter.Global().Register(Descriptor, generateConfig)
}
