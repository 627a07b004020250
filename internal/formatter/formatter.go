package formatter

import (
	"github.com/DevSymphony/fmtsetup/pkg/schema"
)

// Roles a formatter can claim. Two available formatters sharing a role
// are reported as conflicting.
const (
	RoleFormat   = "format"
	RoleLint     = "lint"
	RoleMarkdown = "markdown"
)

// Template maps a resolved style to the tool's native config document.
// Templates must be pure: same input, same bytes.
type Template func(style schema.StyleDescriptor) ([]byte, error)

// Descriptor identifies one supported tool.
//
// Descriptors are defined once per tool in the tool's register.go and
// never mutated afterwards.
type Descriptor struct {
	// Name is the formatter identifier (e.g., "prettier", "biome").
	Name string

	// Order is the registry declaration order. Aggregate scripts and
	// reports follow it.
	Order int

	// Packages lists npm package names whose presence in dependencies
	// or devDependencies signals availability.
	Packages []string

	// ConfigFile is the file this tool generates (e.g., ".prettierrc.json").
	ConfigFile string

	// ConfigPatterns are doublestar globs matching every config file name
	// the tool itself recognises (e.g., ".prettierrc*").
	ConfigPatterns []string

	// ManifestKey is a package.json key that can also hold the tool's
	// config (e.g., "prettier", "eslintConfig"). Empty if unsupported.
	ManifestKey string

	// Roles lists the responsibilities the tool claims.
	Roles []string

	// Script commands. Empty means the tool does not contribute that script.
	FormatCommand  string
	CheckCommand   string
	LintCommand    string
	LintFixCommand string
}

// HasRole reports whether the descriptor claims role.
func (d Descriptor) HasRole(role string) bool {
	for _, r := range d.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// FormatScript returns the "format:<name>" script name.
func (d Descriptor) FormatScript() string { return "format:" + d.Name }

// CheckScript returns the "format:<name>:check" script name.
func (d Descriptor) CheckScript() string { return "format:" + d.Name + ":check" }

// LintScript returns the "lint:<name>" script name.
func (d Descriptor) LintScript() string { return "lint:" + d.Name }

// LintFixScript returns the "lint:<name>:fix" script name.
func (d Descriptor) LintFixScript() string { return "lint:" + d.Name + ":fix" }
