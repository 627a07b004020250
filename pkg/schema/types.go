package schema

import "log"

// Quote styles
const (
	QuoteSingle = "single"
	QuoteDouble = "double"
)

// Semicolon policies
const (
	SemicolonsAlways   = "always"
	SemicolonsAsNeeded = "as-needed"
)

// Trailing comma policies
const (
	TrailingCommasAll  = "all"
	TrailingCommasES5  = "es5"
	TrailingCommasNone = "none"
)

// StyleDescriptor is the resolved, tool-agnostic formatting policy.
// After preset resolution every field holds a concrete value.
type StyleDescriptor struct {
	LineWidth      int    `json:"lineWidth"`
	IndentWidth    int    `json:"indentWidth"`
	QuoteStyle     string `json:"quoteStyle"`     // "single", "double"
	JSXQuoteStyle  string `json:"jsxQuoteStyle"`  // "single", "double"
	Semicolons     string `json:"semicolons"`     // "always", "as-needed"
	TrailingCommas string `json:"trailingCommas"` // "all", "es5", "none"
}

// StyleOverrides is a partial StyleDescriptor supplied by the caller.
// A nil field means "keep the preset value".
type StyleOverrides struct {
	LineWidth      *int    `json:"lineWidth,omitempty"`
	IndentWidth    *int    `json:"indentWidth,omitempty"`
	QuoteStyle     *string `json:"quoteStyle,omitempty"`
	JSXQuoteStyle  *string `json:"jsxQuoteStyle,omitempty"`
	Semicolons     *string `json:"semicolons,omitempty"`
	TrailingCommas *string `json:"trailingCommas,omitempty"`
}

// IsEmpty reports whether no override field is set.
func (o *StyleOverrides) IsEmpty() bool {
	if o == nil {
		return true
	}
	return o.LineWidth == nil && o.IndentWidth == nil && o.QuoteStyle == nil &&
		o.JSXQuoteStyle == nil && o.Semicolons == nil && o.TrailingCommas == nil
}

// Detection statuses
const (
	StatusAvailable  = "available"
	StatusUnverified = "unverified" // config file present, package not declared
	StatusMissing    = "missing"
)

// FormatterStatus is the detection outcome for one registry entry.
type FormatterStatus struct {
	Name       string `json:"name"`
	Status     string `json:"status"`
	Package    string `json:"package,omitempty"`
	Version    string `json:"version,omitempty"`
	ConfigFile string `json:"configFile,omitempty"`
}

// Conflict is a responsibility claimed by more than one available formatter.
type Conflict struct {
	Role       string   `json:"role"`
	Formatters []string `json:"formatters"`
}

// DetectionResult is a per-project snapshot of formatter availability.
type DetectionResult struct {
	Formatters     []FormatterStatus `json:"formatters"`
	Available      []string          `json:"available"`
	Unverified     []string          `json:"unverified,omitempty"`
	Missing        []string          `json:"missing"`
	Conflicting    []string          `json:"conflicting,omitempty"`
	Conflicts      []Conflict        `json:"conflicts,omitempty"`
	PackageManager string            `json:"packageManager"`
	Warnings       []Warning         `json:"warnings,omitempty"`
}

// IsAvailable reports whether name was detected (verified or not).
func (d *DetectionResult) IsAvailable(name string) bool {
	for _, n := range d.Available {
		if n == name {
			return true
		}
	}
	return false
}

// Warning codes
const (
	WarnFormatterConflict    = "FormatterConflict"
	WarnScriptConflict       = "ScriptConflict"
	WarnUnverifiedFormatter  = "UnverifiedFormatter"
	WarnFormatterNotDetected = "FormatterNotDetected"
	WarnConfigShadowed       = "ConfigShadowed"
)

// Warning is a non-fatal condition accumulated during a run.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	return w.Code + ": " + w.Message
}

// SetupOptions is the caller input for one setup invocation.
type SetupOptions struct {
	TargetDir     string          `json:"targetDir"`
	Preset        string          `json:"preset,omitempty"`
	Overrides     *StyleOverrides `json:"overrides,omitempty"`
	Formatters    []string        `json:"formatters,omitempty"`
	UpdateScripts bool            `json:"updateScripts"`
	DryRun        bool            `json:"dryRun"`
	Force         bool            `json:"force,omitempty"`

	// Logger receives stage progress. Nil discards it.
	Logger *log.Logger `json:"-"`
}

// ConfigArtifact is one planned or written config file.
type ConfigArtifact struct {
	Formatter    string `json:"formatter"`
	Path         string `json:"path"`
	Content      string `json:"content"`
	Skipped      bool   `json:"skipped"`
	ExistingPath string `json:"existingPath,omitempty"`
}

// Setup result statuses
const (
	ResultSuccess             = "success"
	ResultSuccessWithWarnings = "success-with-warnings"
	ResultFatal               = "fatal"
)

// SetupResult is the aggregate report of a setup run.
type SetupResult struct {
	Status         string           `json:"status"`
	Success        bool             `json:"success"`
	DryRun         bool             `json:"dryRun"`
	Preset         string           `json:"preset,omitempty"`
	Style          *StyleDescriptor `json:"style,omitempty"`
	Detection      *DetectionResult `json:"detection,omitempty"`
	Artifacts      []ConfigArtifact `json:"artifacts"`
	UpdatedScripts []string         `json:"updatedScripts"`
	Warnings       []Warning        `json:"warnings"`
	Error          string           `json:"error,omitempty"`
	ManifestDiff   string           `json:"manifestDiff,omitempty"`
}
