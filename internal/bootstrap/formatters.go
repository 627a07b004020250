package bootstrap

import (
	// Import formatters for registration side-effects.
	// Each formatter's register.go file contains an init() function
	// that registers the descriptor and template with the global registry.
	_ "github.com/DevSymphony/fmtsetup/internal/formatter/biome"
	_ "github.com/DevSymphony/fmtsetup/internal/formatter/eslint"
	_ "github.com/DevSymphony/fmtsetup/internal/formatter/prettier"
	_ "github.com/DevSymphony/fmtsetup/internal/formatter/remark"
)

// This package only imports formatter packages for their init() side-effects.
// Import this package from main.go to ensure all formatters are registered.
