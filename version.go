package switchboard

import _ "embed"

// Version is the release identifier, sourced from the VERSION file at
// build time. Consumers should trim whitespace before display.
//
//go:embed VERSION
var Version string
