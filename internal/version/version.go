package version

import "github.com/fatih/color"

// Build information for the bigcalc CLI.
// Major, Minor, Patch and the optional fields can be set via -ldflags.

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)

	Major = "0"
	Minor = "1"
	Patch = "0"

	// Suffix is appended after the patch number, e.g. "-dev".
	Suffix = "-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Plain returns the version without terminal colouring.
func Plain() string {
	return Major + "." + Minor + "." + Patch + Suffix
}

// Pretty returns the version with each component coloured. Colour is
// dropped automatically when color.NoColor is set.
func Pretty() string {
	return majorColor.Sprint(Major) + "." + minorColor.Sprint(Minor) + "." + patchColor.Sprint(Patch) + Suffix
}
