package version

import (
	goversion "github.com/hashicorp/go-version"
)

// Version is overwritten at build time with -ldflags "-X".
var Version = "version is set by build process"

// Satisfies reports whether current is at least minimum. When either value
// cannot be parsed (development builds, empty minimum) the check passes.
func Satisfies(current, minimum string) bool {
	if minimum == "" {
		return true
	}
	want, err := goversion.NewVersion(minimum)
	if err != nil {
		return true
	}
	have, err := goversion.NewVersion(current)
	if err != nil {
		return true
	}
	return have.GreaterThanOrEqual(want)
}
