package cmakeext

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/coreos/go-semver/semver"
)

// MinimumWindowsVersion is the oldest CMake accepted on Windows.
var MinimumWindowsVersion = semver.Version{Major: 3, Minor: 1, Patch: 0}

var versionPattern = regexp.MustCompile(`version\s*([\d.]+)`)

// CheckToolVersion applies the platform-conditional version gate to the
// output of "cmake --version".
//
// Only PlatformWindows is gated. Every other family returns nil without
// looking at the output, even if it reports an ancient version.
//
// # Returns
//
//   - nil if the family is not gated or the version is new enough
//   - *VersionTooOldError if the version is below MinimumWindowsVersion
//   - a plain error if no version can be parsed from the output
func CheckToolVersion(output string, family PlatformFamily) error {
	if family != PlatformWindows {
		return nil
	}

	found, err := ParseToolVersion(output)
	if err != nil {
		return err
	}

	if found.LessThan(MinimumWindowsVersion) {
		return &VersionTooOldError{
			Tool:     cmakeName,
			Found:    found.String(),
			Minimum:  MinimumWindowsVersion.String(),
			Platform: family,
		}
	}

	return nil
}

// ParseToolVersion extracts the first "version X.Y.Z" from a version banner.
//
// Missing components count as zero and anything past the patch level is
// ignored, so "3.1" parses as 3.1.0 and "3.28.3.1" as 3.28.3.
func ParseToolVersion(output string) (*semver.Version, error) {
	matches := versionPattern.FindStringSubmatch(output)
	if matches == nil {
		return nil, fmt.Errorf("no version found in %q", firstLine(output))
	}

	var parts []string
	for _, part := range strings.Split(matches[1], ".") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("no version found in %q", firstLine(output))
	}

	for len(parts) < 3 {
		parts = append(parts, "0")
	}

	v, err := semver.NewVersion(strings.Join(parts[:3], "."))
	if err != nil {
		return nil, fmt.Errorf("failed to parse version %q: %w", matches[1], err)
	}
	return v, nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
