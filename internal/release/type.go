package release

import (
	"fmt"
	"regexp"

	"github.com/opsline/cutover/internal/exception"
)

// Type enumerated release type controlling the versioning strategy
// and whether branch topology is mutated
type Type string

const (
	// TypeFirst generates the changelog without bumping the version
	TypeFirst Type = "first"
	// TypePrerelease cuts a prerelease version
	TypePrerelease Type = "prerelease"
	// TypePatch cuts a patch release
	TypePatch Type = "patch"
	// TypeMinor cuts a minor release
	TypeMinor Type = "minor"
	// TypeMajor cuts a major release
	TypeMajor Type = "major"
	// TypePreview computes a prospective version and changelog then
	// discards every working-tree mutation
	TypePreview Type = "preview"
	// TypeExplicit applies a literal version supplied as the argument
	TypeExplicit Type = "explicit"
)

var explicitVersionRegexp = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// ParseType interprets the release-type argument. An empty argument
// defaults to a patch release. A literal X.Y.Z token becomes an
// explicit version override.
func ParseType(arg string) (Type, string, error) {
	if arg == "" {
		return TypePatch, "", nil
	}

	switch Type(arg) {
	case TypeFirst, TypePrerelease, TypePatch, TypeMinor, TypeMajor, TypePreview:
		return Type(arg), "", nil
	}

	if explicitVersionRegexp.MatchString(arg) {
		return TypeExplicit, arg, nil
	}

	return "", "", fmt.Errorf("%w: %s", exception.ErrInvalidReleaseType, arg)
}
