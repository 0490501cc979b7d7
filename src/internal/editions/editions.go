// Package editions models version and edition descriptors for citations:
// numbered print and digital editions, volumes and volume ranges, and
// semantic versions at the precision they were written with.
package editions

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/blang/semver/v4"
)

// enDash joins numeric ranges.
const enDash = "–"

type kind int

const (
	kindNumbered kind = iota
	kindDigital
	kindVolume
	kindVolumeRange
	kindSemVer
)

// Edition is an immutable descriptor. Numeric arguments are non-negative by
// contract; construction never fails.
type Edition struct {
	kind    kind
	a, b, c int
	prec    int // semver components written (1..3)
}

// Numbered returns an nth print edition: "2nd ed.".
func Numbered(n int) Edition { return Edition{kind: kindNumbered, a: n} }

// Digital returns an nth digital edition: "2nd digital ed.".
func Digital(n int) Edition { return Edition{kind: kindDigital, a: n} }

// Volume returns a single volume: "vol. 7".
func Volume(n int) Edition { return Edition{kind: kindVolume, a: n} }

// VolumeRange returns a span of volumes: "vols. 1–3".
func VolumeRange(start, end int) Edition {
	return Edition{kind: kindVolumeRange, a: start, b: end}
}

// SemVerMajor returns a major-only version: "v4".
func SemVerMajor(major int) Edition {
	return Edition{kind: kindSemVer, a: major, prec: 1}
}

// SemVerMinor returns a major.minor version: "v4.0".
func SemVerMinor(major, minor int) Edition {
	return Edition{kind: kindSemVer, a: major, b: minor, prec: 2}
}

// SemVerPatch returns a full version: "v4.0.1".
func SemVerPatch(major, minor, patch int) Edition {
	return Edition{kind: kindSemVer, a: major, b: minor, c: patch, prec: 3}
}

// ParseSemVer accepts "4", "4.0", or "4.0.1", with an optional leading "v",
// and keeps the precision it was written with. Pre-release and build metadata
// are rejected.
func ParseSemVer(s string) (Edition, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "v")
	if trimmed == "" {
		return Edition{}, fmt.Errorf("parse semver %q: empty", s)
	}
	v, err := semver.ParseTolerant(trimmed)
	if err != nil {
		return Edition{}, fmt.Errorf("parse semver %q: %w", s, err)
	}
	if len(v.Pre) > 0 || len(v.Build) > 0 {
		return Edition{}, fmt.Errorf("parse semver %q: pre-release and build metadata not allowed", s)
	}
	switch strings.Count(trimmed, ".") {
	case 0:
		return SemVerMajor(int(v.Major)), nil
	case 1:
		return SemVerMinor(int(v.Major), int(v.Minor)), nil
	default:
		return SemVerPatch(int(v.Major), int(v.Minor), int(v.Patch)), nil
	}
}

// IEEE renders the bare descriptor: "2nd ed.", "vol. 7", "vols. 1–3", "v4.0".
func (e Edition) IEEE() string {
	switch e.kind {
	case kindNumbered:
		return Ordinal(e.a) + " ed."
	case kindDigital:
		return Ordinal(e.a) + " digital ed."
	case kindVolume:
		return "vol. " + strconv.Itoa(e.a)
	case kindVolumeRange:
		return "vols. " + strconv.Itoa(e.a) + enDash + strconv.Itoa(e.b)
	default:
		return e.semverString()
	}
}

// APA renders the same descriptor wrapped in parentheses: "(2nd ed.)".
func (e Edition) APA() string { return "(" + e.IEEE() + ")" }

func (e Edition) semverString() string {
	switch e.prec {
	case 1:
		return fmt.Sprintf("v%d", e.a)
	case 2:
		return fmt.Sprintf("v%d.%d", e.a, e.b)
	default:
		return fmt.Sprintf("v%d.%d.%d", e.a, e.b, e.c)
	}
}

// Ordinal returns n with its English ordinal suffix: 1st, 2nd, 3rd, 4th,
// 11th, 21st.
func Ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return strconv.Itoa(n) + suffix
}
