// Package names models person names and author lists and renders them in
// APA and IEEE citation styles.
package names

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// ErrEmptyNameComponent is returned when a name constructor receives an empty
// surname, first, or middle component.
var ErrEmptyNameComponent = errors.New("empty name component")

// Cutoffs for verbatim author listing; beyond them the list truncates to the
// first author plus "et al.".
const (
	ieeeEtAlCutoff = 6
	apaEtAlCutoff  = 2
)

// PersonName is an immutable person name in one of three shapes: surname only,
// first + surname, or first + middle + surname. Components are stored verbatim.
type PersonName struct {
	first   string
	middle  string
	surname string
}

// Last returns a surname-only name.
func Last(surname string) (PersonName, error) {
	if err := requireComponent("surname", surname); err != nil {
		return PersonName{}, err
	}
	return PersonName{surname: surname}, nil
}

// FirstLast returns a first-name + surname name.
func FirstLast(first, surname string) (PersonName, error) {
	if err := requireComponent("first name", first); err != nil {
		return PersonName{}, err
	}
	if err := requireComponent("surname", surname); err != nil {
		return PersonName{}, err
	}
	return PersonName{first: first, surname: surname}, nil
}

// FirstMiddleLast returns a fully specified name.
func FirstMiddleLast(first, middle, surname string) (PersonName, error) {
	if err := requireComponent("first name", first); err != nil {
		return PersonName{}, err
	}
	if err := requireComponent("middle name", middle); err != nil {
		return PersonName{}, err
	}
	if err := requireComponent("surname", surname); err != nil {
		return PersonName{}, err
	}
	return PersonName{first: first, middle: middle, surname: surname}, nil
}

func requireComponent(role, v string) error {
	if v == "" {
		return fmt.Errorf("%w: %s", ErrEmptyNameComponent, role)
	}
	return nil
}

// initialOf returns the first grapheme cluster of s followed by a period, so
// "Željko" -> "Ž." and multi-rune clusters stay whole.
func initialOf(s string) string {
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	return cluster + "."
}

// IEEE renders initials before the surname: "Doe", "J. Doe", "J. D. Doe".
func (n PersonName) IEEE() string {
	switch {
	case n.first == "":
		return n.surname
	case n.middle == "":
		return initialOf(n.first) + " " + n.surname
	default:
		return initialOf(n.first) + " " + initialOf(n.middle) + " " + n.surname
	}
}

// APA renders the surname first: "Doe", "Doe, J.", "Doe, J. D.".
func (n PersonName) APA() string {
	switch {
	case n.first == "":
		return n.surname
	case n.middle == "":
		return n.surname + ", " + initialOf(n.first)
	default:
		return n.surname + ", " + initialOf(n.first) + " " + initialOf(n.middle)
	}
}

// First returns the first-name component ("" when absent).
func (n PersonName) First() string { return n.first }

// Middle returns the middle-name component ("" when absent).
func (n PersonName) Middle() string { return n.middle }

// Surname returns the surname component.
func (n PersonName) Surname() string { return n.surname }

// Parse builds a PersonName from a human-entered string. It accepts either
// "Surname, First Middle" or "First Middle Surname"; extra middle words are
// folded into the middle component.
func Parse(name string) (PersonName, error) {
	name = strings.TrimSpace(name)
	if i := strings.Index(name, ","); i >= 0 {
		surname := strings.TrimSpace(name[:i])
		given := strings.Fields(name[i+1:])
		switch len(given) {
		case 0:
			return Last(surname)
		case 1:
			return FirstLast(given[0], surname)
		default:
			return FirstMiddleLast(given[0], strings.Join(given[1:], " "), surname)
		}
	}
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return PersonName{}, fmt.Errorf("%w: name", ErrEmptyNameComponent)
	case 1:
		return Last(parts[0])
	case 2:
		return FirstLast(parts[0], parts[1])
	default:
		return FirstMiddleLast(parts[0], strings.Join(parts[1:len(parts)-1], " "), parts[len(parts)-1])
	}
}

// Author is either an ordered list of persons or an organization name. The
// zero value is an empty person list, which renders as no author at all.
type Author struct {
	people []PersonName
	org    string
}

// Persons returns an Author over an ordered list of person names.
func Persons(people ...PersonName) Author {
	a := Author{people: make([]PersonName, len(people))}
	copy(a.people, people)
	return a
}

// Organization returns an Author carrying an organization name, rendered
// unmodified in both styles.
func Organization(name string) Author { return Author{org: name} }

// People returns a copy of the person list (nil for organizations).
func (a Author) People() []PersonName {
	if len(a.people) == 0 {
		return nil
	}
	out := make([]PersonName, len(a.people))
	copy(out, a.people)
	return out
}

// Org returns the organization name ("" for person lists).
func (a Author) Org() string { return a.org }

// IEEE renders the author list in IEEE style. Up to six names are listed
// verbatim ("A and B"; "A, B, and C" with the Oxford comma); beyond six the
// list truncates to the first author plus "et al.". ok is false when there is
// nothing to render.
func (a Author) IEEE() (string, bool) {
	if a.org != "" {
		return a.org, true
	}
	n := len(a.people)
	if n == 0 {
		return "", false
	}
	if n > ieeeEtAlCutoff {
		return a.people[0].IEEE() + " et al.", true
	}
	rendered := make([]string, n)
	for i, p := range a.people {
		rendered[i] = p.IEEE()
	}
	switch n {
	case 1:
		return rendered[0], true
	case 2:
		return rendered[0] + " and " + rendered[1], true
	default:
		return strings.Join(rendered[:n-1], ", ") + ", and " + rendered[n-1], true
	}
}

// APA renders the author list in APA style. One name as is, two joined with
// " & ", more than two truncate to the first author plus "et al.". ok is
// false when there is nothing to render.
func (a Author) APA() (string, bool) {
	if a.org != "" {
		return a.org, true
	}
	n := len(a.people)
	if n == 0 {
		return "", false
	}
	if n > apaEtAlCutoff {
		return a.people[0].APA() + " et al.", true
	}
	if n == 2 {
		return a.people[0].APA() + " & " + a.people[1].APA(), true
	}
	return a.people[0].APA(), true
}
