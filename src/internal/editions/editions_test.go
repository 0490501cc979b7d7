package editions

import "testing"

func TestOrdinal(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{1, "1st"}, {2, "2nd"}, {3, "3rd"}, {4, "4th"},
		{11, "11th"}, {12, "12th"}, {13, "13th"},
		{21, "21st"}, {22, "22nd"}, {23, "23rd"},
		{101, "101st"}, {111, "111th"}, {0, "0th"},
	}
	for _, c := range cases {
		if got := Ordinal(c.n); got != c.want {
			t.Fatalf("Ordinal(%d): want %q, got %q", c.n, c.want, got)
		}
	}
}

func TestEditionRenders(t *testing.T) {
	cases := []struct {
		e    Edition
		ieee string
		apa  string
	}{
		{Numbered(2), "2nd ed.", "(2nd ed.)"},
		{Digital(3), "3rd digital ed.", "(3rd digital ed.)"},
		{Volume(7), "vol. 7", "(vol. 7)"},
		{VolumeRange(1, 3), "vols. 1–3", "(vols. 1–3)"},
		{SemVerMajor(4), "v4", "(v4)"},
		{SemVerMinor(4, 0), "v4.0", "(v4.0)"},
		{SemVerPatch(4, 0, 1), "v4.0.1", "(v4.0.1)"},
	}
	for _, c := range cases {
		if got := c.e.IEEE(); got != c.ieee {
			t.Fatalf("IEEE: want %q, got %q", c.ieee, got)
		}
		if got := c.e.APA(); got != c.apa {
			t.Fatalf("APA: want %q, got %q", c.apa, got)
		}
	}
}

func TestParseSemVer(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"4", "v4"},
		{"4.0", "v4.0"},
		{"4.0.1", "v4.0.1"},
		{"v4.0", "v4.0"},
		{" v2 ", "v2"},
	}
	for _, c := range cases {
		e, err := ParseSemVer(c.in)
		if err != nil {
			t.Fatalf("ParseSemVer(%q): %v", c.in, err)
		}
		if got := e.IEEE(); got != c.want {
			t.Fatalf("ParseSemVer(%q): want %q, got %q", c.in, c.want, got)
		}
	}
	for _, bad := range []string{"", "v", "abc", "1.2.3.4", "1.0.0-beta", "1.0.0+build.7"} {
		if _, err := ParseSemVer(bad); err == nil {
			t.Fatalf("ParseSemVer(%q): want error", bad)
		}
	}
}
