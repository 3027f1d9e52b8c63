package repository

import "testing"

func TestEscapeLike(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"B123XY", "B123XY"},
		{"B%Y", `B\%Y`},
		{"B_Y", `B\_Y`},
		{`B\Y`, `B\\Y`},
		{"%_", `\%\_`},
		{"", ""},
	}
	for _, tc := range cases {
		if got := escapeLike(tc.in); got != tc.want {
			t.Fatalf("escapeLike(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
