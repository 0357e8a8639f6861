package competition

import "testing"

func TestSlugFromFile(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"Copa America 2024.csv", "copa-america-2024"},
		{"results.csv", "results"},
		{"South_America WCQ  2026.csv", "south-america-wcq-2026"},
		{"already-slugged.csv", "already-slugged"},
		{"RESULTS.CSV", "results"},
		{"Euro 2024.Csv", "euro-2024"},
	}
	for _, tc := range cases {
		if got := SlugFromFile(tc.in); got != tc.want {
			t.Fatalf("SlugFromFile(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
