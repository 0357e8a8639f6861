package competition

import (
	"path/filepath"
	"strings"
	"time"
)

// Competition is one loaded dataset: a tournament or season worth of
// fixtures sourced from a single results file.
type Competition struct {
	ID         string
	Name       string
	Season     string
	SourceFile string
	LoadedAt   time.Time
	Fixtures   int
	Resolved   int
}

// SlugFromFile derives a competition ID from a results file name,
// e.g. "Copa America 2024.csv" -> "copa-america-2024".
func SlugFromFile(name string) string {
	base := name
	if ext := filepath.Ext(base); strings.EqualFold(ext, ".csv") {
		base = strings.TrimSuffix(base, ext)
	}
	base = strings.ToLower(strings.TrimSpace(base))
	var b strings.Builder
	lastDash := true
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
