package formatter

import (
	"fmt"
	"strings"

	"dadeserasmus/internal/models"
)

// RosterStats counts the students in a roster and the distinct non-empty
// origins and programs among them.
type RosterStats struct {
	Students int
	Cities   int
	Programs int
}

// Summary renders the stats as a single line.
func (s RosterStats) Summary() string {
	return fmt.Sprintf("%d students · %d cities · %d programs", s.Students, s.Cities, s.Programs)
}

// FilterRoster keeps the students whose origin contains city and whose program
// contains career, ignoring case and surrounding whitespace. An empty filter
// matches everything. Order is preserved.
func FilterRoster(students []models.Student, city, career string) []models.Student {
	city = strings.ToLower(strings.TrimSpace(city))
	career = strings.ToLower(strings.TrimSpace(career))

	filtered := make([]models.Student, 0, len(students))

	for _, s := range students {
		if city != "" && !strings.Contains(strings.ToLower(s.Origin), city) {
			continue
		}

		if career != "" && !strings.Contains(strings.ToLower(s.Program), career) {
			continue
		}

		filtered = append(filtered, s)
	}

	return filtered
}

// ComputeStats counts students, distinct cities and distinct programs.
func ComputeStats(students []models.Student) RosterStats {
	cities := make(map[string]struct{})
	programs := make(map[string]struct{})

	for _, s := range students {
		if s.Origin != "" {
			cities[s.Origin] = struct{}{}
		}

		if s.Program != "" {
			programs[s.Program] = struct{}{}
		}
	}

	return RosterStats{
		Students: len(students),
		Cities:   len(cities),
		Programs: len(programs),
	}
}
