package shaper

import (
	"sort"

	"github.com/amaumene/mellab/internal/models"
	"github.com/amaumene/mellab/internal/services/tmdb"
)

// Crew caps
const (
	maxCrewPerRole     = 2
	maxExecProducers   = 3
	maxCompanies       = 2
	maxCast            = 30
	maxKeywords        = 10
	maxRecommendations = 10
)

// CrewByJob returns the distinct names credited with job, in credit order, capped at limit
func CrewByJob(crew []tmdb.CrewCredit, job string, limit int) []string {
	seen := make(map[string]bool)
	names := make([]string, 0, limit)

	for _, member := range crew {
		if member.Job != job || seen[member.Name] {
			continue
		}
		seen[member.Name] = true
		names = append(names, member.Name)
		if len(names) == limit {
			break
		}
	}

	return names
}

// Composers prefers the original music composer credit and falls back to Music
func Composers(crew []tmdb.CrewCredit) []string {
	if names := CrewByJob(crew, "Original Music Composer", maxCrewPerRole); len(names) > 0 {
		return names
	}
	return CrewByJob(crew, "Music", maxCrewPerRole)
}

// Names flattens named entries, capped at limit (0 means no cap)
func Names(entries []tmdb.NamedEntry, limit int) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if limit > 0 && len(names) == limit {
			break
		}
		names = append(names, e.Name)
	}
	return names
}

// SortByYear orders entries by the year their display string starts with.
// Entries without a year go last; ties keep their original order.
func SortByYear(parts []models.Related) {
	sort.SliceStable(parts, func(i, j int) bool {
		return yearKey(parts[i].Year) < yearKey(parts[j].Year)
	})
}

// Trailer returns the key of the first YouTube trailer
func Trailer(videos []tmdb.Video) *string {
	for _, v := range videos {
		if v.Site == "YouTube" && v.Type == "Trailer" {
			key := v.Key
			return &key
		}
	}
	return nil
}
