// Package ranking orders restaurants by how closely they resemble another.
package ranking

import (
	"sort"

	"github.com/dmitrijs2005/ufood/internal/client/models"
)

// MaxSimilar caps the length of a Similar result.
const MaxSimilar = 5

// Similar returns up to MaxSimilar candidates ranked by the number of genre
// tags they share with target, then by rating, both descending. The target
// itself (same ID) is never included. A target without genres yields an
// empty result. The input slice is not modified.
func Similar(target models.Restaurant, candidates []models.Restaurant) []models.Restaurant {
	if len(target.Genres) == 0 {
		return []models.Restaurant{}
	}

	genres := make(map[string]struct{}, len(target.Genres))
	for _, g := range target.Genres {
		genres[g] = struct{}{}
	}

	type scored struct {
		r       models.Restaurant
		matches int
	}

	ranked := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		if c.ID == target.ID {
			continue
		}
		ranked = append(ranked, scored{r: c, matches: SharedGenres(genres, c.Genres)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].matches != ranked[j].matches {
			return ranked[i].matches > ranked[j].matches
		}
		return ranked[i].r.Rating > ranked[j].r.Rating
	})

	if len(ranked) > MaxSimilar {
		ranked = ranked[:MaxSimilar]
	}

	out := make([]models.Restaurant, len(ranked))
	for i, s := range ranked {
		out[i] = s.r
	}
	return out
}

// SharedGenres counts the tags of candidate that appear in genres.
func SharedGenres(genres map[string]struct{}, candidate []string) int {
	n := 0
	for _, g := range candidate {
		if _, ok := genres[g]; ok {
			n++
		}
	}
	return n
}
