// Package ranking implements salience-weighted overlap scoring used to pick
// an image for a new event and to order a friend list by shared interest.
package ranking

import (
	"sort"

	"github.com/lineup-app/lineup-server/internal/model"
)

// Candidate is one scorable entry: an image or a friend profile.
type Candidate struct {
	ID      string
	Weights map[string]float64
}

// Score multiplies the weights of every tag shared by both mappings and sums
// the products. Disjoint mappings score zero.
func Score(a, b map[string]float64) float64 {
	// Iterate the smaller map.
	if len(b) < len(a) {
		a, b = b, a
	}
	var total float64
	for tag, wa := range a {
		if wb, ok := b[tag]; ok {
			total += wa * wb
		}
	}
	return total
}

// Rank orders candidates by descending score against query. Ties are broken
// by ascending candidate ID so repeated runs on the same input produce the
// same sequence. The input slice is not modified.
func Rank(candidates []Candidate, query map[string]float64) []Candidate {
	ranked := make([]Candidate, len(candidates))
	copy(ranked, candidates)

	scores := make(map[string]float64, len(ranked))
	for _, c := range ranked {
		scores[c.ID] = Score(c.Weights, query)
	}
	sort.Slice(ranked, func(i, j int) bool {
		si, sj := scores[ranked[i].ID], scores[ranked[j].ID]
		if si != sj {
			return si > sj
		}
		return ranked[i].ID < ranked[j].ID
	})
	return ranked
}

// PickImage returns the URL of the catalog image scoring highest against the
// query tags. When the candidate set is empty or nothing overlaps the query,
// it falls back to defaultRef.
func PickImage(images []*model.Image, query map[string]float64, defaultRef string) string {
	if len(images) == 0 {
		return defaultRef
	}
	candidates := make([]Candidate, 0, len(images))
	byID := make(map[string]*model.Image, len(images))
	for _, img := range images {
		candidates = append(candidates, Candidate{ID: img.ImageID, Weights: img.TagScores})
		byID[img.ImageID] = img
	}
	ranked := Rank(candidates, query)
	best := ranked[0]
	if Score(best.Weights, query) == 0 {
		return defaultRef
	}
	return byID[best.ID].URL
}
