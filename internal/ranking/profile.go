package ranking

import "github.com/lineup-app/lineup-server/internal/model"

// MergeTags folds extracted (tag, salience) pairs into a tag profile,
// returning a new map. Weights only ever grow; merging an empty extraction
// returns an equal profile. The input profile is not modified.
func MergeTags(profile map[string]float64, extracted []model.TagSalience) map[string]float64 {
	merged := make(map[string]float64, len(profile)+len(extracted))
	for tag, w := range profile {
		merged[tag] = w
	}
	for _, ts := range extracted {
		merged[ts.Tag] += ts.Salience
	}
	return merged
}

// TagMap collapses extracted pairs into a mapping, summing duplicates.
func TagMap(extracted []model.TagSalience) map[string]float64 {
	return MergeTags(nil, extracted)
}
