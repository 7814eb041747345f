package services

import (
	"sort"
	"strings"

	"franchise-bot/models"
)

// RankSimilar scores every catalog category by how many of its keywords occur
// in the question and returns the top matches, best first. Zero-score
// categories are dropped; ties keep catalog order.
func RankSimilar(question string, catalog *Catalog, topN int) []models.Category {
	lower := strings.ToLower(question)

	type match struct {
		category models.Category
		score    int
	}

	var matches []match
	for _, cat := range catalog.Members() {
		score := 0
		for _, keyword := range catalog.Keywords(cat) {
			if strings.Contains(lower, keyword) {
				score++
			}
		}
		if score > 0 {
			matches = append(matches, match{category: cat, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if len(matches) > topN {
		matches = matches[:topN]
	}

	result := make([]models.Category, 0, len(matches))
	for _, m := range matches {
		result = append(result, m.category)
	}
	return result
}
