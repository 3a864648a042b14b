package app

import (
	"fmt"
	"strings"

	"mwalali_homes/internal/domain"
)

// Summaries is what the model sees of each listing; it keeps prompts small.
func Summaries(props []domain.Property) []domain.PropertySummary {
	out := make([]domain.PropertySummary, 0, len(props))
	for _, p := range props {
		out = append(out, domain.PropertySummary{
			ID: p.ID,
			Description: fmt.Sprintf("%s (%s) in %s, %s. Price: %s. Beds: %d. Features: %s. Desc: %s",
				p.Title, p.Category, p.City, p.State, p.DisplayPrice(), p.Beds,
				strings.Join(p.Features, ", "), p.Description),
		})
	}
	return out
}
