package gemini

import (
	"encoding/json"
	"fmt"

	"mwalali_homes/internal/domain"
)

func searchPrompt(query string, summaries []domain.PropertySummary) (string, error) {
	db, err := json.Marshal(summaries)
	if err != nil {
		return "", fmt.Errorf("gemini: encode summaries: %w", err)
	}
	return fmt.Sprintf(`You are the intelligent search engine for Mwalali Homes in Nairobi, Kenya.
The user is searching for: %q.

Here is the database of available properties:
%s

Return a JSON object with a single property "matchedIds" which is an array of strings containing the IDs of the properties that best match the user's intent.
If the user is vague, return the most prominent 'Sale' listings (Brookside Oak, Oak Breeze).
Sort by relevance.`, query, db), nil
}
