// File: services/intelligence/parser.go
package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"realtor/models"
	"realtor/utils"

	"github.com/kaptinlin/jsonrepair"
	"go.uber.org/zap"
)

const parseQueryPrompt = `You are a real estate search query parser.
Extract structured search filters from the user's request and answer with a single JSON object.

Fields (omit any the user did not mention):
- "city": string, city name
- "min_price", "max_price": numbers
- "bedrooms", "bathrooms": integers
- "property_type": string, e.g. "apartment", "villa", "townhouse"
- "amenities": array of strings, e.g. ["pool", "gym"]
- "min_area", "max_area": numbers, square meters
- "sort_by": "price" or "area"
- "sort_order": "asc" or "desc"

User request: %q`

// ParsePropertyQuery turns a free-text property request into structured search
// filters using the language model.
func (g *GeminiClient) ParsePropertyQuery(ctx context.Context, text string) (models.PropertySearchFilters, error) {
	var filters models.PropertySearchFilters

	raw, err := g.GenerateJSON(ctx, fmt.Sprintf(parseQueryPrompt, text))
	if err != nil {
		return filters, fmt.Errorf("query parsing failed: %w", err)
	}

	if err := decodeModelJSON(raw, &filters); err != nil {
		return filters, fmt.Errorf("failed to decode search filters: %w", err)
	}
	return filters, nil
}

// decodeModelJSON unmarshals model output, repairing near-JSON (stray fences,
// trailing commas) before giving up.
func decodeModelJSON(raw string, v any) error {
	if err := json.Unmarshal([]byte(raw), v); err == nil {
		return nil
	}
	repaired, err := jsonrepair.JSONRepair(raw)
	if err != nil {
		return fmt.Errorf("unparseable model output: %w", err)
	}
	utils.GetLogger().Debug("Repaired malformed model JSON", zap.Int("length", len(raw)))
	return json.Unmarshal([]byte(repaired), v)
}
