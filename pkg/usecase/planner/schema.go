package planner

import "google.golang.org/genai"

// Response schema the model must satisfy. This pins the field vocabulary
// shared by the generation contract and the document store.
var activitySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"time": {
			Type:        genai.TypeString,
			Description: "Time of day (e.g., 09:00 AM)",
		},
		"title": {
			Type:        genai.TypeString,
			Description: "Name of the place or activity",
		},
		"description": {
			Type:        genai.TypeString,
			Description: "Brief description of what to do there",
		},
		"type": {
			Type: genai.TypeString,
			Enum: []string{"activity", "meal", "transit", "rest"},
		},
		"location": {
			Type:        genai.TypeString,
			Description: "Location name or address",
		},
		"ecoTip": {
			Type:        genai.TypeString,
			Description: "A specific eco-friendly tip for this activity (e.g. bring reusable bottle, respect silence)",
		},
		"durationHint": {
			Type:        genai.TypeString,
			Description: "Estimated duration (e.g. 2 hours)",
		},
	},
	Required: []string{"time", "title", "type", "description"},
}

var daySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"dayNumber": {Type: genai.TypeInteger},
		"theme": {
			Type:        genai.TypeString,
			Description: "Main theme of the day (e.g., Historic Center)",
		},
		"activities": {Type: genai.TypeArray, Items: activitySchema},
	},
	Required: []string{"dayNumber", "theme", "activities"},
}

var itinerarySchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title": {
			Type:        genai.TypeString,
			Description: "A catchy title for the trip",
		},
		"summary": {
			Type:        genai.TypeString,
			Description: "A 2-sentence summary of the trip vibe",
		},
		"days": {Type: genai.TypeArray, Items: daySchema},
		"localEtiquette": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "List max. 3 important local cultural etiquette rules or taboos.",
		},
		"seasonalEvents": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "List of 1-2 generic seasonal highlights typical for this destination.",
		},
	},
	Required: []string{"title", "summary", "days", "localEtiquette"},
}
