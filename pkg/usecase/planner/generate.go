package planner

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"text/template"
	"time"

	"github.com/m-mizutani/ecotravel/pkg/model"
	"github.com/m-mizutani/ecotravel/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/genai"
)

//go:embed prompt/itinerary.md
var itineraryPromptRaw string

var itineraryPromptTmpl = template.Must(template.New("itinerary").Parse(itineraryPromptRaw))

const (
	maxEtiquetteNotes = 3
	maxSeasonalEvents = 2
)

// Generate runs one generation cycle: it builds the prompt from the search
// parameters, calls the model with the response schema as a structural
// constraint, and returns the parsed result stamped with a fresh ID,
// the destination, and the creation timestamp. Any upstream failure is
// logged in full and collapsed into ErrGenerationFailed.
func (u *UseCase) Generate(ctx context.Context, params model.SearchParams) (*model.Itinerary, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	start, _ := time.Parse(model.DateFormat, params.StartDate)
	end, _ := time.Parse(model.DateFormat, params.EndDate)
	duration := TripDuration(start, end)

	var buf bytes.Buffer
	if err := itineraryPromptTmpl.Execute(&buf, map[string]any{
		"DurationDays": duration,
		"City":         params.City,
		"OriginCity":   params.OriginCity,
		"StartDate":    params.StartDate,
		"EndDate":      params.EndDate,
		"PeopleCount":  params.PeopleCount,
		"Pace":         params.Pace,
		"Mood":         params.Mood,
		"StartTime":    params.StartTime,
		"EndTime":      params.EndTime,
		"Describe":     params.Describe,
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to execute itinerary prompt template")
	}

	temperature := float32(0.7)
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   itinerarySchema,
		Temperature:      &temperature,
	}

	contents := []*genai.Content{
		genai.NewContentFromText(buf.String(), genai.RoleUser),
	}

	resp, err := u.gemini.GenerateContent(ctx, contents, config)
	if err != nil {
		logging.From(ctx).Error("gemini generation error", "err", err, "city", params.City)
		return nil, ErrGenerationFailed
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		logging.From(ctx).Error("invalid response structure from gemini", "city", params.City)
		return nil, ErrGenerationFailed
	}

	rawJSON := resp.Candidates[0].Content.Parts[0].Text
	if rawJSON == "" {
		logging.From(ctx).Error("empty response from gemini", "city", params.City)
		return nil, ErrGenerationFailed
	}

	var plan struct {
		Title          string `json:"title"`
		Summary        string `json:"summary"`
		Days           []struct {
			DayNumber  int    `json:"dayNumber"`
			Theme      string `json:"theme"`
			Activities []struct {
				Time         string `json:"time"`
				Title        string `json:"title"`
				Description  string `json:"description"`
				Type         string `json:"type"`
				Location     string `json:"location"`
				EcoTip       string `json:"ecoTip"`
				DurationHint string `json:"durationHint"`
			} `json:"activities"`
		} `json:"days"`
		LocalEtiquette []string `json:"localEtiquette"`
		SeasonalEvents []string `json:"seasonalEvents"`
	}

	if err := json.Unmarshal([]byte(rawJSON), &plan); err != nil {
		logging.From(ctx).Error("failed to unmarshal itinerary JSON", "err", err, "json", rawJSON)
		return nil, ErrGenerationFailed
	}

	if len(plan.Days) == 0 {
		logging.From(ctx).Error("generated itinerary has no days", "city", params.City)
		return nil, ErrGenerationFailed
	}

	itinerary := &model.Itinerary{
		ID:             model.NewItineraryID(),
		Destination:    params.City,
		Title:          plan.Title,
		Summary:        plan.Summary,
		Days:           make([]model.DaySchedule, 0, len(plan.Days)),
		LocalEtiquette: clamp(plan.LocalEtiquette, maxEtiquetteNotes),
		SeasonalEvents: clamp(plan.SeasonalEvents, maxSeasonalEvents),
		CreatedAt:      u.now().UnixMilli(),
	}

	for _, dayData := range plan.Days {
		day := model.DaySchedule{
			DayNumber:  dayData.DayNumber,
			Theme:      dayData.Theme,
			Activities: make([]model.Activity, 0, len(dayData.Activities)),
		}
		if dayData.DayNumber >= 1 {
			day.Date = start.AddDate(0, 0, dayData.DayNumber-1).Format(model.DateFormat)
		}
		for _, actData := range dayData.Activities {
			day.Activities = append(day.Activities, model.Activity{
				Time:         actData.Time,
				Title:        actData.Title,
				Description:  actData.Description,
				Type:         model.ActivityType(actData.Type),
				Location:     actData.Location,
				EcoTip:       actData.EcoTip,
				DurationHint: actData.DurationHint,
			})
		}
		itinerary.Days = append(itinerary.Days, day)
	}

	return itinerary, nil
}

// clamp trims advisory lists to their documented caps. The schema asks the
// model for the caps already; this makes the bound reliable downstream.
func clamp(list []string, max int) []string {
	if len(list) > max {
		return list[:max]
	}
	return list
}
