package planner_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/ecotravel/pkg/model"
	"github.com/m-mizutani/ecotravel/pkg/usecase/planner"
	"github.com/m-mizutani/gt"
	"google.golang.org/genai"
)

// mockGemini is a mock implementation of adapter.Gemini for testing
type mockGemini struct {
	generateFunc func(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

func (m *mockGemini) GenerateContent(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, contents, config)
	}
	return nil, errors.New("not implemented")
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{{Text: text}},
				},
			},
		},
	}
}

func mustDate(t *testing.T, s string) time.Time {
	d, err := time.Parse(model.DateFormat, s)
	gt.NoError(t, err)
	return d
}

func TestTripDuration(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected int
	}{
		{"same day", "2024-04-01", "2024-04-01", 1},
		{"one night", "2024-04-01", "2024-04-02", 2},
		{"two nights", "2024-04-01", "2024-04-03", 3},
		{"week", "2024-04-01", "2024-04-07", 7},
		{"across month boundary", "2024-04-29", "2024-05-02", 4},
		{"reversed endpoints", "2024-04-03", "2024-04-01", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := planner.TripDuration(mustDate(t, tt.start), mustDate(t, tt.end))
			gt.V(t, got).Equal(tt.expected)
		})
	}
}

func kyotoParams() model.SearchParams {
	return model.SearchParams{
		OriginCity:  "Jakarta",
		City:        "Kyoto",
		StartDate:   "2024-04-01",
		EndDate:     "2024-04-03",
		Pace:        model.PaceModerate,
		Mood:        model.MoodCulture,
		StartTime:   "09:00",
		EndTime:     "20:00",
		PeopleCount: 2,
	}
}

func kyotoPlanJSON(t *testing.T) string {
	plan := map[string]any{
		"title":   "Kyoto Heritage Escape",
		"summary": "Three days among temples and tea houses. Travel slow, eat local.",
		"days": []map[string]any{
			{
				"dayNumber": 1,
				"theme":     "Arrival & Gion",
				"activities": []map[string]any{
					{"time": "09:00 AM", "title": "Arrive from Jakarta", "type": "transit", "description": "Airport train into the city"},
					{"time": "02:00 PM", "title": "Gion walking tour", "type": "activity", "description": "Historic geisha district on foot", "ecoTip": "Explore on foot"},
				},
			},
			{
				"dayNumber": 2,
				"theme":     "Temples",
				"activities": []map[string]any{
					{"time": "09:30 AM", "title": "Kinkaku-ji", "type": "activity", "description": "The Golden Pavilion", "location": "Kita Ward"},
					{"time": "12:30 PM", "title": "Shojin ryori lunch", "type": "meal", "description": "Buddhist vegetarian cuisine"},
				},
			},
			{
				"dayNumber": 3,
				"theme":     "Arashiyama",
				"activities": []map[string]any{
					{"time": "09:00 AM", "title": "Bamboo grove", "type": "activity", "description": "Morning walk before the crowds", "durationHint": "2 hours"},
				},
			},
		},
		"localEtiquette": []string{"Remove shoes indoors", "No tipping", "Queue quietly"},
		"seasonalEvents": []string{"Cherry Blossom Viewing (April)"},
	}

	raw, err := json.Marshal(plan)
	gt.NoError(t, err)
	return string(raw)
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	gemini := &mockGemini{
		generateFunc: func(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			// Prompt carries the computed duration and destination
			gt.A(t, contents).Length(1)
			gt.S(t, contents[0].Parts[0].Text).Contains("3-day travel itinerary")
			gt.S(t, contents[0].Parts[0].Text).Contains("Kyoto")

			// Structured output constraint with fixed creativity
			gt.V(t, config.ResponseMIMEType).Equal("application/json")
			gt.V(t, config.ResponseSchema).NotNil()
			gt.V(t, *config.Temperature).Equal(float32(0.7))

			return textResponse(kyotoPlanJSON(t)), nil
		},
	}

	fixed := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	uc := planner.New(gemini, planner.WithClock(func() time.Time { return fixed }))

	itinerary, err := uc.Generate(ctx, kyotoParams())
	gt.NoError(t, err)
	gt.V(t, itinerary).NotNil()

	gt.NotEqual(t, string(itinerary.ID), "")
	gt.V(t, itinerary.Destination).Equal("Kyoto")
	gt.NotEqual(t, itinerary.Title, "")
	gt.V(t, itinerary.CreatedAt).Equal(fixed.UnixMilli())

	gt.A(t, itinerary.Days).Length(3)
	for i, day := range itinerary.Days {
		gt.V(t, day.DayNumber).Equal(i + 1)
	}
	gt.V(t, itinerary.Days[0].Date).Equal("2024-04-01")
	gt.V(t, itinerary.Days[2].Date).Equal("2024-04-03")

	gt.Number(t, len(itinerary.LocalEtiquette)).LessOrEqual(3)
	gt.V(t, itinerary.Days[0].Activities[0].Type).Equal(model.ActivityTypeTransit)
}

func TestGenerateAssignsDistinctIDs(t *testing.T) {
	ctx := context.Background()
	gemini := &mockGemini{
		generateFunc: func(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			return textResponse(kyotoPlanJSON(t)), nil
		},
	}
	uc := planner.New(gemini)

	first, err := uc.Generate(ctx, kyotoParams())
	gt.NoError(t, err)
	second, err := uc.Generate(ctx, kyotoParams())
	gt.NoError(t, err)

	gt.NotEqual(t, first.ID, second.ID)
}

func TestGenerateClampAdvisoryLists(t *testing.T) {
	ctx := context.Background()

	var plan map[string]any
	gt.NoError(t, json.Unmarshal([]byte(kyotoPlanJSON(t)), &plan))
	plan["localEtiquette"] = []string{"a", "b", "c", "d", "e"}
	plan["seasonalEvents"] = []string{"x", "y", "z"}
	raw, err := json.Marshal(plan)
	gt.NoError(t, err)

	gemini := &mockGemini{
		generateFunc: func(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			return textResponse(string(raw)), nil
		},
	}

	itinerary, err := planner.New(gemini).Generate(ctx, kyotoParams())
	gt.NoError(t, err)
	gt.A(t, itinerary.LocalEtiquette).Length(3)
	gt.A(t, itinerary.SeasonalEvents).Length(2)
}

func TestGenerateFailures(t *testing.T) {
	tests := []struct {
		name string
		mock *mockGemini
	}{
		{
			name: "upstream error",
			mock: &mockGemini{
				generateFunc: func(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
					return nil, errors.New("quota exceeded")
				},
			},
		},
		{
			name: "empty response body",
			mock: &mockGemini{
				generateFunc: func(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
					return textResponse(""), nil
				},
			},
		},
		{
			name: "no candidates",
			mock: &mockGemini{
				generateFunc: func(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
					return &genai.GenerateContentResponse{}, nil
				},
			},
		},
		{
			name: "malformed JSON",
			mock: &mockGemini{
				generateFunc: func(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
					return textResponse("{not json"), nil
				},
			},
		},
		{
			name: "no days",
			mock: &mockGemini{
				generateFunc: func(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
					return textResponse(`{"title":"t","summary":"s","days":[],"localEtiquette":[]}`), nil
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := planner.New(tt.mock)
			_, err := uc.Generate(context.Background(), kyotoParams())
			gt.Error(t, err)
			gt.True(t, errors.Is(err, planner.ErrGenerationFailed))
		})
	}
}

func TestGenerateRejectsInvalidParams(t *testing.T) {
	called := false
	gemini := &mockGemini{
		generateFunc: func(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			called = true
			return textResponse(kyotoPlanJSON(t)), nil
		},
	}

	params := kyotoParams()
	params.City = ""

	_, err := planner.New(gemini).Generate(context.Background(), params)
	gt.Error(t, err)
	gt.False(t, errors.Is(err, planner.ErrGenerationFailed))
	gt.False(t, called)
}
