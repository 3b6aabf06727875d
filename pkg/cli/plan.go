package cli

import (
	"context"
	"time"

	"github.com/briandowns/spinner"
	"github.com/m-mizutani/ecotravel/pkg/model"
	"github.com/m-mizutani/ecotravel/pkg/usecase/planner"
	"github.com/m-mizutani/ecotravel/pkg/usecase/store"
	"github.com/m-mizutani/ecotravel/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func planCommand() *cli.Command {
	var (
		cfg      config
		params   model.SearchParams
		people   int64
		autoSave bool
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "from",
			Usage:       "Origin city",
			Required:    true,
			Destination: &params.OriginCity,
		},
		&cli.StringFlag{
			Name:        "to",
			Usage:       "Destination city",
			Required:    true,
			Destination: &params.City,
		},
		&cli.StringFlag{
			Name:        "start",
			Usage:       "Trip start date (YYYY-MM-DD)",
			Required:    true,
			Destination: &params.StartDate,
		},
		&cli.StringFlag{
			Name:        "end",
			Usage:       "Trip end date (YYYY-MM-DD)",
			Required:    true,
			Destination: &params.EndDate,
		},
		&cli.StringFlag{
			Name:  "pace",
			Usage: "Trip pace (Relaxed, Moderate, Fast-Paced)",
			Value: string(model.PaceModerate),
		},
		&cli.StringFlag{
			Name:  "mood",
			Usage: "Trip mood (Adventure, Culture & History, Culinary, Nature & Scenery, Family Friendly)",
			Value: string(model.MoodCulture),
		},
		&cli.StringFlag{
			Name:        "start-time",
			Usage:       "Daily activity start time",
			Value:       "09:00",
			Destination: &params.StartTime,
		},
		&cli.StringFlag{
			Name:        "end-time",
			Usage:       "Daily activity end time",
			Value:       "20:00",
			Destination: &params.EndTime,
		},
		&cli.IntFlag{
			Name:        "people",
			Usage:       "Number of travelers",
			Value:       1,
			Destination: &people,
		},
		&cli.StringFlag{
			Name:        "describe",
			Usage:       "Free-text notes for the planner",
			Destination: &params.Describe,
		},
		&cli.BoolFlag{
			Name:        "save",
			Usage:       "Save the generated itinerary to the local list",
			Destination: &autoSave,
		},
	}
	flags = append(flags, globalFlags(&cfg)...)
	flags = append(flags, llmFlags(&cfg)...)

	return &cli.Command{
		Name:  "plan",
		Usage: "Generate a new travel itinerary",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg.setupLogging()
			ctx = logging.With(ctx, logging.Default())

			params.Pace = model.Pace(c.String("pace"))
			params.Mood = model.Mood(c.String("mood"))
			params.PeopleCount = int(people)

			if err := params.Validate(); err != nil {
				return err
			}

			gemini, err := cfg.newGemini(ctx)
			if err != nil {
				return err
			}

			uc := planner.New(gemini)

			sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
			sp.Suffix = " Planning your trip to " + params.City + "..."
			sp.Start()
			itinerary, err := uc.Generate(ctx, params)
			sp.Stop()
			if err != nil {
				return err
			}

			printItinerary(c.Root().Writer, itinerary)

			if autoSave {
				repo, err := cfg.newRepository()
				if err != nil {
					return err
				}
				defer repo.Close()

				st := store.New(ctx, repo)
				if err := st.Save(ctx, *itinerary); err != nil {
					return err
				}
				logging.From(ctx).Info("itinerary saved", "id", itinerary.ID)
			}

			return nil
		},
	}
}
