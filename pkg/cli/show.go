package cli

import (
	"context"

	"github.com/m-mizutani/ecotravel/pkg/model"
	"github.com/m-mizutani/ecotravel/pkg/usecase/store"
	"github.com/m-mizutani/ecotravel/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func showCommand() *cli.Command {
	var cfg config

	return &cli.Command{
		Name:      "show",
		Usage:     "Show a saved itinerary",
		ArgsUsage: "<itinerary-id>",
		Flags:     globalFlags(&cfg),
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg.setupLogging()
			ctx = logging.With(ctx, logging.Default())

			id := model.ItineraryID(c.Args().First())
			if id == "" {
				return goerr.New("itinerary id is required")
			}

			repo, err := cfg.newRepository()
			if err != nil {
				return err
			}
			defer repo.Close()

			st := store.New(ctx, repo)
			for _, itinerary := range st.Saved() {
				if itinerary.ID == id {
					printItinerary(c.Root().Writer, &itinerary)
					return nil
				}
			}

			return goerr.New("itinerary not found", goerr.V("id", id))
		},
	}
}
