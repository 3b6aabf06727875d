package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/ecotravel/pkg/model"
	"github.com/m-mizutani/ecotravel/pkg/usecase/store"
	"github.com/m-mizutani/ecotravel/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func deleteCommand() *cli.Command {
	var cfg config

	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a saved itinerary",
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
			if err := st.Delete(ctx, id); err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "Deleted: %s\n", id)
			return nil
		},
	}
}
