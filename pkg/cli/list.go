package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/m-mizutani/ecotravel/pkg/usecase/store"
	"github.com/m-mizutani/ecotravel/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func listCommand() *cli.Command {
	var cfg config

	return &cli.Command{
		Name:  "list",
		Usage: "List saved itineraries",
		Flags: globalFlags(&cfg),
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg.setupLogging()
			ctx = logging.With(ctx, logging.Default())

			repo, err := cfg.newRepository()
			if err != nil {
				return err
			}
			defer repo.Close()

			st := store.New(ctx, repo)
			saved := st.Saved()
			if len(saved) == 0 {
				fmt.Fprintln(c.Root().Writer, "No saved itineraries")
				return nil
			}

			for _, itinerary := range saved {
				created := time.UnixMilli(itinerary.CreatedAt).Format("2006-01-02")
				fmt.Fprintf(c.Root().Writer, "%s  %-24s %s (%d days, created %s)\n",
					itinerary.ID, itinerary.Title, itinerary.Destination, len(itinerary.Days), created)
			}
			return nil
		},
	}
}
