package cli

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/ecotravel/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

type Error struct {
	Code    int
	Message string
}

func Run(ctx context.Context, argv []string) *Error {
	// Local development convenience; missing .env is fine
	_ = godotenv.Load()

	cmd := &cli.Command{
		Name:  "ecotravel",
		Usage: "Sustainable travel itinerary planner",
		Commands: []*cli.Command{
			serveCommand(),
			planCommand(),
			listCommand(),
			showCommand(),
			deleteCommand(),
			editCommand(),
		},
	}

	if err := cmd.Run(ctx, argv); err != nil {
		logging.Default().Error("command failed", "err", err)
		return &Error{
			Code:    1,
			Message: err.Error(),
		}
	}

	return nil
}
