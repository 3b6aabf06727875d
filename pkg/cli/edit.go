package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/m-mizutani/ecotravel/pkg/model"
	"github.com/m-mizutani/ecotravel/pkg/usecase/editor"
	"github.com/m-mizutani/ecotravel/pkg/usecase/store"
	"github.com/m-mizutani/ecotravel/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func editCommand() *cli.Command {
	var cfg config

	return &cli.Command{
		Name:      "edit",
		Usage:     "Interactively reorder or remove activities of a saved itinerary",
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

			var found bool
			for _, itinerary := range st.Saved() {
				if itinerary.ID == id {
					st.SetCurrent(&itinerary)
					found = true
					break
				}
			}
			if !found {
				return goerr.New("itinerary not found", goerr.V("id", id))
			}

			rl, err := readline.New("edit> ")
			if err != nil {
				return goerr.Wrap(err, "failed to initialize readline")
			}
			defer rl.Close()

			out := c.Root().Writer
			printItinerary(out, st.Current())
			fmt.Fprintln(out, "\nCommands: show | move <day> <activity> earlier|later | delete <day> <activity> | save | quit")

			ed := editor.New(st)
			for {
				line, err := rl.Readline()
				if err == readline.ErrInterrupt || err == io.EOF {
					return nil
				}
				if err != nil {
					return goerr.Wrap(err, "failed to read command")
				}

				if done, err := runEditLine(ctx, out, st, ed, id, strings.Fields(strings.TrimSpace(line))); err != nil {
					fmt.Fprintf(out, "error: %s\n", err)
				} else if done {
					return nil
				}
			}
		},
	}
}

// runEditLine executes one editor command line and reports whether the
// session should end.
func runEditLine(ctx context.Context, out io.Writer, st *store.Store, ed *editor.UseCase, id model.ItineraryID, fields []string) (bool, error) {
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case "show":
		printItinerary(out, st.Current())

	case "move":
		if len(fields) != 4 {
			return false, goerr.New("usage: move <day> <activity> earlier|later")
		}
		day, act, err := parseIndexes(fields[1], fields[2])
		if err != nil {
			return false, err
		}
		direction := editor.Direction(fields[3])
		if err := direction.Validate(); err != nil {
			return false, err
		}
		ed.Move(day, act, direction)
		printItinerary(out, st.Current())

	case "delete":
		if len(fields) != 3 {
			return false, goerr.New("usage: delete <day> <activity>")
		}
		day, act, err := parseIndexes(fields[1], fields[2])
		if err != nil {
			return false, err
		}
		ed.Delete(day, act)
		printItinerary(out, st.Current())

	case "save":
		// Replace the stored entry with the edited document
		if err := st.Delete(ctx, id); err != nil {
			return false, err
		}
		if err := st.Save(ctx, *st.Current()); err != nil {
			return false, err
		}
		fmt.Fprintln(out, "Saved")
		return true, nil

	case "quit", "exit":
		return true, nil

	default:
		return false, goerr.New("unknown command", goerr.V("command", fields[0]))
	}

	return false, nil
}

// parseIndexes converts the 1-based day/activity numbers shown to the user
// into 0-based indexes.
func parseIndexes(dayArg, actArg string) (int, int, error) {
	day, err := strconv.Atoi(dayArg)
	if err != nil {
		return 0, 0, goerr.Wrap(err, "invalid day number")
	}
	act, err := strconv.Atoi(actArg)
	if err != nil {
		return 0, 0, goerr.Wrap(err, "invalid activity number")
	}
	return day - 1, act - 1, nil
}
