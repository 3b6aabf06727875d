package cli

import (
	"fmt"
	"io"

	"github.com/m-mizutani/ecotravel/pkg/model"
)

func printItinerary(w io.Writer, itinerary *model.Itinerary) {
	fmt.Fprintf(w, "%s (%s)\n", itinerary.Title, itinerary.Destination)
	fmt.Fprintf(w, "ID: %s\n", itinerary.ID)
	if itinerary.Summary != "" {
		fmt.Fprintf(w, "%s\n", itinerary.Summary)
	}

	for _, day := range itinerary.Days {
		fmt.Fprintf(w, "\nDay %d: %s", day.DayNumber, day.Theme)
		if day.Date != "" {
			fmt.Fprintf(w, " (%s)", day.Date)
		}
		fmt.Fprintln(w)

		for i, act := range day.Activities {
			fmt.Fprintf(w, "  %d. [%s] %-8s %s", i+1, act.Time, act.Type, act.Title)
			if act.DurationHint != "" {
				fmt.Fprintf(w, " (%s)", act.DurationHint)
			}
			fmt.Fprintln(w)
			if act.Location != "" {
				fmt.Fprintf(w, "     at %s\n", act.Location)
			}
			fmt.Fprintf(w, "     %s\n", act.Description)
			if act.EcoTip != "" {
				fmt.Fprintf(w, "     eco tip: %s\n", act.EcoTip)
			}
		}
	}

	if len(itinerary.LocalEtiquette) > 0 {
		fmt.Fprintln(w, "\nLocal etiquette:")
		for _, note := range itinerary.LocalEtiquette {
			fmt.Fprintf(w, "  - %s\n", note)
		}
	}
	if len(itinerary.SeasonalEvents) > 0 {
		fmt.Fprintln(w, "\nSeasonal highlights:")
		for _, event := range itinerary.SeasonalEvents {
			fmt.Fprintf(w, "  - %s\n", event)
		}
	}
}
