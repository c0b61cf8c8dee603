package cli

import (
	"fmt"
	"text/tabwriter"

	"flyaway/internal/catalog"
	"flyaway/internal/domain"
	"flyaway/internal/utils"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the embedded flights, add-ons and baggage tiers",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load()
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

		fmt.Fprintf(w, "Traveler\t%s <%s>, %d passengers\n\n", cat.Traveler.Name, cat.Traveler.Email, cat.Traveler.PassengerCount)

		fmt.Fprintln(w, "LEG\tFLIGHT\tROUTE\tDEPARTS\tPRICE")
		draft := cat.Draft(cat.Flights.RoundTrip)
		fmt.Fprintf(w, "outward\t%s %s\t%s-%s\t%s\t%s\n", draft.Outward.Airline, draft.Outward.FlightNumber,
			draft.Outward.DepartureAirport, draft.Outward.ArrivalAirport, draft.Outward.DepartureTime, utils.FormatBaht(draft.Outward.Price))
		if in := draft.Inward; in != nil {
			fmt.Fprintf(w, "inward\t%s %s\t%s-%s\t%s\t%s\n", in.Airline, in.FlightNumber,
				in.DepartureAirport, in.ArrivalAirport, in.DepartureTime, utils.FormatBaht(in.Price))
		}

		fmt.Fprintln(w, "\nADD-ON\tTITLE\tPRICE / PERSON")
		for _, a := range domain.AddOns {
			opt := cat.AddOn(a)
			fmt.Fprintf(w, "%s\t%s\t%s\n", a, opt.Title, utils.FormatBaht(opt.Price))
		}

		fmt.Fprintln(w, "\nLEG\tBAGGAGE\tPRICE")
		for _, leg := range []domain.Leg{domain.Outward, domain.Inward} {
			for _, o := range cat.BaggageOptions(leg) {
				fmt.Fprintf(w, "%s\t%s\t%s\n", leg, o.Label, utils.FormatBaht(o.Price))
			}
		}
		return w.Flush()
	},
}
