package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/cvrp/route"
)

// WriteTable prints one aligned row per summary.
func WriteTable(w io.Writer, summaries ...Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tSTRATEGY\tPARTS\tROUTES\tCONSTRUCT\tFINAL\tTIME(s)\tVALID")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%.2f\t%.2f\t%.3f\t%t\n",
			s.File, s.Strategy, s.Partitions, s.Routes,
			s.ConstructCost, s.FinalCost, s.Elapsed.Seconds(), s.Valid)
	}
	return tw.Flush()
}

// WriteRoutes prints routes in the CVRPLIB solution format: one
// "Route #i:" line per route listing node indices, then "Cost".
func WriteRoutes(w io.Writer, sol route.Solution) error {
	for i, r := range sol.Routes {
		if _, err := fmt.Fprintf(w, "Route #%d:", i+1); err != nil {
			return err
		}
		for _, v := range r {
			if _, err := fmt.Fprintf(w, " %d", v); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Cost %.2f\n", sol.Cost)
	return err
}
