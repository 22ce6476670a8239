// Command cvrp solves capacitated vehicle routing instances with the
// sweep-partitioned randomized construction engine.
//
//	cvrp solve [flags] FILE...
//	cvrp history --ledger runs.db
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "cvrp:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "cvrp"
	app.Usage = "randomized multi-start construction for the capacitated VRP"
	app.Version = "0.1.0"
	app.Commands = []cli.Command{
		{
			Name:      "solve",
			Usage:     "solve one or more TSPLIB CVRP instances",
			ArgsUsage: "FILE...",
			Flags:     solveFlags(),
			Action:    solveAction,
		},
		{
			Name:  "history",
			Usage: "list recent runs from a ledger",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "ledger", Usage: "SQLite ledger path", Value: "cvrp-runs.db"},
				cli.IntFlag{Name: "limit", Usage: "number of runs to show", Value: 20},
			},
			Action: historyAction,
		},
	}
	return app
}
