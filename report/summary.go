package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/cvrp/instance"
	"github.com/katalvlaran/cvrp/route"
	"github.com/katalvlaran/cvrp/search"
)

// Summary is the outcome of solving one instance.
type Summary struct {
	RunID    uuid.UUID
	Started  time.Time
	File     string
	Instance string
	Strategy string

	Partitions int
	Routes     int

	ConstructCost float64
	FinalCost     float64

	ConstructElapsed time.Duration
	Elapsed          time.Duration

	Valid bool

	LoadMean   float64
	LoadStdDev float64

	System System
}

// NewSummary fills a Summary from a search result and the final routes.
// started is when work on the instance began; Elapsed runs up to now.
func NewSummary(file string, inst *instance.Instance, strategy string, res search.Result, final []route.Route, valid bool, started time.Time) Summary {
	mean, std := Utilisation(inst, final)
	return Summary{
		RunID:            uuid.New(),
		Started:          started,
		File:             file,
		Instance:         inst.Name(),
		Strategy:         strategy,
		Partitions:       len(res.Partitions),
		Routes:           len(final),
		ConstructCost:    res.Solution.Cost,
		FinalCost:        route.TotalCost(inst, final),
		ConstructElapsed: res.Elapsed,
		Elapsed:          time.Since(started),
		Valid:            valid,
		LoadMean:         mean,
		LoadStdDev:       std,
	}
}
