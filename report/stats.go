package report

import (
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/cvrp/instance"
	"github.com/katalvlaran/cvrp/route"
)

// Utilisation returns the mean and sample standard deviation of
// load/capacity over routes. Fewer than two routes give a zero deviation.
func Utilisation(inst *instance.Instance, routes []route.Route) (mean, stddev float64) {
	if len(routes) == 0 {
		return 0, 0
	}
	fill := make([]float64, len(routes))
	for i, r := range routes {
		fill[i] = route.Load(inst, r) / inst.Capacity()
	}
	if len(fill) == 1 {
		return fill[0], 0
	}
	return stat.MeanStdDev(fill, nil)
}
