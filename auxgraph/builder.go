package auxgraph

import "fmt"

// New returns the builder for a strategy name. maxDegree and wedge apply
// to StrategyProximity, restarts to StrategyMSTRestart.
func New(strategy string, maxDegree int, wedge float64, restarts int) (Builder, error) {
	var b Builder
	switch strategy {
	case StrategyProximity:
		b = Proximity{MaxDegree: maxDegree, WedgeDeg: wedge}
	case StrategyMST:
		b = MST{}
	case StrategyMSTRestart:
		b = MSTRestart{Rounds: restarts}
	default:
		return nil, fmt.Errorf("%q: %w", strategy, ErrUnknownStrategy)
	}
	if v, ok := b.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return b, nil
}
