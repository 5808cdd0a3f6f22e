package component

// Dash tracks a timed horizontal speed boost. A zero Duration makes the
// boost permanent once triggered.
type Dash struct {
	Active    bool
	Remaining float64
	Duration  float64
	// BaseSpeed is restored when the boost runs out.
	BaseSpeed float64
}

var DashComponent = NewComponent[Dash]()
