package build

import (
	"github.com/chazu/botforge/pkg/notify"
	"github.com/chazu/botforge/pkg/robot"
)

// Director runs the construction sequence over any builder. The step order
// (head, torso, limbs) is defined here and only here; it is the same for
// every variant.
type Director struct {
	b Builder
}

// NewDirector wraps a builder for construction.
func NewDirector(b Builder, events *notify.Notifier) Director {
	events.Logf("director initialized")
	return Director{b: b}
}

// Construct executes each build step exactly once, in order, and returns the
// finished robot.
func (d Director) Construct() *robot.Robot {
	d.b.BuildHead()
	d.b.BuildTorso()
	d.b.BuildLimbs()
	return d.b.Robot()
}
