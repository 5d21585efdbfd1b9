package build

import (
	"github.com/chazu/botforge/pkg/notify"
	"github.com/chazu/botforge/pkg/robot"
)

// Factory is the per-variant entry point that produces fully constructed
// robots. Names are accepted as-is; empty or duplicate names are the
// caller's concern.
type Factory interface {
	Create(name string) *robot.Robot
}

// HumanoidFactory creates humanoid robots.
type HumanoidFactory struct {
	events *notify.Notifier
}

// NewHumanoidFactory returns a factory emitting events to the given notifier.
func NewHumanoidFactory(events *notify.Notifier) HumanoidFactory {
	return HumanoidFactory{events: events}
}

// Create builds a complete humanoid robot via a builder and director.
func (f HumanoidFactory) Create(name string) *robot.Robot {
	f.events.Logf("creating humanoid robot: %s", name)
	b := NewHumanoidBuilder(name, f.events)
	return NewDirector(b, f.events).Construct()
}

// HeavyFactory creates heavy-duty robots.
type HeavyFactory struct {
	events *notify.Notifier
}

// NewHeavyFactory returns a factory emitting events to the given notifier.
func NewHeavyFactory(events *notify.Notifier) HeavyFactory {
	return HeavyFactory{events: events}
}

// Create builds a complete heavy robot via a builder and director.
func (f HeavyFactory) Create(name string) *robot.Robot {
	f.events.Logf("creating heavy robot: %s", name)
	b := NewHeavyBuilder(name, f.events)
	return NewDirector(b, f.events).Construct()
}
