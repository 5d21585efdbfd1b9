// Package build implements the stepwise construction pipeline: per-variant
// builders populate a robot's baseline attributes from its part catalog, a
// director sequences the steps, and factories tie the two together.
package build

import (
	"github.com/chazu/botforge/pkg/catalog"
	"github.com/chazu/botforge/pkg/notify"
	"github.com/chazu/botforge/pkg/robot"
)

// Builder incrementally populates one robot's attribute map. Each step
// overwrites its own key, so repeating a step is harmless. Robot may be
// called at any point; builders enforce no completeness check.
type Builder interface {
	BuildHead()
	BuildTorso()
	BuildLimbs()
	Robot() *robot.Robot
}

// HumanoidBuilder builds humanoid robots from the humanoid part catalog.
type HumanoidBuilder struct {
	r      *robot.Robot
	parts  catalog.PartCatalog
	events *notify.Notifier
}

// NewHumanoidBuilder starts construction of a humanoid robot with the
// given name.
func NewHumanoidBuilder(name string, events *notify.Notifier) *HumanoidBuilder {
	events.Logf("humanoid builder initialized")
	return &HumanoidBuilder{
		r:      robot.New(robot.KindHumanoid, name),
		parts:  catalog.Humanoid(),
		events: events,
	}
}

func (b *HumanoidBuilder) BuildHead() {
	b.r.Attributes[robot.KeyHead] = b.parts.Head()
	b.events.Logf("built humanoid head")
}

func (b *HumanoidBuilder) BuildTorso() {
	b.r.Attributes[robot.KeyTorso] = b.parts.Torso()
	b.events.Logf("built humanoid torso")
}

func (b *HumanoidBuilder) BuildLimbs() {
	b.r.Attributes[robot.KeyLimbs] = b.parts.Limbs()
	b.events.Logf("built humanoid limbs")
}

// Robot returns the robot built so far.
func (b *HumanoidBuilder) Robot() *robot.Robot { return b.r }

// HeavyBuilder builds heavy-duty robots from the heavy part catalog.
type HeavyBuilder struct {
	r      *robot.Robot
	parts  catalog.PartCatalog
	events *notify.Notifier
}

// NewHeavyBuilder starts construction of a heavy robot with the given name.
func NewHeavyBuilder(name string, events *notify.Notifier) *HeavyBuilder {
	events.Logf("heavy builder initialized")
	return &HeavyBuilder{
		r:      robot.New(robot.KindHeavy, name),
		parts:  catalog.Heavy(),
		events: events,
	}
}

func (b *HeavyBuilder) BuildHead() {
	b.r.Attributes[robot.KeyHead] = b.parts.Head()
	b.events.Logf("built heavy robot head")
}

func (b *HeavyBuilder) BuildTorso() {
	b.r.Attributes[robot.KeyTorso] = b.parts.Torso()
	b.events.Logf("built heavy robot torso")
}

func (b *HeavyBuilder) BuildLimbs() {
	b.r.Attributes[robot.KeyLimbs] = b.parts.Limbs()
	b.events.Logf("built heavy robot limbs")
}

// Robot returns the robot built so far.
func (b *HeavyBuilder) Robot() *robot.Robot { return b.r }
