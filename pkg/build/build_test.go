package build

import (
	"io"
	"testing"

	"github.com/chazu/botforge/pkg/notify"
	"github.com/chazu/botforge/pkg/robot"
)

func testNotifier() *notify.Notifier {
	return notify.New(io.Discard)
}

func TestHumanoidFactoryCreate(t *testing.T) {
	f := NewHumanoidFactory(testNotifier())
	r := f.Create("Ada")

	if r.Name != "Ada" {
		t.Errorf("name = %q, want %q", r.Name, "Ada")
	}
	if r.Kind != robot.KindHumanoid {
		t.Errorf("kind = %v, want %v", r.Kind, robot.KindHumanoid)
	}

	want := map[string]string{
		robot.KeyHead:  "Smart Face",
		robot.KeyTorso: "Sleek Body",
		robot.KeyLimbs: "Agile Limbs",
	}
	for k, v := range want {
		if got := r.Attributes[k]; got != v {
			t.Errorf("attributes[%q] = %q, want %q", k, got, v)
		}
	}
	if len(r.Attributes) != 3 {
		t.Errorf("attribute count = %d, want 3", len(r.Attributes))
	}
}

func TestHeavyFactoryCreate(t *testing.T) {
	f := NewHeavyFactory(testNotifier())
	r := f.Create("Tank")

	if r.Kind != robot.KindHeavy {
		t.Errorf("kind = %v, want %v", r.Kind, robot.KindHeavy)
	}

	want := map[string]string{
		robot.KeyHead:  "Armored Head",
		robot.KeyTorso: "Reinforced Frame",
		robot.KeyLimbs: "Robust Limbs",
	}
	for k, v := range want {
		if got := r.Attributes[k]; got != v {
			t.Errorf("attributes[%q] = %q, want %q", k, got, v)
		}
	}
}

// recordingBuilder captures the order of construction steps.
type recordingBuilder struct {
	steps []string
	r     *robot.Robot
}

func (b *recordingBuilder) BuildHead() {
	b.steps = append(b.steps, "head")
	b.r.Attributes[robot.KeyHead] = "h"
}

func (b *recordingBuilder) BuildTorso() {
	b.steps = append(b.steps, "torso")
	b.r.Attributes[robot.KeyTorso] = "t"
}

func (b *recordingBuilder) BuildLimbs() {
	b.steps = append(b.steps, "limbs")
	b.r.Attributes[robot.KeyLimbs] = "l"
}

func (b *recordingBuilder) Robot() *robot.Robot { return b.r }

func TestDirectorStepOrder(t *testing.T) {
	b := &recordingBuilder{r: robot.New(robot.KindHumanoid, "x")}
	r := NewDirector(b, testNotifier()).Construct()

	wantSteps := []string{"head", "torso", "limbs"}
	if len(b.steps) != len(wantSteps) {
		t.Fatalf("director ran %d steps, want %d", len(b.steps), len(wantSteps))
	}
	for i, s := range wantSteps {
		if b.steps[i] != s {
			t.Errorf("step[%d] = %q, want %q", i, b.steps[i], s)
		}
	}

	// Exactly the three baseline keys, regardless of the builder supplied.
	if len(r.Attributes) != 3 {
		t.Errorf("attribute count = %d, want 3", len(r.Attributes))
	}
	for _, k := range []string{robot.KeyHead, robot.KeyTorso, robot.KeyLimbs} {
		if _, ok := r.Attributes[k]; !ok {
			t.Errorf("missing attribute %q after construction", k)
		}
	}
}

func TestBuildStepsIdempotent(t *testing.T) {
	b := NewHumanoidBuilder("Ada", testNotifier())
	b.BuildHead()
	b.BuildHead()

	r := b.Robot()
	if got := r.Attributes[robot.KeyHead]; got != "Smart Face" {
		t.Errorf("head = %q after repeated build, want %q", got, "Smart Face")
	}
	if len(r.Attributes) != 1 {
		t.Errorf("attribute count = %d, want 1", len(r.Attributes))
	}
}

func TestRobotAvailableBeforeCompletion(t *testing.T) {
	b := NewHeavyBuilder("Tank", testNotifier())
	r := b.Robot()
	if r == nil {
		t.Fatal("Robot() should be callable before any build step")
	}
	if len(r.Attributes) != 0 {
		t.Errorf("attribute count = %d before any step, want 0", len(r.Attributes))
	}
}
