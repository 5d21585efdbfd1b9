package main

import (
	"encoding/base64"
	"io"
	"strings"
	"testing"

	"github.com/chazu/botforge/pkg/notify"
	"github.com/chazu/botforge/pkg/render"
)

// newTestApp builds the backend without the Wails runtime, the same way the
// bindings use it.
func newTestApp() *App {
	return NewApp(notify.New(io.Discard))
}

// TestE2ECreateHumanoid exercises the full pipeline: factory → builder →
// director → collection → render. This is the same path the CreateRobot and
// RenderRobot bindings take.
func TestE2ECreateHumanoid(t *testing.T) {
	app := newTestApp()

	view := app.CreateRobot("humanoid", "Ada")
	if view.Name != "Ada" {
		t.Errorf("name = %q, want %q", view.Name, "Ada")
	}
	if view.Kind != "humanoid" {
		t.Errorf("kind = %q, want %q", view.Kind, "humanoid")
	}
	want := "Ada: {head: Smart Face, limbs: Agile Limbs, torso: Sleek Body}"
	if view.Summary != want {
		t.Errorf("summary = %q, want %q", view.Summary, want)
	}

	result := app.RenderRobot(view.ID)
	if len(result.Primitives) == 0 {
		t.Fatal("render produced no primitives")
	}
	// Rounded default head first, name label last.
	if result.Primitives[0].Op != render.OpEllipse {
		t.Errorf("first primitive op = %q, want rounded head ellipse", result.Primitives[0].Op)
	}
	last := result.Primitives[len(result.Primitives)-1]
	if last.Op != render.OpText || last.Text != "Ada" {
		t.Errorf("last primitive = %+v, want name label %q", last, "Ada")
	}
}

func TestE2ECloneEditRender(t *testing.T) {
	app := newTestApp()

	ada := app.CreateRobot("humanoid", "Ada")
	before := app.RenderRobot(ada.ID)

	clone := app.CloneRobot()
	if clone == nil {
		t.Fatal("CloneRobot returned nil with a robot present")
	}
	if clone.Name != "Ada_clone" {
		t.Errorf("clone name = %q, want %q", clone.Name, "Ada_clone")
	}

	app.UpdateRobot(clone.ID, "", map[string]string{
		"antenna": "Large",
		"legs":    "Wide",
	})

	hasAntenna := func(r RenderResult) bool {
		for _, p := range r.Primitives {
			if p.Op == render.OpLine && p.X0 == 200 && p.Y1 == 15 {
				return true
			}
		}
		return false
	}

	edited := app.RenderRobot(clone.ID)
	if !hasAntenna(edited) {
		t.Error("edited clone should render the antenna")
	}

	// The original robot is untouched by the clone's edit.
	after := app.RenderRobot(ada.ID)
	if hasAntenna(after) {
		t.Error("original render gained an antenna from the clone's edit")
	}
	if len(after.Primitives) != len(before.Primitives) {
		t.Errorf("original primitive count changed from %d to %d",
			len(before.Primitives), len(after.Primitives))
	}
}

func TestDefaultNames(t *testing.T) {
	app := newTestApp()

	first := app.CreateRobot("humanoid", "")
	if first.Name != "Humanoid-1" {
		t.Errorf("first default name = %q, want %q", first.Name, "Humanoid-1")
	}
	second := app.CreateRobot("heavy", "  ")
	if second.Name != "Heavy-2" {
		t.Errorf("second default name = %q, want %q", second.Name, "Heavy-2")
	}
}

func TestEditOptionsPerVariant(t *testing.T) {
	app := newTestApp()

	h := app.CreateRobot("humanoid", "A")
	hc := app.EditOptions(h.ID)
	if strings.Join(hc.Head, ",") != "Oval,Square" {
		t.Errorf("humanoid head options = %v", hc.Head)
	}
	if len(hc.Eye) == 0 {
		t.Error("humanoid should offer eye color options")
	}

	v := app.CreateRobot("heavy", "B")
	vc := app.EditOptions(v.ID)
	if strings.Join(vc.Head, ",") != "Rectangle,Dome" {
		t.Errorf("heavy head options = %v", vc.Head)
	}
	if vc.Eye != nil {
		t.Error("heavy should offer no eye color options")
	}
}

func TestSnapshotReturnsPNG(t *testing.T) {
	app := newTestApp()
	view := app.CreateRobot("heavy", "Tank")

	data, err := app.Snapshot(view.ID)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		t.Fatalf("snapshot is not valid base64: %v", err)
	}
	if len(raw) < 8 || string(raw[1:4]) != "PNG" {
		t.Error("snapshot does not start with a PNG signature")
	}
}
