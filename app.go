package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image/png"
	"strings"

	"github.com/samber/lo"
	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/chazu/botforge/pkg/build"
	"github.com/chazu/botforge/pkg/notify"
	"github.com/chazu/botforge/pkg/render"
	"github.com/chazu/botforge/pkg/robot"
)

// Canvas dimensions shared by the frontend surface and the PNG snapshot.
const (
	canvasWidth  = 400
	canvasHeight = 400
)

// App is the Wails backend. It owns the ordered robot collection and exposes
// create/clone/edit/list/render methods to the frontend via bindings. Wails
// dispatches bindings one at a time, so no locking is needed.
type App struct {
	ctx    context.Context
	events *notify.Notifier

	humanoid build.Factory
	heavy    build.Factory

	robots []*robot.Robot
	last   *robot.Robot
}

// RobotView is the JSON-serializable list entry sent to the frontend.
type RobotView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Summary string `json:"summary"`
}

// RenderResult carries one robot's primitive sequence to the frontend.
type RenderResult struct {
	Primitives []render.Primitive `json:"primitives"`
}

// EditChoices lists the enumerated attribute options offered by the edit
// dialog for one robot's variant.
type EditChoices struct {
	Antenna []string `json:"antenna"`
	Legs    []string `json:"legs"`
	Head    []string `json:"head"`
	Torso   []string `json:"torso"`
	Arm     []string `json:"arm"`
	Eye     []string `json:"eye,omitempty"`
}

// NewApp creates the backend with both robot factories wired to the notifier.
func NewApp(events *notify.Notifier) *App {
	return &App{
		events:   events,
		humanoid: build.NewHumanoidFactory(events),
		heavy:    build.NewHeavyFactory(events),
	}
}

// startup is called by Wails on app startup. It binds the notifier sink to a
// runtime event so log lines reach the frontend log panel.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	a.events.Bind(func(line string) {
		runtime.EventsEmit(a.ctx, "log", line)
	})
	a.events.Logf("application started")
}

// CreateRobot constructs a robot of the requested kind ("humanoid" or
// "heavy") and appends it to the collection. An empty name gets a generated
// default of the form <Variant>-<count+1>.
func (a *App) CreateRobot(kind, name string) RobotView {
	var factory build.Factory
	var variant string
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "heavy":
		factory, variant = a.heavy, "Heavy"
	default:
		factory, variant = a.humanoid, "Humanoid"
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("%s-%d", variant, len(a.robots)+1)
	}

	r := factory.Create(name)
	a.robots = append(a.robots, r)
	a.last = r
	a.events.Logf("created %s robot: %s", strings.ToLower(variant), r.Summary())
	return viewOf(r)
}

// CloneRobot deep-copies the most recent robot. With no robot to clone the
// call is a logged no-op and returns nil.
func (a *App) CloneRobot() *RobotView {
	if a.last == nil {
		a.events.Logf("no robot to clone")
		return nil
	}
	c := a.last.Clone()
	a.robots = append(a.robots, c)
	a.last = c
	a.events.Logf("cloned robot: %s", c.Summary())
	v := viewOf(c)
	return &v
}

// UpdateRobot applies the edit dialog's selections. Attribute values are
// stored verbatim; the renderer defaults anything it does not recognize. A
// non-empty name renames the robot.
func (a *App) UpdateRobot(id, name string, attrs map[string]string) *RobotView {
	r := a.find(id)
	if r == nil {
		a.events.Logf("no robot with id %s", id)
		return nil
	}
	if n := strings.TrimSpace(name); n != "" {
		r.Name = n
	}
	for k, v := range attrs {
		r.Attributes[k] = v
	}
	a.events.Logf("modified robot: %s", r.Summary())
	v := viewOf(r)
	return &v
}

// Robots returns the collection in creation order.
func (a *App) Robots() []RobotView {
	return lo.Map(a.robots, func(r *robot.Robot, _ int) RobotView {
		return viewOf(r)
	})
}

// RenderRobot returns the primitive sequence for one robot. An unknown id
// yields an empty sequence and a logged event.
func (a *App) RenderRobot(id string) RenderResult {
	r := a.find(id)
	if r == nil {
		a.events.Logf("no robot with id %s", id)
		return RenderResult{Primitives: []render.Primitive{}}
	}
	return RenderResult{Primitives: render.Render(r.Kind, r.Attributes, r.Name)}
}

// Snapshot rasterizes one robot at canvas size and returns the PNG as a
// base64 string for the frontend's save-picture action.
func (a *App) Snapshot(id string) (string, error) {
	r := a.find(id)
	if r == nil {
		return "", fmt.Errorf("no robot with id %q", id)
	}
	img := render.Rasterize(render.Render(r.Kind, r.Attributes, r.Name), canvasWidth, canvasHeight)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// EditOptions returns the enumerated choices the edit dialog offers for one
// robot's variant.
func (a *App) EditOptions(id string) EditChoices {
	r := a.find(id)
	if r == nil {
		a.events.Logf("no robot with id %s", id)
		return EditChoices{}
	}
	choices := EditChoices{
		Antenna: []string{"None", "Small", "Large"},
		Legs:    []string{"Standard", "Wide"},
	}
	switch r.Kind {
	case robot.KindHeavy:
		choices.Head = []string{"Rectangle", "Dome"}
		choices.Torso = []string{"Standard", "Armored"}
		choices.Arm = []string{"Standard", "Robotic"}
	default:
		choices.Head = []string{"Oval", "Square"}
		choices.Torso = []string{"Standard", "Muscular"}
		choices.Arm = []string{"Standard", "Hydraulic"}
		choices.Eye = []string{"Black", "Blue", "Green", "Brown", "Hazel"}
	}
	return choices
}

func (a *App) find(id string) *robot.Robot {
	for _, r := range a.robots {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func viewOf(r *robot.Robot) RobotView {
	return RobotView{
		ID:      r.ID,
		Name:    r.Name,
		Kind:    r.Kind.String(),
		Summary: r.Summary(),
	}
}
