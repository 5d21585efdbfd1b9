package robot

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Kind enumerates the robot variants. A robot's kind never changes after
// construction.
type Kind int

const (
	KindHumanoid Kind = iota
	KindHeavy
)

func (k Kind) String() string {
	switch k {
	case KindHumanoid:
		return "humanoid"
	case KindHeavy:
		return "heavy"
	default:
		return "unknown"
	}
}

// Attribute keys written during construction (baseline part labels).
const (
	KeyHead  = "head"
	KeyTorso = "torso"
	KeyLimbs = "limbs"
)

// Attribute keys written by post-clone editing (styling choices). Values are
// free-form strings; the renderer normalizes and defaults them at read time,
// so nothing is validated on write.
const (
	KeyHeadStyle  = "head_style"
	KeyTorsoStyle = "torso_style"
	KeyArmStyle   = "arm_style"
	KeyLegs       = "legs"
	KeyAntenna    = "antenna"
	KeyEyeColor   = "eye_color"
)

// CloneSuffix is appended to a robot's name when it is cloned.
const CloneSuffix = "_clone"

// Attributes maps attribute names to string values.
type Attributes map[string]string

// Clone returns an independent copy. Mutating the copy never affects the
// original, and vice versa.
func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Robot is a constructed entity. Name and Attributes are mutable; ID and
// Kind are fixed for the robot's lifetime.
type Robot struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Kind       Kind       `json:"kind"`
	Attributes Attributes `json:"attributes"`
}

// New creates an empty robot of the given kind. Builders populate the
// attribute map afterwards.
func New(kind Kind, name string) *Robot {
	return &Robot{
		ID:         uuid.NewString(),
		Name:       name,
		Kind:       kind,
		Attributes: make(Attributes),
	}
}

// Clone returns a deep copy with a derived name and a fresh ID. The copy
// shares no storage with the original.
func (r *Robot) Clone() *Robot {
	return &Robot{
		ID:         uuid.NewString(),
		Name:       r.Name + CloneSuffix,
		Kind:       r.Kind,
		Attributes: r.Attributes.Clone(),
	}
}

// Summary returns a one-line description for list display: the name followed
// by the full attribute map in sorted key order.
func (r *Robot) Summary() string {
	keys := make([]string, 0, len(r.Attributes))
	for k := range r.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "%s: {", r.Name)
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %s", k, r.Attributes[k])
	}
	b.WriteString("}")
	return b.String()
}

func (r *Robot) String() string {
	return r.Summary()
}
