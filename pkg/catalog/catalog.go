// Package catalog provides the per-variant default part labels used during
// the baseline build. Catalogs are stateless; adding a variant means adding
// one new implementation, never touching existing ones.
package catalog

// PartCatalog supplies the default cosmetic labels for one robot variant.
type PartCatalog interface {
	Head() string
	Torso() string
	Limbs() string
}

type humanoid struct{}

// Humanoid returns the part catalog for humanoid robots.
func Humanoid() PartCatalog { return humanoid{} }

func (humanoid) Head() string  { return "Smart Face" }
func (humanoid) Torso() string { return "Sleek Body" }
func (humanoid) Limbs() string { return "Agile Limbs" }

type heavy struct{}

// Heavy returns the part catalog for heavy-duty robots.
func Heavy() PartCatalog { return heavy{} }

func (heavy) Head() string  { return "Armored Head" }
func (heavy) Torso() string { return "Reinforced Frame" }
func (heavy) Limbs() string { return "Robust Limbs" }
