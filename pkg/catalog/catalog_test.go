package catalog

import "testing"

func TestHumanoidLabels(t *testing.T) {
	c := Humanoid()
	if got := c.Head(); got != "Smart Face" {
		t.Errorf("head = %q, want %q", got, "Smart Face")
	}
	if got := c.Torso(); got != "Sleek Body" {
		t.Errorf("torso = %q, want %q", got, "Sleek Body")
	}
	if got := c.Limbs(); got != "Agile Limbs" {
		t.Errorf("limbs = %q, want %q", got, "Agile Limbs")
	}
}

func TestHeavyLabels(t *testing.T) {
	c := Heavy()
	if got := c.Head(); got != "Armored Head" {
		t.Errorf("head = %q, want %q", got, "Armored Head")
	}
	if got := c.Torso(); got != "Reinforced Frame" {
		t.Errorf("torso = %q, want %q", got, "Reinforced Frame")
	}
	if got := c.Limbs(); got != "Robust Limbs" {
		t.Errorf("limbs = %q, want %q", got, "Robust Limbs")
	}
}
