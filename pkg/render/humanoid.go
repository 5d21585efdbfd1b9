package render

import "github.com/chazu/botforge/pkg/robot"

// humanoidRegions is the humanoid pipeline, back to front: head, eyes,
// mouth, torso, arms, legs, antenna, name label.
var humanoidRegions = []regionFunc{
	humanoidHead,
	humanoidEyes,
	humanoidMouth,
	humanoidTorso,
	humanoidArms,
	humanoidLegs,
	antennaRegion,
	humanoidName,
}

// humanoidHead draws a boxed head with a dashed seam for "square", otherwise
// a rounded head with a highlight arc.
func humanoidHead(t Theme, attrs robot.Attributes, _ string) []Primitive {
	if styleOf(attrs, robot.KeyHeadStyle, "oval") == "square" {
		return []Primitive{
			rect(170, 40, 230, 100, t.Humanoid.Skin, "black", 2),
			dashedLine(230, 40, 230, 100, "gray", 2, []float64{2, 2}),
		}
	}
	return []Primitive{
		ellipse(170, 40, 230, 100, t.Humanoid.Skin, "black", 2),
		arc(175, 45, 225, 95, 30, 120, "white", 1),
	}
}

// humanoidEyes draws white sockets with an iris in the chosen eye color.
func humanoidEyes(_ Theme, attrs robot.Attributes, _ string) []Primitive {
	iris := colorOf(attrs, robot.KeyEyeColor, "black")
	return []Primitive{
		ellipse(185, 60, 195, 70, "white", "black", 1),
		ellipse(188, 63, 192, 67, iris, iris, 1),
		ellipse(205, 60, 215, 70, "white", "black", 1),
		ellipse(208, 63, 212, 67, iris, iris, 1),
	}
}

// humanoidMouth draws a slight smile.
func humanoidMouth(t Theme, _ robot.Attributes, _ string) []Primitive {
	return []Primitive{
		chord(180, 70, 220, 90, 200, 140, t.Humanoid.Mouth, "black", 1),
	}
}

func humanoidTorso(t Theme, attrs robot.Attributes, _ string) []Primitive {
	if styleOf(attrs, robot.KeyTorsoStyle, "standard") == "muscular" {
		return []Primitive{
			rect(175, 100, 215, 170, t.Humanoid.TorsoMuscular, "black", 4),
			line(175, 135, 215, 135, t.Humanoid.Brace, 2),
			line(195, 100, 195, 170, t.Humanoid.Brace, 2),
		}
	}
	return []Primitive{
		rect(185, 100, 215, 170, t.Humanoid.Torso, "black", 2),
	}
}

func humanoidArms(t Theme, attrs robot.Attributes, _ string) []Primitive {
	if styleOf(attrs, robot.KeyArmStyle, "standard") == "hydraulic" {
		return []Primitive{
			line(185, 110, 150, 140, t.Humanoid.Limb, 5),
			ellipse(145, 135, 155, 145, t.Humanoid.Joint, "black", 1),
			line(215, 110, 250, 140, t.Humanoid.Limb, 5),
			ellipse(245, 135, 255, 145, t.Humanoid.Joint, "black", 1),
		}
	}
	return []Primitive{
		line(185, 110, 150, 140, t.Humanoid.Limb, 3),
		line(215, 110, 250, 140, t.Humanoid.Limb, 3),
		ellipse(145, 135, 155, 145, t.Humanoid.Limb, t.Humanoid.Limb, 1),
		ellipse(245, 135, 255, 145, t.Humanoid.Limb, t.Humanoid.Limb, 1),
	}
}

func humanoidLegs(t Theme, attrs robot.Attributes, _ string) []Primitive {
	if styleOf(attrs, robot.KeyLegs, "standard") == "wide" {
		return []Primitive{
			rect(180, 170, 200, 220, t.Humanoid.Limb, t.Humanoid.Limb, 1),
			rect(200, 170, 220, 220, t.Humanoid.Limb, t.Humanoid.Limb, 1),
			ellipse(190, 215, 200, 225, t.Humanoid.Joint, "black", 1),
			ellipse(210, 215, 220, 225, t.Humanoid.Joint, "black", 1),
		}
	}
	return []Primitive{
		line(190, 170, 190, 220, t.Humanoid.Limb, 3),
		line(210, 170, 210, 220, t.Humanoid.Limb, 3),
		ellipse(185, 215, 195, 225, t.Humanoid.Limb, t.Humanoid.Limb, 1),
		ellipse(205, 215, 215, 225, t.Humanoid.Limb, t.Humanoid.Limb, 1),
	}
}

func humanoidName(t Theme, _ robot.Attributes, name string) []Primitive {
	return []Primitive{
		label(200, 20, name, t.Humanoid.Name, Font{Family: "Helvetica", Size: 16, Bold: true}),
	}
}
