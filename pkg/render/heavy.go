package render

import "github.com/chazu/botforge/pkg/robot"

// heavyRegions is the heavy pipeline, back to front: head with rivets,
// torso, arms, legs, antenna, name label. Heavy robots have no eyes.
var heavyRegions = []regionFunc{
	heavyHead,
	heavyTorso,
	heavyArms,
	heavyLegs,
	antennaRegion,
	heavyName,
}

// heavyHead draws a half-disc head with a visor line for "dome", otherwise a
// boxed head. A row of rivets is stamped on either way.
func heavyHead(t Theme, attrs robot.Attributes, _ string) []Primitive {
	var out []Primitive
	if styleOf(attrs, robot.KeyHeadStyle, "rectangle") == "dome" {
		out = append(out,
			chord(150, 40, 250, 90, 0, 180, t.Heavy.Plate, "black", 3),
			line(150, 65, 250, 65, "black", 2),
		)
	} else {
		out = append(out, rect(150, 40, 250, 90, t.Heavy.Plate, "black", 3))
	}
	for x := 160.0; x < 240; x += 20 {
		out = append(out, ellipse(x, 45, x+10, 55, "black", "black", 1))
	}
	return out
}

func heavyTorso(t Theme, attrs robot.Attributes, _ string) []Primitive {
	if styleOf(attrs, robot.KeyTorsoStyle, "standard") == "armored" {
		return []Primitive{
			rect(140, 90, 260, 180, t.Heavy.Hull, "black", 4),
			line(140, 130, 260, 130, "black", 2),
			line(200, 90, 200, 180, "black", 2),
		}
	}
	return []Primitive{
		rect(140, 90, 260, 180, t.Heavy.Hull, "black", 3),
	}
}

// heavyArms draws the side blocks; "robotic" adds shoulder joint pegs.
func heavyArms(t Theme, attrs robot.Attributes, _ string) []Primitive {
	out := []Primitive{
		rect(110, 90, 140, 150, t.Heavy.Plate, "black", 3),
		rect(260, 90, 290, 150, t.Heavy.Plate, "black", 3),
	}
	if styleOf(attrs, robot.KeyArmStyle, "standard") == "robotic" {
		out = append(out,
			line(125, 90, 125, 70, "black", 2),
			line(275, 90, 275, 70, "black", 2),
			ellipse(120, 70, 130, 80, "black", "gray", 1),
			ellipse(270, 70, 280, 80, "black", "gray", 1),
		)
	}
	return out
}

func heavyLegs(t Theme, attrs robot.Attributes, _ string) []Primitive {
	if styleOf(attrs, robot.KeyLegs, "standard") == "wide" {
		return []Primitive{
			rect(160, 180, 190, 260, t.Heavy.Leg, t.Heavy.Leg, 1),
			rect(210, 180, 240, 260, t.Heavy.Leg, t.Heavy.Leg, 1),
			ellipse(170, 255, 180, 265, t.Heavy.Joint, "black", 1),
			ellipse(220, 255, 230, 265, t.Heavy.Joint, "black", 1),
		}
	}
	return []Primitive{
		rect(170, 180, 190, 260, t.Heavy.Leg, t.Heavy.Leg, 1),
		rect(210, 180, 230, 260, t.Heavy.Leg, t.Heavy.Leg, 1),
	}
}

func heavyName(t Theme, _ robot.Attributes, name string) []Primitive {
	return []Primitive{
		label(200, 20, name, t.Heavy.Name, Font{Family: "Helvetica", Size: 16, Bold: true}),
	}
}
