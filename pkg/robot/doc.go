// Package robot defines the robot entity: a named, variant-tagged object
// carrying a mutable attribute map, with deep prototype cloning.
package robot
