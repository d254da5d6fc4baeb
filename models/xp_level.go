// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// XPLevel is one rung of the gamification ladder.
type XPLevel struct {
	Level int    `json:"level"`
	MinXP int64  `json:"min_xp"`
	Title string `json:"title"`
}

// xpLevels is ordered by MinXP.
var xpLevels = []XPLevel{
	{Level: 1, MinXP: 0, Title: "Explorer"},
	{Level: 2, MinXP: 100, Title: "Adventurer"},
	{Level: 3, MinXP: 300, Title: "Traveler"},
	{Level: 4, MinXP: 600, Title: "Navigator"},
	{Level: 5, MinXP: 1000, Title: "Pioneer"},
	{Level: 6, MinXP: 2000, Title: "Master"},
	{Level: 7, MinXP: 4000, Title: "Legend"},
	{Level: 8, MinXP: 10000, Title: "Myth"},
}

// LevelForXP returns the highest level whose threshold xp has reached.
// Negative xp maps to the first level.
func LevelForXP(xp int64) XPLevel {
	current := xpLevels[0]
	for _, l := range xpLevels[1:] {
		if xp < l.MinXP {
			break
		}
		current = l
	}
	return current
}

// XPLevels returns a copy of the level ladder.
func XPLevels() []XPLevel {
	out := make([]XPLevel, len(xpLevels))
	copy(out, xpLevels)
	return out
}
