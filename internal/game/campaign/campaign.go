// Package campaign loads YAML manifests that chain levels into a play order.
package campaign

import "fmt"

// Level is one entry in a campaign's play order.
type Level struct {
	// ID uniquely identifies this level within the campaign.
	ID string
	// Name is the display name shown when the level begins.
	Name string
	// File is the path to the level's text description, relative to the
	// manifest's directory.
	File string
}

// Campaign is an ordered list of levels played front to back.
type Campaign struct {
	// ID uniquely identifies this campaign.
	ID string
	// Name is the campaign display name.
	Name string
	// Description summarizes the campaign's theme.
	Description string
	// Levels lists the levels in play order.
	Levels []Level
}

// First returns the opening level.
//
// Precondition: the campaign must have passed Validate.
func (c *Campaign) First() Level {
	return c.Levels[0]
}

// LevelAfter returns the level following the one with the given ID, for
// advancing when the player escapes.
//
// Postcondition: Returns (level, true), or (Level{}, false) when id is the
// last level or unknown.
func (c *Campaign) LevelAfter(id string) (Level, bool) {
	for i, lvl := range c.Levels {
		if lvl.ID == id && i+1 < len(c.Levels) {
			return c.Levels[i+1], true
		}
	}
	return Level{}, false
}

// Validate checks campaign invariants.
//
// Postcondition: Returns nil if valid, or an error describing the first violation.
func (c *Campaign) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("campaign ID must not be empty")
	}
	if c.Name == "" {
		return fmt.Errorf("campaign %q: name must not be empty", c.ID)
	}
	if len(c.Levels) == 0 {
		return fmt.Errorf("campaign %q: must contain at least one level", c.ID)
	}
	seen := make(map[string]bool, len(c.Levels))
	for i, lvl := range c.Levels {
		if lvl.ID == "" {
			return fmt.Errorf("campaign %q: level %d: id must not be empty", c.ID, i)
		}
		if seen[lvl.ID] {
			return fmt.Errorf("campaign %q: duplicate level id %q", c.ID, lvl.ID)
		}
		seen[lvl.ID] = true
		if lvl.Name == "" {
			return fmt.Errorf("campaign %q: level %q: name must not be empty", c.ID, lvl.ID)
		}
		if lvl.File == "" {
			return fmt.Errorf("campaign %q: level %q: file must not be empty", c.ID, lvl.ID)
		}
	}
	return nil
}
