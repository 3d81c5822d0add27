// Package ident generates passphrase-style identifiers in the form
// adjective-adjective-noun-number. They are a usability feature, not a
// credential; there is no cryptographic strength requirement.
package ident

import (
	"fmt"
	"math/rand"
)

var adjectives = []string{
	"swift", "brave", "calm", "quiet", "bright", "bold", "eager", "gentle",
	"happy", "keen", "lively", "merry", "noble", "proud", "rapid", "steady",
	"sunny", "tidy", "vivid", "warm",
}

var nouns = []string{
	"river", "stone", "cloud", "maple", "falcon", "harbor", "meadow", "summit",
	"valley", "willow", "cedar", "coral", "ember", "garnet", "heron", "lagoon",
	"orchid", "prairie", "quartz", "tundra",
}

// New returns a fresh identifier like "swift-brave-river-42".
func New() string {
	a1 := adjectives[rand.Intn(len(adjectives))]
	a2 := adjectives[rand.Intn(len(adjectives))]
	n := nouns[rand.Intn(len(nouns))]
	return fmt.Sprintf("%s-%s-%s-%d", a1, a2, n, rand.Intn(100))
}
