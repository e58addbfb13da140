package preset

import (
	"fmt"
	"math/rand"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// adjectives used for human-friendly preset IDs
var adjectives = []string{
	"amber", "bold", "brave", "bright", "calm", "clever", "cool", "crisp",
	"eager", "fancy", "fleet", "gentle", "golden", "grand", "happy", "jolly",
	"keen", "lively", "lucky", "mellow", "neat", "nimble", "polished", "proud",
	"quick", "quiet", "rapid", "shiny", "silver", "smooth", "steady", "swift",
	"tidy", "vivid", "warm", "wise",
}

// animals used for human-friendly preset IDs
var animals = []string{
	"badger", "bear", "bison", "crane", "deer", "dolphin", "eagle", "falcon",
	"ferret", "finch", "fox", "gecko", "hare", "hawk", "heron", "ibis",
	"koala", "lark", "lemur", "lynx", "marten", "otter", "owl", "panda",
	"puffin", "raven", "robin", "salmon", "seal", "sparrow", "swift", "tapir",
	"tiger", "trout", "wren", "yak",
}

var rng *rand.Rand

func init() {
	rng = rand.New(rand.NewSource(time.Now().UnixNano()))
}

// generatePresetID generates an ID like "bright_falcon_V1StGXR8"
func generatePresetID() (string, error) {
	adjective := adjectives[rng.Intn(len(adjectives))]
	animal := animals[rng.Intn(len(animals))]

	nanoID, err := gonanoid.Generate("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz", 8)
	if err != nil {
		return "", fmt.Errorf("failed to generate nanoid: %w", err)
	}

	return fmt.Sprintf("%s_%s_%s", adjective, animal, nanoID), nil
}
