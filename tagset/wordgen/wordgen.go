// Package wordgen produces memorable names and "key:value" labels for demo boards.
package wordgen

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// adjectives is a curated list of simple, memorable adjectives
var adjectives = []string{
	"azure", "bold", "calm", "daring", "eager",
	"fleet", "gentle", "happy", "jolly", "kind",
	"lively", "merry", "noble", "proud", "quick",
	"quiet", "rapid", "serene", "swift", "wise",
	"bright", "clever", "cosmic", "crystal", "golden",
	"iron", "jade", "keen", "lunar", "mystic",
	"pearl", "royal", "silver", "solar", "stellar",
}

// nouns is a curated list of animals and memorable objects
var nouns = []string{
	"badger", "cheetah", "dolphin", "eagle", "falcon",
	"gazelle", "hawk", "jaguar", "koala", "leopard",
	"narwhal", "otter", "panther", "raven", "shark",
	"walrus", "zebra", "cobra", "dragon", "fox",
	"heron", "ibex", "lynx", "moose", "owl",
	"panda", "rabbit", "swan", "turtle", "wolf",
}

// labelKeys are the keys used for generated labels.
var labelKeys = []string{
	"env", "team", "region", "owner", "tier",
	"service", "severity", "cluster", "biz", "collector",
}

// Generator draws words from a random source.
type Generator struct {
	rand io.Reader
}

// New returns a Generator reading randomness from r.
func New(r io.Reader) *Generator {
	return &Generator{rand: r}
}

var defaultGenerator = New(rand.Reader)

// Generate creates a random word pair in the format "adjective_noun" using
// crypto/rand. Returns an empty string on error.
func Generate() string {
	name, err := defaultGenerator.Name()
	if err != nil {
		return ""
	}
	return name
}

// Name returns an "adjective_noun" pair.
func (g *Generator) Name() (string, error) {
	adj, err := g.pick(adjectives)
	if err != nil {
		return "", err
	}
	noun, err := g.pick(nouns)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s_%s", adj, noun), nil
}

// Label returns a "key:value" label such as "team:lunar-otter".
func (g *Generator) Label() (string, error) {
	key, err := g.pick(labelKeys)
	if err != nil {
		return "", err
	}
	adj, err := g.pick(adjectives)
	if err != nil {
		return "", err
	}
	noun, err := g.pick(nouns)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s-%s", key, adj, noun), nil
}

// Labels returns n labels.
func (g *Generator) Labels(n int) ([]string, error) {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		l, err := g.Label()
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// Intn returns a uniform random number in [0, n).
func (g *Generator) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("invalid bound %d", n)
	}
	v, err := rand.Int(g.rand, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to generate random number: %w", err)
	}
	return int(v.Int64()), nil
}

func (g *Generator) pick(words []string) (string, error) {
	if len(words) == 0 {
		return "", fmt.Errorf("empty word list")
	}
	i, err := g.Intn(len(words))
	if err != nil {
		return "", err
	}
	return words[i], nil
}
