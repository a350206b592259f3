// Package gameid generates sortable identifiers for simulated hands.
//
// An ID is a UUIDv7 (48-bit millisecond timestamp, version and variant bits,
// random tail) encoded as 26 characters of Crockford base32, so IDs sort by
// creation time.
package gameid

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"

	"github.com/coder/quartz"
)

const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

var encoding = base32.NewEncoding(alphabet).WithPadding(base32.NoPadding)

// RandSource supplies the random tail. *rand.Rand from math/rand/v2
// satisfies it.
type RandSource interface {
	IntN(n int) int
}

// Generator creates IDs from a clock and an optional random source. With a
// nil source the tail comes from crypto/rand.
type Generator struct {
	rand  RandSource
	clock quartz.Clock
}

func NewGenerator(rand RandSource, clock quartz.Clock) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Generator{rand: rand, clock: clock}
}

// Generate returns an ID using the real clock and crypto/rand.
func Generate() string {
	return NewGenerator(nil, nil).Generate()
}

func (g *Generator) Generate() string {
	var id [16]byte

	now := g.clock.Now().UnixMilli()
	for i := range 6 {
		id[i] = byte(now >> (40 - 8*i))
	}

	if g.rand != nil {
		for i := 6; i < 16; i++ {
			id[i] = byte(g.rand.IntN(256))
		}
	} else if _, err := rand.Read(id[6:]); err != nil {
		panic("failed to generate random bytes: " + err.Error())
	}

	id[6] = id[6]&0x0f | 0x70 // version 7
	id[8] = id[8]&0x3f | 0x80 // variant 10

	return encoding.EncodeToString(id[:])
}

// Validate checks that id is 26 base32 characters decoding to 16 bytes.
func Validate(id string) error {
	if len(id) != 26 {
		return fmt.Errorf("id must be exactly 26 characters, got %d", len(id))
	}
	if i := strings.IndexFunc(id, func(r rune) bool { return !strings.ContainsRune(alphabet, r) }); i >= 0 {
		return fmt.Errorf("invalid character %c at position %d", id[i], i)
	}
	if _, err := encoding.DecodeString(id); err != nil {
		return fmt.Errorf("invalid id: %w", err)
	}
	return nil
}
