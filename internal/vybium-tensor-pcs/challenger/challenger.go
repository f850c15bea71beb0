// Package challenger implements the Fiat-Shamir transcript that turns an
// interactive protocol into a non-interactive one: the prover and verifier
// each replay the same sequence of Observe/Sample calls, deriving identical
// "random" challenges from a running hash state instead of a trusted
// verifier's coin flips.
package challenger

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/vybium/vybium-tensor-pcs/internal/vybium-tensor-pcs/packed"
	"github.com/vybium/vybium-tensor-pcs/internal/vybium-tensor-pcs/tower"
)

// Challenger is a Fiat-Shamir transcript over extension-field challenges.
type Challenger interface {
	// Observe absorbs a single element into the transcript.
	Observe(e tower.Element)
	// ObserveSlice absorbs every element of a packed vector, in order.
	ObserveSlice(v packed.Vector)
	// Sample draws one pseudorandom element at the given level.
	Sample(level tower.Level) tower.Element
	// SampleVec draws n pseudorandom elements at the given level.
	SampleVec(level tower.Level, n int) []tower.Element
	// SampleBits draws a pseudorandom non-negative integer with the given
	// number of bits, used to choose which encoded column to open.
	SampleBits(bits int) int
}

// Sha3Challenger ratchets a SHA3-256 state: every Observe or Sample
// rehashes the accumulated state together with newly absorbed bytes,
// mirroring the send/receive state-evolution idiom of a Fiat-Shamir
// channel, narrowed here to SHA3 since the transcript's binding security
// does not benefit from a pluggable hash the way column hashing does.
type Sha3Challenger struct {
	state [32]byte
}

// NewSha3Challenger returns a fresh challenger with a zeroed initial state.
func NewSha3Challenger() *Sha3Challenger {
	return &Sha3Challenger{}
}

// Clone returns an independent copy of the challenger's current state, so
// a prover and verifier can fork from the same transcript prefix.
func (c *Sha3Challenger) Clone() *Sha3Challenger {
	clone := *c
	return &clone
}

func (c *Sha3Challenger) absorb(data []byte) {
	h := sha3.New256()
	h.Write(c.state[:])
	h.Write(data)
	var next [32]byte
	h.Sum(next[:0])
	c.state = next
}

func elementBytes(e tower.Element) []byte {
	bits := e.Level().Bits()
	if bits < 8 {
		return []byte{byte(e.Lo())}
	}
	nbytes := bits / 8
	buf := make([]byte, nbytes)
	if e.Level() == tower.Level7 {
		binary.LittleEndian.PutUint64(buf[0:8], e.Lo())
		binary.LittleEndian.PutUint64(buf[8:16], e.Hi())
		return buf
	}
	v := e.Lo()
	for i := 0; i < nbytes; i++ {
		buf[i] = byte(v)
		v >>= 8
	}
	return buf
}

func (c *Sha3Challenger) Observe(e tower.Element) {
	c.absorb(elementBytes(e))
}

func (c *Sha3Challenger) ObserveSlice(v packed.Vector) {
	for i := 0; i < v.Width(); i++ {
		c.Observe(v.Get(i))
	}
}

func (c *Sha3Challenger) Sample(level tower.Level) tower.Element {
	// Draw fresh output bytes, then ratchet the state so the next draw is
	// independent of this one.
	h := sha3.New256()
	h.Write(c.state[:])
	h.Write([]byte{0x01})
	var out [32]byte
	h.Sum(out[:0])
	c.absorb([]byte{0x01})

	bits := level.Bits()
	if level == tower.Level7 {
		return tower.FromHalves(binary.LittleEndian.Uint64(out[0:8]), binary.LittleEndian.Uint64(out[8:16]))
	}
	if bits < 8 {
		return tower.FromUint64(level, uint64(out[0]))
	}
	nbytes := bits / 8
	var v uint64
	for i := nbytes - 1; i >= 0; i-- {
		v = v<<8 | uint64(out[i])
	}
	return tower.FromUint64(level, v)
}

func (c *Sha3Challenger) SampleVec(level tower.Level, n int) []tower.Element {
	out := make([]tower.Element, n)
	for i := range out {
		out[i] = c.Sample(level)
	}
	return out
}

func (c *Sha3Challenger) SampleBits(bits int) int {
	h := sha3.New256()
	h.Write(c.state[:])
	h.Write([]byte{0x02})
	var out [32]byte
	h.Sum(out[:0])
	c.absorb([]byte{0x02})

	v := binary.LittleEndian.Uint64(out[0:8])
	if bits >= 63 {
		return int(v &^ (1 << 63))
	}
	return int(v & (1<<uint(bits) - 1))
}
