package shared

import (
	"math/rand/v2"
	"sync"
)

// Random is the only source of randomness the simulation uses. Board
// building and hazard rolls receive it explicitly so games can be replayed
// from a seed.
type Random interface {
	// IntN returns a uniform value in [0, n)
	IntN(n int) int
}

// RollDie rolls a six sided die, 1 to 6 inclusive
func RollDie(r Random) int {
	return r.IntN(6) + 1
}

// SeededRandom is a PCG generator seeded once at creation
type SeededRandom struct {
	seed uint64
	rng  *rand.Rand
}

// NewRandom creates a generator for the given seed
func NewRandom(seed uint64) *SeededRandom {
	return &SeededRandom{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (r *SeededRandom) IntN(n int) int {
	return r.rng.IntN(n)
}

// Seed returns the seed the generator was created with
func (r *SeededRandom) Seed() uint64 {
	return r.seed
}

// TurnRandom draws from a stream keyed by seed and turn number. StartTurn
// switches to the turn's stream, so the rolls of a turn do not depend on
// how many were drawn before it.
type TurnRandom struct {
	seed uint64
	rng  *SeededRandom
}

// NewTurnRandom creates a source positioned at turn zero
func NewTurnRandom(seed uint64) *TurnRandom {
	return &TurnRandom{seed: seed, rng: NewRandom(seed)}
}

// StartTurn re-seeds for the given turn count
func (r *TurnRandom) StartTurn(turn int) {
	r.rng = NewRandom(r.seed + uint64(turn))
}

func (r *TurnRandom) IntN(n int) int {
	return r.rng.IntN(n)
}

// ScriptedRandom replays a fixed sequence of values, for tests and replays.
// Each value is reduced modulo n. Once the script runs out it keeps
// returning the last value.
type ScriptedRandom struct {
	mu     sync.Mutex
	values []int
	next   int
}

// NewScriptedRandom creates a scripted source
func NewScriptedRandom(values ...int) *ScriptedRandom {
	return &ScriptedRandom{values: values}
}

// NewScriptedDice scripts die faces (1..6) rather than raw IntN results
func NewScriptedDice(faces ...int) *ScriptedRandom {
	values := make([]int, len(faces))
	for i, f := range faces {
		values[i] = f - 1
	}
	return NewScriptedRandom(values...)
}

func (r *ScriptedRandom) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.values) == 0 {
		return 0
	}
	idx := r.next
	if idx >= len(r.values) {
		idx = len(r.values) - 1
	} else {
		r.next++
	}
	v := r.values[idx] % n
	if v < 0 {
		v += n
	}
	return v
}

// Remaining returns how many scripted values have not been consumed
func (r *ScriptedRandom) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values) - r.next
}
