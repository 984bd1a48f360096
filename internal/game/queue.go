package game

import (
	"fmt"
	"math/rand/v2"
)

// PieceQueue is a fixed-length look-ahead buffer of upcoming kinds. Every
// slot always holds a valid kind.
type PieceQueue struct {
	slots []PieceKind
	rng   *rand.Rand
}

// NewPieceQueue creates a queue of the given length filled with random kinds.
// The refill rule needs a second-to-last slot, so length must be at least 2.
func NewPieceQueue(length int, rng *rand.Rand) *PieceQueue {
	if length < 2 {
		panic(fmt.Sprintf("game: piece queue length must be at least 2, got %d", length))
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	q := &PieceQueue{
		slots: make([]PieceKind, length),
		rng:   rng,
	}
	q.Fill()
	return q
}

// Len returns the fixed queue length.
func (q *PieceQueue) Len() int {
	return len(q.slots)
}

// Peek returns the next kind without removing it.
func (q *PieceQueue) Peek() PieceKind {
	return q.slots[0]
}

// Kinds returns a copy of the queue contents, front first.
func (q *PieceQueue) Kinds() []PieceKind {
	out := make([]PieceKind, len(q.slots))
	copy(out, q.slots)
	return out
}

// Dequeue removes and returns the front kind, shifts the rest forward and
// draws a new kind for the last slot. The new kind never equals the kind in
// the slot right before it.
func (q *PieceQueue) Dequeue() PieceKind {
	front := q.slots[0]
	last := len(q.slots) - 1
	copy(q.slots, q.slots[1:])

	next := q.draw()
	for next == q.slots[last-1] {
		next = q.draw()
	}
	q.slots[last] = next
	return front
}

// Fill assigns every slot an independent random kind with no adjacency rule.
func (q *PieceQueue) Fill() {
	for i := range q.slots {
		q.slots[i] = q.draw()
	}
}

func (q *PieceQueue) draw() PieceKind {
	return Kinds[q.rng.IntN(numKinds)]
}
