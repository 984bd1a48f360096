package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestNewPieceQueue(t *testing.T) {
	q := NewPieceQueue(4, seeded(1))
	require.Equal(t, 4, q.Len())
	for i, k := range q.Kinds() {
		assert.True(t, k.Valid(), "slot %d holds invalid kind %d", i, k)
	}

	assert.Panics(t, func() { NewPieceQueue(1, seeded(1)) })
	assert.Panics(t, func() { NewPieceQueue(0, nil) })
	assert.NotPanics(t, func() { NewPieceQueue(2, nil) })
}

func TestDequeueShiftsForward(t *testing.T) {
	q := NewPieceQueue(4, seeded(2))
	before := q.Kinds()

	got := q.Dequeue()
	after := q.Kinds()

	assert.Equal(t, before[0], got)
	assert.Equal(t, before[1:], after[:3])
	assert.Equal(t, 4, q.Len())
}

func TestDequeueNoImmediateRepeat(t *testing.T) {
	for _, length := range []int{2, 4, 7} {
		q := NewPieceQueue(length, seeded(uint64(length)))
		for i := 0; i < 2000; i++ {
			q.Dequeue()
			kinds := q.Kinds()
			last := len(kinds) - 1
			require.NotEqual(t, kinds[last-1], kinds[last], "length %d, dequeue %d: refilled slot repeats its neighbour", length, i)
		}
	}
}

func TestDequeueDrawsEveryKind(t *testing.T) {
	q := NewPieceQueue(4, seeded(3))
	counts := make(map[PieceKind]int)
	for i := 0; i < 7000; i++ {
		counts[q.Dequeue()]++
	}
	for _, k := range Kinds {
		assert.Greater(t, counts[k], 500, "kind %s drawn too rarely", k)
	}
}

func TestPeekDoesNotMutate(t *testing.T) {
	q := NewPieceQueue(4, seeded(4))
	before := q.Kinds()
	assert.Equal(t, before[0], q.Peek())
	assert.Equal(t, before, q.Kinds())
}

func TestKindsIsACopy(t *testing.T) {
	q := NewPieceQueue(3, seeded(5))
	kinds := q.Kinds()
	front := kinds[0]
	kinds[0] = PieceKind(99)
	assert.Equal(t, front, q.Peek())
}

func TestFillIsUnconstrained(t *testing.T) {
	// With two slots and fresh fills, adjacent repeats must show up sometimes.
	q := NewPieceQueue(2, seeded(6))
	repeats := 0
	for i := 0; i < 500; i++ {
		q.Fill()
		k := q.Kinds()
		if k[0] == k[1] {
			repeats++
		}
	}
	assert.Greater(t, repeats, 0)
}
