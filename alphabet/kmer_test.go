package alphabet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seqgraph/triegraph/alphabet"
)

func TestKmerPushBackRolls(t *testing.T) {
	a := alphabet.MustNew(4)
	km := alphabet.Empty(a, 3)
	assert.Equal(t, 0, km.Size())
	assert.False(t, km.IsComplete())

	km.PushBack(0) // A
	km.PushBack(1) // C
	km.PushBack(2) // G
	require.True(t, km.IsComplete())
	assert.Equal(t, []alphabet.Symbol{0, 1, 2}, km.Symbols())

	// Pushing a 4th symbol drops the oldest (rolling window).
	km.PushBack(3) // T
	assert.True(t, km.IsComplete())
	assert.Equal(t, []alphabet.Symbol{1, 2, 3}, km.Symbols())
}

func TestKmerPopBackRemovesNewest(t *testing.T) {
	a := alphabet.MustNew(4)
	km := alphabet.Empty(a, 3)
	km.PushBack(0)
	km.PushBack(1)
	require.NoError(t, km.PopBack())
	assert.Equal(t, []alphabet.Symbol{0}, km.Symbols())
}

func TestKmerPopBackEmptyErrors(t *testing.T) {
	a := alphabet.MustNew(4)
	km := alphabet.Empty(a, 2)
	err := km.PopBack()
	require.Error(t, err)
}

func TestKmerEncodeUnique(t *testing.T) {
	a := alphabet.MustNew(4)
	seen := map[uint64]string{}
	for x := alphabet.Symbol(0); x < 4; x++ {
		for y := alphabet.Symbol(0); y < 4; y++ {
			km := alphabet.Empty(a, 2)
			km.PushBack(x)
			km.PushBack(y)
			code := km.Encode()
			if prev, ok := seen[code]; ok {
				t.Fatalf("collision: %s and %s both encode to %d", prev, km.String(), code)
			}
			seen[code] = km.String()
			assert.Less(t, code, uint64(16))
		}
	}
	assert.Len(t, seen, 16)
}

func TestKmerCloneIsIndependent(t *testing.T) {
	a := alphabet.MustNew(4)
	live := alphabet.Empty(a, 3)
	live.PushBack(1)
	snapshot := live.Clone()
	live.PushBack(2)

	assert.Equal(t, 1, snapshot.Size())
	assert.Equal(t, 2, live.Size())
}

func TestKmerEqual(t *testing.T) {
	a := alphabet.MustNew(4)
	k1 := alphabet.Empty(a, 2)
	k1.PushBack(1)
	k1.PushBack(2)
	k2 := alphabet.Empty(a, 2)
	k2.PushBack(1)
	k2.PushBack(2)
	assert.True(t, k1.Equal(k2))

	k2.PushBack(3)
	assert.False(t, k1.Equal(k2))
}
