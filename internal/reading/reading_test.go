package reading

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	ps := Paragraphs()
	require.Len(t, ps, 79)
	assert.Equal(t, 79, Count())

	seen := map[string]bool{}
	for i, p := range ps {
		assert.Equal(t, i, p.ID)
		assert.NotEmpty(t, p.Text)
		assert.Less(t, len(p.Text), 500)
		assert.False(t, strings.HasPrefix(p.Text, " ") || strings.HasSuffix(p.Text, " "), "paragraph %d has padding", i)
		assert.False(t, seen[p.Text], "paragraph %d is a duplicate", i)
		seen[p.Text] = true
	}

	assert.True(t, seen["I have a brown dog. His name is Max. Max likes to run and play. He can catch a ball."])
	assert.True(t, seen["Mom and I went to the park. We played on the swings. Then we had a picnic. It was a fun day."])
}

func TestGet(t *testing.T) {
	p, err := Get(0)
	require.NoError(t, err)
	assert.Equal(t, 0, p.ID)
	assert.True(t, strings.HasPrefix(p.Text, "I have a brown dog."))

	_, err = Get(-1)
	assert.Error(t, err)
	_, err = Get(Count())
	assert.Error(t, err)
}

func TestShuffled(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	in := []int{1, 2, 3, 4, 5}
	orig := append([]int(nil), in...)

	out := Shuffled(r, in)
	assert.Equal(t, orig, in, "input must not be modified")
	assert.ElementsMatch(t, in, out)

	// Every element reaches the first slot eventually.
	firsts := map[int]bool{}
	for i := 0; i < 500; i++ {
		firsts[Shuffled(r, in)[0]] = true
	}
	assert.Len(t, firsts, len(in))
}

func TestDeck_DealsEachParagraphOncePerRound(t *testing.T) {
	d := NewDeck(rand.New(rand.NewPCG(7, 7)))
	assert.Equal(t, Count(), d.Remaining())

	for round := 0; round < 2; round++ {
		seen := map[int]bool{}
		for i := 0; i < Count(); i++ {
			p := d.Next()
			require.False(t, seen[p.ID], "round %d: paragraph %d dealt twice", round, p.ID)
			seen[p.ID] = true
		}
		assert.Len(t, seen, Count())
		assert.Zero(t, d.Remaining())
	}
}
