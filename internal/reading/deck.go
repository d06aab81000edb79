package reading

// Shuffler is the random source used for ordering. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Shuffled returns a shuffled copy of items; items itself is left untouched.
func Shuffled[T any](r Shuffler, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	r.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Deck deals catalog paragraphs in random order. Every paragraph is dealt
// once before any repeats; the deck reshuffles when it runs out.
type Deck struct {
	r     Shuffler
	order []Paragraph
	next  int
}

// NewDeck returns a freshly shuffled deck.
func NewDeck(r Shuffler) *Deck {
	d := &Deck{r: r}
	d.reshuffle()
	return d
}

// Next deals the next paragraph.
func (d *Deck) Next() Paragraph {
	if d.next >= len(d.order) {
		d.reshuffle()
	}
	p := d.order[d.next]
	d.next++
	return p
}

// Remaining returns how many paragraphs are left before the next reshuffle.
func (d *Deck) Remaining() int {
	return len(d.order) - d.next
}

func (d *Deck) reshuffle() {
	d.order = Shuffled(d.r, Paragraphs())
	d.next = 0
}
