package tetris

import "math/rand/v2"

// Bag deals kinds from shuffled permutations of all seven. A new
// permutation is shuffled only once the previous one is used up.
type Bag struct {
	rng   *rand.Rand
	kinds []Kind
}

func NewBag(rng *rand.Rand) *Bag {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	b := &Bag{rng: rng, kinds: make([]Kind, 0, len(Kinds))}
	b.refill()
	return b
}

func (b *Bag) refill() {
	b.kinds = append(b.kinds[:0], Kinds[:]...)
	for i := len(b.kinds) - 1; i > 0; i-- {
		j := b.rng.IntN(i + 1)
		b.kinds[i], b.kinds[j] = b.kinds[j], b.kinds[i]
	}
}

// Next removes and returns the next kind.
func (b *Bag) Next() Kind {
	if len(b.kinds) == 0 {
		b.refill()
	}
	k := b.kinds[len(b.kinds)-1]
	b.kinds = b.kinds[:len(b.kinds)-1]
	return k
}

// Len returns the number of kinds left in the current permutation.
func (b *Bag) Len() int {
	return len(b.kinds)
}
