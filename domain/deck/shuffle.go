package deck

import (
	"math/big"

	"github.com/luca-patrignani/heads-up-poker/domain/poker"
	"go.dedis.ch/kyber/v4/util/random"
)

// Shuffle gathers every card back, clears the table and permutes the deck.
func (d *Deck) Shuffle() error {
	d.next = 0
	d.table = nil
	if !d.shuffling {
		return nil
	}
	perm := d.permutation(len(d.cards))
	shuffled := make([]poker.Card, len(d.cards))
	for i, j := range perm {
		shuffled[i] = d.cards[j]
	}
	d.cards = shuffled
	return nil
}

// Fisher-Yates over the deck's random stream.
func (d *Deck) permutation(permSize int) []int {
	perm := make([]int, permSize)
	for i := range perm {
		perm[i] = i
	}
	for i := permSize - 1; i > 0; i-- {
		j := int(random.Int(big.NewInt(int64(i+1)), d.random).Int64())
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}
