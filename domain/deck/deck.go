package deck

import (
	"crypto/cipher"
	"errors"

	"github.com/luca-patrignani/heads-up-poker/domain/poker"
	"go.dedis.ch/kyber/v4/suites"
)

const DeckSize = 52

var ErrEmpty = errors.New("deck is empty")

// Deck is the host's 52-card deck and the community cards dealt from it
// during a round.
type Deck struct {
	cards     []poker.Card
	next      int
	table     []poker.Card
	random    cipher.Stream
	shuffling bool
}

var suite suites.Suite = suites.MustFind("Ed25519")

// New returns a full deck in card-number order, shuffled by every call to
// Shuffle with the Ed25519 suite's random stream.
func New() *Deck {
	cards := make([]poker.Card, 0, DeckSize)
	for i := 1; i <= DeckSize; i++ {
		c, err := poker.IntToCard(i)
		if err != nil {
			panic(err)
		}
		cards = append(cards, c)
	}
	return &Deck{
		cards:     cards,
		random:    suite.RandomStream(),
		shuffling: true,
	}
}

// NewStacked returns a deck that deals cards in the given order and never
// shuffles. Shuffle only rewinds it.
func NewStacked(cards ...poker.Card) *Deck {
	return &Deck{cards: append([]poker.Card(nil), cards...)}
}

// Deal draws the next card of the deck.
func (d *Deck) Deal() (poker.Card, error) {
	if d.next >= len(d.cards) {
		return poker.Card{}, ErrEmpty
	}
	c := d.cards[d.next]
	d.next++
	return c, nil
}

// DealTableCard draws the next card face up onto the table.
func (d *Deck) DealTableCard() (poker.Card, error) {
	c, err := d.Deal()
	if err != nil {
		return poker.Card{}, err
	}
	d.table = append(d.table, c)
	return c, nil
}

// TableCards returns a copy of the community cards dealt so far.
func (d *Deck) TableCards() []poker.Card {
	return append([]poker.Card(nil), d.table...)
}

// ClearTableCards removes the community cards.
func (d *Deck) ClearTableCards() {
	d.table = nil
}

// Remaining is the number of cards left to deal.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}
