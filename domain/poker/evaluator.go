package poker

import (
	"fmt"

	"github.com/paulhankin/poker"
)

// HandEvaluator scores a player's hole cards against the full board.
// Higher scores are better hands; equal scores tie.
type HandEvaluator interface {
	Evaluate(hand [2]Card, board []Card) (int16, error)
}

// RankEvaluator is the 7-card evaluator backed by paulhankin/poker.
type RankEvaluator struct{}

func (RankEvaluator) Evaluate(hand [2]Card, board []Card) (int16, error) {
	finalHand, err := makeFinalHand(hand, board)
	if err != nil {
		return 0, err
	}
	return poker.Eval7(&finalHand), nil
}

// Describe names the best hand made by hand and board, e.g. "pair of aces".
func Describe(hand [2]Card, board []Card) (string, error) {
	c, err := makeFinalHand(hand, board)
	if err != nil {
		return "", err
	}
	return poker.Describe(c[:])
}

func makeFinalHand(hand [2]Card, board []Card) ([7]poker.Card, error) {
	var finalHand [7]poker.Card
	if len(board) != 5 {
		return finalHand, fmt.Errorf("need 5 board cards, got %d", len(board))
	}
	for i, c := range board {
		card, err := poker.MakeCard(poker.Suit(c.suit), poker.Rank(c.rank))
		if err != nil {
			return [7]poker.Card{}, fmt.Errorf("invalid board card at idx %d: %w", i, err)
		}
		finalHand[i] = card
	}
	for i, c := range hand {
		card, err := poker.MakeCard(poker.Suit(c.suit), poker.Rank(c.rank))
		if err != nil {
			return [7]poker.Card{}, fmt.Errorf("invalid player card: %w", err)
		}
		finalHand[5+i] = card
	}
	return finalHand, nil
}
