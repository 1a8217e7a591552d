package poker

import (
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// EvaluationError reports a hand evaluation failure at showdown.
type EvaluationError struct {
	Seat int
	Err  error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluating seat %d: %v", e.Seat, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}

// Settlement is the outcome of a round.
type Settlement struct {
	Folded  bool
	Winners []int  // seats, in evaluation order
	Payouts []uint // chips won, parallel to Winners
	Hands   [2][2]Card
	Text    string
}

// SettleFold awards the whole pot to the seat left in and resets the round.
func SettleFold(t *Table, winner int) Settlement {
	s := Settlement{
		Folded:  true,
		Winners: []int{winner},
		Text:    fmt.Sprintf("Winner: %s (opponent folded)", t.Players[winner].Name),
	}
	s.Payouts = Distribute(t, s.Winners)
	t.ResetRound()
	return s
}

// SettleShowdown evaluates every non-folded hand concurrently, waits for all
// of them, then splits the pot among the best hands. An evaluation failure
// aborts before any chips move.
func SettleShowdown(t *Table, eval HandEvaluator) (Settlement, error) {
	seats := t.Active()
	scores := make([]int16, len(seats))
	board := append([]Card(nil), t.Board...)

	var g errgroup.Group
	for i, seat := range seats {
		hand := t.Players[seat].Hand
		g.Go(func() error {
			score, err := eval.Evaluate(hand, board)
			if err != nil {
				return &EvaluationError{Seat: seat, Err: err}
			}
			scores[i] = score
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Settlement{}, err
	}
	if len(seats) == 0 {
		return Settlement{}, fmt.Errorf("no player left at showdown")
	}

	var winners []int
	best := scores[0]
	for i, seat := range seats {
		switch {
		case scores[i] > best:
			best = scores[i]
			winners = []int{seat}
		case scores[i] == best:
			winners = append(winners, seat)
		}
	}

	s := Settlement{
		Winners: winners,
		Hands:   [2][2]Card{t.Players[0].Hand, t.Players[1].Hand},
		Text:    WinnerText(t, winners),
	}
	s.Payouts = Distribute(t, winners)
	t.ResetRound()
	return s, nil
}

// Distribute splits the pot evenly among winners; the first winner also
// takes the remainder of the division. The pot is emptied.
func Distribute(t *Table, winners []int) []uint {
	if len(winners) == 0 {
		return nil
	}
	share := t.Pot / uint(len(winners))
	remainder := t.Pot % uint(len(winners))
	payouts := make([]uint, len(winners))
	for i, w := range winners {
		payouts[i] = share
		if i == 0 {
			payouts[i] += remainder
		}
		t.Players[w].Chips += payouts[i]
	}
	t.Pot = 0
	return payouts
}

// WinnerText is the announcement for a showdown.
func WinnerText(t *Table, winners []int) string {
	if len(winners) == 1 {
		return "Winner: " + t.Players[winners[0]].Name
	}
	names := make([]string, len(winners))
	for i, w := range winners {
		names[i] = t.Players[w].Name
	}
	return "Split pot: " + strings.Join(names, ", ")
}
