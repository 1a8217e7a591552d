package poker

import (
	"errors"
	"fmt"
	"slices"
)

// MaxRaises caps the raises of a betting sub-round: one raise and one
// re-raise. The player facing the re-raise may only call or fold.
const MaxRaises = 2

var (
	ErrBettingClosed        = errors.New("betting round already closed")
	ErrOutOfTurn            = errors.New("action out of turn")
	ErrIllegalAction        = errors.New("action not allowed now")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrInsufficientChips    = errors.New("insufficient chips")
	ErrExceedsOpponentStack = errors.New("wager exceeds what the opponent can call")
)

// CheckAction verifies that seat may perform a in the resolver's current
// state, without touching the table.
func (r *Resolver) CheckAction(seat int, a Action) error {
	if r.Done() {
		return ErrBettingClosed
	}
	if seat != r.actor {
		return fmt.Errorf("%w: seat %d, expected seat %d", ErrOutOfTurn, seat, r.actor)
	}
	if !slices.Contains(r.Allowed(), a.Type) {
		return fmt.Errorf("%w: %s, choose one of %v", ErrIllegalAction, a.Type, r.Allowed())
	}
	if a.Type.Wager() && a.Amount == 0 {
		return fmt.Errorf("%w: %s needs a positive amount", ErrInvalidAmount, a.Type)
	}
	if !a.Type.Wager() && a.Amount != 0 {
		return fmt.Errorf("%w: %s carries no amount", ErrInvalidAmount, a.Type)
	}
	player := r.table.Players[seat]
	if cost := r.cost(seat, a); cost > player.Chips {
		return fmt.Errorf("%w: %s needs %d, %s has %d", ErrInsufficientChips, a, cost, player.Name, player.Chips)
	}
	if a.Type.Wager() {
		opponent := r.table.Players[Opponent(seat)]
		if a.Amount > opponent.Chips {
			return fmt.Errorf("%w: %s can call at most %d", ErrExceedsOpponentStack, opponent.Name, opponent.Chips)
		}
	}
	return nil
}

// cost is the number of chips a moves from seat's stack into the pot.
func (r *Resolver) cost(seat int, a Action) uint {
	switch a.Type {
	case ActionBet:
		return a.Amount
	case ActionCall:
		return r.ToCall()
	case ActionRaise:
		return r.ToCall() + a.Amount
	default:
		return 0
	}
}
