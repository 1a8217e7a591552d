// Package game runs heads-up rounds between a host and a guest peer. The
// host deals and settles; the guest mirrors the stages from its own state.
// Both peers run the same betting resolver over their own table.
package game

import (
	"fmt"

	"github.com/luca-patrignani/heads-up-poker/communication"
	"github.com/luca-patrignani/heads-up-poker/domain/poker"
)

// Deck is the host's source of cards.
type Deck interface {
	Shuffle() error
	Deal() (poker.Card, error)
	DealTableCard() (poker.Card, error)
	TableCards() []poker.Card
	ClearTableCards()
}

// Prompt is what the local player sees when asked to act.
type Prompt struct {
	Stage   poker.Stage
	Allowed []poker.ActionType
	ToCall  uint
	Hand    [2]poker.Card
	Board   []poker.Card
	Chips   uint
	Pot     uint
}

// Input reads the local player's decisions. ChooseAmount is only asked
// after a bet or a raise.
type Input interface {
	ChooseAction(p Prompt) (string, error)
	ChooseAmount(p Prompt) (string, error)
}

// View renders the round to the local player.
type View interface {
	Session(id string, t *poker.Table)
	Hand(hand [2]poker.Card)
	Board(stage poker.Stage, board []poker.Card)
	Waiting(name string)
	Action(name string, a poker.Action)
	Invalid(err error)
	Status(lines []string)
	Result(o Outcome)
	SessionEnd(text string)
}

// Outcome is a finished round as both peers saw it.
type Outcome struct {
	Round   int
	Stage   poker.Stage // last stage played
	Players [2]string
	Board   []poker.Card
	Result  communication.Result
}

// InputError is a local decision that could not be used. The player is
// asked again; nothing was sent.
type InputError struct {
	Input string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input %q: %v", e.Input, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}
