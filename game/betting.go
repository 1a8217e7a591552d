package game

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/luca-patrignani/heads-up-poker/communication"
	"github.com/luca-patrignani/heads-up-poker/domain/poker"
)

// seat is the part of a peer shared by the host and the guest.
type seat struct {
	local  int
	conn   *communication.Conn
	input  Input
	view   View
	logger *slog.Logger
	table  *poker.Table
}

// bet plays one betting stage to the end. Local decisions are checked
// before they are sent; remote ones that the resolver rejects end the round.
func (s *seat) bet(stage poker.Stage) (*poker.Resolver, error) {
	r := poker.NewResolver(s.table)
	for !r.Done() {
		actor := r.Actor()
		name := s.table.Players[actor].Name
		var a poker.Action
		if actor == s.local {
			var err error
			if a, err = s.choose(r, stage); err != nil {
				return nil, err
			}
			if err := s.conn.SendAction(a); err != nil {
				return nil, err
			}
			if err := r.Apply(actor, a); err != nil {
				return nil, err
			}
		} else {
			s.view.Waiting(name)
			var err error
			if a, err = s.conn.ReceiveAction(); err != nil {
				return nil, err
			}
			if err := r.Apply(actor, a); err != nil {
				return nil, communication.Fail("apply "+a.String(), err)
			}
		}
		s.logger.Info("action applied", "stage", stage, "player", name, "action", a.String(), "pot", s.table.Pot)
		s.view.Action(name, a)
	}
	s.logger.Debug("betting closed", "stage", stage, "state", r.State())
	return r, nil
}

// choose asks the local player until a legal action comes back.
func (s *seat) choose(r *poker.Resolver, stage poker.Stage) (poker.Action, error) {
	player := s.table.Players[s.local]
	p := Prompt{
		Stage:   stage,
		Allowed: r.Allowed(),
		ToCall:  r.ToCall(),
		Hand:    player.Hand,
		Board:   append([]poker.Card(nil), s.table.Board...),
		Chips:   player.Chips,
		Pot:     s.table.Pot,
	}
	for {
		a, err := readAction(s.input, p)
		var inputErr *InputError
		if errors.As(err, &inputErr) {
			s.view.Invalid(err)
			continue
		}
		if err != nil {
			return poker.Action{}, err
		}
		if err := r.CheckAction(s.local, a); err != nil {
			s.view.Invalid(&InputError{Input: a.String(), Err: err})
			continue
		}
		return a, nil
	}
}

func readAction(input Input, p Prompt) (poker.Action, error) {
	token, err := input.ChooseAction(p)
	if err != nil {
		return poker.Action{}, err
	}
	t, err := poker.ParseActionType(token)
	if err != nil {
		return poker.Action{}, &InputError{Input: token, Err: err}
	}
	a := poker.Action{Type: t}
	if !t.Wager() {
		return a, nil
	}
	raw, err := input.ChooseAmount(p)
	if err != nil {
		return poker.Action{}, err
	}
	amount, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return poker.Action{}, &InputError{Input: raw, Err: fmt.Errorf("%w: not a number", poker.ErrInvalidAmount)}
	}
	if amount == 0 {
		return poker.Action{}, &InputError{Input: raw, Err: fmt.Errorf("%w: must be positive", poker.ErrInvalidAmount)}
	}
	a.Amount = uint(amount)
	return a, nil
}
