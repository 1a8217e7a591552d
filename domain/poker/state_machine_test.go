package poker

import (
	"errors"
	"slices"
	"testing"
)

func newTestTable() *Table {
	return NewTable("Alice", "Bob", 1000)
}

func mustApply(t *testing.T, r *Resolver, seat int, a Action) {
	t.Helper()
	if err := r.Apply(seat, a); err != nil {
		t.Fatalf("seat %d %v: %v", seat, a, err)
	}
}

func TestResolverCheckCheck(t *testing.T) {
	table := newTestTable()
	r := NewResolver(table)
	if r.Actor() != HostSeat {
		t.Fatalf("host must act first, got seat %d", r.Actor())
	}
	mustApply(t, r, HostSeat, Action{Type: ActionCheck})
	if r.State() != AwaitingResponse || r.Actor() != GuestSeat {
		t.Fatalf("unexpected state %v actor %d", r.State(), r.Actor())
	}
	mustApply(t, r, GuestSeat, Action{Type: ActionCheck})
	if r.State() != Resolved {
		t.Fatalf("expected resolved, got %v", r.State())
	}
	if table.Pot != 0 || table.Players[0].Chips != 1000 || table.Players[1].Chips != 1000 {
		t.Fatalf("check-check must not move chips: %+v", table)
	}
}

func TestResolverBetCall(t *testing.T) {
	table := newTestTable()
	r := NewResolver(table)
	mustApply(t, r, HostSeat, Action{Type: ActionBet, Amount: 100})
	if r.ToCall() != 100 {
		t.Fatalf("expected 100 to call, got %d", r.ToCall())
	}
	mustApply(t, r, GuestSeat, Action{Type: ActionCall})
	if r.State() != Resolved {
		t.Fatalf("expected resolved, got %v", r.State())
	}
	if table.Pot != 200 {
		t.Fatalf("expected pot 200, got %d", table.Pot)
	}
	if table.Players[0].Chips != 900 || table.Players[1].Chips != 900 {
		t.Fatalf("expected both stacks at 900, got %d and %d", table.Players[0].Chips, table.Players[1].Chips)
	}
}

func TestResolverFold(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		winner  int
		pot     uint
	}{
		{
			name:    "host folds first",
			actions: []Action{{Type: ActionFold}},
			winner:  GuestSeat,
			pot:     0,
		},
		{
			name:    "guest folds to a bet",
			actions: []Action{{Type: ActionBet, Amount: 50}, {Type: ActionFold}},
			winner:  HostSeat,
			pot:     50,
		},
		{
			name:    "host folds to a raise",
			actions: []Action{{Type: ActionBet, Amount: 50}, {Type: ActionRaise, Amount: 50}, {Type: ActionFold}},
			winner:  GuestSeat,
			pot:     200,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := newTestTable()
			r := NewResolver(table)
			for _, a := range tt.actions {
				mustApply(t, r, r.Actor(), a)
			}
			if r.State() != Folded {
				t.Fatalf("expected folded, got %v", r.State())
			}
			if r.Winner() != tt.winner {
				t.Fatalf("expected winner %d, got %d", tt.winner, r.Winner())
			}
			if table.Pot != tt.pot {
				t.Fatalf("expected pot %d, got %d", tt.pot, table.Pot)
			}
			if !table.Players[Opponent(tt.winner)].HasFolded {
				t.Fatal("loser must be marked folded")
			}
		})
	}
}

func TestResolverRaiseCap(t *testing.T) {
	table := newTestTable()
	r := NewResolver(table)
	mustApply(t, r, HostSeat, Action{Type: ActionBet, Amount: 100})
	mustApply(t, r, GuestSeat, Action{Type: ActionRaise, Amount: 50})
	if !slices.Equal(r.Allowed(), []ActionType{ActionCall, ActionRaise, ActionFold}) {
		t.Fatalf("host may re-raise once, allowed %v", r.Allowed())
	}
	mustApply(t, r, HostSeat, Action{Type: ActionRaise, Amount: 50})
	if !slices.Equal(r.Allowed(), []ActionType{ActionCall, ActionFold}) {
		t.Fatalf("after the re-raise only call or fold, allowed %v", r.Allowed())
	}
	err := r.Apply(GuestSeat, Action{Type: ActionRaise, Amount: 10})
	if !errors.Is(err, ErrIllegalAction) {
		t.Fatalf("expected ErrIllegalAction, got %v", err)
	}
	mustApply(t, r, GuestSeat, Action{Type: ActionCall})
	// host 100+50+50, guest 150+50
	if table.Pot != 400 {
		t.Fatalf("expected pot 400, got %d", table.Pot)
	}
	if table.Players[0].Chips != 800 || table.Players[1].Chips != 800 {
		t.Fatalf("unexpected stacks %d %d", table.Players[0].Chips, table.Players[1].Chips)
	}
}

func TestResolverGuestBetsAfterCheck(t *testing.T) {
	table := newTestTable()
	r := NewResolver(table)
	mustApply(t, r, HostSeat, Action{Type: ActionCheck})
	mustApply(t, r, GuestSeat, Action{Type: ActionBet, Amount: 30})
	if r.Actor() != HostSeat {
		t.Fatalf("host must answer the bet, actor %d", r.Actor())
	}
	if !slices.Equal(r.Allowed(), []ActionType{ActionCall, ActionRaise, ActionFold}) {
		t.Fatalf("unexpected allowed %v", r.Allowed())
	}
	mustApply(t, r, HostSeat, Action{Type: ActionCall})
	if r.State() != Resolved || table.Pot != 60 {
		t.Fatalf("expected resolved with pot 60, got %v %d", r.State(), table.Pot)
	}
}

func TestResolverRejects(t *testing.T) {
	tests := []struct {
		name   string
		setup  []Action
		seat   int
		action Action
		want   error
	}{
		{"guest acts first", nil, GuestSeat, Action{Type: ActionCheck}, ErrOutOfTurn},
		{"call with nothing to call", nil, HostSeat, Action{Type: ActionCall}, ErrIllegalAction},
		{"raise as opening action", nil, HostSeat, Action{Type: ActionRaise, Amount: 10}, ErrIllegalAction},
		{"check facing a bet", []Action{{Type: ActionBet, Amount: 10}}, GuestSeat, Action{Type: ActionCheck}, ErrIllegalAction},
		{"bet without amount", nil, HostSeat, Action{Type: ActionBet}, ErrInvalidAmount},
		{"check with amount", nil, HostSeat, Action{Type: ActionCheck, Amount: 5}, ErrInvalidAmount},
		{"bet above stack", nil, HostSeat, Action{Type: ActionBet, Amount: 1001}, ErrInsufficientChips},
		{"closed round", []Action{{Type: ActionCheck}, {Type: ActionCheck}}, HostSeat, Action{Type: ActionCheck}, ErrBettingClosed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := newTestTable()
			r := NewResolver(table)
			for _, a := range tt.setup {
				mustApply(t, r, r.Actor(), a)
			}
			before := *table
			state := r.State()
			err := r.Apply(tt.seat, tt.action)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if r.State() != state || table.Pot != before.Pot || table.Players != before.Players {
				t.Fatal("a rejected action must not change the state")
			}
		})
	}
}

func TestResolverOpponentStackLimit(t *testing.T) {
	table := newTestTable()
	table.Players[GuestSeat].Chips = 40
	r := NewResolver(table)
	err := r.Apply(HostSeat, Action{Type: ActionBet, Amount: 50})
	if !errors.Is(err, ErrExceedsOpponentStack) {
		t.Fatalf("expected ErrExceedsOpponentStack, got %v", err)
	}
	mustApply(t, r, HostSeat, Action{Type: ActionBet, Amount: 40})
	mustApply(t, r, GuestSeat, Action{Type: ActionCall})
	if table.Players[GuestSeat].Chips != 0 {
		t.Fatalf("guest should be all in, has %d", table.Players[GuestSeat].Chips)
	}
}
