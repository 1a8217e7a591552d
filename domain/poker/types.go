package poker

import (
	"fmt"
	"strings"
)

// Seats of a heads-up table. The host always sits at seat 0 and acts first.
const (
	HostSeat  = 0
	GuestSeat = 1
)

type Player struct {
	Name      string
	Chips     uint // stack, persists across rounds
	Hand      [2]Card
	HasFolded bool
}

// Action is a single betting decision as it travels between the peers.
type Action struct {
	Type   ActionType `json:"type"`
	Amount uint       `json:"amount"`
}

type ActionType string

const (
	ActionBet   ActionType = "bet"
	ActionCheck ActionType = "check"
	ActionCall  ActionType = "call"
	ActionRaise ActionType = "raise"
	ActionFold  ActionType = "fold"
)

// ParseActionType maps a typed token to an ActionType.
func ParseActionType(token string) (ActionType, error) {
	switch t := ActionType(strings.ToLower(strings.TrimSpace(token))); t {
	case ActionBet, ActionCheck, ActionCall, ActionRaise, ActionFold:
		return t, nil
	default:
		return "", fmt.Errorf("unknown action %q", token)
	}
}

// Wager reports whether the action carries an amount.
func (a ActionType) Wager() bool {
	return a == ActionBet || a == ActionRaise
}

func (a Action) String() string {
	if a.Amount > 0 {
		return fmt.Sprintf("%s %d", a.Type, a.Amount)
	}
	return string(a.Type)
}

// Table is the game state of a heads-up session: both players, the pot and
// the community cards. It is owned by the orchestrator of one peer and
// handed to the resolver and to settlement.
type Table struct {
	Players [2]Player
	Pot     uint
	Board   []Card
}

// NewTable seats the host and the guest with the same starting stack.
func NewTable(hostName, guestName string, chips uint) *Table {
	return &Table{
		Players: [2]Player{
			{Name: hostName, Chips: chips},
			{Name: guestName, Chips: chips},
		},
	}
}

// Opponent returns the other seat.
func Opponent(seat int) int {
	return 1 - seat
}

// ResetRound clears hands, folded flags, the pot and the board. Stacks are kept.
func (t *Table) ResetRound() {
	for i := range t.Players {
		t.Players[i].Hand = [2]Card{}
		t.Players[i].HasFolded = false
	}
	t.Pot = 0
	t.Board = nil
}

// Active returns the seats that have not folded, in seat order.
func (t *Table) Active() []int {
	var seats []int
	for i, p := range t.Players {
		if !p.HasFolded {
			seats = append(seats, i)
		}
	}
	return seats
}

// Busted reports whether a player has run out of chips.
func (t *Table) Busted() bool {
	for _, p := range t.Players {
		if p.Chips == 0 {
			return true
		}
	}
	return false
}

// StatusLines renders the chip snapshot broadcast after each betting stage.
func (t *Table) StatusLines() []string {
	lines := make([]string, 0, len(t.Players)+1)
	for _, p := range t.Players {
		lines = append(lines, fmt.Sprintf("%s: %d chips", p.Name, p.Chips))
	}
	return append(lines, fmt.Sprintf("Pot: %d", t.Pot))
}

// ChipLines renders every player's balance, without the pot.
func (t *Table) ChipLines() []string {
	lines := make([]string, 0, len(t.Players))
	for _, p := range t.Players {
		lines = append(lines, fmt.Sprintf("%s: %d chips", p.Name, p.Chips))
	}
	return lines
}
