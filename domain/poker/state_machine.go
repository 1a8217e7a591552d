package poker

import "fmt"

// BettingState is the state of a Resolver.
type BettingState int

const (
	AwaitingFirstAction BettingState = iota
	AwaitingResponse
	Resolved
	Folded
)

func (s BettingState) String() string {
	switch s {
	case AwaitingFirstAction:
		return "awaiting first action"
	case AwaitingResponse:
		return "awaiting response"
	case Resolved:
		return "resolved"
	case Folded:
		return "folded"
	default:
		return fmt.Sprintf("BettingState(%d)", int(s))
	}
}

// Resolver is the betting state machine of one stage. Both peers run one
// per stage over their own Table and feed it the same actions in the same
// order, so they agree on who acts next and on the pot.
type Resolver struct {
	table       *Table
	state       BettingState
	actor       int
	contributed [2]uint
	raises      int
	winner      int
}

// NewResolver opens a betting sub-round. The host acts first.
func NewResolver(table *Table) *Resolver {
	return &Resolver{
		table:  table,
		state:  AwaitingFirstAction,
		actor:  HostSeat,
		winner: -1,
	}
}

func (r *Resolver) State() BettingState {
	return r.state
}

// Actor returns the seat that must act next.
func (r *Resolver) Actor() int {
	return r.actor
}

// Done reports whether the sub-round is over, either resolved or folded.
func (r *Resolver) Done() bool {
	return r.state == Resolved || r.state == Folded
}

// Winner returns the seat left in after a fold, or -1.
func (r *Resolver) Winner() int {
	return r.winner
}

// ToCall is what the actor must add to match the opponent this stage.
func (r *Resolver) ToCall() uint {
	mine := r.contributed[r.actor]
	theirs := r.contributed[Opponent(r.actor)]
	if theirs <= mine {
		return 0
	}
	return theirs - mine
}

// Allowed lists the action kinds the actor may choose.
func (r *Resolver) Allowed() []ActionType {
	switch {
	case r.Done():
		return nil
	case r.state == AwaitingFirstAction || r.ToCall() == 0:
		return []ActionType{ActionCheck, ActionBet, ActionFold}
	case r.raises >= MaxRaises:
		return []ActionType{ActionCall, ActionFold}
	default:
		return []ActionType{ActionCall, ActionRaise, ActionFold}
	}
}

// Apply validates and applies one action of seat. Wagers leave the player's
// stack and enter the pot immediately. On error nothing changes.
func (r *Resolver) Apply(seat int, a Action) error {
	if err := r.CheckAction(seat, a); err != nil {
		return err
	}
	cost := r.cost(seat, a)
	player := &r.table.Players[seat]
	player.Chips -= cost
	r.table.Pot += cost
	r.contributed[seat] += cost

	switch a.Type {
	case ActionFold:
		player.HasFolded = true
		r.winner = Opponent(seat)
		r.state = Folded
		return nil
	case ActionCheck:
		if r.state == AwaitingFirstAction {
			r.state = AwaitingResponse
		} else {
			r.state = Resolved
			return nil
		}
	case ActionCall:
		r.state = Resolved
		return nil
	case ActionRaise:
		r.raises++
		r.state = AwaitingResponse
	case ActionBet:
		r.state = AwaitingResponse
	}
	r.actor = Opponent(seat)
	return nil
}
