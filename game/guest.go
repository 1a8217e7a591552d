package game

import (
	"fmt"
	"slices"

	"github.com/luca-patrignani/heads-up-poker/communication"
	"github.com/luca-patrignani/heads-up-poker/domain/poker"
)

// Guest joins a host's table. It never deals nor evaluates: it expects the
// records of each stage in order and applies the host's results.
type Guest struct {
	seat
	name    string
	session string
}

func NewGuest(name string, conn *communication.Conn, input Input, view View, opts ...Option) *Guest {
	o := applyOptions(opts)
	return &Guest{
		seat: seat{
			local:  poker.GuestSeat,
			conn:   conn,
			input:  input,
			view:   view,
			logger: o.Logger.With("role", "guest"),
		},
		name: name,
	}
}

// Table returns the guest's copy of the game state. It is nil before the
// handshake.
func (g *Guest) Table() *poker.Table {
	return g.table
}

// Handshake introduces the guest and learns the table setup.
func (g *Guest) Handshake() (string, error) {
	if err := g.conn.SendHello(communication.Hello{Name: g.name}); err != nil {
		return "", err
	}
	hello, err := g.conn.ReceiveHello()
	if err != nil {
		return "", err
	}
	if hello.Chips == 0 {
		return "", communication.Fail("handshake", fmt.Errorf("%w: host offers no chips", communication.ErrMalformedRecord))
	}
	g.table = poker.NewTable(hello.Name, g.name, hello.Chips)
	g.session = hello.SessionID
	g.logger.Info("joined table", "host", hello.Name, "session", g.session, "chips", hello.Chips)
	g.view.Session(g.session, g.table)
	return g.session, nil
}

// Run plays the rounds the host opens until it ends the session.
func (g *Guest) Run() error {
	if _, err := g.Handshake(); err != nil {
		return err
	}
	for {
		round, text, err := g.conn.ReceiveRoundStart()
		if err != nil {
			return err
		}
		if round == 0 {
			g.logger.Info("session over", "reason", text)
			g.view.SessionEnd(text)
			return nil
		}
		o, err := g.PlayRound(round)
		if err != nil {
			return fmt.Errorf("round %d: %w", round, err)
		}
		g.view.Result(o)
	}
}

// PlayRound mirrors one round opened by the host.
func (g *Guest) PlayRound(round int) (Outcome, error) {
	t := g.table
	t.ResetRound()
	hand, err := g.conn.ReceiveCards(2)
	if err != nil {
		return Outcome{}, err
	}
	t.Players[poker.GuestSeat].Hand = [2]poker.Card{hand[0], hand[1]}
	g.view.Hand(t.Players[poker.GuestSeat].Hand)

	o := Outcome{Round: round, Players: [2]string{t.Players[0].Name, t.Players[1].Name}}
	for stage := poker.PreFlop; stage.Betting(); stage = stage.Next() {
		o.Stage = stage
		if err := g.reveal(stage); err != nil {
			return Outcome{}, err
		}
		g.view.Board(stage, t.Board)
		r, err := g.bet(stage)
		if err != nil {
			return Outcome{}, err
		}
		if r.State() == poker.Folded {
			o.Board = slices.Clone(t.Board)
			res, err := g.conn.ReceiveResult()
			if err != nil {
				return Outcome{}, err
			}
			if !res.Fold || !slices.Equal(res.Winners, []int{r.Winner()}) {
				return Outcome{}, communication.Fail("settle fold", fmt.Errorf("%w: host reports winners %v", communication.ErrMalformedRecord, res.Winners))
			}
			o.Result = res
			g.settle(round, res)
			return o, nil
		}
		lines, err := g.conn.ReceiveStatus()
		if err != nil {
			return Outcome{}, err
		}
		g.view.Status(lines)
	}

	o.Stage = poker.Showdown
	o.Board = slices.Clone(t.Board)
	res, err := g.conn.ReceiveResult()
	if err != nil {
		return Outcome{}, err
	}
	if res.Fold || len(res.Winners) == 0 {
		return Outcome{}, communication.Fail("settle showdown", fmt.Errorf("%w: no showdown winner", communication.ErrMalformedRecord))
	}
	if len(res.Hands) == 2 {
		t.Players[poker.HostSeat].Hand = res.Hands[poker.HostSeat]
	}
	o.Result = res
	g.settle(round, res)
	return o, nil
}

// reveal reads the community cards of stage and checks the board size.
func (g *Guest) reveal(stage poker.Stage) error {
	cards, err := g.conn.ReceiveCards(stage.Reveal())
	if err != nil {
		return err
	}
	g.table.Board = append(g.table.Board, cards...)
	if len(g.table.Board) != stage.BoardSize() {
		return communication.Fail("reveal "+string(stage), fmt.Errorf("%w: board has %d cards, expected %d",
			communication.ErrMalformedRecord, len(g.table.Board), stage.BoardSize()))
	}
	return nil
}

// settle pays the host's winners from the guest's own pot.
func (g *Guest) settle(round int, res communication.Result) {
	poker.Distribute(g.table, res.Winners)
	g.table.ResetRound()
	if lines := g.table.ChipLines(); !slices.Equal(lines, res.Chips) {
		g.logger.Warn("chip counts differ from host", "round", round, "local", lines, "host", res.Chips)
	}
	g.logger.Info("round settled", "round", round, "result", res.Text)
}
