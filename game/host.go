package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/luca-patrignani/heads-up-poker/communication"
	"github.com/luca-patrignani/heads-up-poker/domain/poker"
)

// Host owns the deck and settles every round. It sits at seat 0 and acts
// first in every stage.
type Host struct {
	seat
	name      string
	deck      Deck
	eval      poker.HandEvaluator
	chips     uint
	maxRounds int
	session   string
}

func NewHost(name string, conn *communication.Conn, deck Deck, input Input, view View, opts ...Option) *Host {
	o := applyOptions(opts)
	return &Host{
		seat: seat{
			local:  poker.HostSeat,
			conn:   conn,
			input:  input,
			view:   view,
			logger: o.Logger.With("role", "host"),
		},
		name:      name,
		deck:      deck,
		eval:      o.Evaluator,
		chips:     o.Chips,
		maxRounds: o.MaxRounds,
	}
}

// Table returns the host's game state. It is nil before the handshake.
func (h *Host) Table() *poker.Table {
	return h.table
}

// Handshake waits for the guest's name and answers with the table setup.
func (h *Host) Handshake() (string, error) {
	hello, err := h.conn.ReceiveHello()
	if err != nil {
		return "", err
	}
	h.table = poker.NewTable(h.name, hello.Name, h.chips)
	h.session = uuid.NewString()
	if err := h.conn.SendHello(communication.Hello{Name: h.name, SessionID: h.session, Chips: h.chips}); err != nil {
		return "", err
	}
	h.logger.Info("guest joined", "guest", hello.Name, "session", h.session, "chips", h.chips)
	h.view.Session(h.session, h.table)
	return h.session, nil
}

// Run plays rounds until the round limit or until a player has no chips
// left, then closes the session.
func (h *Host) Run() error {
	if _, err := h.Handshake(); err != nil {
		return err
	}
	round := 0
	for {
		if h.maxRounds > 0 && round >= h.maxRounds {
			break
		}
		if h.table.Busted() {
			break
		}
		round++
		if err := h.conn.SendRoundStart(round); err != nil {
			return err
		}
		o, err := h.PlayRound(round)
		if err != nil {
			return fmt.Errorf("round %d: %w", round, err)
		}
		h.view.Result(o)
	}
	text := h.closingText(round)
	if err := h.conn.SendSessionEnd(text); err != nil {
		return err
	}
	h.logger.Info("session over", "rounds", round, "reason", text)
	h.view.SessionEnd(text)
	return nil
}

func (h *Host) closingText(rounds int) string {
	for _, p := range h.table.Players {
		if p.Chips == 0 {
			return fmt.Sprintf("%s is out of chips", p.Name)
		}
	}
	return fmt.Sprintf("Played %d rounds", rounds)
}

// PlayRound plays one round. The guest must already know it started.
func (h *Host) PlayRound(round int) (Outcome, error) {
	t := h.table
	t.ResetRound()
	if err := h.deck.Shuffle(); err != nil {
		return Outcome{}, err
	}
	h.deck.ClearTableCards()
	if err := h.dealHands(); err != nil {
		return Outcome{}, err
	}
	h.view.Hand(t.Players[poker.HostSeat].Hand)
	guestHand := t.Players[poker.GuestSeat].Hand
	if err := h.conn.SendCards(guestHand[:]...); err != nil {
		return Outcome{}, err
	}
	h.logger.Debug("hands dealt", "round", round)

	o := Outcome{Round: round, Players: [2]string{t.Players[0].Name, t.Players[1].Name}}
	for stage := poker.PreFlop; stage.Betting(); stage = stage.Next() {
		o.Stage = stage
		if err := h.reveal(stage); err != nil {
			return Outcome{}, err
		}
		h.view.Board(stage, t.Board)
		r, err := h.bet(stage)
		if err != nil {
			return Outcome{}, err
		}
		if r.State() == poker.Folded {
			o.Board = h.deck.TableCards()
			s := poker.SettleFold(t, r.Winner())
			o.Result = communication.Result{Fold: true, Text: s.Text, Winners: s.Winners, Chips: t.ChipLines()}
			h.logger.Info("round settled", "round", round, "stage", stage, "result", s.Text)
			return o, h.conn.SendResult(o.Result)
		}
		lines := t.StatusLines()
		if err := h.conn.SendStatus(lines); err != nil {
			return Outcome{}, err
		}
		h.view.Status(lines)
	}

	o.Stage = poker.Showdown
	o.Board = h.deck.TableCards()
	s, err := poker.SettleShowdown(t, h.eval)
	if err != nil {
		return Outcome{}, err
	}
	o.Result = communication.Result{
		Text:    s.Text,
		Winners: s.Winners,
		Chips:   t.ChipLines(),
		Hands:   [][2]poker.Card{s.Hands[0], s.Hands[1]},
	}
	h.logger.Info("round settled", "round", round, "stage", poker.Showdown, "result", s.Text, "payouts", s.Payouts)
	return o, h.conn.SendResult(o.Result)
}

func (h *Host) dealHands() error {
	for i := range h.table.Players {
		for j := range h.table.Players[i].Hand {
			c, err := h.deck.Deal()
			if err != nil {
				return fmt.Errorf("dealing hands: %w", err)
			}
			h.table.Players[i].Hand[j] = c
		}
	}
	return nil
}

// reveal deals the community cards of stage and sends them one by one.
func (h *Host) reveal(stage poker.Stage) error {
	n := stage.Reveal()
	if n == 0 {
		return nil
	}
	cards := make([]poker.Card, 0, n)
	for range n {
		c, err := h.deck.DealTableCard()
		if err != nil {
			return fmt.Errorf("revealing %s: %w", stage, err)
		}
		cards = append(cards, c)
	}
	h.table.Board = h.deck.TableCards()
	if len(h.table.Board) != stage.BoardSize() {
		return fmt.Errorf("revealing %s: board has %d cards, expected %d", stage, len(h.table.Board), stage.BoardSize())
	}
	h.logger.Debug("cards revealed", "stage", stage, "board", h.table.Board)
	return h.conn.SendCards(cards...)
}
