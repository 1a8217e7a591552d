package communication

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/luca-patrignani/heads-up-poker/domain/poker"
	"github.com/luca-patrignani/heads-up-poker/network"
)

// Conn speaks the table protocol over a stream. Every Send returns once the
// record is flushed, so records arrive in the order they were sent.
type Conn struct {
	stream network.Stream
	logger *slog.Logger
}

func NewConn(stream network.Stream, logger *slog.Logger) *Conn {
	if logger == nil {
		logger = slog.Default()
	}
	return &Conn{stream: stream, logger: logger}
}

func (c *Conn) Close() error {
	return c.stream.Close()
}

// Send writes one record.
func (c *Conn) Send(m Message) error {
	op := "send " + string(m.Kind)
	if err := m.validate(); err != nil {
		return Fail(op, err)
	}
	b, err := json.Marshal(m)
	if err != nil {
		return Fail(op, err)
	}
	if err := c.stream.WriteFrame(b); err != nil {
		return Fail(op, err)
	}
	c.logger.Debug("record sent", "kind", m.Kind)
	return nil
}

// Receive blocks until the next record arrives.
func (c *Conn) Receive() (Message, error) {
	b, err := c.stream.ReadFrame()
	if err != nil {
		return Message{}, Fail("receive", err)
	}
	var m Message
	if err := json.Unmarshal(b, &m); err != nil {
		return Message{}, Fail("receive", fmt.Errorf("%w: %v", ErrMalformedRecord, err))
	}
	if err := m.validate(); err != nil {
		return Message{}, Fail("receive", err)
	}
	c.logger.Debug("record received", "kind", m.Kind)
	return m, nil
}

// Expect receives the next record and fails unless it has one of kinds.
func (c *Conn) Expect(kinds ...Kind) (Message, error) {
	m, err := c.Receive()
	if err != nil {
		return Message{}, err
	}
	for _, k := range kinds {
		if m.Kind == k {
			return m, nil
		}
	}
	return Message{}, &ProtocolError{
		Op:  fmt.Sprintf("receive %v", kinds),
		Err: fmt.Errorf("%w: got %s", ErrUnexpectedKind, m.Kind),
	}
}

func (c *Conn) SendAction(a poker.Action) error {
	return c.Send(Message{Kind: KindAction, Action: &a})
}

func (c *Conn) ReceiveAction() (poker.Action, error) {
	m, err := c.Expect(KindAction)
	if err != nil {
		return poker.Action{}, err
	}
	return *m.Action, nil
}

// SendCards writes one record per card.
func (c *Conn) SendCards(cards ...poker.Card) error {
	for _, card := range cards {
		if err := c.Send(Message{Kind: KindCard, Card: &card}); err != nil {
			return err
		}
	}
	return nil
}

func (c *Conn) ReceiveCard() (poker.Card, error) {
	m, err := c.Expect(KindCard)
	if err != nil {
		return poker.Card{}, err
	}
	return *m.Card, nil
}

// ReceiveCards reads exactly n card records.
func (c *Conn) ReceiveCards(n int) ([]poker.Card, error) {
	cards := make([]poker.Card, 0, n)
	for range n {
		card, err := c.ReceiveCard()
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// SendStatus broadcasts the chip snapshot. It is for display only.
func (c *Conn) SendStatus(lines []string) error {
	return c.Send(Message{Kind: KindStatus, Status: lines})
}

func (c *Conn) ReceiveStatus() ([]string, error) {
	m, err := c.Expect(KindStatus)
	if err != nil {
		return nil, err
	}
	return m.Status, nil
}

func (c *Conn) SendResult(r Result) error {
	return c.Send(Message{Kind: KindResult, Result: &r})
}

func (c *Conn) ReceiveResult() (Result, error) {
	m, err := c.Expect(KindResult)
	if err != nil {
		return Result{}, err
	}
	return *m.Result, nil
}

func (c *Conn) SendHello(h Hello) error {
	return c.Send(Message{Kind: KindHello, Hello: &h})
}

func (c *Conn) ReceiveHello() (Hello, error) {
	m, err := c.Expect(KindHello)
	if err != nil {
		return Hello{}, err
	}
	return *m.Hello, nil
}

func (c *Conn) SendRoundStart(round int) error {
	return c.Send(Message{Kind: KindRoundStart, Round: round})
}

func (c *Conn) SendSessionEnd(text string) error {
	return c.Send(Message{Kind: KindSessionEnd, Text: text})
}

// ReceiveRoundStart waits for the host to open the next round or to end the
// session. It returns the round number, or 0 and the closing text.
func (c *Conn) ReceiveRoundStart() (int, string, error) {
	m, err := c.Expect(KindRoundStart, KindSessionEnd)
	if err != nil {
		return 0, "", err
	}
	if m.Kind == KindSessionEnd {
		return 0, m.Text, nil
	}
	return m.Round, "", nil
}
