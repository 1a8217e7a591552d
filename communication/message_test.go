package communication

import (
	"errors"
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luca-patrignani/heads-up-poker/domain/poker"
	"github.com/luca-patrignani/heads-up-poker/network"
)

func pipe(t *testing.T) (*Conn, *Conn) {
	t.Helper()
	a, b := net.Pipe()
	left := NewConn(network.NewFrameStream(a), nil)
	right := NewConn(network.NewFrameStream(b), nil)
	t.Cleanup(func() {
		left.Close()
		right.Close()
	})
	return left, right
}

// send runs f on its own goroutine, since net.Pipe writes block until read.
func send(f func() error) <-chan error {
	errs := make(chan error, 1)
	go func() { errs <- f() }()
	return errs
}

func TestActionRoundTrip(t *testing.T) {
	host, guest := pipe(t)
	sent := poker.Action{Type: poker.ActionRaise, Amount: 50}
	errs := send(func() error { return host.SendAction(sent) })

	got, err := guest.ReceiveAction()
	require.NoError(t, err)
	require.Equal(t, sent, got)
	require.NoError(t, <-errs)
}

func TestCardsAreIndividualRecords(t *testing.T) {
	host, guest := pipe(t)
	flop := []poker.Card{
		poker.MustCard(poker.Spade, poker.Ace),
		poker.MustCard(poker.Heart, 10),
		poker.MustCard(poker.Club, 2),
	}
	errs := send(func() error { return host.SendCards(flop...) })

	for _, want := range flop {
		got, err := guest.ReceiveCard()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	require.NoError(t, <-errs)
}

func TestReceiveCards(t *testing.T) {
	host, guest := pipe(t)
	hand := []poker.Card{poker.MustCard(poker.Diamond, poker.King), poker.MustCard(poker.Club, poker.Queen)}
	errs := send(func() error { return host.SendCards(hand...) })

	got, err := guest.ReceiveCards(2)
	require.NoError(t, err)
	require.Equal(t, hand, got)
	require.NoError(t, <-errs)
}

func TestUnexpectedKind(t *testing.T) {
	host, guest := pipe(t)
	errs := send(func() error { return host.SendStatus([]string{"Alice: 1000 chips"}) })

	_, err := guest.ReceiveAction()
	var pe *ProtocolError
	require.True(t, errors.As(err, &pe), "got %v", err)
	require.ErrorIs(t, err, ErrUnexpectedKind)
	require.NoError(t, <-errs)
}

func TestMalformedRecords(t *testing.T) {
	tests := []struct {
		name  string
		frame string
	}{
		{"not json", "{"},
		{"unknown kind", `{"kind":"chat"}`},
		{"action without payload", `{"kind":"action"}`},
		{"unknown action", `{"kind":"action","action":{"type":"allin","amount":3}}`},
		{"card without value", `{"kind":"card","card":{"suit":0,"rank":0}}`},
		{"invalid card", `{"kind":"card","card":{"suit":7,"rank":3}}`},
		{"result with bad seat", `{"kind":"result","result":{"fold":false,"text":"","winners":[4],"chips":null}}`},
		{"round zero", `{"kind":"round_start"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := net.Pipe()
			raw := network.NewFrameStream(a)
			conn := NewConn(network.NewFrameStream(b), nil)
			defer raw.Close()
			defer conn.Close()
			errs := send(func() error { return raw.WriteFrame([]byte(tt.frame)) })

			_, err := conn.Receive()
			require.ErrorIs(t, err, ErrMalformedRecord)
			require.NoError(t, <-errs)
		})
	}
}

func TestClosedStream(t *testing.T) {
	host, guest := pipe(t)
	require.NoError(t, host.Close())

	_, err := guest.ReceiveAction()
	var pe *ProtocolError
	require.True(t, errors.As(err, &pe), "got %v", err)
	require.ErrorIs(t, err, io.EOF)
}

func TestSendRejectsInvalid(t *testing.T) {
	host, _ := pipe(t)
	err := host.SendAction(poker.Action{Type: "shove"})
	require.ErrorIs(t, err, ErrMalformedRecord)
}

func TestSessionRecords(t *testing.T) {
	host, guest := pipe(t)
	result := Result{
		Fold:    false,
		Text:    "Winner: Alice",
		Winners: []int{poker.HostSeat},
		Chips:   []string{"Alice: 1100 chips", "Bob: 900 chips"},
		Hands: [][2]poker.Card{
			{poker.MustCard(poker.Spade, poker.Ace), poker.MustCard(poker.Heart, poker.Ace)},
			{poker.MustCard(poker.Club, 2), poker.MustCard(poker.Diamond, 7)},
		},
	}
	errs := send(func() error {
		if err := host.SendHello(Hello{Name: "Alice", SessionID: "s1", Chips: 1000}); err != nil {
			return err
		}
		if err := host.SendRoundStart(1); err != nil {
			return err
		}
		if err := host.SendResult(result); err != nil {
			return err
		}
		return host.SendSessionEnd("Bob is out of chips")
	})

	hello, err := guest.ReceiveHello()
	require.NoError(t, err)
	require.Equal(t, Hello{Name: "Alice", SessionID: "s1", Chips: 1000}, hello)

	round, text, err := guest.ReceiveRoundStart()
	require.NoError(t, err)
	require.Equal(t, 1, round)
	require.Empty(t, text)

	got, err := guest.ReceiveResult()
	require.NoError(t, err)
	require.Equal(t, result, got)

	round, text, err = guest.ReceiveRoundStart()
	require.NoError(t, err)
	require.Zero(t, round)
	require.Equal(t, "Bob is out of chips", text)
	require.NoError(t, <-errs)
}

func TestFail(t *testing.T) {
	err := Fail("receive", io.EOF)
	require.ErrorIs(t, err, io.EOF)
	require.Same(t, err, Fail("again", err))
	require.Equal(t, "protocol: receive: EOF", err.Error())
}
