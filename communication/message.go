package communication

import (
	"fmt"

	"github.com/luca-patrignani/heads-up-poker/domain/poker"
)

// Kind tags every record on the wire.
type Kind string

const (
	KindHello      Kind = "hello"
	KindRoundStart Kind = "round_start"
	KindSessionEnd Kind = "session_end"
	KindCard       Kind = "card"
	KindAction     Kind = "action"
	KindStatus     Kind = "status"
	KindResult     Kind = "result"
)

// Message is the envelope of every record. Exactly the payload matching
// Kind is set.
type Message struct {
	Kind   Kind          `json:"kind"`
	Hello  *Hello        `json:"hello,omitempty"`
	Round  int           `json:"round,omitempty"`
	Text   string        `json:"text,omitempty"`
	Card   *poker.Card   `json:"card,omitempty"`
	Action *poker.Action `json:"action,omitempty"`
	Status []string      `json:"status,omitempty"`
	Result *Result       `json:"result,omitempty"`
}

// Hello opens the session. The guest sends its name; the host answers with
// its own name, the session id and the starting stack.
type Hello struct {
	Name      string `json:"name"`
	SessionID string `json:"session_id,omitempty"`
	Chips     uint   `json:"chips,omitempty"`
}

// Result closes a round.
type Result struct {
	Fold    bool            `json:"fold"`
	Text    string          `json:"text"`
	Winners []int           `json:"winners"`
	Chips   []string        `json:"chips"`
	Hands   [][2]poker.Card `json:"hands,omitempty"`
}

func (m Message) validate() error {
	switch m.Kind {
	case KindHello:
		if m.Hello == nil {
			return fmt.Errorf("%w: hello without payload", ErrMalformedRecord)
		}
	case KindRoundStart:
		if m.Round <= 0 {
			return fmt.Errorf("%w: round number %d", ErrMalformedRecord, m.Round)
		}
	case KindSessionEnd:
	case KindCard:
		if m.Card == nil || m.Card.IsFaceDown() {
			return fmt.Errorf("%w: card without value", ErrMalformedRecord)
		}
	case KindAction:
		if m.Action == nil {
			return fmt.Errorf("%w: action without payload", ErrMalformedRecord)
		}
		if _, err := poker.ParseActionType(string(m.Action.Type)); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedRecord, err)
		}
	case KindStatus:
	case KindResult:
		if m.Result == nil {
			return fmt.Errorf("%w: result without payload", ErrMalformedRecord)
		}
		for _, w := range m.Result.Winners {
			if w != poker.HostSeat && w != poker.GuestSeat {
				return fmt.Errorf("%w: winner seat %d", ErrMalformedRecord, w)
			}
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrMalformedRecord, m.Kind)
	}
	return nil
}
