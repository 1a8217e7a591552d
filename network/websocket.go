package network

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

var ErrNotBinary = errors.New("websocket message is not binary")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocketStream carries one frame per binary websocket message.
type WebSocketStream struct {
	conn *websocket.Conn
}

func NewWebSocketStream(conn *websocket.Conn) *WebSocketStream {
	conn.SetReadLimit(MaxFrameSize)
	return &WebSocketStream{conn: conn}
}

func (s *WebSocketStream) WriteFrame(frame []byte) error {
	if len(frame) > MaxFrameSize {
		return fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, len(frame))
	}
	return s.conn.WriteMessage(websocket.BinaryMessage, frame)
}

func (s *WebSocketStream) ReadFrame() ([]byte, error) {
	mt, data, err := s.conn.ReadMessage()
	if err != nil {
		if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			return nil, io.EOF
		}
		return nil, err
	}
	if mt != websocket.BinaryMessage {
		return nil, ErrNotBinary
	}
	return data, nil
}

// Close sends a normal closure before dropping the connection.
func (s *WebSocketStream) Close() error {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	err := s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	if errors.Is(err, websocket.ErrCloseSent) {
		err = nil
	}
	return errors.Join(err, s.conn.Close())
}

// tableHandler upgrades the incoming request and hands the stream to Accept.
type tableHandler struct {
	streams chan<- Stream
	done    <-chan struct{}
}

func (h tableHandler) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	conn, err := upgrader.Upgrade(rw, req, nil)
	if err != nil {
		return
	}
	select {
	case h.streams <- NewWebSocketStream(conn):
	case <-h.done:
		_ = conn.Close()
	}
}
