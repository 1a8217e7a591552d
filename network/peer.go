package network

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var ErrListenerClosed = errors.New("listener closed")

// retryInterval is the pause between two dial attempts.
const retryInterval = 100 * time.Millisecond

// Listener accepts the guest's stream on the host side.
type Listener struct {
	l       net.Listener
	opts    Options
	server  *http.Server
	streams chan Stream
	done    chan struct{}
	once    sync.Once
}

// Listen serves on l. With WithWebSocket the listener speaks HTTP and
// upgrades requests on the configured path.
func Listen(l net.Listener, opts ...PeerOption) *Listener {
	ln := &Listener{
		l:    l,
		opts: defaultOptions(opts),
		done: make(chan struct{}),
	}
	if ln.opts.WebSocket {
		ln.streams = make(chan Stream)
		mux := http.NewServeMux()
		mux.Handle(ln.opts.WebSocketPath, tableHandler{streams: ln.streams, done: ln.done})
		ln.server = &http.Server{Handler: mux}
		go func() {
			err := ln.server.Serve(l)
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				panic(err)
			}
		}()
	}
	return ln
}

// Accept blocks until a peer connects.
func (ln *Listener) Accept() (Stream, error) {
	if !ln.opts.WebSocket {
		conn, err := ln.l.Accept()
		if err != nil {
			return nil, err
		}
		return NewFrameStream(conn), nil
	}
	select {
	case s := <-ln.streams:
		return s, nil
	case <-ln.done:
		return nil, ErrListenerClosed
	}
}

func (ln *Listener) Addr() string {
	return ln.l.Addr().String()
}

func (ln *Listener) Close() error {
	ln.once.Do(func() { close(ln.done) })
	if ln.server != nil {
		return ln.server.Shutdown(context.Background())
	}
	return ln.l.Close()
}

// Dial connects to the host at addr, retrying until the host is up or the
// timeout expires.
func Dial(addr string, opts ...PeerOption) (Stream, error) {
	o := defaultOptions(opts)
	start := time.Now()
	for {
		s, err := dialOnce(addr, o)
		if err == nil {
			return s, nil
		}
		if o.Timeout > 0 && time.Since(start) > o.Timeout {
			return nil, fmt.Errorf("connection attempts timed out with error %w", err)
		}
		time.Sleep(retryInterval)
	}
}

func dialOnce(addr string, o Options) (Stream, error) {
	if !o.WebSocket {
		conn, err := net.DialTimeout("tcp", addr, o.Timeout)
		if err != nil {
			return nil, err
		}
		return NewFrameStream(conn), nil
	}
	u := url.URL{Scheme: "ws", Host: addr, Path: o.WebSocketPath}
	dialer := websocket.Dialer{HandshakeTimeout: o.Timeout}
	conn, resp, err := dialer.Dial(u.String(), nil)
	if err != nil {
		return nil, err
	}
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	return NewWebSocketStream(conn), nil
}

// CreateListeners opens n listeners on random localhost ports.
func CreateListeners(n int) (map[int]net.Listener, map[int]string) {
	listeners := make(map[int]net.Listener)
	addresses := make(map[int]string)
	for i := 0; i < n; i++ {
		l, err := net.Listen("tcp", "localhost:0")
		if err != nil {
			panic(err)
		}
		listeners[i] = l
		addresses[i] = l.Addr().String()
	}
	return listeners, addresses
}
