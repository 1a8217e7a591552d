package discovery

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand/v2"
	"net"
	"sync"
	"time"
)

const (
	multicastIpAddress = "239.0.0.1"
	keySize            = 8
	maxPacketSize      = 1024
)

// Discover sends its payload to the multicast group at a fixed interval and
// delivers the payloads of the other instances on Entries. Entries is
// closed once the Discover is closed.
type Discover struct {
	Entries  chan Entry
	info     []byte
	opts     options
	conn     *net.UDPConn
	sendConn *net.UDPConn
	key      []byte
	done     chan struct{}
	once     sync.Once
}

// Entry is a payload received from another instance.
type Entry struct {
	Info []byte
	From *net.UDPAddr
	Time time.Time
}

// Start joins the multicast group. A nil info only listens.
func Start(info []byte, opts ...Option) (*Discover, error) {
	o := defaultOptions()
	for _, opt := range opts {
		o = opt(o)
	}
	d := &Discover{
		Entries: make(chan Entry, 10),
		info:    info,
		opts:    o,
		key:     []byte(fmt.Sprintf("%08x", rand.Uint32())),
		done:    make(chan struct{}),
	}
	addr, err := net.ResolveUDPAddr("udp", fmt.Sprintf("%s:%d", multicastIpAddress, o.port))
	if err != nil {
		return nil, err
	}
	d.conn, err = net.ListenMulticastUDP("udp", nil, addr)
	if err != nil {
		return nil, err
	}
	if info != nil {
		d.sendConn, err = net.DialUDP("udp", nil, addr)
		if err != nil {
			return nil, errors.Join(err, d.conn.Close())
		}
		go d.announce()
	}
	go d.listen()
	return d, nil
}

// Close leaves the group and stops announcing.
func (d *Discover) Close() error {
	var err error
	d.once.Do(func() {
		close(d.done)
		err = d.conn.Close()
		if d.sendConn != nil {
			err = errors.Join(err, d.sendConn.Close())
		}
	})
	return err
}

func (d *Discover) listen() {
	defer close(d.Entries)
	buffer := make([]byte, maxPacketSize)
	for {
		n, from, err := d.conn.ReadFromUDP(buffer)
		if err != nil {
			if !errors.Is(err, net.ErrClosed) {
				d.opts.logger.Error("discovery stopped listening", "error", err)
			}
			return
		}
		message := buffer[:n]
		if n < keySize || bytes.Equal(message[:keySize], d.key) {
			continue
		}
		entry := Entry{
			Info: bytes.Clone(message[keySize:]),
			From: from,
			Time: time.Now(),
		}
		select {
		case d.Entries <- entry:
		case <-d.done:
			return
		default:
			d.opts.logger.Debug("discovery entry dropped", "from", from)
		}
	}
}

func (d *Discover) announce() {
	ticker := time.NewTicker(d.opts.interval)
	defer ticker.Stop()
	packet := append(bytes.Clone(d.key), d.info...)
	for {
		if _, err := d.sendConn.Write(packet); err != nil {
			if !errors.Is(err, net.ErrClosed) {
				d.opts.logger.Error("discovery stopped announcing", "error", err)
			}
			return
		}
		select {
		case <-ticker.C:
		case <-d.done:
			return
		}
	}
}
