package discovery

import (
	"context"
	"encoding/json"
	"errors"
	"net"
)

var ErrNoTable = errors.New("no table found")

// Announcement describes an open table.
type Announcement struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	Transport string `json:"transport,omitempty"`
}

// Announce advertises a table until the returned Discover is closed.
func Announce(a Announcement, opts ...Option) (*Discover, error) {
	info, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return Start(info, opts...)
}

// FindTable waits for the first valid announcement. An announced address
// with an unspecified host is completed with the sender's IP.
func FindTable(ctx context.Context, opts ...Option) (Announcement, error) {
	d, err := Start(nil, opts...)
	if err != nil {
		return Announcement{}, err
	}
	defer d.Close()
	for {
		select {
		case <-ctx.Done():
			return Announcement{}, errors.Join(ErrNoTable, ctx.Err())
		case entry, ok := <-d.Entries:
			if !ok {
				return Announcement{}, ErrNoTable
			}
			a, err := parseAnnouncement(entry)
			if err != nil {
				d.opts.logger.Debug("ignoring announcement", "from", entry.From, "error", err)
				continue
			}
			return a, nil
		}
	}
}

func parseAnnouncement(entry Entry) (Announcement, error) {
	var a Announcement
	if err := json.Unmarshal(entry.Info, &a); err != nil {
		return Announcement{}, err
	}
	host, port, err := net.SplitHostPort(a.Address)
	if err != nil {
		return Announcement{}, err
	}
	if ip := net.ParseIP(host); (host == "" || ip.IsUnspecified()) && entry.From != nil {
		a.Address = net.JoinHostPort(entry.From.IP.String(), port)
	}
	return a, nil
}
