// Package discovery finds open tables on the local network with UDP
// multicast.
//
// A host announces itself while it waits for a guest:
//
//	d, err := discovery.Announce(discovery.Announcement{Name: "Alice", Address: "192.168.1.4:7777"})
//	if err != nil {
//		return err
//	}
//	defer d.Close()
//
// and a guest waits for the first announcement:
//
//	table, err := discovery.FindTable(ctx)
//
// Announcements are sent to 239.0.0.1 on the configured port. Every
// instance tags its packets with a random 8-byte key and ignores its own.
package discovery
