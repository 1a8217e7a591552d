// Package network provides the ordered stream between the host and the
// guest of a heads-up table.
//
// # Core Components
//
// Stream: an ordered, bidirectional sequence of frames. Frames are written
// and read whole, in order.
//
// FrameStream: a Stream over any byte connection. Each frame is prefixed by
// its length encoded as a protobuf varint.
//
// WebSocketStream: a Stream carrying one frame per binary websocket message.
//
// Listener: the host side. It accepts one stream per connecting guest,
// either over plain TCP or by upgrading HTTP requests to websockets.
//
// # Dialing
//
// Dial retries until the host answers or the configured timeout expires, so
// the guest may be started before the host.
package network
