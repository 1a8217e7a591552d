package network

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protowire"
)

// MaxFrameSize bounds a single frame on the wire.
const MaxFrameSize = 1 << 20

var (
	ErrFrameTooLarge  = errors.New("frame too large")
	ErrMalformedFrame = errors.New("malformed frame")
)

// Stream is an ordered, bidirectional sequence of frames between the two
// peers. WriteFrame returns once the frame has been handed to the
// connection; ReadFrame blocks until a whole frame is available.
type Stream interface {
	WriteFrame(frame []byte) error
	ReadFrame() ([]byte, error)
	Close() error
}

// FrameStream frames a byte stream: every frame is preceded by its length
// as a protobuf varint.
type FrameStream struct {
	conn io.ReadWriteCloser
	r    *bufio.Reader
	w    *bufio.Writer
}

func NewFrameStream(conn io.ReadWriteCloser) *FrameStream {
	return &FrameStream{
		conn: conn,
		r:    bufio.NewReader(conn),
		w:    bufio.NewWriter(conn),
	}
}

func (s *FrameStream) WriteFrame(frame []byte) error {
	if len(frame) > MaxFrameSize {
		return fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, len(frame))
	}
	buf := protowire.AppendBytes(make([]byte, 0, protowire.SizeBytes(len(frame))), frame)
	if _, err := s.w.Write(buf); err != nil {
		return err
	}
	return s.w.Flush()
}

func (s *FrameStream) ReadFrame() ([]byte, error) {
	head := make([]byte, 0, binary.MaxVarintLen64)
	for {
		b, err := s.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && len(head) > 0 {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}
		head = append(head, b)
		if b < 0x80 {
			break
		}
		if len(head) == binary.MaxVarintLen64 {
			return nil, fmt.Errorf("%w: length prefix overflows", ErrMalformedFrame)
		}
	}
	size, n := protowire.ConsumeVarint(head)
	if n < 0 {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFrame, protowire.ParseError(n))
	}
	if size > MaxFrameSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, size)
	}
	frame := make([]byte, size)
	if _, err := io.ReadFull(s.r, frame); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return frame, nil
}

func (s *FrameStream) Close() error {
	return s.conn.Close()
}
