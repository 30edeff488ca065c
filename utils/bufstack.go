package utils

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/pkg/errors"
)

var ErrShortRead = errors.New("unexpected end of stream")

// BufStack is a forward-only little-endian cursor over a loaded file.
// Reads past the end return ErrShortRead wrapped with the offending offset.
type BufStack struct {
	buf  []byte
	pos  int
	name string
}

func NewBufStack(name string, b []byte) *BufStack {
	return &BufStack{
		buf:  b,
		name: name,
	}
}

func (bs *BufStack) Name() string {
	return bs.name
}

func (bs *BufStack) Size() int {
	return len(bs.buf)
}

func (bs *BufStack) Pos() int {
	return bs.pos
}

func (bs *BufStack) EOF() bool {
	return bs.pos >= len(bs.buf)
}

func (bs *BufStack) String() string {
	return fmt.Sprintf("buf(%v)[o:0x%x,s:0x%x]", bs.name, bs.pos, len(bs.buf))
}

func (bs *BufStack) Read(amount int) ([]byte, error) {
	if amount < 0 || bs.pos+amount > len(bs.buf) {
		return nil, errors.Wrapf(ErrShortRead, "reading %d bytes at 0x%x of %v", amount, bs.pos, bs.name)
	}
	oldPos := bs.pos
	bs.pos += amount
	return bs.buf[oldPos:bs.pos], nil
}

func (bs *BufStack) ReadByte() (byte, error) {
	b, err := bs.Read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (bs *BufStack) ReadLU16() (uint16, error) {
	b, err := bs.Read(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (bs *BufStack) ReadLU32() (uint32, error) {
	b, err := bs.Read(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (bs *BufStack) ReadLF() (float32, error) {
	u, err := bs.ReadLU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(u), nil
}

// ReadZString returns the bytes up to the next NUL and consumes the NUL.
func (bs *BufStack) ReadZString() ([]byte, error) {
	l := bytes.IndexByte(bs.buf[bs.pos:], 0)
	if l < 0 {
		return nil, errors.Wrapf(ErrShortRead, "unterminated string at 0x%x of %v", bs.pos, bs.name)
	}
	s := bs.buf[bs.pos : bs.pos+l]
	bs.pos += l + 1
	return s, nil
}
