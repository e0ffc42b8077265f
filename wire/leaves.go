package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/jcalabro/leb128"

	"github.com/dhamidi/janus/syntax"
)

// Bytes returns a Void unit that consumes exactly lit when parsing and
// emits lit when printing. Magic numbers and record separators go
// through this.
func Bytes(lit []byte) syntax.Unit[*Cursor, syntax.Void] {
	return bytesLeaf(append([]byte(nil), lit...))
}

type bytesLeaf []byte

func (l bytesLeaf) Parse(c *Cursor) (syntax.Void, error) {
	got, err := c.Take(len(l))
	if err != nil {
		return syntax.Void{}, err
	}
	if !bytes.Equal(got, l) {
		return syntax.Void{}, fmt.Errorf("expected % x, got % x", []byte(l), got)
	}
	return syntax.Void{}, nil
}

func (l bytesLeaf) Print(_ syntax.Void, c *Cursor) error {
	c.InsertFragment(l)
	return nil
}

// U8 returns a unit for a single byte.
func U8() syntax.Unit[*Cursor, uint8] {
	return u8{}
}

type u8 struct{}

func (u8) Parse(c *Cursor) (uint8, error) {
	b, err := c.Take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (u8) Print(v uint8, c *Cursor) error {
	c.InsertFragment([]byte{v})
	return nil
}

// U16 returns a unit for a big-endian two-byte integer.
func U16() syntax.Unit[*Cursor, uint16] {
	return u16{}
}

type u16 struct{}

func (u16) Parse(c *Cursor) (uint16, error) {
	b, err := c.Take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (u16) Print(v uint16, c *Cursor) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	c.InsertFragment(b[:])
	return nil
}

// U32 returns a unit for a big-endian four-byte integer.
func U32() syntax.Unit[*Cursor, uint32] {
	return u32{}
}

type u32 struct{}

func (u32) Parse(c *Cursor) (uint32, error) {
	b, err := c.Take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (u32) Print(v uint32, c *Cursor) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	c.InsertFragment(b[:])
	return nil
}

// Uleb128 returns a unit for unsigned LEB128 varints. Over-long
// encodings (trailing zero groups) are rejected: they decode fine but
// would re-encode shorter, breaking the byte-exact round trip.
func Uleb128() syntax.Unit[*Cursor, uint64] {
	return uleb{}
}

type uleb struct{}

func (uleb) Parse(c *Cursor) (uint64, error) {
	r := bytes.NewReader(c.Rest())
	v, err := leb128.DecodeU64(r)
	if err != nil {
		return 0, fmt.Errorf("uleb128: %w", err)
	}
	n := len(c.Rest()) - r.Len()
	if n != len(leb128.EncodeU64(v)) {
		return 0, fmt.Errorf("uleb128: over-long encoding of %d", v)
	}
	if _, err := c.Take(n); err != nil {
		return 0, err
	}
	return v, nil
}

func (uleb) Print(v uint64, c *Cursor) error {
	c.InsertFragment(leb128.EncodeU64(v))
	return nil
}

// Sleb128 returns a unit for signed LEB128 varints, with the same
// canonical-encoding rule as Uleb128.
func Sleb128() syntax.Unit[*Cursor, int64] {
	return sleb{}
}

type sleb struct{}

func (sleb) Parse(c *Cursor) (int64, error) {
	r := bytes.NewReader(c.Rest())
	v, err := leb128.DecodeS64(r)
	if err != nil {
		return 0, fmt.Errorf("sleb128: %w", err)
	}
	n := len(c.Rest()) - r.Len()
	if n != len(leb128.EncodeS64(v)) {
		return 0, fmt.Errorf("sleb128: over-long encoding of %d", v)
	}
	if _, err := c.Take(n); err != nil {
		return 0, err
	}
	return v, nil
}

func (sleb) Print(v int64, c *Cursor) error {
	c.InsertFragment(leb128.EncodeS64(v))
	return nil
}
