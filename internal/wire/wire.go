// Package wire defines the binary envelope for collection cache entries.
// Entity payloads are codec-owned and stored verbatim; only the collection
// entry - an identifier list plus ordering metadata - has a fixed layout.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	version        byte = 1
	kindCollection byte = 1

	flagOrdered byte = 1 << 0
	flagKeys    byte = 1 << 1
)

var (
	ErrCorrupt = errors.New("collcache: corrupt collection entry")
	magic4     = [...]byte{'C', 'O', 'L', 'L'}
)

// Entry is the flat form of one cached collection: the member identifier
// sequence, optional per-position index tokens (Keys), and whether the
// sequence order is semantically significant.
type Entry struct {
	Ordered     bool
	Identifiers []string
	Keys        []string // explicit index tokens; nil for dense positional entries
}

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Layout:
//
//	magic(4) | ver(1) | kind(1) | flags(1) | n(u32 be)
//	idLen(u16 be) | id(idLen)            * n
//	keyLen(u16 be) | key(keyLen)         * n   (only when flagKeys set)
func EncodeEntry(e Entry) ([]byte, error) {
	if e.Keys != nil && len(e.Keys) != len(e.Identifiers) {
		return nil, fmt.Errorf("collcache: entry has %d keys for %d identifiers", len(e.Keys), len(e.Identifiers))
	}

	total := 4 + 1 + 1 + 1 + 4
	for _, id := range e.Identifiers {
		total += 2 + len(id)
	}
	for _, k := range e.Keys {
		total += 2 + len(k)
	}

	var buf bytes.Buffer
	buf.Grow(total)

	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.WriteByte(kindCollection)

	var flags byte
	if e.Ordered {
		flags |= flagOrdered
	}
	if e.Keys != nil {
		flags |= flagKeys
	}
	buf.WriteByte(flags)

	var u4 [4]byte
	var u2 [2]byte

	binary.BigEndian.PutUint32(u4[:], uint32(len(e.Identifiers)))
	buf.Write(u4[:])

	for _, id := range e.Identifiers {
		if l := len(id); l == 0 || l > 0xFFFF {
			return nil, fmt.Errorf("collcache: invalid identifier length %d", l)
		}
		binary.BigEndian.PutUint16(u2[:], uint16(len(id)))
		buf.Write(u2[:])
		buf.WriteString(id)
	}
	for _, k := range e.Keys {
		if len(k) > 0xFFFF {
			return nil, fmt.Errorf("collcache: invalid key token length %d", len(k))
		}
		binary.BigEndian.PutUint16(u2[:], uint16(len(k)))
		buf.Write(u2[:])
		buf.WriteString(k)
	}

	return buf.Bytes(), nil
}

func DecodeEntry(b []byte) (Entry, error) {
	const hdr = 4 + 1 + 1 + 1 + 4
	if len(b) < hdr || !hasMagic(b) || b[4] != version || b[5] != kindCollection {
		return Entry{}, ErrCorrupt
	}

	flags := b[6]
	off := 7

	n := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	if n < 0 {
		return Entry{}, ErrCorrupt
	}

	e := Entry{
		Ordered:     flags&flagOrdered != 0,
		Identifiers: make([]string, 0, n),
	}

	for i := 0; i < n; i++ {
		if off+2 > len(b) {
			return Entry{}, ErrCorrupt
		}
		l := int(binary.BigEndian.Uint16(b[off : off+2]))
		off += 2
		if l <= 0 || l > len(b)-off {
			return Entry{}, ErrCorrupt
		}
		e.Identifiers = append(e.Identifiers, string(b[off:off+l]))
		off += l
	}

	if flags&flagKeys != 0 {
		e.Keys = make([]string, 0, n)
		for i := 0; i < n; i++ {
			if off+2 > len(b) {
				return Entry{}, ErrCorrupt
			}
			l := int(binary.BigEndian.Uint16(b[off : off+2]))
			off += 2
			if l > len(b)-off {
				return Entry{}, ErrCorrupt
			}
			e.Keys = append(e.Keys, string(b[off:off+l]))
			off += l
		}
	}

	if off != len(b) {
		return Entry{}, ErrCorrupt
	}
	return e, nil
}
