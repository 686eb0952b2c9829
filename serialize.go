// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// Sentinel errors for the malformed-input cases the loader can detect
// (spec.md §7, "Malformed binary input"). Each is wrapped with
// github.com/pkg/errors to carry the offending detail without losing
// the sentinel for errors.Is-style matching.
var (
	ErrBadMagic           = errors.New("robdd: bad magic")
	ErrUnsupportedVersion = errors.New("robdd: unsupported version")
	ErrLengthMismatch     = errors.New("robdd: length mismatch")
	ErrForwardReference   = errors.New("robdd: forward reference")
	ErrDanglingReference  = errors.New("robdd: dangling reference")
	ErrTruncatedStream    = errors.New("robdd: truncated stream")
)

var magic = [6]byte{'I', 'P', ' ', 's', 'e', 't'}

const formatVersion uint16 = 0x0001

const headerSize = 6 + 2 + 8 + 4 // magic + version + length + node_count
const recordSize = 1 + 4 + 4     // variable + low + high

// Encoder turns a terminal value into its inline int32 encoding for
// the binary format; the result must be non-negative, since
// non-negative child references are reserved for inline terminals.
type Encoder[T comparable] func(value T) int32

// Decoder is the inverse of Encoder, used while loading.
type Decoder[T comparable] func(code int32) (T, error)

// Save writes the canonical binary encoding (spec.md §6.3) of the BDD
// rooted at root to w: a six-byte magic, the format version, the
// total record length, a node count, and then one 9-byte record per
// reachable nonterminal in post-order, followed by a trailing inline
// terminal value when the BDD is just a single terminal.
func Save[T comparable](w io.Writer, c *Cache[T], root ID, encode Encoder[T]) error {
	nodes := Allnodes(c, root)
	position := make(map[ID]int32, len(nodes)) // 1-indexed emission order
	for i, id := range nodes {
		position[id] = int32(i + 1)
	}

	var body bytes.Buffer
	for _, id := range nodes {
		level, low, high := c.NonterminalFields(id)
		if level > 0xFF {
			return errors.Errorf("robdd: variable index %d does not fit in one byte", level)
		}
		body.WriteByte(byte(level))
		writeRef(&body, c, low, position, encode)
		writeRef(&body, c, high, position, encode)
	}

	trailing := len(nodes) == 0
	totalLength := uint64(headerSize + body.Len())
	if trailing {
		totalLength += 4
	}

	var header bytes.Buffer
	header.Write(magic[:])
	binary.Write(&header, binary.BigEndian, formatVersion)
	binary.Write(&header, binary.BigEndian, totalLength)
	binary.Write(&header, binary.BigEndian, uint32(len(nodes)))

	if _, err := w.Write(header.Bytes()); err != nil {
		return errors.Wrap(err, "robdd: writing header")
	}
	if _, err := w.Write(body.Bytes()); err != nil {
		return errors.Wrap(err, "robdd: writing records")
	}
	if trailing {
		value := encode(c.TerminalValue(root))
		if err := binary.Write(w, binary.BigEndian, value); err != nil {
			return errors.Wrap(err, "robdd: writing trailing terminal")
		}
	}
	return nil
}

func writeRef[T comparable](body *bytes.Buffer, c *Cache[T], child ID, position map[ID]int32, encode Encoder[T]) {
	var ref int32
	if child.IsTerminal() {
		ref = encode(c.TerminalValue(child))
	} else {
		ref = -position[child]
	}
	binary.Write(body, binary.BigEndian, ref)
}

// Load reads a binary encoding written by Save, interning every node
// into c, and returns the id of the reconstructed root. The cache is
// left unmodified if an error is returned (spec.md §7).
func Load[T comparable](r io.Reader, c *Cache[T], decode Decoder[T]) (ID, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return 0, errors.Wrap(err, "robdd: reading stream")
	}
	if len(raw) < headerSize {
		return 0, errors.Wrapf(ErrTruncatedStream, "got %d bytes, want at least %d", len(raw), headerSize)
	}

	if !bytes.Equal(raw[0:6], magic[:]) {
		return 0, errors.Wrapf(ErrBadMagic, "got %q", raw[0:6])
	}
	version := binary.BigEndian.Uint16(raw[6:8])
	if version != formatVersion {
		return 0, errors.Wrapf(ErrUnsupportedVersion, "got %#04x", version)
	}
	totalLength := binary.BigEndian.Uint64(raw[8:16])
	if totalLength != uint64(len(raw)) {
		return 0, errors.Wrapf(ErrLengthMismatch, "header says %d, stream has %d", totalLength, len(raw))
	}
	nodeCount := binary.BigEndian.Uint32(raw[16:20])

	offset := headerSize
	want := offset + int(nodeCount)*recordSize
	if nodeCount == 0 {
		want += 4
	}
	if len(raw) < want {
		return 0, errors.Wrapf(ErrTruncatedStream, "got %d bytes, want %d", len(raw), want)
	}

	if nodeCount == 0 {
		code := int32(binary.BigEndian.Uint32(raw[offset : offset+4]))
		value, err := decode(code)
		if err != nil {
			return 0, errors.Wrap(err, "robdd: decoding trailing terminal")
		}
		return c.Terminal(value), nil
	}

	ids := make([]ID, nodeCount)
	// Check every record before interning anything, so that a
	// malformed stream leaves c unmodified.
	for i := 0; i < int(nodeCount); i++ {
		rec := raw[offset+i*recordSize : offset+(i+1)*recordSize]
		for _, ref := range [2]int32{int32(binary.BigEndian.Uint32(rec[1:5])), int32(binary.BigEndian.Uint32(rec[5:9]))} {
			if ref >= 0 {
				if _, err := decode(ref); err != nil {
					return 0, errors.Wrapf(err, "robdd: decoding inline terminal %d", ref)
				}
			} else if _, err := resolveRef(ref, i, ids, decode, c); err != nil {
				return 0, err
			}
		}
	}
	for i := 0; i < int(nodeCount); i++ {
		rec := raw[offset : offset+recordSize]
		offset += recordSize

		level := int32(rec[0])
		low := int32(binary.BigEndian.Uint32(rec[1:5]))
		high := int32(binary.BigEndian.Uint32(rec[5:9]))

		lowID, err := resolveRef(low, i, ids, decode, c)
		if err != nil {
			return 0, err
		}
		highID, err := resolveRef(high, i, ids, decode, c)
		if err != nil {
			return 0, err
		}
		ids[i] = c.Nonterminal(level, lowID, highID)
	}
	return ids[nodeCount-1], nil
}

func resolveRef[T comparable](ref int32, current int, ids []ID, decode Decoder[T], c *Cache[T]) (ID, error) {
	if ref >= 0 {
		value, err := decode(ref)
		if err != nil {
			return 0, errors.Wrapf(err, "robdd: decoding inline terminal %d", ref)
		}
		return c.Terminal(value), nil
	}
	k := int(-ref) // 1-indexed
	if k < 1 || k > len(ids) {
		return 0, errors.Wrapf(ErrDanglingReference, "record %d references emission %d, out of range", current, k)
	}
	if k > current {
		return 0, errors.Wrapf(ErrForwardReference, "record %d references emission %d, not yet written", current, k)
	}
	return ids[k-1], nil
}
