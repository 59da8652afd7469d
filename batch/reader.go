package batch

import (
	"errors"
	"fmt"
	"io"
	"math"
)

const maxPrealloc = 1 << 12

// Reader tokenizes whitespace-delimited decimal integers. It reads one byte
// at a time from an io.ByteScanner and stops right after the delimiter that
// ends a token, so a bufio.Reader handed to it is left positioned at the
// next unread token.
type Reader struct {
	src    io.ByteScanner
	offset int64
}

// NewReader wraps src.
func NewReader(src io.ByteScanner) *Reader {
	return &Reader{src: src}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int64 { return r.offset }

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func (r *Reader) readByte() (byte, error) {
	b, err := r.src.ReadByte()
	if err == nil {
		r.offset++
	}
	return b, err
}

// next returns the next integer, or io.EOF if the stream ends before a
// token starts.
func (r *Reader) next() (int, error) {
	// 1. Skip leading whitespace.
	b, err := r.readByte()
	for err == nil && isSpace(b) {
		b, err = r.readByte()
	}
	if err != nil {
		return 0, err
	}
	start := r.offset

	// 2. Optional sign.
	neg := false
	if b == '+' || b == '-' {
		neg = b == '-'
		if b, err = r.readByte(); err != nil {
			return 0, fmt.Errorf("batch: sign without digits at byte %d: %w", start, ErrTruncated)
		}
	}
	if !isDigit(b) {
		return 0, fmt.Errorf("batch: unexpected byte %q at byte %d: %w", b, r.offset, ErrMalformed)
	}

	// 3. Digits; the byte after them must be whitespace or EOF.
	var v int64
	for {
		v = v*10 + int64(b-'0')
		if v > math.MaxInt32 {
			return 0, fmt.Errorf("batch: integer at byte %d overflows: %w", start, ErrMalformed)
		}
		b, err = r.readByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, err
		}
		if isSpace(b) {
			break
		}
		if !isDigit(b) {
			_ = r.src.UnreadByte()
			r.offset--
			return 0, fmt.Errorf("batch: unexpected byte %q at byte %d: %w", b, r.offset, ErrMalformed)
		}
	}
	if neg {
		v = -v
	}

	return int(v), nil
}

// Int reads one integer. A stream ending before it yields ErrTruncated.
func (r *Reader) Int() (int, error) {
	v, err := r.next()
	if errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("batch: expected integer at byte %d: %w", r.offset, ErrTruncated)
	}
	return v, err
}

// List reads a length-prefixed block. It returns io.EOF if the stream ends
// cleanly before the length token, and ErrTruncated if it ends inside the
// block.
func (r *Reader) List() ([]int, error) {
	length, err := r.next()
	if err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, fmt.Errorf("batch: negative list length %d: %w", length, ErrMalformed)
	}

	// The length is untrusted; grow as items actually arrive.
	list := make([]int, 0, min(length, maxPrealloc))
	var i, v int
	for i = 0; i < length; i++ {
		if v, err = r.Int(); err != nil {
			return nil, fmt.Errorf("batch: list item %d of %d: %w", i+1, length, err)
		}
		list = append(list, v)
	}

	return list, nil
}
