// Package streamio opens batch inputs that may be compressed and produces
// compressed fixture outputs. The codec of an input is sniffed from its
// first bytes.
package streamio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec identifies a stream compression format.
type Codec uint8

const (
	// CodecNone is plain text.
	CodecNone Codec = iota
	// CodecGzip is RFC 1952 gzip.
	CodecGzip
	// CodecZstd is a zstd frame.
	CodecZstd
	// CodecLZ4 is an LZ4 frame.
	CodecLZ4
)

var (
	magicGzip = []byte{0x1f, 0x8b}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicLZ4  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// ErrUnknownCodec is returned by ParseCodec for an unrecognised name.
var ErrUnknownCodec = errors.New("streamio: unknown codec")

func (c Codec) String() string {
	switch c {
	case CodecNone:
		return "none"
	case CodecGzip:
		return "gzip"
	case CodecZstd:
		return "zstd"
	case CodecLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Codec(%d)", uint8(c))
	}
}

// ParseCodec maps "none", "gzip", "zstd" and "lz4" to a Codec.
func ParseCodec(name string) (Codec, error) {
	switch name {
	case "", "none":
		return CodecNone, nil
	case "gzip":
		return CodecGzip, nil
	case "zstd":
		return CodecZstd, nil
	case "lz4":
		return CodecLZ4, nil
	}
	return CodecNone, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
}

// Sniff reports the codec whose magic number prefixes head.
func Sniff(head []byte) Codec {
	switch {
	case bytes.HasPrefix(head, magicZstd):
		return CodecZstd
	case bytes.HasPrefix(head, magicLZ4):
		return CodecLZ4
	case bytes.HasPrefix(head, magicGzip):
		return CodecGzip
	}
	return CodecNone
}

// Reader is a byte-at-a-time view of a possibly compressed stream.
type Reader struct {
	*bufio.Reader
	codec Codec
	close func() error
}

// Codec reports the detected format.
func (r *Reader) Codec() Codec { return r.codec }

// Close releases the decoder. It does not close the source.
func (r *Reader) Close() error {
	if r.close == nil {
		return nil
	}
	return r.close()
}

// NewReader sniffs src and returns a decoding Reader. Plain input is read
// through a single bufio.Reader so nothing beyond its buffer is consumed.
func NewReader(src io.Reader) (*Reader, error) {
	br := bufio.NewReader(src)
	head, err := br.Peek(len(magicZstd))
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, fmt.Errorf("streamio: sniff: %w", err)
	}

	switch codec := Sniff(head); codec {
	case CodecZstd:
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("streamio: zstd: %w", err)
		}
		return &Reader{
			Reader: bufio.NewReader(dec),
			codec:  codec,
			close:  func() error { dec.Close(); return nil },
		}, nil
	case CodecLZ4:
		return &Reader{Reader: bufio.NewReader(lz4.NewReader(br)), codec: codec}, nil
	case CodecGzip:
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("streamio: gzip: %w", err)
		}
		return &Reader{Reader: bufio.NewReader(zr), codec: codec, close: zr.Close}, nil
	default:
		return &Reader{Reader: br, codec: CodecNone}, nil
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// NewWriter returns a writer that encodes with codec. Close flushes the
// encoder but leaves dst open.
func NewWriter(dst io.Writer, codec Codec) (io.WriteCloser, error) {
	switch codec {
	case CodecNone:
		return nopWriteCloser{dst}, nil
	case CodecGzip:
		return gzip.NewWriter(dst), nil
	case CodecZstd:
		enc, err := zstd.NewWriter(dst, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("streamio: zstd: %w", err)
		}
		return enc, nil
	case CodecLZ4:
		return lz4.NewWriter(dst), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownCodec, codec)
}
