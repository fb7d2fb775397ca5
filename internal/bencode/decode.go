package bencode

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
)

// MaxStringLen caps one byte-string payload so a hostile length prefix
// cannot force an arbitrary allocation.
const MaxStringLen = 1 << 26

// Decoder reads bencode values one at a time from a byte stream. Each
// ReadObject call consumes exactly one complete value; no state is kept
// between calls beyond the stream position.
type Decoder struct {
	r *bufio.Reader
}

func NewDecoder(r io.Reader) *Decoder {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Decoder{r: br}
}

// ReadObject decodes the next value from the stream.
func (d *Decoder) ReadObject() (Object, error) {
	prefix, err := d.r.ReadByte()
	if err != nil {
		return Object{}, fmt.Errorf("bencode: read prefix: %w", err)
	}
	return d.readValue(prefix)
}

// IsSyntax reports whether err is a malformed-input error, as opposed to an
// I/O failure from the underlying stream.
func IsSyntax(err error) bool {
	return errors.Is(err, ErrInvalidPrefix) ||
		errors.Is(err, ErrBadInteger) ||
		errors.Is(err, ErrBadLength) ||
		errors.Is(err, ErrValueTooLarge) ||
		errors.Is(err, ErrBadDictKey)
}

func (d *Decoder) readValue(prefix byte) (Object, error) {
	switch {
	case prefix == 'i':
		return d.readInteger()
	case prefix >= '0' && prefix <= '9':
		return d.readString(prefix)
	case prefix == 'l':
		return d.readList()
	case prefix == 'd':
		return d.readDict()
	default:
		return Object{}, fmt.Errorf("%w: 0x%02x", ErrInvalidPrefix, prefix)
	}
}

// maxIntegerLen bounds an integer literal; int64 needs at most 20 bytes
// including the sign, so anything longer is hostile or garbage.
const maxIntegerLen = 32

func (d *Decoder) readInteger() (Object, error) {
	raw := make([]byte, 0, 20)
	for {
		c, err := d.r.ReadByte()
		if err != nil {
			return Object{}, fmt.Errorf("bencode: read integer: %w", err)
		}
		if c == 'e' {
			break
		}
		if len(raw) >= maxIntegerLen {
			return Object{}, fmt.Errorf("%w: integer literal over %d bytes", ErrValueTooLarge, maxIntegerLen)
		}
		raw = append(raw, c)
	}

	digits := raw
	negative := false
	if len(digits) > 0 && digits[0] == '-' {
		negative = true
		digits = digits[1:]
	}
	if len(digits) == 0 {
		return Object{}, fmt.Errorf("%w: %q", ErrBadInteger, raw)
	}
	if digits[0] == '0' && (negative || len(digits) > 1) {
		return Object{}, fmt.Errorf("%w: %q", ErrBadInteger, raw)
	}

	var n int64
	for _, c := range digits {
		if c < '0' || c > '9' {
			return Object{}, fmt.Errorf("%w: %q", ErrBadInteger, raw)
		}
		digit := int64(c - '0')
		// Checked before multiplying: n*10 can wrap past 2^64 back into
		// positive territory, which a post-hoc comparison misses.
		if n > (math.MaxInt64-digit)/10 {
			return Object{}, fmt.Errorf("%w: integer %q", ErrValueTooLarge, raw)
		}
		n = n*10 + digit
	}
	if negative {
		n = -n
	}
	return Integer(n), nil
}

func (d *Decoder) readString(first byte) (Object, error) {
	length := int64(first - '0')
	sawMore := false
	for {
		c, err := d.r.ReadByte()
		if err != nil {
			return Object{}, fmt.Errorf("bencode: read string length: %w", err)
		}
		if c == ':' {
			break
		}
		if c < '0' || c > '9' {
			return Object{}, fmt.Errorf("%w: unexpected 0x%02x", ErrBadLength, c)
		}
		if first == '0' && !sawMore {
			// "0:" is the only valid length starting with zero.
			return Object{}, fmt.Errorf("%w: leading zero", ErrBadLength)
		}
		sawMore = true
		length = length*10 + int64(c-'0')
		if length > MaxStringLen {
			return Object{}, fmt.Errorf("%w: string of %d bytes", ErrValueTooLarge, length)
		}
	}

	buf := make([]byte, length)
	if _, err := io.ReadFull(d.r, buf); err != nil {
		return Object{}, fmt.Errorf("bencode: read string payload: %w", err)
	}
	return String(buf), nil
}

func (d *Decoder) readList() (Object, error) {
	items := make([]Object, 0, 4)
	for {
		prefix, err := d.r.ReadByte()
		if err != nil {
			return Object{}, fmt.Errorf("bencode: read list: %w", err)
		}
		if prefix == 'e' {
			return Object{Kind: KindList, List: items}, nil
		}
		item, err := d.readValue(prefix)
		if err != nil {
			return Object{}, err
		}
		items = append(items, item)
	}
}

func (d *Decoder) readDict() (Object, error) {
	pairs := make([]Pair, 0, 4)
	for {
		prefix, err := d.r.ReadByte()
		if err != nil {
			return Object{}, fmt.Errorf("bencode: read dict: %w", err)
		}
		if prefix == 'e' {
			return Object{Kind: KindDict, Dict: pairs}, nil
		}
		if prefix < '0' || prefix > '9' {
			return Object{}, fmt.Errorf("%w: prefix 0x%02x", ErrBadDictKey, prefix)
		}
		key, err := d.readString(prefix)
		if err != nil {
			return Object{}, err
		}
		value, err := d.ReadObject()
		if err != nil {
			return Object{}, err
		}
		pairs = append(pairs, Pair{Key: key.Str, Value: value})
	}
}
