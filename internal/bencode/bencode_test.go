package bencode

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func decodeOne(t *testing.T, input string) Object {
	t.Helper()
	obj, err := NewDecoder(strings.NewReader(input)).ReadObject()
	if err != nil {
		t.Fatalf("decode %q: %v", input, err)
	}
	return obj
}

func TestDecodeString(t *testing.T) {
	obj := decodeOne(t, "5:hello")
	if obj.Kind != KindString || string(obj.Str) != "hello" {
		t.Fatalf("unexpected object: %+v", obj)
	}

	empty := decodeOne(t, "0:")
	if empty.Kind != KindString || len(empty.Str) != 0 {
		t.Fatalf("unexpected object: %+v", empty)
	}
}

func TestDecodeInteger(t *testing.T) {
	cases := map[string]int64{
		"i0e":    0,
		"i42e":   42,
		"i-7e":   -7,
		"i1234e": 1234,
	}
	for input, want := range cases {
		obj := decodeOne(t, input)
		if obj.Kind != KindInteger || obj.Int != want {
			t.Fatalf("decode %q: got %+v want %d", input, obj, want)
		}
	}
}

func TestDecodeMalformedInteger(t *testing.T) {
	for _, input := range []string{"ie", "i-e", "i-0e", "i01e", "i1x2e"} {
		_, err := NewDecoder(strings.NewReader(input)).ReadObject()
		if !errors.Is(err, ErrBadInteger) {
			t.Fatalf("decode %q: expected ErrBadInteger, got %v", input, err)
		}
	}
}

func TestDecodeIntegerOverflow(t *testing.T) {
	// Values past int64 range must fail loudly, including the window where
	// repeated n*10 wraps back into positive territory.
	for _, input := range []string{
		"i21000000000000000000e",
		"i9223372036854775808e",
		"i-9999999999999999999e",
	} {
		_, err := NewDecoder(strings.NewReader(input)).ReadObject()
		if !errors.Is(err, ErrValueTooLarge) {
			t.Fatalf("decode %q: expected ErrValueTooLarge, got %v", input, err)
		}
	}
}

func TestDecodeIntegerBounds(t *testing.T) {
	max := decodeOne(t, "i9223372036854775807e")
	if max.Int != 9223372036854775807 {
		t.Fatalf("max int64 mangled: %d", max.Int)
	}
	min := decodeOne(t, "i-9223372036854775807e")
	if min.Int != -9223372036854775807 {
		t.Fatalf("negative bound mangled: %d", min.Int)
	}
}

func TestDecodeIntegerLiteralLengthCapped(t *testing.T) {
	input := "i" + strings.Repeat("9", 200) + "e"
	_, err := NewDecoder(strings.NewReader(input)).ReadObject()
	if !errors.Is(err, ErrValueTooLarge) {
		t.Fatalf("expected ErrValueTooLarge, got %v", err)
	}
}

func TestDecodeMalformedLength(t *testing.T) {
	for _, input := range []string{"01:a", "1x:a"} {
		_, err := NewDecoder(strings.NewReader(input)).ReadObject()
		if !errors.Is(err, ErrBadLength) {
			t.Fatalf("decode %q: expected ErrBadLength, got %v", input, err)
		}
	}
}

func TestDecodeList(t *testing.T) {
	obj := decodeOne(t, "l5:helloi7ee")
	if obj.Kind != KindList || len(obj.List) != 2 {
		t.Fatalf("unexpected object: %+v", obj)
	}
	if string(obj.List[0].Str) != "hello" || obj.List[1].Int != 7 {
		t.Fatalf("unexpected items: %+v", obj.List)
	}
}

func TestDecodeDictKeepsWireOrderAndDuplicates(t *testing.T) {
	obj := decodeOne(t, "d1:b1:21:a1:11:b1:3e")
	if obj.Kind != KindDict {
		t.Fatalf("unexpected object: %+v", obj)
	}
	if len(obj.Dict) != 3 {
		t.Fatalf("expected 3 pairs, got %d", len(obj.Dict))
	}
	keys := make([]string, 0, 3)
	for _, pair := range obj.Dict {
		keys = append(keys, string(pair.Key))
	}
	if keys[0] != "b" || keys[1] != "a" || keys[2] != "b" {
		t.Fatalf("unexpected key order: %v", keys)
	}
}

func TestDecodeDictNonStringKey(t *testing.T) {
	_, err := NewDecoder(strings.NewReader("di1e1:ae")).ReadObject()
	if !errors.Is(err, ErrBadDictKey) {
		t.Fatalf("expected ErrBadDictKey, got %v", err)
	}
}

func TestDecodeInvalidPrefix(t *testing.T) {
	_, err := NewDecoder(strings.NewReader("x")).ReadObject()
	if !errors.Is(err, ErrInvalidPrefix) {
		t.Fatalf("expected ErrInvalidPrefix, got %v", err)
	}
}

func TestDecodeTruncatedStream(t *testing.T) {
	for _, input := range []string{"5:hel", "l5:hello", "d1:a", "i12"} {
		_, err := NewDecoder(strings.NewReader(input)).ReadObject()
		if err == nil {
			t.Fatalf("decode %q: expected error", input)
		}
		if IsSyntax(err) {
			t.Fatalf("decode %q: truncation misreported as syntax error: %v", input, err)
		}
		if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Fatalf("decode %q: expected EOF class error, got %v", input, err)
		}
	}
}

func TestDecodeConsumesExactlyOneValue(t *testing.T) {
	r := strings.NewReader("d1:ai1eed1:bi2ee")
	dec := NewDecoder(r)

	first, err := dec.ReadObject()
	if err != nil {
		t.Fatalf("first value: %v", err)
	}
	second, err := dec.ReadObject()
	if err != nil {
		t.Fatalf("second value: %v", err)
	}
	if string(first.Dict[0].Key) != "a" || string(second.Dict[0].Key) != "b" {
		t.Fatalf("unexpected values: %+v %+v", first, second)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	obj := Dict(
		Pair{Key: []byte("ns"), Value: Text("clojure.core")},
		Pair{Key: []byte("line"), Value: Integer(12)},
		Pair{Key: []byte("tags"), Value: List(Text("a"), Text("b"))},
	)

	encoded, err := Marshal(obj)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	decoded, err := NewDecoder(bytes.NewReader(encoded)).ReadObject()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	reencoded, err := Marshal(decoded)
	if err != nil {
		t.Fatalf("re-marshal: %v", err)
	}
	if !bytes.Equal(encoded, reencoded) {
		t.Fatalf("round-trip mismatch: %q vs %q", encoded, reencoded)
	}
}

func TestMarshalDepthCap(t *testing.T) {
	nested := Dict(Pair{
		Key: []byte("a"),
		Value: Dict(Pair{
			Key:   []byte("b"),
			Value: List(Text("too deep")),
		}),
	})

	_, err := Marshal(nested)
	if !errors.Is(err, ErrDepthExceeded) {
		t.Fatalf("expected ErrDepthExceeded, got %v", err)
	}
}

func TestMarshalUnknownKind(t *testing.T) {
	_, err := Marshal(Object{Kind: Kind(99)})
	if !errors.Is(err, ErrBadKind) {
		t.Fatalf("expected ErrBadKind, got %v", err)
	}
	if IsSyntax(err) {
		t.Fatalf("encode-side error misclassified as decode syntax error")
	}
}

func TestGenericProjection(t *testing.T) {
	obj := decodeOne(t, "d3:out5:hello4:linei3e4:valsl1:x1:yee")
	got, ok := Generic(obj).(map[string]any)
	if !ok {
		t.Fatalf("expected map projection")
	}
	if got["out"] != "hello" || got["line"] != int64(3) {
		t.Fatalf("unexpected projection: %#v", got)
	}
	vals, ok := got["vals"].([]any)
	if !ok || len(vals) != 2 || vals[0] != "x" {
		t.Fatalf("unexpected list projection: %#v", got["vals"])
	}
}
