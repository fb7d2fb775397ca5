package nrepl

import (
	"errors"
	"testing"

	"github.com/replkit/replctl/internal/bencode"
)

func TestIsFinal(t *testing.T) {
	final, err := ParseResponse(bencode.Dict(
		bencode.Pair{Key: []byte("status"), Value: bencode.List(bencode.Text("done"))},
	))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	notFinal, err := ParseResponse(bencode.Dict(
		bencode.Pair{Key: []byte("foo"), Value: bencode.Text("")},
	))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if !final.IsFinal() {
		t.Fatalf("status-bearing response not detected as final")
	}
	if notFinal.IsFinal() {
		t.Fatalf("response without status detected as final")
	}
}

func TestIsFinalIgnoresStatusValue(t *testing.T) {
	resp, err := ParseResponse(bencode.Dict(
		bencode.Pair{Key: []byte("status"), Value: bencode.Text("")},
	))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !resp.IsFinal() {
		t.Fatalf("presence of status key should be enough")
	}
}

func TestHasStatus(t *testing.T) {
	resp, err := ParseResponse(bencode.Dict(
		bencode.Pair{Key: []byte("status"), Value: bencode.List(
			bencode.Text("done"), bencode.Text("eval-error"),
		)},
	))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !resp.HasStatus("eval-error") || !resp.HasStatus("done") {
		t.Fatalf("expected both flags present")
	}
	if resp.HasStatus("no-info") {
		t.Fatalf("unexpected flag reported present")
	}

	bare, err := ParseResponse(bencode.Dict(
		bencode.Pair{Key: []byte("status"), Value: bencode.Text("done")},
	))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !bare.HasStatus("done") {
		t.Fatalf("bare string status not matched")
	}
}

func TestParseResponseRejectsDuplicateKey(t *testing.T) {
	_, err := ParseResponse(bencode.Dict(
		bencode.Pair{Key: []byte("status"), Value: bencode.Text("done")},
		bencode.Pair{Key: []byte("status"), Value: bencode.Text("error")},
	))
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestParseResponseRejectsInvalidUTF8Key(t *testing.T) {
	_, err := ParseResponse(bencode.Dict(
		bencode.Pair{Key: []byte{0xff, 0xfe}, Value: bencode.Text("x")},
	))
	if !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("expected ErrInvalidKey, got %v", err)
	}
}

func TestParseResponseRejectsNonDict(t *testing.T) {
	_, err := ParseResponse(bencode.Integer(5))
	if !errors.Is(err, ErrUnexpectedShape) {
		t.Fatalf("expected ErrUnexpectedShape, got %v", err)
	}
}
