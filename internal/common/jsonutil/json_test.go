package jsonutil

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	commonerrors "github.com/deploymenttheory/go-fscheck/internal/common/errors"
)

type doc struct {
	Name string `json:"name"`
}

func TestEncodeDecode(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, doc{Name: "'<lost+found>'"}); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"name": "'<lost+found>'"`) {
		t.Errorf("unexpected output: %s", buf.String())
	}

	var got doc
	if err := Decode(&buf, &got); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got.Name != "'<lost+found>'" {
		t.Errorf("Name = %q", got.Name)
	}
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	var got doc
	err := Decode(strings.NewReader(`{"name":"a","extra":1}`), &got)
	if !errors.Is(err, commonerrors.ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}
