package plistutil

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"howett.net/plist"

	commonerrors "github.com/deploymenttheory/go-fscheck/internal/common/errors"
)

type sample struct {
	Name  string `plist:"name"`
	Count int    `plist:"count"`
}

func TestEncodeFormats(t *testing.T) {
	tests := []struct {
		format Format
		want   int
	}{
		{FormatXML, plist.XMLFormat},
		{FormatBinary, plist.BinaryFormat},
		{FormatGNUStep, plist.GNUStepFormat},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, sample{Name: "root", Count: 3}, tt.format); err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			var got sample
			detected, err := plist.Unmarshal(buf.Bytes(), &got)
			if err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if detected != tt.want {
				t.Errorf("detected format %d, want %d", detected, tt.want)
			}
			if got != (sample{Name: "root", Count: 3}) {
				t.Errorf("decoded %+v", got)
			}
		})
	}
}

func TestEncodeOpenStep(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, sample{Name: "root", Count: 3}, FormatOpenStep); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "{") || !strings.Contains(buf.String(), "root") {
		t.Errorf("unexpected OpenStep output:\n%s", buf.String())
	}
}

func TestEncodeXMLIsIndented(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, sample{Name: "a"}, FormatXML); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "\n\t<dict>\n") || !strings.Contains(out, "\n\t\t<key>name</key>") {
		t.Errorf("XML output is not tab indented:\n%s", out)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"", FormatXML, false},
		{"XML", FormatXML, false},
		{"binary", FormatBinary, false},
		{"openstep", FormatOpenStep, false},
		{"gnustep", FormatGNUStep, false},
		{"yaml", FormatXML, true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.name)
		if tt.wantErr {
			if !errors.Is(err, commonerrors.ErrUnsupportedFormat) {
				t.Errorf("ParseFormat(%q) error = %v, want ErrUnsupportedFormat", tt.name, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", tt.name, got, err, tt.want)
		}
		if tt.name != "" && got.String() != strings.ToLower(tt.name) {
			t.Errorf("%v.String() = %q, want %q", got, got.String(), strings.ToLower(tt.name))
		}
	}
}
