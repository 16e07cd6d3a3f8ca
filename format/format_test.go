package format_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dhamidi/ecmacst/cst"
	"github.com/dhamidi/ecmacst/ecmascript"
	"github.com/dhamidi/ecmacst/engine"
	"github.com/dhamidi/ecmacst/format"
	"github.com/dhamidi/ecmacst/token"
)

func TestJSONEncoderRoundTripsShape(t *testing.T) {
	toks := ecmascript.Tokens([]byte("let x = 1;"))
	p := engine.New(toks)
	root, err := ecmascript.Parse(p, "es2015")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	var buf bytes.Buffer
	if err := format.NewJSONEncoder(&buf).Encode(root); err != nil {
		t.Fatalf("encode: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decoded JSON is invalid: %v\n%s", err, buf.String())
	}
	if decoded["name"] != "Program" {
		t.Errorf("name = %v, want Program", decoded["name"])
	}
}

func TestJSONEncoderEncodesParseError(t *testing.T) {
	// ecmascript.Program is fault-tolerant at the top level by design, so
	// it never itself surfaces a ParseError; drive engine.Parse directly
	// with a bare, non-fault-tolerant entry to exercise EncodeError.
	toks := []token.MatchToken{{Name: "Foo", Value: "foo", Index: 0}}
	p := engine.New(toks)
	_, err := engine.Parse(p, func() (*cst.Node, error) {
		return nil, engine.TokenMismatch{Expected: "Bar", Got: toks[0], At: 0}
	})
	if err == nil {
		t.Fatal("expected a parse error")
	}
	perr, ok := err.(*engine.ParseError)
	if !ok {
		t.Fatalf("expected *engine.ParseError, got %T", err)
	}

	var buf bytes.Buffer
	if err := format.NewJSONEncoder(&buf).EncodeError(perr); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(buf.String(), `"kind"`) {
		t.Errorf("encoded error missing kind field: %s", buf.String())
	}
}

func TestTreeEncoderPrintsIndentedLines(t *testing.T) {
	toks := ecmascript.Tokens([]byte("let x = 1;"))
	p := engine.New(toks)
	root, err := ecmascript.Parse(p, "es2015")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	var buf bytes.Buffer
	if err := format.NewTreeEncoder(&buf).Encode(root); err != nil {
		t.Fatalf("encode: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "Program\n") {
		t.Errorf("expected tree to start with Program, got:\n%s", out)
	}
	if !strings.Contains(out, `Identifier "x"`) {
		t.Errorf("expected an Identifier \"x\" line, got:\n%s", out)
	}
}
