// Package format renders a parsed CST (or a failed parse) as either
// indented JSON or a plain-text tree, grounded on the teacher's
// ASTJSONEncoder shape (format/ast_json.go): one small json-tagged
// struct mirroring the CST/error shape, marshaled with MarshalIndent.
package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/ecmacst/cst"
	"github.com/dhamidi/ecmacst/engine"
)

// JSONEncoder writes cst.Node trees and engine.ParseError failures as
// indented JSON.
type JSONEncoder struct {
	w io.Writer
}

// NewJSONEncoder builds a JSONEncoder writing to w.
func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

// Encode writes node as indented JSON.
func (e *JSONEncoder) Encode(node *cst.Node) error {
	text, err := json.MarshalIndent(nodeToJSON(node), "", "  ")
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

// EncodeError writes perr as indented JSON.
func (e *JSONEncoder) EncodeError(perr *engine.ParseError) error {
	text, err := json.MarshalIndent(errorToJSON(perr), "", "  ")
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

type jsonNode struct {
	Name     string      `json:"name"`
	Value    *string     `json:"value,omitempty"`
	Span     *jsonSpan   `json:"span,omitempty"`
	Error    bool        `json:"error,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

type jsonSpan struct {
	Start jsonPosition `json:"start"`
	End   jsonPosition `json:"end"`
}

type jsonPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

type jsonParseError struct {
	Kind     string   `json:"kind"`
	Message  string   `json:"message"`
	Span     *jsonSpan `json:"span,omitempty"`
	Expected []string `json:"expected,omitempty"`
	Got      string   `json:"got,omitempty"`
}

func nodeToJSON(n *cst.Node) *jsonNode {
	if n == nil {
		return nil
	}
	jn := &jsonNode{
		Name:  n.Name,
		Value: n.Value,
		Error: n.IsError(),
	}
	if n.Loc != nil {
		jn.Span = &jsonSpan{
			Start: jsonPosition{Line: n.Loc.Start.Line, Column: n.Loc.Start.Column},
			End:   jsonPosition{Line: n.Loc.End.Line, Column: n.Loc.End.Column},
		}
	}
	if len(n.Children) > 0 {
		jn.Children = make([]*jsonNode, len(n.Children))
		for i, child := range n.Children {
			jn.Children[i] = nodeToJSON(child)
		}
	}
	return jn
}

func errorToJSON(perr *engine.ParseError) jsonParseError {
	out := jsonParseError{
		Kind:     perr.Kind,
		Message:  perr.Error(),
		Expected: perr.Expected,
		Got:      perr.Got.Value,
	}
	if perr.At.Index != 0 || perr.At.Start.Line != 0 {
		out.Span = &jsonSpan{
			Start: jsonPosition{Line: perr.At.Start.Line, Column: perr.At.Start.Column},
			End:   jsonPosition{Line: perr.At.End.Line, Column: perr.At.End.Column},
		}
	}
	return out
}
