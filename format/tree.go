package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/ecmacst/cst"
)

// TreeEncoder writes a cst.Node as an indented plain-text tree, one node
// per line: rule name, or terminal name plus its literal value in
// quotes, with ErrorNode sentinels marked explicitly.
type TreeEncoder struct {
	w io.Writer
}

// NewTreeEncoder builds a TreeEncoder writing to w.
func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

// Encode writes node and its descendants.
func (e *TreeEncoder) Encode(node *cst.Node) error {
	return e.writeNode(node, 0)
}

func (e *TreeEncoder) writeNode(n *cst.Node, depth int) error {
	if n == nil {
		return nil
	}
	indent := strings.Repeat("  ", depth)
	line := n.Name
	if n.IsError() {
		line = "ErrorNode " + quote(n.TokenValue())
	} else if n.IsTerminal {
		line = fmt.Sprintf("%s %s", n.Name, quote(n.TokenValue()))
	}
	if _, err := fmt.Fprintf(e.w, "%s%s\n", indent, line); err != nil {
		return err
	}
	for _, child := range n.Children {
		if err := e.writeNode(child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func quote(s string) string {
	return fmt.Sprintf("%q", s)
}
