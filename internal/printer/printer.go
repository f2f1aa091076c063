// Package printer renders a token stream as JSON, for tooling and for
// snapshot tests.
package printer

import (
	"bytes"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/iancoleman/strcase"
	"github.com/linkifyhq/linkify"
	"github.com/tdewolff/parse/v2"
)

type Point struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Offset int `json:"offset"`
}

type AttrNode struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
	Kind  string `json:"kind"`
}

type Node struct {
	Type       string     `json:"type"`
	Name       string     `json:"name,omitempty"`
	Value      string     `json:"value,omitempty"`
	Closing    bool       `json:"closing,omitempty"`
	Attributes []AttrNode `json:"attributes,omitempty"`
	Position   Point      `json:"position"`
	Raw        string     `json:"raw"`
}

// Nodes tokenizes source and returns one Node per emitted token, in
// document order.
func Nodes(source string) []Node {
	nodes := make([]Node, 0)
	for t := range linkify.Events(source) {
		line, col, _ := parse.Position(bytes.NewReader([]byte(source)), t.Loc.Start)
		n := Node{
			Type:     strcase.ToSnake(t.Type.String()),
			Position: Point{Line: line, Column: col, Offset: t.Loc.Start},
			Raw:      t.Raw,
		}
		switch t.Type {
		case linkify.TextToken:
			n.Value = t.Data
		default:
			n.Name = t.Data
			n.Closing = t.Type == linkify.EndTagToken
			for _, a := range t.Attr {
				n.Attributes = append(n.Attributes, AttrNode{
					Name:  a.Key,
					Value: a.Val,
					Kind:  a.Type.String(),
				})
			}
		}
		nodes = append(nodes, n)
	}
	return nodes
}

// PrintToJSON tokenizes source and returns the token stream as indented
// JSON.
func PrintToJSON(source string) ([]byte, error) {
	return json.Marshal(Nodes(source), jsontext.WithIndent("  "))
}
