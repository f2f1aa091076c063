package printer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/linkifyhq/linkify/internal/test_utils"
)

func TestNodes(t *testing.T) {
	nodes := Nodes("Hi <A HREF='x'>there</A>")

	want := []Node{
		{
			Type:     "text",
			Value:    "Hi ",
			Position: Point{Line: 1, Column: 1, Offset: 0},
			Raw:      "Hi ",
		},
		{
			Type:       "start_tag",
			Name:       "a",
			Attributes: []AttrNode{{Name: "HREF", Value: "x", Kind: "quoted"}},
			Position:   Point{Line: 1, Column: 4, Offset: 3},
			Raw:        "<A HREF='x'>",
		},
		{
			Type:     "text",
			Value:    "there",
			Position: Point{Line: 1, Column: 16, Offset: 15},
			Raw:      "there",
		},
		{
			Type:     "end_tag",
			Name:     "a",
			Closing:  true,
			Position: Point{Line: 1, Column: 21, Offset: 20},
			Raw:      "</A>",
		},
	}
	if diff := cmp.Diff(want, nodes); diff != "" {
		t.Errorf("Nodes() mismatch (-want +got):\n%s", diff)
	}
}

func TestNodeTypeNames(t *testing.T) {
	nodes := Nodes(`<!DOCTYPE html><br/>x`)
	got := make([]string, 0, len(nodes))
	for _, n := range nodes {
		got = append(got, n.Type)
	}
	want := []string{"doctype", "self_closing_tag", "text"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("node types mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintToJSON(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{
			"basic document",
			`<!DOCTYPE html><p class="intro">Hello <b>world</b>!</p>`,
		},
		{
			"malformed markup stays text",
			`a < b <a href="unterminated`,
		},
		{
			"multiline",
			"<ul>\n  <li>one</li>\n  <li>two</li>\n</ul>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := PrintToJSON(tt.source)
			if err != nil {
				t.Fatal(err)
			}
			test_utils.MakeSnapshot(&test_utils.SnapshotOptions{
				Testing:      t,
				TestCaseName: tt.name,
				Input:        tt.source,
				Output:       string(out),
				Kind:         test_utils.JsonOutput,
			})
		})
	}
}
