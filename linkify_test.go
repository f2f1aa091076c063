package linkify

import (
	"testing"

	"github.com/linkifyhq/linkify/internal/test_utils"
)

func TestLink(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  Options
		want  string
	}{
		{
			"bare url",
			`Check out https://example.com today`,
			DefaultOptions(),
			`Check out <a href="https://example.com">https://example.com</a> today`,
		},
		{
			"scheme-less www url",
			`visit www.go.dev now`,
			DefaultOptions(),
			`visit <a href="http://www.go.dev">www.go.dev</a> now`,
		},
		{
			"email address",
			`mail me@example.com please`,
			DefaultOptions(),
			`mail <a href="mailto:me@example.com">me@example.com</a> please`,
		},
		{
			"mention",
			`cc @dan`,
			Options{Mentions: true},
			`cc <a href="https://twitter.com/dan">@dan</a>`,
		},
		{
			"existing anchor untouched",
			`<a href="http://x.com">http://x.com</a>`,
			DefaultOptions(),
			`<a href="http://x.com">http://x.com</a>`,
		},
		{
			"url in attribute untouched",
			`<img src="http://x.com/a.png"> http://x.com`,
			DefaultOptions(),
			`<img src="http://x.com/a.png"> <a href="http://x.com">http://x.com</a>`,
		},
		{
			"script body untouched",
			`<script>fetch("http://x.com")</script>`,
			DefaultOptions(),
			`<script>fetch("http://x.com")</script>`,
		},
		{
			"style body untouched",
			`<style>a { background: url(http://x.com/i.png) }</style>`,
			DefaultOptions(),
			`<style>a { background: url(http://x.com/i.png) }</style>`,
		},
		{
			"markup around matches survives",
			`<p>see https://example.com</p>`,
			DefaultOptions(),
			`<p>see <a href="https://example.com">https://example.com</a></p>`,
		},
		{
			"no matches means identity",
			`<!DOCTYPE html><p>plain & simple</p>`,
			DefaultOptions(),
			`<!DOCTYPE html><p>plain & simple</p>`,
		},
		{
			"disabled recognizers mean identity",
			`https://example.com me@example.com`,
			Options{},
			`https://example.com me@example.com`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Link(tt.input, tt.opts)
			if got != tt.want {
				t.Errorf("Link() mismatch:\n%s", test_utils.TextDiff(tt.want, got))
			}
		})
	}
}

func TestLinkSnapshot(t *testing.T) {
	input := test_utils.Dedent(`
		<!DOCTYPE html>
		<p>Docs live at https://go.dev/doc, or mail team@example.org.</p>
		<p>Already linked: <a href="https://go.dev">https://go.dev</a></p>
		<ul>
			<li>www.example.com</li>
			<li>ping @gopher</li>
		</ul>
	`)
	output := Link(input, Options{URLs: true, Emails: true, Mentions: true})
	test_utils.MakeSnapshot(&test_utils.SnapshotOptions{
		Testing:      t,
		TestCaseName: "link document",
		Input:        input,
		Output:       output,
		Kind:         test_utils.HtmlOutput,
	})
}
