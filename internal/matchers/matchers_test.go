package matchers

import (
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestFindURLs(t *testing.T) {
	ms := Find("see https://example.com/a?b=1 and www.go.dev.", Options{URLs: true})
	assert.Assert(t, is.Len(ms, 2))

	assert.Equal(t, ms[0].Type, URL)
	assert.Equal(t, ms[0].Text, "https://example.com/a?b=1")
	assert.Equal(t, ms[0].Href, "https://example.com/a?b=1")
	assert.Equal(t, ms[0].Start, 4)

	assert.Equal(t, ms[1].Text, "www.go.dev")
	assert.Equal(t, ms[1].Href, "http://www.go.dev")
}

func TestURLTrailingPunctuation(t *testing.T) {
	ms := Find("go to http://x.com/path, now", Options{URLs: true})
	assert.Assert(t, is.Len(ms, 1))
	assert.Equal(t, ms[0].Text, "http://x.com/path")
}

func TestFindEmails(t *testing.T) {
	ms := Find("write to first.last@mail.example.org.", Options{Emails: true})
	assert.Assert(t, is.Len(ms, 1))
	assert.Equal(t, ms[0].Type, Email)
	assert.Equal(t, ms[0].Text, "first.last@mail.example.org")
	assert.Equal(t, ms[0].Href, "mailto:first.last@mail.example.org")
}

func TestFindMentions(t *testing.T) {
	ms := Find("cc @dan and @ana_b", Options{Mentions: true})
	assert.Assert(t, is.Len(ms, 2))
	assert.Equal(t, ms[0].Text, "@dan")
	assert.Equal(t, ms[0].Href, DefaultMentionBase+"dan")
	assert.Equal(t, ms[1].Text, "@ana_b")
}

func TestMentionBase(t *testing.T) {
	ms := Find("hi @dan", Options{Mentions: true, MentionBase: "https://github.com/"})
	assert.Assert(t, is.Len(ms, 1))
	assert.Equal(t, ms[0].Href, "https://github.com/dan")
}

// An email's local part must not be re-matched as a mention.
func TestMentionLookbehind(t *testing.T) {
	ms := Find("mail me@example.com please", Options{Mentions: true})
	assert.Assert(t, is.Len(ms, 0))
}

func TestMentionRuneOffsets(t *testing.T) {
	ms := Find("é @dan", Options{Mentions: true})
	assert.Assert(t, is.Len(ms, 1))
	assert.Equal(t, ms[0].Start, 2)
	assert.Equal(t, ms[0].End, 6)
}

// An address inside a URL overlaps the URL match; the leftmost match wins.
func TestFindOverlap(t *testing.T) {
	ms := Find("ftp://user@host.example.com/x", Options{URLs: true, Emails: true})
	assert.Assert(t, is.Len(ms, 1))
	assert.Equal(t, ms[0].Type, URL)
}

func TestFindDisabled(t *testing.T) {
	ms := Find("https://example.com me@example.com @dan", Options{})
	assert.Assert(t, is.Len(ms, 0))
}

func TestMerge(t *testing.T) {
	merged := Merge([]Match{
		{Start: 10, End: 20},
		{Start: 0, End: 5},
		{Start: 4, End: 8},
		{Start: 10, End: 15},
	})
	assert.Assert(t, is.Len(merged, 2))
	assert.Equal(t, merged[0].Start, 0)
	assert.Equal(t, merged[1].End, 20)
}
