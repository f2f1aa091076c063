// Package matchers holds the link, email, and mention recognizers that run
// over emitted text nodes. The patterns are compiled once at package init
// and never mutated, so concurrent scans are safe.
package matchers

import (
	"sort"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// Type identifies what a Match recognized.
type Type int

const (
	URL Type = iota
	Email
	Mention
)

func (t Type) String() string {
	switch t {
	case URL:
		return "url"
	case Email:
		return "email"
	case Mention:
		return "mention"
	}
	return "unknown"
}

// A Match is one recognized span of a text node. Start and End are rune
// offsets into the scanned text, half-open.
type Match struct {
	Type       Type
	Text       string
	Start, End int
	Href       string
}

// Options selects which recognizers run. MentionBase is prepended to the
// bare username to form the mention href; it defaults to DefaultMentionBase.
type Options struct {
	URLs     bool
	Emails   bool
	Mentions bool

	MentionBase string
}

const DefaultMentionBase = "https://twitter.com/"

// The patterns are JS-dialect: mention detection needs a negative
// lookbehind so "user@host" local parts are not re-matched as mentions.
var (
	urlRe = mustCompile(`(?i)(?:(?:https?|ftp)://|www\.)[^\s<>"']+[^\s<>"'.,:;!?)\]]`, 0)

	emailRe = mustCompile("(?i)\\b[a-z0-9!#$%&'*+/=?^_\x60{|}~.-]+@[a-z0-9](?:[a-z0-9-]*[a-z0-9])?(?:\\.[a-z0-9](?:[a-z0-9-]*[a-z0-9])?)+", 0)

	mentionRe = mustCompile(`(?i)(?<![a-z0-9_.@])@([a-z0-9_]{1,50})\b`, 0)
)

func mustCompile(pattern string, opts regexp2.RegexOptions) *regexp2.Regexp {
	re := regexp2.MustCompile(pattern, opts)
	re.MatchTimeout = time.Second
	return re
}

// Find runs the enabled recognizers over text and returns the merged,
// non-overlapping matches in document order.
func Find(text string, o Options) []Match {
	var ms []Match
	if o.URLs {
		ms = append(ms, findAll(urlRe, URL, text)...)
	}
	if o.Emails {
		ms = append(ms, findAll(emailRe, Email, text)...)
	}
	if o.Mentions {
		ms = append(ms, findAll(mentionRe, Mention, text)...)
	}
	for i := range ms {
		ms[i].Href = href(ms[i], o)
	}
	return Merge(ms)
}

func findAll(re *regexp2.Regexp, t Type, text string) []Match {
	var ms []Match
	m, err := re.FindStringMatch(text)
	for err == nil && m != nil {
		ms = append(ms, Match{
			Type:  t,
			Text:  m.String(),
			Start: m.Index,
			End:   m.Index + m.Length,
		})
		m, err = re.FindNextMatch(m)
	}
	return ms
}

func href(m Match, o Options) string {
	switch m.Type {
	case Email:
		return "mailto:" + m.Text
	case Mention:
		base := o.MentionBase
		if base == "" {
			base = DefaultMentionBase
		}
		return base + strings.TrimPrefix(m.Text, "@")
	default:
		if strings.HasPrefix(strings.ToLower(m.Text), "www.") {
			return "http://" + m.Text
		}
		return m.Text
	}
}

// Merge sorts matches by position and drops overlaps, keeping the
// leftmost match and, at equal starts, the longest.
func Merge(ms []Match) []Match {
	sort.Slice(ms, func(i, j int) bool {
		if ms[i].Start != ms[j].Start {
			return ms[i].Start < ms[j].Start
		}
		return ms[i].End > ms[j].End
	})
	out := ms[:0]
	end := 0
	for _, m := range ms {
		if m.Start < end {
			continue
		}
		out = append(out, m)
		end = m.End
	}
	return out
}
