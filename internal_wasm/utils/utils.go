//go:build js && wasm

package wasm_utils

import (
	"syscall/js"

	"github.com/linkifyhq/linkify"
	"github.com/norunners/vert"
)

type JSToken struct {
	Type    string `js:"type"`
	Name    string `js:"name"`
	Value   string `js:"value"`
	Closing bool   `js:"closing"`
	Raw     string `js:"raw"`
}

type JSOptions struct {
	URLs        bool   `js:"urls"`
	Emails      bool   `js:"emails"`
	Mentions    bool   `js:"mentions"`
	MentionBase string `js:"mentionBase"`
}

func TokenToJS(t linkify.Token) js.Value {
	jt := JSToken{
		Type: t.Type.String(),
		Raw:  t.Raw,
	}
	switch t.Type {
	case linkify.TextToken:
		jt.Value = t.Data
	default:
		jt.Name = t.Data
		jt.Closing = t.Type == linkify.EndTagToken
	}
	v := vert.ValueOf(jt).Value
	if len(t.Attr) > 0 {
		v.Set("attributes", GetAttrs(t))
	}
	return v
}

func GetAttrs(t linkify.Token) js.Value {
	attrs := js.Global().Get("Object").New()
	for _, attr := range t.Attr {
		switch attr.Type {
		case linkify.EmptyAttribute:
			attrs.Set(attr.Key, true)
		default:
			attrs.Set(attr.Key, attr.Val)
		}
	}
	return attrs
}

func OptionsFromJS(v js.Value) linkify.Options {
	if v.IsUndefined() || v.IsNull() {
		return linkify.DefaultOptions()
	}
	var jo JSOptions
	if err := (vert.Value{Value: v}).AssignTo(&jo); err != nil {
		return linkify.DefaultOptions()
	}
	return linkify.Options{
		URLs:        jo.URLs,
		Emails:      jo.Emails,
		Mentions:    jo.Mentions,
		MentionBase: jo.MentionBase,
	}
}
