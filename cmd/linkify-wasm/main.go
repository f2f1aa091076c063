//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/linkifyhq/linkify"
	wasm_utils "github.com/linkifyhq/linkify/internal_wasm/utils"
)

func main() {
	js.Global().Set("__linkify", js.FuncOf(Link))
	js.Global().Set("__linkify_parse", js.FuncOf(Parse))
	<-make(chan bool)
}

func jsString(j js.Value) string {
	if j.IsUndefined() || j.IsNull() {
		return ""
	}
	return j.String()
}

func Link(this js.Value, args []js.Value) interface{} {
	source := jsString(args[0])
	opts := linkify.DefaultOptions()
	if len(args) > 1 {
		opts = wasm_utils.OptionsFromJS(args[1])
	}
	return linkify.Link(source, opts)
}

func Parse(this js.Value, args []js.Value) interface{} {
	source := jsString(args[0])
	tokens := js.Global().Get("Array").New()
	i := 0
	for t := range linkify.Events(source) {
		tokens.SetIndex(i, wasm_utils.TokenToJS(t))
		i++
	}
	return tokens
}
