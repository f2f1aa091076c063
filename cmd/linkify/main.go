package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/linkifyhq/linkify"
	"github.com/linkifyhq/linkify/internal/printer"
)

func main() {
	jsonDump := flag.Bool("json", false, "print the token stream as JSON instead of rewriting links")
	urls := flag.Bool("urls", true, "link bare URLs")
	emails := flag.Bool("emails", true, "link email addresses")
	mentions := flag.Bool("mentions", false, "link @mentions")
	mentionBase := flag.String("mention-base", "", "base URL for @mention links")
	flag.Parse()

	input, err := readInput(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "linkify:", err)
		os.Exit(1)
	}

	if *jsonDump {
		out, err := printer.PrintToJSON(input)
		if err != nil {
			fmt.Fprintln(os.Stderr, "linkify:", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}

	fmt.Print(linkify.Link(input, linkify.Options{
		URLs:        *urls,
		Emails:      *emails,
		Mentions:    *mentions,
		MentionBase: *mentionBase,
	}))
}

func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}
