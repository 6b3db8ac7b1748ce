package utils

import (
	"html"
	"strings"

	nethtml "golang.org/x/net/html"
)

const DefaultTruncateLength = 250

// TruncateHTML strips markup from s, keeps the first length characters of the
// remaining text and wraps them in an italic fragment with a trailing
// ellipsis. Tags inside the input are dropped, not balanced.
func TruncateHTML(s string, length int) string {
	text := []rune(PlainText(s))
	if length >= 0 && len(text) > length {
		text = text[:length]
	}
	return "<i>" + html.EscapeString(string(text)) + "...</i>"
}

// PlainText returns the text content of an HTML fragment.
func PlainText(s string) string {
	var b strings.Builder
	z := nethtml.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case nethtml.ErrorToken:
			// io.EOF or a malformed tail; either way the text so far is kept.
			return b.String()
		case nethtml.TextToken:
			b.Write(z.Text())
		}
	}
}
