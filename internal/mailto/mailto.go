// Package mailto builds mailto: links the way browsers expect them from
// encodeURIComponent: spaces as %20, every reserved character escaped.
package mailto

import (
	"net/url"
	"strings"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

// Escape percent-encodes a query value with spaces as %20, as mail clients and
// placehold.co expect. QueryEscape already turns a literal '+' into %2B, so
// every '+' left in its output stands for a space.
func Escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func (m Message) Href() string {
	var b strings.Builder
	b.WriteString("mailto:")
	b.WriteString(m.To)
	sep := "?"
	if m.Subject != "" {
		b.WriteString(sep + "subject=" + Escape(m.Subject))
		sep = "&"
	}
	if m.Body != "" {
		b.WriteString(sep + "body=" + Escape(m.Body))
	}
	return b.String()
}

// Parse reverses Href.
func Parse(href string) (Message, error) {
	u, err := url.Parse(href)
	if err != nil {
		return Message{}, err
	}
	q, err := url.ParseQuery(u.RawQuery)
	if err != nil {
		return Message{}, err
	}
	return Message{To: u.Opaque, Subject: q.Get("subject"), Body: q.Get("body")}, nil
}
