package checkout

import (
	"net/url"
	"strings"
)

// DefaultLinkBase is the WhatsApp click-to-chat endpoint.
const DefaultLinkBase = "https://wa.me"

// DeepLink builds <base>/<number>?text=<message>. Non-digits are stripped from
// number and the message is percent-encoded with spaces as %20.
func DeepLink(base, number, message string) string {
	if base == "" {
		base = DefaultLinkBase
	}
	return strings.TrimRight(base, "/") + "/" + digits(number) + "?text=" + escapeComponent(message)
}

func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
