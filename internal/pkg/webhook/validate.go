package webhook

import (
	"net/url"
	"strings"
)

var trustedHosts = []string{
	"hooks.slack.com",
	"outlook.office.com",
	"hooks.teams.microsoft.com",
	"discord.com",
	"discordapp.com",
	"hooks.zapier.com",
	"logic.azure.com",
	"httpbin.org",
}

var htmlIndicators = []string{
	"<html", "<!doctype", "<head>", "<body>", "<title>",
	"google", "search", "javascript", "<script", "<style",
}

var successIndicators = []string{
	"success", "accepted", "received", "ok", "webhook",
	"notification", "message sent", "delivered",
}

const shortBodyLimit = 100

// IsTrustedHost reports whether rawURL points at a known chat-ops webhook host
// or one of its subdomains.
func IsTrustedHost(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	for _, h := range trustedHosts {
		if host == h || strings.HasSuffix(host, "."+h) {
			return true
		}
	}
	return false
}

// IsValidResponse decides whether a response came from a real webhook receiver
// rather than an ordinary web page that happens to answer POST.
func IsValidResponse(rawURL, body string, status int) bool {
	if IsTrustedHost(rawURL) {
		return true
	}
	if status != 200 {
		return false
	}

	lower := strings.ToLower(body)
	for _, ind := range htmlIndicators {
		if strings.Contains(lower, ind) {
			return false
		}
	}
	for _, ind := range successIndicators {
		if strings.Contains(lower, ind) {
			return true
		}
	}
	return len(body) < shortBodyLimit && !strings.Contains(body, "<")
}
