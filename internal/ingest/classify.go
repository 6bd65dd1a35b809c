package ingest

import (
	"net/url"
	"strings"
)

type URLClass int

const (
	NotAURL URLClass = iota
	External
	Stored
)

// Classify decides whether an image reference already lives on the blob host.
// Stored references are terminal: the pipeline never re-ingests them. The
// comparison is on the parsed hostname, not a substring match, so look-alike
// hosts (e.g. "evilsouthbound.blob.core.windows.net.example.com") stay
// external.
func Classify(raw, blobHost string) URLClass {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return NotAURL
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return NotAURL
	}
	if strings.EqualFold(u.Hostname(), blobHost) {
		return Stored
	}
	return External
}
