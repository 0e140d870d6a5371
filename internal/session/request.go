package session

import (
	"fmt"

	"github.com/studiowebux/playperf/internal/urlutil"
)

// buildRequest composes the fixed HTTP/1.1 GET request byte-for-byte. It
// never varies with response behavior.
func buildRequest(t urlutil.Target) []byte {
	req := fmt.Sprintf(
		"GET %s HTTP/1.1\r\n"+
			"User-Agent: Mozilla/5.0 (Windows NT 6.1; WOW64)\r\n"+
			"Host: %s\r\n"+
			"Accept: */*\r\n"+
			"Connection: keep-alive\r\n"+
			"\r\n",
		t.Path, t.Host,
	)
	return []byte(req)
}
