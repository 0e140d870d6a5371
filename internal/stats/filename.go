package stats

import "strings"

const forbiddenChars = `\/:?"<>|`

// CSVFilename derives the detail CSV filename for a URL: append ".csv",
// collapse runs of forbidden characters into one, then replace whatever
// forbidden characters remain with "-". Mirrors TestArena::PrintResult in
// the original C++ implementation.
func CSVFilename(url string) string {
	name := url + ".csv"

	var collapsed strings.Builder
	collapsed.Grow(len(name))
	prevForbidden := false
	for _, r := range name {
		forbidden := strings.ContainsRune(forbiddenChars, r)
		if forbidden && prevForbidden {
			continue
		}
		collapsed.WriteRune(r)
		prevForbidden = forbidden
	}

	out := []rune(collapsed.String())
	for i, r := range out {
		if strings.ContainsRune(forbiddenChars, r) {
			out[i] = '-'
		}
	}
	return string(out)
}
