package playlist

import "strings"

// headerMarker is the extended-M3U signature a local playlist must carry.
const headerMarker = "#EXTM3U"

// HasHeader reports whether the first non-blank line of text starts with
// the extended-M3U marker.
func HasHeader(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		return strings.HasPrefix(line, headerMarker)
	}
	return false
}

// ParseStations extracts stream URLs from playlist text: every trimmed
// line that begins with "http", in encounter order. Blank lines, comments
// and #EXTINF metadata are discarded.
func ParseStations(text string) []string {
	var stations []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "http") {
			stations = append(stations, line)
		}
	}
	return stations
}
