// internal/mention/scanner.go
package mention

import "regexp"

// handlePattern matches "@" followed by a maximal run of word characters.
// The captured run is the whole candidate handle: "@user1world" yields
// "user1world", never "user1".
var handlePattern = regexp.MustCompile(`@(\w+)`)

// ScanHandles extracts every candidate mention handle from free text, in
// order of appearance, duplicates included. Matching is case-sensitive;
// resolution against the user directory happens later.
func ScanHandles(text string) []string {
	matches := handlePattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	handles := make([]string, 0, len(matches))
	for _, m := range matches {
		handles = append(handles, m[1])
	}
	return handles
}
