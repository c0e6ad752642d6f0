// Package lca finds the longest continuous alignment window of a
// match-symbol string that meets an identity threshold.
package lca

// DefaultThreshold is the minimum identity a window must reach.
const DefaultThreshold = 0.98

// Symbols counted by Find. Any other byte is bridged without being counted.
const (
	matchSymbol    = '|'
	mismatchSymbol = '.'
	gapSymbol      = '-'
)

// Window is an inclusive [Start, End] range of a match-symbol string.
// The zero Window means nothing qualified.
type Window struct {
	Start  int `json:"start"`
	End    int `json:"end"`
	Length int `json:"length"`
}

// Empty reports whether no window qualified.
func (w Window) Empty() bool {
	return w.Length == 0
}

// Shift moves the window by offset positions.
func (w Window) Shift(offset int) Window {
	if w.Empty() {
		return w
	}
	return Window{Start: w.Start + offset, End: w.End + offset, Length: w.Length}
}

// Find scans every window of s exhaustively and returns the longest one
// whose identity (matches over counted symbols) is at least threshold.
//
// Only '|', '.' and '-' count toward the window total; other bytes extend
// the window without changing its identity. The leftmost window wins among
// equal lengths.
func Find(s string, threshold float64) Window {
	var best Window

	for start := 0; start < len(s); start++ {
		matches, total := 0, 0
		for end := start; end < len(s); end++ {
			switch s[end] {
			case matchSymbol:
				matches++
				total++
			case mismatchSymbol, gapSymbol:
				total++
			}
			if total == 0 {
				continue
			}

			identity := float64(matches) / float64(total)
			if length := end - start + 1; identity >= threshold && length > best.Length {
				best = Window{Start: start, End: end, Length: length}
			}
		}
	}

	return best
}
