package transcript

import "strings"

// ReconstructSentences re-flows fragmented cue texts into complete sentences.
//
// Fragments are concatenated with single spaces into an accumulator; whenever
// the accumulator ends in terminal punctuation (".", "!" or "?") it is
// emitted as one sentence and accumulation restarts. A non-empty remainder at
// end of input is emitted as-is: an unterminated trailing sentence is a
// best-effort fallback, not an error. Empty fragments contribute nothing.
//
// A fragment containing a sentence boundary mid-text is not split; only its
// trailing punctuation ends a sentence.
func ReconstructSentences(fragments []string) []string {
	var sentences []string
	current := ""

	for _, fragment := range fragments {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}

		if current == "" {
			current = fragment
		} else {
			current += " " + fragment
		}

		if isTerminal(current[len(current)-1]) {
			sentences = append(sentences, current)
			current = ""
		}
	}

	if current != "" {
		sentences = append(sentences, current)
	}

	return sentences
}

func isTerminal(c byte) bool {
	return c == '.' || c == '!' || c == '?'
}
