package grading

import "strings"

// keywordCoverage reports how many of a question's keywords appear in a
// free-text response. The keyword set is comma-delimited; each keyword is
// trimmed and lowercased, empty entries dropped. The response is split on
// whitespace and a keyword counts as matched when any response token
// contains it as a substring.
func keywordCoverage(keywords, response string) (matched, total int) {
	tokens := strings.Fields(strings.ToLower(response))
	for _, k := range strings.Split(keywords, ",") {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		total++
		for _, tok := range tokens {
			if strings.Contains(tok, k) {
				matched++
				break
			}
		}
	}
	return matched, total
}
