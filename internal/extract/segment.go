package extract

import (
	"regexp"
	"strings"
)

var (
	reListMarker  = regexp.MustCompile(`(?:^|\n|\s)(?:\d+[.)]|[-*•])\s+`)
	reSentenceEnd = regexp.MustCompile(`[.!?\n]+`)
	reConnective  = regexp.MustCompile(`,?\s+(?:and then|then|after that|setelah itu|terus|lalu|kemudian)\s+`)
)

// segment splits an utterance into candidate clauses, preserving source
// order. Numbered or bulleted lists split at each marker (any lead-in
// before the first marker, like "I need to:", is dropped). Otherwise the
// text splits at sentence boundaries and sequencing connectives. Commas on
// their own never split: "tugas sudah selesai, tandai sebagai completed"
// is one clause.
func segment(utterance string) []string {
	utterance = strings.TrimSpace(utterance)
	if utterance == "" {
		return nil
	}

	if markers := reListMarker.FindAllStringIndex(utterance, -1); len(markers) >= 2 {
		var clauses []string
		for i, m := range markers {
			end := len(utterance)
			if i+1 < len(markers) {
				end = markers[i+1][0]
			}
			clauses = append(clauses, cleanClause(utterance[m[1]:end]))
		}
		return dropEmpty(clauses)
	}

	var clauses []string
	for _, sentence := range reSentenceEnd.Split(utterance, -1) {
		for _, clause := range reConnective.Split(sentence, -1) {
			clauses = append(clauses, cleanClause(clause))
		}
	}
	return dropEmpty(clauses)
}

func cleanClause(s string) string {
	return strings.Trim(strings.TrimSpace(s), ",;:")
}

func dropEmpty(in []string) []string {
	out := in[:0]
	for _, s := range in {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
