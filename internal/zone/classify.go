package zone

import "strings"

// Parse folds the complete zone-transfer output into one RecordSet. A line
// is considered only when it mentions the target domain and is not a
// transfer comment; every considered line is either dispatched to exactly
// one per-type parser or appended to the unclassified list.
func Parse(text, domain string) *RecordSet {
	set := newRecordSet()
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimRight(raw, "\r")
		if strings.TrimSpace(line) == "" || !considered(line, domain) {
			continue
		}
		set.Considered++

		normalized := collapseWhitespace(line)
		t, ok := classify(line, normalized)
		if !ok {
			set.Unclassified = append(set.Unclassified, normalized)
			continue
		}
		set.add(parseLine(t, line, normalized, domain))
	}
	return set
}

func considered(line, domain string) bool {
	if strings.HasPrefix(line, ";") {
		return false
	}
	return strings.Contains(line, domain)
}

// classify matches record-type markers in fixed priority order: a tab
// immediately followed by the keyword on the raw line, or the keyword
// preceded by the IN class on the normalized line. A line ending at the
// type token still classifies; its parser flags it invalid.
func classify(raw, normalized string) (RecordType, bool) {
	for _, t := range classifyOrder {
		if strings.Contains(raw, "\t"+string(t)) || strings.Contains(normalized, " IN "+string(t)) {
			return t, true
		}
	}
	return "", false
}

func collapseWhitespace(line string) string {
	return strings.Join(strings.Fields(line), " ")
}
