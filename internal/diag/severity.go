package diag

// Severity упорядочена: Info < Warning < Error. Bag.Sort печатает более тяжёлые первыми.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

var severityNames = [...]string{
	SevInfo:    "INFO",
	SevWarning: "WARNING",
	SevError:   "ERROR",
}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}

// SeverityFor returns the default severity of a code: the x000 code of
// each range (LexInfo, DocInfo, VctInfo) is informational, everything else
// stops the article.
func SeverityFor(c Code) Severity {
	switch c {
	case LexInfo, DocInfo, VctInfo:
		return SevInfo
	}
	return SevError
}
