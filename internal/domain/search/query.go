package search

import (
	"net/url"
	"strings"
)

const (
	FieldTopic    = "topic"
	FieldLanguage = "language"
	FieldStars    = "stars"

	// ClauseSeparator joins clauses; GitHub reads it as a space between qualifiers
	ClauseSeparator = "+"

	SortStars = "stars"
	OrderDesc = "desc"
)

// Query is the upstream request built from a Request
type Query struct {
	// Q is already percent-encoded and must be sent verbatim
	Q       string
	Sort    string
	Order   string
	PerPage int
	Page    int
}

// BuildQuery joins one clause per present filter in the order topic, language, stars.
func BuildQuery(f Filters) string {
	clauses := make([]string, 0, 3)
	for _, c := range []struct{ field, value string }{
		{FieldTopic, f.Topic},
		{FieldLanguage, f.Language},
		{FieldStars, f.Stars},
	} {
		value := strings.TrimSpace(c.value)
		if value == "" {
			continue
		}
		clauses = append(clauses, c.field+":"+EncodeValue(value))
	}
	return strings.Join(clauses, ClauseSeparator)
}

// EncodeValue percent-encodes every byte outside the RFC 3986 unreserved set.
// Spaces become %20 so a literal "+" in the output is always a separator.
func EncodeValue(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}
