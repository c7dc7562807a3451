package appwrite

import "encoding/json"

// Queries are sent to the document database as JSON strings in the
// `queries[]` parameter.

type query struct {
	Method    string `json:"method"`
	Attribute string `json:"attribute,omitempty"`
	Values    []any  `json:"values,omitempty"`
}

func (q query) encode() string {
	b, _ := json.Marshal(q)
	return string(b)
}

// QueryEqual matches documents whose attribute equals value.
func QueryEqual(attribute string, value any) string {
	return query{Method: "equal", Attribute: attribute, Values: []any{value}}.encode()
}

// QuerySearch matches documents by full-text search on attribute.
func QuerySearch(attribute, term string) string {
	return query{Method: "search", Attribute: attribute, Values: []any{term}}.encode()
}

// QueryOrderDesc orders results by attribute, newest first.
func QueryOrderDesc(attribute string) string {
	return query{Method: "orderDesc", Attribute: attribute}.encode()
}

// QueryLimit caps the number of returned documents.
func QueryLimit(n int) string {
	return query{Method: "limit", Values: []any{n}}.encode()
}
