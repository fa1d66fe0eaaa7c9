package logs

// Span identifies one run in log records and errors.
type Span string

type spanKey struct{}

var SpanKey spanKey
