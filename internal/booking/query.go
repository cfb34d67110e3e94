package booking

import (
	"net/url"
	"strings"
)

type param struct {
	key, value string
}

// orderedQuery is a query string that keeps parameter order, unlike url.Values.
type orderedQuery []param

func parseQuery(raw string) orderedQuery {
	var q orderedQuery
	for _, part := range strings.Split(raw, "&") {
		if part == "" {
			continue
		}
		key, value, _ := strings.Cut(part, "=")
		if k, err := url.QueryUnescape(key); err == nil {
			key = k
		}
		if v, err := url.QueryUnescape(value); err == nil {
			value = v
		}
		q = append(q, param{key, value})
	}
	return q
}

// set replaces the first occurrence of key and drops the rest, or appends.
func (q *orderedQuery) set(key, value string) {
	out := (*q)[:0]
	found := false
	for _, p := range *q {
		if p.key != key {
			out = append(out, p)
			continue
		}
		if !found {
			out = append(out, param{key, value})
			found = true
		}
	}
	if !found {
		out = append(out, param{key, value})
	}
	*q = out
}

func (q orderedQuery) encode() string {
	var b strings.Builder
	for i, p := range q {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.value))
	}
	return b.String()
}
