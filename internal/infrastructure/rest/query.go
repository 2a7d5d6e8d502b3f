package rest

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Query builds PostgREST query strings such as
// user_id=eq.42&order=updated_at.desc&limit=50.
type Query struct {
	filters []filter
	sel     string
	order   string
	limit   int
}

type filter struct {
	column string
	op     string
	value  string
}

func NewQuery() *Query {
	return &Query{}
}

func (q *Query) Eq(column, value string) *Query {
	return q.add(column, "eq", value)
}

func (q *Query) Gte(column string, value time.Time) *Query {
	return q.add(column, "gte", Timestamp(value))
}

func (q *Query) Lt(column string, value time.Time) *Query {
	return q.add(column, "lt", Timestamp(value))
}

func (q *Query) Select(columns ...string) *Query {
	q.sel = strings.Join(columns, ",")
	return q
}

func (q *Query) Order(column string, desc bool) *Query {
	dir := "asc"
	if desc {
		dir = "desc"
	}
	q.order = column + "." + dir
	return q
}

func (q *Query) Limit(n int) *Query {
	q.limit = n
	return q
}

func (q *Query) Clone() *Query {
	c := *q
	c.filters = append([]filter(nil), q.filters...)
	return &c
}

func (q *Query) add(column, op, value string) *Query {
	q.filters = append(q.filters, filter{column: column, op: op, value: value})
	return q
}

// Values returns the query as url.Values. Filters on the same column are
// all kept.
func (q *Query) Values() url.Values {
	v := url.Values{}
	for _, f := range q.filters {
		v.Add(f.column, f.op+"."+f.value)
	}
	if q.sel != "" {
		v.Set("select", q.sel)
	}
	if q.order != "" {
		v.Set("order", q.order)
	}
	if q.limit > 0 {
		v.Set("limit", strconv.Itoa(q.limit))
	}
	return v
}

// Encode renders the query with keys sorted.
func (q *Query) Encode() string {
	return q.Values().Encode()
}

// Timestamp formats t the way the backend stores timestamps.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
