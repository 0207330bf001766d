package rest

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/coopkeeper-backend/internal/result"
)

const dateLayout = "2006-01-02"

// Date is a calendar day encoded as YYYY-MM-DD.
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.UTC().Format(dateLayout))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func toDate(t time.Time) Date { return Date{Time: t} }

func optionalDate(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	d := toDate(*t)
	return &d
}

func (d *Date) timePtr() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

// pathID parses the {id} wildcard of the matched route.
func pathID(r *http.Request) (uuid.UUID, *result.Error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, invalid("id", "must be a valid UUID")
	}
	return id, nil
}

// query collects typed query parameters, keeping the first parse error.
type query struct {
	r   *http.Request
	err *result.Error
}

func newQuery(r *http.Request) *query { return &query{r: r} }

func (q *query) text(name string) string {
	return q.r.URL.Query().Get(name)
}

func (q *query) flag(name string) bool {
	v := q.text(name)
	if v == "" || q.err != nil {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		q.err = invalid(name, "must be true or false")
	}
	return b
}

func (q *query) number(name string) int {
	v := q.text(name)
	if v == "" || q.err != nil {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		q.err = invalid(name, "must be an integer")
	}
	return n
}

func (q *query) id(name string) *uuid.UUID {
	v := q.text(name)
	if v == "" || q.err != nil {
		return nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		q.err = invalid(name, "must be a valid UUID")
		return nil
	}
	return &id
}

func (q *query) date(name string) *time.Time {
	v := q.text(name)
	if v == "" || q.err != nil {
		return nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		q.err = invalid(name, "must be a date in YYYY-MM-DD format")
		return nil
	}
	return &t
}
