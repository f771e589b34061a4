package api

import (
	"net/url"
	"strconv"
)

// DefaultPageSize matches the remote service's UI default.
const DefaultPageSize = 20

// Pagination carries the page/page_size pair shared by every search params
// type. Page is zero-based. A zero PageSize serializes as DefaultPageSize.
type Pagination struct {
	Page     int
	PageSize int
}

func (p Pagination) queryParams() url.Values {
	size := p.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("page_size", strconv.Itoa(size))
	return q
}

// Optional fields are serialized by omission: zero values never reach the
// query string.

func setString(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func setInt(q url.Values, key string, value int) {
	if value != 0 {
		q.Set(key, strconv.Itoa(value))
	}
}

func setBool(q url.Values, key string, value *bool) {
	if value != nil {
		q.Set(key, strconv.FormatBool(*value))
	}
}

func setStrings(q url.Values, key string, values []string) {
	for _, v := range values {
		q.Add(key, v)
	}
}
