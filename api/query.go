package api

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Param is a single query parameter. Params keep the order they are added in.
type Param struct {
	Name  string
	Value string
}

// Params is an ordered list of query parameters.
type Params []Param

// Add appends name=value.
func (p Params) Add(name, value string) Params {
	return append(p, Param{Name: name, Value: value})
}

// AddOptional appends name=*value when value is non-nil.
func (p Params) AddOptional(name string, value *string) Params {
	if value == nil {
		return p
	}
	return p.Add(name, *value)
}

// AddUint appends name=value rendered in base 10.
func (p Params) AddUint(name string, value uint64) Params {
	return p.Add(name, strconv.FormatUint(value, 10))
}

// AddInt appends name=value rendered in base 10.
func (p Params) AddInt(name string, value int64) Params {
	return p.Add(name, strconv.FormatInt(value, 10))
}

// Encode renders the params as a query string without the leading '?'.
func (p Params) Encode() string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	for i, param := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(param.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(param.Value))
	}
	return b.String()
}

// BuildURL joins baseURL with the escaped path segments and the query params.
// A query already on baseURL is kept ahead of params. A fragment is rejected.
func BuildURL(baseURL string, segments []string, params Params) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", newError(InvalidURLParams, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return "", &Error{
			Kind:    InvalidURLParams,
			Message: fmt.Sprintf("base URL %q is not absolute", baseURL),
		}
	}
	if base.Fragment != "" {
		return "", &Error{
			Kind:    InvalidURLParams,
			Message: fmt.Sprintf("base URL %q has a fragment", baseURL),
		}
	}

	var b strings.Builder
	b.WriteString(base.Scheme)
	b.WriteString("://")
	if base.User != nil {
		b.WriteString(base.User.String())
		b.WriteByte('@')
	}
	b.WriteString(base.Host)
	b.WriteString(strings.TrimSuffix(base.EscapedPath(), "/"))
	for _, segment := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(segment))
	}

	query := base.RawQuery
	if encoded := params.Encode(); encoded != "" {
		if query != "" {
			query += "&"
		}
		query += encoded
	}
	if query != "" {
		b.WriteByte('?')
		b.WriteString(query)
	}

	u, err := url.Parse(b.String())
	if err != nil {
		return "", newError(InvalidURLParams, err)
	}
	return u.String(), nil
}
