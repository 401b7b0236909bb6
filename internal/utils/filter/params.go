package filter

import (
	"net/url"
	"reflect"

	"github.com/SscSPs/erp_records_backend/internal/apperrors"
	"github.com/SscSPs/erp_records_backend/internal/utils/binkey"
)

// Params maps filter names to loosely typed request values.
type Params map[string]any

// FromQuery builds Params from URL query values. A key given once maps to a
// string, a repeated key maps to a []string.
func FromQuery(q url.Values) Params {
	p := make(Params, len(q))
	for k, vs := range q {
		switch len(vs) {
		case 0:
		case 1:
			p[k] = vs[0]
		default:
			p[k] = append([]string(nil), vs...)
		}
	}
	return p
}

// Get returns the value stored under name and whether it is present.
func (p Params) Get(name string) (any, bool) {
	v, ok := p[name]
	if !ok || !isPresent(v) {
		return nil, false
	}
	return v, true
}

// Has reports whether name carries a present value.
func (p Params) Has(name string) bool {
	_, ok := p.Get(name)
	return ok
}

// Clone returns a shallow copy.
func (p Params) Clone() Params {
	c := make(Params, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}

// ConvertKeys parses the named identifier params in place. A string becomes a
// binkey.Key and a list becomes a []binkey.Key. Absent names are skipped.
func (p Params) ConvertKeys(names ...string) error {
	for _, name := range names {
		v, ok := p.Get(name)
		if !ok {
			continue
		}
		converted, err := toKeys(name, v, false)
		if err != nil {
			return err
		}
		p[name] = converted
	}
	return nil
}

// ConvertKeyLists is like ConvertKeys but always stores a []binkey.Key, so a
// single value can feed set-membership predicates.
func (p Params) ConvertKeyLists(names ...string) error {
	for _, name := range names {
		v, ok := p.Get(name)
		if !ok {
			continue
		}
		converted, err := toKeys(name, v, true)
		if err != nil {
			return err
		}
		p[name] = converted
	}
	return nil
}

func toKeys(name string, v any, asList bool) (any, error) {
	invalid := func(err error) error {
		return apperrors.ErrInvalidIdentifierFormat.With(name, err)
	}
	switch t := v.(type) {
	case binkey.Key:
		if asList {
			return []binkey.Key{t}, nil
		}
		return t, nil
	case []binkey.Key:
		return t, nil
	case string:
		k, err := binkey.Parse(t)
		if err != nil {
			return nil, invalid(err)
		}
		if asList {
			return []binkey.Key{k}, nil
		}
		return k, nil
	case []string:
		keys, err := binkey.ParseAll(t)
		if err != nil {
			return nil, invalid(err)
		}
		return keys, nil
	case []any:
		keys := make([]binkey.Key, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, invalid(binkey.ErrInvalidFormat)
			}
			k, err := binkey.Parse(s)
			if err != nil {
				return nil, invalid(err)
			}
			keys = append(keys, k)
		}
		return keys, nil
	default:
		return nil, invalid(binkey.ErrInvalidFormat)
	}
}

// isPresent treats nil, the empty string and empty lists as absent.
// false and 0 are present.
func isPresent(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case binkey.Key:
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map:
		return rv.Len() > 0
	case reflect.Ptr, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}
