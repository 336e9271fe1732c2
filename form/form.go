// Package form converts ordered key/value pairs into a percent-encoded
// request body. Unlike url.Values, encoding preserves the caller's pair
// order.
package form

import (
	"errors"
	"net/url"
	"strings"
)

// Pair is a single key/value form field.
type Pair struct {
	Key   string
	Value string
}

// Pairs is an ordered list of form fields.
type Pairs []Pair

// ErrOddList indicates a flattened key/value list had no value for its
// last key.
var ErrOddList = errors.New("key/value list must have an even number of elements")

// PairsFromList builds Pairs from a flattened key,value,key,value list.
// An odd-length list is rejected, not repaired.
func PairsFromList(kv ...string) (Pairs, error) {
	if len(kv)%2 != 0 {
		return nil, ErrOddList
	}
	pairs := make(Pairs, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		pairs = append(pairs, Pair{Key: kv[i], Value: kv[i+1]})
	}
	return pairs, nil
}

// Encode renders the pairs as key=value terms joined by "&", in input
// order. Keys and values are percent-encoded individually; the "=" and
// "&" separators stay literal, so decoding the result reconstructs the
// assembled key=value&key=value string exactly.
func (p Pairs) Encode() string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	for i, pair := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(pair.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(pair.Value))
	}
	return b.String()
}
