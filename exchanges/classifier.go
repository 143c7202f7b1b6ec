package exchange

import (
	"strconv"

	"github.com/buger/jsonparser"

	"github.com/takerfee/cclib/exchanges/request"
)

// Classifier is a venue specific response classification strategy. A nil
// return marks the call successful; otherwise the returned error is an
// *Error placing the failure in the taxonomy. Bodies reaching Classify have
// already passed the JSON gate.
type Classifier interface {
	Classify(resp *request.Response) error
}

// FieldString returns the string form of the value at the supplied key path
// whether it arrived as a JSON string or a number. Venues disagree on which
// of the two an error code is.
func FieldString(body []byte, keys ...string) (string, bool) {
	v, dt, _, err := jsonparser.Get(body, keys...)
	if err != nil {
		return "", false
	}
	switch dt {
	case jsonparser.String, jsonparser.Number:
		return string(v), true
	default:
		return "", false
	}
}

// FieldInt returns the integer form of the value at the supplied key path,
// tolerating quoted numbers.
func FieldInt(body []byte, keys ...string) (int64, bool) {
	s, ok := FieldString(body, keys...)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// FieldBool returns the boolean at the supplied key path.
func FieldBool(body []byte, keys ...string) (bool, bool) {
	v, err := jsonparser.GetBoolean(body, keys...)
	if err != nil {
		return false, false
	}
	return v, true
}

// FirstString returns the first present value among candidate keys, for
// venues that have renamed an error message field across API generations.
func FirstString(body []byte, keys ...string) string {
	for _, k := range keys {
		if v, ok := FieldString(body, k); ok {
			return v
		}
	}
	return ""
}

// IsJSONObject reports whether the body's root value is an object.
func IsJSONObject(body []byte) bool {
	_, dt, _, err := jsonparser.Get(body)
	return err == nil && dt == jsonparser.Object
}
