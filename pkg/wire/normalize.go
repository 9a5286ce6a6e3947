package wire

import "errors"

// ErrInvalidParameterType is returned by Normalize for values with no
// textual representation the encoders understand.
var ErrInvalidParameterType = errors.New("wire: parameter is not a string or byte slice")

// Normalize folds a textual value into the canonical string form the
// encoders work with. Values crossing the API boundary may be held as
// string or []byte depending on where they came from (config, parsed
// messages, plugin data); they are converted here, once, before any
// concatenation happens. Byte slices are copied by the conversion, so the
// result never aliases the caller's buffer.
func Normalize(v interface{}) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case []byte:
		return string(t), nil
	default:
		return "", ErrInvalidParameterType
	}
}
