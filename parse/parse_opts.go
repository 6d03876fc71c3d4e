package parse

import (
	"github.com/signadot/nestpath/format"
)

type parseOpts struct {
	format   format.Format
	detect   bool
	emptyNil bool
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) {
		o.format = f
		o.detect = false
	}
}

// AllowEmpty makes an empty or blank document parse as null instead of
// failing with ErrEmpty.
func AllowEmpty() ParseOption {
	return func(o *parseOpts) { o.emptyNil = true }
}
