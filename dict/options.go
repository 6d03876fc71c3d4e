package dict

import (
	"github.com/signadot/nestpath/ir/dpath"
)

type dictOpts struct {
	rules  []pathRule
	frozen []dpath.Path
	err    error
}

type pathRule struct {
	path dpath.Path
	rule Rule
}

type Option func(*dictOpts)

// WithValidation checks every value stored at path against rule. Values
// already present when the Dict is built are checked too.
func WithValidation(path string, rule Rule) Option {
	return func(o *dictOpts) {
		p, err := dpath.Parse(path)
		if err != nil {
			o.setErr(err)
			return
		}
		o.rules = append(o.rules, pathRule{path: p, rule: rule})
	}
}

// WithFrozen makes paths read only from the start.
func WithFrozen(paths ...string) Option {
	return func(o *dictOpts) {
		for _, path := range paths {
			p, err := dpath.Parse(path)
			if err != nil {
				o.setErr(err)
				return
			}
			o.frozen = append(o.frozen, p)
		}
	}
}

func (o *dictOpts) setErr(err error) {
	if o.err == nil {
		o.err = err
	}
}
