package encode

import "github.com/signadot/nestpath/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// EncodePretty indents JSON output. YAML is always indented.
func EncodePretty(v bool) EncodeOption {
	return func(es *EncState) { es.pretty = v }
}
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// EncodeFlat writes every leaf as a "path = value" line, path segments
// joined by sep. Values are written as compact JSON.
func EncodeFlat(sep string) EncodeOption {
	return func(es *EncState) {
		es.flat = true
		es.flatSep = sep
	}
}
