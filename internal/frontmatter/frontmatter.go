package frontmatter

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter indicates the document started with a YAML
// front matter delimiter but did not contain a closing delimiter.
var ErrMissingClosingDelimiter = errors.New("front matter start delimiter found but closing delimiter is missing")

var delimiter = []byte("---\n")

// Split separates YAML front matter (`---` delimited) from the markdown body.
// Delimiters follow the document's own newline style, so CRLF sources are
// recognized too.
//
// If the document does not start with a front matter delimiter, had is false
// and body is the full input.
func Split(content []byte) (raw []byte, body []byte, had bool, err error) {
	nl := detectNewline(content)
	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, nil
	}

	rest := content[len(open):]

	// An immediately closed block means empty front matter.
	if bytes.HasPrefix(rest, open) {
		return []byte{}, rest[len(open):], true, nil
	}

	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(rest, closeSeq)
	if idx < 0 {
		// Allow a closing delimiter at EOF without a trailing newline.
		if bytes.HasSuffix(rest, []byte(nl+"---")) {
			return rest[:len(rest)-len("---")], []byte{}, true, nil
		}
		return nil, nil, false, ErrMissingClosingDelimiter
	}

	return rest[:idx+len(nl)], rest[idx+len(closeSeq):], true, nil
}

// detectNewline returns the first newline sequence found in content, so the
// delimiter matching follows whichever style the source file uses.
func detectNewline(content []byte) string {
	for i := range content {
		switch content[i] {
		case '\r':
			if i+1 < len(content) && content[i+1] == '\n' {
				return "\r\n"
			}
		case '\n':
			return "\n"
		}
	}
	return "\n"
}

// Join reassembles a document from raw front matter and body using `---`
// delimiters. The raw front matter must be newline-terminated.
func Join(raw []byte, body []byte) []byte {
	out := make([]byte, 0, 2*len(delimiter)+len(raw)+len(body))
	out = append(out, delimiter...)
	out = append(out, raw...)
	out = append(out, delimiter...)
	out = append(out, body...)
	return out
}

// Parse parses raw YAML front matter (without --- delimiters) into a map.
func Parse(raw []byte) (map[string]any, error) {
	if len(raw) == 0 {
		return map[string]any{}, nil
	}

	var fields map[string]any
	if err := yaml.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}
