// Package annotation parses inline relation annotation blocks.
//
// A block starts with the @relation marker opening a comment line and runs to the
// end of that comment region: the closing */ of a block comment, or the last
// of a run of consecutive // lines.
//
//	/* @relation
//	   type: hasMany
//	   keyTo: author_id
//	*/
//
//	// @relation
//	// type: belongsTo
//	// keyFrom: null
package annotation

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Marker introduces an annotation block.
const Marker = "@relation"

// Value is a tri-state annotation value: absent, null, or set.
type Value struct {
	Set  bool   // key appeared in the block
	Null bool   // value was the literal null
	Str  string // raw string value
}

// String returns the value as a string; null and absent values yield "".
func (v Value) String() string {
	if !v.Set || v.Null {
		return ""
	}
	return v.Str
}

// Bool is a tri-state boolean.
type Bool struct {
	Set  bool
	Null bool
	Val  bool
}

// Fields holds the keys recognized in an annotation block.
type Fields struct {
	Type         Value
	KeyFrom      Value
	KeyTo        Value
	ModelFrom    Value
	ModelTo      Value
	ModelThrough Value
	KeyThrough   Value
	Multiple     Bool
}

// Empty reports whether no recognized key was parsed.
func (f Fields) Empty() bool {
	return f == Fields{}
}

// Parse looks for an annotation block in text. The second return value is
// false only when no marker is present; a marker followed by no parseable
// lines yields empty Fields and true.
func Parse(text string) (Fields, bool) {
	block, ok := extract(text)
	if !ok {
		return Fields{}, false
	}

	var f Fields
	for _, line := range strings.Split(block, "\n") {
		key, raw, ok := splitLine(line)
		if !ok {
			continue
		}
		f.set(key, raw)
	}
	return f, true
}

// extract returns the raw text of the block following the marker.
func extract(text string) (string, bool) {
	idx, prefix := locate(text)
	if idx < 0 {
		return "", false
	}
	rest := text[idx+len(Marker):]

	// Block comment: everything up to the closing delimiter.
	if open := strings.LastIndex(text[:idx], "/*"); open >= 0 && !strings.Contains(text[open:idx], "*/") {
		if end := strings.Index(rest, "*/"); end >= 0 {
			rest = rest[:end]
		}
		return rest, true
	}

	// Line comments: the marker's own line plus following // lines.
	if strings.HasPrefix(prefix, "//") {
		lines := strings.Split(rest, "\n")
		kept := lines[:1]
		for _, l := range lines[1:] {
			if !strings.HasPrefix(strings.TrimSpace(l), "//") {
				break
			}
			kept = append(kept, l)
		}
		return strings.Join(kept, "\n"), true
	}

	// Bare marker (e.g. a doc string already stripped of comment syntax).
	return rest, true
}

// locate returns the offset of the first marker that is a whole word and
// opens its comment line, with the trimmed text preceding it on that line.
func locate(text string) (int, string) {
	for from := 0; from < len(text); {
		i := strings.Index(text[from:], Marker)
		if i < 0 {
			break
		}
		idx := from + i
		from = idx + len(Marker)

		if r, _ := utf8.DecodeRuneInString(text[from:]); r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		lineStart := strings.LastIndexByte(text[:idx], '\n') + 1
		prefix := strings.TrimSpace(text[lineStart:idx])
		switch prefix {
		case "", "//", "/*", "/**", "*":
			return idx, prefix
		}
	}
	return -1, ""
}

// splitLine parses one "key: value" line, ignoring comment decoration.
func splitLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "//")
	line = strings.TrimPrefix(strings.TrimSpace(line), "*")
	line = strings.TrimSpace(line)

	key, value, ok := strings.Cut(line, ":")
	if !ok {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	value = strings.TrimSuffix(value, ",")
	if key == "" || strings.ContainsAny(key, " \t") {
		return "", "", false
	}
	return key, unquote(value), true
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' || s[0] == '\'' || s[0] == '`') && s[len(s)-1] == s[0] {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func (f *Fields) set(key, raw string) {
	var dst *Value
	switch key {
	case "type":
		dst = &f.Type
	case "keyFrom":
		dst = &f.KeyFrom
	case "keyTo":
		dst = &f.KeyTo
	case "modelFrom":
		dst = &f.ModelFrom
	case "modelTo":
		dst = &f.ModelTo
	case "modelThrough":
		dst = &f.ModelThrough
	case "keyThrough":
		dst = &f.KeyThrough
	case "multiple":
		f.Multiple = coerceBool(raw)
		return
	default:
		return
	}
	*dst = coerce(raw)
}

func coerce(raw string) Value {
	if raw == "null" {
		return Value{Set: true, Null: true}
	}
	return Value{Set: true, Str: raw}
}

// coerceBool maps true/false to booleans and null to null. Any other
// value is not a boolean and leaves the key unset.
func coerceBool(raw string) Bool {
	switch raw {
	case "true":
		return Bool{Set: true, Val: true}
	case "false":
		return Bool{Set: true}
	case "null":
		return Bool{Set: true, Null: true}
	}
	return Bool{}
}
