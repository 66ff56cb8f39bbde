package rcl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrTrailingData reports input that continues after the first JSON value.
var ErrTrailingData = errors.New("trailing data after json value")

// DocFromJSON reads one JSON value from r and builds a document for it in
// the collection layout used throughout this package: collections render on
// one line when they fit and one element per indented line with a trailing
// comma when they do not. Object key order is preserved. Records with
// identifier-safe keys use `key = value` fields; other keys stay quoted
// with `"key": value`.
func DocFromJSON(r io.Reader) (Doc, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	doc, err := jsonValue(dec)
	if err != nil {
		return Doc{}, fmt.Errorf("parse json: %w", err)
	}
	if dec.More() {
		return Doc{}, ErrTrailingData
	}
	return doc, nil
}

func jsonValue(dec *json.Decoder) (Doc, error) {
	tok, err := dec.Token()
	if err != nil {
		return Doc{}, err
	}
	return jsonToken(dec, tok)
}

func jsonToken(dec *json.Decoder, tok json.Token) (Doc, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			return jsonList(dec)
		case '{':
			return jsonRecord(dec)
		}
		return Doc{}, fmt.Errorf("unexpected delimiter %q", t.String())
	case bool:
		if t {
			return Text("true").WithMarkup(MarkupKeyword), nil
		}
		return Text("false").WithMarkup(MarkupKeyword), nil
	case json.Number:
		// The literal source text passes through, so precision is never
		// lost to a float round-trip.
		return Text(t.String()).WithMarkup(MarkupNumber), nil
	case string:
		return jsonString(t), nil
	case nil:
		return Text("null").WithMarkup(MarkupKeyword), nil
	default:
		return Doc{}, fmt.Errorf("unexpected token %v", tok)
	}
}

func jsonString(s string) Doc {
	return Text(strconv.Quote(s)).WithMarkup(MarkupString)
}

// comma is the element separator: "," plus a space wide, a newline tall.
func comma() Doc {
	return Concat(Text(","), Sep)
}

func jsonList(dec *json.Decoder) (Doc, error) {
	var elements []Doc
	for dec.More() {
		elem, err := jsonValue(dec)
		if err != nil {
			return Doc{}, err
		}
		elements = append(elements, elem)
	}
	if _, err := dec.Token(); err != nil {
		return Doc{}, err
	}
	if len(elements) == 0 {
		return Text("[]"), nil
	}
	return Group(
		Text("["),
		SoftBreak,
		Indent(Join(elements, comma()), Tall(",")),
		SoftBreak,
		Text("]"),
	), nil
}

func jsonRecord(dec *json.Decoder) (Doc, error) {
	var fields []Doc
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Doc{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return Doc{}, fmt.Errorf("unexpected object key %v", tok)
		}
		value, err := jsonValue(dec)
		if err != nil {
			return Doc{}, err
		}
		fields = append(fields, jsonField(key, value))
	}
	if _, err := dec.Token(); err != nil {
		return Doc{}, err
	}
	if len(fields) == 0 {
		return Text("{}"), nil
	}
	return Group(
		Text("{"),
		Sep,
		Indent(Join(fields, comma()), Tall(",")),
		Sep,
		Text("}"),
	), nil
}

func jsonField(key string, value Doc) Doc {
	if isIdentifier(key) {
		return Concat(Text(key).WithMarkup(MarkupIdentifier), Text(" = "), value)
	}
	return Concat(jsonString(key), Text(": "), value)
}

// isIdentifier reports whether key can be written as a bare field name.
func isIdentifier(key string) bool {
	if key == "" {
		return false
	}
	for i, r := range key {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		case r == '-':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
