package stylecast

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Property is a style property name from the fixed enumerated set.
type Property string

// The full property set accepted by NewRule. Anything else is rejected
// with InvalidPropertyError at construction time.
const (
	PropBackgroundColor Property = "background-color"
	PropTextColor       Property = "text-color"
	PropBorder          Property = "border"
	PropBorderRadius    Property = "border-radius"
	PropFontFamily      Property = "font-family"
	PropFontSize        Property = "font-size"
	PropMinWidth        Property = "min-width"
	PropMaxWidth        Property = "max-width"
	PropMinHeight       Property = "min-height"
	PropMaxHeight       Property = "max-height"
	PropPadding         Property = "padding"
	PropOpacity         Property = "opacity"
)

// ValueKind discriminates the shape of a property value.
type ValueKind int

// Kinds of values the property set uses.
const (
	ValueColor    ValueKind = iota // hex color token
	ValueLength                    // single pixel length
	ValueLengths                   // 1-4 pixel lengths (padding shorthand)
	ValueNumber                    // float, e.g. opacity
	ValueBorder                    // border shorthand or "none"
	ValueFontList                  // comma-separated font fallback list
)

// propertyKinds fixes the accepted value shape per property.
var propertyKinds = map[Property]ValueKind{
	PropBackgroundColor: ValueColor,
	PropTextColor:       ValueColor,
	PropBorder:          ValueBorder,
	PropBorderRadius:    ValueLength,
	PropFontFamily:      ValueFontList,
	PropFontSize:        ValueLength,
	PropMinWidth:        ValueLength,
	PropMaxWidth:        ValueLength,
	PropMinHeight:       ValueLength,
	PropMaxHeight:       ValueLength,
	PropPadding:         ValueLengths,
	PropOpacity:         ValueNumber,
}

// KnownProperty reports whether name is part of the property set.
func KnownProperty(name string) bool {
	_, ok := propertyKinds[Property(name)]
	return ok
}

// Properties returns the full property set, sorted by name.
func Properties() []Property {
	props := make([]Property, 0, len(propertyKinds))
	for p := range propertyKinds {
		props = append(props, p)
	}
	sort.Slice(props, func(i, j int) bool { return props[i] < props[j] })
	return props
}

// Value is a validated, normalized property value. Values are built by
// NewRule only and never mutated afterward.
type Value struct {
	kind ValueKind
	text string // normalized textual form
	num  float64
	px   []int
}

// Kind returns the value's shape.
func (v Value) Kind() ValueKind { return v.kind }

// String returns the normalized textual form, e.g. "#2196f3" or "6px 12px".
func (v Value) String() string { return v.text }

// Px returns the pixel length for single-length values, or the first
// length for multi-length values.
func (v Value) Px() (int, bool) {
	if len(v.px) == 0 {
		return 0, false
	}
	return v.px[0], true
}

// Lengths returns a copy of all pixel lengths carried by the value.
func (v Value) Lengths() []int {
	if len(v.px) == 0 {
		return nil
	}
	out := make([]int, len(v.px))
	copy(out, v.px)
	return out
}

// Number returns the numeric payload for ValueNumber values.
func (v Value) Number() (float64, bool) {
	if v.kind != ValueNumber {
		return 0, false
	}
	return v.num, true
}

// normalizeValue validates raw against the property's value shape and
// returns the normalized Value. The returned error is always an
// *InvalidPropertyError.
func normalizeValue(p Property, raw string) (Value, error) {
	kind, ok := propertyKinds[p]
	if !ok {
		return Value{}, &InvalidPropertyError{Property: string(p), Value: raw, Reason: "unknown property"}
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Value{}, &InvalidPropertyError{Property: string(p), Value: raw, Reason: "empty value"}
	}

	fail := func(reason string) (Value, error) {
		return Value{}, &InvalidPropertyError{Property: string(p), Value: raw, Reason: reason}
	}

	switch kind {
	case ValueColor:
		hex, err := normalizeColor(raw)
		if err != nil {
			return fail(err.Error())
		}
		return Value{kind: kind, text: hex}, nil

	case ValueLength:
		px, err := parseLength(raw)
		if err != nil {
			return fail(err.Error())
		}
		return Value{kind: kind, text: fmt.Sprintf("%dpx", px), px: []int{px}}, nil

	case ValueLengths:
		fields := strings.Fields(raw)
		if len(fields) < 1 || len(fields) > 4 {
			return fail("want 1 to 4 lengths")
		}
		px := make([]int, len(fields))
		parts := make([]string, len(fields))
		for i, f := range fields {
			n, err := parseLength(f)
			if err != nil {
				return fail(err.Error())
			}
			px[i] = n
			parts[i] = fmt.Sprintf("%dpx", n)
		}
		return Value{kind: kind, text: strings.Join(parts, " "), px: px}, nil

	case ValueNumber:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fail("not a number")
		}
		if f < 0 || f > 1 {
			return fail("opacity must be in [0,1]")
		}
		return Value{kind: kind, text: strconv.FormatFloat(f, 'g', -1, 64), num: f}, nil

	case ValueBorder:
		text, px, err := normalizeBorder(raw)
		if err != nil {
			return fail(err.Error())
		}
		return Value{kind: kind, text: text, px: px}, nil

	case ValueFontList:
		families := strings.Split(raw, ",")
		for i, fam := range families {
			fam = strings.Trim(strings.TrimSpace(fam), `"'`)
			if fam == "" {
				return fail("empty font family name")
			}
			families[i] = fam
		}
		return Value{kind: kind, text: strings.Join(families, ", ")}, nil
	}

	return fail("unsupported value shape")
}

// normalizeColor accepts #RGB, #RRGGBB and rgb(r,g,b) tokens and returns
// the lowercase #rrggbb form.
func normalizeColor(raw string) (string, error) {
	lower := strings.ToLower(strings.TrimSpace(raw))

	if strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")") {
		body := lower[len("rgb(") : len(lower)-1]
		parts := strings.Split(body, ",")
		if len(parts) != 3 {
			return "", fmt.Errorf("rgb() wants 3 components")
		}
		var c [3]int
		for i, part := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || n < 0 || n > 255 {
				return "", fmt.Errorf("rgb() component %q out of range", strings.TrimSpace(part))
			}
			c[i] = n
		}
		col := colorful.Color{R: float64(c[0]) / 255, G: float64(c[1]) / 255, B: float64(c[2]) / 255}
		return col.Hex(), nil
	}

	if strings.HasPrefix(lower, "#") {
		col, err := colorful.Hex(lower)
		if err != nil {
			return "", fmt.Errorf("bad hex color token")
		}
		return col.Hex(), nil
	}

	return "", fmt.Errorf("color must be a #hex or rgb() token")
}

// borderStyles are the line styles the border shorthand accepts.
var borderStyles = map[string]bool{
	"solid":  true,
	"dashed": true,
	"dotted": true,
}

// normalizeBorder parses "none" or "<length> <style> <color>".
func normalizeBorder(raw string) (string, []int, error) {
	if strings.EqualFold(raw, "none") {
		return "none", nil, nil
	}

	fields := strings.Fields(raw)
	if len(fields) != 3 {
		return "", nil, fmt.Errorf(`border wants "none" or "<length> <style> <color>"`)
	}

	px, err := parseLength(fields[0])
	if err != nil {
		return "", nil, err
	}
	style := strings.ToLower(fields[1])
	if !borderStyles[style] {
		return "", nil, fmt.Errorf("unknown border style %q", fields[1])
	}
	hex, err := normalizeColor(fields[2])
	if err != nil {
		return "", nil, err
	}

	return fmt.Sprintf("%dpx %s %s", px, style, hex), []int{px}, nil
}

// parseLength parses a non-negative integer pixel length, with or
// without the px suffix.
func parseLength(raw string) (int, error) {
	s := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(raw)), "px")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad length %q", raw)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative length %q", raw)
	}
	return n, nil
}
