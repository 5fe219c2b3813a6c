// Package textblock renders structured records as fixed-layout text.
//
// A record is described declaratively as an ordered list of fields, each
// with a label, an optional accessor and a default. The fallback policy is
// applied uniformly: a nil accessor, or one that reports the value as
// absent, renders the default.
package textblock

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// NotAvailable is the default rendered for absent values.
const NotAvailable = "N/A"

// Accessor returns a rendered value and whether it is present.
type Accessor func() (string, bool)

// Field is one labelled line of a text block.
type Field struct {
	// Label precedes the value, followed by ": ".
	Label string

	// Value yields the rendered value. Nil means always absent.
	Value Accessor

	// Default is rendered when the value is absent. Empty means NotAvailable.
	Default string

	// SameBlock joins this line to the previous one with a single newline
	// instead of a blank line.
	SameBlock bool
}

// Line renders the field as "Label: value".
func (f Field) Line() string {
	value := f.Default
	if value == "" {
		value = NotAvailable
	}
	if f.Value != nil {
		if v, ok := f.Value(); ok {
			value = v
		}
	}
	return f.Label + ": " + value
}

// Render renders fields in order, separated by blank lines.
func Render(fields ...Field) string {
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			if f.SameBlock {
				b.WriteString("\n")
			} else {
				b.WriteString("\n\n")
			}
		}
		b.WriteString(f.Line())
	}
	return b.String()
}

// Text is present when s is not blank.
func Text(s string) Accessor {
	return func() (string, bool) {
		s = strings.TrimSpace(s)
		return s, s != ""
	}
}

// Const is always present.
func Const(s string) Accessor {
	return func() (string, bool) {
		return s, true
	}
}

// Join joins the non-blank items with sep. Present when at least one item is.
func Join(items []string, sep string) Accessor {
	return func() (string, bool) {
		kept := make([]string, 0, len(items))
		for _, item := range items {
			if item = strings.TrimSpace(item); item != "" {
				kept = append(kept, item)
			}
		}
		return strings.Join(kept, sep), len(kept) > 0
	}
}

// Int renders n with thousands separators. Present when n is non-nil.
func Int(n *int64) Accessor {
	return func() (string, bool) {
		if n == nil {
			return "", false
		}
		return humanize.Comma(*n), true
	}
}

// Raw renders n as a plain integer. Present when n is non-nil.
func Raw(n *int64) Accessor {
	return func() (string, bool) {
		if n == nil {
			return "", false
		}
		return strconv.FormatInt(*n, 10), true
	}
}

// Float renders f with thousands separators, keeping at least one
// fractional digit: 9372610 renders as "9,372,610.0". Present when f is
// non-nil.
func Float(f *float64) Accessor {
	return func() (string, bool) {
		if f == nil {
			return "", false
		}
		s := humanize.Commaf(*f)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s, true
	}
}

// YesNo renders a flag. Present when b is non-nil.
func YesNo(b *bool) Accessor {
	return func() (string, bool) {
		if b == nil {
			return "", false
		}
		if *b {
			return "Yes", true
		}
		return "No", true
	}
}

// Suffixed appends suffix to a present value.
func Suffixed(a Accessor, suffix string) Accessor {
	return func() (string, bool) {
		if a == nil {
			return "", false
		}
		v, ok := a()
		if !ok {
			return "", false
		}
		return v + suffix, true
	}
}
