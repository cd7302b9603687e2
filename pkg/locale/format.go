// Package locale renders and parses spin-box values in a given locale.
//
// A [Format] pairs a BCP 47 language tag with fraction-digit limits. It is
// the "format description" side of a spin-box: the host widget displays
// Print output, feeds typed text back through Parse, and hands Precision
// to the numeric engine so stepped values round to what the field can
// actually show.
package locale

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/go-drift/spinbox/pkg/numeric"
)

// Format describes how a locale renders a numeric value.
//
// The zero Format renders integers in the root locale ("." decimal point,
// "," grouping). Fields are read-only after first use; create a new Format
// to change them.
type Format struct {
	// Tag selects the locale. The zero Tag is the und (root) locale.
	Tag language.Tag

	// MinFractionDigits pads the rendered value with trailing zeros.
	MinFractionDigits int

	// MaxFractionDigits caps the rendered fraction and doubles as the
	// rounding precision reported by Precision.
	MaxFractionDigits int

	once     sync.Once
	decSeps  map[rune]bool
	grpSeps  map[rune]bool
	minusSet map[rune]bool
}

// Precision returns the fraction-digit precision the numeric engine should
// round to for this format. A nil Format means no precision is available
// and stepping stays unrounded.
func (f *Format) Precision() int {
	if f == nil {
		return -1
	}
	return f.MaxFractionDigits
}

// Print renders v for display in the format's locale. An absent value
// renders as the empty string.
func (f *Format) Print(v numeric.Value) string {
	raw, ok := v.Float()
	if !ok {
		return ""
	}
	p := message.NewPrinter(f.Tag)
	return p.Sprint(number.Decimal(raw,
		number.MinFractionDigits(f.MinFractionDigits),
		number.MaxFractionDigits(f.MaxFractionDigits),
	))
}

// ParseError reports input that could not be read as a number in the
// format's locale.
type ParseError struct {
	// Input is the rejected text.
	Input string
	// Tag is the locale the text was parsed against.
	Tag language.Tag
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as a number in locale %v", e.Input, e.Tag)
}

// Parse reads user input in the format's locale: native digit shapes,
// grouping separators, and the locale's decimal separator are all
// accepted, as are ASCII digits and "." when "." is not the locale's
// grouping separator. Blank input parses to the absent value. Malformed
// input returns a *ParseError and the absent value.
func (f *Format) Parse(s string) (numeric.Value, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return numeric.None(), nil
	}
	f.init()

	var digits strings.Builder
	neg := false
	sawSign := false
	sawDigit := false
	sawDecimal := false
	for _, r := range trimmed {
		switch {
		case digitValue(r) >= 0:
			digits.WriteByte(byte('0' + digitValue(r)))
			sawDigit = true
		case f.decSeps[r]:
			if sawDecimal {
				return numeric.None(), &ParseError{Input: s, Tag: f.Tag}
			}
			digits.WriteByte('.')
			sawDecimal = true
		case f.grpSeps[r] || unicode.IsSpace(r):
			// Grouping is decorative; position is not validated.
		case f.minusSet[r]:
			if sawSign || sawDigit {
				return numeric.None(), &ParseError{Input: s, Tag: f.Tag}
			}
			neg = true
			sawSign = true
		case r == '+':
			if sawSign || sawDigit {
				return numeric.None(), &ParseError{Input: s, Tag: f.Tag}
			}
			sawSign = true
		case isBidiMark(r):
			// Formatters for RTL locales wrap numbers in direction marks.
		default:
			return numeric.None(), &ParseError{Input: s, Tag: f.Tag}
		}
	}
	if !sawDigit {
		return numeric.None(), &ParseError{Input: s, Tag: f.Tag}
	}

	normalized := digits.String()
	if neg {
		normalized = "-" + normalized
	}
	out, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return numeric.None(), &ParseError{Input: s, Tag: f.Tag}
	}
	return numeric.Of(out), nil
}

// init discovers the locale's separators and minus sign by probing its own
// formatter, rather than keeping a separator table in sync with CLDR.
func (f *Format) init() {
	f.once.Do(func() {
		f.decSeps = make(map[rune]bool)
		f.grpSeps = make(map[rune]bool)
		f.minusSet = map[rune]bool{'-': true, '\u2212': true}

		p := message.NewPrinter(f.Tag)

		// 1234567.8 exposes both the grouping and the decimal separator:
		// every non-digit before the final one groups, the final one is
		// the decimal point.
		probe := p.Sprint(number.Decimal(1234567.8,
			number.MinFractionDigits(1), number.MaxFractionDigits(1)))
		var seps []rune
		for _, r := range probe {
			if digitValue(r) < 0 && !isBidiMark(r) {
				seps = append(seps, r)
			}
		}
		if len(seps) > 0 {
			f.decSeps[seps[len(seps)-1]] = true
			for _, r := range seps[:len(seps)-1] {
				f.grpSeps[r] = true
			}
		}
		if !f.grpSeps['.'] {
			f.decSeps['.'] = true
		}

		for _, r := range p.Sprint(number.Decimal(-1)) {
			if digitValue(r) < 0 && !isBidiMark(r) && !unicode.IsSpace(r) {
				f.minusSet[r] = true
			}
		}
	})
}

// digitValue returns the numeric value of a decimal digit in any script,
// or -1 for non-digits.
func digitValue(r rune) int {
	if r >= '0' && r <= '9' {
		return int(r - '0')
	}
	if !unicode.IsDigit(r) {
		return -1
	}
	// Decimal digits occupy contiguous runs of ten ending at the script's
	// nine; walk down to the run's zero.
	zero := r
	for zero > 0 && r-zero < 9 && unicode.IsDigit(zero-1) {
		zero--
	}
	return int(r - zero)
}

// isBidiMark reports the direction-control runes RTL formatters emit
// around numbers.
func isBidiMark(r rune) bool {
	switch r {
	case '\u200e', '\u200f', '\u061c':
		return true
	}
	return false
}
