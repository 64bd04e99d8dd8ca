// FILE: lixenwraith/tinylog/sanitizer/sanitizer.go
// Package sanitizer rewrites message bytes according to configurable rules built from
// filter and transform flags. Output is written into caller-provided fixed buffers.
package sanitizer

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Filter flags for character matching
const (
	FilterNonPrintable uint64 = 1 << iota // Runes not printable per strconv.IsPrint
	FilterControl                         // Control characters (unicode.IsControl)
	FilterWhitespace                      // Whitespace characters (unicode.IsSpace)
	FilterShellSpecial                    // '`', '$', ';', '|', '&', '>', '<', '(', ')', '#'
)

// Transform flags for character transformation
const (
	TransformStrip      uint64 = 1 << iota // Removes the character
	TransformHexEncode                     // Encodes the rune's UTF-8 bytes as "<XXYY>"
	TransformJSONEscape                    // Backslash escapes ('\n', '\u0000')
)

// PolicyPreset names a pre-configured rule set
type PolicyPreset string

const (
	PolicyRaw   PolicyPreset = "raw"   // Passthrough
	PolicyTxt   PolicyPreset = "txt"   // Hex-encode non-printables for terminals and UARTs
	PolicyJSON  PolicyPreset = "json"  // JSON-escape control characters
	PolicyShell PolicyPreset = "shell" // Strip shell metacharacters and whitespace
)

// rule represents a single sanitization rule
type rule struct {
	filter    uint64
	transform uint64
}

var policyRules = map[PolicyPreset][]rule{
	PolicyRaw:   {},
	PolicyTxt:   {{filter: FilterNonPrintable, transform: TransformHexEncode}},
	PolicyJSON:  {{filter: FilterControl, transform: TransformJSONEscape}},
	PolicyShell: {{filter: FilterShellSpecial | FilterWhitespace, transform: TransformStrip}},
}

// Checked in flag order so matching is deterministic
var filterOrder = []uint64{FilterNonPrintable, FilterControl, FilterWhitespace, FilterShellSpecial}

var filterCheckers = map[uint64]func(rune) bool{
	FilterNonPrintable: func(r rune) bool { return !strconv.IsPrint(r) },
	FilterControl:      unicode.IsControl,
	FilterWhitespace:   unicode.IsSpace,
	FilterShellSpecial: func(r rune) bool {
		switch r {
		case '`', '$', ';', '|', '&', '>', '<', '(', ')', '#':
			return true
		}
		return false
	},
}

const hexChars = "0123456789abcdef"

// Sanitizer holds an ordered rule list. It keeps no per-call state and is safe for concurrent use once built.
type Sanitizer struct {
	rules []rule
}

// New creates a passthrough Sanitizer
func New() *Sanitizer {
	return &Sanitizer{}
}

// Rule appends a custom rule, earlier rules take precedence
func (s *Sanitizer) Rule(filter uint64, transform uint64) *Sanitizer {
	s.rules = append(s.rules, rule{filter: filter, transform: transform})
	return s
}

// Policy appends the rules of a preset
func (s *Sanitizer) Policy(preset PolicyPreset) *Sanitizer {
	if rules, ok := policyRules[preset]; ok {
		s.rules = append(s.rules, rules...)
	}
	return s
}

// Passthrough reports whether the sanitizer leaves input unchanged
func (s *Sanitizer) Passthrough() bool {
	return len(s.rules) == 0
}

// Sanitize applies all rules to a string
func (s *Sanitizer) Sanitize(data string) string {
	if s.Passthrough() {
		return data
	}
	out := make([]byte, 0, len(data))
	var tmp [16]byte
	for _, r := range data {
		out = append(out, s.transform(tmp[:0], r)...)
	}
	return string(out)
}

// Copy writes the sanitized form of src into dst and returns the number of bytes written.
// Output stops when dst is full; a transformed rune that does not fit is cut at the boundary.
func (s *Sanitizer) Copy(dst, src []byte) int {
	if s.Passthrough() {
		return copy(dst, src)
	}
	n := 0
	var tmp [16]byte
	for i := 0; i < len(src) && n < len(dst); {
		r, size := utf8.DecodeRune(src[i:])
		var piece []byte
		if r == utf8.RuneError && size == 1 {
			// Invalid byte, treat as a non-printable rune of its own
			piece = s.transformByte(tmp[:0], src[i])
		} else {
			piece = s.transform(tmp[:0], r)
		}
		n += copy(dst[n:], piece)
		i += size
	}
	return n
}

// transform returns the bytes a rune turns into, appended to buf
func (s *Sanitizer) transform(buf []byte, r rune) []byte {
	for _, rl := range s.rules {
		if matchesFilter(r, rl.filter) {
			return applyTransform(buf, r, rl.transform)
		}
	}
	return utf8.AppendRune(buf, r)
}

// transformByte handles a byte that is not valid UTF-8
func (s *Sanitizer) transformByte(buf []byte, b byte) []byte {
	for _, rl := range s.rules {
		if rl.filter&(FilterNonPrintable|FilterControl) == 0 {
			continue
		}
		switch {
		case rl.transform&TransformStrip != 0:
			return buf
		case rl.transform&TransformHexEncode != 0:
			return append(buf, '<', hexChars[b>>4], hexChars[b&0xF], '>')
		case rl.transform&TransformJSONEscape != 0:
			return append(buf, '\\', 'u', '0', '0', hexChars[b>>4], hexChars[b&0xF])
		}
	}
	return append(buf, b)
}

// matchesFilter checks if a rune matches any filter in the mask
func matchesFilter(r rune, filterMask uint64) bool {
	for _, flag := range filterOrder {
		if filterMask&flag != 0 && filterCheckers[flag](r) {
			return true
		}
	}
	return false
}

// applyTransform appends the transformed rune to buf
func applyTransform(buf []byte, r rune, transformMask uint64) []byte {
	switch {
	case transformMask&TransformStrip != 0:
		return buf

	case transformMask&TransformHexEncode != 0:
		var runeBytes [utf8.UTFMax]byte
		n := utf8.EncodeRune(runeBytes[:], r)
		buf = append(buf, '<')
		for _, b := range runeBytes[:n] {
			buf = append(buf, hexChars[b>>4], hexChars[b&0xF])
		}
		return append(buf, '>')

	case transformMask&TransformJSONEscape != 0:
		switch r {
		case '\n':
			return append(buf, '\\', 'n')
		case '\r':
			return append(buf, '\\', 'r')
		case '\t':
			return append(buf, '\\', 't')
		case '\b':
			return append(buf, '\\', 'b')
		case '\f':
			return append(buf, '\\', 'f')
		case '"':
			return append(buf, '\\', '"')
		case '\\':
			return append(buf, '\\', '\\')
		}
		if r < 0x20 || r == 0x7f {
			return append(buf, '\\', 'u', '0', '0', hexChars[(r>>4)&0xF], hexChars[r&0xF])
		}
		return utf8.AppendRune(buf, r)
	}
	return utf8.AppendRune(buf, r)
}
