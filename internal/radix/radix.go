package radix

import (
	"strconv"
	"strings"
)

// Base is a numeral system a 4-bit value can be shown or typed in.
type Base int

const (
	Binary Base = iota
	Decimal
	Hexadecimal
)

// MaxValue is the largest 4-bit value.
const MaxValue = 0xF

const binaryWidth = 4

// Bases lists every base in ordinal order.
func Bases() []Base {
	return []Base{Binary, Decimal, Hexadecimal}
}

func (b Base) String() string {
	switch b {
	case Binary:
		return "binary"
	case Decimal:
		return "decimal"
	case Hexadecimal:
		return "hexadecimal"
	}
	return "base(" + strconv.Itoa(int(b)) + ")"
}

// Radix returns the numeric radix of b.
func (b Base) Radix() int {
	switch b {
	case Binary:
		return 2
	case Hexadecimal:
		return 16
	}
	return 10
}

// Valid reports whether b is one of the three supported bases.
func (b Base) Valid() bool {
	return b >= Binary && b <= Hexadecimal
}

// Pair is an ordered conversion from Source to Target.
type Pair struct {
	Source Base
	Target Base
}

func (p Pair) String() string {
	return p.Source.String() + " to " + p.Target.String()
}

// Pairs returns every pair with distinct bases, grouped by source base and
// ordered by target within a source.
func Pairs() []Pair {
	pairs := make([]Pair, 0, 6)
	for _, src := range Bases() {
		for _, dst := range Bases() {
			if src == dst {
				continue
			}
			pairs = append(pairs, Pair{Source: src, Target: dst})
		}
	}
	return pairs
}

// Format renders v in base b. Binary is always four characters wide; decimal
// and hexadecimal use the minimal number of digits.
func Format(v uint8, b Base) string {
	v &= MaxValue
	if b == Binary {
		s := strconv.FormatUint(uint64(v), 2)
		return strings.Repeat("0", binaryWidth-len(s)) + s
	}
	return strconv.FormatUint(uint64(v), b.Radix())
}

// DigitCount is the number of characters Format produces for v in base b.
func DigitCount(v uint8, b Base) int {
	return len(Format(v, b))
}

// Parse reads a 4-bit value typed in base b. A false result means the text
// can never match any operand.
func Parse(text string, b Base) (uint8, bool) {
	if b == Binary {
		return parseBinary(text)
	}

	s := strings.TrimSpace(text)
	if b == Hexadecimal {
		if rest, ok := strings.CutPrefix(s, "0x"); ok {
			s = rest
		} else if rest, ok := strings.CutPrefix(s, "0X"); ok {
			s = rest
		}
	}
	if s == "" || s[0] == '+' || s[0] == '-' {
		return 0, false
	}
	n, err := strconv.ParseUint(s, b.Radix(), 8)
	if err != nil || n > MaxValue {
		return 0, false
	}
	return uint8(n), true
}

func parseBinary(text string) (uint8, bool) {
	s := strings.TrimLeft(text, " \t\r\n\v\f")
	var v uint8
	n := 0
	for n < len(s) && (s[n] == '0' || s[n] == '1') {
		v = v<<1 | (s[n] - '0')
		n++
	}
	if n == 0 || n > binaryWidth {
		return 0, false
	}
	if strings.TrimSpace(s[n:]) != "" {
		return 0, false
	}
	return v, true
}
