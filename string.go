package bi

import (
	"strings"

	"github.com/OTheDev/bi/internal/bierr"
	"github.com/OTheDev/bi/internal/limb"
)

const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// chunkConsts returns, for a given base, the largest exponent E such
// that base^E fits in a single limb.Word, and P = base^E itself (spec
// §4.7, §4.10): rather than processing one digit per limb operation,
// the parser and formatter batch E digits into a single mul_add_limb or
// single-limb division, cutting the number of multi-precision passes
// by a factor of E.
func chunkConsts(base int) (e int, p limb.Word) {
	p = 1
	maxWord := ^limb.Word(0)
	b := limb.Word(base)
	for p <= maxWord/b {
		p *= b
		e++
	}
	return e, p
}

func digitValue(c byte, base int) (int, bool) {
	var v int
	switch {
	case c >= '0' && c <= '9':
		v = int(c - '0')
	case c >= 'a' && c <= 'z':
		v = int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		v = int(c-'A') + 10
	default:
		return 0, false
	}
	if v >= base {
		return 0, false
	}
	return v, true
}

// FromString parses s as a signed integer in the given base (2..36),
// spec §4.10: optional leading ASCII whitespace (space, \t, \n, \r, \v,
// \f), then an optional '-' or '+', followed by one or more
// valid digits for base, and nothing else. Digits are consumed in
// batches of chunkConsts(base) at a time via mul_add_limb.
func FromString(s string, base int) (Int, error) {
	if base < 2 || base > 36 {
		return Int{}, bierr.New(bierr.InvalidArgument, "FromString: base %d out of range [2,36]", base)
	}
	if s == "" {
		return Int{}, bierr.New(bierr.ParseError, "FromString: empty string")
	}

	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r' || s[i] == '\v' || s[i] == '\f') {
		i++
	}

	neg := false
	switch {
	case i < len(s) && s[i] == '-':
		neg = true
		i++
	case i < len(s) && s[i] == '+':
		i++
	}
	if i == len(s) {
		return Int{}, bierr.New(bierr.ParseError, "FromString: no digits after sign")
	}

	e, _ := chunkConsts(base)
	var mag []limb.Word
	var err error

	for i < len(s) {
		end := i + e
		if end > len(s) {
			end = len(s)
		}
		chunkBase := limb.Word(1)
		var chunkVal limb.Word
		for j := i; j < end; j++ {
			d, ok := digitValue(s[j], base)
			if !ok {
				return Int{}, bierr.New(bierr.ParseError, "FromString: invalid digit %q for base %d", s[j], base)
			}
			chunkVal = chunkVal*limb.Word(base) + limb.Word(d)
			chunkBase *= limb.Word(base)
		}
		mag, err = mulAddLimbMag(mag, chunkBase, chunkVal)
		if err != nil {
			return Int{}, err
		}
		i = end
	}

	mag = limb.Trim(mag)
	return Int{neg: normSign(neg, mag), mag: mag}, nil
}

// Text renders x in the given base (2..36): spec §4.7. Digits are
// produced least-significant-chunk-first by repeated single-limb
// division by chunkConsts(base)'s P, then the chunk string is reversed
// and the sign prefixed.
func (x Int) Text(base int) (string, error) {
	if base < 2 || base > 36 {
		return "", bierr.New(bierr.InvalidArgument, "Text: base %d out of range [2,36]", base)
	}
	if x.IsZero() {
		return "0", nil
	}

	e, p := chunkConsts(base)

	// Estimate the output length generously: bits-per-digit for this
	// base is at least log2(base) >= 1, so at most bitlen digits are
	// written; reserving bitlen+2 bytes (digits plus sign, with one to
	// spare) keeps the buffer a single allocation without risking an
	// underestimate, well within MaxBits.
	bl := x.BitLen()
	if bl > MaxBits-8 {
		return "", bierr.New(bierr.Overflow, "Text: result would exceed representable length")
	}

	mag := append([]limb.Word(nil), x.mag...)
	var chunks []limb.Word
	for len(mag) > 0 {
		q, err := resizeMag(nil, len(mag))
		if err != nil {
			return "", err
		}
		rem := limb.DivWVW(q, 0, mag, p)
		mag = limb.Trim(q)
		chunks = append(chunks, rem)
	}

	var b strings.Builder
	b.Grow(bl + 2)
	if x.neg {
		b.WriteByte('-')
	}
	// The most significant chunk must not be zero-padded; every chunk
	// below it represents exactly e digits.
	top := chunks[len(chunks)-1]
	writeChunkDigits(&b, top, base, 0)
	for k := len(chunks) - 2; k >= 0; k-- {
		writeChunkDigits(&b, chunks[k], base, e)
	}
	return b.String(), nil
}

// writeChunkDigits writes v in the given base, left-padded with zeros
// to padWidth digits (padWidth == 0 means no padding: write the minimal
// representation).
func writeChunkDigits(b *strings.Builder, v limb.Word, base, padWidth int) {
	if padWidth == 0 {
		if v == 0 {
			b.WriteByte('0')
			return
		}
		var buf [64]byte
		n := len(buf)
		for v > 0 {
			n--
			buf[n] = digits[v%limb.Word(base)]
			v /= limb.Word(base)
		}
		b.Write(buf[n:])
		return
	}
	var buf [64]byte
	for i := padWidth - 1; i >= 0; i-- {
		buf[i] = digits[v%limb.Word(base)]
		v /= limb.Word(base)
	}
	b.Write(buf[:padWidth])
}
