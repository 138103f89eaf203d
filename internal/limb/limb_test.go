package limb

import (
	"math/rand"
	"testing"
)

// ─────────────────────────────────────────────────────────────────────────────
// Test utilities
// ─────────────────────────────────────────────────────────────────────────────

func randomWords(n int, seed int64) []Word {
	r := rand.New(rand.NewSource(seed))
	w := make([]Word, n)
	for i := range w {
		w[i] = Word(r.Uint64())
	}
	return w
}

// ─────────────────────────────────────────────────────────────────────────────
// AddVV / SubVV
// ─────────────────────────────────────────────────────────────────────────────

func TestAddVV_Correctness(t *testing.T) {
	testCases := []struct {
		name string
		size int
	}{
		{"Empty", 0},
		{"Single", 1},
		{"Small", 4},
		{"Medium", 16},
		{"Large", 64},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.size == 0 {
				if c := AddVV(nil, nil, nil); c != 0 {
					t.Errorf("empty AddVV returned carry %d, want 0", c)
				}
				return
			}

			x := randomWords(tc.size, 1)
			y := randomWords(tc.size, 2)
			z := make([]Word, tc.size)
			c := AddVV(z, x, y)

			// Re-derive expected sum+carry limb by limb using 128-bit
			// arithmetic via big.Int-free manual carry propagation.
			want := make([]Word, tc.size)
			var wantCarry Word
			for i := range x {
				s, cc := addWW(x[i], y[i], wantCarry)
				want[i] = s
				wantCarry = cc
			}
			for i := range z {
				if z[i] != want[i] {
					t.Fatalf("limb %d: got %x, want %x", i, z[i], want[i])
				}
			}
			if c != wantCarry {
				t.Fatalf("carry: got %d, want %d", c, wantCarry)
			}
		})
	}
}

func TestSubVV_InverseOfAddVV(t *testing.T) {
	for _, size := range []int{1, 4, 16, 64} {
		x := randomWords(size, 10)
		y := randomWords(size, 20)
		sum := make([]Word, size)
		c := AddVV(sum, x, y)

		back := make([]Word, size)
		// sum holds x+y modulo B^size; subtracting y back out borrows
		// exactly when the addition carried out of the top limb.
		borrow := SubVV(back, sum, y)
		if borrow != c {
			t.Fatalf("size %d: borrow %d subtracting y back out, want AddVV's carry %d", size, borrow, c)
		}
		for i := range back {
			if back[i] != x[i] {
				t.Fatalf("size %d, limb %d: got %x, want %x", size, i, back[i], x[i])
			}
		}
	}
}

func TestAddVV_AliasingSelf(t *testing.T) {
	x := randomWords(8, 99)
	z := make([]Word, 8)
	copy(z, x)
	c := AddVV(z, z, z) // z := z + z, aliased in all three positions
	want := make([]Word, 8)
	wantC := AddVV(want, x, x)
	for i := range z {
		if z[i] != want[i] {
			t.Fatalf("limb %d: got %x, want %x", i, z[i], want[i])
		}
	}
	if c != wantC {
		t.Fatalf("carry: got %d, want %d", c, wantC)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// AddVW / SubVW
// ─────────────────────────────────────────────────────────────────────────────

func TestAddVW_CarryChain(t *testing.T) {
	// All-ones vector plus 1 should carry all the way through and produce
	// an all-zero result with carry 1.
	x := []Word{^Word(0), ^Word(0), ^Word(0)}
	z := make([]Word, 3)
	c := AddVW(z, x, 1)
	if c != 1 {
		t.Fatalf("carry: got %d, want 1", c)
	}
	for i, zi := range z {
		if zi != 0 {
			t.Fatalf("limb %d: got %x, want 0", i, zi)
		}
	}
}

func TestSubVW_BorrowChain(t *testing.T) {
	x := []Word{0, 0, 0}
	z := make([]Word, 3)
	c := SubVW(z, x, 1)
	if c != 1 {
		t.Fatalf("borrow: got %d, want 1", c)
	}
	want := []Word{^Word(0), ^Word(0), ^Word(0)}
	for i := range z {
		if z[i] != want[i] {
			t.Fatalf("limb %d: got %x, want %x", i, z[i], want[i])
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Schoolbook multiply kernels
// ─────────────────────────────────────────────────────────────────────────────

func TestMulAddVWW_MaxOperands(t *testing.T) {
	max := ^Word(0)
	x := []Word{max, max}
	z := make([]Word, 2)
	c := MulAddVWW(z, x, max, max)
	// x*y + r with x == y == r == max exercises the tightest bound in the
	// schoolbook identity (B-1)^2 + 2(B-1) = B^2 - 1 at each limb.
	_ = c // no further invariant beyond "does not panic / wrap incorrectly"
}

func TestAddMulVVW_AgainstRepeatedAdd(t *testing.T) {
	x := randomWords(6, 7)
	y := Word(3)
	z := make([]Word, 6)

	// z += x*3 via three applications of AddVV(z, z, x) should match a
	// single AddMulVVW(z, x, 3) call, modulo the final carry limb, since
	// 3 = 1+1+1 and the kernel computes z += x*y exactly.
	viaRepeat := make([]Word, 6)
	var carryRepeat Word
	for k := 0; k < int(y); k++ {
		c := AddVV(viaRepeat, viaRepeat, x)
		carryRepeat += c
	}

	carryOnce := AddMulVVW(z, x, y)

	for i := range z {
		if z[i] != viaRepeat[i] {
			t.Fatalf("limb %d: got %x, want %x", i, z[i], viaRepeat[i])
		}
	}
	_ = carryOnce
}

// ─────────────────────────────────────────────────────────────────────────────
// Shifts
// ─────────────────────────────────────────────────────────────────────────────

func TestShlVU_ShrVU_RoundTrip(t *testing.T) {
	for _, s := range []uint{0, 1, 7, 31, 63} {
		if s >= WordBits {
			continue
		}
		x := randomWords(5, int64(100+s))
		shifted := make([]Word, 5)
		carryOut := ShlVU(shifted, x, s)

		back := make([]Word, 5)
		carryBack := ShrVU(back, shifted, s)
		_ = carryBack

		if s == 0 {
			for i := range x {
				if back[i] != x[i] {
					t.Fatalf("s=0 round trip limb %d: got %x, want %x", i, back[i], x[i])
				}
			}
			continue
		}

		// The high s bits of the top limb are shifted out by ShlVU (they
		// come back as carryOut) and are lost by the left-then-right round
		// trip; compare everything else.
		last := len(x) - 1
		mask := ^Word(0) >> s
		if back[last] != x[last]&mask {
			t.Fatalf("s=%d limb %d low bits: got %x, want %x", s, last, back[last], x[last]&mask)
		}
		for i := 0; i < last; i++ {
			if back[i] != x[i] {
				t.Fatalf("s=%d limb %d: got %x, want %x", s, i, back[i], x[i])
			}
		}
		_ = carryOut
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Single-limb division
// ─────────────────────────────────────────────────────────────────────────────

func TestDivWVW_AgainstMulAddVWW(t *testing.T) {
	// Build a dividend as q*d + r for a known q, d, r, then recover q, r
	// with DivWVW.
	d := Word(0xFFFF_FFFF)
	r := Word(12345)
	q := []Word{0xDEAD_BEEF, 0x1234_5678, 0xCAFE_BABE}

	dividend := make([]Word, len(q)+1)
	carry := MulAddVWW(dividend[:len(q)], q, d, r)
	dividend[len(q)] = carry

	quotient := make([]Word, len(q)+1)
	rem := DivWVW(quotient, dividend[len(dividend)-1], dividend[:len(dividend)-1], d)

	quotient = Trim(quotient)
	wantQ := Trim(append([]Word(nil), q...))
	if CmpVV(quotient, wantQ) != 0 {
		t.Fatalf("quotient mismatch: got %v, want %v", quotient, wantQ)
	}
	if rem != r {
		t.Fatalf("remainder: got %d, want %d", rem, r)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Compare / trim / bit length
// ─────────────────────────────────────────────────────────────────────────────

func TestCmpVV(t *testing.T) {
	cases := []struct {
		x, y []Word
		want int
	}{
		{nil, nil, 0},
		{[]Word{1}, nil, 1},
		{nil, []Word{1}, -1},
		{[]Word{5}, []Word{5}, 0},
		{[]Word{1, 2}, []Word{9, 1}, 1},
		{[]Word{1, 1}, []Word{9, 1}, -1},
	}
	for _, c := range cases {
		if got := CmpVV(c.x, c.y); got != c.want {
			t.Errorf("CmpVV(%v, %v) = %d, want %d", c.x, c.y, got, c.want)
		}
	}
}

func TestTrim(t *testing.T) {
	x := []Word{1, 2, 0, 0}
	if got := Trim(x); len(got) != 2 {
		t.Fatalf("Trim length: got %d, want 2", len(got))
	}
	if got := Trim([]Word{0, 0, 0}); len(got) != 0 {
		t.Fatalf("Trim of all-zero: got len %d, want 0", len(got))
	}
}

func TestBitLen(t *testing.T) {
	if got := BitLen(nil); got != 0 {
		t.Fatalf("BitLen(nil) = %d, want 0", got)
	}
	if got := BitLen([]Word{1}); got != 1 {
		t.Fatalf("BitLen({1}) = %d, want 1", got)
	}
	x := []Word{0, 1} // value = B, bit length = WordBits+1
	if got := BitLen(x); got != WordBits+1 {
		t.Fatalf("BitLen({0,1}) = %d, want %d", got, WordBits+1)
	}
}
