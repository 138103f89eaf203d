package bi

import "testing"

// ─────────────────────────────────────────────────────────────────────────────
// Bitwise ops against int64 oracle
// ─────────────────────────────────────────────────────────────────────────────

func TestBitwise_AgainstInt64Oracle(t *testing.T) {
	values := []int64{0, 1, -1, 5, -5, 255, -255, 123456, -123456, 1 << 40, -(1 << 40)}

	for _, a := range values {
		for _, b := range values {
			x, y := FromInt64(a), FromInt64(b)

			if got, err := And(x, y); err != nil {
				t.Fatalf("And(%d,%d): %v", a, b, err)
			} else if want := a & b; got.Int64() != want {
				t.Errorf("And(%d,%d) = %d, want %d", a, b, got.Int64(), want)
			}

			if got, err := Or(x, y); err != nil {
				t.Fatalf("Or(%d,%d): %v", a, b, err)
			} else if want := a | b; got.Int64() != want {
				t.Errorf("Or(%d,%d) = %d, want %d", a, b, got.Int64(), want)
			}

			if got, err := Xor(x, y); err != nil {
				t.Fatalf("Xor(%d,%d): %v", a, b, err)
			} else if want := a ^ b; got.Int64() != want {
				t.Errorf("Xor(%d,%d) = %d, want %d", a, b, got.Int64(), want)
			}
		}

		if got, err := Not(FromInt64(a)); err != nil {
			t.Fatalf("Not(%d): %v", a, err)
		} else if want := ^a; got.Int64() != want {
			t.Errorf("Not(%d) = %d, want %d", a, got.Int64(), want)
		}
	}
}

func TestNot_IsSelfInverse(t *testing.T) {
	x := mustFromString(t, "123456789012345678901234567890", 10)
	n1, err := Not(x)
	if err != nil {
		t.Fatal(err)
	}
	n2, err := Not(n1)
	if err != nil {
		t.Fatal(err)
	}
	if !Eq(n2, x) {
		t.Errorf("Not(Not(x)) = %s, want %s", n2.String(), x.String())
	}
}

func TestBitwise_DeMorgan(t *testing.T) {
	x := mustFromString(t, "-987654321987654321", 10)
	y := mustFromString(t, "123456789123456789", 10)

	notX, err := Not(x)
	if err != nil {
		t.Fatal(err)
	}
	notY, err := Not(y)
	if err != nil {
		t.Fatal(err)
	}

	lhs, err := Not(mustAnd(t, x, y))
	if err != nil {
		t.Fatal(err)
	}
	rhs, err := Or(notX, notY)
	if err != nil {
		t.Fatal(err)
	}
	if !Eq(lhs, rhs) {
		t.Errorf("!(x&y) = %s, want !x|!y = %s", lhs.String(), rhs.String())
	}
}

func mustAnd(t *testing.T, x, y Int) Int {
	t.Helper()
	r, err := And(x, y)
	if err != nil {
		t.Fatalf("And: %v", err)
	}
	return r
}

func TestBitwiseAssign(t *testing.T) {
	x := FromInt64(0b1100)
	if err := x.AndAssign(FromInt64(0b1010)); err != nil {
		t.Fatal(err)
	}
	if x.Int64() != 0b1000 {
		t.Errorf("AndAssign: got %d, want %d", x.Int64(), 0b1000)
	}

	y := FromInt64(0b1100)
	if err := y.OrAssign(FromInt64(0b0011)); err != nil {
		t.Fatal(err)
	}
	if y.Int64() != 0b1111 {
		t.Errorf("OrAssign: got %d, want %d", y.Int64(), 0b1111)
	}

	z := FromInt64(0b1100)
	if err := z.XorAssign(FromInt64(0b1010)); err != nil {
		t.Fatal(err)
	}
	if z.Int64() != 0b0110 {
		t.Errorf("XorAssign: got %d, want %d", z.Int64(), 0b0110)
	}

	w := FromInt64(0)
	if err := w.NotAssign(); err != nil {
		t.Fatal(err)
	}
	if w.Int64() != -1 {
		t.Errorf("NotAssign: got %d, want -1", w.Int64())
	}
}
