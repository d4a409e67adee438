package bignum_test

import (
	"errors"
	"fmt"
	"math/big"
	"math/rand/v2"
	"sync"
	"testing"

	"bigcalc/internal/bignum"
	"bigcalc/internal/testkit"
)

func randInt(r *rand.Rand, maxLen int) bignum.Int {
	n := 1 + r.IntN(maxLen)
	digits := make([]bignum.Digit, n)
	for i := range digits {
		digits[i] = bignum.Digit(r.IntN(bignum.Base))
	}
	// Bias toward boundary digits where carries and borrows chain.
	if r.IntN(4) == 0 {
		for i := range digits {
			digits[i] = bignum.Base - 1
		}
	}
	x, err := bignum.FromDigits(digits)
	if err != nil {
		panic(err)
	}
	if r.IntN(2) == 0 {
		x = bignum.Neg(x)
	}
	return x
}

func mustEqualBig(t *testing.T, what string, got bignum.Int, want *big.Int) {
	t.Helper()
	if err := testkit.CheckInt(got); err != nil {
		t.Fatalf("%s: invariants: %v", what, err)
	}
	if got.String() != want.String() {
		t.Fatalf("%s = %s, want %s", what, got, want)
	}
}

func TestScenario40000And3(t *testing.T) {
	a := bignum.FromInt64(40000)
	b := bignum.FromInt64(3)

	if got := bignum.Add(a, b).String(); got != "40003" {
		t.Fatalf("a+b = %s, want 40003", got)
	}
	if got := bignum.Sub(a, b).String(); got != "39997" {
		t.Fatalf("a-b = %s, want 39997", got)
	}
	prod := bignum.Mul(a, b)
	if got := prod.String(); got != "120000" {
		t.Fatalf("a*b = %s, want 120000", got)
	}
	if got := prod.BaseM(); got != "(21696, 3)" {
		t.Fatalf("a*b base-M = %s, want (21696, 3)", got)
	}
	q, err := bignum.Quo(a, b)
	if err != nil {
		t.Fatalf("a/b: %v", err)
	}
	if got := q.String(); got != "13333" {
		t.Fatalf("a/b = %s, want 13333", got)
	}
}

func TestAddSubSigns(t *testing.T) {
	tests := []struct {
		a, b     int64
		sum, dif string
	}{
		{a: 5, b: 3, sum: "8", dif: "2"},
		{a: 3, b: 5, sum: "8", dif: "-2"},
		{a: -5, b: 3, sum: "-2", dif: "-8"},
		{a: 5, b: -3, sum: "2", dif: "8"},
		{a: -5, b: -3, sum: "-8", dif: "-2"},
		{a: -3, b: -5, sum: "-8", dif: "2"},
		{a: 0, b: -7, sum: "-7", dif: "7"},
		{a: -7, b: 0, sum: "-7", dif: "-7"},
		{a: bignum.Base - 1, b: 1, sum: "32768", dif: "32766"},
		{a: bignum.Base, b: 1, sum: "32769", dif: "32767"},
		{a: -bignum.Base, b: bignum.Base, sum: "0", dif: "-65536"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_%d", tt.a, tt.b), func(t *testing.T) {
			a, b := bignum.FromInt64(tt.a), bignum.FromInt64(tt.b)
			if got := bignum.Add(a, b); got.String() != tt.sum {
				t.Fatalf("Add = %s, want %s", got, tt.sum)
			}
			if got := bignum.Sub(a, b); got.String() != tt.dif {
				t.Fatalf("Sub = %s, want %s", got, tt.dif)
			}
		})
	}
}

func TestSubSelfIsPositiveZero(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 40000, -40000, 1 << 50} {
		a := bignum.FromInt64(v)
		d := bignum.Sub(a, a)
		if !d.IsZero() {
			t.Fatalf("%d - %d = %s, want 0", v, v, d)
		}
		if d.IsNeg() || d.Sign() != 0 {
			t.Fatalf("%d - %d produced negative zero", v, v)
		}
		if d != bignum.Zero() {
			t.Fatalf("%d - %d is not == Zero()", v, v)
		}
		if d.BaseM() != "0" {
			t.Fatalf("BaseM of zero = %q", d.BaseM())
		}
	}
}

func TestAddCarryDroppedAtCapacity(t *testing.T) {
	top := new(big.Int).Sub(testkit.Modulus(), big.NewInt(1))
	a := testkit.FromBig(top)
	got := bignum.Add(a, bignum.FromInt64(1))
	if !got.IsZero() {
		t.Fatalf("(M^N - 1) + 1 = %s, want 0 after the carry is dropped", got)
	}
	got = bignum.Add(a, bignum.FromInt64(6))
	if got.String() != "5" {
		t.Fatalf("(M^N - 1) + 6 = %s, want 5", got)
	}
	neg := bignum.Neg(a)
	got = bignum.Sub(neg, bignum.FromInt64(2))
	if got.String() != "-1" {
		t.Fatalf("-(M^N - 1) - 2 = %s, want -1", got)
	}
}

func TestMulTruncates(t *testing.T) {
	half := new(big.Int).Lsh(big.NewInt(1), 15*bignum.MaxDigits/2)
	a := testkit.FromBig(half)
	got := bignum.Mul(a, a)
	if !got.IsZero() {
		t.Fatalf("M^(N/2) squared = %s, want 0 after truncation", got)
	}

	b := testkit.FromBig(new(big.Int).Add(half, big.NewInt(3)))
	c := testkit.FromBig(new(big.Int).Neg(new(big.Int).Add(half, big.NewInt(5))))
	want := testkit.Reduce(new(big.Int).Mul(testkit.BigOf(b), testkit.BigOf(c)))
	mustEqualBig(t, "truncated product", bignum.Mul(b, c), want)
}

func TestMulIdentityAndZero(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	one := bignum.FromInt64(1)
	zero := bignum.Zero()
	for range 200 {
		a := randInt(r, bignum.MaxDigits)
		if got := bignum.Mul(a, one); got != a {
			t.Fatalf("%s * 1 = %s", a, got)
		}
		if got := bignum.Mul(one, a); got != a {
			t.Fatalf("1 * %s = %s", a, got)
		}
		if got := bignum.Mul(a, zero); !got.IsZero() || got.IsNeg() {
			t.Fatalf("%s * 0 = %s (neg=%v)", a, got, got.IsNeg())
		}
		if got := bignum.Add(a, zero); got != a {
			t.Fatalf("%s + 0 = %s", a, got)
		}
	}
}

func TestAddCommutes(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	for range 500 {
		a := randInt(r, bignum.MaxDigits)
		b := randInt(r, bignum.MaxDigits)
		if x, y := bignum.Add(a, b), bignum.Add(b, a); x != y {
			t.Fatalf("Add(%s, %s) = %s but Add(b, a) = %s", a, b, x, y)
		}
		if x, y := bignum.Mul(a, b), bignum.Mul(b, a); x != y {
			t.Fatalf("Mul(%s, %s) = %s but Mul(b, a) = %s", a, b, x, y)
		}
	}
}

func TestSubThenAddRestores(t *testing.T) {
	r := rand.New(rand.NewPCG(13, 17))
	for range 500 {
		// Below capacity by one digit so |a| + |b| never overflows.
		a := randInt(r, bignum.MaxDigits-1)
		b := randInt(r, bignum.MaxDigits-1)
		if got := bignum.Add(bignum.Sub(a, b), b); got != a {
			t.Fatalf("(%s - %s) + b = %s", a, b, got)
		}
	}
}

func TestArithmeticMatchesReference(t *testing.T) {
	for _, maxLen := range []int{1, 2, 3, 10, 25, bignum.MaxDigits} {
		t.Run(fmt.Sprintf("len%d", maxLen), func(t *testing.T) {
			r := rand.New(rand.NewPCG(uint64(maxLen), 42))
			for range 300 {
				a := randInt(r, maxLen)
				b := randInt(r, maxLen)
				ab, bb := testkit.BigOf(a), testkit.BigOf(b)

				mustEqualBig(t, "Add", bignum.Add(a, b), testkit.Reduce(new(big.Int).Add(ab, bb)))
				mustEqualBig(t, "Sub", bignum.Sub(a, b), testkit.Reduce(new(big.Int).Sub(ab, bb)))
				mustEqualBig(t, "Mul", bignum.Mul(a, b), testkit.Reduce(new(big.Int).Mul(ab, bb)))

				if b.IsZero() {
					continue
				}
				q, rem, err := bignum.QuoRem(a, b)
				if err != nil {
					t.Fatalf("QuoRem(%s, %s): %v", a, b, err)
				}
				wq, wr := new(big.Int).QuoRem(ab, bb, new(big.Int))
				mustEqualBig(t, "Quo", q, wq)
				mustEqualBig(t, "Rem", rem, wr)
			}
		})
	}
}

func TestConcurrentUse(t *testing.T) {
	a := bignum.MustParse("123456789012345678901234567890123456789")
	b := bignum.MustParse("-987654321098765432109876543")
	wantSum := bignum.Add(a, b)
	wantProd := bignum.Mul(a, b)
	wantQuo, _ := bignum.Quo(a, b)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q, err := bignum.Quo(a, b)
			switch {
			case err != nil:
				errs <- err
			case bignum.Add(a, b) != wantSum, bignum.Mul(a, b) != wantProd, q != wantQuo:
				errs <- errors.New("concurrent result mismatch")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}
