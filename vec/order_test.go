package vec

import (
	"strings"
	"testing"
)

func TestEqualLaws(t *testing.T) {
	a := Of(1, 2, 3)
	b := Of(1, 2, 3)
	c := Of(1, 2, 3)

	if !Equal(a, a) {
		t.Fatalf("not reflexive")
	}
	if Equal(a, b) != Equal(b, a) {
		t.Fatalf("not symmetric")
	}
	if Equal(a, b) && Equal(b, c) && !Equal(a, c) {
		t.Fatalf("not transitive")
	}
	if Equal(Of(1, 2), Of(1, 2, 3)) {
		t.Fatalf("different sizes compared equal")
	}
	if !Equal(Of[int](), Of[int]()) {
		t.Fatalf("two empties not equal")
	}
}

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b Vec[int]
		want int
	}{
		{Of(1, 2, 3), Of(1, 2, 3), 0},
		{Of(1, 2, 3), Of(1, 2, 4), -1},
		{Of(1, 2, 4), Of(1, 2, 3), +1},
		{Of(1, 2), Of(1, 2, 3), -1}, // strict prefix orders first
		{Of(1, 2, 3), Of(1, 2), +1},
		{Of[int](), Of(0), -1},
		{Of[int](), Of[int](), 0},
		{Of(2), Of(1, 9, 9), +1}, // first mismatch decides
	}
	for _, c := range cases {
		if got := Compare(c.a, c.b); got != c.want {
			t.Fatalf("Compare(%v, %v) = %d, want %d", c.a.Slice(), c.b.Slice(), got, c.want)
		}
	}
}

func TestCompareConsistentWithEqual(t *testing.T) {
	vs := []Vec[int]{Of[int](), Of(1), Of(1, 2), Of(1, 2, 3), Of(1, 3), Of(2)}
	for _, a := range vs {
		for _, b := range vs {
			eq := Equal(a, b)
			if eq != (Compare(a, b) == 0) {
				t.Fatalf("Equal(%v, %v) = %v but Compare = %d", a.Slice(), b.Slice(), eq, Compare(a, b))
			}
			if Compare(a, b) != -Compare(b, a) {
				t.Fatalf("Compare(%v, %v) not antisymmetric", a.Slice(), b.Slice())
			}
		}
	}
}

func TestCompareTransitive(t *testing.T) {
	vs := []Vec[int]{Of[int](), Of(1), Of(1, 2), Of(1, 2, 3), Of(1, 3), Of(2)}
	for _, a := range vs {
		for _, b := range vs {
			for _, c := range vs {
				if Less(a, b) && Less(b, c) && !Less(a, c) {
					t.Fatalf("order not transitive on %v, %v, %v", a.Slice(), b.Slice(), c.Slice())
				}
			}
		}
	}
}

func TestEqualFunc(t *testing.T) {
	a := Of("Go", "VEC")
	b := Of("go", "vec")
	if !EqualFunc(a, b, strings.EqualFold) {
		t.Fatalf("case-insensitive equality failed")
	}
	if Equal(a, b) {
		t.Fatalf("case-sensitive equality should fail")
	}
}

func TestCompareFunc(t *testing.T) {
	desc := func(a, b int) int { return b - a }
	if CompareFunc(Of(3, 1), Of(2, 9), desc) >= 0 {
		t.Fatalf("descending order: want {3,1} before {2,9}")
	}
}
