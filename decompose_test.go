package spellout

import (
	"errors"
	"math"
	"math/big"
	"reflect"
	"testing"

	"github.com/govalues/decimal"
)

func TestDecompose(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			z    int64
			want []group
		}{
			{1, []group{{1, 0}}},
			{42, []group{{42, 0}}},
			{999, []group{{999, 0}}},
			{1000, []group{{1, 1}}},
			{1001, []group{{1, 1}, {1, 0}}},
			{1234, []group{{1, 1}, {234, 0}}},
			{1000000, []group{{1, 2}}},
			{2000004, []group{{2, 2}, {4, 0}}},
			{123456789, []group{{123, 2}, {456, 1}, {789, 0}}},
			{1000000000, []group{{1, 3}}},
			{math.MaxInt64, []group{{9, 6}, {223, 5}, {372, 4}, {36, 3}, {854, 2}, {775, 1}, {807, 0}}},
		}
		for _, tt := range tests {
			got, err := decompose(big.NewInt(tt.z), 11)
			if err != nil {
				t.Errorf("decompose(%v, 11) failed: %v", tt.z, err)
				continue
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("decompose(%v, 11) = %v, want %v", tt.z, got, tt.want)
			}
		}
	})

	t.Run("zero", func(t *testing.T) {
		got, err := decompose(new(big.Int), 11)
		if err != nil {
			t.Errorf("decompose(0, 11) failed: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("decompose(0, 11) = %v, want no groups", got)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			z      *big.Int
			maxExp int
		}{
			"thousand":   {big.NewInt(1000), 0},
			"million":    {big.NewInt(1000000), 1},
			"spanish":    {big.NewInt(1000000000000000), 4},
			"decillion+": {new(big.Int).Exp(big.NewInt(10), big.NewInt(36), nil), 11},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := decompose(tt.z, tt.maxExp)
				if err == nil {
					t.Errorf("decompose(%v, %v) did not fail", tt.z, tt.maxExp)
					return
				}
				if !errors.Is(err, ErrOverflow) {
					t.Errorf("decompose(%v, %v) = %v, want %v", tt.z, tt.maxExp, err, ErrOverflow)
				}
			})
		}
	})
}

func TestDecompose_Reconstruction(t *testing.T) {
	values := []int64{
		1, 7, 42, 999, 1000, 1001, 65536, 123456, 9999999,
		1000000000, 987654321012345, math.MaxInt64,
	}
	for _, v := range values {
		groups, err := decompose(big.NewInt(v), 11)
		if err != nil {
			t.Errorf("decompose(%v, 11) failed: %v", v, err)
			continue
		}
		sum := new(big.Int)
		for i, g := range groups {
			if g.val < 1 || g.val > 999 {
				t.Errorf("decompose(%v, 11) group %v = %v, want value in [1, 999]", v, i, g)
			}
			if i > 0 && groups[i-1].exp <= g.exp {
				t.Errorf("decompose(%v, 11) exponents not descending: %v", v, groups)
			}
			term := new(big.Int).Exp(thousand, big.NewInt(int64(g.exp)), nil)
			term.Mul(term, big.NewInt(int64(g.val)))
			sum.Add(sum, term)
		}
		if sum.Cmp(big.NewInt(v)) != 0 {
			t.Errorf("groups of %v sum to %v", v, sum)
		}
	}
}

func TestSplitDecimal(t *testing.T) {
	tests := []struct {
		d     string
		prec  int
		whole string
		frac  int64
	}{
		{"0", 2, "0", 0},
		{"42", 2, "42", 0},
		{"42.75", 2, "42", 75},
		{"-42.75", 2, "42", 75},
		{"42.05", 2, "42", 5},
		{"42.75", 1, "42", 8},
		{"42.25", 1, "42", 2},
		{"42.75", 0, "43", 0},
		{"42.5", 0, "42", 0},
		{"43.5", 0, "44", 0},
		{"0.999", 2, "1", 0},
		{"1.005", 2, "1", 0},
		{"1.015", 2, "1", 2},
		{"9999999999999999999", 0, "9999999999999999999", 0},
		{"9999999999999999999", 5, "9999999999999999999", 0},
	}
	for _, tt := range tests {
		whole, frac, err := splitDecimal(decimal.MustParse(tt.d), tt.prec)
		if err != nil {
			t.Errorf("splitDecimal(%q, %v) failed: %v", tt.d, tt.prec, err)
			continue
		}
		want, ok := new(big.Int).SetString(tt.whole, 10)
		if !ok {
			t.Fatalf("invalid want %q", tt.whole)
		}
		if whole.Cmp(want) != 0 || frac != tt.frac {
			t.Errorf("splitDecimal(%q, %v) = (%v, %v), want (%v, %v)", tt.d, tt.prec, whole, frac, want, tt.frac)
		}
	}
}
