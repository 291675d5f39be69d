package spellout

import (
	"math/big"

	"github.com/govalues/decimal"
)

// group is a three-digit slice of a number tagged with its power of one
// thousand, so 1,234,000 decomposes into {1, 2} and {234, 1}.
type group struct {
	val int // 1 through 999
	exp int // power of one thousand
}

var thousand = big.NewInt(1000)

// decompose splits z into base-1000 groups, most significant first,
// skipping zero groups.
// z must not be negative.
//
// It returns ErrOverflow if the most significant group's power of one
// thousand exceeds maxExp, leaving nothing spelled.
func decompose(z *big.Int, maxExp int) ([]group, error) {
	q := new(big.Int).Set(z)
	r := new(big.Int)
	var groups []group
	for exp := 0; q.Sign() > 0; exp++ {
		q.QuoRem(q, thousand, r)
		if v := int(r.Int64()); v != 0 {
			groups = append(groups, group{val: v, exp: exp})
		}
	}
	if len(groups) > 0 && groups[len(groups)-1].exp > maxExp {
		return nil, ErrOverflow
	}
	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}
	return groups, nil
}

// splitDecimal separates the absolute value of d into its integer and
// fractional parts, with the fraction rounded to prec digits using
// banker's rounding.
// prec must be in the range [0, 18], which keeps the fraction within the
// int64 range.
func splitDecimal(d decimal.Decimal, prec int) (whole *big.Int, frac int64, err error) {
	d = d.Abs()
	if w, f, ok := d.Int64(prec); ok {
		return big.NewInt(w), f, nil
	}
	// The integer part exceeds the int64 range, hence d has scale 0 and
	// its text form is a plain digit string.
	z, ok := new(big.Int).SetString(d.String(), 10)
	if !ok {
		return nil, 0, ErrInvalidInput
	}
	return z, 0, nil
}
