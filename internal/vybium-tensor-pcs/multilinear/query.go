// Package multilinear implements multilinear extensions over packed tower
// field vectors: the dense evaluation table of a multilinear polynomial on
// the Boolean hypercube, together with full/partial evaluation against a
// query point via tensor expansion.
package multilinear

import "github.com/vybium/vybium-tensor-pcs/internal/vybium-tensor-pcs/tower"

// Query is the tensor expansion of a point r = (r_0, ..., r_{k-1}) into the
// 2^k coefficients c_v = prod_i (r_i if v_i=1 else 1-r_i), v ranging over
// {0,1}^k in little-endian bit order. This is the "equality polynomial"
// table eq(v, r) used both to evaluate a multilinear extension at r and to
// mix several polynomials via random coefficients.
type Query struct {
	level  tower.Level
	coeffs []tower.Element
}

// ExpandQuery computes the full tensor expansion of point at the given
// level. len(point) == k produces 2^k coefficients.
func ExpandQuery(level tower.Level, point []tower.Element) Query {
	coeffs := []tower.Element{tower.One(level)}
	one := tower.One(level)
	for _, r := range point {
		next := make([]tower.Element, len(coeffs)*2)
		oneMinusR := one.Sub(r)
		for i, c := range coeffs {
			next[i] = c.Mul(oneMinusR)
			next[len(coeffs)+i] = c.Mul(r)
		}
		coeffs = next
	}
	return Query{level: level, coeffs: coeffs}
}

// Level returns the tower level the expansion coefficients live at.
func (q Query) Level() tower.Level { return q.level }

// Expansion returns the 2^k coefficient table.
func (q Query) Expansion() []tower.Element { return q.coeffs }

// NVars returns the number of variables the query was expanded over.
func (q Query) NVars() int {
	n := 0
	for size := len(q.coeffs); size > 1; size >>= 1 {
		n++
	}
	return n
}
