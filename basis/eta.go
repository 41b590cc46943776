package basis

// etaUpdate records a single rank-1 replacement of column `column` of the
// working basis by the vector `d` = (old basis)^-1 * (new column), in the
// product-form-of-inverse (PFI) style: applying an eta update is
// equivalent to right-multiplying the current basis by an elementary
// matrix that is the identity except for column `column`, which holds d.
type etaUpdate struct {
	column int
	d      []float64
}

// applyForward computes Ei^-1 * x in place semantics (returns a new
// slice), where Ei is the elementary matrix this eta represents.
//
// Derivation: Ei has column p = d, every other column a unit vector.
// Solving Ei * x' = x gives, for row p: d_p * x'_p = x_p, so
// x'_p = x_p/d_p; and for every row j != p: x'_j + d_j * x'_p = x_j, so
// x'_j = x_j - (x_p/d_p)*d_j.
func (e *etaUpdate) applyForward(x []float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)
	ratio := out[e.column] / e.d[e.column]
	out[e.column] = ratio
	for j := range out {
		if j == e.column {
			continue
		}
		out[j] -= ratio * e.d[j]
	}

	return out
}

// applyBackward computes (Ei^T)^-1 * z, the operation BTRAN needs when
// replaying etas newest-to-oldest.
func (e *etaUpdate) applyBackward(z []float64) []float64 {
	out := make([]float64, len(z))
	copy(out, z)
	sum := z[e.column]
	for j := range z {
		if j == e.column {
			continue
		}
		sum -= e.d[j] * z[j]
	}
	out[e.column] = sum / e.d[e.column]

	return out
}
