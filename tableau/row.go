package tableau

// GetTableauRow yields the symbolic representation of basic row index:
// xB_index = scalar + Σ coeff_j * xN_j, where coeff = -(e_index^T*B^-1)*AN
// and scalar = (B^-1*b)[index]. Computed by BTRAN-ing a unit vector to
// get e_index^T*B^-1, then dotting it against each non-basic column.
func (t *Tableau) GetTableauRow(index int) (*TableauRow, error) {
	unit := make([]float64, t.m)
	unit[index] = 1

	multipliers, err := t.factorization.BTRAN(unit)
	if err != nil {
		return nil, err
	}

	row := &TableauRow{Entries: make([]RowEntry, t.n-t.m)}
	for i := 0; i < t.n-t.m; i++ {
		v := t.nonBasicIndexToVariable[i]
		col := t.GetAColumn(v)
		coeff := 0.0
		for j := 0; j < t.m; j++ {
			coeff -= multipliers[j] * col[j]
		}
		row.Entries[i] = RowEntry{Variable: v, Coefficient: coeff}
	}

	scalars, err := t.factorization.FTRAN(t.b)
	if err != nil {
		return nil, err
	}
	row.Scalar = scalars[index]

	return row, nil
}

// ComputePivotRow computes and caches the symbolic row for the currently
// selected leaving basic index.
func (t *Tableau) ComputePivotRow() error {
	row, err := t.GetTableauRow(t.leavingIndex)
	if err != nil {
		return err
	}
	t.pivotRow = row

	return nil
}

// GetPivotRow returns the row cached by the last ComputePivotRow.
func (t *Tableau) GetPivotRow() *TableauRow { return t.pivotRow }
