package bezier

// BinomialTable caches rows of Pascal's triangle.
// Rows are only ever added; growing the table keeps existing rows.
type BinomialTable struct {
	rows [][]float64
}

// NewBinomialTable returns a table holding rows 0..n.
func NewBinomialTable(n int) *BinomialTable {
	b := &BinomialTable{}
	b.Ensure(n)
	return b
}

// Ensure grows the table so that row n is available.
func (b *BinomialTable) Ensure(n int) {
	for i := len(b.rows); i <= n; i++ {
		row := make([]float64, i+1)
		row[0], row[i] = 1, 1
		for j := 1; j < i; j++ {
			row[j] = b.rows[i-1][j-1] + b.rows[i-1][j]
		}
		b.rows = append(b.rows, row)
	}
}

// Size returns the number of rows currently held.
func (b *BinomialTable) Size() int {
	return len(b.rows)
}

// Coeff returns C(n, k), growing the table if needed.
// It returns 0 for k outside [0, n] or negative n.
func (b *BinomialTable) Coeff(n, k int) float64 {
	if n < 0 || k < 0 || k > n {
		return 0
	}
	b.Ensure(n)
	return b.rows[n][k]
}
