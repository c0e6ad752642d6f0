package alignment

import (
	"fmt"
	"math"
	"strings"
)

// Global performs end-to-end alignment of query against target.
//
// The DP keeps three states per cell: Diagonal (residue against residue),
// Up (target residue against a gap) and Left (query residue against a gap).
// Opening a gap costs scheme.GapOpen and every further position
// scheme.GapExtend; leading and trailing gaps are charged the same way.
//
// Tie-break: whenever two candidates score equally, Diagonal is preferred
// over Up, and Up over Left. The rule applies to the choice of the final
// state and to every predecessor choice during the fill, so one pair of
// inputs always produces the same alignment.
func Global(target, query string, scheme *Scheme) (*Alignment, error) {
	if scheme == nil {
		scheme = Default()
	}

	if len(target) == 0 || len(query) == 0 {
		return nil, fmt.Errorf("sequences must be non-empty")
	}

	n, m := len(target), len(query)
	cols := m + 1
	negInf := math.Inf(-1)
	open, extend := scheme.GapOpen, scheme.GapExtend

	// Traceback pointers for each state, row-major over (n+1) x (m+1).
	tbDiag := make([]AlignDirection, (n+1)*cols)
	tbUp := make([]AlignDirection, (n+1)*cols)
	tbLeft := make([]AlignDirection, (n+1)*cols)

	// Scores only need the previous row.
	prevD, prevU, prevL := make([]float64, cols), make([]float64, cols), make([]float64, cols)
	currD, currU, currL := make([]float64, cols), make([]float64, cols), make([]float64, cols)

	prevD[0], prevU[0], prevL[0] = 0, negInf, negInf
	for j := 1; j <= m; j++ {
		prevD[j], prevU[j] = negInf, negInf
		prevL[j] = -(open + float64(j-1)*extend)
		if j > 1 {
			tbLeft[j] = Left
		}
	}

	for i := 1; i <= n; i++ {
		row := i * cols
		currD[0], currL[0] = negInf, negInf
		currU[0] = -(open + float64(i-1)*extend)
		if i > 1 {
			tbUp[row] = Up
		}

		for j := 1; j <= m; j++ {
			v, dir := best(prevD[j-1], prevU[j-1], prevL[j-1])
			currD[j] = v + scheme.Score(target[i-1], query[j-1])
			tbDiag[row+j] = dir

			currU[j], tbUp[row+j] = best(prevD[j]-open, prevU[j]-extend, prevL[j]-open)
			currL[j], tbLeft[row+j] = best(currD[j-1]-open, currU[j-1]-open, currL[j-1]-extend)
		}

		prevD, currD = currD, prevD
		prevU, currU = currU, prevU
		prevL, currL = currL, prevL
	}

	score, state := best(prevD[m], prevU[m], prevL[m])
	alignedTarget, alignedQuery := traceback(target, query, state, tbDiag, tbUp, tbLeft, cols)

	return NewAlignment(alignedTarget, alignedQuery, score)
}

// best returns the maximum of the three state scores, preferring earlier
// arguments on ties.
func best(diag, up, left float64) (float64, AlignDirection) {
	v, dir := diag, Diagonal
	if up > v {
		v, dir = up, Up
	}
	if left > v {
		v, dir = left, Left
	}
	return v, dir
}

// traceback walks the state pointers back from the bottom-right cell.
func traceback(target, query string, state AlignDirection,
	tbDiag, tbUp, tbLeft []AlignDirection, cols int) (string, string) {
	var alignedT, alignedQ strings.Builder
	i, j := len(target), len(query)

	for i > 0 || j > 0 {
		idx := i*cols + j
		switch state {
		case Diagonal:
			alignedT.WriteByte(target[i-1])
			alignedQ.WriteByte(query[j-1])
			state = tbDiag[idx]
			i--
			j--
		case Up:
			alignedT.WriteByte(target[i-1])
			alignedQ.WriteByte('-')
			state = tbUp[idx]
			i--
		case Left:
			alignedT.WriteByte('-')
			alignedQ.WriteByte(query[j-1])
			state = tbLeft[idx]
			j--
		}
	}

	return reverse(alignedT.String()), reverse(alignedQ.String())
}

// reverse reverses a byte string.
func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
