package ee

import "gonum.org/v1/gonum/stat"

// meanStdDevColumn extracts column l from history (one row per inner
// iteration) and returns its mean and sample standard deviation via
// gonum, the only numerical dependency this module needs: the D0
// rescale step is the one place in the estimator doing genuine
// descriptive statistics rather than graph bookkeeping.
func meanStdDevColumn(history [][]float64, l int) (mean, sd float64) {
	col := make([]float64, len(history))
	for k, row := range history {
		col[k] = row[l]
	}
	return stat.MeanStdDev(col, nil)
}
