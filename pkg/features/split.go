package features

import (
	"fmt"
	"sort"

	"github.com/cypherlabdev/match-features-service/internal/models"
)

// TimeSplit partitions feature rows chronologically into train, validation
// and test sets, the most recent rows going to the test set. The split is by
// row count after a stable sort on match date, so rows sharing a date stay in
// input order and recomputation is deterministic.
func TimeSplit(rows []models.FeatureRow, validFrac, testFrac float64) (train, valid, test []models.FeatureRow, err error) {
	if validFrac < 0 || testFrac < 0 || validFrac+testFrac >= 1 {
		return nil, nil, nil, fmt.Errorf("invalid split fractions valid=%g test=%g", validFrac, testFrac)
	}

	sorted := make([]models.FeatureRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Match.Date.Before(sorted[j].Match.Date)
	})

	n := len(sorted)
	nTest := int(float64(n) * testFrac)
	nValid := int(float64(n) * validFrac)
	nTrain := n - nValid - nTest

	return sorted[:nTrain], sorted[nTrain : nTrain+nValid], sorted[nTrain+nValid:], nil
}
