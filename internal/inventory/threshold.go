package inventory

import "math"

// NeverStocked stands in for the previous quantity of an item that did not
// exist before the operation. It compares greater than any threshold, so a
// first lot that lands at or below the threshold still counts as a crossing.
const NeverStocked = math.MaxInt

// CrossedLow reports whether a stock mutation moved an item from strictly
// above its low-stock threshold to at or below it. Monotonic increases never
// trigger, and operations that keep stock at or below the threshold trigger
// only on the first crossing. Pure; the caller decides whether to notify.
func CrossedLow(oldStock, newStock, threshold int) bool {
	return newStock <= threshold && oldStock > threshold
}
