package calculator

// ConsumeClass returns a student's remaining balance after one confirmed
// session. The balance is floored at zero: a student with nothing left (or an
// untracked package) stays at zero while sessions keep being logged.
func ConsumeClass(remaining int) int {
	if remaining > 0 {
		return remaining - 1
	}
	return 0
}

// RebalanceClasses computes the remaining balance after a package-size edit.
// Classes already consumed under the old package carry over:
//
//	used = max(0, oldBought - oldRemaining)
//	remaining = max(0, newBought - used)
func RebalanceClasses(oldBought, oldRemaining, newBought int) int {
	used := max(0, oldBought-oldRemaining)
	return max(0, newBought-used)
}
