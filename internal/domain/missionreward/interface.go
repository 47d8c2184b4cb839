package missionreward

// Calculator computes the share of a reward pool that a single rank earns.
// Every share is produced by integer division, so the sum over all ranks
// never exceeds the pool. Whatever the division leaves over stays in the
// pool and is reported as undistributed.
type Calculator interface {
	// Amount returns the share of pool assigned to rank (1-based). Ranks
	// outside the winning range get zero.
	Amount(pool uint64, rank int) uint64
}
