package barv1

// TierCounters is a point in time view of the hit/miss counters of every tier.
type TierCounters struct {
	L1Hits       int64 `json:"l1_hits"`
	L1Misses     int64 `json:"l1_misses"`
	L2Hits       int64 `json:"l2_hits"`
	L2Misses     int64 `json:"l2_misses"`
	L3Months     int64 `json:"l3_months_fetched"`
	L3Pages      int64 `json:"l3_pages_fetched"`
	L3Failures   int64 `json:"l3_failures"`
	SinkFailures int64 `json:"sink_failures"`
}

// CounterSource is implemented by every component owning tier counters.
type CounterSource interface {
	// CollectCounters adds the component's counters into c.
	CollectCounters(c *TierCounters)
	ResetCounters()
}
