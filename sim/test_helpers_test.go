package sim

import (
	"math/rand"
	"testing"
)

// workload builds a Workload from (arrival, burst, priority) triples.
func workload(triples ...[3]int64) Workload {
	specs := make([]ProcessSpec, len(triples))
	for i, tr := range triples {
		specs[i] = ProcessSpec{ArrivalTime: tr[0], BurstTime: tr[1], Priority: int(tr[2])}
	}
	return NewWorkload(specs)
}

// completionTimes returns completion times indexed by ID - 1.
func completionTimes(res *Result) []int64 {
	out := make([]int64, len(res.Processes))
	for _, p := range res.Processes {
		out[p.ID-1] = p.CompletionTime
	}
	return out
}

// randomWorkload builds n processes with arrivals in [0, maxArrival] and
// bursts in [1, maxBurst] from a fixed seed.
func randomWorkload(seed int64, n int, maxArrival, maxBurst int64) Workload {
	rng := rand.New(rand.NewSource(seed))
	specs := make([]ProcessSpec, n)
	for i := range specs {
		specs[i] = ProcessSpec{
			ArrivalTime: rng.Int63n(maxArrival + 1),
			BurstTime:   rng.Int63n(maxBurst) + 1,
			Priority:    rng.Intn(5) + 1,
		}
	}
	return NewWorkload(specs)
}

// allPolicies returns one instance of every registered policy.
func allPolicies(t *testing.T) []Policy {
	t.Helper()
	names := ValidPolicyNames()
	policies := make([]Policy, len(names))
	for i, name := range names {
		policies[i] = NewPolicy(name, DefaultTimeQuantum)
	}
	return policies
}
