package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func burstWorkload(bursts ...int64) Workload {
	specs := make([]ProcessSpec, len(bursts))
	for i, b := range bursts {
		specs[i] = ProcessSpec{ArrivalTime: int64(i), BurstTime: b, Priority: 1}
	}
	return NewWorkload(specs)
}

func TestAdvise_AllShortJobs_RecommendsSJF(t *testing.T) {
	rec := Advise(burstWorkload(2, 3, 5, 8, 9))

	assert.Equal(t, PolicySJF, rec.Policy)
	assert.Equal(t, 5, rec.ShortJobs)
	assert.Equal(t, 0, rec.LongJobs)
	assert.Equal(t, int64(27), rec.TotalBurst)
	assert.InDelta(t, 5.4, rec.AvgBurst, 1e-12)
	assert.Contains(t, rec.Reason, "short jobs")
}

func TestAdvise_AllLongJobs_RecommendsPriority(t *testing.T) {
	rec := Advise(burstWorkload(20, 25, 30, 40, 21))

	assert.Equal(t, PolicyPriority, rec.Policy)
	assert.Equal(t, 0, rec.ShortJobs)
	assert.Equal(t, 5, rec.LongJobs)
}

func TestAdvise_MixedWorkload_RecommendsRoundRobin(t *testing.T) {
	// 2 short, 2 long: neither rule fires
	rec := Advise(burstWorkload(3, 4, 12, 14))

	assert.Equal(t, PolicyRoundRobin, rec.Policy)
	assert.Equal(t, 2, rec.ShortJobs)
	assert.Equal(t, 2, rec.LongJobs)
}

func TestAdvise_ShortMajorityWithHighAverage_FallsThrough(t *testing.T) {
	// GIVEN more short jobs than long ones but an average burst of at least 15
	rec := Advise(burstWorkload(1, 1, 1, 50, 50))

	// THEN rule 1 does not fire, rule 2 does not fire (2 > 6 is false), and Round Robin wins
	assert.Equal(t, 3, rec.ShortJobs)
	assert.Equal(t, 2, rec.LongJobs)
	assert.InDelta(t, 20.6, rec.AvgBurst, 1e-12)
	assert.Equal(t, PolicyRoundRobin, rec.Policy)
}

func TestAdvise_RulePrecedence(t *testing.T) {
	tests := []struct {
		name   string
		bursts []int64
		want   string
	}{
		// rule 1 is checked first: short majority with low average beats everything
		{"rule 1 wins with a long job present", []int64{1, 1, 1, 14}, PolicySJF},
		// burst of exactly 10 counts as long
		{"burst 10 is long", []int64{10, 10, 10, 9}, PolicyPriority},
		// average of exactly 15 fails rule 1
		{"average 15 is not below 15", []int64{1, 1, 1, 1, 71}, PolicyRoundRobin},
		// long jobs exactly twice the short jobs is not more than twice
		{"long equal to twice short", []int64{1, 10, 10}, PolicyRoundRobin},
		{"long more than twice short", []int64{1, 10, 10, 10}, PolicyPriority},
		{"single short job", []int64{9}, PolicySJF},
		{"single long job", []int64{10}, PolicyPriority},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Advise(burstWorkload(tc.bursts...)).Policy)
		})
	}
}

func TestAdvise_DoesNotModifyWorkload(t *testing.T) {
	w := burstWorkload(3, 12)
	before := append(Workload(nil), w...)

	Advise(w)

	assert.Equal(t, before, w)
}
