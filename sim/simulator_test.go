package sim

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulate_DoesNotModifyWorkload(t *testing.T) {
	w := workload([3]int64{0, 5, 2}, [3]int64{1, 3, 1}, [3]int64{2, 8, 4})
	before := append(Workload(nil), w...)

	for _, p := range allPolicies(t) {
		Simulate(p, w)
	}

	assert.Equal(t, before, w)
}

func TestSimulate_Idempotent(t *testing.T) {
	// GIVEN one workload
	w := randomWorkload(3, 8, 20, 10)

	for _, p := range allPolicies(t) {
		// WHEN the same policy runs twice
		first := Simulate(p, w)
		second := Simulate(p, w)

		// THEN both runs are identical
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("%s: repeated run differs (-first +second):\n%s", p.Name(), diff)
		}
	}
}

func TestSimulate_ResponseTimeIsFirstDispatch(t *testing.T) {
	w := workload([3]int64{0, 10, 1}, [3]int64{1, 2, 1})

	res := Simulate(&RoundRobinScheduler{Quantum: 4}, w)

	// P1 0-4, P2 4-6, P1 6-10, P1 10-12
	assert.Equal(t, int64(0), res.Processes[0].ResponseTime)
	assert.Equal(t, int64(2), res.Processes[0].WaitingTime, "P1 is dispatched at once but still waits")
	assert.Equal(t, int64(3), res.Processes[1].ResponseTime)
	assert.Equal(t, int64(3), res.Processes[1].WaitingTime)
}

func TestSimulate_ResultsOrderedByID(t *testing.T) {
	// later IDs finish first under FCFS
	w := workload([3]int64{9, 1, 1}, [3]int64{4, 1, 1}, [3]int64{0, 1, 1})

	res := Simulate(&FCFSScheduler{}, w)

	require.Len(t, res.Processes, 3)
	for i, p := range res.Processes {
		assert.Equal(t, i+1, p.ID)
	}
	assert.Equal(t, []Slice{{3, 0, 1}, {2, 4, 5}, {1, 9, 10}}, res.Timeline)
}

func TestCompare_RunsEachPolicyInOrder(t *testing.T) {
	w := workload([3]int64{0, 5, 2}, [3]int64{1, 3, 1}, [3]int64{2, 8, 4}, [3]int64{3, 6, 3})

	report, err := Compare(w, DefaultPolicies, DefaultTimeQuantum)

	require.NoError(t, err)
	require.Len(t, report.Results, len(DefaultPolicies))
	for i, res := range report.Results {
		assert.Equal(t, DefaultPolicies[i], res.Policy)
		assert.Len(t, res.Processes, len(w))
	}
	assert.Equal(t, w, report.Workload)
	assert.Equal(t, Advise(w), report.Recommendation)
}

func TestCompare_PoliciesDoNotSeeEachOthersState(t *testing.T) {
	// GIVEN a comparison of every policy
	w := randomWorkload(11, 9, 25, 12)
	report, err := Compare(w, ValidPolicyNames(), DefaultTimeQuantum)
	require.NoError(t, err)

	// THEN each result matches a standalone run of the same policy
	for _, res := range report.Results {
		alone := Simulate(NewPolicy(res.Policy, DefaultTimeQuantum), w)
		if diff := cmp.Diff(alone, res); diff != "" {
			t.Errorf("%s: compared run differs from standalone (-alone +compared):\n%s", res.Policy, diff)
		}
	}
}

func TestCompare_PassesQuantumToRoundRobin(t *testing.T) {
	w := workload([3]int64{0, 6, 1})

	report, err := Compare(w, []string{PolicyRoundRobin}, 2)

	require.NoError(t, err)
	assert.Equal(t, "Round Robin (Quantum=2)", report.Results[0].Title)
	assert.Len(t, report.Results[0].Timeline, 3)
}

func TestCompare_InvalidWorkload(t *testing.T) {
	_, err := Compare(Workload{}, DefaultPolicies, DefaultTimeQuantum)
	assert.True(t, errors.Is(err, ErrInvalidWorkload))

	_, err = Compare(workload([3]int64{0, 0, 1}), DefaultPolicies, DefaultTimeQuantum)
	assert.True(t, errors.Is(err, ErrInvalidWorkload))
}

func TestCompare_UnknownPolicy(t *testing.T) {
	_, err := Compare(workload([3]int64{0, 1, 1}), []string{PolicyFCFS, "lottery"}, DefaultTimeQuantum)
	assert.ErrorContains(t, err, "lottery")
}
