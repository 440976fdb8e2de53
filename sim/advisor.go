package sim

// Workload heuristics used by Advise.
const (
	ShortJobBurst    = 10 // bursts below this count as short jobs
	SJFMaxAvgBurst   = 15 // SJF is only recommended below this average burst
	LongJobDominance = 2  // Priority when long jobs outnumber short ones by more than this factor
)

// Recommendation is the advisor's pick plus the figures it was based on.
type Recommendation struct {
	Policy     string  `json:"policy" yaml:"policy"`
	Reason     string  `json:"reason" yaml:"reason"`
	TotalBurst int64   `json:"total_burst" yaml:"total_burst"`
	AvgBurst   float64 `json:"avg_burst" yaml:"avg_burst"`
	ShortJobs  int     `json:"short_jobs" yaml:"short_jobs"`
	LongJobs   int     `json:"long_jobs" yaml:"long_jobs"`
}

// Advise recommends a policy from the shape of the workload alone, without
// running any simulation. Rules are evaluated in order:
//  1. more short jobs than long and average burst below SJFMaxAvgBurst: SJF
//  2. long jobs more than LongJobDominance times the short jobs: Priority
//  3. otherwise: Round Robin
//
// w must be non-empty.
func Advise(w Workload) Recommendation {
	rec := Recommendation{TotalBurst: w.TotalBurst()}
	for _, p := range w {
		if p.BurstTime < ShortJobBurst {
			rec.ShortJobs++
		} else {
			rec.LongJobs++
		}
	}
	rec.AvgBurst = float64(rec.TotalBurst) / float64(len(w))

	switch {
	case rec.ShortJobs > rec.LongJobs && rec.AvgBurst < SJFMaxAvgBurst:
		rec.Policy = PolicySJF
		rec.Reason = "Many short jobs benefit from shortest job first"
	case rec.LongJobs > LongJobDominance*rec.ShortJobs:
		rec.Policy = PolicyPriority
		rec.Reason = "Long jobs benefit from priority scheduling"
	default:
		rec.Policy = PolicyRoundRobin
		rec.Reason = "Mixed workload benefits from fair time sharing"
	}
	return rec
}
