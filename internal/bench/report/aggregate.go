package report

import (
	"time"

	"github.com/DjordjeVuckovic/rpn-calc/internal/bench/runner"
	"github.com/DjordjeVuckovic/rpn-calc/pkg/utils"
)

func Generate(sr *runner.SuiteResult, suitePath string) *Report {
	r := &Report{
		Meta: Meta{
			Suite:       sr.SuiteName,
			SuitePath:   suitePath,
			Timestamp:   time.Now().UTC(),
			WarmupRuns:  sr.Config.WarmupRuns,
			Runs:        sr.Config.Runs,
			Environment: NewEnvironmentInfo(),
		},
	}

	for _, id := range sr.CaseOrder {
		for _, name := range sr.EngineNames {
			cr, ok := sr.Get(id, name)
			if !ok {
				continue
			}
			entry := Entry{
				CaseID:       cr.CaseID,
				Engine:       cr.EngineName,
				Expression:   cr.Expression,
				Expected:     cr.Expected,
				Got:          cr.Got,
				Passed:       cr.Passed,
				Inconsistent: cr.Inconsistent,
				Latency:      fromRunnerLatencyStats(cr.Latency),
			}
			if cr.Error != nil {
				entry.Error = cr.Error.Error()
			}
			r.Cases = append(r.Cases, entry)
		}
	}

	r.Summary = summarize(sr)
	return r
}

func summarize(sr *runner.SuiteResult) []EngineReport {
	out := make([]EngineReport, 0, len(sr.EngineNames))

	for _, name := range sr.EngineNames {
		er := EngineReport{Engine: name}
		var latencies []runner.LatencyStats

		for _, id := range sr.CaseOrder {
			cr, ok := sr.Get(id, name)
			if !ok {
				continue
			}
			er.Cases++
			switch {
			case cr.Error != nil:
				er.Errors++
			case cr.Passed:
				er.Passed++
			default:
				er.Failed++
			}
			latencies = append(latencies, cr.Latency)
		}

		if er.Cases > 0 {
			er.PassRate = utils.RoundDecimal(float64(er.Passed)/float64(er.Cases)*100, 2)
		}
		er.Latency = fromRunnerLatencyStats(runner.MergeLatencyStats(latencies...))
		out = append(out, er)
	}

	return out
}

func micros(d time.Duration) float64 {
	return utils.RoundDecimal(float64(d)/float64(time.Microsecond), 2)
}
