package runner

import (
	"github.com/DjordjeVuckovic/rpn-calc/internal/apperr"
)

type CaseResult struct {
	CaseID     string
	Expression string
	EngineName string
	Expected   string
	Got        string
	Kind       apperr.Kind
	Passed     bool
	// Inconsistent is set when repeated runs disagree on the outcome.
	Inconsistent bool
	Latency      LatencyStats
	Error        error
}

type SuiteResult struct {
	SuiteName   string
	Results     map[string]map[string]CaseResult // [caseID][engineName]
	CaseOrder   []string
	EngineNames []string
	Config      Config
}

func (sr *SuiteResult) Get(caseID, engine string) (CaseResult, bool) {
	byEngine, ok := sr.Results[caseID]
	if !ok {
		return CaseResult{}, false
	}
	cr, ok := byEngine[engine]
	return cr, ok
}

// Failed counts cases that did not pass on the given engine.
func (sr *SuiteResult) Failed(engine string) int {
	n := 0
	for _, id := range sr.CaseOrder {
		if cr, ok := sr.Get(id, engine); ok && !cr.Passed {
			n++
		}
	}
	return n
}

func (sr *SuiteResult) AllPassed() bool {
	for _, name := range sr.EngineNames {
		if sr.Failed(name) > 0 {
			return false
		}
	}
	return true
}
