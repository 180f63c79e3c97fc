package report

import (
	"runtime"
	"time"

	"github.com/DjordjeVuckovic/rpn-calc/internal/bench/runner"
)

type Report struct {
	Meta    Meta           `json:"meta"`
	Summary []EngineReport `json:"summary"`
	Cases   []Entry        `json:"cases"`
}

type Meta struct {
	Suite       string          `json:"suite"`
	SuitePath   string          `json:"suite_path,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
	WarmupRuns  int             `json:"warmup_runs"`
	Runs        int             `json:"runs"`
	Environment EnvironmentInfo `json:"environment"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	NumCPU    int    `json:"num_cpu"`
}

func NewEnvironmentInfo() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

type Entry struct {
	CaseID       string       `json:"case_id"`
	Engine       string       `json:"engine"`
	Expression   string       `json:"expression"`
	Expected     string       `json:"expected"`
	Got          string       `json:"got"`
	Passed       bool         `json:"passed"`
	Inconsistent bool         `json:"inconsistent,omitempty"`
	Latency      LatencyStats `json:"latency"`
	Error        string       `json:"error,omitempty"`
}

type EngineReport struct {
	Engine   string       `json:"engine"`
	Cases    int          `json:"cases"`
	Passed   int          `json:"passed"`
	Failed   int          `json:"failed"`
	Errors   int          `json:"errors"`
	PassRate float64      `json:"pass_rate"`
	Latency  LatencyStats `json:"latency"`
}

// LatencyStats is the serialized form of runner.LatencyStats, in microseconds.
type LatencyStats struct {
	MinUs    float64 `json:"min_us"`
	MaxUs    float64 `json:"max_us"`
	MeanUs   float64 `json:"mean_us"`
	StddevUs float64 `json:"stddev_us"`
	P50Us    float64 `json:"p50_us"`
	P90Us    float64 `json:"p90_us"`
	P99Us    float64 `json:"p99_us"`
	Samples  int     `json:"samples"`
}

func fromRunnerLatencyStats(s runner.LatencyStats) LatencyStats {
	return LatencyStats{
		MinUs:    micros(s.Min),
		MaxUs:    micros(s.Max),
		MeanUs:   micros(s.Mean),
		StddevUs: micros(s.Stddev),
		P50Us:    micros(s.P50()),
		P90Us:    micros(s.P90()),
		P99Us:    micros(s.P99()),
		Samples:  s.Samples,
	}
}
