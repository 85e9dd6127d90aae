// Package app composes the five engine components into the full
// per-official analysis pipeline and provides the bounded batch runner.
package app

import (
	"civitrack/domain/civic"
	"civitrack/domain/core"
	"civitrack/domain/signal"
	"civitrack/internal/influence"
	"civitrack/internal/promises"
	"civitrack/internal/redflags"
	"civitrack/internal/scorecard"
	"civitrack/internal/taxonomy"
)

// Report is the complete engine output for one official: the four
// boundary documents plus the run identifier.
type Report struct {
	RunID      core.RunID                 `json:"run_id"`
	OfficialID core.OfficialID            `json:"official_id"`
	Influence  signal.InfluenceAnalysis   `json:"influence"`
	Promises   signal.PromiseReport       `json:"promises"`
	RedFlags   signal.RedFlagsReport      `json:"red_flags"`
	Scorecard  signal.AccountabilityScore `json:"scorecard"`
}

// Config collects the component configurations.
type Config struct {
	Influence  influence.Config
	Promises   promises.Config
	Thresholds redflags.Thresholds
	Weights    scorecard.Weights
}

// DefaultConfig returns the standard engine configuration.
func DefaultConfig() Config {
	return Config{
		Influence:  influence.DefaultConfig(),
		Promises:   promises.DefaultConfig(),
		Thresholds: redflags.DefaultThresholds(),
		Weights:    scorecard.DefaultWeights(),
	}
}

// Pipeline wires the categorizer, the two analyzers, the detector and
// the aggregator. It holds no mutable state; one instance serves any
// number of concurrent Analyze calls.
type Pipeline struct {
	influence *influence.Analyzer
	promises  *promises.Analyzer
	redflags  *redflags.Detector
	scorecard *scorecard.Aggregator
	ids       core.IDSource
}

// NewPipeline builds a pipeline. ids controls run and flag ID
// generation; pass a core.SequentialIDSource for reproducible output.
func NewPipeline(cfg Config, ids core.IDSource) (*Pipeline, error) {
	aggregator, err := scorecard.NewAggregator(cfg.Weights)
	if err != nil {
		return nil, err
	}

	cat := taxonomy.NewCategorizer()
	return &Pipeline{
		influence: influence.NewAnalyzer(cat, cfg.Influence),
		promises:  promises.NewAnalyzer(cfg.Promises),
		redflags:  redflags.NewDetector(cfg.Thresholds, ids),
		scorecard: aggregator,
		ids:       ids,
	}, nil
}

// Analyze runs the full pipeline on one official's snapshots. The two
// analyzers run on the raw inputs independently; the detector consumes
// both plus the raw data; the aggregator consumes everything. Sections
// with no upstream data flow downstream as nil so dependent scores
// degrade to their documented neutral defaults.
func (p *Pipeline) Analyze(s civic.Snapshots) Report {
	influenceAnalysis := p.influence.Analyze(s.OfficialID, s.Donations, s.Votes)
	promiseReport := p.promises.Analyze(s.OfficialID, s.Promises, s.Votes)

	var promisesForDownstream *signal.PromiseReport
	if s.Promises != nil && len(s.Promises.Items) > 0 {
		promisesForDownstream = &promiseReport
	}
	var influenceForDownstream *signal.InfluenceAnalysis
	if s.Donations != nil {
		influenceForDownstream = &influenceAnalysis
	}

	flagsReport := p.redflags.Detect(s.OfficialID, redflags.Input{
		Promises:  promisesForDownstream,
		Influence: influenceForDownstream,
		Votes:     s.Votes,
		Donations: s.Donations,
		Stocks:    s.Stocks,
		Profile:   s.Profile,
	})

	score := p.scorecard.Aggregate(s.OfficialID, scorecard.Input{
		Promises:  promisesForDownstream,
		Influence: influenceForDownstream,
		RedFlags:  &flagsReport,
		Votes:     s.Votes,
		Donations: s.Donations,
		Profile:   s.Profile,
	})

	return Report{
		RunID:      p.ids.RunID(),
		OfficialID: s.OfficialID,
		Influence:  influenceAnalysis,
		Promises:   promiseReport,
		RedFlags:   flagsReport,
		Scorecard:  score,
	}
}
