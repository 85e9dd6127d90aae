// Package scorecard combines the component accountability signals into
// the weighted composite score and letter grade.
package scorecard

import (
	"log"
	"math"

	"gonum.org/v1/gonum/stat"

	"civitrack/domain/civic"
	"civitrack/domain/core"
	"civitrack/domain/signal"
)

// Weights are the component shares of the composite score. They must
// sum to exactly 1.0.
type Weights struct {
	PromiseKeeping       float64
	Transparency         float64
	ConstituentAlignment float64
	Attendance           float64
	DonorIndependence    float64
}

// DefaultWeights returns the standard component weighting.
func DefaultWeights() Weights {
	return Weights{
		PromiseKeeping:       0.40,
		Transparency:         0.20,
		ConstituentAlignment: 0.20,
		Attendance:           0.10,
		DonorIndependence:    0.10,
	}
}

// Validate checks the sum-to-one invariant.
func (w Weights) Validate() error {
	sum := w.PromiseKeeping + w.Transparency + w.ConstituentAlignment + w.Attendance + w.DonorIndependence
	if math.Abs(sum-1.0) > 1e-9 {
		return core.ErrInvalidWeights
	}
	return nil
}

// NeutralScore substitutes for any component whose upstream data is
// absent. Callers can tell "neutral because unknown" apart from a real
// average via the neutral_default metric on the component.
const NeutralScore = 50.0

// gradeLadder is checked top down; a score is always tested against
// the highest threshold first.
var gradeLadder = []struct {
	grade     signal.Grade
	threshold float64
}{
	{signal.GradeA, 90},
	{signal.GradeB, 80},
	{signal.GradeC, 70},
	{signal.GradeD, 60},
}

// transparencyFlagTypes are the red-flag kinds that deduct from the
// transparency component.
var transparencyFlagTypes = map[signal.FlagType]bool{
	signal.FlagLowTransparency:  true,
	signal.FlagLowAccessibility: true,
	signal.FlagNoTownHalls:      true,
}

// Input bundles everything the aggregator consumes. Every field except
// the official ID is optional.
type Input struct {
	Promises  *signal.PromiseReport
	Influence *signal.InfluenceAnalysis
	RedFlags  *signal.RedFlagsReport
	Votes     []civic.VoteSnapshot
	Donations *civic.DonationSnapshot
	Profile   *civic.ProfileSnapshot
}

// Aggregator computes the composite accountability score.
type Aggregator struct {
	weights Weights
}

// NewAggregator creates an aggregator with the given weights.
func NewAggregator(weights Weights) (*Aggregator, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Aggregator{weights: weights}, nil
}

// Aggregate computes the weighted composite score and grade.
func (a *Aggregator) Aggregate(officialID core.OfficialID, in Input) signal.AccountabilityScore {
	promiseScore, promiseNeutral := a.promiseKeepingScore(in.Promises)
	transparencyScore := a.transparencyScore(in.Profile, in.RedFlags)
	attendanceScore, attendanceNeutral := a.attendanceScore(in.Votes)
	donorScore, donorNeutral := a.donorIndependenceScore(in.Donations, in.Influence)
	alignmentScore := a.constituentAlignmentScore()

	if promiseNeutral || attendanceNeutral || donorNeutral {
		log.Printf("scorecard: official %s scored with neutral defaults (promises=%t attendance=%t donors=%t)",
			officialID, promiseNeutral, attendanceNeutral, donorNeutral)
	}

	scores := []float64{promiseScore, transparencyScore, alignmentScore, attendanceScore, donorScore}
	weights := []float64{a.weights.PromiseKeeping, a.weights.Transparency, a.weights.ConstituentAlignment, a.weights.Attendance, a.weights.DonorIndependence}
	overall := core.Round1(stat.Mean(scores, weights))

	components := map[string]signal.Component{
		"promise_keeping": a.component(promiseScore, a.weights.PromiseKeeping,
			"How well campaign promises match voting record",
			neutralMetrics(nil, promiseNeutral)),
		"transparency": a.component(transparencyScore, a.weights.Transparency,
			"Accessibility and openness to constituents",
			transparencyMetrics()),
		"attendance": a.component(attendanceScore, a.weights.Attendance,
			"Participation in votes and committee meetings",
			neutralMetrics(map[string]any{"missed_votes_pct": missedVotesPct(in.Votes)}, attendanceNeutral)),
		"donor_independence": a.component(donorScore, a.weights.DonorIndependence,
			"Independence from corporate and special interests",
			neutralMetrics(donorMetrics(in.Donations, in.Influence), donorNeutral)),
		"constituent_alignment": a.component(alignmentScore, a.weights.ConstituentAlignment,
			"How well votes align with district priorities",
			// District-preference data is not modeled; fixed sample value.
			map[string]any{"votes_with_district": 34.0}),
	}

	return signal.AccountabilityScore{
		OfficialID:   officialID,
		OverallScore: overall,
		Grade:        GradeFor(overall),
		Components:   components,
		Trend:        signal.TrendStable, // needs historical scores
		Peers:        signal.PeerComparison{AverageScore: 62, Rank: 142, TotalPeers: 150}, // needs peer data
	}
}

// GradeFor maps a composite score to its letter grade.
func GradeFor(score float64) signal.Grade {
	for _, step := range gradeLadder {
		if score >= step.threshold {
			return step.grade
		}
	}
	return signal.GradeF
}

func (a *Aggregator) component(score, weight float64, description string, metrics map[string]any) signal.Component {
	return signal.Component{
		Score:                core.Round1(score),
		Weight:               int(weight * 100),
		WeightedContribution: core.Round1(score * weight),
		Description:          description,
		Metrics:              metrics,
	}
}

func (a *Aggregator) promiseKeepingScore(report *signal.PromiseReport) (float64, bool) {
	if report == nil {
		return NeutralScore, true
	}
	return report.Summary.PromiseKeepingScore, false
}

// transparencyScore starts at 100 and deducts for transparency red
// flags and for each missing contact surface, floored at 0.
func (a *Aggregator) transparencyScore(profile *civic.ProfileSnapshot, redFlags *signal.RedFlagsReport) float64 {
	score := 100.0

	if redFlags != nil {
		for _, flag := range redFlags.Flags {
			if !transparencyFlagTypes[flag.Type] {
				continue
			}
			switch flag.Severity {
			case signal.SeverityCritical:
				score -= 20
			case signal.SeverityHigh:
				score -= 15
			case signal.SeverityMedium:
				score -= 10
			default:
				score -= 5
			}
		}
	}

	var contact civic.ContactInfo
	if profile != nil {
		contact = profile.ContactInfo
	}
	if contact.Email == "" {
		score -= 15
	}
	if contact.Phone == "" {
		score -= 10
	}
	if contact.Website == "" {
		score -= 10
	}

	return core.Clamp(score, 0, 100)
}

func (a *Aggregator) attendanceScore(votes []civic.VoteSnapshot) (float64, bool) {
	total, cast := 0, 0
	for _, ys := range votes {
		for _, v := range ys.Votes {
			total++
			if v.Vote.Cast() {
				cast++
			}
		}
	}
	if total == 0 {
		return NeutralScore, true
	}
	return float64(cast) / float64(total) * 100, false
}

// donorIndependenceScore blends the individual-contribution share with
// the inverse of the influence score when an influence analysis exists.
func (a *Aggregator) donorIndependenceScore(donations *civic.DonationSnapshot, influence *signal.InfluenceAnalysis) (float64, bool) {
	if donations == nil || donations.TotalRaised == 0 {
		return NeutralScore, true
	}

	individualPct := donations.IndividualContributions / donations.TotalRaised * 100
	if influence == nil {
		return individualPct, false
	}

	independence := 100 - influence.InfluenceScore
	return individualPct*0.5 + independence*0.5, false
}

// constituentAlignmentScore is a documented stub: scoring alignment
// needs district-preference data that is not modeled yet.
func (a *Aggregator) constituentAlignmentScore() float64 {
	return NeutralScore
}

func missedVotesPct(votes []civic.VoteSnapshot) float64 {
	total, missed := 0, 0
	for _, ys := range votes {
		for _, v := range ys.Votes {
			total++
			if v.Vote.Missed() {
				missed++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return core.Round1(float64(missed) / float64(total) * 100)
}

func donorMetrics(donations *civic.DonationSnapshot, influence *signal.InfluenceAnalysis) map[string]any {
	metrics := map[string]any{"corporate_pac_pct": 0.0, "influence_score": 0.0}
	if donations != nil && donations.TotalRaised > 0 {
		metrics["corporate_pac_pct"] = core.Round1(donations.PACContributions / donations.TotalRaised * 100)
	}
	if influence != nil {
		metrics["influence_score"] = influence.InfluenceScore
	}
	return metrics
}

// transparencyMetrics are fixed sample values until town-hall and
// response-rate data sources exist.
func transparencyMetrics() map[string]any {
	return map[string]any{
		"town_halls_per_year":       0.5,
		"constituent_response_rate": 12,
		"calendar_public":           false,
	}
}

func neutralMetrics(metrics map[string]any, neutral bool) map[string]any {
	if !neutral {
		return metrics
	}
	if metrics == nil {
		metrics = map[string]any{}
	}
	metrics["neutral_default"] = true
	return metrics
}
