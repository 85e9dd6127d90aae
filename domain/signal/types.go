// Package signal defines the derived accountability outputs: influence
// analysis, promise evaluations, red flags and the composite scorecard.
// These are the engine's return values; the JSON tags are the output
// contract consumed by the boundary collaborator.
package signal

import (
	"civitrack/domain/core"
)

// Severity ranks a red flag.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Rank returns the sort position of the severity, critical first.
// Unknown severities sort last.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 3
	}
	return 4
}

// FlagType is the closed set of red-flag kinds the detectors emit.
type FlagType string

const (
	FlagBrokenPromise      FlagType = "broken_promise"
	FlagSuspiciousTiming   FlagType = "suspicious_timing"
	FlagMissedVotes        FlagType = "excessive_missed_votes"
	FlagLowAccessibility   FlagType = "low_accessibility"
	FlagLowTransparency    FlagType = "low_transparency"
	FlagNoTownHalls        FlagType = "no_town_halls"
	FlagStockConflict      FlagType = "stock_conflict"
	FlagExcessiveTrading   FlagType = "excessive_trading"
	FlagPACDependency      FlagType = "corporate_pac_dependency"
	FlagDonorConcentration FlagType = "donor_concentration"
)

// RedFlag is a discrete severity-tagged finding. Evidence fields are
// type-specific; unused fields stay zero and are omitted from JSON.
type RedFlag struct {
	ID          core.FlagID `json:"id"`
	Type        FlagType    `json:"type"`
	Severity    Severity    `json:"severity"`
	Title       string      `json:"title"`
	Description string      `json:"description"`

	// broken_promise evidence
	EvidenceCount   int            `json:"evidence_count,omitempty"`
	FirstOccurrence core.CivicDate `json:"first_occurrence,omitempty"`
	LastOccurrence  core.CivicDate `json:"last_occurrence,omitempty"`
	Category        string         `json:"category,omitempty"`

	// suspicious_timing evidence
	DonationDate    core.CivicDate `json:"donation_date,omitempty"`
	VoteDate        core.CivicDate `json:"vote_date,omitempty"`
	DaysBetween     int            `json:"days_between,omitempty"`
	DonationAmount  float64        `json:"donation_amount,omitempty"`
	Donor           string         `json:"donor,omitempty"`
	VoteDescription string         `json:"vote_description,omitempty"`

	// excessive_missed_votes evidence
	MissedVotes        int     `json:"missed_votes,omitempty"`
	TotalVotes         int     `json:"total_votes,omitempty"`
	MissedRatePct      float64 `json:"missed_rate_pct,omitempty"`
	CongressAveragePct float64 `json:"congress_average_pct,omitempty"`

	// stock evidence
	TradeDate  core.CivicDate `json:"trade_date,omitempty"`
	Asset      string         `json:"asset,omitempty"`
	Bill       string         `json:"bill,omitempty"`
	TradeCount int            `json:"trade_count,omitempty"`

	// donor-concentration evidence
	PACAmount        float64 `json:"pac_amount,omitempty"`
	TotalRaised      float64 `json:"total_raised,omitempty"`
	PACPct           float64 `json:"pac_percentage,omitempty"`
	ConcentrationPct float64 `json:"concentration_percentage,omitempty"`
	Top10Amount      float64 `json:"top_10_amount,omitempty"`
}

// SeverityCounts tallies flags per severity tier.
type SeverityCounts struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// Add increments the tier for the given severity.
func (c *SeverityCounts) Add(s Severity) {
	switch s {
	case SeverityCritical:
		c.Critical++
	case SeverityHigh:
		c.High++
	case SeverityMedium:
		c.Medium++
	case SeverityLow:
		c.Low++
	}
}

// RedFlagsReport is the full detector output for one official.
type RedFlagsReport struct {
	OfficialID    core.OfficialID `json:"official_id"`
	TotalRedFlags int             `json:"total_red_flags"`
	BySeverity    SeverityCounts  `json:"by_severity"`
	Flags         []RedFlag       `json:"flags"`
}

// PromiseStatus classifies a promise against the voting record.
type PromiseStatus string

const (
	PromiseKept         PromiseStatus = "kept"
	PromiseBroken       PromiseStatus = "broken"
	PromiseInProgress   PromiseStatus = "in_progress"
	PromiseNotAddressed PromiseStatus = "not_addressed"
)

// EvidenceVote links a promise evaluation to a specific roll call.
type EvidenceVote struct {
	VoteID             core.VoteID    `json:"vote_id"`
	BillName           string         `json:"bill_name"`
	BillNumber         string         `json:"bill_number"`
	Vote               string         `json:"vote"`
	Date               core.CivicDate `json:"date"`
	ContradictsPromise bool           `json:"contradicts_promise"`
}

// PromiseEvaluation is the per-promise classification with evidence.
type PromiseEvaluation struct {
	PromiseID         core.PromiseID `json:"promise_id"`
	Category          string         `json:"category"`
	PromiseText       string         `json:"promise_text"`
	SourceURL         string         `json:"source_url"`
	Status            PromiseStatus  `json:"status"`
	Evidence          []EvidenceVote `json:"evidence"`
	TimesVotedAgainst int            `json:"times_voted_against"`
	TimesVotedFor     int            `json:"times_voted_for"`
}

// PromiseSummary aggregates evaluation counts.
type PromiseSummary struct {
	TotalPromises       int     `json:"total_promises"`
	Kept                int     `json:"kept"`
	Broken              int     `json:"broken"`
	InProgress          int     `json:"in_progress"`
	NotAddressed        int     `json:"not_addressed"`
	PromiseKeepingScore float64 `json:"promise_keeping_score"`
}

// PromiseReport is the full promise-tracker output for one official.
type PromiseReport struct {
	OfficialID core.OfficialID     `json:"official_id"`
	Summary    PromiseSummary      `json:"summary"`
	Promises   []PromiseEvaluation `json:"promises"`
}

// VoteExample is a compact related-vote citation in the industry breakdown.
type VoteExample struct {
	Bill  string         `json:"bill"`
	Title string         `json:"title"`
	Vote  string         `json:"vote"`
	Date  core.CivicDate `json:"date"`
}

// IndustryInfluence is the per-industry slice of the influence analysis.
type IndustryInfluence struct {
	Industry          string        `json:"industry"`
	IndustryKey       string        `json:"industry_key"`
	TotalDonations    float64       `json:"total_donations"`
	VotingAlignment   float64       `json:"voting_alignment"`
	SuspiciousVotes   int           `json:"suspicious_votes"`
	RelatedVotesCount int           `json:"related_votes_count"`
	Examples          []VoteExample `json:"examples"`
}

// TimingFlag records one donation-then-favorable-vote coincidence. The
// day gap is a fixed placeholder until real per-donation dates exist.
type TimingFlag struct {
	Type            FlagType       `json:"type"`
	DonationDate    core.CivicDate `json:"donation_date"`
	DonationAmount  float64        `json:"donation_amount"`
	Donor           string         `json:"donor"`
	VoteDate        core.CivicDate `json:"vote_date"`
	VoteDescription string         `json:"vote_description"`
	DaysBetween     int            `json:"days_between"`
}

// InfluenceMetrics are the audit sub-metrics behind the influence score.
type InfluenceMetrics struct {
	DonationConcentration  float64 `json:"donation_concentration"`
	AvgVotingAlignment     float64 `json:"avg_voting_alignment"`
	SuspiciousTimingRate   float64 `json:"suspicious_timing_rate"`
	TotalDonationsAnalyzed float64 `json:"total_donations_analyzed"`
	TotalVotesAnalyzed     int     `json:"total_votes_analyzed"`
}

// InfluenceAnalysis is the full donor-influence output for one official.
type InfluenceAnalysis struct {
	OfficialID     core.OfficialID     `json:"official_id"`
	InfluenceScore float64             `json:"influence_score"`
	TopIndustries  []IndustryInfluence `json:"top_industries"`
	RedFlags       []TimingFlag        `json:"red_flags"`
	Analysis       InfluenceMetrics    `json:"analysis"`
}

// Grade is the letter grade on the composite score.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// Trend describes score movement over time. Historical scores are not
// yet modeled, so only TrendStable is produced today.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

// Component is one weighted slice of the composite score.
type Component struct {
	Score                float64        `json:"score"`
	Weight               int            `json:"weight"`
	WeightedContribution float64        `json:"weighted_contribution"`
	Description          string         `json:"description"`
	Metrics              map[string]any `json:"metrics,omitempty"`
}

// PeerComparison situates the score among chamber peers. Fixed
// placeholder values until peer data is wired up.
type PeerComparison struct {
	AverageScore float64 `json:"average_score"`
	Rank         int     `json:"rank"`
	TotalPeers   int     `json:"total_peers"`
}

// AccountabilityScore is the top-level composite result.
type AccountabilityScore struct {
	OfficialID   core.OfficialID      `json:"official_id"`
	OverallScore float64              `json:"overall_score"`
	Grade        Grade                `json:"grade"`
	Components   map[string]Component `json:"components"`
	Trend        Trend                `json:"trend"`
	Peers        PeerComparison       `json:"peer_comparison"`
}
