package redflags

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civitrack/domain/civic"
	"civitrack/domain/core"
	"civitrack/domain/signal"
	"civitrack/internal/testkit"
)

func newDetector() *Detector {
	return NewDetector(DefaultThresholds(), &core.SequentialIDSource{Prefix: "test"})
}

func TestSeverityOrderingIsStable(t *testing.T) {
	d := newDetector()

	// Crafted so detection order interleaves severities: the timing
	// flag (critical) lands after two mediums would otherwise appear,
	// and the stock conflict (high) arrives last.
	in := Input{
		Influence: &signal.InfluenceAnalysis{
			RedFlags: []signal.TimingFlag{{
				Type:        signal.FlagSuspiciousTiming,
				DaysBetween: 7,
				Donor:       "Pfizer PAC",
			}},
		},
		Profile: &civic.ProfileSnapshot{}, // no contact info at all
		Stocks: &civic.StockSnapshot{
			ConflictAlerts: []civic.ConflictAlert{{Description: "energy trade before pipeline vote"}},
		},
	}

	report := d.Detect("off-1", in)

	require.Equal(t, 4, report.TotalRedFlags)
	severities := make([]signal.Severity, 0, 4)
	for _, f := range report.Flags {
		severities = append(severities, f.Severity)
	}
	assert.Equal(t, []signal.Severity{
		signal.SeverityCritical,
		signal.SeverityHigh,
		signal.SeverityMedium,
		signal.SeverityLow,
	}, severities)

	assert.Equal(t, signal.SeverityCounts{Critical: 1, High: 1, Medium: 1, Low: 1}, report.BySeverity)
}

func TestMediumTierPreservesDetectionOrder(t *testing.T) {
	d := newDetector()

	// Two medium flags from different detectors: accessibility first,
	// then excessive trading.
	trades := make([]civic.StockTrade, 51)
	in := Input{
		Profile: &civic.ProfileSnapshot{ContactInfo: civic.ContactInfo{Website: "https://example.gov"}},
		Stocks:  &civic.StockSnapshot{Trades: trades},
	}

	report := d.Detect("off-1", in)
	require.Equal(t, 2, report.TotalRedFlags)
	assert.Equal(t, signal.FlagLowAccessibility, report.Flags[0].Type)
	assert.Equal(t, signal.FlagExcessiveTrading, report.Flags[1].Type)
}

func TestTimingSeverityLadder(t *testing.T) {
	d := newDetector()

	in := Input{Influence: &signal.InfluenceAnalysis{
		RedFlags: []signal.TimingFlag{
			{Type: signal.FlagSuspiciousTiming, DaysBetween: 7},
			{Type: signal.FlagSuspiciousTiming, DaysBetween: 14},
			{Type: signal.FlagSuspiciousTiming, DaysBetween: 21},
		},
	}}

	report := d.Detect("off-1", in)

	// The nil profile also yields transparency flags; filter to timing.
	var severities []signal.Severity
	for _, f := range report.Flags {
		if f.Type == signal.FlagSuspiciousTiming {
			severities = append(severities, f.Severity)
		}
	}
	assert.Equal(t, []signal.Severity{signal.SeverityCritical, signal.SeverityHigh, signal.SeverityMedium}, severities)
}

func TestAttendanceDetector(t *testing.T) {
	d := newDetector()

	makeVotes := func(missed, total int) []civic.VoteSnapshot {
		var votes []civic.Vote
		for i := 0; i < total; i++ {
			v := civic.VoteYes
			if i < missed {
				v = civic.VoteNotVoting
			}
			votes = append(votes, testkit.Vote(fmt.Sprintf("v%d", i), "H.R. 1", "Quorum Call", v, "2023-01-01"))
		}
		return []civic.VoteSnapshot{testkit.VoteYear("off-1", 2023, votes...)}
	}

	// 10% missed: under the 20% threshold, no flag.
	flags := d.attendance(makeVotes(1, 10))
	assert.Empty(t, flags)

	// 20% missed: 2.5x the 8% average, high.
	flags = d.attendance(makeVotes(2, 10))
	require.Len(t, flags, 1)
	assert.Equal(t, signal.SeverityHigh, flags[0].Severity)
	assert.Equal(t, 20.0, flags[0].MissedRatePct)

	// 30% missed: 3.75x, critical.
	flags = d.attendance(makeVotes(3, 10))
	require.Len(t, flags, 1)
	assert.Equal(t, signal.SeverityCritical, flags[0].Severity)
	assert.Equal(t, 3, flags[0].MissedVotes)
	assert.Equal(t, 10, flags[0].TotalVotes)
}

func TestPACDependencyLadder(t *testing.T) {
	d := newDetector()

	pac := func(rate float64) *civic.DonationSnapshot {
		return &civic.DonationSnapshot{TotalRaised: 100_000, PACContributions: rate * 100_000}
	}

	assert.Empty(t, d.donorConcentration(pac(0.50)))

	flags := d.donorConcentration(pac(0.60))
	require.Len(t, flags, 1)
	assert.Equal(t, signal.SeverityMedium, flags[0].Severity)

	flags = d.donorConcentration(pac(0.70))
	require.Len(t, flags, 1)
	assert.Equal(t, signal.SeverityHigh, flags[0].Severity)

	flags = d.donorConcentration(pac(0.85))
	require.Len(t, flags, 1)
	assert.Equal(t, signal.SeverityCritical, flags[0].Severity)
	assert.Equal(t, signal.FlagPACDependency, flags[0].Type)
}

func TestDonorConcentrationNeedsTenDonors(t *testing.T) {
	d := newDetector()

	donors := func(n int, each float64) []civic.Donor {
		out := make([]civic.Donor, n)
		for i := range out {
			out[i] = civic.Donor{Name: fmt.Sprintf("Donor %d", i), Amount: each, Type: civic.DonorIndividual}
		}
		return out
	}

	// 9 donors holding 90% of funding: below the donor-count floor.
	flags := d.donorConcentration(&civic.DonationSnapshot{
		TotalRaised: 100_000,
		TopDonors:   donors(9, 10_000),
	})
	assert.Empty(t, flags)

	// 10 donors holding 80%: high.
	flags = d.donorConcentration(&civic.DonationSnapshot{
		TotalRaised: 100_000,
		TopDonors:   donors(10, 8_000),
	})
	require.Len(t, flags, 1)
	assert.Equal(t, signal.FlagDonorConcentration, flags[0].Type)
	assert.Equal(t, signal.SeverityHigh, flags[0].Severity)
	assert.Equal(t, 80.0, flags[0].ConcentrationPct)
}

func TestBrokenPromiseDetector(t *testing.T) {
	d := newDetector()

	report := &signal.PromiseReport{
		Summary: signal.PromiseSummary{TotalPromises: 2, Broken: 1},
		Promises: []signal.PromiseEvaluation{
			{
				PromiseID:         "p1",
				PromiseText:       "protect medicare",
				Status:            signal.PromiseBroken,
				TimesVotedAgainst: 12,
				Evidence: []signal.EvidenceVote{
					{Date: "2023-01-05", ContradictsPromise: true},
					{Date: "2024-06-10", ContradictsPromise: true},
				},
			},
			{PromiseID: "p2", Status: signal.PromiseKept, TimesVotedFor: 4},
		},
	}

	flags := d.brokenPromises(report)
	require.Len(t, flags, 1)
	assert.Equal(t, signal.FlagBrokenPromise, flags[0].Type)
	assert.Equal(t, signal.SeverityHigh, flags[0].Severity) // 12 >= 10
	assert.Equal(t, core.CivicDate("2023-01-05"), flags[0].FirstOccurrence)
	assert.Equal(t, core.CivicDate("2024-06-10"), flags[0].LastOccurrence)
	assert.Contains(t, flags[0].Description, "protect medicare")
}

func TestBrokenPromiseBelowRateProducesNothing(t *testing.T) {
	d := newDetector()

	report := &signal.PromiseReport{
		Summary: signal.PromiseSummary{TotalPromises: 4, Broken: 1},
		Promises: []signal.PromiseEvaluation{
			{Status: signal.PromiseBroken, TimesVotedAgainst: 20},
		},
	}
	assert.Empty(t, d.brokenPromises(report))
}

func TestStockConflictCap(t *testing.T) {
	d := newDetector()

	alerts := make([]civic.ConflictAlert, 12)
	for i := range alerts {
		alerts[i] = civic.ConflictAlert{Description: fmt.Sprintf("conflict %d", i)}
	}
	flags := d.stockConflicts(&civic.StockSnapshot{ConflictAlerts: alerts})
	assert.Len(t, flags, 10)
}

func TestEmptyInputYieldsOnlyTransparencyFlags(t *testing.T) {
	d := newDetector()

	report := d.Detect("off-1", Input{})
	// Nil profile reads as no contact surfaces at all.
	require.Equal(t, 2, report.TotalRedFlags)
	assert.Equal(t, signal.FlagLowAccessibility, report.Flags[0].Type)
	assert.Equal(t, signal.FlagLowTransparency, report.Flags[1].Type)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "45,000", formatAmount(45_000))
	assert.Equal(t, "1,250,000", formatAmount(1_250_000))
	assert.Equal(t, "900", formatAmount(900))
	assert.Equal(t, "0", formatAmount(0))
}
