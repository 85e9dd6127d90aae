package influence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civitrack/domain/civic"
	"civitrack/domain/signal"
	"civitrack/internal/taxonomy"
	"civitrack/internal/testkit"
)

func newAnalyzer() *Analyzer {
	return NewAnalyzer(taxonomy.NewCategorizer(), DefaultConfig())
}

func TestFavorabilityTable(t *testing.T) {
	tests := []struct {
		industry  string
		category  string
		vote      civic.VoteValue
		favorable bool
	}{
		{taxonomy.IndustryPharma, taxonomy.CategoryHealthcare, civic.VoteNo, true},
		{taxonomy.IndustryPharma, taxonomy.CategoryHealthcare, civic.VoteYes, false},
		{taxonomy.IndustryOilGas, taxonomy.CategoryEnvironment, civic.VoteNo, true},
		{taxonomy.IndustryOilGas, taxonomy.CategoryEnergy, civic.VoteYes, true},
		{taxonomy.IndustryOilGas, taxonomy.CategoryEnergy, civic.VoteNo, false},
		{taxonomy.IndustryTech, taxonomy.CategoryTechnology, civic.VoteNo, true},
		{taxonomy.IndustryFinance, taxonomy.CategoryEconomy, civic.VoteNo, true},
		{taxonomy.IndustryDefense, taxonomy.CategoryDefense, civic.VoteYes, true},
		// Unlisted combinations are undeterminable.
		{taxonomy.IndustryLabor, taxonomy.CategoryLabor, civic.VoteYes, false},
		{taxonomy.IndustryPharma, taxonomy.CategoryEconomy, civic.VoteNo, false},
	}

	for _, tt := range tests {
		got := Favorable(tt.industry, []string{tt.category}, tt.vote)
		assert.Equal(t, tt.favorable, got, "%s/%s vote=%s", tt.industry, tt.category, tt.vote)
	}
}

func TestDonationConcentration(t *testing.T) {
	a := newAnalyzer()

	// Four industries totaling 200,000 of 250,000 raised.
	donations := &civic.DonationSnapshot{
		TotalRaised: 250_000,
		TopIndustries: []civic.IndustryContribution{
			{Industry: "Pharmaceuticals", Amount: 80_000},
			{Industry: "Oil & Gas", Amount: 60_000},
			{Industry: "Technology", Amount: 40_000},
			{Industry: "Defense Contractors", Amount: 20_000},
		},
	}

	analysis := a.Analyze("off-1", donations, nil)
	assert.Equal(t, 80.0, analysis.Analysis.DonationConcentration)
	assert.Equal(t, 0.0, analysis.Analysis.AvgVotingAlignment)
	assert.Equal(t, 0.0, analysis.Analysis.SuspiciousTimingRate)
	assert.Equal(t, 24.0, analysis.InfluenceScore) // 80 * 0.3
}

func TestAnalyzeAlignmentAndTiming(t *testing.T) {
	a := newAnalyzer()

	donations := &civic.DonationSnapshot{
		TotalRaised: 100_000,
		TopDonors: []civic.Donor{
			{Name: "Pfizer PAC", Amount: 45_000, Type: civic.DonorPAC},
		},
	}
	votes := []civic.VoteSnapshot{
		testkit.VoteYear("off-1", 2023,
			testkit.Vote("v1", "H.R. 101", "Prescription Drug Price Negotiation Act", civic.VoteNo, "2023-03-10"),
			testkit.Vote("v2", "H.R. 102", "Medicare For All Act", civic.VoteYes, "2023-04-01"),
		),
	}

	analysis := a.Analyze("off-1", donations, votes)

	require.Len(t, analysis.TopIndustries, 1)
	pharma := analysis.TopIndustries[0]
	assert.Equal(t, taxonomy.IndustryPharma, pharma.IndustryKey)
	assert.Equal(t, 45_000.0, pharma.TotalDonations)
	assert.Equal(t, 2, pharma.RelatedVotesCount)
	assert.Equal(t, 50.0, pharma.VotingAlignment)
	assert.Equal(t, 1, pharma.SuspiciousVotes)

	require.Len(t, analysis.RedFlags, 1)
	flag := analysis.RedFlags[0]
	assert.Equal(t, signal.FlagSuspiciousTiming, flag.Type)
	assert.Equal(t, 7, flag.DaysBetween)
	assert.Equal(t, "Pfizer PAC", flag.Donor)
	assert.Equal(t, "2023-03-03", flag.DonationDate.String())
	assert.Equal(t, "2023-03-10", flag.VoteDate.String())
	assert.Equal(t, 45_000.0, flag.DonationAmount)

	// concentration 45, alignment 50, timing 1 of 2 first-year votes.
	assert.Equal(t, 45.0, analysis.Analysis.DonationConcentration)
	assert.Equal(t, 50.0, analysis.Analysis.AvgVotingAlignment)
	assert.Equal(t, 50.0, analysis.Analysis.SuspiciousTimingRate)
	assert.Equal(t, 48.5, analysis.InfluenceScore)
	assert.Equal(t, 2, analysis.Analysis.TotalVotesAnalyzed)
}

func TestSmallDonationsProduceNoTimingFlags(t *testing.T) {
	a := newAnalyzer()

	donations := &civic.DonationSnapshot{
		TotalRaised: 50_000,
		TopDonors: []civic.Donor{
			{Name: "Pfizer PAC", Amount: 9_000, Type: civic.DonorPAC},
		},
	}
	votes := []civic.VoteSnapshot{
		testkit.VoteYear("off-1", 2023,
			testkit.Vote("v1", "H.R. 101", "Prescription Drug Price Negotiation Act", civic.VoteNo, "2023-03-10"),
		),
	}

	analysis := a.Analyze("off-1", donations, votes)
	assert.Empty(t, analysis.RedFlags)
	assert.Equal(t, 0.0, analysis.Analysis.SuspiciousTimingRate)
}

func TestTopIndustriesMergeDonorAndAggregateRows(t *testing.T) {
	a := newAnalyzer()

	donations := &civic.DonationSnapshot{
		TotalRaised: 200_000,
		TopDonors: []civic.Donor{
			{Name: "Pfizer PAC", Amount: 45_000, Type: civic.DonorPAC},
		},
		TopIndustries: []civic.IndustryContribution{
			{Industry: "Pharmaceuticals/Health Products", Amount: 30_000},
		},
	}

	analysis := a.Analyze("off-1", donations, nil)
	require.Len(t, analysis.TopIndustries, 1)
	assert.Equal(t, 75_000.0, analysis.TopIndustries[0].TotalDonations)
}

func TestNilDonationsDegradesToZeros(t *testing.T) {
	a := newAnalyzer()

	analysis := a.Analyze("off-1", nil, nil)
	assert.Equal(t, 0.0, analysis.InfluenceScore)
	assert.Empty(t, analysis.TopIndustries)
	assert.Empty(t, analysis.RedFlags)
	assert.Equal(t, 0.0, analysis.Analysis.TotalDonationsAnalyzed)
}

func TestIndustriesRankedByMoney(t *testing.T) {
	a := newAnalyzer()

	donations := &civic.DonationSnapshot{
		TotalRaised: 300_000,
		TopIndustries: []civic.IndustryContribution{
			{Industry: "Technology", Amount: 20_000},
			{Industry: "Oil & Gas", Amount: 90_000},
			{Industry: "Pharmaceuticals", Amount: 40_000},
		},
	}

	analysis := a.Analyze("off-1", donations, nil)
	require.Len(t, analysis.TopIndustries, 3)
	assert.Equal(t, taxonomy.IndustryOilGas, analysis.TopIndustries[0].IndustryKey)
	assert.Equal(t, taxonomy.IndustryPharma, analysis.TopIndustries[1].IndustryKey)
	assert.Equal(t, taxonomy.IndustryTech, analysis.TopIndustries[2].IndustryKey)
}
