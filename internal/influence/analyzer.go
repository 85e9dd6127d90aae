// Package influence correlates per-industry donation totals with
// industry-aligned votes and produces the 0-100 influence score.
package influence

import (
	"log"
	"sort"

	"github.com/montanaflynn/stats"

	"civitrack/domain/civic"
	"civitrack/domain/core"
	"civitrack/domain/signal"
	"civitrack/internal/taxonomy"
)

// Config holds the analyzer's fixed heuristic parameters.
type Config struct {
	// LargeDonationThreshold marks an industry's donations as timing-
	// suspect. Placeholder policy: real per-donation dates are not
	// available upstream, so any single donation above this amount
	// tags every favorable vote with a fixed assumed gap.
	LargeDonationThreshold float64
	// AssumedTimingGapDays is the fixed donation-to-vote gap reported
	// on timing flags under the placeholder policy.
	AssumedTimingGapDays int
	// Component weights of the influence score.
	ConcentrationWeight float64
	AlignmentWeight     float64
	TimingWeight        float64
	// Reporting caps.
	MaxIndustries  int
	MaxExamples    int
	MaxTimingFlags int
}

// DefaultConfig returns the standard influence heuristics.
func DefaultConfig() Config {
	return Config{
		LargeDonationThreshold: 10_000,
		AssumedTimingGapDays:   7,
		ConcentrationWeight:    0.3,
		AlignmentWeight:        0.4,
		TimingWeight:           0.3,
		MaxIndustries:          10,
		MaxExamples:            3,
		MaxTimingFlags:         20,
	}
}

// favorability encodes, per industry and bill category, which vote
// value reads as favorable to the industry. Combinations absent here
// are treated as undeterminable (not favorable). Simplified heuristic;
// bill-specific analysis would be needed for real attribution.
var favorability = map[string]map[string]civic.VoteValue{
	taxonomy.IndustryPharma:  {taxonomy.CategoryHealthcare: civic.VoteNo},
	taxonomy.IndustryOilGas:  {taxonomy.CategoryEnvironment: civic.VoteNo, taxonomy.CategoryEnergy: civic.VoteYes},
	taxonomy.IndustryTech:    {taxonomy.CategoryTechnology: civic.VoteNo},
	taxonomy.IndustryFinance: {taxonomy.CategoryEconomy: civic.VoteNo},
	taxonomy.IndustryDefense: {taxonomy.CategoryDefense: civic.VoteYes},
}

// Analyzer computes donor-influence correlation for one official.
type Analyzer struct {
	cfg Config
	cat *taxonomy.Categorizer
}

// NewAnalyzer creates an analyzer with the given categorizer and config.
func NewAnalyzer(cat *taxonomy.Categorizer, cfg Config) *Analyzer {
	return &Analyzer{cfg: cfg, cat: cat}
}

// industryPot accumulates donations attributed to one industry.
type industryPot struct {
	key       string
	total     float64
	donors    []string
	donations []civic.Donor
}

// Favorable reports whether a vote on a bill with the given categories
// reads as favorable to the industry. The first category with a
// favorability entry decides.
func Favorable(industryKey string, billCategories []string, vote civic.VoteValue) bool {
	patterns, ok := favorability[industryKey]
	if !ok {
		return false
	}
	v := vote.Normalize()
	for _, cat := range billCategories {
		if want, ok := patterns[cat]; ok {
			return v == want
		}
	}
	return false
}

// Analyze produces the full influence analysis. A nil donation
// snapshot or empty vote history degrades to zero-valued metrics, never
// to an error.
func (a *Analyzer) Analyze(officialID core.OfficialID, donations *civic.DonationSnapshot, votes []civic.VoteSnapshot) signal.InfluenceAnalysis {
	if donations == nil {
		log.Printf("influence: official %s has no donation data, reporting neutral zeros", officialID)
		donations = &civic.DonationSnapshot{}
	}

	pots, order := a.aggregateByIndustry(donations)

	var (
		industries  []signal.IndustryInfluence
		timingFlags []signal.TimingFlag
	)

	for _, key := range order {
		if key == taxonomy.KeyOther {
			continue
		}
		pot := pots[key]
		ind, flags := a.analyzeIndustry(pot, votes)
		industries = append(industries, ind)
		timingFlags = append(timingFlags, flags...)
	}

	// Rank industries by money, stable so equal totals keep
	// categorization order.
	sort.SliceStable(industries, func(i, j int) bool {
		return industries[i].TotalDonations > industries[j].TotalDonations
	})
	if len(industries) > a.cfg.MaxIndustries {
		industries = industries[:a.cfg.MaxIndustries]
	}

	concentration := a.donationConcentration(pots, order, donations.TotalRaised)
	avgAlignment := meanAlignment(industries)
	timingRate := a.suspiciousTimingRate(timingFlags, votes)

	score := concentration*a.cfg.ConcentrationWeight +
		avgAlignment*a.cfg.AlignmentWeight +
		timingRate*a.cfg.TimingWeight

	sort.SliceStable(timingFlags, func(i, j int) bool {
		return timingFlags[i].DaysBetween < timingFlags[j].DaysBetween
	})
	if len(timingFlags) > a.cfg.MaxTimingFlags {
		timingFlags = timingFlags[:a.cfg.MaxTimingFlags]
	}

	totalVotes := 0
	for _, ys := range votes {
		totalVotes += len(ys.Votes)
	}

	return signal.InfluenceAnalysis{
		OfficialID:     officialID,
		InfluenceScore: core.Round1(score),
		TopIndustries:  industries,
		RedFlags:       timingFlags,
		Analysis: signal.InfluenceMetrics{
			DonationConcentration:  core.Round1(concentration),
			AvgVotingAlignment:     core.Round1(avgAlignment),
			SuspiciousTimingRate:   core.Round1(timingRate),
			TotalDonationsAnalyzed: donations.TotalRaised,
			TotalVotesAnalyzed:     totalVotes,
		},
	}
}

// aggregateByIndustry buckets the top-donor list and the aggregate
// industry list into industry pots, preserving first-seen order so the
// whole analysis stays deterministic.
func (a *Analyzer) aggregateByIndustry(donations *civic.DonationSnapshot) (map[string]*industryPot, []string) {
	pots := make(map[string]*industryPot)
	var order []string

	get := func(key string) *industryPot {
		pot, ok := pots[key]
		if !ok {
			pot = &industryPot{key: key}
			pots[key] = pot
			order = append(order, key)
		}
		return pot
	}

	for _, donor := range donations.TopDonors {
		key := a.cat.CategorizeDonor(donor.Name, donor.Industry)
		pot := get(key)
		pot.total += donor.Amount
		pot.donors = append(pot.donors, donor.Name)
		pot.donations = append(pot.donations, donor)
	}

	for _, contrib := range donations.TopIndustries {
		key := a.cat.CategorizeDonor("", contrib.Industry)
		pot := get(key)
		pot.total += contrib.Amount
	}

	return pots, order
}

// analyzeIndustry walks the full vote history for one industry pot.
func (a *Analyzer) analyzeIndustry(pot *industryPot, votes []civic.VoteSnapshot) (signal.IndustryInfluence, []signal.TimingFlag) {
	var (
		related   int
		favorable int
		examples  []signal.VoteExample
		flags     []signal.TimingFlag
	)

	for _, ys := range votes {
		for _, vote := range ys.Votes {
			cats := a.cat.CategorizeBill(vote.Title, vote.BillSummary)
			if !a.cat.IndustryRelated(pot.key, cats) {
				continue
			}
			related++
			if len(examples) < a.cfg.MaxExamples {
				examples = append(examples, signal.VoteExample{
					Bill:  vote.BillNumber,
					Title: vote.Title,
					Vote:  string(vote.Vote),
					Date:  vote.Date,
				})
			}
			if !Favorable(pot.key, cats, vote.Vote) {
				continue
			}
			favorable++
			if flag, ok := a.timingFlag(pot, vote); ok {
				flags = append(flags, flag)
			}
		}
	}

	alignment := 0.0
	if related > 0 {
		alignment = float64(favorable) / float64(related) * 100
	}

	return signal.IndustryInfluence{
		Industry:          a.cat.IndustryName(pot.key),
		IndustryKey:       pot.key,
		TotalDonations:    pot.total,
		VotingAlignment:   core.Round1(alignment),
		SuspiciousVotes:   len(flags),
		RelatedVotesCount: related,
		Examples:          examples,
	}, flags
}

// timingFlag applies the placeholder suspicious-timing policy: any
// single contribution above the threshold tags the favorable vote with
// the fixed assumed gap. Real per-donation timestamps would replace
// this with actual date correlation.
func (a *Analyzer) timingFlag(pot *industryPot, vote civic.Vote) (signal.TimingFlag, bool) {
	large := false
	for _, d := range pot.donations {
		if d.Amount > a.cfg.LargeDonationThreshold {
			large = true
			break
		}
	}
	if !large {
		return signal.TimingFlag{}, false
	}

	donor := a.cat.IndustryName(pot.key) + " interests"
	if len(pot.donors) > 0 {
		donor = pot.donors[0]
	}

	return signal.TimingFlag{
		Type:            signal.FlagSuspiciousTiming,
		DonationDate:    vote.Date.AddDays(-a.cfg.AssumedTimingGapDays),
		DonationAmount:  pot.total,
		Donor:           donor,
		VoteDate:        vote.Date,
		VoteDescription: vote.Title,
		DaysBetween:     a.cfg.AssumedTimingGapDays,
	}, true
}

// donationConcentration is the share of total raised that sits in the
// ten biggest industry pots ("other" included).
func (a *Analyzer) donationConcentration(pots map[string]*industryPot, order []string, totalRaised float64) float64 {
	if totalRaised == 0 {
		return 0
	}

	totals := make([]float64, 0, len(order))
	for _, key := range order {
		totals = append(totals, pots[key].total)
	}
	sort.SliceStable(totals, func(i, j int) bool { return totals[i] > totals[j] })
	if len(totals) > a.cfg.MaxIndustries {
		totals = totals[:a.cfg.MaxIndustries]
	}

	top := 0.0
	for _, t := range totals {
		top += t
	}
	return core.Pct(top, totalRaised)
}

// meanAlignment averages the reported industries' alignment
// percentages, 0 when none were reported.
func meanAlignment(industries []signal.IndustryInfluence) float64 {
	if len(industries) == 0 {
		return 0
	}
	vals := make([]float64, len(industries))
	for i, ind := range industries {
		vals[i] = ind.VotingAlignment
	}
	mean, err := stats.Mean(vals)
	if err != nil {
		return 0
	}
	return mean
}

// suspiciousTimingRate normalizes the timing-flag count against the
// first year snapshot's vote count, mirroring how the score's timing
// component has always been calibrated.
func (a *Analyzer) suspiciousTimingRate(flags []signal.TimingFlag, votes []civic.VoteSnapshot) float64 {
	if len(votes) == 0 || len(votes[0].Votes) == 0 {
		return 0
	}
	return float64(len(flags)) / float64(len(votes[0].Votes)) * 100
}
