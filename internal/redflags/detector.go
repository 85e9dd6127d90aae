// Package redflags scans analyzer outputs and raw snapshots against
// fixed thresholds and emits severity-tagged findings.
package redflags

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"civitrack/domain/civic"
	"civitrack/domain/core"
	"civitrack/domain/signal"
)

// Thresholds holds every detector cutoff.
type Thresholds struct {
	BrokenPromiseRate      float64 // share of broken promises that trips the detector
	BrokenPromiseMinVotes  int     // contradicting votes needed to cite a promise
	BrokenPromiseHighVotes int     // contradicting votes that escalate to high
	MaxBrokenPromiseFlags  int

	MaxTimingFlags     int
	TimingCriticalDays int
	TimingHighDays     int

	MissedVotesRate   float64 // missed share that trips the detector
	CongressAvgMissed float64 // chamber baseline for the multiplier

	ExcessiveTradeCount   int
	MaxStockConflictFlags int

	PACRate            float64 // PAC share that trips the detector
	PACHighRate        float64
	PACCriticalRate    float64
	DonorConcentration float64 // top-10 donor share that trips the detector
	ConcentrationHigh  float64
	MinDonorsForShare  int
}

// DefaultThresholds returns the standard detector cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		BrokenPromiseRate:      0.5,
		BrokenPromiseMinVotes:  5,
		BrokenPromiseHighVotes: 10,
		MaxBrokenPromiseFlags:  5,

		MaxTimingFlags:     10,
		TimingCriticalDays: 7,
		TimingHighDays:     14,

		MissedVotesRate:   0.20,
		CongressAvgMissed: 0.08,

		ExcessiveTradeCount:   50,
		MaxStockConflictFlags: 10,

		PACRate:            0.60,
		PACHighRate:        0.70,
		PACCriticalRate:    0.80,
		DonorConcentration: 0.70,
		ConcentrationHigh:  0.80,
		MinDonorsForShare:  10,
	}
}

// Input bundles everything the detectors consume. Any field may be
// nil; the matching detector simply produces nothing.
type Input struct {
	Promises  *signal.PromiseReport
	Influence *signal.InfluenceAnalysis
	Votes     []civic.VoteSnapshot
	Donations *civic.DonationSnapshot
	Stocks    *civic.StockSnapshot
	Profile   *civic.ProfileSnapshot
}

// Detector runs the six independent detectors.
type Detector struct {
	cfg Thresholds
	ids core.IDSource
}

// NewDetector creates a detector. ids controls flag-ID generation so
// runs can be made reproducible.
func NewDetector(cfg Thresholds, ids core.IDSource) *Detector {
	return &Detector{cfg: cfg, ids: ids}
}

// Detect runs every detector and assembles the report. Flags are
// ordered severity-first, stable by detection order within a tier.
func (d *Detector) Detect(officialID core.OfficialID, in Input) signal.RedFlagsReport {
	var flags []signal.RedFlag

	if in.Promises != nil {
		flags = append(flags, d.brokenPromises(in.Promises)...)
	}
	if in.Influence != nil {
		flags = append(flags, d.suspiciousTiming(in.Influence)...)
	}
	if len(in.Votes) > 0 {
		flags = append(flags, d.attendance(in.Votes)...)
	}
	flags = append(flags, d.transparency(in.Profile)...)
	if in.Stocks != nil {
		flags = append(flags, d.stockConflicts(in.Stocks)...)
	}
	if in.Donations != nil {
		flags = append(flags, d.donorConcentration(in.Donations)...)
	}

	var counts signal.SeverityCounts
	for _, f := range flags {
		counts.Add(f.Severity)
	}

	sort.SliceStable(flags, func(i, j int) bool {
		return flags[i].Severity.Rank() < flags[j].Severity.Rank()
	})

	if flags == nil {
		flags = []signal.RedFlag{}
	}
	return signal.RedFlagsReport{
		OfficialID:    officialID,
		TotalRedFlags: len(flags),
		BySeverity:    counts,
		Flags:         flags,
	}
}

// brokenPromises flags the worst broken promises once the broken share
// crosses the threshold.
func (d *Detector) brokenPromises(report *signal.PromiseReport) []signal.RedFlag {
	total := report.Summary.TotalPromises
	if total == 0 {
		return nil
	}
	if float64(report.Summary.Broken)/float64(total) < d.cfg.BrokenPromiseRate {
		return nil
	}

	var flags []signal.RedFlag
	for _, p := range report.Promises {
		if len(flags) >= d.cfg.MaxBrokenPromiseFlags {
			break
		}
		if p.Status != signal.PromiseBroken || p.TimesVotedAgainst < d.cfg.BrokenPromiseMinVotes {
			continue
		}

		severity := signal.SeverityMedium
		if p.TimesVotedAgainst >= d.cfg.BrokenPromiseHighVotes {
			severity = signal.SeverityHigh
		}

		flag := signal.RedFlag{
			ID:            d.ids.FlagID(),
			Type:          signal.FlagBrokenPromise,
			Severity:      severity,
			Title:         fmt.Sprintf("Voted against campaign promise %d times", p.TimesVotedAgainst),
			Description:   fmt.Sprintf("Promised to %s but voted against it %d times", p.PromiseText, p.TimesVotedAgainst),
			EvidenceCount: p.TimesVotedAgainst,
			Category:      p.Category,
		}
		if len(p.Evidence) > 0 {
			flag.FirstOccurrence = p.Evidence[0].Date
			flag.LastOccurrence = p.Evidence[len(p.Evidence)-1].Date
		}
		flags = append(flags, flag)
	}
	return flags
}

// suspiciousTiming promotes the influence analyzer's timing flags.
func (d *Detector) suspiciousTiming(analysis *signal.InfluenceAnalysis) []signal.RedFlag {
	var flags []signal.RedFlag
	for i, tf := range analysis.RedFlags {
		if i >= d.cfg.MaxTimingFlags {
			break
		}
		if tf.Type != signal.FlagSuspiciousTiming {
			continue
		}

		severity := signal.SeverityMedium
		switch {
		case tf.DaysBetween <= d.cfg.TimingCriticalDays:
			severity = signal.SeverityCritical
		case tf.DaysBetween <= d.cfg.TimingHighDays:
			severity = signal.SeverityHigh
		}

		flags = append(flags, signal.RedFlag{
			ID:              d.ids.FlagID(),
			Type:            signal.FlagSuspiciousTiming,
			Severity:        severity,
			Title:           fmt.Sprintf("Donation followed by favorable vote within %d days", tf.DaysBetween),
			Description:     fmt.Sprintf("$%s donation from %s, then voted favorably on related bill", formatAmount(tf.DonationAmount), tf.Donor),
			DonationDate:    tf.DonationDate,
			VoteDate:        tf.VoteDate,
			DaysBetween:     tf.DaysBetween,
			DonationAmount:  tf.DonationAmount,
			Donor:           tf.Donor,
			VoteDescription: tf.VoteDescription,
		})
	}
	return flags
}

// attendance flags a missed-vote rate above threshold, graded by the
// multiple of the chamber average.
func (d *Detector) attendance(votes []civic.VoteSnapshot) []signal.RedFlag {
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
		return nil
	}

	rate := float64(missed) / float64(total)
	if rate < d.cfg.MissedVotesRate {
		return nil
	}

	multiplier := rate / d.cfg.CongressAvgMissed
	severity := signal.SeverityMedium
	switch {
	case multiplier >= 3:
		severity = signal.SeverityCritical
	case multiplier >= 2:
		severity = signal.SeverityHigh
	}

	return []signal.RedFlag{{
		ID:                 d.ids.FlagID(),
		Type:               signal.FlagMissedVotes,
		Severity:           severity,
		Title:              fmt.Sprintf("Missed %.1f%% of votes", rate*100),
		Description:        fmt.Sprintf("Missed %d of %d votes (%.1fx the congressional average)", missed, total, multiplier),
		MissedVotes:        missed,
		TotalVotes:         total,
		MissedRatePct:      core.Round1(rate * 100),
		CongressAveragePct: core.Round1(d.cfg.CongressAvgMissed * 100),
	}}
}

// transparency flags missing contact surfaces. A nil profile counts as
// having none.
func (d *Detector) transparency(profile *civic.ProfileSnapshot) []signal.RedFlag {
	var contact civic.ContactInfo
	if profile != nil {
		contact = profile.ContactInfo
	}

	var flags []signal.RedFlag
	if contact.Email == "" && contact.Phone == "" {
		flags = append(flags, signal.RedFlag{
			ID:          d.ids.FlagID(),
			Type:        signal.FlagLowAccessibility,
			Severity:    signal.SeverityMedium,
			Title:       "Limited contact information available",
			Description: "No public email or phone number listed, making it difficult for constituents to reach their representative",
		})
	}
	if contact.Website == "" {
		flags = append(flags, signal.RedFlag{
			ID:          d.ids.FlagID(),
			Type:        signal.FlagLowTransparency,
			Severity:    signal.SeverityLow,
			Title:       "No public website",
			Description: "No official website listed for constituent information",
		})
	}
	return flags
}

// stockConflicts promotes collaborator conflict alerts and flags
// excessive trade volume.
func (d *Detector) stockConflicts(stocks *civic.StockSnapshot) []signal.RedFlag {
	var flags []signal.RedFlag
	for i, alert := range stocks.ConflictAlerts {
		if i >= d.cfg.MaxStockConflictFlags {
			break
		}
		flags = append(flags, signal.RedFlag{
			ID:          d.ids.FlagID(),
			Type:        signal.FlagStockConflict,
			Severity:    signal.SeverityHigh,
			Title:       "Stock trade in conflicted industry",
			Description: alert.Description,
			TradeDate:   alert.TradeDate,
			Asset:       alert.Asset,
			VoteDate:    alert.VoteDate,
			Bill:        alert.Bill,
		})
	}

	if len(stocks.Trades) > d.cfg.ExcessiveTradeCount {
		flags = append(flags, signal.RedFlag{
			ID:          d.ids.FlagID(),
			Type:        signal.FlagExcessiveTrading,
			Severity:    signal.SeverityMedium,
			Title:       fmt.Sprintf("High volume of stock trades (%d)", len(stocks.Trades)),
			Description: fmt.Sprintf("Made %d stock trades, raising questions about potential conflicts of interest", len(stocks.Trades)),
			TradeCount:  len(stocks.Trades),
		})
	}
	return flags
}

// donorConcentration flags PAC dependency and top-donor concentration.
func (d *Detector) donorConcentration(donations *civic.DonationSnapshot) []signal.RedFlag {
	if donations.TotalRaised == 0 {
		return nil
	}

	var flags []signal.RedFlag

	pacRate := donations.PACContributions / donations.TotalRaised
	if pacRate >= d.cfg.PACRate {
		severity := signal.SeverityMedium
		switch {
		case pacRate >= d.cfg.PACCriticalRate:
			severity = signal.SeverityCritical
		case pacRate >= d.cfg.PACHighRate:
			severity = signal.SeverityHigh
		}
		flags = append(flags, signal.RedFlag{
			ID:          d.ids.FlagID(),
			Type:        signal.FlagPACDependency,
			Severity:    severity,
			Title:       fmt.Sprintf("%.1f%% of funding from PACs", pacRate*100),
			Description: fmt.Sprintf("Received %.1f%% of campaign funding from PACs, suggesting heavy corporate influence", pacRate*100),
			PACAmount:   donations.PACContributions,
			TotalRaised: donations.TotalRaised,
			PACPct:      core.Round1(pacRate * 100),
		})
	}

	if len(donations.TopDonors) >= d.cfg.MinDonorsForShare {
		top10 := 0.0
		for _, donor := range donations.TopDonors[:d.cfg.MinDonorsForShare] {
			top10 += donor.Amount
		}
		concentration := top10 / donations.TotalRaised
		if concentration >= d.cfg.DonorConcentration {
			severity := signal.SeverityMedium
			if concentration >= d.cfg.ConcentrationHigh {
				severity = signal.SeverityHigh
			}
			flags = append(flags, signal.RedFlag{
				ID:               d.ids.FlagID(),
				Type:             signal.FlagDonorConcentration,
				Severity:         severity,
				Title:            fmt.Sprintf("Top 10 donors account for %.1f%% of funding", concentration*100),
				Description:      "Campaign funding highly concentrated among small group of donors",
				ConcentrationPct: core.Round1(concentration * 100),
				Top10Amount:      top10,
				TotalRaised:      donations.TotalRaised,
			})
		}
	}
	return flags
}

// formatAmount renders a dollar amount with thousands separators and
// no cents, matching the report copy style.
func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', 0, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
