// Package civic defines the input snapshot contracts the engine
// consumes. Snapshots are materialized by external collaborators
// (scrapers, stores, API layer) and handed to the engine fully in
// memory; the engine never mutates them.
package civic

import (
	"strings"

	"civitrack/domain/core"
)

// VoteValue is the recorded position on a single roll call.
type VoteValue string

const (
	VoteYes       VoteValue = "yes"
	VoteNo        VoteValue = "no"
	VoteNotVoting VoteValue = "not-voting"
	VotePresent   VoteValue = "present"
)

// Normalize lower-cases a raw vote string and folds the "not voting"
// spelling used by some upstream sources into VoteNotVoting. Unknown
// strings pass through unchanged so callers can reject them.
func (v VoteValue) Normalize() VoteValue {
	s := strings.ToLower(strings.TrimSpace(string(v)))
	if s == "not voting" {
		return VoteNotVoting
	}
	return VoteValue(s)
}

// Cast reports whether the vote counts as a cast vote for attendance
// purposes. Empty values count as missed.
func (v VoteValue) Cast() bool {
	switch v.Normalize() {
	case VoteYes, VoteNo:
		return true
	}
	return false
}

// Missed reports whether the vote counts as a missed vote.
func (v VoteValue) Missed() bool { return !v.Cast() }

// Vote is a single roll-call vote record.
type Vote struct {
	ID          core.VoteID    `json:"id"`
	BillNumber  string         `json:"billNumber"`
	Title       string         `json:"title"`
	Date        core.CivicDate `json:"date"`
	Vote        VoteValue      `json:"vote"`
	BillSummary string         `json:"billSummary,omitempty"`
	Categories  []string       `json:"categories,omitempty"`
}

// VoteSnapshot is the voting record for one official for one year.
type VoteSnapshot struct {
	OfficialID        core.OfficialID `json:"officialId"`
	Year              int             `json:"year"`
	Votes             []Vote          `json:"votes"`
	ParticipationRate float64         `json:"participationRate,omitempty"`
}

// DonorType distinguishes contribution sources.
type DonorType string

const (
	DonorPAC        DonorType = "PAC"
	DonorIndividual DonorType = "Individual"
	DonorParty      DonorType = "Party"
	DonorSelf       DonorType = "Self"
)

// Donor is one entry in the top-donor list.
type Donor struct {
	Name     string    `json:"name"`
	Amount   float64   `json:"amount"`
	Type     DonorType `json:"type"`
	Industry string    `json:"industry,omitempty"`
}

// IndustryContribution is an aggregate industry total as reported by
// the finance collaborator.
type IndustryContribution struct {
	Industry string  `json:"industry"`
	Amount   float64 `json:"amount"`
}

// DonationSnapshot is the campaign-finance picture for one official.
type DonationSnapshot struct {
	TotalRaised             float64                `json:"totalRaised"`
	IndividualContributions float64                `json:"individualContributions"`
	PACContributions        float64                `json:"pacContributions"`
	SelfFunding             float64                `json:"selfFunding,omitempty"`
	TopDonors               []Donor                `json:"topDonors,omitempty"`
	TopIndustries           []IndustryContribution `json:"topIndustries,omitempty"`
}

// Promise is a single campaign statement.
type Promise struct {
	ID       core.PromiseID `json:"id"`
	Text     string         `json:"text"`
	Category string         `json:"category"`
	Source   string         `json:"source"`
}

// PromiseSnapshot is the promise collection for one official.
type PromiseSnapshot struct {
	Items []Promise `json:"items"`
}

// StockTrade is a single reported trade.
type StockTrade struct {
	ID              string         `json:"id"`
	Date            core.CivicDate `json:"date"`
	Ticker          string         `json:"ticker,omitempty"`
	AssetName       string         `json:"assetName"`
	TransactionType string         `json:"transactionType"`
	Amount          string         `json:"amount"`
}

// ConflictAlert is a collaborator-supplied trade/vote conflict finding.
type ConflictAlert struct {
	Description string         `json:"description"`
	TradeDate   core.CivicDate `json:"tradeDate"`
	Asset       string         `json:"asset"`
	VoteDate    core.CivicDate `json:"voteDate"`
	Bill        string         `json:"bill"`
}

// StockSnapshot is the trading picture for one official.
type StockSnapshot struct {
	Trades         []StockTrade    `json:"trades"`
	ConflictAlerts []ConflictAlert `json:"conflictAlerts,omitempty"`
}

// ContactInfo holds the public-profile contact fields used by the
// transparency detectors.
type ContactInfo struct {
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`
}

// ProfileSnapshot is the public-profile slice the engine consumes.
type ProfileSnapshot struct {
	ContactInfo ContactInfo `json:"contactInfo"`
}

// Snapshots bundles everything the caller materialized for one
// official. Any field may be nil/empty; the engine substitutes
// documented neutral defaults rather than failing.
type Snapshots struct {
	OfficialID   core.OfficialID
	OfficialName string
	Donations    *DonationSnapshot
	Votes        []VoteSnapshot
	Promises     *PromiseSnapshot
	Stocks       *StockSnapshot
	Profile      *ProfileSnapshot
}

// TotalVotes counts roll calls across all year snapshots.
func (s Snapshots) TotalVotes() int {
	n := 0
	for _, ys := range s.Votes {
		n += len(ys.Votes)
	}
	return n
}
