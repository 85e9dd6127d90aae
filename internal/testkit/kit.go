// Package testkit provides deterministic snapshot fixtures shared by
// the engine's test packages.
package testkit

import (
	"civitrack/domain/civic"
	"civitrack/domain/core"
)

// Vote builds a roll-call record.
func Vote(id, bill, title string, value civic.VoteValue, date string) civic.Vote {
	return civic.Vote{
		ID:         core.VoteID(id),
		BillNumber: bill,
		Title:      title,
		Date:       core.CivicDate(date),
		Vote:       value,
	}
}

// VoteYear builds a one-year vote snapshot.
func VoteYear(officialID string, year int, votes ...civic.Vote) civic.VoteSnapshot {
	return civic.VoteSnapshot{
		OfficialID: core.OfficialID(officialID),
		Year:       year,
		Votes:      votes,
	}
}

// Promise builds a campaign promise.
func Promise(id, text, category string) civic.Promise {
	return civic.Promise{
		ID:       core.PromiseID(id),
		Text:     text,
		Category: category,
		Source:   "https://example.org/platform",
	}
}

// Bundle returns a fully populated snapshot bundle for a fictional
// official with pharma-heavy funding, a mixed voting record, and every
// section present. Stable across calls.
func Bundle() civic.Snapshots {
	return civic.Snapshots{
		OfficialID:   "st-01",
		OfficialName: "Jordan Sample",
		Donations: &civic.DonationSnapshot{
			TotalRaised:             1_000_000,
			IndividualContributions: 550_000,
			PACContributions:        450_000,
			TopDonors: []civic.Donor{
				{Name: "Pfizer PAC", Amount: 45_000, Type: civic.DonorPAC},
				{Name: "Exxon Employees Fund", Amount: 30_000, Type: civic.DonorPAC},
				{Name: "Google LLC", Amount: 12_000, Type: civic.DonorPAC},
				{Name: "Jane Neighbor", Amount: 2_500, Type: civic.DonorIndividual},
			},
			TopIndustries: []civic.IndustryContribution{
				{Industry: "Pharmaceuticals/Health Products", Amount: 80_000},
				{Industry: "Oil & Gas", Amount: 55_000},
			},
		},
		Votes: []civic.VoteSnapshot{
			VoteYear("st-01", 2023,
				Vote("v1", "H.R. 101", "Prescription Drug Price Negotiation Act", civic.VoteNo, "2023-03-10"),
				Vote("v2", "H.R. 202", "Clean Air Standards Act", civic.VoteNo, "2023-05-02"),
				Vote("v3", "H.R. 303", "Pipeline Expansion Act", civic.VoteYes, "2023-06-15"),
				Vote("v4", "H.R. 404", "Small Business Tax Relief Act", civic.VoteYes, "2023-08-01"),
				Vote("v5", "H.R. 505", "National Park Renaming Act", civic.VoteNotVoting, "2023-09-20"),
			),
			VoteYear("st-01", 2024,
				Vote("v6", "H.R. 606", "Medicare Expansion Act", civic.VoteNo, "2024-02-14"),
				Vote("v7", "H.R. 707", "Highway Modernization Act", civic.VoteYes, "2024-04-09"),
				Vote("v8", "H.R. 808", "Teacher Pay Act", civic.VotePresent, "2024-07-22"),
			),
		},
		Promises: &civic.PromiseSnapshot{
			Items: []civic.Promise{
				Promise("p1", "I will fight for affordable healthcare and protect medicare for every senior", "healthcare"),
				Promise("p2", "I will support increased funding for our schools and teachers", "education"),
				Promise("p3", "We must stop wasteful federal spending", "economy"),
			},
		},
		Stocks: &civic.StockSnapshot{
			Trades: []civic.StockTrade{
				{ID: "t1", Date: "2023-06-01", Ticker: "XOM", AssetName: "Exxon Mobil", TransactionType: "purchase", Amount: "$15,001 - $50,000"},
			},
			ConflictAlerts: []civic.ConflictAlert{
				{Description: "Bought energy stock two weeks before pipeline vote", TradeDate: "2023-06-01", Asset: "Exxon Mobil", VoteDate: "2023-06-15", Bill: "H.R. 303"},
			},
		},
		Profile: &civic.ProfileSnapshot{
			ContactInfo: civic.ContactInfo{
				Email:   "office@example.gov",
				Phone:   "202-555-0101",
				Website: "https://example.gov",
			},
		},
	}
}

// SparseBundle returns a bundle with only votes present, for
// degradation-path tests.
func SparseBundle() civic.Snapshots {
	return civic.Snapshots{
		OfficialID: "st-02",
		Votes: []civic.VoteSnapshot{
			VoteYear("st-02", 2024,
				Vote("v1", "H.R. 1", "Budget Resolution", civic.VoteYes, "2024-01-15"),
				Vote("v2", "H.R. 2", "Budget Amendment", civic.VoteNo, "2024-01-16"),
			),
		},
	}
}
