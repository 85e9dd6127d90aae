package civic

import (
	"encoding/json"
	"testing"
)

func TestVoteValueNormalize(t *testing.T) {
	cases := []struct {
		in   VoteValue
		want VoteValue
	}{
		{"Yes", VoteYes},
		{"NO", VoteNo},
		{" not voting ", VoteNotVoting},
		{"not-voting", VoteNotVoting},
		{"Present", VotePresent},
		{"abstain", "abstain"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := tc.in.Normalize(); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestVoteValueCastAndMissed(t *testing.T) {
	cast := []VoteValue{"yes", "no", "Yes", "NO"}
	for _, v := range cast {
		if !v.Cast() {
			t.Errorf("%q should count as cast", v)
		}
	}

	missed := []VoteValue{"not-voting", "not voting", "present", ""}
	for _, v := range missed {
		if !v.Missed() {
			t.Errorf("%q should count as missed", v)
		}
	}
}

func TestSnapshotsTotalVotes(t *testing.T) {
	s := Snapshots{Votes: []VoteSnapshot{
		{Year: 2023, Votes: make([]Vote, 5)},
		{Year: 2024, Votes: make([]Vote, 3)},
	}}
	if got := s.TotalVotes(); got != 8 {
		t.Errorf("TotalVotes = %d, want 8", got)
	}
}

func TestVoteSnapshotJSONContract(t *testing.T) {
	raw := `{
		"officialId": "sen-001",
		"year": 2023,
		"votes": [{"id": "v1", "billNumber": "H.R. 1", "title": "Clean Air Standards Act", "date": "2023-05-02", "vote": "no"}]
	}`

	var ys VoteSnapshot
	if err := json.Unmarshal([]byte(raw), &ys); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if ys.OfficialID != "sen-001" || ys.Year != 2023 {
		t.Errorf("header fields: %+v", ys)
	}
	if len(ys.Votes) != 1 || ys.Votes[0].Vote != VoteNo {
		t.Errorf("votes: %+v", ys.Votes)
	}
	if ys.Votes[0].Date != "2023-05-02" {
		t.Errorf("date: %q", ys.Votes[0].Date)
	}
}
