package snapshotdir

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civitrack/domain/core"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func officialDir(t *testing.T, root, id string) string {
	t.Helper()
	dir := filepath.Join(root, id)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	return dir
}

func TestLoadFullBundle(t *testing.T) {
	root := t.TempDir()
	dir := officialDir(t, root, "sen-001")

	writeFile(t, dir, "official.json", `{"name": "Jordan Sample"}`)
	writeFile(t, dir, "donations.json", `{
		"totalRaised": 500000,
		"individualContributions": 300000,
		"pacContributions": 200000,
		"topDonors": [{"name": "Pfizer PAC", "amount": 45000, "type": "PAC"}]
	}`)
	writeFile(t, dir, "votes_2023.json", `{
		"officialId": "sen-001",
		"year": 2023,
		"votes": [{"id": "v1", "billNumber": "H.R. 1", "title": "Medicare Expansion Act", "date": "2023-03-10", "vote": "no"}]
	}`)
	writeFile(t, dir, "votes_2024.json", `{
		"officialId": "sen-001",
		"year": 2024,
		"votes": [{"id": "v2", "billNumber": "H.R. 2", "title": "Highway Act", "date": "2024-01-05", "vote": "yes"}]
	}`)
	writeFile(t, dir, "promises.json", `{"items": [{"id": "p1", "text": "I will protect medicare", "category": "healthcare", "source": "https://example.org"}]}`)
	writeFile(t, dir, "stocks.json", `{"trades": [{"id": "t1", "date": "2023-06-01", "assetName": "Exxon Mobil", "transactionType": "purchase", "amount": "$15,001 - $50,000"}]}`)
	writeFile(t, dir, "profile.json", `{"contactInfo": {"email": "office@example.gov", "website": "https://example.gov"}}`)

	p := New(root)
	s, err := p.Load(context.Background(), "sen-001")
	require.NoError(t, err)

	assert.Equal(t, core.OfficialID("sen-001"), s.OfficialID)
	assert.Equal(t, "Jordan Sample", s.OfficialName)

	require.NotNil(t, s.Donations)
	assert.Equal(t, 500_000.0, s.Donations.TotalRaised)
	require.Len(t, s.Donations.TopDonors, 1)
	assert.Equal(t, "Pfizer PAC", s.Donations.TopDonors[0].Name)

	require.Len(t, s.Votes, 2)
	assert.Equal(t, 2023, s.Votes[0].Year)
	assert.Equal(t, 2024, s.Votes[1].Year)
	assert.Equal(t, 2, s.TotalVotes())

	require.NotNil(t, s.Promises)
	assert.Len(t, s.Promises.Items, 1)
	require.NotNil(t, s.Stocks)
	assert.Len(t, s.Stocks.Trades, 1)
	require.NotNil(t, s.Profile)
	assert.Equal(t, "office@example.gov", s.Profile.ContactInfo.Email)
	assert.Empty(t, s.Profile.ContactInfo.Phone)
}

func TestLoadMissingFilesAreMissingSections(t *testing.T) {
	root := t.TempDir()
	dir := officialDir(t, root, "rep-002")
	writeFile(t, dir, "votes_2024.json", `{"officialId": "rep-002", "year": 2024, "votes": []}`)

	p := New(root)
	s, err := p.Load(context.Background(), "rep-002")
	require.NoError(t, err)

	assert.Nil(t, s.Donations)
	assert.Nil(t, s.Promises)
	assert.Nil(t, s.Stocks)
	assert.Nil(t, s.Profile)
	assert.Len(t, s.Votes, 1)

	// Without an official.json the ID doubles as the display name.
	assert.Equal(t, "rep-002", s.OfficialName)
}

func TestLoadUnknownOfficial(t *testing.T) {
	p := New(t.TempDir())

	_, err := p.Load(context.Background(), "nobody")
	require.Error(t, err)
	assert.True(t, core.IsNotFoundError(err))
}

func TestLoadMalformedJSON(t *testing.T) {
	root := t.TempDir()
	dir := officialDir(t, root, "sen-003")
	writeFile(t, dir, "donations.json", `{"totalRaised": not-a-number}`)

	p := New(root)
	_, err := p.Load(context.Background(), "sen-003")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrMalformedSnapshot)
	assert.Contains(t, err.Error(), "donations.json")
}

func TestListOfficialsSorted(t *testing.T) {
	root := t.TempDir()
	officialDir(t, root, "sen-b")
	officialDir(t, root, "sen-a")
	officialDir(t, root, "rep-z")
	writeFile(t, root, "README.txt", "not an official")

	p := New(root)
	ids, err := p.ListOfficials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []core.OfficialID{"rep-z", "sen-a", "sen-b"}, ids)
}

func TestListOfficialsMissingRoot(t *testing.T) {
	p := New(filepath.Join(t.TempDir(), "does-not-exist"))
	_, err := p.ListOfficials(context.Background())
	assert.Error(t, err)
}
