// Package snapshotdir implements ports.SnapshotProvider over a
// directory of per-official JSON files. This is the harness seam for
// local runs and tests; production callers materialize snapshots from
// their own stores.
//
// Layout: <root>/<officialID>/{official.json,donations.json,
// votes_<year>.json,promises.json,stocks.json,profile.json}. Every
// file is optional; a missing file is a missing section, not an error.
package snapshotdir

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"civitrack/domain/civic"
	"civitrack/domain/core"
)

// Provider serves snapshot bundles from a root directory.
type Provider struct {
	root string
}

// New creates a provider rooted at dir.
func New(dir string) *Provider {
	return &Provider{root: dir}
}

// officialMeta is the optional official.json sidecar.
type officialMeta struct {
	Name string `json:"name"`
}

// ListOfficials enumerates subdirectories as official IDs, sorted.
func (p *Provider) ListOfficials(ctx context.Context) ([]core.OfficialID, error) {
	entries, err := os.ReadDir(p.root)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot root %s: %w", p.root, err)
	}

	var ids []core.OfficialID
	for _, e := range entries {
		if e.IsDir() {
			ids = append(ids, core.OfficialID(e.Name()))
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// Load assembles the snapshot bundle for one official.
func (p *Provider) Load(ctx context.Context, id core.OfficialID) (civic.Snapshots, error) {
	dir := filepath.Join(p.root, id.String())
	if _, err := os.Stat(dir); err != nil {
		return civic.Snapshots{}, core.NewNotFoundError("official snapshot directory", id.String())
	}

	s := civic.Snapshots{OfficialID: id, OfficialName: id.String()}

	var meta officialMeta
	if ok, err := decodeIfPresent(filepath.Join(dir, "official.json"), &meta); err != nil {
		return civic.Snapshots{}, err
	} else if ok && meta.Name != "" {
		s.OfficialName = meta.Name
	}

	var donations civic.DonationSnapshot
	if ok, err := decodeIfPresent(filepath.Join(dir, "donations.json"), &donations); err != nil {
		return civic.Snapshots{}, err
	} else if ok {
		s.Donations = &donations
	}

	var promises civic.PromiseSnapshot
	if ok, err := decodeIfPresent(filepath.Join(dir, "promises.json"), &promises); err != nil {
		return civic.Snapshots{}, err
	} else if ok {
		s.Promises = &promises
	}

	var stocks civic.StockSnapshot
	if ok, err := decodeIfPresent(filepath.Join(dir, "stocks.json"), &stocks); err != nil {
		return civic.Snapshots{}, err
	} else if ok {
		s.Stocks = &stocks
	}

	var profile civic.ProfileSnapshot
	if ok, err := decodeIfPresent(filepath.Join(dir, "profile.json"), &profile); err != nil {
		return civic.Snapshots{}, err
	} else if ok {
		s.Profile = &profile
	}

	votes, err := p.loadVoteYears(dir)
	if err != nil {
		return civic.Snapshots{}, err
	}
	s.Votes = votes

	return s, nil
}

// loadVoteYears reads every votes_<year>.json in filename order so
// multi-year histories stay chronologically stable.
func (p *Provider) loadVoteYears(dir string) ([]civic.VoteSnapshot, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot dir %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() && strings.HasPrefix(name, "votes_") && strings.HasSuffix(name, ".json") {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var years []civic.VoteSnapshot
	for _, name := range names {
		var ys civic.VoteSnapshot
		if _, err := decodeIfPresent(filepath.Join(dir, name), &ys); err != nil {
			return nil, err
		}
		years = append(years, ys)
	}
	return years, nil
}

// decodeIfPresent decodes path into v. Returns (false, nil) when the
// file does not exist; malformed content is a snapshot error.
func decodeIfPresent(path string, v any) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(v); err != nil {
		return false, fmt.Errorf("%w: %s: %v", core.ErrMalformedSnapshot, filepath.Base(path), err)
	}
	return true, nil
}
