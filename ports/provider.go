// Package ports defines the seams between the engine and its
// collaborators. The engine never fetches data itself; a
// SnapshotProvider hands it fully materialized snapshots.
package ports

import (
	"context"

	"civitrack/domain/civic"
	"civitrack/domain/core"
)

// SnapshotProvider materializes per-official snapshot bundles. The
// production implementation lives with the orchestration collaborator;
// adapters/snapshotdir provides a JSON-directory implementation for
// local runs and tests.
type SnapshotProvider interface {
	// ListOfficials enumerates the officials the provider can serve.
	ListOfficials(ctx context.Context) ([]core.OfficialID, error)
	// Load returns the snapshot bundle for one official. Missing
	// sections come back nil; only malformed data is an error.
	Load(ctx context.Context, id core.OfficialID) (civic.Snapshots, error)
}
