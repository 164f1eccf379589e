package catalog

import (
	"context"

	"bookshelf/internal/platform/googlebooks"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=catalog

// Repository is the durable record store. Upsert has insert-or-overwrite
// semantics keyed by ExternalID: every mutable field is replaced and
// CreatedAt is preserved across updates.
type Repository interface {
	GetByExternalID(ctx context.Context, externalID string) (Record, error)
	Upsert(ctx context.Context, rec *Record) (Record, error)
}

// VolumeAPI is the slice of the remote catalog client the service uses.
type VolumeAPI interface {
	SearchVolumes(ctx context.Context, query string, maxResults, startIndex int) (*googlebooks.VolumesResponse, error)
	GetVolume(ctx context.Context, volumeID string) (*googlebooks.Volume, error)
}
