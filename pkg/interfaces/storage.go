package interfaces

import "github.com/goliatone/go-garden/pkg/storage"

// StorageProvider preserves a short import path for callers wiring artifact
// storage. Implementations should satisfy pkg/storage.Provider directly.
type StorageProvider = storage.Provider

// WriteRequest aliases the storage write descriptor.
type WriteRequest = storage.WriteRequest

// ArtifactInfo aliases the storage listing entry.
type ArtifactInfo = storage.ArtifactInfo
