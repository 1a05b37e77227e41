package ports

import "go.trai.ch/carth/internal/core/domain"

// Hasher fingerprints the inputs of a carthage run.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Fingerprint computes a stable hash over the assembled argument vector
	// and the manifest file contents.
	Fingerprint(layout domain.Layout, argv []string) (string, error)
}
