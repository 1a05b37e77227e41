package fs_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/carth/internal/adapters/fs"
	"go.trai.ch/carth/internal/core/domain"
)

func writeCartfile(t *testing.T, layout domain.Layout, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(layout.CartfilePath(), []byte(content), 0o644))
}

func TestFingerprint_Deterministic(t *testing.T) {
	layout := domain.NewLayout(t.TempDir(), "")
	writeCartfile(t, layout, `github "Alamofire/Alamofire" ~> 5.0`)

	hasher := fs.NewHasher()
	argv := []string{"/usr/local/bin/carthage", "bootstrap", "--platform", "iOS"}

	a, err := hasher.Fingerprint(layout, argv)
	require.NoError(t, err)
	b, err := hasher.Fingerprint(layout, argv)
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Len(t, a, 16)
}

func TestFingerprint_ChangesWithManifest(t *testing.T) {
	layout := domain.NewLayout(t.TempDir(), "")
	hasher := fs.NewHasher()
	argv := []string{"carthage", "bootstrap", "--platform", "all"}

	writeCartfile(t, layout, `github "Alamofire/Alamofire" ~> 5.0`)
	before, err := hasher.Fingerprint(layout, argv)
	require.NoError(t, err)

	writeCartfile(t, layout, `github "Alamofire/Alamofire" ~> 5.5`)
	after, err := hasher.Fingerprint(layout, argv)
	require.NoError(t, err)
	require.NotEqual(t, before, after)
}

func TestFingerprint_ChangesWithArgv(t *testing.T) {
	layout := domain.NewLayout(t.TempDir(), "")
	writeCartfile(t, layout, `github "ReactiveX/RxSwift" ~> 6.0`)

	hasher := fs.NewHasher()

	a, err := hasher.Fingerprint(layout, []string{"carthage", "bootstrap", "--platform", "iOS"})
	require.NoError(t, err)
	b, err := hasher.Fingerprint(layout, []string{"carthage", "bootstrap", "--platform", "tvOS"})
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestFingerprint_ResolvedManifestPresence(t *testing.T) {
	layout := domain.NewLayout(t.TempDir(), "")
	writeCartfile(t, layout, `github "ReactiveX/RxSwift" ~> 6.0`)

	hasher := fs.NewHasher()
	argv := []string{"carthage", "bootstrap", "--platform", "all"}

	without, err := hasher.Fingerprint(layout, argv)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(layout.ResolvedCartfilePath(), []byte(`github "ReactiveX/RxSwift" "6.5.0"`), 0o644))
	with, err := hasher.Fingerprint(layout, argv)
	require.NoError(t, err)
	require.NotEqual(t, without, with)
}
