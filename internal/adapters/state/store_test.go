package state_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/carth/internal/adapters/state"
	"go.trai.ch/carth/internal/core/domain"
)

func TestStore_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Carthage", "carth_state.json")
	s := state.NewStore()

	missing, err := s.Get(path, "bootstrap")
	require.NoError(t, err)
	require.Nil(t, missing)

	info := domain.RunInfo{
		Action:      "bootstrap",
		Fingerprint: "deadbeefdeadbeef",
		Timestamp:   time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, s.Put(path, info))

	got, err := s.Get(path, "bootstrap")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, info, *got)
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carth_state.json")

	info := domain.RunInfo{Action: "update", Fingerprint: "cafe", Timestamp: time.Now().UTC()}
	require.NoError(t, state.NewStore().Put(path, info))

	got, err := state.NewStore().Get(path, "update")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "cafe", got.Fingerprint)
}

func TestStore_IndependentActions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carth_state.json")
	s := state.NewStore()

	require.NoError(t, s.Put(path, domain.RunInfo{Action: "bootstrap", Fingerprint: "aaa"}))
	require.NoError(t, s.Put(path, domain.RunInfo{Action: "build", Fingerprint: "bbb"}))

	boot, err := s.Get(path, "bootstrap")
	require.NoError(t, err)
	require.Equal(t, "aaa", boot.Fingerprint)

	build, err := s.Get(path, "build")
	require.NoError(t, err)
	require.Equal(t, "bbb", build.Fingerprint)
}

func TestStore_IndependentProjects(t *testing.T) {
	projectA := filepath.Join(t.TempDir(), "Carthage", "carth_state.json")
	projectB := filepath.Join(t.TempDir(), "Carthage", "carth_state.json")
	s := state.NewStore()

	require.NoError(t, s.Put(projectA, domain.RunInfo{Action: "bootstrap", Fingerprint: "aaa"}))

	other, err := s.Get(projectB, "bootstrap")
	require.NoError(t, err)
	require.Nil(t, other)
}

func TestStore_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carth_state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := state.NewStore().Get(path, "bootstrap")
	require.Error(t, err)
}
