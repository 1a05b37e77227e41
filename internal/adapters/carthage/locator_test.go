package carthage_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/carth/internal/adapters/carthage"
	"go.trai.ch/carth/internal/core/domain"
	"go.trai.ch/carth/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLocator(t *testing.T) (*carthage.Locator, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	logger := mocks.NewMockLogger(ctrl)
	return carthage.NewLocator(logger), logger
}

func TestLocate_SearchPathWins(t *testing.T) {
	// The strict logger also verifies that a search-path hit logs nothing.
	l, _ := newLocator(t)

	l.SetLookPath(func(file string) (string, error) {
		require.Equal(t, "carthage", file)
		return "/opt/homebrew/bin/carthage", nil
	})
	// The fallback must not even be checked when the search path resolves.
	l.SetStat(func(string) (fs.FileInfo, error) {
		t.Fatal("fallback stat must not be called when lookPath succeeds")
		return nil, nil
	})

	path, err := l.Locate()
	require.NoError(t, err)
	require.Equal(t, "/opt/homebrew/bin/carthage", path)
}

func TestLocate_FallbackUsed(t *testing.T) {
	l, logger := newLocator(t)
	// The fallback decision is surfaced to the user.
	logger.EXPECT().Warn(gomock.Any()).Times(1)

	// A real file so the stat double can return a genuine FileInfo.
	tmp := filepath.Join(t.TempDir(), "carthage")
	require.NoError(t, os.WriteFile(tmp, []byte("#!/bin/sh\n"), 0o755))

	l.SetLookPath(func(string) (string, error) {
		return "", errors.New("not found in PATH")
	})
	l.SetStat(func(name string) (fs.FileInfo, error) {
		require.Equal(t, carthage.FallbackPath, name)
		return os.Stat(tmp)
	})

	path, err := l.Locate()
	require.NoError(t, err)
	require.Equal(t, carthage.FallbackPath, path)
}

func TestLocate_BothFail(t *testing.T) {
	l, _ := newLocator(t)

	l.SetLookPath(func(string) (string, error) {
		return "", errors.New("not found in PATH")
	})
	l.SetStat(func(string) (fs.FileInfo, error) {
		return nil, os.ErrNotExist
	})

	_, err := l.Locate()
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrToolNotFound)
}
