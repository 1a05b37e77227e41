package xcode_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/carth/internal/adapters/xcode"
	"go.trai.ch/carth/internal/core/domain"
)

const excludedArchs = "arm64 arm64e armv7 armv7s armv6 armv8"

func TestWorkaroundConfig_OnlyForMajor12(t *testing.T) {
	layout := domain.NewLayout(t.TempDir(), "")

	for _, major := range []int{0, 10, 11, 13, 14, 26} {
		require.Nil(t, xcode.WorkaroundConfig(layout, major, false), "major %d", major)
		require.Nil(t, xcode.WorkaroundConfig(layout, major, true), "major %d", major)
	}

	require.NotNil(t, xcode.WorkaroundConfig(layout, 12, false))
}

func TestWorkaroundConfig_Entries(t *testing.T) {
	layout := domain.NewLayout(t.TempDir(), "")

	cfg := xcode.WorkaroundConfig(layout, 12, false)
	require.NotNil(t, cfg)
	require.Equal(t, 3, cfg.Len())
	require.Equal(t, layout.WorkaroundConfigPath(), cfg.Path)

	v, ok := cfg.Get("EXCLUDED_ARCHS__EFFECTIVE_PLATFORM_SUFFIX_iphonesimulator__NATIVE_ARCH_64_BIT_x86_64__XCODE_1200")
	require.True(t, ok)
	require.Equal(t, excludedArchs, v)

	v, ok = cfg.Get("EXCLUDED_ARCHS__EFFECTIVE_PLATFORM_SUFFIX_appletvsimulator__NATIVE_ARCH_64_BIT_x86_64__XCODE_1200")
	require.True(t, ok)
	require.Equal(t, excludedArchs, v)

	v, ok = cfg.Get("EXCLUDED_ARCHS")
	require.True(t, ok)
	require.Equal(t, "$(inherited) $(EXCLUDED_ARCHS__EFFECTIVE_PLATFORM_SUFFIX_$(PLATFORM_NAME)__NATIVE_ARCH_64_BIT_$(NATIVE_ARCH_64_BIT)__XCODE_$(XCODE_VERSION_MAJOR))", v)
}

func TestWorkaroundConfig_SwiftDebugEntries(t *testing.T) {
	layout := domain.NewLayout(t.TempDir(), "")

	cfg := xcode.WorkaroundConfig(layout, 12, true)
	require.NotNil(t, cfg)
	require.Equal(t, 5, cfg.Len())

	v, ok := cfg.Get("SWIFT_SERIALIZE_DEBUGGING_OPTIONS")
	require.True(t, ok)
	require.Equal(t, "NO", v)

	v, ok = cfg.Get("OTHER_SWIFT_FLAGS")
	require.True(t, ok)
	require.Equal(t, "$(inherited) -Xfrontend -no-serialize-debugging-options", v)
}

func TestWriteConfig_CreatesParentDirs(t *testing.T) {
	root := t.TempDir()
	layout := domain.NewLayout(root, "")

	cfg := xcode.WorkaroundConfig(layout, 12, false)
	require.NoError(t, xcode.WriteConfig(cfg))

	data, err := os.ReadFile(filepath.Join(root, "Carthage", "gradle-xc12-carthage.xcconfig"))
	require.NoError(t, err)

	want := "EXCLUDED_ARCHS__EFFECTIVE_PLATFORM_SUFFIX_iphonesimulator__NATIVE_ARCH_64_BIT_x86_64__XCODE_1200 = " + excludedArchs + "\n" +
		"EXCLUDED_ARCHS__EFFECTIVE_PLATFORM_SUFFIX_appletvsimulator__NATIVE_ARCH_64_BIT_x86_64__XCODE_1200 = " + excludedArchs + "\n" +
		"EXCLUDED_ARCHS = $(inherited) $(EXCLUDED_ARCHS__EFFECTIVE_PLATFORM_SUFFIX_$(PLATFORM_NAME)__NATIVE_ARCH_64_BIT_$(NATIVE_ARCH_64_BIT)__XCODE_$(XCODE_VERSION_MAJOR))\n"
	require.Equal(t, want, string(data))
}

func TestWriteConfig_OverwriteIsIdempotent(t *testing.T) {
	layout := domain.NewLayout(t.TempDir(), "")
	cfg := xcode.WorkaroundConfig(layout, 12, true)

	require.NoError(t, xcode.WriteConfig(cfg))
	first, err := os.ReadFile(cfg.Path)
	require.NoError(t, err)

	require.NoError(t, xcode.WriteConfig(cfg))
	second, err := os.ReadFile(cfg.Path)
	require.NoError(t, err)

	require.Equal(t, first, second)
}
