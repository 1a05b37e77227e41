package domain_test

import (
	"reflect"
	"testing"

	"go.trai.ch/carth/internal/core/domain"
)

func TestInvocation_Argv_Minimal(t *testing.T) {
	inv := &domain.Invocation{
		Action:          domain.ActionBootstrap,
		Platform:        domain.PlatformAll,
		DerivedDataPath: "/proj/build/DerivedData/carthage",
	}

	got := inv.Argv("/usr/local/bin/carthage")
	want := []string{
		"/usr/local/bin/carthage",
		"bootstrap",
		"--platform", "all",
		"--derived-data", "/proj/build/DerivedData/carthage",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("argv mismatch:\n got  %v\n want %v", got, want)
	}
}

func TestInvocation_Argv_Full(t *testing.T) {
	inv := &domain.Invocation{
		Action:          domain.ActionUpdate,
		ExtraArgs:       []string{"--no-use-binaries", "--verbose"},
		Platform:        domain.PlatformIOS,
		UseBuildCache:   true,
		DerivedDataPath: "/proj/build/DerivedData/carthage",
	}

	got := inv.Argv("/usr/local/bin/carthage")
	want := []string{
		"/usr/local/bin/carthage",
		"update",
		"--no-use-binaries", "--verbose",
		"--platform", "iOS",
		"--cache-builds",
		"--derived-data", "/proj/build/DerivedData/carthage",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("argv mismatch:\n got  %v\n want %v", got, want)
	}
}

func TestInvocation_Argv_ExtraArgsPrecedePlatform(t *testing.T) {
	inv := &domain.Invocation{
		Action:          domain.ActionBuild,
		ExtraArgs:       []string{"--platform", "tvOS"},
		Platform:        domain.PlatformMac,
		DerivedDataPath: "/dd",
	}

	// Extra args are passed through verbatim, before the managed flags.
	got := inv.Argv("carthage")
	want := []string{
		"carthage", "build",
		"--platform", "tvOS",
		"--platform", "Mac",
		"--derived-data", "/dd",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("argv mismatch:\n got  %v\n want %v", got, want)
	}
}
