package xcode

import (
	"context"
	"io/fs"
)

// SetVersionCommand overrides the xcodebuild invocation for tests.
func (i *Inspector) SetVersionCommand(fn func(ctx context.Context) ([]byte, error)) {
	i.version = fn
}

// SetStat overrides the install-location probe for tests.
func (s *Selector) SetStat(fn func(name string) (fs.FileInfo, error)) {
	s.stat = fn
}
