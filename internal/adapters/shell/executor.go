// Package shell provides the shell executor adapter.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/carth/internal/core/domain"
	"go.trai.ch/carth/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs the command and blocks until it exits. Both output streams are
// consumed line by line: stdout lines go to the logger at info level, stderr
// lines at error level, and each line is mirrored to the corresponding writer.
func (e *Executor) Execute(ctx context.Context, c *domain.Command, stdout, stderr io.Writer) error {
	if len(c.Args) == 0 {
		return nil
	}

	//nolint:gosec // argv is assembled from validated inputs
	cmd := exec.CommandContext(ctx, c.Args[0], c.Args[1:]...)
	cmd.Dir = c.Dir
	cmd.Env = resolveEnvironment(os.Environ(), c.Env)

	outPipe, err := cmd.StdoutPipe()
	if err != nil {
		return zerr.Wrap(err, "failed to open stdout pipe")
	}
	errPipe, err := cmd.StderrPipe()
	if err != nil {
		return zerr.Wrap(err, "failed to open stderr pipe")
	}

	if err := cmd.Start(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to start command"), "command", c.Args[0])
	}

	// Both pipes must be drained before Wait; Wait closes them.
	g := new(errgroup.Group)
	g.Go(func() error {
		return e.forward(outPipe, stdout, false)
	})
	g.Go(func() error {
		return e.forward(errPipe, stderr, true)
	})
	copyErr := g.Wait()

	if err := cmd.Wait(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
	}

	return copyErr
}

// forward streams r to the logger and the sink, one line at a time.
// Lines of any length are carried through.
func (e *Executor) forward(r io.Reader, sink io.Writer, isStderr bool) error {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if chunk := strings.TrimSuffix(line, "\n"); chunk != "" || err == nil {
			if isStderr {
				e.logger.Error(zerr.New(chunk))
			} else {
				e.logger.Info(chunk)
			}
			if sink != nil {
				_, _ = fmt.Fprintln(sink, chunk)
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// resolveEnvironment applies the override map on top of the host environment.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	result := make([]string, 0, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		k, _, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, overridden := overrides[k]; overridden {
			continue
		}
		result = append(result, entry)
	}
	for k, v := range overrides {
		result = append(result, k+"="+v)
	}
	return result
}
