// Package launcher spawns and kills worker subprocesses on behalf of the
// session registry. The registry only sees the WorkerLauncher interface;
// everything about how a worker binary is named, started, and found again
// to be killed lives here.
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"sync"

	"github.com/ChuLiYu/machine-coordinator/pkg/types"
)

var log = slog.Default()

// WorkerLauncher spawns a worker subprocess for a session and can later
// kill every subprocess it finds matching that session id.
type WorkerLauncher interface {
	// Launch starts a worker for sessionID, passing it checkinAddress so
	// it knows where to report its own listening address.
	Launch(ctx context.Context, sessionID types.SessionID, checkinAddress string) error

	// Kill terminates any worker subprocess associated with sessionID.
	// It is best-effort: callers treat failures as non-fatal.
	Kill(ctx context.Context, sessionID types.SessionID) error
}

// ProcessLauncher launches workers as local OS subprocesses. Command is a
// template like
// []string{"./worker", "--session-id={{id}}", "--checkin={{checkin}}"};
// {{id}} and {{checkin}} are substituted per launch. It remembers the most
// recently launched, still-running process for each session id, and Kill
// terminates that process only; it does not search the process table for
// other processes matching the id.
type ProcessLauncher struct {
	command []string

	mu        sync.Mutex
	processes map[types.SessionID]*exec.Cmd
}

// NewProcessLauncher builds a ProcessLauncher from a command template.
func NewProcessLauncher(command []string) *ProcessLauncher {
	return &ProcessLauncher{
		command:   command,
		processes: make(map[types.SessionID]*exec.Cmd),
	}
}

func (l *ProcessLauncher) Launch(ctx context.Context, sessionID types.SessionID, checkinAddress string) error {
	if len(l.command) == 0 {
		return fmt.Errorf("no worker command configured")
	}

	args := make([]string, len(l.command))
	for i, arg := range l.command {
		arg = strings.ReplaceAll(arg, "{{id}}", string(sessionID))
		arg = strings.ReplaceAll(arg, "{{checkin}}", checkinAddress)
		args[i] = arg
	}

	cmd := exec.CommandContext(context.Background(), args[0], args[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start worker process for session %q: %w", sessionID, err)
	}

	l.mu.Lock()
	l.processes[sessionID] = cmd
	l.mu.Unlock()

	go func() {
		if err := cmd.Wait(); err != nil {
			log.Debug("worker process exited", "sessionID", sessionID, "error", err)
		}
		l.mu.Lock()
		if l.processes[sessionID] == cmd {
			delete(l.processes, sessionID)
		}
		l.mu.Unlock()
	}()

	log.Info("worker launched", "sessionID", sessionID, "pid", cmd.Process.Pid)
	return nil
}

func (l *ProcessLauncher) Kill(ctx context.Context, sessionID types.SessionID) error {
	l.mu.Lock()
	cmd, ok := l.processes[sessionID]
	l.mu.Unlock()
	if !ok {
		return nil
	}
	if cmd.Process == nil {
		return nil
	}
	if err := cmd.Process.Kill(); err != nil {
		return fmt.Errorf("kill worker process for session %q: %w", sessionID, err)
	}
	log.Info("worker killed", "sessionID", sessionID, "pid", cmd.Process.Pid)
	return nil
}
