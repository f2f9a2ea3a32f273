package execute

import (
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/darkyzhou/seele/carbonj/cmd/carbonj/entities"
	"github.com/samber/lo"
)

const (
	STATUS_NORMAL           = "NORMAL"
	STATUS_RUNTIME_ERROR    = "RUNTIME_ERROR"
	STATUS_SIGNAL_TERMINATE = "SIGNAL_TERMINATE"
	STATUS_SPAWN_FAILURE    = "SPAWN_FAILURE"
	STATUS_UNKNOWN          = "UNKNOWN"
)

type ExecutionResultProps struct {
	state    *os.ProcessState
	spawnErr error
	waitErr  error
	stdout   string
	stderr   string
	wallTime time.Duration
}

func makeExecutionResult(props *ExecutionResultProps) *entities.ExecutionResult {
	var (
		exitStatus = STATUS_UNKNOWN
		code       = -1
		signal     = ""
		message    *string
	)

	if props.spawnErr != nil {
		exitStatus = STATUS_SPAWN_FAILURE
		message = lo.ToPtr(props.spawnErr.Error())
	}

	// A failed Wait may still leave a usable state, so the error is recorded separately
	if props.waitErr != nil {
		message = lo.ToPtr(props.waitErr.Error())
	}

	if props.state != nil {
		if status, ok := props.state.Sys().(syscall.WaitStatus); ok {
			switch {
			case status.Exited():
				code = status.ExitStatus()
				exitStatus = lo.Ternary(code == 0, STATUS_NORMAL, STATUS_RUNTIME_ERROR)
			case status.Signaled():
				sig := status.Signal()
				code = int(sig) + 128
				signal = signalName(sig)
				exitStatus = STATUS_SIGNAL_TERMINATE
			}
		} else {
			code = props.state.ExitCode()
			exitStatus = lo.Ternary(props.state.Success(), STATUS_NORMAL, STATUS_RUNTIME_ERROR)
		}
	}

	return &entities.ExecutionResult{
		Status:     exitStatus,
		ExitCode:   code,
		Signal:     signal,
		DurationMs: props.wallTime.Milliseconds(),
		Stdout:     strings.TrimSpace(props.stdout),
		Stderr:     strings.TrimSpace(props.stderr),
		Error:      message,
	}
}
