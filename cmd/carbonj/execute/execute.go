package execute

import (
	"bytes"
	"context"
	"time"

	"github.com/darkyzhou/seele/carbonj/cmd/carbonj/entities"
	"github.com/darkyzhou/seele/carbonj/cmd/carbonj/language"
	"github.com/sirupsen/logrus"
)

// Execute runs the command through the platform shell and waits for it to exit.
// Every outcome, including a failure to start, is described by the returned result.
// There is no time limit: ctx is only expected to be cancelled when carbonj shuts down,
// in which case the whole process group is killed.
func Execute(ctx context.Context, command *language.Command) *entities.ExecutionResult {
	var stdout, stderr bytes.Buffer

	cmd := shellCommand(command.Line)
	cmd.Dir = command.Dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	processFinishedCtx, processFinishedCtxCancel := context.WithCancel(context.Background())
	defer processFinishedCtxCancel()

	wallTimeBegin := time.Now()
	if err := cmd.Start(); err != nil {
		logrus.WithError(err).WithField("command", command.Line).Debug("Error spawning the process")
		return makeExecutionResult(&ExecutionResultProps{
			spawnErr: err,
			wallTime: time.Since(wallTimeBegin),
		})
	}

	go func() {
		select {
		case <-processFinishedCtx.Done():
			return
		case <-ctx.Done():
			logrus.WithField("pid", cmd.Process.Pid).Warn("Sending SIGKILL to the running process due to carbonj shutting down")
			if err := killProcessGroup(cmd.Process); err != nil {
				logrus.WithError(err).Warn("Error killing the process group")
			}
		}
	}()

	waitErr := cmd.Wait()
	wallTime := time.Since(wallTimeBegin)

	processFinishedCtxCancel()

	return makeExecutionResult(&ExecutionResultProps{
		state:    cmd.ProcessState,
		waitErr:  waitErr,
		stdout:   stdout.String(),
		stderr:   stderr.String(),
		wallTime: wallTime,
	})
}
