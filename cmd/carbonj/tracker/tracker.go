// Package tracker runs a file from the editor, times it and reports the
// estimated energy use and emissions.
//
// A tracking action moves through resolving, running, estimating and
// reported, or ends early as rejected. Every action, including a rejected
// one, delivers exactly one message to the Notifier.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/darkyzhou/seele/carbonj/cmd/carbonj/editor"
	"github.com/darkyzhou/seele/carbonj/cmd/carbonj/emission"
	"github.com/darkyzhou/seele/carbonj/cmd/carbonj/entities"
	"github.com/darkyzhou/seele/carbonj/cmd/carbonj/execute"
	"github.com/darkyzhou/seele/carbonj/cmd/carbonj/hostinfo"
	"github.com/darkyzhou/seele/carbonj/cmd/carbonj/language"
	"github.com/darkyzhou/seele/carbonj/cmd/carbonj/utils"
	"github.com/sirupsen/logrus"
)

const (
	STAGE_RESOLVING  = "resolving"
	STAGE_RUNNING    = "running"
	STAGE_ESTIMATING = "estimating"
	STAGE_REPORTED   = "reported"
	STAGE_REJECTED   = "rejected"
)

var ErrTrackingInProgress = errors.New("Tracking already in progress")

type ExecuteFunc func(ctx context.Context, command *language.Command) *entities.ExecutionResult

type Tracker struct {
	notifier      Notifier
	host          hostinfo.Provider
	execute       ExecuteFunc
	workspaceRoot string

	busy     atomic.Bool
	inFlight sync.WaitGroup
}

type Option func(*Tracker)

// WithExecute replaces the process runner.
func WithExecute(execute ExecuteFunc) Option {
	return func(t *Tracker) {
		t.execute = execute
	}
}

// WithWorkspaceRoot sets the directory relative document paths in inbound messages are resolved against.
func WithWorkspaceRoot(root string) Option {
	return func(t *Tracker) {
		t.workspaceRoot = root
	}
}

func New(notifier Notifier, host hostinfo.Provider, opts ...Option) *Tracker {
	t := &Tracker{
		notifier: notifier,
		host:     host,
		execute:  execute.Execute,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Track runs one tracking action to completion and returns the message it delivered.
// It is rejected with ErrTrackingInProgress if another action is still running.
func (t *Tracker) Track(ctx context.Context, editorContext editor.Context) *entities.Message {
	if !t.busy.CompareAndSwap(false, true) {
		return t.deliver(BuildError(ErrTrackingInProgress.Error()))
	}
	defer t.busy.Store(false)

	return t.deliver(t.track(ctx, editorContext))
}

// Dispatch handles one inbound message. A startTracking request runs in the
// background; use Wait to block until it has delivered its message.
func (t *Tracker) Dispatch(ctx context.Context, payload map[string]interface{}) {
	var inbound entities.InboundMessage
	if err := utils.DecodeAndValidate(payload, &inbound); err != nil {
		logrus.WithError(err).Debug("Invalid inbound message")
		t.deliver(BuildError(fmt.Sprintf("Invalid message: %s", err)))
		return
	}

	if inbound.Type != entities.MESSAGE_START_TRACKING {
		t.deliver(BuildError(fmt.Sprintf("Invalid message: unknown type %q", inbound.Type)))
		return
	}

	if !t.busy.CompareAndSwap(false, true) {
		t.deliver(BuildError(ErrTrackingInProgress.Error()))
		return
	}

	editorContext := &editor.Static{
		Document:      inbound.Document,
		WorkspaceRoot: t.workspaceRoot,
	}

	t.inFlight.Add(1)
	go func() {
		defer t.inFlight.Done()
		defer t.busy.Store(false)

		t.deliver(t.track(ctx, editorContext))
	}()
}

// Wait blocks until every action started by Dispatch has delivered its message.
func (t *Tracker) Wait() {
	t.inFlight.Wait()
}

func (t *Tracker) track(ctx context.Context, editorContext editor.Context) *entities.Message {
	runId := utils.NewRunId()
	logger := logrus.WithField("run_id", runId)

	document, err := editorContext.ActiveDocument()
	if err != nil {
		logger.WithError(err).WithField("stage", STAGE_REJECTED).Info("No document to track")
		return BuildError(err.Error())
	}

	logger = logger.WithFields(logrus.Fields{
		"file":     document.Path,
		"language": document.LanguageId,
	})
	logger.WithField("stage", STAGE_RESOLVING).Debug("Resolving the interpreter")

	command, err := language.Resolve(document.LanguageId, document.Path)
	if err != nil {
		logger.WithError(err).WithField("stage", STAGE_REJECTED).Info("Rejected the tracking request")
		return BuildError(err.Error())
	}

	host, err := t.host.Snapshot(ctx)
	if err != nil {
		logger.WithError(err).WithField("stage", STAGE_REJECTED).Warn("Error reading host information")
		return BuildError(fmt.Sprintf("Error: %s", err))
	}

	logger.WithFields(logrus.Fields{"stage": STAGE_RUNNING, "command": command.Line}).Debug("Running the file")
	result := t.execute(ctx, command)

	logger.WithFields(logrus.Fields{"stage": STAGE_ESTIMATING, "duration_ms": result.DurationMs, "status": result.Status}).Debug("Estimating emissions")
	estimate := emission.Estimate(result.DurationMs)

	logger.WithFields(logrus.Fields{"stage": STAGE_REPORTED, "emissions_g": estimate.EmissionsG}).Info("Tracking finished")
	return BuildReport(runId, document, host, result, estimate)
}

func (t *Tracker) deliver(message *entities.Message) *entities.Message {
	if err := t.notifier.Notify(message); err != nil {
		logrus.WithError(err).WithField("type", message.Type).Error("Error delivering the message")
	}
	return message
}
