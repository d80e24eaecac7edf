// ============================================================================
// clipdash - Clipboard Dashboard
// ============================================================================
//
// Package:     clip
// Description: Runs catalog actions against the clipboard and buffer list
// Author:      clipdash contributors
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package clip

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"

	cderror "github.com/msto63/clipdash/foundation/core/error"
	"github.com/msto63/clipdash/pkg/core/cache"
	"github.com/msto63/clipdash/pkg/core/config"
	"github.com/msto63/clipdash/pkg/core/logging"
)

// Args carries the user input of one action run
type Args struct {
	Arg1      string
	Arg2      string
	Selection Selection
}

// Status is the outcome of one action run
type Status struct {
	Message string
	Err     error
	// Selection is the selection after the run
	Selection Selection
}

// String renders the status bar line
func (s Status) String() string {
	if s.Err != nil {
		return "ERROR: " + s.Message
	}
	return s.Message
}

// OK reports whether the run succeeded
func (s Status) OK() bool {
	return s.Err == nil
}

type handler func(ctx context.Context, args Args) (string, Selection, error)

// Service owns the clipboard port, the buffer list and the tools that
// actions use. All methods are called from one goroutine.
type Service struct {
	port     Port
	buffers  *Buffers
	cfg      *config.Config
	logger   *logging.Logger
	launcher *Launcher
	sep      string
	handlers map[string]handler
	// regexes holds compiled patterns of recent regex actions
	regexes *cache.Cache[*regexp.Regexp]
}

// NewService creates a service whose buffer list starts with the
// configured initial clips
func NewService(port Port, cfg *config.Config, logger *logging.Logger) *Service {
	s := &Service{
		port:     port,
		buffers:  NewBuffers(cfg.Buffers.InitialClips),
		cfg:      cfg,
		logger:   logger,
		launcher: NewLauncher(cfg.Tools, logger),
		sep:      cfg.LineSep(),
		regexes:  cache.New[*regexp.Regexp](cache.DefaultConfig()),
	}
	s.handlers = make(map[string]handler)
	s.registerBufferActions()
	s.registerStrActions()
	s.registerListActions()
	s.registerToolActions()
	return s
}

// Port returns the clipboard the service works on
func (s *Service) Port() Port { return s.port }

// Buffers returns the buffer list
func (s *Service) Buffers() *Buffers { return s.buffers }

// Launcher returns the external tool launcher
func (s *Service) Launcher() *Launcher { return s.launcher }

// LineSep returns the line separator in use
func (s *Service) LineSep() string { return s.sep }

// Summaries returns the display labels of all buffers
func (s *Service) Summaries() []string {
	return s.buffers.Summaries(s.cfg.Buffers.CropLength, s.sep)
}

// Run executes the action named key ("list.sort", or "list sort") and
// returns its status. Every run is logged under a fresh action ID.
func (s *Service) Run(ctx context.Context, key string, args Args) Status {
	action, ok := Lookup(key)
	if !ok {
		err := cderror.Newf("Unknown action %q", key).
			WithCode(cderror.CodeUnknownAction).
			WithOperation("service.run")
		s.logger.LogError(err)
		return Status{Message: err.Error(), Err: err, Selection: args.Selection}
	}

	log := s.logger.WithActionID(uuid.NewString())
	timer := log.StartTimer(action.Key()).WithField("action", action.Key())

	args.Selection = args.Selection.Clamp(s.buffers.Len())
	msg, sel, err := s.handlers[action.Key()](ctx, args)
	if err != nil {
		log.LogError(err)
		timer.StopWithError(err)
		return Status{Message: err.Error(), Err: err, Selection: args.Selection}
	}

	timer.Stop()
	log.Info(msg, "action", action.Key())
	return Status{Message: msg, Selection: sel.Clamp(s.buffers.Len())}
}

// StoreOnFocus stores the clipboard when the dashboard gains focus and
// the store on focus toggle is set
func (s *Service) StoreOnFocus(ctx context.Context, sel Selection) (Status, bool) {
	if !s.cfg.Behaviour.StoreOnFocus {
		return Status{Selection: sel}, false
	}
	return s.Run(ctx, "buffer.store", Args{Selection: sel}), true
}

// RetrieveOnFocus retrieves the next selected buffer when the dashboard
// gains focus and the retrieve on focus toggle is set. Nothing happens
// without a selection.
func (s *Service) RetrieveOnFocus(ctx context.Context, sel Selection) (Status, bool) {
	if !s.cfg.Behaviour.RetrieveOnFocus || sel.Empty() {
		return Status{Selection: sel}, false
	}
	return s.Run(ctx, "buffer.retrieve", Args{Selection: sel}), true
}

// SetBehaviour changes the focus and substitution toggles at runtime
func (s *Service) SetBehaviour(b config.BehaviourConfig) {
	s.cfg.Behaviour = b
}

// Behaviour returns the current toggles
func (s *Service) Behaviour() config.BehaviourConfig {
	return s.cfg.Behaviour
}

// Close removes the launcher's temp files
func (s *Service) Close() error {
	return s.launcher.Cleanup()
}

// compile returns the compiled expr, reusing earlier compilations
func (s *Service) compile(expr string) (*regexp.Regexp, error) {
	return s.regexes.GetOrSet(expr, func() (*regexp.Regexp, error) {
		return regexp.Compile(expr)
	})
}

func (s *Service) register(key string, h handler) {
	if _, ok := Lookup(key); !ok {
		panic(fmt.Sprintf("clip: handler for unknown action %q", key))
	}
	s.handlers[key] = h
}
