package directive

import (
	"hdlcfg/internal/diag"
	"hdlcfg/internal/suppress"
	"hdlcfg/internal/trace"
	"hdlcfg/internal/wildcard"
)

// Engine holds every directive of one compilation.
type Engine struct {
	reporter diag.Reporter
	tracer   trace.Tracer

	// shared by all stores; every registration advances it
	clock *wildcard.Clock

	modules *moduleResolver
	files   *fileResolver
	lint    *suppress.Index
}

// New creates an empty engine. Directive errors go to reporter; a nil
// reporter drops them. A nil tracer disables tracing.
func New(reporter diag.Reporter, tracer trace.Tracer) *Engine {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	if tracer == nil {
		tracer = trace.Nop
	}
	e := &Engine{
		reporter: reporter,
		tracer:   tracer,
		clock:    wildcard.NewClock(),
	}
	e.init()
	return e
}

func (e *Engine) init() {
	e.modules = wildcard.NewResolver[ModuleConfig, *ModuleConfig](e.clock, newModuleConfig)
	e.files = wildcard.NewResolver[FileConfig, *FileConfig](e.clock, newFileConfig)
	e.lint = suppress.NewIndex(e.clock, e.tracer)
}

// Reset drops every directive so the engine can serve another compilation.
func (e *Engine) Reset() {
	e.mustInit()
	e.clock.Tick()
	e.init()
	trace.Point(e.tracer, trace.ScopePass, "directive:reset", "")
}

// Epoch returns the current store epoch.
func (e *Engine) Epoch() uint64 {
	e.mustInit()
	return e.clock.Now()
}

// Lint exposes the suppression index.
func (e *Engine) Lint() *suppress.Index {
	e.mustInit()
	return e.lint
}

func (e *Engine) mustInit() {
	if e == nil || e.clock == nil {
		panic("directive: engine used before New")
	}
}
