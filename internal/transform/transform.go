package transform

import (
	"time"

	"go.uber.org/zap"

	"github.com/sudoguy/kibitzr/internal/infrastructure/monitoring"
	"github.com/sudoguy/kibitzr/internal/logging"
	"github.com/sudoguy/kibitzr/internal/shared/id"
	"github.com/sudoguy/kibitzr/internal/transform/engine"
)

// Result is the outcome of a transform. A failed result never carries a value.
type Result struct {
	Success bool
	Value   *string
}

// Succeeded returns a successful result holding value.
func Succeeded(value string) Result {
	return Result{Success: true, Value: &value}
}

// Failed returns the soft-failure result.
func Failed() Result {
	return Result{}
}

// Unpack returns the value and whether the transform succeeded.
func (r Result) Unpack() (string, bool) {
	if !r.Success || r.Value == nil {
		return "", false
	}
	return *r.Value, true
}

// Transformer renders templates against lazy views of fetched content.
type Transformer struct {
	engine  engine.Engine
	logger  *logging.Logger
	metrics *monitoring.Metrics
	viewOps []ViewOption
}

// Option configures a Transformer.
type Option func(*Transformer)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *logging.Logger) Option {
	return func(t *Transformer) { t.logger = logger }
}

// WithMetrics records renders and view parses on metrics.
func WithMetrics(metrics *monitoring.Metrics) Option {
	return func(t *Transformer) { t.metrics = metrics }
}

// WithViewOptions applies opts to every view and filter the transformer builds.
func WithViewOptions(opts ...ViewOption) Option {
	return func(t *Transformer) { t.viewOps = append(t.viewOps, opts...) }
}

// New creates a transformer rendering with eng.
func New(eng engine.Engine, opts ...Option) *Transformer {
	t := &Transformer{engine: eng}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = logging.NewNop()
	}
	return t
}

// Engine returns the engine name.
func (t *Transformer) Engine() string {
	return t.engine.Name()
}

// Transform renders code against content. Template syntax and runtime
// errors yield a failed Result and a nil error; view and extraction faults
// are returned as the error.
func (t *Transformer) Transform(code, content string, conf any) (Result, error) {
	start := time.Now()
	xfID := id.NewTransformID()
	log := t.logger.With(
		zap.String("transform_id", xfID.String()),
		zap.String("engine", t.engine.Name()),
	)

	vars, filters := t.context(content, conf, log)

	out, err := t.render(code, vars, filters)
	switch {
	case err == nil:
		t.metrics.RecordRender(t.engine.Name(), monitoring.OutcomeSuccess, time.Since(start))
		return Succeeded(out), nil

	case IsFault(err):
		t.metrics.RecordRender(t.engine.Name(), monitoring.OutcomeFault, time.Since(start))
		return Result{}, err

	case engine.IsTemplateError(err):
		t.metrics.RecordRender(t.engine.Name(), monitoring.OutcomeFailure, time.Since(start))
		log.Warn("template transform failed", zap.Error(err))
		return Failed(), nil

	default:
		t.metrics.RecordRender(t.engine.Name(), monitoring.OutcomeFault, time.Since(start))
		return Result{}, err
	}
}

// context builds the render context. Views are created unparsed.
func (t *Transformer) context(content string, conf any, log *logging.Logger) (engine.Vars, engine.Filters) {
	hook := func(view string, size int) {
		t.metrics.RecordParse(view)
		log.Debug("parsing content", zap.String("view", view), zap.Int("size", size))
	}
	opts := append([]ViewOption{WithParseHook(hook)}, t.viewOps...)

	structured := NewStructuredView(content, opts...)
	dom := NewDOMView(content, opts...)
	tree := NewTreeView(content, opts...)

	vars := engine.Vars{
		"conf":    conf,
		"content": content,
		"lines":   SplitLines(content),
		"json":    structured.Lookup,
		"css":     dom.CSS,
		"xpath":   tree.XPath,
	}
	return vars, newFilterSet(NewTextExtractor(t.viewOps...)).Filters()
}

func (t *Transformer) render(code string, vars engine.Vars, filters engine.Filters) (string, error) {
	tmpl, err := t.engine.Compile(code, engine.SymbolNames(vars, filters))
	if err != nil {
		return "", err
	}
	return tmpl.Render(vars, filters)
}
