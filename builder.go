package goGrant

import "github.com/MrEthical07/goGrant/automaton"

// Builder assembles an Engine. Configure, then call Build once; the
// resulting Engine is immutable and safe for concurrent use.
type Builder struct {
	config Config
	engine AutomatonEngine
	sink   AuditSink
	built  bool
}

// New creates a Builder with DefaultConfig.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the builder's configuration with a copy of cfg.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithAutomatonEngine replaces the default pattern engine. The engine must
// honor the AutomatonEngine contract; it is exercised at Build time when the
// catalog is compiled.
func (b *Builder) WithAutomatonEngine(engine AutomatonEngine) *Builder {
	b.engine = engine
	return b
}

// WithAuditSink sets the destination for audit events. Ignored unless
// Config.Audit.Enabled is true.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.sink = sink
	return b
}

// Build compiles the privilege catalog and returns the Engine.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, ErrBuilderReused
	}
	if err := validateConfig(b.config); err != nil {
		return nil, err
	}

	engine := b.engine
	if engine == nil {
		engine = defaultAutomatonEngine{}
	}

	cat, err := buildCatalog(engine)
	if err != nil {
		return nil, err
	}

	metrics := NewMetrics(b.config.Metrics)
	res := &resolver{
		catalog:    cat,
		classifier: actionClassifier{actionMatcher: cat.all.matcher},
		engine:     engine,
	}

	e := &Engine{
		config:  b.config,
		catalog: cat,
		metrics: metrics,
		audit:   newAuditDispatcher(b.config.Audit, b.sink),
	}
	e.cache = newPrivilegeCache(b.config.Cache.MaxEntries, res.resolve, metrics)

	b.built = true
	return e, nil
}

// defaultAutomatonEngine adapts the automaton subpackage to the
// AutomatonEngine seam.
type defaultAutomatonEngine struct{}

func (defaultAutomatonEngine) Compile(patterns []string) (Matcher, error) {
	return automaton.Compile(patterns...)
}

func (defaultAutomatonEngine) Union(matchers []Matcher) Matcher {
	converted := make([]automaton.Matcher, len(matchers))
	for i, m := range matchers {
		converted[i] = m
	}
	return automaton.Union(converted...)
}

func (defaultAutomatonEngine) Difference(include, exclude Matcher) Matcher {
	return automaton.Difference(include, exclude)
}
