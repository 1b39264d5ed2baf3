package editor

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/digraph/core"
)

// Default paste offset applied by CopySelected on both axes.
const DefaultPasteOffset = 10.0

// Option configures a GraphStore at construction time.
type Option func(*storeConfig)

// storeConfig aggregates every knob of a GraphStore. Options are applied in order;
// later options override earlier ones.
type storeConfig struct {
	logger   *zap.Logger
	observer Observer

	ids      IDGenerator
	nodeType NodeTypePolicy
	edgeType EdgeTypePolicy

	pasteDX float64
	pasteDY float64

	allowParallel   bool
	selectPasted    bool
	stickySelection bool
}

func newStoreConfig(opts ...Option) storeConfig {
	cfg := storeConfig{
		logger:   zap.NewNop(),
		observer: nopObserver{},
		ids:      NewCounterIDGenerator("n"),
		pasteDX:  DefaultPasteOffset,
		pasteDY:  DefaultPasteOffset,
		edgeType: DefaultEdgeTypePolicy(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.nodeType == nil {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		cfg.nodeType = RandomNodeType(rng, DefaultSpecialProbability, core.SpecialType, core.EmptyType)
	}

	return cfg
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(c *storeConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver registers an Observer notified after every operation. A nil observer is ignored.
func WithObserver(o Observer) Option {
	return func(c *storeConfig) {
		if o != nil {
			c.observer = o
		}
	}
}

// WithIDGenerator replaces the default counter generator ("n1", "n2", ...).
func WithIDGenerator(g IDGenerator) Option {
	return func(c *storeConfig) {
		if g != nil {
			c.ids = g
		}
	}
}

// WithNodeTypePolicy replaces the default 25%-special node type policy.
func WithNodeTypePolicy(p NodeTypePolicy) Option {
	return func(c *storeConfig) { c.nodeType = p }
}

// WithSeed makes the default node type policy deterministic.
func WithSeed(seed int64) Option {
	return func(c *storeConfig) {
		rng := rand.New(rand.NewSource(seed))
		c.nodeType = RandomNodeType(rng, DefaultSpecialProbability, core.SpecialType, core.EmptyType)
	}
}

// WithEdgeTypePolicy replaces the default source-typed edge policy.
func WithEdgeTypePolicy(p EdgeTypePolicy) Option {
	return func(c *storeConfig) {
		if p != nil {
			c.edgeType = p
		}
	}
}

// WithPasteOffset sets the offset CopySelected adds to the copied node's position.
func WithPasteOffset(dx, dy float64) Option {
	return func(c *storeConfig) {
		c.pasteDX, c.pasteDY = dx, dy
	}
}

// WithParallelEdges lets CreateEdge and SwapEdgeEndpoints produce a second edge with an
// existing (source,target) pair. Key lookups then act on the first matching edge.
func WithParallelEdges() Option {
	return func(c *storeConfig) { c.allowParallel = true }
}

// WithSelectPasted makes PasteSelected select the pasted node.
func WithSelectPasted() Option {
	return func(c *storeConfig) { c.selectPasted = true }
}

// WithStickySelection makes DeleteNode and DeleteEdge clear the selection only when it
// referenced a removed element.
func WithStickySelection() Option {
	return func(c *storeConfig) { c.stickySelection = true }
}
