package editor

import (
	"math/rand"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/katalvlaran/digraph/core"
)

// DefaultSpecialProbability is the share of new nodes tagged core.SpecialType by the
// default node type policy.
const DefaultSpecialProbability = 0.25

// IDGenerator produces node ids. taken reports ids already present in the graph;
// the generator must return an id for which taken is false.
type IDGenerator interface {
	NextID(taken func(id string) bool) string
}

// CounterIDGenerator yields prefix+1, prefix+2, ... skipping ids that are taken.
// The counter only moves forward, so a deleted id is never handed out again.
type CounterIDGenerator struct {
	prefix string
	next   atomic.Uint64
}

// NewCounterIDGenerator returns a counter generator; an empty prefix yields bare numbers.
func NewCounterIDGenerator(prefix string) *CounterIDGenerator {
	return &CounterIDGenerator{prefix: prefix}
}

// NextID implements IDGenerator.
func (c *CounterIDGenerator) NextID(taken func(id string) bool) string {
	for {
		id := c.prefix + strconv.FormatUint(c.next.Add(1), 10)
		if taken == nil || !taken(id) {
			return id
		}
	}
}

// UUIDGenerator yields random UUIDv4 strings, re-drawing on the (practically impossible) collision.
type UUIDGenerator struct{}

// NextID implements IDGenerator.
func (UUIDGenerator) NextID(taken func(id string) bool) string {
	for {
		id := uuid.NewString()
		if taken == nil || !taken(id) {
			return id
		}
	}
}

// NodeTypePolicy picks the type tag of a node created by CreateNode.
type NodeTypePolicy interface {
	NodeType() core.TypeTag
}

// NodeTypeFunc adapts a function to NodeTypePolicy.
type NodeTypeFunc func() core.TypeTag

// NodeType implements NodeTypePolicy.
func (f NodeTypeFunc) NodeType() core.TypeTag { return f() }

// FixedNodeType always returns tag.
func FixedNodeType(tag core.TypeTag) NodeTypePolicy {
	return NodeTypeFunc(func() core.TypeTag { return tag })
}

// RandomNodeType returns special with probability p, otherwise fallback.
// rng must not be nil; p outside [0,1] is clamped.
func RandomNodeType(rng *rand.Rand, p float64, special, fallback core.TypeTag) NodeTypePolicy {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}

	return NodeTypeFunc(func() core.TypeTag {
		if rng.Float64() < p {
			return special
		}
		return fallback
	})
}

// EdgeTypePolicy picks the type tag of an edge created by CreateEdge from its source node.
type EdgeTypePolicy interface {
	EdgeType(source core.Node) core.TypeTag
}

// EdgeTypeFunc adapts a function to EdgeTypePolicy.
type EdgeTypeFunc func(source core.Node) core.TypeTag

// EdgeType implements EdgeTypePolicy.
func (f EdgeTypeFunc) EdgeType(source core.Node) core.TypeTag { return f(source) }

// SourceTypedEdgeType returns matched when the source node has type sourceType, otherwise fallback.
func SourceTypedEdgeType(sourceType, matched, fallback core.TypeTag) EdgeTypePolicy {
	return EdgeTypeFunc(func(source core.Node) core.TypeTag {
		if source.Type == sourceType {
			return matched
		}
		return fallback
	})
}

// DefaultEdgeTypePolicy tags edges leaving a special node as special edges.
func DefaultEdgeTypePolicy() EdgeTypePolicy {
	return SourceTypedEdgeType(core.SpecialType, core.SpecialEdgeType, core.EmptyEdgeType)
}
