package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuildGraph is the canonical name of the orchestrator.
	MethodBuildGraph = "BuildGraph"
	// MethodGridNodes is the canonical name for the GridNodes constructor.
	MethodGridNodes = "GridNodes"
	// MethodChain is the canonical name for the Chain constructor.
	MethodChain = "Chain"
	// MethodSampleGraph is the canonical name for the SampleGraph constructor.
	MethodSampleGraph = "SampleGraph"
)

//-----------------------------------------------------------------------------
// Layout Defaults
//-----------------------------------------------------------------------------

// DefaultRowLength is the number of generated nodes per grid row.
const DefaultRowLength = 20

// DefaultSpacing is the distance in pixels between neighbouring generated nodes.
const DefaultSpacing = 200.0

// DefaultIDPrefix prefixes generated node ids ("a1", "a2", ...).
const DefaultIDPrefix = "a"

// MinGeneratedNodes is the smallest accepted size for GridNodes; zero yields an empty graph.
const MinGeneratedNodes = 0
