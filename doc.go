// Package digraph is the mutation core of a visual directed-graph editor.
//
// What is digraph?
//
//	An immutable node/edge document plus the store that turns user gestures into
//	new snapshots, with a small HTTP surface around it:
//		• core/       - Node, Edge, Graph snapshot, referential integrity, lookups
//		• editor/     - GraphStore: select, create, move, delete, connect, swap, copy/paste
//		• builder/    - bundled sample graph and generated grid graphs
//		• snapshot/   - JSON/YAML documents for loading and saving graphs
//		• server/     - chi HTTP adapter, one route per editor operation
//		• config/     - YAML + environment configuration with hot reload
//		• logging/    - zap logger construction
//		• metrics/    - Prometheus collectors for operations and HTTP traffic
//		• validation/ - struct validation with readable messages
//
// Every GraphStore operation returns a new core.Graph; a snapshot handed to a
// renderer never changes underneath it. Removing a node cascades to every edge
// touching it, so an edge always references two stored nodes.
//
// Quick ASCII example:
//
//	    start1 ──► a1 ──► a2
//	                │
//	                ▼
//	                a4
//
// Run the editor service:
//
//	go run ./cmd/digraph-editor -config digraph.yaml -watch
package digraph
