package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/editor"
	"github.com/katalvlaran/digraph/metrics"
)

func TestCollector_ObservesStore(t *testing.T) {
	c := metrics.NewCollector()
	g, err := core.NewGraph([]core.Node{{ID: "a"}, {ID: "b"}}, nil)
	require.NoError(t, err)
	c.SetGraph(g)

	s := editor.NewGraphStore(g, editor.WithObserver(c), editor.WithNodeTypePolicy(editor.FixedNodeType(core.EmptyType)))
	_, err = s.CreateNode(0, 0)
	require.NoError(t, err)
	_, err = s.CreateEdge(core.Node{ID: "a"}, core.Node{ID: "b"})
	require.NoError(t, err)
	_, _ = s.PasteSelected()
	_, _ = s.Undo()

	expected := `
# HELP digraph_nodes Nodes in the current graph snapshot.
# TYPE digraph_nodes gauge
digraph_nodes 3
# HELP digraph_edges Edges in the current graph snapshot.
# TYPE digraph_edges gauge
digraph_edges 1
# HELP digraph_operations_total Graph store operations by outcome.
# TYPE digraph_operations_total counter
digraph_operations_total{operation="create_edge",outcome="ok"} 1
digraph_operations_total{operation="create_node",outcome="ok"} 1
digraph_operations_total{operation="paste_selected",outcome="warning"} 1
digraph_operations_total{operation="undo",outcome="error"} 1
`
	require.NoError(t, testutil.GatherAndCompare(c.Registry(), strings.NewReader(expected),
		"digraph_nodes", "digraph_edges", "digraph_operations_total"))
}

func TestCollector_MiddlewareUsesRoutePattern(t *testing.T) {
	c := metrics.NewCollector()
	r := chi.NewRouter()
	r.Use(c.Middleware)
	r.Delete("/api/nodes/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Get("/metrics", c.Handler().ServeHTTP)

	for _, id := range []string{"a1", "a2"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/nodes/"+id, nil))
		require.Equal(t, http.StatusNoContent, rec.Code)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(c.HTTPRequests().WithLabelValues(http.MethodDelete, "/api/nodes/{id}", "204")))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `digraph_http_requests_total{method="DELETE",route="/api/nodes/{id}",status="204"} 2`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
