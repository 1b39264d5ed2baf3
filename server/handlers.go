package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/editor"
)

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) getGraph(w http.ResponseWriter, _ *http.Request) {
	s.apply(w, func(st *editor.GraphStore) (editor.Result, error) {
		return st.State(), nil
	})
}

func (s *Server) createNode(w http.ResponseWriter, r *http.Request) {
	var req createNodeRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	s.apply(w, func(st *editor.GraphStore) (editor.Result, error) {
		return st.CreateNode(*req.X, *req.Y)
	})
}

func (s *Server) updateNodePosition(w http.ResponseWriter, r *http.Request) {
	var req updateNodeRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	node := core.Node{
		ID:      chi.URLParam(r, "id"),
		Title:   req.Title,
		Type:    req.Type,
		Subtype: req.Subtype,
		X:       req.X,
		Y:       req.Y,
	}
	s.apply(w, func(st *editor.GraphStore) (editor.Result, error) {
		return st.UpdateNodePosition(node)
	})
}

func (s *Server) deleteNode(w http.ResponseWriter, r *http.Request) {
	node := core.Node{ID: chi.URLParam(r, "id")}
	s.apply(w, func(st *editor.GraphStore) (editor.Result, error) {
		return st.DeleteNode(node)
	})
}

func (s *Server) selectNode(w http.ResponseWriter, r *http.Request) {
	var req selectNodeRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	s.apply(w, func(st *editor.GraphStore) (editor.Result, error) {
		return st.SelectNode(&core.Node{ID: req.ID})
	})
}

func (s *Server) clearSelection(w http.ResponseWriter, _ *http.Request) {
	s.apply(w, func(st *editor.GraphStore) (editor.Result, error) {
		return st.SelectNode(nil)
	})
}

func (s *Server) selectEdge(w http.ResponseWriter, r *http.Request) {
	var req edgeRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	s.apply(w, func(st *editor.GraphStore) (editor.Result, error) {
		return st.SelectEdge(core.Edge{Source: req.Source, Target: req.Target})
	})
}

func (s *Server) createEdge(w http.ResponseWriter, r *http.Request) {
	var req edgeRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	s.apply(w, func(st *editor.GraphStore) (editor.Result, error) {
		return st.CreateEdge(core.Node{ID: req.Source}, core.Node{ID: req.Target})
	})
}

func (s *Server) swapEdgeEndpoints(w http.ResponseWriter, r *http.Request) {
	var req swapEdgeRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	s.apply(w, func(st *editor.GraphStore) (editor.Result, error) {
		return st.SwapEdgeEndpoints(
			core.Node{ID: req.NewSource},
			core.Node{ID: req.NewTarget},
			core.Edge{Source: req.Source, Target: req.Target},
		)
	})
}

func (s *Server) deleteEdge(w http.ResponseWriter, r *http.Request) {
	var req edgeRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	s.apply(w, func(st *editor.GraphStore) (editor.Result, error) {
		return st.DeleteEdge(core.Edge{Source: req.Source, Target: req.Target})
	})
}

func (s *Server) copySelected(w http.ResponseWriter, _ *http.Request) {
	s.apply(w, (*editor.GraphStore).CopySelected)
}

func (s *Server) pasteSelected(w http.ResponseWriter, _ *http.Request) {
	s.apply(w, (*editor.GraphStore).PasteSelected)
}

func (s *Server) undo(w http.ResponseWriter, _ *http.Request) {
	s.apply(w, (*editor.GraphStore).Undo)
}
