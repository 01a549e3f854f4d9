package web

import (
	"encoding/json"
	"net/http"

	"github.com/behrlich/cubecoord/internal/cube"
)

type solveRequest struct {
	Scramble   string `json:"scramble"`
	Coordinate string `json:"coordinate"`
}

type solveResponse struct {
	Algorithm string `json:"algorithm"`
	Steps     int    `json:"steps"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	if req.Coordinate == "" {
		req.Coordinate = "eofb"
	}

	kind, err := cube.LookupCoordinate(req.Coordinate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	mt := cube.BuildMoveTable(kind)
	pt, err := cube.BuildPruningTable(mt)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	result, err := cube.SolveScramble(mt, pt, req.Scramble)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, solveResponse{Algorithm: result.Algorithm, Steps: result.Steps})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
