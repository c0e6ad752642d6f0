package handlers

import (
	"fmt"
	"net/http"

	"github.com/aria-lang/orfscan-go/internal/frame"
	"github.com/aria-lang/orfscan-go/internal/sequence"
)

// FramesRequest asks for the frames of one sequence.
type FramesRequest struct {
	ID        string `json:"id,omitempty"`
	Sequence  string `json:"sequence"`
	Direction string `json:"direction,omitempty"`
}

// FramesResponse holds the frames of one sequence keyed by label.
type FramesResponse struct {
	ID      string                 `json:"id,omitempty"`
	Labels  []string               `json:"labels"`
	Frames  map[string]frame.Frame `json:"frames"`
	Longest *frame.Candidate       `json:"longest,omitempty"`
}

// MultiFramesRequest asks for the frames of several sequences.
type MultiFramesRequest struct {
	Sequences []FramesRequest `json:"sequences"`
	Direction string          `json:"direction,omitempty"`
}

// MultiFramesResponse holds one FramesResponse per input, in order.
type MultiFramesResponse struct {
	Results []FramesResponse `json:"results"`
}

func buildFrames(id, bases, direction string) (FramesResponse, error) {
	if direction == "" {
		direction = string(frame.BOTH)
	}
	dir, err := frame.ParseDirection(direction)
	if err != nil {
		return FramesResponse{}, err
	}

	seq, err := sequence.New(bases)
	if err != nil {
		if id != "" {
			err = fmt.Errorf("%s: %w", id, err)
		}
		return FramesResponse{}, err
	}

	frames := frame.Generate(seq, dir)
	resp := FramesResponse{
		ID:     id,
		Labels: frames.Labels(),
		Frames: frames.ByLabel(),
	}
	if c, ok := frames.Longest(); ok {
		resp.Longest = &c
	}
	return resp, nil
}

// FramesHandler translates one sequence into its reading frames and ORFs.
func (a *API) FramesHandler(w http.ResponseWriter, r *http.Request) {
	var req FramesRequest
	if !decode(w, r, &req) {
		return
	}

	resp, err := buildFrames(req.ID, req.Sequence, req.Direction)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// MultiFramesHandler translates several sequences. Any invalid sequence
// fails the whole request.
func (a *API) MultiFramesHandler(w http.ResponseWriter, r *http.Request) {
	var req MultiFramesRequest
	if !decode(w, r, &req) {
		return
	}
	if len(req.Sequences) == 0 {
		writeError(w, http.StatusBadRequest, "sequences: at least one sequence required")
		return
	}

	resp := MultiFramesResponse{Results: make([]FramesResponse, 0, len(req.Sequences))}
	for i, s := range req.Sequences {
		id := s.ID
		if id == "" {
			id = fmt.Sprintf("sequence_%d", i+1)
		}
		dir := s.Direction
		if dir == "" {
			dir = req.Direction
		}

		fr, err := buildFrames(id, s.Sequence, dir)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		resp.Results = append(resp.Results, fr)
	}

	writeJSON(w, http.StatusOK, resp)
}
