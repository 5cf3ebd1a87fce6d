package render

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/seqalign/align"
)

type jsonScoring struct {
	Match    int `json:"match"`
	Mismatch int `json:"mismatch"`
	Gap      int `json:"gap"`
}

type jsonStats struct {
	Length     int     `json:"length"`
	Matches    int     `json:"matches"`
	Mismatches int     `json:"mismatches"`
	Gaps       int     `json:"gaps"`
	Identity   float64 `json:"identity"`
}

type jsonResult struct {
	Score    int         `json:"score"`
	Aligned1 string      `json:"aligned1"`
	Aligned2 string      `json:"aligned2"`
	Mode     string      `json:"mode"`
	Scoring  jsonScoring `json:"scoring"`
	Stats    jsonStats   `json:"stats"`
	Matrix   [][]int     `json:"matrix,omitempty"`
}

// JSON writes r as an indented JSON document. The score matrix is
// included only when r retained it.
func JSON(w io.Writer, r *align.Result) error {
	st := r.Stats()
	out := jsonResult{
		Score:    r.Score,
		Aligned1: r.Aligned1,
		Aligned2: r.Aligned2,
		Mode:     r.Mode.String(),
		Scoring:  jsonScoring(r.Scoring),
		Stats:    jsonStats(st),
	}
	if r.Matrix != nil {
		out.Matrix = r.Matrix.ToRows()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}
