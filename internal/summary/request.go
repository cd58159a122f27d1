/*
Package summary builds the request a highlighted period is submitted with to a historical
summarization service. Only the payload lives here; sending it is up to the host.
*/
package summary

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
)

// Length is the requested length of the summary, as a word range.
type Length string

const (
	Length200  Length = "0-200"
	Length500  Length = "200-500"
	Length1000 Length = "500-1000"
	Length5000 Length = "1000-5000"
	LengthMax  Length = "5000+"
)

// Lengths lists the accepted lengths, shortest first.
var Lengths = []Length{Length200, Length500, Length1000, Length5000, LengthMax}

// Topics and Regions are the choices offered next to a period.
var (
	Topics = []string{
		"Politics & Governance",
		"Society & Culture",
		"Science & Technology",
		"Economy & Trade",
		"Philosophy & Religion",
	}
	Regions = []string{"Europe", "Asia", "Africa", "The Americas", "Oceania"}
)

// Period carries the period endpoints as the user sees them, e.g. "1910" or "15/3/44BCE".
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Request is the summary request payload.
type Request struct {
	Topics  []string `json:"topics"`
	Regions []string `json:"regions"`
	Length  Length   `json:"length"`
	Period  Period   `json:"period"`
}

// NewRequest builds a validated request. An empty length selects the shortest one.
func NewRequest(start, end string, topics, regions []string, length Length) (Request, error) {
	if length == "" {
		length = Length200
	}
	r := Request{
		Topics:  nonNil(topics),
		Regions: nonNil(regions),
		Length:  length,
		Period:  Period{Start: start, End: end},
	}
	if err := r.Validate(); err != nil {
		return Request{}, err
	}
	return r, nil
}

// Validate checks the length, topics and regions against the offered choices.
func (r Request) Validate() error {
	if !slices.Contains(Lengths, r.Length) {
		return fmt.Errorf("unknown summary length %q", r.Length)
	}
	for _, t := range r.Topics {
		if !slices.Contains(Topics, t) {
			return fmt.Errorf("unknown topic %q", t)
		}
	}
	for _, reg := range r.Regions {
		if !slices.Contains(Regions, reg) {
			return fmt.Errorf("unknown region %q", reg)
		}
	}
	if r.Period.Start == "" || r.Period.End == "" {
		return fmt.Errorf("period endpoints are required")
	}
	return nil
}

// Encode writes the request as indented JSON.
func (r Request) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode summary request: %w", err)
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
