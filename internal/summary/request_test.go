package summary

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNewRequest_Defaults(t *testing.T) {
	r, err := NewRequest("1910", "1920", nil, nil, "")
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	if r.Length != Length200 {
		t.Errorf("Length = %q, want %q", r.Length, Length200)
	}
	if r.Topics == nil || r.Regions == nil {
		t.Errorf("Topics/Regions should encode as empty arrays")
	}
}

func TestNewRequest_Invalid(t *testing.T) {
	cases := []struct {
		name           string
		start, end     string
		topics, region []string
		length         Length
	}{
		{"length", "1910", "1920", nil, nil, "10-20"},
		{"topic", "1910", "1920", []string{"Sports"}, nil, Length500},
		{"region", "1910", "1920", nil, []string{"Atlantis"}, Length500},
		{"missing end", "1910", "", nil, nil, Length500},
	}
	for _, c := range cases {
		if _, err := NewRequest(c.start, c.end, c.topics, c.region, c.length); err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}
}

func TestEncode(t *testing.T) {
	r, err := NewRequest("15/3/44BCE", "16/3/44BCE", []string{"Politics & Governance"}, []string{"Europe"}, Length1000)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := r.Encode(&buf); err != nil {
		t.Fatal(err)
	}

	var got struct {
		Topics  []string `json:"topics"`
		Regions []string `json:"regions"`
		Length  string   `json:"length"`
		Period  struct {
			Start string `json:"start"`
			End   string `json:"end"`
		} `json:"period"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if got.Length != "500-1000" || got.Period.Start != "15/3/44BCE" || got.Period.End != "16/3/44BCE" {
		t.Fatalf("unexpected payload %s", buf.String())
	}
	if len(got.Topics) != 1 || got.Topics[0] != "Politics & Governance" || got.Regions[0] != "Europe" {
		t.Fatalf("unexpected payload %s", buf.String())
	}
}
