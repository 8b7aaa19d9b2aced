package search_test

import (
	"errors"
	"testing"

	"repo-search/internal/domain/search"
)

func TestNewRequest_RequiresFilter(t *testing.T) {
	tests := []struct {
		name    string
		raw     search.RawParams
		wantErr bool
	}{
		{"no params", search.RawParams{}, true},
		{"blank filters", search.RawParams{Topic: "", Stars: "", Language: ""}, true},
		{"whitespace only", search.RawParams{Topic: "   ", Stars: "\t", Language: "\n "}, true},
		{"pagination only", search.RawParams{Page: "2", PerPage: "50"}, true},
		{"topic only", search.RawParams{Topic: "cli"}, false},
		{"stars only", search.RawParams{Stars: ">100"}, false},
		{"language only", search.RawParams{Language: "go"}, false},
		{"all filters", search.RawParams{Topic: "cli", Stars: "50..200", Language: "go"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := search.NewRequest(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewRequest() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var se *search.Error
				if !errors.As(err, &se) {
					t.Fatalf("NewRequest() error type = %T, want *search.Error", err)
				}
				if se.Kind != search.KindValidation {
					t.Errorf("Kind = %v, want %v", se.Kind, search.KindValidation)
				}
				if se.Message != search.MsgFilterRequired {
					t.Errorf("Message = %q, want %q", se.Message, search.MsgFilterRequired)
				}
				return
			}
			if req == nil {
				t.Fatal("NewRequest() returned nil request")
			}
		})
	}
}

func TestNewRequest_TrimsFilters(t *testing.T) {
	req, err := search.NewRequest(search.RawParams{Topic: "  web ", Language: " go", Stars: ""})
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}

	f := req.Filters()
	if f.Topic != "web" || f.Language != "go" || f.Stars != "" {
		t.Errorf("Filters() = %+v", f)
	}
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"", 1},
		{"1", 1},
		{"7", 7},
		{" 3 ", 3},
		{"100000", 100000},
		{"0", 1},
		{"-4", 1},
		{"abc", 1},
		{"2.5", 1},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := search.NormalizePage(tt.value); got != tt.want {
				t.Errorf("NormalizePage(%q) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestNormalizePerPage(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"", 10},
		{"1", 1},
		{"25", 25},
		{"100", 100},
		{"101", 100},
		{"5000", 100},
		{"0", 10},
		{"-1", 10},
		{"ten", 10},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := search.NormalizePerPage(tt.value); got != tt.want {
				t.Errorf("NormalizePerPage(%q) = %d, want %d", tt.value, got, tt.want)
			}
		})
	}
}

func TestRequest_Query(t *testing.T) {
	req, err := search.NewRequest(search.RawParams{Language: "go", Page: "3", PerPage: "250"})
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}

	q := req.Query()
	if q.Q != "language:go" {
		t.Errorf("Q = %q, want %q", q.Q, "language:go")
	}
	if q.Sort != "stars" || q.Order != "desc" {
		t.Errorf("Sort/Order = %s/%s, want stars/desc", q.Sort, q.Order)
	}
	if q.Page != 3 || q.PerPage != 100 {
		t.Errorf("Page/PerPage = %d/%d, want 3/100", q.Page, q.PerPage)
	}
}
