package api

import (
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func paginationContext(query string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest("GET", "/?"+query, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", 100, 0},
		{"explicit values", "limit=10&offset=5", 10, 5},
		{"limit capped at 1000", "limit=5000", 1000, 0},
		{"negative limit ignored", "limit=-1", 100, 0},
		{"non-numeric ignored", "limit=abc&offset=xyz", 100, 0},
		{"negative offset ignored", "offset=-5", 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := parsePagination(paginationContext(tt.query))
			if limit != tt.wantLimit {
				t.Errorf("parsePagination() limit = %v, want %v", limit, tt.wantLimit)
			}
			if offset != tt.wantOffset {
				t.Errorf("parsePagination() offset = %v, want %v", offset, tt.wantOffset)
			}
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name   string
		limit  int
		offset int
		want   []int
	}{
		{"full slice", 100, 0, []int{1, 2, 3, 4, 5}},
		{"first page", 2, 0, []int{1, 2}},
		{"second page", 2, 2, []int{3, 4}},
		{"partial last page", 2, 4, []int{5}},
		{"offset beyond end", 2, 10, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := paginate(items, tt.limit, tt.offset)
			if len(got) != len(tt.want) {
				t.Fatalf("paginate() length = %v, want %v", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("paginate()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestListResponse(t *testing.T) {
	items := []string{"a", "b", "c"}

	resp := listResponse(items, 2, 1)
	if resp.Total != 3 {
		t.Errorf("listResponse().Total = %v, want 3", resp.Total)
	}
	if resp.Count != 2 {
		t.Errorf("listResponse().Count = %v, want 2", resp.Count)
	}
	if resp.Items[0] != "b" {
		t.Errorf("listResponse().Items[0] = %v, want b", resp.Items[0])
	}
}
