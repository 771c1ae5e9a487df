package helper

import "testing"

func TestBuildPaginationFromPage(t *testing.T) {
	tests := []struct {
		name               string
		total              int64
		page, perPage      int
		wantPages          int
		wantNext, wantPrev bool
	}{
		{"first of many", 95, 1, 20, 5, true, false},
		{"middle page", 95, 3, 20, 5, true, true},
		{"last page", 95, 5, 20, 5, false, true},
		{"empty still one page", 0, 1, 20, 1, false, false},
		{"exact multiple", 40, 2, 20, 2, false, true},
		{"bad inputs normalized", 10, 0, 0, 1, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildPaginationFromPage(tt.total, tt.page, tt.perPage)
			if p.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantPages)
			}
			if p.HasNext != tt.wantNext || p.HasPrev != tt.wantPrev {
				t.Errorf("HasNext/HasPrev = %v/%v, want %v/%v", p.HasNext, p.HasPrev, tt.wantNext, tt.wantPrev)
			}
		})
	}
}
