package services

import "testing"

func TestNewPagination(t *testing.T) {
	tests := []struct {
		page       int
		total      int
		wantPage   int
		wantOffset int
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{1, 0, 1, 0, 1, false, false},
		{1, 12, 1, 0, 1, false, false},
		{1, 13, 1, 0, 2, true, false},
		{2, 13, 2, 12, 2, false, true},
		{0, 30, 1, 0, 3, true, false},
		{-5, 30, 1, 0, 3, true, false},
		{2, 30, 2, 12, 3, true, true},
	}

	for _, tt := range tests {
		p := NewPagination(tt.page, tt.total)
		if p.Page != tt.wantPage {
			t.Errorf("page=%d total=%d: Page = %d, want %d", tt.page, tt.total, p.Page, tt.wantPage)
		}
		if p.Offset() != tt.wantOffset {
			t.Errorf("page=%d total=%d: Offset = %d, want %d", tt.page, tt.total, p.Offset(), tt.wantOffset)
		}
		if p.TotalPages() != tt.totalPages {
			t.Errorf("page=%d total=%d: TotalPages = %d, want %d", tt.page, tt.total, p.TotalPages(), tt.totalPages)
		}
		if p.HasNext() != tt.hasNext {
			t.Errorf("page=%d total=%d: HasNext = %v, want %v", tt.page, tt.total, p.HasNext(), tt.hasNext)
		}
		if p.HasPrev() != tt.hasPrev {
			t.Errorf("page=%d total=%d: HasPrev = %v, want %v", tt.page, tt.total, p.HasPrev(), tt.hasPrev)
		}
	}
}

func TestPaginationNeighbours(t *testing.T) {
	p := NewPagination(2, 40)
	if p.NextPage() != 3 {
		t.Errorf("NextPage = %d, want 3", p.NextPage())
	}
	if p.PrevPage() != 1 {
		t.Errorf("PrevPage = %d, want 1", p.PrevPage())
	}
}
