package models

import "testing"

func TestNewPagination(t *testing.T) {
	tests := []struct {
		page, size int
		rows       int64
		wantCount  int
		wantPrev   bool
		wantNext   bool
	}{
		{1, 10, 0, 0, false, false},
		{1, 10, 10, 1, false, false},
		{1, 10, 25, 3, false, true},
		{3, 10, 25, 3, true, false},
		{4, 10, 25, 3, true, false},
		{2, 10, 11, 2, true, false},
	}

	for _, tt := range tests {
		p := NewPagination(tt.page, tt.size, tt.rows)
		if p.PageCount != tt.wantCount {
			t.Errorf("NewPagination(%d, %d, %d).PageCount = %d, want %d", tt.page, tt.size, tt.rows, p.PageCount, tt.wantCount)
		}
		if p.HasPrev() != tt.wantPrev || p.HasNext() != tt.wantNext {
			t.Errorf("page %d of %d: prev=%v next=%v", tt.page, p.PageCount, p.HasPrev(), p.HasNext())
		}
	}
}
