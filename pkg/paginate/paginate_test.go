package paginate

import "testing"

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name         string
		totalItems   int
		itemsPerPage int
		want         int
	}{
		{"exact multiple", 20, 5, 4},
		{"partial last page", 23, 5, 5},
		{"single page", 3, 10, 1},
		{"zero items", 0, 10, 1},
		{"zero per page", 23, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalPages(tt.totalItems, tt.itemsPerPage); got != tt.want {
				t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.totalItems, tt.itemsPerPage, got, tt.want)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		total     int
		perPage   int
		wantFirst int
		wantLast  int
	}{
		{"first page", 1, 23, 5, 1, 5},
		{"middle page", 3, 23, 5, 11, 15},
		{"partial last page", 5, 23, 5, 21, 23},
		{"past the end", 6, 23, 5, 0, 0},
		{"invalid page", 0, 23, 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := Bounds(tt.page, tt.total, tt.perPage)
			if first != tt.wantFirst || last != tt.wantLast {
				t.Errorf("Bounds(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.total, tt.perPage, first, last, tt.wantFirst, tt.wantLast)
			}
		})
	}
}

func TestHasNext(t *testing.T) {
	// 23 items at 5 per page: next is available up to page 4, disabled on 5.
	for page := 1; page <= 4; page++ {
		if !HasNext(page, 23, 5) {
			t.Errorf("HasNext(%d, 23, 5) = false, want true", page)
		}
	}
	if HasNext(5, 23, 5) {
		t.Error("HasNext(5, 23, 5) = true, want false")
	}
}

func TestHasPrev(t *testing.T) {
	if HasPrev(1) {
		t.Error("HasPrev(1) = true, want false")
	}
	if !HasPrev(2) {
		t.Error("HasPrev(2) = false, want true")
	}
}
