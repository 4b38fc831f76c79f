package paging

import "testing"

func TestClamp(t *testing.T) {
	cases := []struct {
		page, pageSize int
		wantPage       int
		wantSize       int
	}{
		{1, 20, 1, 20},
		{0, 0, 1, DefaultPageSize},
		{-3, -1, 1, DefaultPageSize},
		{5, 100, 5, 100},
		{5, 500, 5, MaxPageSize},
		{2, 1, 2, 1},
	}
	for _, tc := range cases {
		page, size := Clamp(tc.page, tc.pageSize)
		if page != tc.wantPage || size != tc.wantSize {
			t.Errorf("Clamp(%d, %d) = (%d, %d), want (%d, %d)",
				tc.page, tc.pageSize, page, size, tc.wantPage, tc.wantSize)
		}
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total, size int
		want        int
	}{
		{0, 20, 1},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{57, 10, 6},
		{10, 0, 1},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.size); got != tc.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.size, got, tc.want)
		}
	}
}
