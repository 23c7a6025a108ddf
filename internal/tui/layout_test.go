package tui

import (
	"math"
	"testing"
)

func TestPageLayoutUpdate(t *testing.T) {
	cases := []struct {
		name           string
		width          int
		height         int
		viewportWidth  int
		viewportHeight int
		cardWidth      int
		inputWidth     int
	}{
		{name: "standard", width: 80, height: 24, viewportWidth: 80, viewportHeight: 22, cardWidth: 76, inputWidth: 70},
		{name: "wide", width: 200, height: 50, viewportWidth: 200, viewportHeight: 48, cardWidth: 88, inputWidth: 82},
		{name: "tiny", width: 20, height: 5, viewportWidth: 40, viewportHeight: 8, cardWidth: 36, inputWidth: 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			layout := newPageLayout()
			layout.Update(tc.width, tc.height)
			if layout.viewportWidth != tc.viewportWidth {
				t.Fatalf("viewport width mismatch: got %d want %d", layout.viewportWidth, tc.viewportWidth)
			}
			if layout.viewportHeight != tc.viewportHeight {
				t.Fatalf("viewport height mismatch: got %d want %d", layout.viewportHeight, tc.viewportHeight)
			}
			if layout.cardWidth != tc.cardWidth {
				t.Fatalf("card width mismatch: got %d want %d", layout.cardWidth, tc.cardWidth)
			}
			if layout.inputWidth != tc.inputWidth {
				t.Fatalf("input width mismatch: got %d want %d", layout.inputWidth, tc.inputWidth)
			}
		})
	}
}

func TestRegionVisibleRatio(t *testing.T) {
	form := region{start: 20, height: 10}
	cases := []struct {
		name   string
		offset int
		height int
		want   float64
	}{
		{name: "above the fold", offset: 0, height: 20, want: 0},
		{name: "first line", offset: 1, height: 20, want: 0.1},
		{name: "partly visible", offset: 5, height: 20, want: 0.5},
		{name: "fully visible", offset: 15, height: 20, want: 1},
		{name: "scrolled past", offset: 30, height: 20, want: 0},
		{name: "no viewport", offset: 20, height: 0, want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := form.visibleRatio(tc.offset, tc.height)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("ratio mismatch: got %f want %f", got, tc.want)
			}
		})
	}
	if got := (region{}).visibleRatio(0, 10); got != 0 {
		t.Fatalf("empty region should never be visible, got %f", got)
	}
}
