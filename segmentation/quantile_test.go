package segmentation

import (
	"errors"
	"testing"
)

func TestQuantileCutEvenBuckets(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	labels := []int{1, 2, 3, 4, 5}

	got, err := quantileCut(values, labels)
	if err != nil {
		t.Fatalf("quantileCut: %v", err)
	}

	want := []int{1, 1, 2, 2, 3, 3, 4, 4, 5, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bin[%d] = %d, want %d (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestQuantileCutLabelOrder(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	got, err := quantileCut(values, []int{5, 4, 3, 2, 1})
	if err != nil {
		t.Fatalf("quantileCut: %v", err)
	}
	want := []int{5, 4, 3, 2, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("descending labels: got %v, want %v", got, want)
		}
	}
}

func TestQuantileCutDuplicateEdges(t *testing.T) {
	values := []float64{7, 7, 7, 7, 7}
	_, err := quantileCut(values, []int{1, 2, 3, 4, 5})
	if !errors.Is(err, ErrInsufficientDistinct) {
		t.Fatalf("error = %v, want ErrInsufficientDistinct", err)
	}
}

func TestQuantileCutEmpty(t *testing.T) {
	_, err := quantileCut(nil, []int{1, 2})
	if !errors.Is(err, ErrInsufficientDistinct) {
		t.Fatalf("error = %v, want ErrInsufficientDistinct", err)
	}
}

func TestQuantile(t *testing.T) {
	values := []float64{4, 1, 3, 2}
	cases := []struct {
		p    float64
		want float64
	}{
		{0, 1},
		{0.5, 2.5},
		{1, 4},
		{0.25, 1.75},
	}
	for _, tc := range cases {
		if got := quantile(values, tc.p); got != tc.want {
			t.Fatalf("quantile(p=%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestRankFirst(t *testing.T) {
	ranks := rankFirst([]float64{2, 1, 2})
	want := []float64{2, 1, 3}
	for i := range want {
		if ranks[i] != want[i] {
			t.Fatalf("rankFirst = %v, want %v (ties break by first occurrence)", ranks, want)
		}
	}
}
