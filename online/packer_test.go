package online_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/eugenenazirov/packit/internal/packtest"
	"github.com/eugenenazirov/packit/online"
)

func TestMustAdd_PanicsOnTooLargeItem(t *testing.T) {
	t.Parallel()

	packer, err := online.New[packtest.Item](1, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertPanics(t, func() { online.MustAdd(packer, packtest.Item{Width: 50}) })
}

func TestPackAll_EmissionOrder(t *testing.T) {
	t.Parallel()

	items := []packtest.Item{{Width: 9}, {Width: 8}, {Width: 7}}

	packer, err := online.New[packtest.Item](1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bins, err := online.PackAll(packer, slices.Values(items))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Bins closed mid-stream precede the bins emitted at finalize.
	want := packtest.Bins(10, [][]int{{9}, {8}, {7}})
	if diff := cmp.Diff(want, bins, packtest.Comparer[packtest.Item]()); diff != "" {
		t.Fatalf("unexpected bins (-want +got):\n%s", diff)
	}
}

func TestPackAll_IncludesItemsAddedBeforeTheCall(t *testing.T) {
	t.Parallel()

	packer, err := online.New[packtest.Item](1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	online.MustAdd(packer, packtest.Item{Width: 4})

	bins, err := online.PackAll(packer, slices.Values([]packtest.Item{{Width: 5}}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := packtest.Bins(10, [][]int{{4, 5}})
	if diff := cmp.Diff(want, bins, packtest.Comparer[packtest.Item]()); diff != "" {
		t.Fatalf("unexpected bins (-want +got):\n%s", diff)
	}
}

func TestPackAll_TooLargeStopsAndResumes(t *testing.T) {
	t.Parallel()

	items := []packtest.Item{{Width: 5}, {Width: 50}, {Width: 7}, {Width: 19}}

	packer, err := online.New[packtest.Item](1, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bins, err := online.PackAll(packer, slices.Values(items))
	if bins != nil {
		t.Fatalf("expected no bins on failure, got %v", bins)
	}

	var failure *online.PackAllError[packtest.Item]
	if !errors.As(err, &failure) {
		t.Fatalf("expected PackAllError, got %v", err)
	}

	var tooLarge *online.ItemTooLargeError[packtest.Item]
	if !errors.As(failure.Err, &tooLarge) {
		t.Fatalf("expected wrapped ItemTooLargeError, got %v", failure.Err)
	}
	if tooLarge.Item != (packtest.Item{Width: 50}) {
		t.Fatalf("expected the rejected item back, got %v", tooLarge.Item)
	}
	if len(failure.Closed) != 0 {
		t.Fatalf("expected no bins closed before the failure, got %v", failure.Closed)
	}

	// The packer is still open and the remainder resumes exactly after the
	// failing item, so skipping it and carrying on loses nothing else.
	resumed, err := online.PackAll(packer, failure.Remaining)
	if err != nil {
		t.Fatalf("unexpected error on resume: %v", err)
	}

	want := packtest.Bins(20, [][]int{{5, 7}, {19}})
	if diff := cmp.Diff(want, resumed, packtest.Comparer[packtest.Item]()); diff != "" {
		t.Fatalf("unexpected bins after resume (-want +got):\n%s", diff)
	}
}

func TestPackAllError_StopReleasesRemainder(t *testing.T) {
	t.Parallel()

	items := []packtest.Item{{Width: 50}, {Width: 7}, {Width: 19}}

	packer, err := online.New[packtest.Item](1, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, packErr := online.PackAll(packer, slices.Values(items))

	var failure *online.PackAllError[packtest.Item]
	if !errors.As(packErr, &failure) {
		t.Fatalf("expected PackAllError, got %v", packErr)
	}

	failure.Stop()

	// The abandoned remainder is released: nothing left to yield.
	for item := range failure.Remaining {
		t.Fatalf("expected no items after Stop, got %v", item)
	}
}

func TestPackAllError_UnwrapsThroughErrorsIs(t *testing.T) {
	t.Parallel()

	packer, err := online.New[packtest.Item](1, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, packErr := online.PackAll(packer, slices.Values([]packtest.Item{{Width: 50}}))

	var tooLarge *online.ItemTooLargeError[packtest.Item]
	if !errors.As(packErr, &tooLarge) {
		t.Fatalf("expected errors.As to reach the ItemTooLargeError, got %v", packErr)
	}
}
