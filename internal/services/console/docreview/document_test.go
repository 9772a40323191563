package docreview

import (
	"reflect"
	"testing"
)

func TestCanReview(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status     Status
		submitting bool
		want       bool
	}{
		{status: StatusPendingReview, want: true},
		{status: StatusPendingReview, submitting: true, want: false},
		{status: StatusActive, want: false},
		{status: StatusRejected, want: false},
		{status: StatusInactive, want: false},
	}
	for _, tc := range tests {
		if got := CanReview(Document{Status: tc.status}, tc.submitting); got != tc.want {
			t.Fatalf("CanReview(%q, %v) = %v, want %v", tc.status, tc.submitting, got, tc.want)
		}
	}
}

func TestReviewable(t *testing.T) {
	t.Parallel()

	if !Reviewable(KindIdentity, StatusInactive) {
		t.Fatal("identity INACTIVE should link to review")
	}
	if Reviewable(KindVehicle, StatusInactive) {
		t.Fatal("vehicle INACTIVE should not link to review")
	}
	if Reviewable(KindVehicle, StatusActive) {
		t.Fatal("ACTIVE should not link to review")
	}
	if !Reviewable(KindVehicle, StatusRejected) {
		t.Fatal("REJECTED should link to review")
	}
}

func TestImagesSkipsBlankURLs(t *testing.T) {
	t.Parallel()

	doc := Document{FrontImageURL: "https://cdn/front.jpg", PortraitImageURL: "https://cdn/face.jpg", BackImageURL: " "}
	got := doc.Images()
	want := []Image{{Name: "front", URL: "https://cdn/front.jpg"}, {Name: "portrait", URL: "https://cdn/face.jpg"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Images() = %+v, want %+v", got, want)
	}
}

func TestSortNewestFirst(t *testing.T) {
	t.Parallel()

	docs := []Document{
		{ID: "old", CreatedAt: "2025-01-02T08:00:00"},
		{ID: "bad", CreatedAt: "yesterday"},
		{ID: "new", CreatedAt: "2025-03-01T10:00:00.1234567"},
		{ID: "mid", CreatedAt: "2025-02-01T00:00:00Z"},
	}
	SortNewestFirst(docs)
	got := []string{docs[0].ID, docs[1].ID, docs[2].ID, docs[3].ID}
	want := []string{"new", "mid", "old", "bad"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestFirstPending(t *testing.T) {
	t.Parallel()

	id, ok := FirstPending([]Document{{ID: "a", Status: StatusActive}, {ID: "b", Status: StatusPendingReview}})
	if !ok || id != "b" {
		t.Fatalf("FirstPending() = (%q, %v)", id, ok)
	}
	if _, ok := FirstPending(nil); ok {
		t.Fatal("expected no pending document")
	}
}

func TestStateOf(t *testing.T) {
	t.Parallel()

	if StateOf(0, nil) != QueueStateEmpty || StateOf(2, nil) != QueueStateReady || StateOf(2, errTest) != QueueStateError {
		t.Fatal("StateOf mismatch")
	}
}
