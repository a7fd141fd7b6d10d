package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestResolveManyPreservesOrder(t *testing.T) {
	fake := newFakeCatalog()
	ids := make([]string, 0, 15)
	for i := 0; i < 15; i++ {
		id := fmt.Sprintf("%d", 100+i)
		ids = append(ids, id)
		fake.addObject(id, "Title "+id, "Artist "+id, "https://img/"+id)
	}
	resolver := &ArtworkResolver{Client: fake, WindowSize: 4}

	got := resolver.ResolveMany(context.Background(), ids)
	if len(got) != len(ids) {
		t.Fatalf("expected %d results, got %d", len(ids), len(got))
	}
	for i, item := range got {
		if item.ExternalID != ids[i] {
			t.Fatalf("result %d = %s, want %s", i, item.ExternalID, ids[i])
		}
	}
}

func TestResolveManyBoundedConcurrency(t *testing.T) {
	fake := newFakeCatalog()
	fake.delay = 5 * time.Millisecond
	ids := make([]string, 0, 24)
	for i := 0; i < 24; i++ {
		id := fmt.Sprintf("%d", i)
		ids = append(ids, id)
		fake.addObject(id, "t", "a", "https://img/"+id)
	}
	resolver := &ArtworkResolver{Client: fake, WindowSize: 6}

	resolver.ResolveMany(context.Background(), ids)
	if fake.maxInFlight > 6 {
		t.Fatalf("max in-flight calls = %d, want <= 6", fake.maxInFlight)
	}
	if fake.callCount() != 24 {
		t.Fatalf("call count = %d, want 24", fake.callCount())
	}
}

func TestResolveManyDropsFailuresSilently(t *testing.T) {
	fake := newFakeCatalog()
	fake.addObject("A", "a", "", "https://img/A")
	// B is unknown to the catalog, C fails transiently.
	fake.errs["C"] = errors.New("request failed: connection reset")
	fake.addObject("D", "d", "", "https://img/D")

	resolver := &ArtworkResolver{Client: fake}
	got := resolver.ResolveMany(context.Background(), []string{"A", "B", "C", "D"})

	if len(got) != 2 {
		t.Fatalf("expected 2 survivors, got %d", len(got))
	}
	if got[0].ExternalID != "A" || got[1].ExternalID != "D" {
		t.Fatalf("unexpected survivors: %s, %s", got[0].ExternalID, got[1].ExternalID)
	}
}

func TestResolveManyDropsImagelessRecords(t *testing.T) {
	fake := newFakeCatalog()
	fake.addObject("A", "a", "", "https://img/A")
	fake.addObject("B", "b", "", "")

	resolver := &ArtworkResolver{Client: fake}
	got := resolver.ResolveMany(context.Background(), []string{"A", "B"})

	if len(got) != 1 || got[0].ExternalID != "A" {
		t.Fatalf("expected only A to survive, got %#v", got)
	}
}

func TestResolveManyAppliesDefaults(t *testing.T) {
	fake := newFakeCatalog()
	fake.addObject("77", "", "", "https://img/77")

	resolver := &ArtworkResolver{Client: fake}
	got := resolver.ResolveMany(context.Background(), []string{"77"})

	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
	if got[0].Title != "Artwork #77" {
		t.Fatalf("title default = %q", got[0].Title)
	}
	if got[0].Artist != "Unknown artist" {
		t.Fatalf("artist default = %q", got[0].Artist)
	}
}

func TestResolveManyEmptyInput(t *testing.T) {
	resolver := &ArtworkResolver{Client: newFakeCatalog()}
	got := resolver.ResolveMany(context.Background(), nil)
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}
