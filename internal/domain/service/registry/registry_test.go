package registry

import (
	"errors"
	"testing"

	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/model"
)

func TestPublishRejectsConflictingValue(t *testing.T) {
	r := NewRegistry()

	entry := model.ResourceEntry{AppID: "bitcoin", Name: "IP", Kind: model.ExportKindAddress, Value: "10.21.22.2"}
	if err := r.Publish(entry); err != nil {
		t.Fatalf("Failed to publish entry: %v", err)
	}

	// Re-publishing the identical entry is a no-op.
	if err := r.Publish(entry); err != nil {
		t.Errorf("Expected identical re-publish to succeed, got %v", err)
	}

	// A different value under the same key must be rejected.
	entry.Value = "10.21.22.3"
	err := r.Publish(entry)
	if err == nil {
		t.Fatal("Expected conflict error for a different value under the same key, got nil")
	}
	var conflict *model.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Expected ConflictError, got %T: %v", err, err)
	}
	if conflict.Key != "APP_BITCOIN_IP" || conflict.PrevValue != "10.21.22.2" {
		t.Errorf("Unexpected conflict details: %+v", conflict)
	}

	// The original value stays published.
	value, err := r.Resolve("bitcoin", "IP")
	if err != nil {
		t.Fatalf("Failed to resolve after rejected publish: %v", err)
	}
	if value != "10.21.22.2" {
		t.Errorf("Expected original value to survive, got %q", value)
	}
}

func TestPublishDetectsValueCollisions(t *testing.T) {
	testCases := []struct {
		name     string
		first    model.ResourceEntry
		second   model.ResourceEntry
		conflict bool
	}{
		{
			name:     "two apps claiming the same address",
			first:    model.ResourceEntry{AppID: "bitcoin", Name: "IP", Kind: model.ExportKindAddress, Value: "10.21.22.2"},
			second:   model.ResourceEntry{AppID: "lightning", Name: "IP", Kind: model.ExportKindAddress, Value: "10.21.22.2"},
			conflict: true,
		},
		{
			name:     "two apps claiming the same host port",
			first:    model.ResourceEntry{AppID: "bitcoin", Name: "PORT", Kind: model.ExportKindPort, Value: "3002"},
			second:   model.ResourceEntry{AppID: "lightning", Name: "PORT", Kind: model.ExportKindPort, Value: "3002"},
			conflict: true,
		},
		{
			name:     "distinct addresses do not collide",
			first:    model.ResourceEntry{AppID: "bitcoin", Name: "IP", Kind: model.ExportKindAddress, Value: "10.21.22.2"},
			second:   model.ResourceEntry{AppID: "lightning", Name: "IP", Kind: model.ExportKindAddress, Value: "10.21.22.3"},
			conflict: false,
		},
		{
			name:     "a port and an address with the same text do not collide",
			first:    model.ResourceEntry{AppID: "bitcoin", Name: "PORT", Kind: model.ExportKindPort, Value: "8333"},
			second:   model.ResourceEntry{AppID: "lightning", Name: "MODE", Kind: model.ExportKindAddress, Value: "8333"},
			conflict: false,
		},
		{
			name:     "static values with the same text do not collide",
			first:    model.ResourceEntry{AppID: "bitcoin", Name: "P2P_PORT", Kind: model.ExportKindStatic, Value: "8333"},
			second:   model.ResourceEntry{AppID: "lightning", Name: "PEER_PORT", Kind: model.ExportKindStatic, Value: "8333"},
			conflict: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRegistry()
			if err := r.Publish(tc.first); err != nil {
				t.Fatalf("Failed to publish first entry: %v", err)
			}

			err := r.Publish(tc.second)
			if tc.conflict {
				var conflict *model.ConflictError
				if !errors.As(err, &conflict) {
					t.Fatalf("Expected ConflictError, got %T: %v", err, err)
				}
				if conflict.PrevKey != tc.first.EnvName() {
					t.Errorf("Expected conflict against %s, got %+v", tc.first.EnvName(), conflict)
				}
			} else if err != nil {
				t.Errorf("Expected publish to succeed, got %v", err)
			}
		})
	}
}

func TestPublishAllIsAtomic(t *testing.T) {
	r := NewRegistry()
	if err := r.Publish(model.ResourceEntry{AppID: "bitcoin", Name: "IP", Kind: model.ExportKindAddress, Value: "10.21.22.2"}); err != nil {
		t.Fatalf("Failed to seed registry: %v", err)
	}

	// The second entry collides with bitcoin's address; nothing from the
	// batch may be committed.
	batch := []model.ResourceEntry{
		{AppID: "lightning", Name: "PORT", Kind: model.ExportKindPort, Value: "9735"},
		{AppID: "lightning", Name: "IP", Kind: model.ExportKindAddress, Value: "10.21.22.2"},
	}
	err := r.PublishAll(batch)
	var conflict *model.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Expected ConflictError, got %T: %v", err, err)
	}
	if _, err := r.Resolve("lightning", "PORT"); !errors.Is(err, model.ErrNotYetAvailable) {
		t.Errorf("Expected no partial publish, but APP_LIGHTNING_PORT was committed")
	}
	if r.Len() != 1 {
		t.Errorf("Expected registry to hold 1 entry after rejected batch, got %d", r.Len())
	}
}

func TestPublishAllDetectsConflictsInsideBatch(t *testing.T) {
	r := NewRegistry()
	batch := []model.ResourceEntry{
		{AppID: "bitcoin", Name: "IP", Kind: model.ExportKindAddress, Value: "10.21.22.2"},
		{AppID: "bitcoin", Name: "TOR_IP", Kind: model.ExportKindAddress, Value: "10.21.22.2"},
	}
	var conflict *model.ConflictError
	if err := r.PublishAll(batch); !errors.As(err, &conflict) {
		t.Fatalf("Expected ConflictError for colliding values inside one batch, got %v", err)
	}
	if r.Len() != 0 {
		t.Errorf("Expected empty registry after rejected batch, got %d entries", r.Len())
	}
}

func TestResolveReturnsNotYetAvailable(t *testing.T) {
	r := NewRegistry()

	_, err := r.Resolve("bitcoin", "IP")
	if !errors.Is(err, model.ErrNotYetAvailable) {
		t.Fatalf("Expected ErrNotYetAvailable for an unpublished key, got %v", err)
	}

	if err := r.Publish(model.ResourceEntry{AppID: "bitcoin", Name: "IP", Kind: model.ExportKindAddress, Value: "10.21.22.2"}); err != nil {
		t.Fatalf("Failed to publish entry: %v", err)
	}
	value, err := r.Resolve("bitcoin", "IP")
	if err != nil {
		t.Fatalf("Failed to resolve published key: %v", err)
	}
	if value != "10.21.22.2" {
		t.Errorf("Expected published value, got %q", value)
	}
}

func TestEntriesKeepInsertionOrder(t *testing.T) {
	r := NewRegistry()
	batch := []model.ResourceEntry{
		{AppID: "bitcoin", Name: "IP", Kind: model.ExportKindAddress, Value: "10.21.22.2"},
		{AppID: "bitcoin", Name: "PORT", Kind: model.ExportKindPort, Value: "3002"},
		{AppID: "bitcoin", Name: "RPC_PORT", Kind: model.ExportKindStatic, Value: "8332"},
	}
	if err := r.PublishAll(batch); err != nil {
		t.Fatalf("Failed to publish batch: %v", err)
	}
	// Another app's entries must not leak into bitcoin's list.
	if err := r.Publish(model.ResourceEntry{AppID: "lightning", Name: "IP", Kind: model.ExportKindAddress, Value: "10.21.21.9"}); err != nil {
		t.Fatalf("Failed to publish entry: %v", err)
	}

	entries := r.Entries("bitcoin")
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	expected := []string{"IP", "PORT", "RPC_PORT"}
	for i, name := range expected {
		if entries[i].Name != name {
			t.Errorf("Expected entry %d to be %s, got %s", i, name, entries[i].Name)
		}
	}
}

func TestLookupByQualifiedKey(t *testing.T) {
	r := NewRegistry()
	if err := r.Publish(model.ResourceEntry{AppID: "nextcloud-server", Name: "PORT", Kind: model.ExportKindPort, Value: "8081"}); err != nil {
		t.Fatalf("Failed to publish entry: %v", err)
	}

	value, ok := r.Lookup("APP_NEXTCLOUD_SERVER_PORT")
	if !ok {
		t.Fatal("Expected lookup to find the dash-translated key")
	}
	if value != "8081" {
		t.Errorf("Expected 8081, got %q", value)
	}
	if _, ok := r.Lookup("APP_NEXTCLOUD_SERVER_MISSING"); ok {
		t.Error("Expected lookup of an unpublished key to fail")
	}
}
