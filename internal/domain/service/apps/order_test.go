package apps

import (
	"testing"

	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/model"
)

func buildApp(id string, deps ...string) *model.App {
	return &model.App{
		ID: id,
		Manifest: &model.Manifest{
			ManifestVersion: "1",
			ID:              id,
			Dependencies:    deps,
		},
	}
}

func orderedIDs(list []*model.App) []string {
	ids := make([]string, 0, len(list))
	for _, app := range list {
		ids = append(ids, app.ID)
	}
	return ids
}

func assertOrder(t *testing.T, got []string, expected []string) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("Expected %d apps, got %d: %v", len(expected), len(got), got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("Expected order %v, got %v", expected, got)
		}
	}
}

func TestOrderFollowsDependencies(t *testing.T) {
	testCases := []struct {
		name     string
		apps     []*model.App
		expected []string
		acyclic  bool
	}{
		{
			name:     "independent apps sort by id",
			apps:     []*model.App{buildApp("nextcloud"), buildApp("bitcoin"), buildApp("jellyfin")},
			expected: []string{"bitcoin", "jellyfin", "nextcloud"},
			acyclic:  true,
		},
		{
			name: "linear chain",
			apps: []*model.App{
				buildApp("btcpay-server", "lightning"),
				buildApp("lightning", "bitcoin"),
				buildApp("bitcoin"),
			},
			expected: []string{"bitcoin", "lightning", "btcpay-server"},
			acyclic:  true,
		},
		{
			name: "diamond keeps id order among peers",
			apps: []*model.App{
				buildApp("dashboard", "electrs", "lightning"),
				buildApp("lightning", "bitcoin"),
				buildApp("electrs", "bitcoin"),
				buildApp("bitcoin"),
			},
			expected: []string{"bitcoin", "electrs", "lightning", "dashboard"},
			acyclic:  true,
		},
		{
			name: "missing dependency is ignored",
			apps: []*model.App{
				buildApp("lightning", "bitcoin"),
			},
			expected: []string{"lightning"},
			acyclic:  true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ordered, acyclic := Order(tc.apps)
			if acyclic != tc.acyclic {
				t.Errorf("Expected acyclic=%v, got %v", tc.acyclic, acyclic)
			}
			assertOrder(t, orderedIDs(ordered), tc.expected)
		})
	}
}

func TestOrderCycleFallsBackDeterministically(t *testing.T) {
	apps := []*model.App{
		buildApp("a", "b"),
		buildApp("b", "a"),
		buildApp("base"),
	}

	ordered, acyclic := Order(apps)
	if acyclic {
		t.Error("Expected cycle to be reported")
	}
	// The acyclic part comes first, the cyclic remainder in id order.
	assertOrder(t, orderedIDs(ordered), []string{"base", "a", "b"})
}
