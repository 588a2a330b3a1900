package apps

import (
	"sort"

	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/model"
)

// Order sorts the apps so that every app comes after its declared
// dependencies. Ties and independent apps are ordered by id so a boot pass
// is deterministic. Dependencies on apps that are not installed are ignored.
//
// The second return value is false when the dependency graph contains a
// cycle. The cyclic remainder is appended in id order; resolution still
// proceeds and forward references inside the cycle degrade to placeholders.
func Order(list []*model.App) ([]*model.App, bool) {
	byID := make(map[string]*model.App, len(list))
	ids := make([]string, 0, len(list))
	for _, app := range list {
		byID[app.ID] = app
		ids = append(ids, app.ID)
	}
	sort.Strings(ids)

	pending := make(map[string]int, len(list))
	for _, app := range list {
		count := 0
		for _, dep := range app.Dependencies() {
			if dep == app.ID {
				continue
			}
			if _, installed := byID[dep]; installed {
				count++
			}
		}
		pending[app.ID] = count
	}

	ordered := make([]*model.App, 0, len(list))
	done := make(map[string]bool, len(list))
	for len(ordered) < len(list) {
		progressed := false
		for _, id := range ids {
			if done[id] || pending[id] > 0 {
				continue
			}
			ordered = append(ordered, byID[id])
			done[id] = true
			progressed = true
			for _, other := range list {
				if done[other.ID] {
					continue
				}
				for _, dep := range other.Dependencies() {
					if dep == id {
						pending[other.ID]--
					}
				}
			}
		}
		if !progressed {
			// Cycle: emit the remainder deterministically.
			for _, id := range ids {
				if !done[id] {
					ordered = append(ordered, byID[id])
					done[id] = true
				}
			}
			return ordered, false
		}
	}
	return ordered, true
}
