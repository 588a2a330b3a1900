package registry

import (
	"sync"

	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/model"
)

// Registry is the process-wide, write-once-per-boot store of published
// resource entries. Keys are fully-qualified environment names; publishing a
// different value under an existing key is rejected, as is claiming an
// address or host port value already claimed under another key.
type Registry struct {
	mutex   sync.RWMutex
	entries []model.ResourceEntry
	byKey   map[string]int
	claims  map[model.ExportKind]map[string]string
}

// NewRegistry creates an empty registry. Address and host port values are
// tracked for cross-app collisions; other kinds only collide by key.
func NewRegistry() *Registry {
	return &Registry{
		byKey: make(map[string]int),
		claims: map[model.ExportKind]map[string]string{
			model.ExportKindAddress: make(map[string]string),
			model.ExportKindPort:    make(map[string]string),
		},
	}
}

// Publish records a single entry. Re-publishing an identical entry is a
// no-op; a different value under the same key, or an address/port value
// already claimed elsewhere, returns a ConflictError.
func (r *Registry) Publish(entry model.ResourceEntry) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if err := r.checkLocked(entry, nil, nil); err != nil {
		return err
	}
	r.commitLocked(entry)
	return nil
}

// PublishAll records a batch of entries atomically: the whole batch is
// checked against the registry (and against itself) before anything is
// committed, so a conflicting batch leaves no partial publish behind.
func (r *Registry) PublishAll(entries []model.ResourceEntry) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	staged := make(map[string]string, len(entries))
	stagedClaims := make(map[model.ExportKind]map[string]string)
	for _, entry := range entries {
		if err := r.checkLocked(entry, staged, stagedClaims); err != nil {
			return err
		}
		key := entry.EnvName()
		staged[key] = entry.Value
		if _, tracked := r.claims[entry.Kind]; tracked && entry.Value != "" {
			if stagedClaims[entry.Kind] == nil {
				stagedClaims[entry.Kind] = make(map[string]string)
			}
			stagedClaims[entry.Kind][entry.Value] = key
		}
	}
	for _, entry := range entries {
		r.commitLocked(entry)
	}
	return nil
}

// Resolve returns the published value for an app's export, or
// ErrNotYetAvailable when the producing app has not published it in this
// boot. Callers degrade to their documented placeholder.
func (r *Registry) Resolve(appID string, name string) (string, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if i, ok := r.byKey[model.EnvName(appID, name)]; ok {
		return r.entries[i].Value, nil
	}
	return "", model.ErrNotYetAvailable
}

// Lookup returns the value published under a fully-qualified key.
func (r *Registry) Lookup(key string) (string, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if i, ok := r.byKey[key]; ok {
		return r.entries[i].Value, true
	}
	return "", false
}

// Entries returns the app's published entries in insertion order.
func (r *Registry) Entries(appID string) []model.ResourceEntry {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var entries []model.ResourceEntry
	for _, entry := range r.entries {
		if entry.AppID == appID {
			entries = append(entries, entry)
		}
	}
	return entries
}

// Len returns the number of published entries.
func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.entries)
}

// checkLocked validates an entry against committed state and, when
// publishing a batch, against the staged portion of that batch.
func (r *Registry) checkLocked(entry model.ResourceEntry, staged map[string]string, stagedClaims map[model.ExportKind]map[string]string) error {
	key := entry.EnvName()
	if i, ok := r.byKey[key]; ok {
		if r.entries[i].Value != entry.Value {
			return &model.ConflictError{Key: key, Value: entry.Value, PrevValue: r.entries[i].Value}
		}
		return nil
	}
	if prev, ok := staged[key]; ok {
		if prev != entry.Value {
			return &model.ConflictError{Key: key, Value: entry.Value, PrevValue: prev}
		}
		return nil
	}
	if claims, tracked := r.claims[entry.Kind]; tracked && entry.Value != "" {
		if owner, taken := claims[entry.Value]; taken && owner != key {
			return &model.ConflictError{Key: key, Value: entry.Value, PrevKey: owner}
		}
		if sc := stagedClaims[entry.Kind]; sc != nil {
			if owner, taken := sc[entry.Value]; taken && owner != key {
				return &model.ConflictError{Key: key, Value: entry.Value, PrevKey: owner}
			}
		}
	}
	return nil
}

func (r *Registry) commitLocked(entry model.ResourceEntry) {
	key := entry.EnvName()
	if _, ok := r.byKey[key]; ok {
		return
	}
	r.byKey[key] = len(r.entries)
	r.entries = append(r.entries, entry)
	if claims, tracked := r.claims[entry.Kind]; tracked && entry.Value != "" {
		claims[entry.Value] = key
	}
}
