package model

import "strings"

// ResourceEntry is one published environment variable of an application.
// Entries are recomputed every boot; they are never the persisted source
// of truth.
type ResourceEntry struct {
	AppID string
	Name  string
	Kind  ExportKind
	Value string
}

// EnvName returns the fully-qualified environment key of the entry.
func (e ResourceEntry) EnvName() string {
	return EnvName(e.AppID, e.Name)
}

// EnvName builds the canonical environment key APP_<ID>_<NAME> where the
// app id is uppercased and dashes become underscores.
func EnvName(appID string, name string) string {
	id := strings.ToUpper(strings.ReplaceAll(appID, "-", "_"))
	return "APP_" + id + "_" + name
}

// EnvMap flattens entries into a name/value map keyed by EnvName.
func EnvMap(entries []ResourceEntry) map[string]string {
	env := make(map[string]string, len(entries))
	for _, entry := range entries {
		env[entry.EnvName()] = entry.Value
	}
	return env
}
