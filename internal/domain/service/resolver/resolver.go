package resolver

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/getumbrel/umbrel-apps-sub001/internal/application/config"
	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/model"
	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/service/registry"
	"github.com/getumbrel/umbrel-apps-sub001/pkg/entropy"
	"github.com/getumbrel/umbrel-apps-sub001/pkg/env"
	"github.com/getumbrel/umbrel-apps-sub001/pkg/files"
	"github.com/getumbrel/umbrel-apps-sub001/pkg/log"
	"github.com/getumbrel/umbrel-apps-sub001/pkg/template"
)

// Resolver interprets the export specs of installed apps, publishes the
// resulting entries into the registry and writes each app's env file.
// Resolution is idempotent: with unchanged inputs a re-run publishes
// byte-identical values and rewrites an identical env file.
type Resolver struct {
	config   *config.Config
	registry *registry.Registry

	seedOnce sync.Once
	seed     []byte
	seedErr  error
}

// NewResolver creates a resolver publishing into the given registry.
func NewResolver(cfg *config.Config, reg *registry.Registry) *Resolver {
	return &Resolver{
		config:   cfg,
		registry: reg,
	}
}

// ResolveApp computes the app's full entry set, publishes it and writes the
// app's env file. A ConfigurationError aborts the app before anything is
// published; a ConflictError means the publish contradicted another app.
func (r *Resolver) ResolveApp(app *model.App) ([]model.ResourceEntry, error) {
	if app.Manifest == nil {
		return nil, model.NewConfigurationError(app.ID, "manifest not loaded", nil)
	}

	builtins := r.builtins(app)
	staged := make(map[string]string, len(app.Manifest.Exports))
	entries := make([]model.ResourceEntry, 0, len(app.Manifest.Exports))
	for i := range app.Manifest.Exports {
		spec := &app.Manifest.Exports[i]
		value, err := r.resolveExport(app, spec, builtins, staged)
		if err != nil {
			return nil, err
		}
		entry := model.ResourceEntry{AppID: app.ID, Name: spec.Name, Kind: spec.Kind, Value: value}
		entries = append(entries, entry)
		staged[entry.EnvName()] = value
	}

	if r.config.IsFeatureEnabled(config.FeatureEnvOverrides) {
		if err := r.applyOverrides(app, entries); err != nil {
			return nil, err
		}
	}

	if err := r.registry.PublishAll(entries); err != nil {
		return nil, err
	}

	if err := r.writeEnvFile(app, entries); err != nil {
		return nil, err
	}

	log.Debug("app environment resolved", "app_id", app.ID, "entries", len(entries))
	return entries, nil
}

// EnvFilePath returns where the app's resolved environment is written.
func EnvFilePath(app *model.App) string {
	return filepath.Join(app.Dir, model.EnvFilename)
}

func (r *Resolver) resolveExport(app *model.App, spec *model.ExportSpec, builtins map[string]string, staged map[string]string) (string, error) {
	switch spec.Kind {
	case model.ExportKindAddress, model.ExportKindPort:
		// Static assignments are manual and out-of-band; exposed verbatim,
		// collision-checked at publish time.
		return spec.Value, nil

	case model.ExportKindStatic, model.ExportKindPath:
		value := spec.Value
		if spec.Select != nil {
			value = selectValue(app, spec.Select)
		}
		return r.substitute(app, spec.Name, value, builtins, staged)

	case model.ExportKindSecret:
		return r.deriveSecret(app, spec)

	case model.ExportKindGenerated:
		return r.generatedValue(app, spec)

	case model.ExportKindRef:
		value, err := r.registry.Resolve(spec.App, spec.Export)
		if errors.Is(err, model.ErrNotYetAvailable) {
			log.Debug("reference not yet available",
				"app_id", app.ID, "export", spec.Name, "ref_app", spec.App, "ref_export", spec.Export)
			return spec.Default, nil
		}
		return value, nil

	case model.ExportKindOnion:
		return r.onionValue(app, spec), nil
	}
	return "", model.NewConfigurationError(app.ID, fmt.Sprintf("unknown export kind %q", spec.Kind), nil)
}

// builtins are the template variables every app may use in its values.
func (r *Resolver) builtins(app *model.App) map[string]string {
	return map[string]string{
		"APP_ID":          app.ID,
		"APP_DATA_DIR":    app.DataDir,
		"TOR_DATA_DIR":    r.config.GetTorDataPath(),
		"PLATFORM_ROOT":   r.config.BasePath,
		"DEVICE_HOSTNAME": r.config.GetDeviceHostname(),
		"DEVICE_DOMAIN":   r.config.GetDeviceDomain(),
	}
}

// selectValue picks a variant based on a persisted app setting.
func selectValue(app *model.App, sel *model.SelectSpec) string {
	if setting, ok := app.Setting(sel.Setting); ok {
		if value, ok := sel.Cases[setting]; ok {
			return value
		}
		log.Warn("setting value has no matching case, using default",
			"app_id", app.ID, "setting", sel.Setting, "value", setting)
	}
	return sel.Default
}

// substitute expands ${...} templates against builtins, the app's already
// computed entries, the registry and finally the OS environment. Unknown
// variables expand to an empty string.
func (r *Resolver) substitute(app *model.App, name string, value string, builtins map[string]string, staged map[string]string) (string, error) {
	lookup := template.Chain(
		template.FromMap(builtins),
		template.FromMap(staged),
		r.registry.Lookup,
		os.LookupEnv,
	)
	result, err := template.Substitute(value, lookup)
	if err != nil {
		return "", model.NewConfigurationError(app.ID, fmt.Sprintf("invalid template in export %s", name), err)
	}
	return result, nil
}

func (r *Resolver) deriveSecret(app *model.App, spec *model.ExportSpec) (string, error) {
	seed, err := r.loadSeed()
	if err != nil {
		return "", model.NewConfigurationError(app.ID, "platform seed unavailable", err)
	}
	label := spec.Label
	if label == "" {
		label = strings.ToLower(spec.Name)
	}
	secret, err := entropy.Derive(seed, "app-"+app.ID+"-"+label)
	if err != nil {
		return "", model.NewConfigurationError(app.ID, "secret derivation failed", err)
	}
	return secret, nil
}

// loadSeed reads the platform seed once per process.
func (r *Resolver) loadSeed() ([]byte, error) {
	r.seedOnce.Do(func() {
		r.seed, r.seedErr = entropy.LoadSeed(r.config.GetSeedPath())
	})
	return r.seed, r.seedErr
}

// generatedValue reuses the persisted value verbatim when its file exists;
// only a fully absent file triggers generation.
func (r *Resolver) generatedValue(app *model.App, spec *model.ExportSpec) (string, error) {
	path := filepath.Join(app.DataDir, spec.File)
	if files.Exists(path) {
		value, err := files.ReadTrimmed(path)
		if err != nil {
			return "", model.NewConfigurationError(app.ID, fmt.Sprintf("failed to read persisted value %s", spec.File), err)
		}
		if value == "" {
			return "", model.NewConfigurationError(app.ID, fmt.Sprintf("persisted value %s is empty", spec.File), nil)
		}
		return value, nil
	}

	fresh, err := generate(spec.Generator)
	if err != nil {
		return "", model.NewConfigurationError(app.ID, fmt.Sprintf("failed to generate value for export %s", spec.Name), err)
	}
	value, err := files.WriteAtomicOnce(path, []byte(fresh+"\n"), 0o600)
	if err != nil {
		return "", model.NewConfigurationError(app.ID, fmt.Sprintf("failed to persist value %s", spec.File), err)
	}
	log.Info("one-time value persisted", "app_id", app.ID, "export", spec.Name, "file", spec.File)
	return value, nil
}

func generate(generator string) (string, error) {
	switch generator {
	case model.GeneratorHex:
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		return hex.EncodeToString(buf), nil
	case model.GeneratorUUID:
		return uuid.NewString(), nil
	}
	return "", fmt.Errorf("unknown generator %q", generator)
}

// onionValue resolves to the hostname artifact's contents once it exists,
// and to the sentinel before that.
func (r *Resolver) onionValue(app *model.App, spec *model.ExportSpec) string {
	if !r.config.IsFeatureEnabled(config.FeatureOnionServices) {
		return model.OnionSentinel
	}
	path := model.OnionArtifactPath(r.config.GetTorDataPath(), app.ID, spec.Service)
	if value, err := files.ReadTrimmed(path); err == nil && value != "" {
		return value
	}
	return model.OnionSentinel
}

// applyOverrides lets operators pin entry values from an env file in the
// app's data directory without editing the manifest.
func (r *Resolver) applyOverrides(app *model.App, entries []model.ResourceEntry) error {
	overrides, err := env.Load(filepath.Join(app.DataDir, model.OverridesFilename))
	if err != nil {
		return model.NewConfigurationError(app.ID, "failed to read env overrides", err)
	}
	if len(overrides) == 0 {
		return nil
	}
	for i := range entries {
		key := entries[i].EnvName()
		if value, ok := overrides[key]; ok && value != entries[i].Value {
			log.Info("applying env override", "app_id", app.ID, "name", key)
			entries[i].Value = value
		}
	}
	return nil
}

func (r *Resolver) writeEnvFile(app *model.App, entries []model.ResourceEntry) error {
	if err := env.Save(EnvFilePath(app), model.EnvMap(entries)); err != nil {
		return fmt.Errorf("failed to write env file for %s: %w", app.ID, err)
	}
	return nil
}
