package readiness

import (
	"context"
	"fmt"
	"time"

	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/model"
	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/repository"
	"github.com/getumbrel/umbrel-apps-sub001/pkg/files"
	"github.com/getumbrel/umbrel-apps-sub001/pkg/log"
)

// Barrier gates an app's primary services on an asynchronously produced
// hidden-service artifact. When the artifact already exists the barrier
// releases immediately without starting anything or sleeping; otherwise it
// starts the producer services detached and polls at a fixed interval until
// the artifact appears or the attempt budget runs out. Exhaustion is logged
// and non-fatal. Every boot re-evaluates from scratch.
type Barrier struct {
	launcher    repository.Launcher
	status      repository.ContainerStatusRepository
	torDataDir  string
	interval    time.Duration
	maxAttempts int
}

// NewBarrier creates a barrier polling every interval, at most maxAttempts
// times.
func NewBarrier(launcher repository.Launcher, status repository.ContainerStatusRepository, torDataDir string, interval time.Duration, maxAttempts int) *Barrier {
	return &Barrier{
		launcher:    launcher,
		status:      status,
		torDataDir:  torDataDir,
		interval:    interval,
		maxAttempts: maxAttempts,
	}
}

// Await runs the app's pre-start hook. The returned error is only non-nil
// for configuration problems or context cancellation; a timed-out wait is a
// normal result so startup can proceed without the dependent integration.
func (b *Barrier) Await(ctx context.Context, app *model.App) (model.BarrierResult, error) {
	hook := app.PreStart()
	if hook == nil {
		log.Debug("no pre-start hook declared", "app_id", app.ID)
		return model.BarrierResult{State: model.BarrierNotChecked}, nil
	}

	artifact, err := b.artifactPath(app, hook)
	if err != nil {
		return model.BarrierResult{State: model.BarrierNotChecked}, err
	}

	start := time.Now()
	if value, ok := readArtifact(artifact); ok {
		// Steady state: the artifact survived from an earlier boot.
		log.Debug("artifact already present", "app_id", app.ID, "artifact", artifact)
		return model.BarrierResult{State: model.BarrierArtifactPresent, Artifact: value, Elapsed: time.Since(start)}, nil
	}

	log.Info("waiting for artifact",
		"app_id", app.ID, "artifact", artifact, "interval", b.interval.String(), "max_attempts", b.maxAttempts)
	b.startProducers(ctx, app, hook.StartServices)

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()
	for attempt := 1; attempt <= b.maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return model.BarrierResult{State: model.BarrierWaitingForProducer, Attempts: attempt - 1, Elapsed: time.Since(start)}, ctx.Err()
		case <-ticker.C:
		}
		if value, ok := readArtifact(artifact); ok {
			log.Info("artifact appeared", "app_id", app.ID, "attempts", attempt)
			return model.BarrierResult{State: model.BarrierArtifactPresent, Artifact: value, Attempts: attempt, Elapsed: time.Since(start)}, nil
		}
	}

	// Availability over consistency: release anyway and let the primary
	// service start without the integration.
	log.Warn("artifact did not appear within the attempt budget",
		"app_id", app.ID, "artifact", artifact, "attempts", b.maxAttempts)
	return model.BarrierResult{State: model.BarrierTimedOut, Attempts: b.maxAttempts, Elapsed: time.Since(start)}, nil
}

// artifactPath resolves the hook's awaited export to its artifact location.
func (b *Barrier) artifactPath(app *model.App, hook *model.PreStartHook) (string, error) {
	spec, ok := app.Manifest.ExportByName(hook.AwaitExport)
	if !ok {
		return "", model.NewConfigurationError(app.ID, fmt.Sprintf("pre-start hook awaits unknown export %s", hook.AwaitExport), nil)
	}
	if spec.Kind != model.ExportKindOnion {
		return "", model.NewConfigurationError(app.ID, fmt.Sprintf("pre-start hook awaits %s which is not an onion export", hook.AwaitExport), nil)
	}
	return model.OnionArtifactPath(b.torDataDir, app.ID, spec.Service), nil
}

// startProducers brings up the artifact-producing services detached. This is
// fire-and-forget: failures degrade to the poll timeout instead of aborting.
func (b *Barrier) startProducers(ctx context.Context, app *model.App, services []string) {
	if len(services) == 0 {
		return
	}

	toStart := make([]string, 0, len(services))
	for _, service := range services {
		running, err := b.status.IsServiceRunning(ctx, app.ID, service)
		if err != nil {
			log.Debug("could not check service state", "app_id", app.ID, "service", service, "error", err)
			toStart = append(toStart, service)
			continue
		}
		if !running {
			toStart = append(toStart, service)
		}
	}
	if len(toStart) == 0 {
		log.Debug("producer services already running", "app_id", app.ID)
		return
	}

	if err := b.launcher.StartServices(ctx, app, toStart); err != nil {
		log.Warn("failed to start producer services", "app_id", app.ID, "services", toStart, "error", err)
	}
}

func readArtifact(path string) (string, bool) {
	value, err := files.ReadTrimmed(path)
	if err != nil || value == "" {
		return "", false
	}
	return value, true
}
