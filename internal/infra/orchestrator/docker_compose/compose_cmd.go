package docker_compose

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/model"
	"github.com/getumbrel/umbrel-apps-sub001/pkg/backoff"
	"github.com/getumbrel/umbrel-apps-sub001/pkg/files"
	"github.com/getumbrel/umbrel-apps-sub001/pkg/log"
)

// startAttempts bounds retries of a start command. During early boot the
// docker daemon may still be coming up; a couple of paced retries smooth
// that over without hiding real failures.
const startAttempts = 3

// StartServices starts the named services of the app detached without their
// declared dependencies. This is the launcher primitive the readiness
// barrier relies on to bring up artifact producers out of band.
func (r *composeRepository) StartServices(ctx context.Context, app *model.App, services []string) error {
	if len(services) == 0 {
		return nil
	}

	composeFiles, err := r.detectComposeFiles(app.Dir)
	if err != nil {
		return err
	}

	args := make([]string, 0, 8+len(services))
	if files.Exists(filepath.Join(app.Dir, model.EnvFilename)) {
		args = append(args, "--env-file", model.EnvFilename)
	}
	args = append(args, buildComposeFileArgs(composeFiles)...)
	args = append(args, "up", "--detach", "--no-deps")
	args = append(args, services...)

	return r.runDockerCompose(ctx, app.Dir, args...)
}

// detectComposeFiles decides which compose files describe the app. An
// optional override file is layered on top of the base file when present.
func (r *composeRepository) detectComposeFiles(appDir string) ([]string, error) {
	compose := filepath.Join(appDir, "docker-compose.yml")
	override := filepath.Join(appDir, "docker-compose.override.yml")

	switch {
	case files.Exists(compose) && files.Exists(override):
		return []string{compose, override}, nil
	case files.Exists(compose):
		// With a single canonical file docker detects it on its own.
		return nil, nil
	default:
		return nil, fmt.Errorf("no compose file found in %s", appDir)
	}
}

// buildComposeFileArgs converts a file list into `-f file` CLI arguments.
func buildComposeFileArgs(composeFiles []string) []string {
	var args []string
	for _, f := range composeFiles {
		args = append(args, "-f", filepath.Base(f))
	}
	return args
}

// runDockerCompose executes `docker compose` with the given args in dir,
// retrying transient failures with exponential pacing.
func (r *composeRepository) runDockerCompose(ctx context.Context, dir string, args ...string) error {
	fullCmd := append([]string{"compose"}, args...)

	retry := backoff.New(time.Second, 10*time.Second)
	var lastErr error
	for attempt := 1; attempt <= startAttempts; attempt++ {
		cmd := exec.CommandContext(ctx, "docker", fullCmd...)
		cmd.Dir = dir
		output, err := cmd.CombinedOutput()
		if err == nil {
			log.Debug("docker compose executed", "dir", dir, "args", fullCmd, "output", string(output))
			return nil
		}

		lastErr = fmt.Errorf("docker compose %v failed: %w", args, err)
		log.Warn("docker compose command failed",
			"dir", dir, "args", fullCmd, "attempt", attempt, "output", string(output), "error", err)
		if attempt == startAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retry.Next()):
		}
	}
	return lastErr
}
