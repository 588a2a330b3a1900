package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/getumbrel/umbrel-apps-sub001/internal/application"
	"github.com/getumbrel/umbrel-apps-sub001/internal/application/command/await_ready"
	"github.com/getumbrel/umbrel-apps-sub001/internal/application/command/install_app"
	"github.com/getumbrel/umbrel-apps-sub001/internal/application/command/resolve_app"
	"github.com/getumbrel/umbrel-apps-sub001/internal/application/command/resolve_apps"
	"github.com/getumbrel/umbrel-apps-sub001/internal/application/command/uninstall_app"
	"github.com/getumbrel/umbrel-apps-sub001/internal/application/config"
	"github.com/getumbrel/umbrel-apps-sub001/internal/application/query/get_app_env"
	"github.com/getumbrel/umbrel-apps-sub001/internal/application/query/get_apps_status"
	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/dto"
	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/model"
	"github.com/getumbrel/umbrel-apps-sub001/pkg/capabilities"
	"github.com/getumbrel/umbrel-apps-sub001/pkg/log"
	"github.com/getumbrel/umbrel-apps-sub001/pkg/version"
)

func main() {
	// Parse command line flags
	showVersion := flag.Bool("version", false, "Show version information")
	showHelp := flag.Bool("help", false, "Show help information")
	configPath := flag.String("config", "platform.config.json", "Path to configuration file")
	appID := flag.String("app", "", "App id the operation applies to")
	resolve := flag.Bool("resolve", false, "Resolve the app's environment and write its env file (requires --app)")
	resolveAll := flag.Bool("resolve-all", false, "Resolve every installed app in dependency order")
	await := flag.Bool("await", false, "Run the app's pre-start readiness hook (requires --app)")
	install := flag.Bool("install", false, "Install the app and resolve it for the first time (requires --app)")
	uninstall := flag.Bool("uninstall", false, "Uninstall the app and remove its data directory (requires --app)")
	status := flag.Bool("status", false, "Show the container status of every installed app")
	preflight := flag.Bool("preflight", false, "Check host capabilities the platform depends on")
	flag.Parse()

	// Show version if requested
	if *showVersion {
		fmt.Printf("appenv version: %s (#%d)\n", version.GetVersion(), version.GetNumericVersion())
		os.Exit(0)
	}

	if *showHelp {
		fmt.Println("appenv - environment resolution and readiness orchestration")
		fmt.Println("Usage: appenv [options]")
		fmt.Println("Options:")
		flag.PrintDefaults()
		os.Exit(0)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	log.Init(cfg.LogLevel)

	if *preflight {
		runPreflight(cfg)
		return
	}

	// Cancel in-flight work on SIGINT/SIGTERM; a killed readiness wait is
	// re-evaluated from scratch on the next invocation.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	runner, err := application.NewRunner(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to initialize runner", "error", err)
	}
	defer runner.Close()

	switch {
	case *resolveAll:
		if err := runner.CommandBus().Dispatch(resolve_apps.ResolveAppsCommand{}); err != nil {
			log.Fatal("Resolution pass failed", "error", err)
		}

	case *resolve:
		if err := runner.CommandBus().Dispatch(resolve_app.ResolveAppCommand{AppID: *appID}); err != nil {
			log.Fatal("App resolution failed", "app_id", *appID, "error", err)
		}
		printAppEnv(runner, *appID)

	case *await:
		if err := runner.CommandBus().Dispatch(await_ready.AwaitReadyCommand{AppID: *appID}); err != nil {
			log.Fatal("Readiness hook failed", "app_id", *appID, "error", err)
		}

	case *install:
		if err := runner.CommandBus().Dispatch(install_app.InstallAppCommand{AppID: *appID}); err != nil {
			log.Fatal("Install failed", "app_id", *appID, "error", err)
		}

	case *uninstall:
		if err := runner.CommandBus().Dispatch(uninstall_app.UninstallAppCommand{AppID: *appID}); err != nil {
			log.Fatal("Uninstall failed", "app_id", *appID, "error", err)
		}

	case *status:
		printStatus(runner)

	default:
		fmt.Println("No operation requested, see --help")
		os.Exit(1)
	}
}

// runPreflight probes host capabilities and reports them. Missing docker or
// compose makes the host unusable; missing tor or seed only disables the
// features depending on them.
func runPreflight(cfg *config.Config) {
	info := capabilities.GetSystemInfo()
	fmt.Printf("Host: %s/%s\n", info.OS, info.Arch)

	failed := false
	for _, capability := range capabilities.All(cfg.GetSeedPath()) {
		available := capability.IsAvailable()
		state := "ok"
		if !available {
			state = "missing"
			switch capability.Name() {
			case capabilities.CapabilityDocker, capabilities.CapabilityDockerCompose:
				failed = true
			}
		}
		fmt.Printf("  %-16s %-8s %s\n", capability.Name(), state, capability.Version())
		log.Debug("capability probed", "capability", capability.Name(), "available", available)
	}
	if failed {
		os.Exit(1)
	}
}

func printAppEnv(runner *application.Runner, appID string) {
	result, err := runner.QueryBus().Dispatch(get_app_env.GetAppEnvQuery{AppID: appID})
	if err != nil {
		log.Error("Failed to read resolved environment", "app_id", appID, "error", err)
		return
	}
	envResult, ok := result.(*dto.GetAppEnvResult)
	if !ok || envResult == nil {
		return
	}

	keys := make([]string, 0, len(envResult.Env))
	for key := range envResult.Env {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("%s=%s\n", key, envResult.Env[key])
	}
}

func printStatus(runner *application.Runner) {
	result, err := runner.QueryBus().Dispatch(get_apps_status.GetAppsStatusQuery{})
	if err != nil {
		log.Fatal("Failed to get apps status", "error", err)
	}
	statusResult, ok := result.(*model.GetAppsStatusResult)
	if !ok || statusResult == nil {
		log.Fatal("Unexpected apps status result")
	}
	for _, app := range statusResult.Apps {
		fmt.Printf("%-24s %s (%d containers)\n", app.ID, app.StatusCode, len(app.Containers))
	}
}
