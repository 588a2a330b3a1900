package application

import (
	"context"

	"github.com/getumbrel/umbrel-apps-sub001/internal/application/command"
	"github.com/getumbrel/umbrel-apps-sub001/internal/application/config"
	"github.com/getumbrel/umbrel-apps-sub001/internal/application/query"
	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/service/registry"
	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/service/resolver"
	"github.com/getumbrel/umbrel-apps-sub001/pkg/cqrs"
	"github.com/getumbrel/umbrel-apps-sub001/pkg/log"
)

// Runner wires the platform services together and exposes the command and
// query buses the CLI dispatches into. One Runner corresponds to one process
// invocation; the registry it holds is the write-once-per-boot store.
type Runner struct {
	config     *config.Config
	registry   *registry.Registry
	commandBus cqrs.CommandBus
	queryBus   cqrs.QueryBus
}

// NewRunner builds the full dependency graph for one invocation.
func NewRunner(ctx context.Context, cfg *config.Config) (*Runner, error) {
	reg := registry.NewRegistry()
	res := resolver.NewResolver(cfg, reg)

	store := NewAppStore(cfg)
	runtime := NewAppRuntime(cfg)
	networks := NewNetworkRepository()

	commandBus := cqrs.NewCommandBus(ctx)
	if err := command.RegisterCommandHandlers(commandBus, cfg, store, runtime, networks, res); err != nil {
		return nil, err
	}

	queryBus := cqrs.NewQueryBus(ctx)
	if err := query.RegisterQueryHandlers(queryBus, store, runtime); err != nil {
		return nil, err
	}

	return &Runner{
		config:     cfg,
		registry:   reg,
		commandBus: commandBus,
		queryBus:   queryBus,
	}, nil
}

// CommandBus returns the bus commands are dispatched into.
func (r *Runner) CommandBus() cqrs.CommandBus {
	return r.commandBus
}

// QueryBus returns the bus queries are dispatched into.
func (r *Runner) QueryBus() cqrs.QueryBus {
	return r.queryBus
}

// Close shuts both buses down and waits for in-flight work.
func (r *Runner) Close() {
	r.commandBus.Shutdown()
	r.queryBus.Shutdown()
	r.commandBus.WaitForCompletion()
	r.queryBus.WaitForCompletion()
	log.Debug("runner closed")
}
