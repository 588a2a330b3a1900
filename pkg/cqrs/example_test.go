package cqrs_test

import (
	"context"
	"fmt"

	"github.com/getumbrel/umbrel-apps-sub001/pkg/cqrs"
)

// RefreshEnvCommand asks for one app's environment to be recomputed.
type RefreshEnvCommand struct {
	AppID string
}

func (c RefreshEnvCommand) Name() string {
	return "RefreshEnv"
}

// RefreshEnvHandler handles RefreshEnvCommand.
type RefreshEnvHandler struct{}

func (h *RefreshEnvHandler) Handle(cmd RefreshEnvCommand) error {
	fmt.Printf("refreshing environment for %s\n", cmd.AppID)
	return nil
}

// GetEnvQuery asks for one app's resolved environment.
type GetEnvQuery struct {
	AppID string
}

func (q GetEnvQuery) Name() string {
	return "GetEnv"
}

// GetEnvHandler handles GetEnvQuery.
type GetEnvHandler struct{}

func (h *GetEnvHandler) Handle(query GetEnvQuery) (map[string]string, error) {
	return map[string]string{"APP_DEMO_IP": "10.21.22.2"}, nil
}

func Example() {
	ctx := context.Background()

	commandBus := cqrs.NewCommandBus(ctx)
	if err := commandBus.Register(&RefreshEnvHandler{}); err != nil {
		fmt.Println("register:", err)
		return
	}
	if err := commandBus.Dispatch(RefreshEnvCommand{AppID: "demo"}); err != nil {
		fmt.Println("dispatch:", err)
		return
	}

	queryBus := cqrs.NewQueryBus(ctx)
	if err := queryBus.Register(&GetEnvHandler{}); err != nil {
		fmt.Println("register:", err)
		return
	}
	result, err := queryBus.Dispatch(GetEnvQuery{AppID: "demo"})
	if err != nil {
		fmt.Println("dispatch:", err)
		return
	}
	fmt.Println(result.(map[string]string)["APP_DEMO_IP"])

	// Output:
	// refreshing environment for demo
	// 10.21.22.2
}
