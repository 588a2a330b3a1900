package network

import (
	"context"
	"fmt"
	"sync"

	networktypes "github.com/docker/docker/api/types/network"
	"github.com/docker/docker/client"

	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/model"
	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/repository"
	"github.com/getumbrel/umbrel-apps-sub001/pkg/log"
)

// dockerNetworkRepository provides thread-safe methods for managing Docker networks using a Docker client.
type dockerNetworkRepository struct {
	client *client.Client
	mu     sync.RWMutex
}

// Compile-time assertion that *dockerNetworkRepository implements the interface.
var _ repository.NetworkRepository = (*dockerNetworkRepository)(nil)

// NewDockerNetworkRepository creates a new NetworkRepository using the provided Docker client.
// Logs a fatal error and exits the program if the Docker client is nil.
func NewDockerNetworkRepository(dockerClient *client.Client) repository.NetworkRepository {
	if dockerClient == nil {
		log.Fatal("[Network] docker client is nil, repository cannot be created")
	}
	return &dockerNetworkRepository{client: dockerClient}
}

func (r *dockerNetworkRepository) GetNetworks() ([]model.Network, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ctx := context.Background()
	dockerNetworks, err := r.client.NetworkList(ctx, networktypes.ListOptions{})
	if err != nil {
		log.Error("[Network] failed to list networks", "error", err)
		return nil, fmt.Errorf("list networks: %w", err)
	}

	networks := make([]model.Network, 0, len(dockerNetworks))
	for _, dn := range dockerNetworks {
		network := model.Network{Name: dn.Name}
		if len(dn.IPAM.Config) > 0 {
			network.Subnet = dn.IPAM.Config[0].Subnet
		}
		networks = append(networks, network)
	}

	return networks, nil
}

func (r *dockerNetworkRepository) CreateNetwork(network model.Network) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	options := networktypes.CreateOptions{Driver: "bridge"}
	if network.Subnet != "" {
		options.IPAM = &networktypes.IPAM{
			Config: []networktypes.IPAMConfig{{Subnet: network.Subnet}},
		}
	}

	ctx := context.Background()
	_, err := r.client.NetworkCreate(ctx, network.Name, options)
	if err != nil {
		log.Error("[Network] failed to create network", "network_name", network.Name, "error", err)
		return fmt.Errorf("create network: %w", err)
	}

	log.Info("[Network] network created", "network_name", network.Name, "subnet", network.Subnet)
	return nil
}

func (r *dockerNetworkRepository) DeleteNetwork(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ctx := context.Background()
	if err := r.client.NetworkRemove(ctx, name); err != nil {
		log.Error("[Network] failed to remove network", "network_name", name, "error", err)
		return fmt.Errorf("remove network: %w", err)
	}

	log.Info("[Network] network removed", "network_name", name)
	return nil
}

// EnsureNetwork creates the network only when no network with that name
// exists yet. Statically-assigned app addresses rely on its subnet.
func (r *dockerNetworkRepository) EnsureNetwork(network model.Network) error {
	networks, err := r.GetNetworks()
	if err != nil {
		return err
	}
	for _, existing := range networks {
		if existing.Name == network.Name {
			log.Debug("[Network] network already exists", "network_name", network.Name)
			return nil
		}
	}
	return r.CreateNetwork(network)
}
