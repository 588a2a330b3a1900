package repository

import (
	"github.com/getumbrel/umbrel-apps-sub001/internal/domain/model"
)

// NetworkRepository manages the container networks the platform owns.
type NetworkRepository interface {
	GetNetworks() ([]model.Network, error)

	CreateNetwork(network model.Network) error

	DeleteNetwork(name string) error

	// EnsureNetwork creates the network only when it does not exist yet.
	EnsureNetwork(network model.Network) error
}
