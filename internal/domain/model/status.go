package model

// ContainerStatusCode classifies the runtime state of a single container.
type ContainerStatusCode int8

const (
	ContainerStatusUnknown     ContainerStatusCode = 0
	ContainerStatusActive      ContainerStatusCode = 1
	ContainerStatusIdle        ContainerStatusCode = 2
	ContainerStatusRestarting  ContainerStatusCode = 3
	ContainerStatusProblematic ContainerStatusCode = 4
	ContainerStatusStopped     ContainerStatusCode = 5
)

func (c ContainerStatusCode) String() string {
	switch c {
	case ContainerStatusActive:
		return "active"
	case ContainerStatusIdle:
		return "idle"
	case ContainerStatusRestarting:
		return "restarting"
	case ContainerStatusProblematic:
		return "problematic"
	case ContainerStatusStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// AppStatus aggregates the containers of one installed application.
type AppStatus struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	StatusCode ContainerStatusCode `json:"status_code"`
	Containers []Container         `json:"containers"`
}

// Container describes one container belonging to an application.
type Container struct {
	ID         string              `json:"id"`
	Service    string              `json:"service"`
	StatusCode ContainerStatusCode `json:"status_code"`
	ExitCode   int                 `json:"exit_code"`
	Error      string              `json:"error,omitempty"`
	Ports      []ContainerPort     `json:"ports,omitempty"`
}

// ContainerPort is a host-published port of a container.
type ContainerPort struct {
	Port     int    `json:"port"`
	Protocol string `json:"protocol"`
}

// GetAppStatusResult is the status of a single application.
type GetAppStatusResult struct {
	App *AppStatus
}

// GetAppsStatusResult is the status of all installed applications.
type GetAppsStatusResult struct {
	Apps []*AppStatus
}
