package model

// Network describes a container network the platform manages. Apps export
// statically-assigned addresses inside its subnet.
type Network struct {
	Name   string
	Subnet string
}
