package repository

// AppRuntime combines service launching and container status queries into a
// single contract.
//
// It is a thin composition of Launcher (start commands) and
// ContainerStatusRepository (runtime status queries). Any implementation that
// provides both underlying interfaces automatically satisfies AppRuntime, so
// the application layer can depend on one type while infrastructure keeps the
// two concerns in separate method sets.
type AppRuntime interface {
	Launcher
	ContainerStatusRepository
}
