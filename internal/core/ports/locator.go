package ports

// ToolLocator finds the carthage executable on the host.
//
//go:generate go run go.uber.org/mock/mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type ToolLocator interface {
	// Locate returns the absolute path of the executable. It tries the
	// standard search path first, then a fixed fallback location, and
	// returns domain.ErrToolNotFound when both fail.
	Locate() (string, error)
}
