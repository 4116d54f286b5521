package ports

import "github.com/LowByteFox/novagrep/internal/domain"

// ConfigLoader loads user settings.
type ConfigLoader interface {
	LoadConfig(path string) (domain.Config, error)
}
