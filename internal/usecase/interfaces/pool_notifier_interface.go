package interfaces

import "vaquinha/internal/domain/entities"

//go:generate mockgen -source=pool_notifier_interface.go -destination=mocks/mock_pool_notifier_interface.go -package=mock_interfaces

// IPoolNotifier pushes pool snapshots to live subscribers. Best effort.
type IPoolNotifier interface {
	PublishPool(pool entities.Pool)
}
