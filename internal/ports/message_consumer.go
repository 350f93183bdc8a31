package ports

import "context"

// MessageConsumer — фоновый приёмник сообщений (киоски самообслуживания).
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
