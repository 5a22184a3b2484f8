package domain

import "context"

// OrderRepository — порт персистентности снимков заказов.
type OrderRepository interface {
	Upsert(ctx context.Context, id string, raw []byte) error
	// Get возвращает свежий авторитетный снимок; неизвестный
	// идентификатор — ErrNotFound.
	Get(ctx context.Context, id string) (Order, error)
	LoadAll(ctx context.Context, fn func(id string, raw []byte) error) error
}

// OrderCache — порт быстрого доступа к заказам (кэш).
type OrderCache interface {
	Get(id string) (Order, bool)
	Set(id string, o Order)
	All() []Order
}

// VendorDirectory — порт справочника назначений сотрудник→поставщик.
type VendorDirectory interface {
	// VendorFor возвращает поставщика сотрудника; пустая строка —
	// назначения нет (администратор), это не ошибка.
	VendorFor(ctx context.Context, email string) (string, error)
}

// RefundSink — порт внешней границы проведения возвратов.
type RefundSink interface {
	Submit(ctx context.Context, commit RefundCommit) (RefundReceipt, error)
}

// MessageSubscriber — порт подписчика на ленту событий заказов.
type MessageSubscriber interface {
	// Subscribe регистрирует обработчик; ack/повторные доставки реализует адаптер.
	Subscribe(ctx context.Context, handler func(ctx context.Context, raw []byte) error) error
}
