package domain

import "context"

// ProductRepository — порт для операций персистентности товаров.
// Отсутствие записи — нормальный исход (ok=false), а не ошибка;
// ошибка означает сбой самого хранилища.
type ProductRepository interface {
	List(ctx context.Context) ([]Product, error)
	FindByID(ctx context.Context, id int64) (Product, bool, error)
	// Insert присваивает новый id и возвращает сохранённый товар;
	// ok=false — вставка не затронула ни одной строки.
	Insert(ctx context.Context, p Product) (Product, bool, error)
	UpdateByID(ctx context.Context, id int64, p Product) (bool, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

// EventPublisher — порт отправки сообщения во внешний топик.
// Fire-and-forget: вызывающий не ждёт подтверждения брокера.
type EventPublisher interface {
	Publish(subject string, payload []byte) error
}

// MessageSubscriber — порт подписчика на входящие сообщения топика.
type MessageSubscriber interface {
	// Subscribe регистрирует обработчик; ack/повторные доставки реализует адаптер.
	Subscribe(ctx context.Context, handler func(ctx context.Context, raw []byte) error) error
}
