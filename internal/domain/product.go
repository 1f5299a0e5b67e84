package domain

import "strings"

// Product — доменная сущность товара. ID присваивается хранилищем при
// создании и остаётся пустым (null на проводе) до вставки.
type Product struct {
	ID   *int64 `json:"id"`
	Name string `json:"name"`
}

// WithID возвращает копию товара с присвоенным идентификатором.
func (p Product) WithID(id int64) Product {
	p.ID = &id
	return p
}

// ValidName — true, если имя непустое после обрезки пробелов.
// Чистый предикат, используется и для сообщений, и перед созданием.
func ValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}
