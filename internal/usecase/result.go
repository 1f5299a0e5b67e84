package usecase

import "github.com/example/product-service/internal/domain"

// Kind — закрытый набор исходов операции.
type Kind int

const (
	KindOk Kind = iota
	KindCreated
	KindNotFound
	KindBadRequest
	KindInternal
)

// Result — исход операции оркестратора. Поля закрыты: экземпляр строится
// только через конструкторы ниже, транспортный слой разбирает его
// исчерпывающим switch по Kind.
type Result struct {
	kind     Kind
	product  *domain.Product
	products []domain.Product
	message  string
	cause    error
}

// OK — успех с текстовым сообщением (update/delete/notify).
func OK(message string) Result {
	return Result{kind: KindOk, message: message}
}

// OKProduct — успех с одной сущностью.
func OKProduct(p domain.Product) Result {
	return Result{kind: KindOk, product: &p}
}

// OKList — успех со списком сущностей.
func OKList(list []domain.Product) Result {
	return Result{kind: KindOk, products: list}
}

// Created — успешное создание, несёт сущность с присвоенным id.
func Created(p domain.Product) Result {
	return Result{kind: KindCreated, product: &p}
}

// NotFound — сущности с таким id нет.
func NotFound(message string) Result {
	return Result{kind: KindNotFound, message: message}
}

// BadRequest — невалидный ввод либо рассогласование
// (запись была на проверке, но мутация не затронула строк).
func BadRequest(message string) Result {
	return Result{kind: KindBadRequest, message: message}
}

// Internal — сбой хранилища; причина остаётся для логов
// и никогда не уходит клиенту.
func Internal(cause error) Result {
	return Result{kind: KindInternal, cause: cause}
}

func (r Result) Kind() Kind { return r.kind }

func (r Result) Product() (domain.Product, bool) {
	if r.product == nil {
		return domain.Product{}, false
	}
	return *r.product, true
}

func (r Result) Products() ([]domain.Product, bool) {
	return r.products, r.products != nil
}

func (r Result) Message() string { return r.message }

func (r Result) Cause() error { return r.cause }
