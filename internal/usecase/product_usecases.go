package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/example/product-service/internal/domain"
)

// ListProducts — получить все товары из хранилища.
type ListProducts struct {
	Repo domain.ProductRepository
	Log  logrus.FieldLogger
}

func (uc ListProducts) Execute(ctx context.Context) Result {
	products, err := uc.Repo.List(ctx)
	if err != nil {
		uc.Log.WithError(err).Error("list products")
		return Internal(err)
	}
	if products == nil {
		products = []domain.Product{}
	}
	return OKList(products)
}

// GetProductByID — получить товар по идентификатору.
type GetProductByID struct {
	Repo domain.ProductRepository
	Log  logrus.FieldLogger
}

func (uc GetProductByID) Execute(ctx context.Context, id int64) Result {
	p, ok, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		uc.Log.WithError(err).WithField("id", id).Error("find product")
		return Internal(err)
	}
	if !ok {
		return NotFound(fmt.Sprintf("product %d not found", id))
	}
	return OKProduct(p)
}

// NotifyProductName — отправить в топик сообщение с именем товара,
// без какой-либо персистентности.
type NotifyProductName struct {
	Pub     domain.EventPublisher
	Subject string
	Log     logrus.FieldLogger
}

func (uc NotifyProductName) Execute(name string) Result {
	if !domain.ValidName(name) {
		return BadRequest("invalid product name")
	}
	uc.Log.WithField("subject", uc.Subject).Info("sending product name message")
	if err := uc.Pub.Publish(uc.Subject, []byte(name)); err != nil {
		// сбой публикации поглощается, исход операции не меняется
		uc.Log.WithError(err).WithField("subject", uc.Subject).Error("publish product name")
	}
	return OK(fmt.Sprintf("message sent for product: %s", name))
}

// NotifyProduct — отправить в топик сообщение с товаром целиком (JSON).
type NotifyProduct struct {
	Pub     domain.EventPublisher
	Subject string
	Log     logrus.FieldLogger
}

func (uc NotifyProduct) Execute(p *domain.Product) Result {
	if p == nil || !domain.ValidName(p.Name) {
		return BadRequest("invalid product name")
	}
	publishProduct(uc.Pub, uc.Log, uc.Subject, *p)
	return OK(fmt.Sprintf("message sent for product: %s", p.Name))
}

// CreateProduct — создать товар: валидация, уведомление о запросе на
// создание, вставка, уведомление о созданном товаре. Уведомление о запросе
// уходит до вставки и не отзывается, если вставка затем не удалась:
// оно означает «создание запрошено», а не «создание состоялось».
type CreateProduct struct {
	Repo    domain.ProductRepository
	Pub     domain.EventPublisher
	Subject string
	Log     logrus.FieldLogger
}

func (uc CreateProduct) Execute(ctx context.Context, p *domain.Product) Result {
	if p == nil || !domain.ValidName(p.Name) {
		return BadRequest("invalid product name")
	}
	uc.Log.WithField("name", p.Name).Info("create product requested")

	publishProduct(uc.Pub, uc.Log, uc.Subject, *p)

	stored, ok, err := uc.Repo.Insert(ctx, domain.Product{Name: p.Name})
	if err != nil {
		uc.Log.WithError(err).WithField("name", p.Name).Error("insert product")
		return Internal(err)
	}
	if !ok {
		err := errors.New("insert affected no rows")
		uc.Log.WithError(err).WithField("name", p.Name).Error("insert product")
		return Internal(err)
	}

	publishProduct(uc.Pub, uc.Log, uc.Subject, stored)
	return Created(stored)
}

// UpdateProduct — заменить товар по id. Пустой исход мутации после
// успешной проверки существования — рассогласование (BadRequest),
// намеренно отличимое от NotFound.
type UpdateProduct struct {
	Repo domain.ProductRepository
	Log  logrus.FieldLogger
}

func (uc UpdateProduct) Execute(ctx context.Context, id int64, p *domain.Product) Result {
	if p == nil || !domain.ValidName(p.Name) {
		return BadRequest("invalid product name")
	}
	_, ok, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		uc.Log.WithError(err).WithField("id", id).Error("find product")
		return Internal(err)
	}
	if !ok {
		return NotFound(fmt.Sprintf("product %d not found", id))
	}
	updated, err := uc.Repo.UpdateByID(ctx, id, domain.Product{Name: p.Name})
	if err != nil {
		uc.Log.WithError(err).WithField("id", id).Error("update product")
		return Internal(err)
	}
	if !updated {
		return BadRequest("update did not affect any row")
	}
	return OK(fmt.Sprintf("product %d updated", id))
}

// DeleteProduct — удалить товар по id. Семантика рассогласования
// такая же, как у UpdateProduct.
type DeleteProduct struct {
	Repo domain.ProductRepository
	Log  logrus.FieldLogger
}

func (uc DeleteProduct) Execute(ctx context.Context, id int64) Result {
	_, ok, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		uc.Log.WithError(err).WithField("id", id).Error("find product")
		return Internal(err)
	}
	if !ok {
		return NotFound(fmt.Sprintf("product %d not found", id))
	}
	deleted, err := uc.Repo.DeleteByID(ctx, id)
	if err != nil {
		uc.Log.WithError(err).WithField("id", id).Error("delete product")
		return Internal(err)
	}
	if !deleted {
		return BadRequest("delete did not affect any row")
	}
	return OK(fmt.Sprintf("product %d deleted", id))
}

// publishProduct сериализует товар и отправляет его в топик. Ошибки
// сериализации и публикации логируются и не влияют на исход вызывающего.
func publishProduct(pub domain.EventPublisher, log logrus.FieldLogger, subject string, p domain.Product) {
	payload, err := json.Marshal(p)
	if err != nil {
		log.WithError(err).WithField("subject", subject).Error("marshal product message")
		return
	}
	log.WithField("subject", subject).Info("sending product message")
	if err := pub.Publish(subject, payload); err != nil {
		log.WithError(err).WithField("subject", subject).Error("publish product message")
	}
}
