package natsstan

import (
	stan "github.com/nats-io/stan.go"
	"github.com/sirupsen/logrus"

	"github.com/example/product-service/internal/domain"
)

// Publisher — fire-and-forget публикация в STAN. Подтверждение брокера
// приходит асинхронно; неподтверждённые публикации только логируются,
// исход запроса от них не зависит.
type Publisher struct {
	conn stan.Conn
	log  logrus.FieldLogger
}

func NewPublisher(clusterID, clientID, url string, log logrus.FieldLogger) (*Publisher, error) {
	sc, err := stan.Connect(clusterID, clientID, stan.NatsURL(url))
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: sc, log: log}, nil
}

func (p *Publisher) Publish(subject string, payload []byte) error {
	_, err := p.conn.PublishAsync(subject, payload, func(guid string, err error) {
		if err != nil {
			p.log.WithError(err).WithFields(logrus.Fields{
				"subject": subject,
				"guid":    guid,
			}).Error("event not acked")
		}
	})
	return err
}

func (p *Publisher) Close() error {
	return p.conn.Close()
}

var _ domain.EventPublisher = (*Publisher)(nil)
