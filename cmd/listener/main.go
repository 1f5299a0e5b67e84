package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/example/product-service/internal/adapter/natsstan"
	"github.com/example/product-service/internal/config"
	"github.com/example/product-service/internal/domain"
)

// Слушатель топиков товаров: логирует каждое входящее сообщение.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Parse()
	if err != nil {
		log.WithError(err).Fatal("config")
	}

	for i, subject := range []string{cfg.SubjectName, cfg.SubjectProduct} {
		var sub domain.MessageSubscriber = &natsstan.Subscriber{
			ClusterID: cfg.StanClusterID,
			ClientID:  fmt.Sprintf("product-listener-%d-%d", i, time.Now().UnixNano()),
			URL:       cfg.NATSURL,
			Subject:   subject,
			Durable:   fmt.Sprintf("%s-%d", cfg.Durable, i),
			Log:       log,
		}
		entry := log.WithField("subject", subject)
		if err := sub.Subscribe(ctx, func(_ context.Context, raw []byte) error {
			entry.WithField("payload", string(raw)).Info("message received")
			return nil
		}); err != nil {
			log.WithError(err).WithField("subject", subject).Fatal("subscribe")
		}
		entry.Info("listening")
	}

	<-ctx.Done()
}
