package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/example/product-service/internal/adapter/httpapi"
	"github.com/example/product-service/internal/adapter/natsstan"
	"github.com/example/product-service/internal/adapter/repo"
	"github.com/example/product-service/internal/config"
	"github.com/example/product-service/internal/usecase"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Parse()
	if err != nil {
		log.WithError(err).Fatal("config")
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("db connect")
	}
	defer pool.Close()

	if err := repo.EnsureSchema(ctx, pool); err != nil {
		log.WithError(err).Fatal("init schema")
	}
	products := repo.NewPostgresProductRepo(pool)

	clientID := cfg.StanClientID
	if clientID == "" {
		clientID = fmt.Sprintf("product-svc-%d", time.Now().UnixNano())
	}
	pub, err := natsstan.NewPublisher(cfg.StanClusterID, clientID, cfg.NATSURL, log)
	if err != nil {
		log.WithError(err).Fatal("stan connect")
	}
	defer pub.Close()

	srv := httpapi.NewServer(httpapi.Usecases{
		List:          usecase.ListProducts{Repo: products, Log: log},
		Get:           usecase.GetProductByID{Repo: products, Log: log},
		NotifyName:    usecase.NotifyProductName{Pub: pub, Subject: cfg.SubjectName, Log: log},
		NotifyProduct: usecase.NotifyProduct{Pub: pub, Subject: cfg.SubjectProduct, Log: log},
		Create:        usecase.CreateProduct{Repo: products, Pub: pub, Subject: cfg.SubjectProduct, Log: log},
		Update:        usecase.UpdateProduct{Repo: products, Log: log},
		Delete:        usecase.DeleteProduct{Repo: products, Log: log},
	})

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.WithField("addr", cfg.HTTPAddr).Info("http listening")
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("http")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	_ = httpSrv.Shutdown(shutdownCtx)
}
