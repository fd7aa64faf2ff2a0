package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yogu-code/portfolio/internal/analytics"
	"github.com/yogu-code/portfolio/internal/config"
	"github.com/yogu-code/portfolio/internal/contact"
	"github.com/yogu-code/portfolio/internal/logging"
	"github.com/yogu-code/portfolio/internal/portfolio"
	"github.com/yogu-code/portfolio/internal/site"
)

const retentionInterval = 24 * time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	log := logging.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)
	gin.SetMode(cfg.GinMode)

	if err := run(cfg, log); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func run(cfg *config.Config, log *logrus.Entry) error {
	catalog, err := portfolio.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"catalog":  cfg.CatalogPath,
		"projects": len(catalog.Projects),
	}).Info("catalog loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hasher, err := analytics.NewHasher()
	if err != nil {
		return err
	}

	opts := site.Options{
		Catalog:   catalog,
		Hasher:    hasher,
		Retention: cfg.Analytics.Retention,
		Log:       log,
	}
	if cfg.SMTP.User != "" {
		opts.Mailer = contact.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Pass, cfg.SMTP.To)
	} else {
		log.Warn("SMTP_USER not set, contact form disabled")
	}

	if cfg.AnalyticsEnabled() {
		store, err := analytics.Open(cfg.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		tracker := analytics.NewTracker(store, hasher, log)
		defer tracker.Wait()

		opts.Store = store
		opts.Tracker = tracker
		go analytics.RunRetention(ctx, store, cfg.Analytics.Retention, retentionInterval, log)
		log.WithField("db", cfg.DBPath).Info("visitor tracking enabled with hashed IP addresses")

		if cfg.AdminEnabled() {
			opts.Admin = site.AdminCredentials{Username: cfg.Admin.Username, Password: cfg.Admin.Password}
			log.Info("admin access available at /admin/login")
		}
	}

	srv, err := site.New(opts)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.Addr()).Info("listening")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
