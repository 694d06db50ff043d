package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"

	"user-hobbies/internal/bootstrap"
	"user-hobbies/internal/config"
	"user-hobbies/internal/service"
	"user-hobbies/internal/snapshot"
	"user-hobbies/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	logger := bootstrap.NewLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatalf("snapshot: %v", err)
	}
}

func run(ctx context.Context, cfg config.Config, logger *logrus.Logger) error {
	storageSvc, err := buildStorage(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("setup storage: %w", err)
	}

	store, err := bootstrap.OpenStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logger.Warnf("close store: %v", err)
		}
	}()

	exporter := snapshot.NewExporter(snapshot.Services{
		Users:   service.NewUserService(store.Users, store.Hobbies),
		Hobbies: service.NewHobbyService(store.Users, store.Hobbies, store.Tx),
	}, storageSvc, snapshot.Options{
		Bucket:    cfg.Snapshot.Bucket,
		KeyPrefix: cfg.Snapshot.KeyPrefix,
		Keep:      cfg.Snapshot.Keep,
		Logger:    logger,
	})

	location, err := exporter.Export(ctx)
	if err != nil {
		return err
	}
	logger.Infof("snapshot written to %s", location)
	return nil
}

func buildStorage(ctx context.Context, cfg config.Config, logger *logrus.Logger) (storage.Service, error) {
	if cfg.Snapshot.Bucket == "" {
		return nil, fmt.Errorf("snapshot bucket is required")
	}

	loadOpts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(cfg.Snapshot.Region),
	}
	if cfg.AWS.Profile != "" {
		loadOpts = append(loadOpts, awscfg.WithSharedConfigProfile(cfg.AWS.Profile))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Snapshot.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Snapshot.Endpoint)
			o.UsePathStyle = true
		}
	})
	logger.Infof("using s3 bucket %s (region %s)", cfg.Snapshot.Bucket, cfg.Snapshot.Region)
	return storage.NewS3Service(client), nil
}
