package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"filesmanager/internal/auth"
	"filesmanager/internal/cache"
	"filesmanager/internal/config"
	"filesmanager/internal/db"
	"filesmanager/internal/queue"
	"filesmanager/internal/repository"
	"filesmanager/internal/service"
	"filesmanager/internal/storage"
)

const closeTimeout = 5 * time.Second

// App owns every long-lived dependency of the binaries.
type App struct {
	Cfg     *config.Config
	Store   *repository.Store
	Cache   *cache.Client
	Storage storage.Storage
	Queue   *queue.Client

	AuthService service.AuthService
	UserService service.UserService
	FileService service.FileService
	AppService  service.AppService
}

// New connects the metadata store, Redis, blob storage and the job queue.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize metadata store: %w", err)
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close(ctx)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	fileStorage, err := storage.New(ctx, storage.Config{
		Type:        storage.Type(cfg.StorageType),
		LocalPath:   cfg.FolderPath,
		S3Bucket:    cfg.S3Bucket,
		S3Region:    cfg.S3Region,
		S3Endpoint:  cfg.S3Endpoint,
		S3AccessKey: cfg.S3AccessKey,
		S3SecretKey: cfg.S3SecretKey,
	})
	if err != nil {
		_ = store.Close(ctx)
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	queueClient := queue.NewClient(queue.RedisOpt(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB))

	tokenStore := auth.NewTokenStore(cacheClient)

	return &App{
		Cfg:     cfg,
		Store:   store,
		Cache:   cacheClient,
		Storage: fileStorage,
		Queue:   queueClient,

		AuthService: service.NewAuthService(store.Users, tokenStore, cfg.SessionTTL),
		UserService: service.NewUserService(store.Users, cacheClient),
		FileService: service.NewFileService(store.Files, fileStorage, queueClient),
		AppService:  service.NewAppService(cacheClient, store, store.Users, store.Files),
	}, nil
}

func openStore(ctx context.Context, cfg *config.Config) (*repository.Store, error) {
	switch cfg.DBDriver {
	case "mongodb", "":
		client, err := db.NewMongo(ctx, cfg.MongoURI())
		if err != nil {
			return nil, err
		}
		return repository.NewMongoStore(client, cfg.DBDatabase), nil
	case "mysql":
		gormDB, err := db.NewMySQL(cfg.MySQLDSN)
		if err != nil {
			return nil, err
		}
		return repository.NewGormStore(gormDB), nil
	case "sqlite":
		gormDB, err := db.NewSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return repository.NewGormStore(gormDB), nil
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}
}

// Close releases all connections.
func (a *App) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	var errs []error
	if err := a.Queue.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close queue: %w", err))
	}
	if err := a.Cache.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close cache: %w", err))
	}
	if err := a.Store.Close(ctx); err != nil {
		errs = append(errs, fmt.Errorf("close store: %w", err))
	}
	return errors.Join(errs...)
}
