package server

import (
	"context"
	"fmt"

	"shop-catalog-api/internal/auth"
	"shop-catalog-api/internal/catalog"
	"shop-catalog-api/internal/config"
	"shop-catalog-api/internal/handlers"
	"shop-catalog-api/internal/importer"
	"shop-catalog-api/internal/repositories"
	"shop-catalog-api/internal/repositories/dynamo"
	"shop-catalog-api/internal/services"
	"shop-catalog-api/internal/storage"
	"shop-catalog-api/pkg/lambda"
)

// Container wires configuration, AWS clients, repositories, services and
// handlers together. Both deployments build one: cmd/server at startup, the
// Lambda entrypoints in init().
type Container struct {
	Config  *config.Config
	Clients *lambda.ClientManager

	Repos   *repositories.RepositoryContainer
	Storage storage.ObjectStorage

	Services   *services.ServiceContainer
	Authorizer *auth.Authorizer

	ProductHandler *handlers.ProductHandler
	ImportHandler  *handlers.ImportHandler

	Importer *importer.Importer
	Writer   *catalog.Writer
	Notifier *catalog.Notifier
}

// NewContainer builds the full dependency graph from the environment.
func NewContainer(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewContainerWithConfig(ctx, cfg)
}

// NewContainerWithConfig builds the dependency graph over an already loaded
// configuration. Lambda entrypoints use this after adapting the config for
// serverless mode.
func NewContainerWithConfig(ctx context.Context, cfg *config.Config) (*Container, error) {
	clients, err := lambda.NewClientManager(ctx, cfg.AWS.Region)
	if err != nil {
		return nil, err
	}

	repos := &repositories.RepositoryContainer{
		ProductRepo:   dynamo.NewProductRepository(clients.DynamoDB, cfg.AWS.ProductTableName),
		StockRepo:     dynamo.NewStockRepository(clients.DynamoDB, cfg.AWS.StockTableName),
		CatalogWriter: dynamo.NewCatalogWriter(clients.DynamoDB, cfg.AWS.ProductTableName, cfg.AWS.StockTableName),
	}

	store := storage.NewS3Storage(clients.S3, clients.Presign, cfg.AWS.ImportBucket)

	svcs := services.NewServiceContainer(repos, store, &services.ServiceConfig{
		UploadPrefix:  cfg.Import.UploadPrefix,
		PresignExpiry: cfg.Import.PresignExpiry,
	})

	dispatcher := importer.NewDispatcher(clients.SQS, cfg.AWS.QueueURL)

	return &Container{
		Config:         cfg,
		Clients:        clients,
		Repos:          repos,
		Storage:        store,
		Services:       svcs,
		Authorizer:     auth.NewAuthorizer(cfg.Auth.Credentials),
		ProductHandler: handlers.NewProductHandler(svcs.ProductService),
		ImportHandler:  handlers.NewImportHandler(svcs.ImportService),
		Importer:       importer.NewImporter(store, dispatcher, cfg.Import.UploadPrefix, cfg.Import.ParsedPrefix),
		Writer:         catalog.NewWriter(repos.CatalogWriter, cfg.Import.MaxBatchSize),
		Notifier:       catalog.NewNotifier(clients.SNS, cfg.AWS.TopicARN),
	}, nil
}
