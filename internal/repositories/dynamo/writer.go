package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"shop-catalog-api/internal/models"
	"shop-catalog-api/internal/repositories"
)

// catalogWriter implements repositories.CatalogWriter with a single
// TransactWriteItems call covering both tables.
type catalogWriter struct {
	client           TransactWriteAPI
	productTableName string
	stockTableName   string
}

// NewCatalogWriter creates the transactional product+stock pair writer
func NewCatalogWriter(client TransactWriteAPI, productTableName, stockTableName string) repositories.CatalogWriter {
	return &catalogWriter{
		client:           client,
		productTableName: productTableName,
		stockTableName:   stockTableName,
	}
}

// CreatePair writes the product and its stock record in one transaction.
// The write is all-or-nothing: a failure leaves neither record behind.
func (w *catalogWriter) CreatePair(ctx context.Context, product *models.Product, stock *models.Stock) error {
	if err := product.Validate(); err != nil {
		return repositories.NewRepositoryError("create_pair", "product", product.ID, err)
	}
	if err := stock.Validate(); err != nil {
		return repositories.NewRepositoryError("create_pair", "stock", stock.ProductID, err)
	}
	if stock.ProductID != product.ID {
		return repositories.NewRepositoryError("create_pair", "stock", stock.ProductID,
			fmt.Errorf("stock product_id %s does not match product id %s", stock.ProductID, product.ID))
	}

	productItem, err := attributevalue.MarshalMap(product)
	if err != nil {
		return fmt.Errorf("failed to marshal product: %w", err)
	}
	stockItem, err := attributevalue.MarshalMap(stock)
	if err != nil {
		return fmt.Errorf("failed to marshal stock: %w", err)
	}

	_, err = w.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName: aws.String(w.productTableName),
					Item:      productItem,
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(w.stockTableName),
					Item:      stockItem,
				},
			},
		},
	})
	if err != nil {
		return repositories.TransactionError("create_pair", err)
	}

	return nil
}
