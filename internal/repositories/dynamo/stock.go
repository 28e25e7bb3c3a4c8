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

// stockRepository implements repositories.StockRepository over DynamoDB
type stockRepository struct {
	client    TableAPI
	tableName string
}

// NewStockRepository creates a stock repository backed by the given table
func NewStockRepository(client TableAPI, tableName string) repositories.StockRepository {
	return &stockRepository{
		client:    client,
		tableName: tableName,
	}
}

// Create stores a new stock record
func (r *stockRepository) Create(ctx context.Context, stock *models.Stock) error {
	if err := stock.Validate(); err != nil {
		return repositories.NewRepositoryError("create", "stock", stock.ProductID, err)
	}

	item, err := attributevalue.MarshalMap(stock)
	if err != nil {
		return fmt.Errorf("failed to marshal stock: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		return repositories.NewRepositoryError("create", "stock", stock.ProductID, err)
	}

	return nil
}

// GetByProductID retrieves the stock record paired with a product
func (r *stockRepository) GetByProductID(ctx context.Context, productID string) (*models.Stock, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"product_id": &types.AttributeValueMemberS{Value: productID},
		},
	})
	if err != nil {
		return nil, repositories.NewRepositoryError("get", "stock", productID, err)
	}

	if out.Item == nil {
		return nil, repositories.NotFoundError("stock", productID)
	}

	var stock models.Stock
	if err := attributevalue.UnmarshalMap(out.Item, &stock); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stock %s: %w", productID, err)
	}

	return &stock, nil
}

// List returns all stock records
func (r *stockRepository) List(ctx context.Context) ([]models.Stock, error) {
	var stocks []models.Stock
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, repositories.NewRepositoryError("list", "stock", "", err)
		}

		var page []models.Stock
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal stocks: %w", err)
		}
		stocks = append(stocks, page...)

		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return stocks, nil
}
