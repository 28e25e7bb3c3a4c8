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

// productRepository implements repositories.ProductRepository over DynamoDB
type productRepository struct {
	client    TableAPI
	tableName string
}

// NewProductRepository creates a product repository backed by the given table
func NewProductRepository(client TableAPI, tableName string) repositories.ProductRepository {
	return &productRepository{
		client:    client,
		tableName: tableName,
	}
}

// Create stores a new product
func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	if err := product.Validate(); err != nil {
		return repositories.NewRepositoryError("create", "product", product.ID, err)
	}

	item, err := attributevalue.MarshalMap(product)
	if err != nil {
		return fmt.Errorf("failed to marshal product: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		return repositories.NewRepositoryError("create", "product", product.ID, err)
	}

	return nil
}

// GetByID retrieves a product by its ID
func (r *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, repositories.NewRepositoryError("get", "product", id, err)
	}

	if out.Item == nil {
		return nil, repositories.NotFoundError("product", id)
	}

	var product models.Product
	if err := attributevalue.UnmarshalMap(out.Item, &product); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product %s: %w", id, err)
	}

	return &product, nil
}

// List returns all products
func (r *productRepository) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, repositories.NewRepositoryError("list", "product", "", err)
		}

		var page []models.Product
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal products: %w", err)
		}
		products = append(products, page...)

		if out.LastEvaluatedKey == nil {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return products, nil
}
