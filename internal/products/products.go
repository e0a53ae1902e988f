package products

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/masalabox/orderflow/internal/aws"
)

// Variant is one size/price option of a product.
type Variant struct {
	Type  string  `json:"type" dynamodbav:"type"` // Half | Full
	Price float64 `json:"price" dynamodbav:"price"`
}

// Product is the document stored in the products table. The ordering flow
// only ever reads products.
type Product struct {
	ProductID   string    `json:"productId" dynamodbav:"product_id"` // PK
	Name        string    `json:"name" dynamodbav:"name"`
	Category    string    `json:"category" dynamodbav:"category"`
	Description string    `json:"description,omitempty" dynamodbav:"description,omitempty"`
	Variants    []Variant `json:"variants" dynamodbav:"variants"`
	InStock     bool      `json:"inStock" dynamodbav:"in_stock"`
	CreatedDate time.Time `json:"createdDate" dynamodbav:"created_date"`
}

// batchMax is the DynamoDB BatchWriteItem request limit.
const batchMax = 25

// Store encapsulates operations on the products table.
type Store struct {
	client    aws.DynamoDBAPI
	tableName string
}

// NewStore creates a new products Store.
func NewStore(client aws.DynamoDBAPI, tableName string) *Store {
	return &Store{client: client, tableName: tableName}
}

// List returns the whole catalog.
func (s *Store) List(ctx context.Context) ([]Product, error) {
	out, err := s.client.Scan(ctx, &dyn.ScanInput{TableName: &s.tableName})
	if err != nil {
		return nil, fmt.Errorf("scan products: %w", err)
	}
	products := make([]Product, 0, len(out.Items))
	for _, item := range out.Items {
		var p Product
		if err := attributevalue.UnmarshalMap(item, &p); err != nil {
			return nil, fmt.Errorf("unmarshal product: %w", err)
		}
		products = append(products, p)
	}
	return products, nil
}

// PutBatch inserts products in chunks of 25, assigning ids and creation
// dates where missing. Returns the stored products.
func (s *Store) PutBatch(ctx context.Context, items []Product) ([]Product, error) {
	now := time.Now().UTC()
	for i := range items {
		if items[i].ProductID == "" {
			items[i].ProductID = uuid.NewString()
		}
		if items[i].CreatedDate.IsZero() {
			items[i].CreatedDate = now
		}
	}

	for start := 0; start < len(items); start += batchMax {
		end := start + batchMax
		if end > len(items) {
			end = len(items)
		}

		writes := make([]types.WriteRequest, 0, end-start)
		for _, p := range items[start:end] {
			item, err := attributevalue.MarshalMap(p)
			if err != nil {
				return nil, fmt.Errorf("marshal product: %w", err)
			}
			writes = append(writes, types.WriteRequest{
				PutRequest: &types.PutRequest{Item: item},
			})
		}

		if _, err := s.client.BatchWriteItem(ctx, &dyn.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				s.tableName: writes,
			},
		}); err != nil {
			return nil, fmt.Errorf("batch write products: %w", err)
		}
	}

	return items, nil
}
