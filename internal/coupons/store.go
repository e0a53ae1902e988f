package coupons

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/masalabox/orderflow/internal/aws"
)

// Store encapsulates operations on the coupons table.
type Store struct {
	client    aws.DynamoDBAPI
	tableName string
}

// NewStore creates a new coupons Store.
func NewStore(client aws.DynamoDBAPI, tableName string) *Store {
	return &Store{client: client, tableName: tableName}
}

// Get fetches a coupon by code (case-insensitive). Returns (nil, nil) if not found.
func (s *Store) Get(ctx context.Context, code string) (*Coupon, error) {
	key := map[string]types.AttributeValue{
		"code": &types.AttributeValueMemberS{Value: strings.ToUpper(code)},
	}
	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &s.tableName,
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("get coupon: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var c Coupon
	if err := attributevalue.UnmarshalMap(out.Item, &c); err != nil {
		return nil, fmt.Errorf("unmarshal coupon: %w", err)
	}
	return &c, nil
}

// Put writes a coupon, normalizing the code to uppercase.
func (s *Store) Put(ctx context.Context, c *Coupon) error {
	c.Code = strings.ToUpper(c.Code)
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	c.UpdatedAt = time.Now().UTC()

	item, err := attributevalue.MarshalMap(c)
	if err != nil {
		return fmt.Errorf("marshal coupon: %w", err)
	}
	if _, err := s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	}); err != nil {
		return fmt.Errorf("put coupon: %w", err)
	}
	return nil
}

// List returns all coupons.
func (s *Store) List(ctx context.Context) ([]Coupon, error) {
	out, err := s.client.Scan(ctx, &dyn.ScanInput{TableName: &s.tableName})
	if err != nil {
		return nil, fmt.Errorf("scan coupons: %w", err)
	}
	coupons := make([]Coupon, 0, len(out.Items))
	for _, item := range out.Items {
		var c Coupon
		if err := attributevalue.UnmarshalMap(item, &c); err != nil {
			return nil, fmt.Errorf("unmarshal coupon: %w", err)
		}
		coupons = append(coupons, c)
	}
	return coupons, nil
}

// ListActive returns coupons that are active and inside their validity window at now.
func (s *Store) ListActive(ctx context.Context, now time.Time) ([]Coupon, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]Coupon, 0, len(all))
	for i := range all {
		if all[i].UsableAt(now) {
			active = append(active, all[i])
		}
	}
	return active, nil
}
