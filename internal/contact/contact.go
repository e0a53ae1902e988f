package contact

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/masalabox/orderflow/internal/aws"
)

// Message statuses.
const (
	StatusNew        = "new"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
	StatusClosed     = "closed"
)

var validStatuses = map[string]bool{
	StatusNew:        true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
}

var validSubjects = map[string]bool{
	"general":   true,
	"order":     true,
	"catering":  true,
	"bulk":      true,
	"feedback":  true,
	"complaint": true,
	"other":     true,
}

var (
	ErrMessageNotFound = errors.New("contact message not found")
	ErrInvalidStatus   = errors.New("invalid contact message status")
	ErrInvalidSubject  = errors.New("invalid contact message subject")
)

// ValidStatus reports whether s is a known message status.
func ValidStatus(s string) bool { return validStatuses[s] }

// ValidSubject reports whether s is a known message subject.
func ValidSubject(s string) bool { return validSubjects[s] }

// Message is a customer query stored in the contact_messages table.
type Message struct {
	MessageID  string    `json:"id" dynamodbav:"message_id"` // PK
	Name       string    `json:"name" dynamodbav:"name"`
	Email      string    `json:"email" dynamodbav:"email"`
	Phone      string    `json:"phone,omitempty" dynamodbav:"phone,omitempty"`
	Subject    string    `json:"subject" dynamodbav:"subject"`
	Body       string    `json:"message" dynamodbav:"body"`
	Status     string    `json:"status" dynamodbav:"status"`
	AdminNotes string    `json:"adminNotes,omitempty" dynamodbav:"admin_notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt" dynamodbav:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" dynamodbav:"updated_at"`
}

// Stats is the per-status message count summary.
type Stats struct {
	Total      int `json:"total"`
	New        int `json:"new"`
	InProgress int `json:"in_progress"`
	Resolved   int `json:"resolved"`
	Closed     int `json:"closed"`
}

// Store encapsulates operations on the contact_messages table.
type Store struct {
	client    aws.DynamoDBAPI
	tableName string
	nowFunc   func() time.Time
}

// NewStore creates a new contact Store.
func NewStore(client aws.DynamoDBAPI, tableName string) *Store {
	return &Store{client: client, tableName: tableName, nowFunc: time.Now}
}

// Create persists a new message with status "new".
func (s *Store) Create(ctx context.Context, m *Message) error {
	if !ValidSubject(m.Subject) {
		return ErrInvalidSubject
	}
	now := s.nowFunc().UTC()
	m.MessageID = uuid.NewString()
	m.Status = StatusNew
	m.CreatedAt = now
	m.UpdatedAt = now

	item, err := attributevalue.MarshalMap(m)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}
	if _, err := s.client.PutItem(ctx, &dyn.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	}); err != nil {
		return fmt.Errorf("put message: %w", err)
	}
	return nil
}

// Get fetches a message by id. Returns ErrMessageNotFound if missing.
func (s *Store) Get(ctx context.Context, id string) (*Message, error) {
	out, err := s.client.GetItem(ctx, &dyn.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"message_id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get message: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, ErrMessageNotFound
	}
	var m Message
	if err := attributevalue.UnmarshalMap(out.Item, &m); err != nil {
		return nil, fmt.Errorf("unmarshal message: %w", err)
	}
	return &m, nil
}

// List returns messages newest first, optionally filtered by status, with
// page/limit slicing. The second return is the total matched count.
func (s *Store) List(ctx context.Context, status string, page, limit int) ([]Message, int, error) {
	out, err := s.client.Scan(ctx, &dyn.ScanInput{TableName: &s.tableName})
	if err != nil {
		return nil, 0, fmt.Errorf("scan messages: %w", err)
	}

	matched := make([]Message, 0, len(out.Items))
	for _, item := range out.Items {
		var m Message
		if err := attributevalue.UnmarshalMap(item, &m); err != nil {
			return nil, 0, fmt.Errorf("unmarshal message: %w", err)
		}
		if status != "" && status != "all" && m.Status != status {
			continue
		}
		matched = append(matched, m)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := len(matched)
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= total {
		return []Message{}, total, nil
	}
	end := start + limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

// UpdateStatus sets the message status and, when provided, admin notes.
func (s *Store) UpdateStatus(ctx context.Context, id, status string, adminNotes *string) (*Message, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	expr := "SET #st = :st, updated_at = :ua"
	values := map[string]types.AttributeValue{
		":st": &types.AttributeValueMemberS{Value: status},
		":ua": &types.AttributeValueMemberS{Value: s.nowFunc().UTC().Format(time.RFC3339)},
	}
	if adminNotes != nil {
		expr += ", admin_notes = :an"
		values[":an"] = &types.AttributeValueMemberS{Value: *adminNotes}
	}

	out, err := s.client.UpdateItem(ctx, &dyn.UpdateItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"message_id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          &expr,
		ExpressionAttributeNames:  map[string]string{"#st": "status"},
		ExpressionAttributeValues: values,
		ConditionExpression:       awsString("attribute_exists(message_id)"),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cond *types.ConditionalCheckFailedException
		if errors.As(err, &cond) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("update message status: %w", err)
	}

	var m Message
	if err := attributevalue.UnmarshalMap(out.Attributes, &m); err != nil {
		return nil, fmt.Errorf("unmarshal updated message: %w", err)
	}
	return &m, nil
}

// StatsSummary counts messages per status.
func (s *Store) StatsSummary(ctx context.Context) (*Stats, error) {
	all, _, err := s.List(ctx, "all", 1, 1<<30)
	if err != nil {
		return nil, err
	}
	stats := &Stats{Total: len(all)}
	for i := range all {
		switch all[i].Status {
		case StatusNew:
			stats.New++
		case StatusInProgress:
			stats.InProgress++
		case StatusResolved:
			stats.Resolved++
		case StatusClosed:
			stats.Closed++
		}
	}
	return stats, nil
}

func awsString(s string) *string { return &s }
