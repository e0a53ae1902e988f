package handlers

import (
	"context"
	"errors"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	dyn "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// mockDynamo is a multi-table in-memory stand-in. Items are keyed by the
// table's partition key attribute, declared up front in pkAttrs.
type mockDynamo struct {
	mu      sync.Mutex
	pkAttrs map[string]string // table name -> pk attribute
	tables  map[string]map[string]map[string]types.AttributeValue
	failPut bool
}

func newMockDynamo(pkAttrs map[string]string) *mockDynamo {
	tables := map[string]map[string]map[string]types.AttributeValue{}
	for t := range pkAttrs {
		tables[t] = map[string]map[string]types.AttributeValue{}
	}
	return &mockDynamo{pkAttrs: pkAttrs, tables: tables}
}

func (m *mockDynamo) pk(table string, attrs map[string]types.AttributeValue) (string, error) {
	pkAttr, ok := m.pkAttrs[table]
	if !ok {
		return "", errors.New("unknown table " + table)
	}
	v, ok := attrs[pkAttr]
	if !ok {
		return "", errors.New("missing pk attribute " + pkAttr)
	}
	return v.(*types.AttributeValueMemberS).Value, nil
}

func (m *mockDynamo) PutItem(ctx context.Context, params *dyn.PutItemInput, optFns ...func(*dyn.Options)) (*dyn.PutItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failPut {
		return nil, errors.New("injected put failure")
	}
	key, err := m.pk(*params.TableName, params.Item)
	if err != nil {
		return nil, err
	}
	table := m.tables[*params.TableName]
	if params.ConditionExpression != nil {
		if _, exists := table[key]; exists {
			return nil, &types.ConditionalCheckFailedException{}
		}
	}
	table[key] = params.Item
	return &dyn.PutItemOutput{}, nil
}

func (m *mockDynamo) GetItem(ctx context.Context, params *dyn.GetItemInput, optFns ...func(*dyn.Options)) (*dyn.GetItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key, err := m.pk(*params.TableName, params.Key)
	if err != nil {
		return nil, err
	}
	item, ok := m.tables[*params.TableName][key]
	if !ok {
		return &dyn.GetItemOutput{}, nil
	}
	return &dyn.GetItemOutput{Item: item}, nil
}

func (m *mockDynamo) UpdateItem(ctx context.Context, params *dyn.UpdateItemInput, optFns ...func(*dyn.Options)) (*dyn.UpdateItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key, err := m.pk(*params.TableName, params.Key)
	if err != nil {
		return nil, err
	}
	table := m.tables[*params.TableName]
	item, exists := table[key]
	if !exists {
		if params.ConditionExpression != nil {
			return nil, &types.ConditionalCheckFailedException{}
		}
		return nil, errors.New("item not found")
	}
	// naive apply of the status update expressions used by the stores
	if v, ok := params.ExpressionAttributeValues[":st"]; ok {
		attr := "order_status"
		if _, named := params.ExpressionAttributeNames["#st"]; named {
			attr = params.ExpressionAttributeNames["#st"]
		}
		item[attr] = v
	}
	if v, ok := params.ExpressionAttributeValues[":ua"]; ok {
		item["updated_at"] = v
	}
	if v, ok := params.ExpressionAttributeValues[":an"]; ok {
		item["admin_notes"] = v
	}
	table[key] = item
	return &dyn.UpdateItemOutput{Attributes: item}, nil
}

func (m *mockDynamo) Query(ctx context.Context, params *dyn.QueryInput, optFns ...func(*dyn.Options)) (*dyn.QueryOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := &dyn.QueryOutput{}
	for _, item := range m.tables[*params.TableName] {
		if v, ok := params.ExpressionAttributeValues[":u"]; ok {
			if u, isS := item["user_id"].(*types.AttributeValueMemberS); isS && u.Value == v.(*types.AttributeValueMemberS).Value {
				out.Items = append(out.Items, item)
			}
			continue
		}
		if v, ok := params.ExpressionAttributeValues[":m"]; ok {
			if mob, isS := item["mobile"].(*types.AttributeValueMemberS); isS && mob.Value == v.(*types.AttributeValueMemberS).Value {
				out.Items = append(out.Items, item)
			}
		}
	}
	return out, nil
}

func (m *mockDynamo) Scan(ctx context.Context, params *dyn.ScanInput, optFns ...func(*dyn.Options)) (*dyn.ScanOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := &dyn.ScanOutput{}
	for _, item := range m.tables[*params.TableName] {
		out.Items = append(out.Items, item)
	}
	return out, nil
}

func (m *mockDynamo) BatchWriteItem(ctx context.Context, params *dyn.BatchWriteItemInput, optFns ...func(*dyn.Options)) (*dyn.BatchWriteItemOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for table, writes := range params.RequestItems {
		for _, w := range writes {
			if w.PutRequest == nil {
				continue
			}
			key, err := m.pk(table, w.PutRequest.Item)
			if err != nil {
				return nil, err
			}
			m.tables[table][key] = w.PutRequest.Item
		}
	}
	return &dyn.BatchWriteItemOutput{}, nil
}

// mockSQS records sent message bodies.
type mockSQS struct {
	mu     sync.Mutex
	bodies []string
}

func (m *mockSQS) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bodies = append(m.bodies, *params.MessageBody)
	return &sqs.SendMessageOutput{}, nil
}

func (m *mockSQS) sent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.bodies)
}

// mockCloudWatch records metric names.
type mockCloudWatch struct {
	mu      sync.Mutex
	metrics []string
}

func (m *mockCloudWatch) PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range params.MetricData {
		if d.MetricName != nil {
			m.metrics = append(m.metrics, *d.MetricName)
		}
	}
	return &cloudwatch.PutMetricDataOutput{}, nil
}

func (m *mockCloudWatch) has(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, n := range m.metrics {
		if n == name {
			return true
		}
	}
	return false
}
