package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"plasticos_xpto/internal/domain/entities"
	"plasticos_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultJobOrdersTableName = "job_orders"
	jobOrdersOrderIDIndex     = "order_id-index"
)

type jobOrderItem struct {
	ID          string `dynamodbav:"id"`
	OrderID     string `dynamodbav:"order_id"`
	ProductRef  string `dynamodbav:"product_ref"`
	RequiredQty string `dynamodbav:"required_qty"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// JobOrderDynamoRepository persists JobOrder rows in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
//
// UpdateStatus is a conditional single-row read-modify-write: the write only
// lands while the stored status still equals the status the caller read.
// That condition is what keeps concurrent re-evaluations monotonic without a
// lock.

type JobOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobOrderRepository = (*JobOrderDynamoRepository)(nil)

func NewJobOrderDynamoRepository(ddb *dynamodb.Client) *JobOrderDynamoRepository {
	return &JobOrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOB_ORDERS_TABLE", defaultJobOrdersTableName),
	}
}

func (r *JobOrderDynamoRepository) Create(ctx context.Context, jo entities.JobOrder) (entities.JobOrder, error) {
	av, err := attributevalue.MarshalMap(toJobOrderItem(jo))
	if err != nil {
		return entities.JobOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.JobOrder{}, err
	}
	return jo, nil
}

func (r *JobOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.JobOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.JobOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.JobOrder{}, nil
	}

	var it jobOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.JobOrder{}, err
	}
	return fromJobOrderItem(it), nil
}

func (r *JobOrderDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.JobOrder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(jobOrdersOrderIDIndex),
		KeyConditionExpression: aws.String("order_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalJobOrders(out.Items)
}

func (r *JobOrderDynamoRepository) ListByStatuses(ctx context.Context, statuses []entities.JobOrderStatus) ([]entities.JobOrder, error) {
	if len(statuses) == 0 {
		return nil, nil
	}

	placeholders := make([]string, 0, len(statuses))
	values := make(map[string]types.AttributeValue, len(statuses))
	for i, s := range statuses {
		ph := ":s" + strconv.Itoa(i)
		placeholders = append(placeholders, ph)
		values[ph] = &types.AttributeValueMemberS{Value: string(s)}
	}
	filter := fmt.Sprintf("#status IN (%s)", strings.Join(placeholders, ", "))

	var items []entities.JobOrder
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(r.tableName),
			FilterExpression:          aws.String(filter),
			ExpressionAttributeValues: values,
			ExpressionAttributeNames:  map[string]string{"#status": "status"},
			ExclusiveStartKey:         startKey,
		})
		if err != nil {
			return nil, err
		}
		page, err := unmarshalJobOrders(out.Items)
		if err != nil {
			return nil, err
		}
		items = append(items, page...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *JobOrderDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.JobOrderStatus) (entities.JobOrder, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.JobOrder{}, nil
		}
		return entities.JobOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.JobOrder{}, nil
	}

	var it jobOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.JobOrder{}, err
	}
	return fromJobOrderItem(it), nil
}

func unmarshalJobOrders(raw []map[string]types.AttributeValue) ([]entities.JobOrder, error) {
	items := make([]entities.JobOrder, 0, len(raw))
	for _, rawItem := range raw {
		var it jobOrderItem
		if err := attributevalue.UnmarshalMap(rawItem, &it); err != nil {
			return nil, err
		}
		items = append(items, fromJobOrderItem(it))
	}
	return items, nil
}

func toJobOrderItem(jo entities.JobOrder) jobOrderItem {
	return jobOrderItem{
		ID:          jo.ID,
		OrderID:     jo.OrderID,
		ProductRef:  jo.ProductRef,
		RequiredQty: floatToString(jo.RequiredQty),
		Status:      string(jo.Status),
		CreatedAt:   jo.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   jo.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromJobOrderItem(it jobOrderItem) entities.JobOrder {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	requiredQty, _ := strconv.ParseFloat(it.RequiredQty, 64)
	return entities.JobOrder{
		ID:          it.ID,
		OrderID:     it.OrderID,
		ProductRef:  it.ProductRef,
		RequiredQty: requiredQty,
		Status:      entities.JobOrderStatus(it.Status),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
