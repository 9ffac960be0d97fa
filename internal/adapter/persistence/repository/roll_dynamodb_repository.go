package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"plasticos_xpto/internal/domain/entities"
	"plasticos_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRollsTableName    = "rolls"
	rollsJobOrderIDIndex     = "job_order_id-index"
	rollsStageIndex          = "stage-index"
	rollsIdempotencyKeyIndex = "idempotency_key-index"
)

type rollItem struct {
	ID             string `dynamodbav:"id"`
	JobOrderID     string `dynamodbav:"job_order_id"`
	Stage          string `dynamodbav:"stage"`
	Status         string `dynamodbav:"status"`
	ExtrudingQty   string `dynamodbav:"extruding_qty"`
	PrintingQty    string `dynamodbav:"printing_qty,omitempty"`
	CuttingQty     string `dynamodbav:"cutting_qty,omitempty"`
	IdempotencyKey string `dynamodbav:"idempotency_key,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
}

// RollDynamoRepository is the Roll Ledger.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_order_id-index (PK: job_order_id)
//   - GSI: stage-index (PK: stage)
//   - GSI: idempotency_key-index (PK: idempotency_key, sparse)
//
// The ledger is append-only: extruding_qty and job_order_id never change
// after the conditional put. AdvanceStage only moves stage/status and writes
// the downstream stage quantities.

type RollDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRollRepository = (*RollDynamoRepository)(nil)

func NewRollDynamoRepository(ddb *dynamodb.Client) *RollDynamoRepository {
	return &RollDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ROLLS_TABLE", defaultRollsTableName),
	}
}

func (r *RollDynamoRepository) Create(ctx context.Context, roll entities.Roll) (entities.Roll, error) {
	av, err := attributevalue.MarshalMap(toRollItem(roll))
	if err != nil {
		return entities.Roll{}, err
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
		return entities.Roll{}, err
	}
	return roll, nil
}

func (r *RollDynamoRepository) GetByID(ctx context.Context, id string) (entities.Roll, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Roll{}, err
	}
	if len(out.Item) == 0 {
		return entities.Roll{}, nil
	}

	var it rollItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Roll{}, err
	}
	return fromRollItem(it), nil
}

func (r *RollDynamoRepository) ListByJobOrderID(ctx context.Context, jobOrderID string) ([]entities.Roll, error) {
	items, err := r.queryIndex(ctx, rollsJobOrderIDIndex, "job_order_id = :v", jobOrderID)
	if err != nil {
		return nil, err
	}
	// Stable ledger order: GSI results carry no ordering guarantee.
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *RollDynamoRepository) ListByStage(ctx context.Context, stage entities.RollStage) ([]entities.Roll, error) {
	items, err := r.queryIndex(ctx, rollsStageIndex, "stage = :v", string(stage))
	if err != nil {
		return nil, err
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *RollDynamoRepository) GetByIdempotencyKey(ctx context.Context, key string) (entities.Roll, error) {
	items, err := r.queryIndex(ctx, rollsIdempotencyKeyIndex, "idempotency_key = :v", key)
	if err != nil {
		return entities.Roll{}, err
	}
	if len(items) == 0 {
		return entities.Roll{}, nil
	}
	return items[0], nil
}

func (r *RollDynamoRepository) AdvanceStage(ctx context.Context, id string, from, to entities.RollStage, stageQty float64) (entities.Roll, error) {
	expr := "SET #stage = :to"
	values := map[string]types.AttributeValue{
		":to":   &types.AttributeValueMemberS{Value: string(to)},
		":from": &types.AttributeValueMemberS{Value: string(from)},
	}
	names := map[string]string{
		"#stage": "stage",
	}

	// stageQty is the output of the stage being left. Extrusion output is
	// immutable (extruding_qty, fixed at the conditional put).
	switch from {
	case entities.RollStagePrinting:
		expr += ", #printing_qty = :qty"
		values[":qty"] = &types.AttributeValueMemberS{Value: floatToString(stageQty)}
		names["#printing_qty"] = "printing_qty"
	case entities.RollStageCutting:
		expr += ", #cutting_qty = :qty"
		values[":qty"] = &types.AttributeValueMemberS{Value: floatToString(stageQty)}
		names["#cutting_qty"] = "cutting_qty"
	}
	if to == entities.RollStageCompleted {
		expr += ", #status = :status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(entities.RollStatusCompleted)}
		names["#status"] = "status"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #stage = :from"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Roll{}, nil
		}
		return entities.Roll{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Roll{}, nil
	}

	var it rollItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Roll{}, err
	}
	return fromRollItem(it), nil
}

func (r *RollDynamoRepository) queryIndex(ctx context.Context, index, keyCondition, value string) ([]entities.Roll, error) {
	var items []entities.Roll
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(index),
			KeyConditionExpression: aws.String(keyCondition),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":v": &types.AttributeValueMemberS{Value: value},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it rollItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromRollItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}

func toRollItem(roll entities.Roll) rollItem {
	it := rollItem{
		ID:             roll.ID,
		JobOrderID:     roll.JobOrderID,
		Stage:          string(roll.Stage),
		Status:         string(roll.Status),
		ExtrudingQty:   floatToString(roll.ExtrudingQty),
		IdempotencyKey: roll.IdempotencyKey,
		CreatedAt:      roll.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if roll.PrintingQty > 0 {
		it.PrintingQty = floatToString(roll.PrintingQty)
	}
	if roll.CuttingQty > 0 {
		it.CuttingQty = floatToString(roll.CuttingQty)
	}
	return it
}

func fromRollItem(it rollItem) entities.Roll {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	extrudingQty, _ := strconv.ParseFloat(it.ExtrudingQty, 64)
	printingQty, _ := strconv.ParseFloat(it.PrintingQty, 64)
	cuttingQty, _ := strconv.ParseFloat(it.CuttingQty, 64)
	return entities.Roll{
		ID:             it.ID,
		JobOrderID:     it.JobOrderID,
		Stage:          entities.RollStage(it.Stage),
		Status:         entities.RollStatus(it.Status),
		ExtrudingQty:   extrudingQty,
		PrintingQty:    printingQty,
		CuttingQty:     cuttingQty,
		IdempotencyKey: it.IdempotencyKey,
		CreatedAt:      createdAt,
	}
}
