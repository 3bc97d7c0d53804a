package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"oficina_pro/internal/domain/entities"
	"oficina_pro/internal/usecase/interfaces"
	"oficina_pro/pkg/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type datasetItem struct {
	ID        string `dynamodbav:"id"`
	Version   int64  `dynamodbav:"version"`
	Payload   string `dynamodbav:"payload"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// DatasetDynamoRepository stores the dataset as a single DynamoDB item.
//
// Table requirements:
//   - PK: id (string)
//
// The item id is the storage key, so one table can hold several datasets.
// The JSON payload must fit the 400 KB item limit.
type DatasetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	key       string
}

var _ interfaces.IDatasetStore = (*DatasetDynamoRepository)(nil)

func NewDatasetDynamoRepository(ddb *dynamodb.Client, tableName, key string) *DatasetDynamoRepository {
	return &DatasetDynamoRepository{ddb: ddb, tableName: tableName, key: key}
}

func (r *DatasetDynamoRepository) Load(ctx context.Context) (*entities.Dataset, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: r.key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return entities.NewDataset(), nil
	}

	var it datasetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return decodeDataset([]byte(it.Payload), it.Version)
}

// Save writes the dataset only if the stored version still matches ds.Version.
func (r *DatasetDynamoRepository) Save(ctx context.Context, ds *entities.Dataset) error {
	payload, next, err := encodeNext(ds)
	if err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(datasetItem{
		ID:        r.key,
		Version:   next,
		Payload:   string(payload),
		UpdatedAt: formatTime(time.Now()),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id) OR #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(ds.Version, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			logger.Warnf(ctx, "[dataset][dynamodb] version conflict key=%s expected=%d", r.key, ds.Version)
			return interfaces.ErrDatasetVersionConflict
		}
		return err
	}
	ds.Version = next
	return nil
}
