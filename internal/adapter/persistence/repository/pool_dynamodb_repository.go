package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"vaquinha/internal/domain/entities"
	"vaquinha/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPoolsTableName  = "vaquinhas"
	defaultUsersTableName  = "users"
	poolsByOwnerIndexName  = "created_by-index"
	conditionalCheckFailed = "ConditionalCheckFailed"
)

var ErrAlreadyExists = errors.New("item already exists")

type participantItem struct {
	Name              string  `dynamodbav:"name"`
	Amount            string  `dynamodbav:"amount"`
	Status            string  `dynamodbav:"status"`
	FirebasePaymentID *string `dynamodbav:"firebase_payment_id"`
}

type poolItem struct {
	ID             string            `dynamodbav:"id"`
	Title          string            `dynamodbav:"title"`
	Description    string            `dynamodbav:"description,omitempty"`
	TotalAmount    string            `dynamodbav:"total_amount"`
	ReceiverPixKey string            `dynamodbav:"receiver_pix_key"`
	CreatedBy      string            `dynamodbav:"created_by"`
	CreatedAt      string            `dynamodbav:"created_at"`
	Participants   []participantItem `dynamodbav:"participants"`
	Version        int64             `dynamodbav:"version"`
}

type userItem struct {
	ID                string `dynamodbav:"id"`
	Plan              string `dynamodbav:"plan,omitempty"`
	ProExpirationDate string `dynamodbav:"pro_expiration_date,omitempty"`
	FreePoolsCreated  int    `dynamodbav:"free_pools_created"`
}

// PoolDynamoRepository persists pools and the owners' quota counters.
//
// Table requirements:
//   - pools PK: id (string), GSI created_by-index on created_by (string)
//   - users PK: id (string)
type PoolDynamoRepository struct {
	ddb        DynamoDBAPI
	poolsTable string
	usersTable string
}

var _ interfaces.IPoolRepository = (*PoolDynamoRepository)(nil)

func NewPoolDynamoRepository(ddb DynamoDBAPI, poolsTable, usersTable string) *PoolDynamoRepository {
	return &PoolDynamoRepository{
		ddb:        ddb,
		poolsTable: tableOrDefault(poolsTable, defaultPoolsTableName),
		usersTable: tableOrDefault(usersTable, defaultUsersTableName),
	}
}

// CreateWithQuota writes the pool and, for free owners, increments
// free_pools_created in the same transaction. The increment is conditioned on
// the counter still being under the limit, so concurrent creations cannot
// overshoot the quota.
func (r *PoolDynamoRepository) CreateWithQuota(ctx context.Context, pool entities.Pool, quota interfaces.PoolQuota) (entities.Pool, error) {
	user, err := r.getUser(ctx, quota.OwnerID)
	if err != nil {
		return entities.Pool{}, err
	}

	av, err := attributevalue.MarshalMap(toPoolItem(pool))
	if err != nil {
		return entities.Pool{}, err
	}

	items := []types.TransactWriteItem{{
		Put: &types.Put{
			TableName:           aws.String(r.poolsTable),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	}}

	if !user.IsPro(quota.Now) {
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(r.usersTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: quota.OwnerID},
				},
				UpdateExpression:    aws.String("SET #free = if_not_exists(#free, :zero) + :one"),
				ConditionExpression: aws.String("attribute_not_exists(#free) OR #free < :limit"),
				ExpressionAttributeNames: map[string]string{
					"#free": "free_pools_created",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":zero":  &types.AttributeValueMemberN{Value: "0"},
					":one":   &types.AttributeValueMemberN{Value: "1"},
					":limit": &types.AttributeValueMemberN{Value: strconv.Itoa(quota.FreeLimit)},
				},
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		return entities.Pool{}, mapCreateTransactionError(err)
	}
	return pool, nil
}

// mapCreateTransactionError reads the cancellation reasons in the order of the
// transaction items: the pool put first, then the quota update.
func mapCreateTransactionError(err error) error {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return err
	}
	for i, reason := range tce.CancellationReasons {
		if aws.ToString(reason.Code) != conditionalCheckFailed {
			continue
		}
		if i == 0 {
			return ErrAlreadyExists
		}
		return interfaces.ErrPoolQuotaExceeded
	}
	return err
}

func (r *PoolDynamoRepository) GetByID(ctx context.Context, id string) (entities.Pool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.poolsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Pool{}, err
	}
	if len(out.Item) == 0 {
		return entities.Pool{}, nil
	}

	var it poolItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Pool{}, err
	}
	return fromPoolItem(it), nil
}

func (r *PoolDynamoRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.Pool, error) {
	pools := make([]entities.Pool, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.poolsTable),
			IndexName:              aws.String(poolsByOwnerIndexName),
			KeyConditionExpression: aws.String("#created_by = :created_by"),
			ExpressionAttributeNames: map[string]string{
				"#created_by": "created_by",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":created_by": &types.AttributeValueMemberS{Value: ownerID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []poolItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			pools = append(pools, fromPoolItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			return pools, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// ReplaceParticipants overwrites the participants list only while the stored
// version equals expectedVersion. Items written before versioning carry no
// version attribute and match expectedVersion 0.
func (r *PoolDynamoRepository) ReplaceParticipants(ctx context.Context, poolID string, expectedVersion int64, participants []entities.Participant) (entities.Pool, error) {
	list, err := attributevalue.Marshal(toParticipantItems(participants))
	if err != nil {
		return entities.Pool{}, err
	}

	cond := "attribute_exists(#id) AND #version = :expected"
	values := map[string]types.AttributeValue{
		":participants": list,
		":next":         &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion+1, 10)},
	}
	if expectedVersion == 0 {
		cond = "attribute_exists(#id) AND attribute_not_exists(#version)"
	} else {
		values[":expected"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.poolsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: poolID},
		},
		UpdateExpression:    aws.String("SET #participants = :participants, #version = :next"),
		ConditionExpression: aws.String(cond),
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#participants": "participants",
			"#version":      "version",
		},
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return entities.Pool{}, interfaces.ErrPoolVersionConflict
		}
		return entities.Pool{}, err
	}

	var it poolItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Pool{}, err
	}
	return fromPoolItem(it), nil
}

func (r *PoolDynamoRepository) getUser(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.usersTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{ID: id}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func toPoolItem(p entities.Pool) poolItem {
	return poolItem{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		TotalAmount:    entities.AmountString(p.TotalAmountCents),
		ReceiverPixKey: p.ReceiverPixKey,
		CreatedBy:      p.CreatedBy,
		CreatedAt:      formatTime(p.CreatedAt),
		Participants:   toParticipantItems(p.Participants),
		Version:        p.Version,
	}
}

func toParticipantItems(in []entities.Participant) []participantItem {
	out := make([]participantItem, len(in))
	for i, part := range in {
		out[i] = participantItem{
			Name:              part.Name,
			Amount:            entities.AmountString(part.AmountCents),
			Status:            string(part.Status),
			FirebasePaymentID: part.FirebasePaymentID,
		}
	}
	return out
}

func fromPoolItem(it poolItem) entities.Pool {
	total, _ := entities.ParseAmount(it.TotalAmount)
	participants := make([]entities.Participant, len(it.Participants))
	for i, part := range it.Participants {
		amount, _ := entities.ParseAmount(part.Amount)
		participants[i] = entities.Participant{
			Name:              part.Name,
			AmountCents:       amount,
			Status:            entities.ParticipantStatus(part.Status),
			FirebasePaymentID: part.FirebasePaymentID,
		}
	}
	return entities.Pool{
		ID:               it.ID,
		Title:            it.Title,
		Description:      it.Description,
		TotalAmountCents: total,
		ReceiverPixKey:   it.ReceiverPixKey,
		CreatedBy:        it.CreatedBy,
		CreatedAt:        parseTime(it.CreatedAt),
		Participants:     participants,
		Version:          it.Version,
	}
}

func fromUserItem(it userItem) entities.User {
	u := entities.User{
		ID:               it.ID,
		Plan:             it.Plan,
		FreePoolsCreated: it.FreePoolsCreated,
	}
	if it.ProExpirationDate != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.ProExpirationDate); err == nil {
			u.ProExpirationDate = &t
		}
	}
	return u
}
