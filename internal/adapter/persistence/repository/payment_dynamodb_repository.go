package repository

import (
	"context"
	"time"

	"vaquinha/internal/domain/entities"
	"vaquinha/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPaymentsTableName = "payments"

type paymentItem struct {
	ID                   string `dynamodbav:"id"`
	Status               string `dynamodbav:"status"`
	Description          string `dynamodbav:"description,omitempty"`
	Price                string `dynamodbav:"price,omitempty"`
	MercadoPagoPaymentID string `dynamodbav:"mercado_pago_payment_id,omitempty"`
	CreatedAt            string `dynamodbav:"created_at,omitempty"`
	UpdatedAt            string `dynamodbav:"updated_at,omitempty"`
}

// PaymentDynamoRepository persists standalone payments in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type PaymentDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoDBAPI, tableName string) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
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
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

// UpdateStatus overwrites the status without an existence condition, so a
// notification for an unknown id upserts a record holding only the status.
func (r *PaymentDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus, mercadoPagoPaymentID string) error {
	expr := "SET #status = :status, #updated_at = :updated_at"
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(status)},
		":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
	}
	if mercadoPagoPaymentID != "" {
		expr += ", #mp_id = :mp_id"
		names["#mp_id"] = "mercado_pago_payment_id"
		values[":mp_id"] = &types.AttributeValueMemberS{Value: mercadoPagoPaymentID}
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	return err
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                   p.ID,
		Status:               string(p.Status),
		Description:          p.Description,
		Price:                entities.AmountString(p.PriceCents),
		MercadoPagoPaymentID: p.MercadoPagoPaymentID,
		CreatedAt:            formatTime(p.CreatedAt),
		UpdatedAt:            formatTime(p.UpdatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	price, _ := entities.ParseAmount(it.Price)
	return entities.Payment{
		ID:                   it.ID,
		Status:               entities.PaymentStatus(it.Status),
		Description:          it.Description,
		PriceCents:           price,
		MercadoPagoPaymentID: it.MercadoPagoPaymentID,
		CreatedAt:            parseTime(it.CreatedAt),
		UpdatedAt:            parseTime(it.UpdatedAt),
	}
}
