package repository

import (
	"context"
	"time"

	"loja_virtual/internal/domain/entities"
	"loja_virtual/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCartsTableName = "carts"

type cartLineRecord struct {
	ProductID string `dynamodbav:"product_id"`
	Name      string `dynamodbav:"name"`
	UnitPrice int64  `dynamodbav:"unit_price"`
	Image     string `dynamodbav:"image"`
	Quantity  int    `dynamodbav:"quantity"`
}

type cartRecord struct {
	Namespace string           `dynamodbav:"namespace"`
	Items     []cartLineRecord `dynamodbav:"items"`
	UpdatedAt string           `dynamodbav:"updated_at"`
}

// CartDynamoRepository persists carts in DynamoDB.
//
// Table requirements:
//   - PK: namespace (string), e.g. cart-<identity> or cart-guest
//
// Save is an unconditional put: concurrent writers to the same namespace
// resolve last-writer-wins, matching the storefront's multi-tab behavior.

type CartDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICartRepository = (*CartDynamoRepository)(nil)

func NewCartDynamoRepository(ddb *dynamodb.Client) *CartDynamoRepository {
	return &CartDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CARTS_TABLE", defaultCartsTableName),
	}
}

func (r *CartDynamoRepository) Get(ctx context.Context, namespace string) (entities.Cart, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"namespace": &types.AttributeValueMemberS{Value: namespace},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Cart{}, err
	}
	if len(out.Item) == 0 {
		return entities.Cart{Namespace: namespace}, nil
	}

	var rec cartRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Cart{}, err
	}
	return fromCartRecord(rec), nil
}

func (r *CartDynamoRepository) Save(ctx context.Context, cart entities.Cart) error {
	av, err := attributevalue.MarshalMap(toCartRecord(cart))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *CartDynamoRepository) Delete(ctx context.Context, namespace string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"namespace": &types.AttributeValueMemberS{Value: namespace},
		},
	})
	return err
}

func toCartRecord(cart entities.Cart) cartRecord {
	rec := cartRecord{
		Namespace: cart.Namespace,
		UpdatedAt: cart.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	for _, it := range cart.Items {
		rec.Items = append(rec.Items, cartLineRecord{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Image:     it.Image,
			Quantity:  it.Quantity,
		})
	}
	return rec
}

func fromCartRecord(rec cartRecord) entities.Cart {
	updatedAt, _ := time.Parse(time.RFC3339Nano, rec.UpdatedAt)
	cart := entities.Cart{Namespace: rec.Namespace, UpdatedAt: updatedAt}
	for _, it := range rec.Items {
		cart.Items = append(cart.Items, entities.LineItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Image:     it.Image,
			Quantity:  it.Quantity,
		})
	}
	return cart
}
