package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/go-pet-adoption-api/internal/domain"
	"github.com/go-pet-adoption-api/internal/pkg/id"
)

// PetRepo provides typed DynamoDB operations for the pets table.
type PetRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewPetRepo(client *dynamodb.Client, tableName string) *PetRepo {
	return &PetRepo{client: client, tableName: tableName}
}

func (r *PetRepo) Put(ctx context.Context, p *domain.Pet) error {
	if p.PetID == "" {
		p.PetID = id.New()
	}
	item, err := attributevalue.MarshalMap(p)
	if err != nil {
		return fmt.Errorf("marshal pet: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// List scans the whole catalog.
func (r *PetRepo) List(ctx context.Context) ([]domain.Pet, error) {
	p := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	pets := []domain.Pet{}
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var page []domain.Pet
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		pets = append(pets, page...)
	}
	return pets, nil
}

// Empty reports whether the catalog holds no pets.
func (r *PetRepo) Empty(ctx context.Context) (bool, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Limit:     aws.Int32(1),
	})
	if err != nil {
		return false, err
	}
	return len(out.Items) == 0, nil
}
