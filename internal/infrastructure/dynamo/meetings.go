package dynamo

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-pet-adoption-api/internal/domain"
	"github.com/go-pet-adoption-api/internal/pkg/id"
	"github.com/go-pet-adoption-api/internal/pkg/validate"
)

// meetingItem is the stored shape of a meeting. is_vaccinated is only written
// for release meetings.
type meetingItem struct {
	MeetingID    string    `dynamodbav:"meeting_id" validate:"required"`
	FullName     string    `dynamodbav:"full_name" validate:"required"`
	Email        string    `dynamodbav:"email" validate:"required"`
	Phone        string    `dynamodbav:"phone" validate:"required"`
	MeetingDate  string    `dynamodbav:"meeting_date" validate:"required"`
	MeetingTime  string    `dynamodbav:"meeting_time" validate:"required"`
	PetName      string    `dynamodbav:"pet_name" validate:"required"`
	PetBreed     string    `dynamodbav:"pet_breed" validate:"required"`
	PetImage     string    `dynamodbav:"pet_image" validate:"required"`
	MeetingType  string    `dynamodbav:"meeting_type" validate:"required,oneof=adoption release"`
	PetType      string    `dynamodbav:"pet_type" validate:"required,oneof=cat dog"`
	IsVaccinated *bool     `dynamodbav:"is_vaccinated,omitempty"`
	CreatedAt    time.Time `dynamodbav:"created_at"`
	UpdatedAt    time.Time `dynamodbav:"updated_at"`
}

func toMeetingItem(m *domain.Meeting) meetingItem {
	return meetingItem{
		MeetingID:    m.MeetingID,
		FullName:     m.FullName,
		Email:        m.Email,
		Phone:        m.Phone,
		MeetingDate:  m.MeetingDate,
		MeetingTime:  m.MeetingTime,
		PetName:      m.PetName,
		PetBreed:     m.PetBreed,
		PetImage:     m.PetImage,
		MeetingType:  string(m.MeetingType()),
		PetType:      string(m.PetType),
		IsVaccinated: m.IsVaccinated(),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// check enforces the stored schema: required fields, enum values and the
// vaccination field being present exactly for release meetings.
func (it meetingItem) check() (domain.Variant, error) {
	if err := validate.Struct(it); err != nil {
		return nil, domain.NewError(domain.ErrSchemaViolation, err.Error())
	}
	return domain.VariantFor(domain.MeetingType(it.MeetingType), it.IsVaccinated)
}

func (it meetingItem) toDomain() (domain.Meeting, error) {
	variant, err := it.check()
	if err != nil {
		return domain.Meeting{}, fmt.Errorf("meeting %s: %w", it.MeetingID, err)
	}
	return domain.Meeting{
		MeetingID:   it.MeetingID,
		FullName:    it.FullName,
		Email:       it.Email,
		Phone:       it.Phone,
		MeetingDate: it.MeetingDate,
		MeetingTime: it.MeetingTime,
		PetName:     it.PetName,
		PetBreed:    it.PetBreed,
		PetImage:    it.PetImage,
		PetType:     domain.PetType(it.PetType),
		Variant:     variant,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}, nil
}

// MeetingRepo provides typed DynamoDB operations for the meetings table.
type MeetingRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewMeetingRepo(client *dynamodb.Client, tableName string) *MeetingRepo {
	return &MeetingRepo{client: client, tableName: tableName}
}

// Put assigns the meeting's id and timestamps and stores it. Meetings that
// break the stored schema fail with domain.ErrSchemaViolation and are not written.
func (r *MeetingRepo) Put(ctx context.Context, m *domain.Meeting) error {
	it := toMeetingItem(m)
	it.MeetingID = id.New()
	now := time.Now().UTC()
	it.CreatedAt, it.UpdatedAt = now, now

	if _, err := it.check(); err != nil {
		return err
	}
	item, err := attributevalue.MarshalMap(it)
	if err != nil {
		return fmt.Errorf("marshal meeting: %w", err)
	}
	_, err = r.client.PutItem(ctx, putIfAbsent(r.tableName, fieldMeetingID, item))
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return fmt.Errorf("meeting %s already exists: %w", it.MeetingID, domain.ErrConflict)
		}
		return err
	}
	m.MeetingID, m.CreatedAt, m.UpdatedAt = it.MeetingID, it.CreatedAt, it.UpdatedAt
	return nil
}

// ListByEmail returns every meeting booked under email, ordered by
// domain.CompareMeetings.
func (r *MeetingRepo) ListByEmail(ctx context.Context, email string) ([]domain.Meeting, error) {
	p := dynamodb.NewQueryPaginator(r.client, eqQuery(r.tableName, emailIndex, fieldEmail, email))
	meetings := []domain.Meeting{}
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []meetingItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			m, err := it.toDomain()
			if err != nil {
				return nil, err
			}
			meetings = append(meetings, m)
		}
	}
	slices.SortFunc(meetings, domain.CompareMeetings)
	return meetings, nil
}
