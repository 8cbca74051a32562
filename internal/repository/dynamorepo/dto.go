package dynamorepo

import (
	"strings"
	"time"

	"github.com/mrled/suns/palin/internal/model"
)

// sortKeyPrefix keeps the sort key non-empty, since DynamoDB rejects empty key attributes
const sortKeyPrefix = "t#"

// DynamoDTO represents the persistence layer DTO for DynamoDB
// It maps the domain model to DynamoDB's key structure where:
// - pk (partition key) is the fold name
// - sk (sort key) is the checked text behind a fixed prefix
type DynamoDTO struct {
	PK           string    `dynamodbav:"pk"`
	SK           string    `dynamodbav:"sk"`
	IsPalindrome bool      `dynamodbav:"IsPalindrome"`
	CheckTime    time.Time `dynamodbav:"CheckTime"`
	Rev          int64     `dynamodbav:"Rev"`
}

func sortKey(text string) string {
	return sortKeyPrefix + text
}

// ToDomain converts a DynamoDTO to a domain model CheckRecord
func (dto *DynamoDTO) ToDomain() *model.CheckRecord {
	return &model.CheckRecord{
		Text:         strings.TrimPrefix(dto.SK, sortKeyPrefix),
		Fold:         dto.PK,
		IsPalindrome: dto.IsPalindrome,
		CheckTime:    dto.CheckTime,
		Rev:          dto.Rev,
	}
}

// FromDomain creates a DynamoDTO from a domain model CheckRecord
func FromDomain(record *model.CheckRecord) *DynamoDTO {
	return &DynamoDTO{
		PK:           record.Fold,
		SK:           sortKey(record.Text),
		IsPalindrome: record.IsPalindrome,
		CheckTime:    record.CheckTime,
		Rev:          record.Rev,
	}
}

// ToDomainList converts a slice of DynamoDTOs to domain model CheckRecords
func ToDomainList(dtos []*DynamoDTO) []*model.CheckRecord {
	records := make([]*model.CheckRecord, len(dtos))
	for i, dto := range dtos {
		records[i] = dto.ToDomain()
	}
	return records
}
