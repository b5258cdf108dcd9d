// Package archive exports finished reports to DynamoDB for other consumers.
// Nothing in the analysis path reads them back.
package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/spacesedan/redlytics/internal/models"
)

type PutItemAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// ReportRecord is the stored shape of one report. Report holds the full
// AnalysisResult as JSON; the other attributes are there for queries.
type ReportRecord struct {
	Username      string `dynamodbav:"username"`
	GeneratedAt   int64  `dynamodbav:"generated_at"`
	RequestID     string `dynamodbav:"request_id,omitempty"`
	TotalPosts    int    `dynamodbav:"total_posts"`
	TotalComments int    `dynamodbav:"total_comments"`
	TotalKarma    int    `dynamodbav:"total_karma"`
	TopSubreddit  string `dynamodbav:"top_subreddit,omitempty"`
	Report        string `dynamodbav:"report"`
	ExpiresAt     int64  `dynamodbav:"expires_at"`
}

type DynamoArchive struct {
	client PutItemAPI
	table  string
	ttl    time.Duration
	now    func() time.Time
}

func NewDynamoArchive(client PutItemAPI, table string, ttl time.Duration) *DynamoArchive {
	return &DynamoArchive{client: client, table: table, ttl: ttl, now: time.Now}
}

func NewRecord(result *models.AnalysisResult, requestID string, now time.Time, ttl time.Duration) (ReportRecord, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return ReportRecord{}, fmt.Errorf("encode report: %w", err)
	}

	rec := ReportRecord{
		Username:      strings.ToLower(result.Username),
		GeneratedAt:   result.GeneratedAt.Unix(),
		RequestID:     requestID,
		TotalPosts:    result.TotalPosts,
		TotalComments: result.TotalComments,
		TotalKarma:    result.TotalKarma,
		Report:        string(payload),
		ExpiresAt:     now.Add(ttl).Unix(),
	}
	if len(result.TopSubredditsByActivity) > 0 {
		rec.TopSubreddit = result.TopSubredditsByActivity[0].Name
	}
	return rec, nil
}

func (a *DynamoArchive) Save(ctx context.Context, result *models.AnalysisResult, requestID string) error {
	rec, err := NewRecord(result, requestID, a.now(), a.ttl)
	if err != nil {
		return fmt.Errorf("[DynamoDB] %w", err)
	}

	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("[DynamoDB] Failed to marshal report item: %w", err)
	}

	_, err = a.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(a.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("[DynamoDB] Failed to store report: %w", err)
	}

	slog.Info("[DynamoDB] Stored report",
		slog.String("table", a.table),
		slog.String("username", rec.Username),
		slog.Int("bytes", len(rec.Report)))
	return nil
}
