// Package store persists scraped player rows and computed frequency tables in
// DynamoDB.
package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/tmktstats/shirt-numbers/internal/stats"
	"github.com/tmktstats/shirt-numbers/internal/tmkt"
)

type DynamoDBAPI interface {
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

// PutPlayerRows writes every player of a collected league. PK=LeagueSeason
// (league#season), SK=a zero-padded global row index so read-back preserves
// collector order. Duplicate players are kept as distinct rows.
func PutPlayerRows(ctx context.Context, ddb DynamoDBAPI, table, league string, season int, squads []tmkt.TeamSquad) error {
	if len(squads) == 0 {
		return nil
	}
	const maxBatch = 25
	pk := league + "#" + strconv.Itoa(season)
	now := strconv.FormatInt(time.Now().Unix(), 10)

	seq := 0
	reqs := make([]types.WriteRequest, 0, maxBatch)
	flush := func() error {
		if len(reqs) == 0 {
			return nil
		}
		if err := batchWriteWithRetry(ctx, ddb, table, reqs); err != nil {
			return fmt.Errorf("batch write player rows: %w", err)
		}
		reqs = reqs[:0]
		return nil
	}
	for _, squad := range squads {
		for _, p := range squad.Players {
			item := map[string]types.AttributeValue{
				"LeagueSeason": &types.AttributeValueMemberS{Value: pk},
				"Seq":          &types.AttributeValueMemberS{Value: fmt.Sprintf("%05d", seq)},
				"League":       &types.AttributeValueMemberS{Value: league},
				"Season":       &types.AttributeValueMemberN{Value: strconv.Itoa(season)},
				"Team":         &types.AttributeValueMemberS{Value: squad.URL},
				"Name":         &types.AttributeValueMemberS{Value: p.Name},
				"Position":     &types.AttributeValueMemberS{Value: p.Position},
				"ShirtNo":      &types.AttributeValueMemberS{Value: p.ShirtNo},
				"UpdatedAt":    &types.AttributeValueMemberN{Value: now},
			}
			reqs = append(reqs, types.WriteRequest{PutRequest: &types.PutRequest{Item: item}})
			seq++
			if len(reqs) == maxBatch {
				if err := flush(); err != nil {
					return err
				}
			}
		}
	}
	return flush()
}

// PutFrequencyRows writes a computed frequency table. PK=LeagueSeason,
// SK=code#rank, keeping the fixed enumeration order on read-back.
func PutFrequencyRows(ctx context.Context, ddb DynamoDBAPI, table, league string, season int, rows []stats.FrequencyRow) error {
	if len(rows) == 0 {
		return nil
	}
	const maxBatch = 25
	pk := league + "#" + strconv.Itoa(season)
	now := strconv.FormatInt(time.Now().Unix(), 10)

	rank := 0
	prev := stats.Code("")
	reqs := make([]types.WriteRequest, 0, maxBatch)
	for _, row := range rows {
		if row.Position != prev {
			rank = 0
			prev = row.Position
		}
		item := map[string]types.AttributeValue{
			"LeagueSeason": &types.AttributeValueMemberS{Value: pk},
			"PosRank":      &types.AttributeValueMemberS{Value: fmt.Sprintf("%s#%02d", row.Position, rank)},
			"Position":     &types.AttributeValueMemberS{Value: string(row.Position)},
			"ShirtNo":      &types.AttributeValueMemberN{Value: strconv.Itoa(row.ShirtNo)},
			"Frequency":    &types.AttributeValueMemberN{Value: strconv.Itoa(row.Count)},
			"UpdatedAt":    &types.AttributeValueMemberN{Value: now},
		}
		reqs = append(reqs, types.WriteRequest{PutRequest: &types.PutRequest{Item: item}})
		rank++
		if len(reqs) == maxBatch {
			if err := batchWriteWithRetry(ctx, ddb, table, reqs); err != nil {
				return fmt.Errorf("batch write frequency rows: %w", err)
			}
			reqs = reqs[:0]
		}
	}
	if len(reqs) > 0 {
		if err := batchWriteWithRetry(ctx, ddb, table, reqs); err != nil {
			return fmt.Errorf("batch write frequency rows: %w", err)
		}
	}
	return nil
}

func batchWriteWithRetry(ctx context.Context, ddb DynamoDBAPI, table string, reqs []types.WriteRequest) error {
	input := &dynamodb.BatchWriteItemInput{
		RequestItems: map[string][]types.WriteRequest{table: reqs},
	}
	const maxAttempts = 6
	backoff := 120 * time.Millisecond

	for attempt := 0; attempt < maxAttempts; attempt++ {
		out, err := ddb.BatchWriteItem(ctx, input)
		if err != nil {
			return err
		}
		if len(out.UnprocessedItems) == 0 {
			return nil
		}
		input.RequestItems = out.UnprocessedItems
		time.Sleep(backoff)
		if backoff < 2*time.Second {
			backoff += 120 * time.Millisecond
		}
	}
	return fmt.Errorf("unprocessed items remained after retries for table %s", table)
}
