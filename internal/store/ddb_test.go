package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	ddb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/tmktstats/shirt-numbers/internal/tmkt"
)

// fake client implementing DynamoDBAPI
type fakeDDB struct {
	calls int
	// simulate first attempt returning unprocessed, second succeeds
	failFirst bool
}

func (f *fakeDDB) BatchWriteItem(ctx context.Context, in *ddb.BatchWriteItemInput, _ ...func(*ddb.Options)) (*ddb.BatchWriteItemOutput, error) {
	f.calls++
	if f.failFirst {
		f.failFirst = false
		// Echo back all as unprocessed to force a retry
		return &ddb.BatchWriteItemOutput{
			UnprocessedItems: in.RequestItems,
		}, nil
	}
	return &ddb.BatchWriteItemOutput{}, nil
}

func TestPutPlayerRows_BatchingAndRetry(t *testing.T) {
	// build 30 players across two teams → 25 + 5 batches
	var squads []tmkt.TeamSquad
	for s := 0; s < 2; s++ {
		var players []tmkt.PlayerRecord
		for i := 0; i < 15; i++ {
			players = append(players, tmkt.PlayerRecord{
				Name:     fmt.Sprintf("P%02d", s*15+i),
				Position: "Centre-Back",
				ShirtNo:  "4",
			})
		}
		squads = append(squads, tmkt.TeamSquad{URL: fmt.Sprintf("team-%d", s), Players: players})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	fc := &fakeDDB{failFirst: true}
	if err := PutPlayerRows(ctx, fc, "tbl", "Premier_League", 2023, squads); err != nil {
		t.Fatalf("PutPlayerRows error: %v", err)
	}
	// First batch attempted twice (one retry), second once.
	if fc.calls != 3 {
		t.Fatalf("expected 3 BatchWriteItem calls (25-batch x2 + 5-batch x1), got %d", fc.calls)
	}
}

type fakeQuery struct {
	pages [][]map[string]types.AttributeValue
	call  int
}

func (f *fakeQuery) Query(ctx context.Context, in *ddb.QueryInput, _ ...func(*ddb.Options)) (*ddb.QueryOutput, error) {
	page := f.pages[f.call]
	f.call++
	out := &ddb.QueryOutput{Items: page}
	if f.call < len(f.pages) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"LeagueSeason": &types.AttributeValueMemberS{Value: "cursor"},
		}
	}
	return out, nil
}

func item(name, pos, shirt string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"Name":     &types.AttributeValueMemberS{Value: name},
		"Position": &types.AttributeValueMemberS{Value: pos},
		"ShirtNo":  &types.AttributeValueMemberS{Value: shirt},
	}
}

func TestLoadPlayerRecords_Paginates(t *testing.T) {
	fq := &fakeQuery{pages: [][]map[string]types.AttributeValue{
		{item("A", "Goalkeeper", "1")},
		{item("B", "Centre-Forward", ""), item("C", "Left Winger", "11")},
	}}
	records, err := LoadPlayerRecords(context.Background(), fq, "tbl", "LaLiga", 2023)
	if err != nil {
		t.Fatalf("LoadPlayerRecords error: %v", err)
	}
	if fq.call != 2 {
		t.Errorf("expected 2 query pages, got %d", fq.call)
	}
	want := []tmkt.PlayerRecord{
		{Name: "A", Position: "Goalkeeper", ShirtNo: "1"},
		{Name: "B", Position: "Centre-Forward", ShirtNo: ""},
		{Name: "C", Position: "Left Winger", ShirtNo: "11"},
	}
	if len(records) != len(want) {
		t.Fatalf("got %d records, want %d", len(records), len(want))
	}
	for i := range want {
		if records[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, records[i], want[i])
		}
	}
}
