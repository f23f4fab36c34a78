package store

import (
	"context"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/tmktstats/shirt-numbers/internal/tmkt"
)

type DynamoDBReadAPI interface {
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// LoadPlayerRecords reads back every player row of a league+season partition,
// following pagination. Items come out in SK order, which is the order the
// collector stored them in. Name and Position are aliased in the projection
// because both are DynamoDB reserved words.
func LoadPlayerRecords(ctx context.Context, ddb DynamoDBReadAPI, table, league string, season int) ([]tmkt.PlayerRecord, error) {
	pk := league + "#" + strconv.Itoa(season)

	var records []tmkt.PlayerRecord
	var lastKey map[string]types.AttributeValue
	for {
		out, err := ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(table),
			KeyConditionExpression: aws.String("#pk = :v"),
			ExpressionAttributeNames: map[string]string{
				"#pk":  "LeagueSeason",
				"#nm":  "Name",
				"#pos": "Position",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":v": &types.AttributeValueMemberS{Value: pk},
			},
			ProjectionExpression: aws.String("#nm, #pos, ShirtNo"),
			ExclusiveStartKey:    lastKey,
		})
		if err != nil {
			return nil, err
		}
		for _, it := range out.Items {
			var rec tmkt.PlayerRecord
			if v, ok := it["Name"].(*types.AttributeValueMemberS); ok {
				rec.Name = v.Value
			}
			if v, ok := it["Position"].(*types.AttributeValueMemberS); ok {
				rec.Position = v.Value
			}
			if v, ok := it["ShirtNo"].(*types.AttributeValueMemberS); ok {
				rec.ShirtNo = v.Value
			}
			records = append(records, rec)
		}
		lastKey = out.LastEvaluatedKey
		if len(lastKey) == 0 {
			break
		}
	}
	return records, nil
}
