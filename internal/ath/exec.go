// Package ath runs the shirt-frequency aggregation as Athena SQL for the
// batch path, where scraped rosters live as CSV objects behind a Glue table.
package ath

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/athena"
	"github.com/aws/aws-sdk-go-v2/service/athena/types"
)

type Runner struct {
	Client    *athena.Client
	Workgroup string
	Database  string
	OutputS3  string // s3://bucket/prefix/
	Logger    *log.Logger
}

func (r *Runner) logf(format string, args ...any) {
	if r.Logger != nil {
		r.Logger.Printf(format, args...)
	}
}

// ExecAndWait starts sql and polls once a second until it finishes.
func (r *Runner) ExecAndWait(ctx context.Context, sql string) (*types.QueryExecution, error) {
	started, err := r.Client.StartQueryExecution(ctx, &athena.StartQueryExecutionInput{
		QueryString:           &sql,
		QueryExecutionContext: &types.QueryExecutionContext{Database: &r.Database},
		ResultConfiguration:   &types.ResultConfiguration{OutputLocation: &r.OutputS3},
		WorkGroup:             &r.Workgroup,
	})
	if err != nil {
		return nil, fmt.Errorf("start query: %w", err)
	}
	queryID := *started.QueryExecutionId
	r.logf("athena: qid=%s started", queryID)

	tick := time.NewTicker(1 * time.Second)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-tick.C:
		}
		ge, err := r.Client.GetQueryExecution(ctx, &athena.GetQueryExecutionInput{
			QueryExecutionId: &queryID,
		})
		if err != nil {
			return nil, fmt.Errorf("get query execution: %w", err)
		}
		switch ge.QueryExecution.Status.State {
		case types.QueryExecutionStateSucceeded:
			if s := ge.QueryExecution.Statistics; s != nil && s.DataScannedInBytes != nil {
				r.logf("athena: qid=%s SUCCEEDED (data scanned=%.3f MB)",
					queryID, float64(*s.DataScannedInBytes)/1024.0/1024.0)
			}
			return ge.QueryExecution, nil
		case types.QueryExecutionStateFailed:
			reason := ""
			if ge.QueryExecution.Status.StateChangeReason != nil {
				reason = *ge.QueryExecution.Status.StateChangeReason
			}
			return nil, errors.New("athena failed: " + reason)
		case types.QueryExecutionStateCancelled:
			return nil, errors.New("athena cancelled")
		default:
			// still running
		}
	}
}

// CountRows returns COUNT(*) of a table, for post-materialization checks.
func (r *Runner) CountRows(ctx context.Context, table string) (int64, error) {
	exec, err := r.ExecAndWait(ctx, fmt.Sprintf("SELECT COUNT(*) AS c FROM %s", table))
	if err != nil {
		return 0, err
	}
	gr, err := r.Client.GetQueryResults(ctx, &athena.GetQueryResultsInput{
		QueryExecutionId: exec.QueryExecutionId,
	})
	if err != nil {
		return 0, fmt.Errorf("get results: %w", err)
	}
	// row 0 is the header row Athena always returns
	if len(gr.ResultSet.Rows) < 2 || len(gr.ResultSet.Rows[1].Data) < 1 || gr.ResultSet.Rows[1].Data[0].VarCharValue == nil {
		return 0, errors.New("unexpected COUNT(*) result shape")
	}
	var n int64
	if _, err := fmt.Sscan(*gr.ResultSet.Rows[1].Data[0].VarCharValue, &n); err != nil {
		return 0, fmt.Errorf("parse count: %w", err)
	}
	return n, nil
}
