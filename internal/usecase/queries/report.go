package queries

import "context"

type ReportQueries interface {
	Summary(ctx context.Context) (*ReportSummary, error)
}

type ReportReadStore interface {
	Summary(ctx context.Context) (*ReportSummary, error)
}

type reportQueriesImpl struct {
	readStore ReportReadStore
}

func NewReportQueries(readStore ReportReadStore) ReportQueries {
	return &reportQueriesImpl{readStore: readStore}
}

func (q *reportQueriesImpl) Summary(ctx context.Context) (*ReportSummary, error) {
	return q.readStore.Summary(ctx)
}
