package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/kshiteeshhh/qkart-backend/pkg/mongo"
)

type fakeWalletAnalytics struct {
	result *mongo.WalletSegmentsResult
	err    error
}

func (f *fakeWalletAnalytics) WalletSegments(ctx context.Context) (*mongo.WalletSegmentsResult, error) {
	return f.result, f.err
}

func TestWalletSegments(t *testing.T) {
	fake := &fakeWalletAnalytics{result: &mongo.WalletSegmentsResult{
		Segments:   []mongo.WalletSegment{{Segment: "Standard (100-500)", UserCount: 3}},
		TotalUsers: 3,
	}}
	svc := NewAnalyticsService(fake)

	result, err := svc.WalletSegments(context.Background())
	if err != nil {
		t.Fatalf("WalletSegments: %v", err)
	}
	if result.TotalUsers != 3 {
		t.Errorf("total users = %d, want 3", result.TotalUsers)
	}
}

func TestWalletSegmentsFailure(t *testing.T) {
	fake := &fakeWalletAnalytics{err: errors.New("aggregation failed")}
	svc := NewAnalyticsService(fake)

	_, err := svc.WalletSegments(context.Background())
	assertAPIError(t, err, http.StatusInternalServerError, "")
}

// The AI service is never initialized under test, so the report endpoint
// must report unavailability.
func TestSpendingReportUnavailableWithoutAI(t *testing.T) {
	svc := NewAnalyticsService(&fakeWalletAnalytics{result: &mongo.WalletSegmentsResult{}})

	_, err := svc.SpendingReport(context.Background())
	assertAPIError(t, err, http.StatusServiceUnavailable, "AI service is not enabled")
}
