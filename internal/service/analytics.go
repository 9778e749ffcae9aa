package service

import (
	"context"
	"net/http"

	"github.com/kshiteeshhh/qkart-backend/pkg/ai"
	"github.com/kshiteeshhh/qkart-backend/pkg/apierror"
	"github.com/kshiteeshhh/qkart-backend/pkg/mongo"
)

// WalletAnalytics is implemented by the user repository.
type WalletAnalytics interface {
	WalletSegments(ctx context.Context) (*mongo.WalletSegmentsResult, error)
}

type AnalyticsService struct {
	analytics WalletAnalytics
}

func NewAnalyticsService(analytics WalletAnalytics) *AnalyticsService {
	return &AnalyticsService{analytics: analytics}
}

func (s *AnalyticsService) WalletSegments(ctx context.Context) (*mongo.WalletSegmentsResult, error) {
	result, err := s.analytics.WalletSegments(ctx)
	if err != nil {
		return nil, apierror.NewInternal("Failed to aggregate wallet segments", err)
	}
	return result, nil
}

func (s *AnalyticsService) SpendingReport(ctx context.Context) (*ai.AIReportResponse, error) {
	if !ai.IsEnabled() {
		return nil, apierror.New(http.StatusServiceUnavailable, "AI service is not enabled")
	}

	segments, err := s.analytics.WalletSegments(ctx)
	if err != nil {
		return nil, apierror.NewInternal("Failed to aggregate wallet segments", err)
	}

	report, err := ai.GenerateSpendingReport(ctx, segments)
	if err != nil {
		return nil, apierror.NewInternal("Failed to generate spending report", err)
	}
	return report, nil
}
