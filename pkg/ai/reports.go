package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kshiteeshhh/qkart-backend/pkg/mongo"
)

// AIReportResponse represents the structure of AI-generated reports
type AIReportResponse struct {
	Status      string     `json:"status"`
	Data        ReportData `json:"data"`
	GeneratedAt time.Time  `json:"generated_at"`
	AIEnabled   bool       `json:"ai_enabled"`
}

type ReportData struct {
	RawData    interface{} `json:"raw_data"`
	AIInsights string      `json:"ai_insights,omitempty"`
	Summary    string      `json:"summary"`
	Error      string      `json:"error,omitempty"`
}

// GenerateSpendingReport generates AI-powered insights from wallet
// segmentation data. The caller fetches the segments; this only does the
// narrative layer on top.
func GenerateSpendingReport(ctx context.Context, segments *mongo.WalletSegmentsResult) (*AIReportResponse, error) {
	response := &AIReportResponse{
		Status:      "success",
		GeneratedAt: time.Now(),
		AIEnabled:   IsEnabled(),
		Data: ReportData{
			RawData: segments,
			Summary: "Wallet segmentation data retrieved successfully",
		},
	}

	if IsEnabled() {
		userPrompt := formatWalletSegmentsPrompt(segments)
		aiInsights, err := generateCompletion(ctx, SpendingReportSystemPrompt, userPrompt)
		if err != nil {
			response.Data.Error = "AI analysis failed: " + err.Error()
		} else {
			response.Data.AIInsights = aiInsights
			response.Data.Summary = "AI-generated spending insights and recommendations"
		}
	} else {
		response.Data.Summary = "Raw wallet data (AI insights unavailable)"
	}

	return response, nil
}

func formatWalletSegmentsPrompt(segments *mongo.WalletSegmentsResult) string {
	jsonData, _ := json.MarshalIndent(segments, "", "  ")
	return fmt.Sprintf(`Analyze the following wallet balance segmentation data and provide insights:

%s

Please provide:
1. Spending patterns visible across the balance segments
2. Segments most at risk of disengaging
3. Top-up and re-engagement strategies
4. Personalization recommendations for each segment`, string(jsonData))
}
