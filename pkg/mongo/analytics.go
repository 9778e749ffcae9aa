package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type WalletSegment struct {
	Segment    string  `json:"segment" bson:"_id"`
	MinBalance float64 `json:"min_balance" bson:"min_balance"`
	MaxBalance float64 `json:"max_balance" bson:"max_balance"`
	UserCount  int     `json:"user_count" bson:"count"`
	AvgBalance float64 `json:"avg_balance" bson:"avg_balance"`
	Total      float64 `json:"total_balance" bson:"total_balance"`
}

type WalletSegmentsResult struct {
	Segments   []WalletSegment `json:"segments"`
	TotalUsers int             `json:"total_users"`
}

// WalletSegments buckets users by remaining wallet balance. Negative
// balances are possible after checkout overdrafts, so the first boundary
// starts well below zero.
func (r *UserRepository) WalletSegments(ctx context.Context) (*WalletSegmentsResult, error) {
	pipeline := bson.A{
		bson.D{
			{Key: "$bucket", Value: bson.D{
				{Key: "groupBy", Value: "$walletMoney"},
				{Key: "boundaries", Value: bson.A{-100000, 0, 100, 500, 1000, 5000}},
				{Key: "default", Value: "5000+"},
				{Key: "output", Value: bson.D{
					{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
					{Key: "avg_balance", Value: bson.D{{Key: "$avg", Value: "$walletMoney"}}},
					{Key: "total_balance", Value: bson.D{{Key: "$sum", Value: "$walletMoney"}}},
					{Key: "min_balance", Value: bson.D{{Key: "$min", Value: "$walletMoney"}}},
					{Key: "max_balance", Value: bson.D{{Key: "$max", Value: "$walletMoney"}}},
				}},
			}},
		},
		bson.D{
			{Key: "$addFields", Value: bson.D{
				{Key: "segment", Value: bson.D{
					{Key: "$switch", Value: bson.D{
						{Key: "branches", Value: bson.A{
							bson.D{
								{Key: "case", Value: bson.D{{Key: "$eq", Value: bson.A{"$_id", -100000}}}},
								{Key: "then", Value: "Overdrawn (<0)"},
							},
							bson.D{
								{Key: "case", Value: bson.D{{Key: "$eq", Value: bson.A{"$_id", 0}}}},
								{Key: "then", Value: "Low (0-100)"},
							},
							bson.D{
								{Key: "case", Value: bson.D{{Key: "$eq", Value: bson.A{"$_id", 100}}}},
								{Key: "then", Value: "Standard (100-500)"},
							},
							bson.D{
								{Key: "case", Value: bson.D{{Key: "$eq", Value: bson.A{"$_id", 500}}}},
								{Key: "then", Value: "Funded (500-1000)"},
							},
							bson.D{
								{Key: "case", Value: bson.D{{Key: "$eq", Value: bson.A{"$_id", 1000}}}},
								{Key: "then", Value: "High (1000-5000)"},
							},
						}},
						{Key: "default", Value: "Top (5000+)"},
					}},
				}},
			}},
		},
		bson.D{
			{Key: "$project", Value: bson.D{
				{Key: "_id", Value: "$segment"},
				{Key: "min_balance", Value: 1},
				{Key: "max_balance", Value: 1},
				{Key: "count", Value: 1},
				{Key: "avg_balance", Value: bson.D{{Key: "$round", Value: bson.A{"$avg_balance", 2}}}},
				{Key: "total_balance", Value: bson.D{{Key: "$round", Value: bson.A{"$total_balance", 2}}}},
			}},
		},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var segments []WalletSegment
	if err := cursor.All(ctx, &segments); err != nil {
		return nil, err
	}

	totalUsers := 0
	for _, segment := range segments {
		totalUsers += segment.UserCount
	}

	return &WalletSegmentsResult{
		Segments:   segments,
		TotalUsers: totalUsers,
	}, nil
}
