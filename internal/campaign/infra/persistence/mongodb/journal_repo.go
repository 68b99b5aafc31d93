package mongodb

import (
	"context"
	"errors"
	"time"

	"Stronghold/internal/campaign/errs"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	turnCollectionName    = "campaign_turns"
	missionCollectionName = "campaign_missions"
)

const (
	OpAppendTurn    = "repo.journal.AppendTurnSummary"
	OpAppendMission = "repo.journal.AppendMissionLog"
	OpTurnSummaries = "repo.journal.TurnSummaries"
)

// JournalRepo 只追加的战役流水：回合摘要与任务结算。
type JournalRepo struct {
	turns    *mongo.Collection
	missions *mongo.Collection
}

func NewJournalRepo(db *mongo.Database) *JournalRepo {
	if db == nil {
		return &JournalRepo{}
	}
	return &JournalRepo{
		turns:    db.Collection(turnCollectionName),
		missions: db.Collection(missionCollectionName),
	}
}

type turnDoc struct {
	CampaignID string    `bson:"campaign_id"`
	Turn       int       `bson:"turn"`
	Summary    string    `bson:"summary"`
	CreatedAt  time.Time `bson:"created_at"`
}

type missionDoc struct {
	CampaignID string    `bson:"campaign_id"`
	Turn       int       `bson:"turn"`
	MissionID  string    `bson:"mission_id"`
	Name       string    `bson:"name"`
	Result     string    `bson:"result"`
	Roll       int       `bson:"roll"`
	Total      int       `bson:"total"`
	CreatedAt  time.Time `bson:"created_at"`
}

func (r *JournalRepo) AppendTurnSummary(ctx context.Context, campaignID string, turn int, summary string) error {
	if r == nil || r.turns == nil {
		return errs.Wrap(OpAppendTurn, errs.KindInfra, errors.New("mongodb turns collection is nil"), nil)
	}
	_, err := r.turns.InsertOne(ctx, turnDoc{
		CampaignID: campaignID,
		Turn:       turn,
		Summary:    summary,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		return errs.Wrap(OpAppendTurn, errs.KindInfra, err, map[string]any{"campaign_id": campaignID, "turn": turn})
	}
	return nil
}

func (r *JournalRepo) AppendMissionLog(ctx context.Context, campaignID string, turn int, missionID, name, result string, roll, total int) error {
	if r == nil || r.missions == nil {
		return errs.Wrap(OpAppendMission, errs.KindInfra, errors.New("mongodb missions collection is nil"), nil)
	}
	_, err := r.missions.InsertOne(ctx, missionDoc{
		CampaignID: campaignID,
		Turn:       turn,
		MissionID:  missionID,
		Name:       name,
		Result:     result,
		Roll:       roll,
		Total:      total,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		return errs.Wrap(OpAppendMission, errs.KindInfra, err, map[string]any{"campaign_id": campaignID, "mission_id": missionID})
	}
	return nil
}

// TurnSummaries 最近 limit 条回合摘要，按回合倒序。
func (r *JournalRepo) TurnSummaries(ctx context.Context, campaignID string, limit int) ([]string, error) {
	if r == nil || r.turns == nil {
		return nil, errs.Wrap(OpTurnSummaries, errs.KindInfra, errors.New("mongodb turns collection is nil"), nil)
	}
	if limit <= 0 {
		limit = 20
	}
	opts := options.Find().SetSort(bson.D{{Key: "turn", Value: -1}}).SetLimit(int64(limit))
	cur, err := r.turns.Find(ctx, bson.M{"campaign_id": campaignID}, opts)
	if err != nil {
		return nil, errs.Wrap(OpTurnSummaries, errs.KindInfra, err, map[string]any{"campaign_id": campaignID})
	}
	defer cur.Close(ctx)

	var out []string
	for cur.Next(ctx) {
		var doc turnDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, errs.Wrap(OpTurnSummaries, errs.KindInfra, err, map[string]any{"campaign_id": campaignID})
		}
		out = append(out, doc.Summary)
	}
	if err := cur.Err(); err != nil {
		return nil, errs.Wrap(OpTurnSummaries, errs.KindInfra, err, map[string]any{"campaign_id": campaignID})
	}
	return out, nil
}
