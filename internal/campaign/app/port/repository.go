package port

import (
	"context"

	"Stronghold/internal/campaign/entity"
)

// CampaignRepository 战役状态的加载与落盘。
// Load 在没有存档时返回一个全新战役，而不是报错。
type CampaignRepository interface {
	LoadCampaign(ctx context.Context, id string) (*entity.Campaign, error)
	Snapshot(ctx context.Context, s *entity.CampaignPersistSnapshot) error
}

// JournalRepository 战役流水：回合摘要、任务结算这类只追加的记录。
// 写失败只记日志不阻断主流程。
type JournalRepository interface {
	AppendTurnSummary(ctx context.Context, campaignID string, turn int, summary string) error
	AppendMissionLog(ctx context.Context, campaignID string, turn int, missionID, name, result string, roll, total int) error
	TurnSummaries(ctx context.Context, campaignID string, limit int) ([]string, error)
}
