package mysql

import (
	"context"
	"encoding/json"
	"errors"

	"Stronghold/internal/campaign/entity"
	"Stronghold/internal/campaign/errs"
	"Stronghold/internal/campaign/infra/persistence/model"
	"Stronghold/internal/campaign/snapshot"

	"gorm.io/gorm"
)

type CampaignRepo struct {
	db *gorm.DB
	// entityOpts 在装载时传给聚合（固定骰子序列等联调选项）。
	entityOpts []entity.Option
}

func NewCampaignRepo(db *gorm.DB, opts ...entity.Option) *CampaignRepo {
	return &CampaignRepo{db: db, entityOpts: opts}
}

const OpLoadCampaign = "repo.campaign.LoadCampaign"

// LoadCampaign 无存档时返回全新战役。存档要过快照校验，
// 坏行宁可报错也不装载。
func (r *CampaignRepo) LoadCampaign(ctx context.Context, id string) (*entity.Campaign, error) {
	var m model.CampaignState
	err := r.db.WithContext(ctx).Where("campaign_id = ?", id).First(&m).Error

	switch {
	case err == nil:
		var s entity.State
		if err := json.Unmarshal(m.State, &s); err != nil {
			return nil, errs.Wrap(OpLoadCampaign, errs.KindInfra, err, map[string]any{"campaign_id": id})
		}
		if err := snapshot.Validate(&s); err != nil {
			return nil, errs.Wrap(OpLoadCampaign, errs.KindInfra, err, map[string]any{"campaign_id": id})
		}
		c := entity.New(id, r.entityOpts...)
		c.RestoreState(&s)
		c.ClearDirty()
		return c, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return entity.New(id, r.entityOpts...), nil
	default:
		//  纯技术错误（连接超时等），是无法转换的技术错误，保持原样或包装返回给上级
		return nil, errs.Wrap(OpLoadCampaign, errs.KindInfra, err, map[string]any{"campaign_id": id})
	}
}

const OpSnapshot = "repo.campaign.Snapshot"

// Snapshot 高版本胜出的落盘：并发重试场景下旧快照写不进去。
func (r *CampaignRepo) Snapshot(ctx context.Context, s *entity.CampaignPersistSnapshot) error {
	if s == nil {
		return nil
	}

	raw, err := json.Marshal(s.State)
	if err != nil {
		return errs.Wrap(OpSnapshot, errs.KindInfra, err, map[string]any{"campaign_id": s.CampaignID})
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.CampaignState
		findErr := tx.Where("campaign_id = ?", s.CampaignID).First(&existing).Error
		if errors.Is(findErr, gorm.ErrRecordNotFound) {
			return tx.Create(&model.CampaignState{
				CampaignID: s.CampaignID,
				Version:    s.Version,
				State:      raw,
			}).Error
		}
		if findErr != nil {
			return findErr
		}
		if existing.Version >= s.Version {
			// 已有更新的版本，丢弃本次快照
			return nil
		}
		return tx.Model(&model.CampaignState{}).
			Where("campaign_id = ? AND version < ?", s.CampaignID, s.Version).
			Updates(map[string]any{"version": s.Version, "state": raw}).Error
	})
	if err != nil {
		return errs.Wrap(OpSnapshot, errs.KindInfra, err, map[string]any{"campaign_id": s.CampaignID})
	}
	return nil
}
