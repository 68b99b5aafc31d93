package model

import "time"

// CampaignState 整份状态存一行 JSON，version 用于防旧覆盖新。
type CampaignState struct {
	CampaignID string    `gorm:"column:campaign_id;primaryKey;size:64"`
	Version    uint64    `gorm:"column:version;not null"`
	State      []byte    `gorm:"column:state;type:json;not null"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (CampaignState) TableName() string {
	return "campaign_states"
}
