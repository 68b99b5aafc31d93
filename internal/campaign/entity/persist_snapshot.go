package entity

// CampaignPersistSnapshot 是带版本号的落盘快照，
// 写库侧按 version 高者胜，防止旧值覆盖新值。
type CampaignPersistSnapshot struct {
	Version    uint64
	CampaignID string
	State      *State
}

// BuildPersistSnapshot 无改动时返回 false，调度方跳过本轮落盘。
// 持久化快照不含回合历史，历史走流水仓库。
func (c *Campaign) BuildPersistSnapshot(version uint64) (*CampaignPersistSnapshot, bool) {
	if !c.dirty {
		return nil, false
	}
	return &CampaignPersistSnapshot{
		Version:    version,
		CampaignID: c.id,
		State:      c.State(false),
	}, true
}
