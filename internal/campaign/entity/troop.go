package entity

func (c *Campaign) Troops() []*Troop     { return c.troops }
func (c *Campaign) Captains() []*Captain { return c.captains }

// TroopDraft 手动建队用。
type TroopDraft struct {
	Name       string
	Tier       string
	Type       string
	Advantages string
}

// AddTroop 手动添加一支部队（剧情奖励、俘虏收编等）。
func (c *Campaign) AddTroop(draft TroopDraft) *Troop {
	t := &Troop{
		ID:         "troop-" + c.newID(),
		Name:       draft.Name,
		Tier:       draft.Tier,
		Type:       draft.Type,
		Status:     TroopActive,
		Advantages: draft.Advantages,
	}
	c.troops = append(c.troops, t)
	c.markDirty()
	return t
}

// RemoveTroop 除名，并把任务里的指派引用一并清掉。
func (c *Campaign) RemoveTroop(id string) bool {
	for i, t := range c.troops {
		if t.ID != id {
			continue
		}
		for _, m := range c.missions {
			for j, tid := range m.AssignedTroopIDs {
				if tid == id {
					m.AssignedTroopIDs = append(m.AssignedTroopIDs[:j], m.AssignedTroopIDs[j+1:]...)
					break
				}
			}
		}
		c.troops = append(c.troops[:i], c.troops[i+1:]...)
		c.markDirty()
		return true
	}
	return false
}

// UpdateTroopStatus 改部队状态并累计完成任务数。
// 状态只认闭集词表，词表外的输入直接拒绝，保证导出的存档一定能再导入。
// 休整锁：recoveringUntilTurn 未到期前不允许离开 recovering。
// 进入 recovering 时盖 当前回合+1 的解锁戳，离开时清掉。
func (c *Campaign) UpdateTroopStatus(id, status string, deltaMissions int) bool {
	if !IsTroopStatus(status) {
		return false
	}
	t := c.findTroop(id)
	if t == nil {
		return false
	}
	if t.Status == TroopRecovering && t.RecoveringUntilTurn != 0 &&
		c.turn <= t.RecoveringUntilTurn && status != TroopRecovering {
		return false
	}
	t.Status = status
	t.MissionsCompleted += deltaMissions
	if t.MissionsCompleted < 0 {
		t.MissionsCompleted = 0
	}
	if status == TroopRecovering {
		t.RecoveringUntilTurn = c.turn + 1
	} else {
		t.RecoveringUntilTurn = 0
	}
	c.markDirty()
	return true
}

// UpdateCaptainNotes 改队长备注。
func (c *Campaign) UpdateCaptainNotes(id, notes string) bool {
	cpt := c.findCaptain(id)
	if cpt == nil {
		return false
	}
	cpt.Notes = notes
	c.markDirty()
	return true
}
