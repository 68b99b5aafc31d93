package entity

// 任务结算阈值：2d12 + 修正，≥23 大成功 / ≥17 成功 / ≥13 惨胜 / 其余失败。
const (
	missionCritThreshold        = 23
	missionSuccessThreshold     = 17
	missionConsequenceThreshold = 13
)

func (c *Campaign) Missions() []*Mission { return c.missions }

// MissionDraft 建任务时调用方给的字段，id 和回合由聚合补。
type MissionDraft struct {
	Name        string
	Category    string
	Scale       string
	Description string
	Modifier    int
}

// AddMission 登记一个新任务。
func (c *Campaign) AddMission(draft MissionDraft) *Mission {
	m := &Mission{
		ID:               "mission-" + c.newID(),
		Name:             draft.Name,
		Category:         draft.Category,
		Scale:            draft.Scale,
		Description:      draft.Description,
		Modifier:         draft.Modifier,
		AssignedTroopIDs: []string{},
		Turn:             c.turn,
	}
	c.missions = append(c.missions, m)
	c.markDirty()
	return m
}

// MissionUpdate 部分更新，nil 字段不动。
type MissionUpdate struct {
	Name         *string
	Category     *string
	Scale        *string
	Description  *string
	Modifier     *int
	Result       *string
	Consequences *string
}

func (c *Campaign) UpdateMission(id string, upd MissionUpdate) bool {
	m := c.findMission(id)
	if m == nil {
		return false
	}
	if upd.Name != nil {
		m.Name = *upd.Name
	}
	if upd.Category != nil {
		m.Category = *upd.Category
	}
	if upd.Scale != nil {
		m.Scale = *upd.Scale
	}
	if upd.Description != nil {
		m.Description = *upd.Description
	}
	if upd.Modifier != nil {
		m.Modifier = *upd.Modifier
	}
	if upd.Result != nil {
		m.Result = *upd.Result
	}
	if upd.Consequences != nil {
		m.Consequences = *upd.Consequences
	}
	c.markDirty()
	return true
}

// DeleteMission 删任务并回收所有队长的指派回链。
func (c *Campaign) DeleteMission(id string) bool {
	for i, m := range c.missions {
		if m.ID != id {
			continue
		}
		for _, cpt := range c.captains {
			if cpt.AssignedMissionID == id {
				cpt.AssignedMissionID = ""
			}
		}
		c.missions = append(c.missions[:i], c.missions[i+1:]...)
		c.markDirty()
		return true
	}
	return false
}

// MissionResolution 掷骰结算明细。
type MissionResolution struct {
	Roll   int    `json:"roll"`
	Total  int    `json:"total"`
	Result string `json:"result"`
}

// ResolveMission 掷 2d12 加修正定结果。重掷直接覆盖上一次。
func (c *Campaign) ResolveMission(id string, modifier int) *MissionResolution {
	m := c.findMission(id)
	if m == nil {
		return nil
	}
	roll := c.roller.Roll2D12()
	total := roll + modifier
	var result string
	switch {
	case total >= missionCritThreshold:
		result = MissionCritSuccess
	case total >= missionSuccessThreshold:
		result = MissionSuccess
	case total >= missionConsequenceThreshold:
		result = MissionSuccessConsequence
	default:
		result = MissionFailure
	}
	m.Roll = roll
	m.Modifier = modifier
	m.Result = result
	c.markDirty()
	return &MissionResolution{Roll: roll, Total: total, Result: result}
}

// ToggleCaptainAssignment 队长指派开关。队长同时只能在一个任务上：
// 指派到新任务会先把旧任务和其他任务上的引用清干净。
func (c *Campaign) ToggleCaptainAssignment(missionID, captainID string) bool {
	m := c.findMission(missionID)
	cpt := c.findCaptain(captainID)
	if m == nil || cpt == nil {
		return false
	}
	if m.AssignedCaptainID == captainID {
		m.AssignedCaptainID = ""
		cpt.AssignedMissionID = ""
		c.markDirty()
		return true
	}
	for _, other := range c.missions {
		if other.AssignedCaptainID == captainID {
			other.AssignedCaptainID = ""
		}
	}
	if prev := c.findCaptain(m.AssignedCaptainID); prev != nil {
		prev.AssignedMissionID = ""
	}
	m.AssignedCaptainID = captainID
	cpt.AssignedMissionID = missionID
	c.markDirty()
	return true
}

// ToggleTroopAssignment 部队指派开关，单纯的集合翻转，不做互斥。
func (c *Campaign) ToggleTroopAssignment(missionID, troopID string) bool {
	m := c.findMission(missionID)
	if m == nil || c.findTroop(troopID) == nil {
		return false
	}
	for i, id := range m.AssignedTroopIDs {
		if id == troopID {
			m.AssignedTroopIDs = append(m.AssignedTroopIDs[:i], m.AssignedTroopIDs[i+1:]...)
			c.markDirty()
			return true
		}
	}
	m.AssignedTroopIDs = append(m.AssignedTroopIDs, troopID)
	c.markDirty()
	return true
}
