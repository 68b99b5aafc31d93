package entity

import "fmt"

// SetPhase 直接跳到某个阶段。
func (c *Campaign) SetPhase(phase PhaseKey) error {
	for _, p := range Phases {
		if p == phase {
			c.phase = phase
			c.markDirty()
			return nil
		}
	}
	return ErrUnknownPhase
}

// NextPhase 顺序推进，末尾回绕到第一个阶段。
func (c *Campaign) NextPhase() PhaseKey {
	for i, p := range Phases {
		if p == c.phase {
			c.phase = Phases[(i+1)%len(Phases)]
			c.markDirty()
			return c.phase
		}
	}
	c.phase = Phases[0]
	c.markDirty()
	return c.phase
}

// CompleteTurn 收尾并进入下一回合：任务保留结果但清掉当回合的
// 指派和骰点，队长全部撤回，庆典重置，写一条回合摘要。
func (c *Campaign) CompleteTurn() {
	missionCount := len(c.missions)
	projectCount := len(c.projects)
	summary := fmt.Sprintf("Turn %d summary: %d missions, %d projects.",
		c.turn, missionCount, projectCount)
	c.turnHistory = append(c.turnHistory, summary)

	for _, m := range c.missions {
		m.AssignedCaptainID = ""
		m.AssignedTroopIDs = []string{}
		m.Roll = 0
	}
	for _, cpt := range c.captains {
		cpt.AssignedMissionID = ""
	}
	c.festivalUsed = false
	c.turn++
	c.phase = Phases[0]
	c.markDirty()
}
