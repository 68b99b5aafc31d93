package entity

import (
	"Stronghold/internal/shared/gameconfig/catalog"
)

// 工单产能规则：基础 2 点，guildhall / captains-quarters-upgrade /
// war-council 每座完工 +1。standard 占 1 点、advanced 占 2 点、wonder 占 3 点。

var slotCostByTier = map[string]int{
	catalog.TierStandard: 1,
	catalog.TierAdvanced: 2,
	catalog.TierWonder:   3,
}

var capacityGranters = []string{"guildhall", "captains-quarters-upgrade", "war-council"}

var trainingGranters = []string{"barracks", "grand-barracks"}

func slotCost(tier string) int {
	if cost, ok := slotCostByTier[tier]; ok {
		return cost
	}
	return 1
}

// WorkOrderCapacity 当前工单产能上限。
func (c *Campaign) WorkOrderCapacity() int {
	capacity := 2
	for _, id := range capacityGranters {
		if c.hasCompletedProject(id) {
			capacity++
		}
	}
	return capacity
}

// WorkOrdersUsed 未完工工程占用的产能点数。
func (c *Campaign) WorkOrdersUsed() int {
	used := 0
	for _, p := range c.projects {
		if !p.Completed() {
			used += slotCost(p.Tier)
		}
	}
	return used
}

// TrainingCapacity 当前同时在训上限。
func (c *Campaign) TrainingCapacity() int {
	capacity := 1
	for _, id := range trainingGranters {
		if c.hasCompletedProject(id) {
			capacity++
		}
	}
	return capacity
}

func (c *Campaign) Projects() []*ProjectInstance { return c.projects }

// StartProject 按模板开工一座新工程。先验产能再验资源，
// 任一失败返回错误且不动任何状态。
func (c *Campaign) StartProject(templateID string) (*ProjectInstance, error) {
	tpl, ok := catalog.GetProject(templateID)
	if !ok {
		return nil, ErrNotFound
	}
	if c.WorkOrdersUsed()+slotCost(tpl.Tier) > c.WorkOrderCapacity() {
		return nil, ErrCapacityExceeded
	}
	if !c.canAffordCost(tpl.Cost) {
		return nil, ErrInsufficientResources
	}
	c.spendCost(tpl.Cost)
	p := &ProjectInstance{
		ID:            tpl.ID + "-" + c.newID(),
		TemplateID:    tpl.ID,
		Name:          tpl.Name,
		Tier:          tpl.Tier,
		Cost:          cloneCost(tpl.Cost),
		TurnsRequired: tpl.TurnsRequired,
		Effects:       tpl.Effects,
		StartedTurn:   c.turn,
	}
	c.projects = append(c.projects, p)
	c.markDirty()
	return p, nil
}

// AdvanceProject 推进一格工期。已完工、开工当回合、本回合已推进过
// 都静默不生效，返回 false。
func (c *Campaign) AdvanceProject(id string) bool {
	p := c.findProject(id)
	if p == nil || p.Completed() {
		return false
	}
	if c.turn <= p.StartedTurn || p.LastProgressTurn == c.turn {
		return false
	}
	p.Progress++
	if p.Progress > p.TurnsRequired {
		p.Progress = p.TurnsRequired
	}
	p.LastProgressTurn = c.turn
	if p.Progress >= p.TurnsRequired {
		p.CompletedTurn = c.turn
	}
	c.markDirty()
	return true
}

// RushOutcome 赶工掷骰结果。
type RushOutcome struct {
	Roll    int  `json:"roll"`
	Success bool `json:"success"`
}

// RushProject 花 1 财富赌一次 2d12：≥13 额外 +1 进度，输了钱照扣。
// 守卫条件同 AdvanceProject，外加付得起 1 财富；不满足返回 nil。
func (c *Campaign) RushProject(id string) *RushOutcome {
	p := c.findProject(id)
	if p == nil || p.Completed() {
		return nil
	}
	if c.turn <= p.StartedTurn || p.LastProgressTurn == c.turn {
		return nil
	}
	if c.resources[ResourceWealth] < 1 {
		return nil
	}
	c.resources[ResourceWealth] = clampResource(c.resources[ResourceWealth] - 1)
	roll := c.roller.Roll2D12()
	success := roll >= 13
	if success {
		p.Progress++
		if p.Progress > p.TurnsRequired {
			p.Progress = p.TurnsRequired
		}
		// 失败不占本回合的推进名额，可以继续砸钱重赌
		p.LastProgressTurn = c.turn
		if p.Progress >= p.TurnsRequired {
			p.CompletedTurn = c.turn
		}
	}
	p.RushRisked = true
	c.markDirty()
	return &RushOutcome{Roll: roll, Success: success}
}

// RemoveProject 撤单。未完工的工程退还全部造价（上限截断），
// 已完工的直接拆除不退。
func (c *Campaign) RemoveProject(id string) bool {
	for i, p := range c.projects {
		if p.ID != id {
			continue
		}
		if !p.Completed() {
			c.refundCost(p.Cost)
		}
		c.projects = append(c.projects[:i], c.projects[i+1:]...)
		c.markDirty()
		return true
	}
	return false
}

func cloneCost(cost map[string]int) map[string]int {
	out := make(map[string]int, len(cost))
	for k, v := range cost {
		out[k] = v
	}
	return out
}
