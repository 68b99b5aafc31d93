package entity

import (
	"Stronghold/internal/shared/gameconfig/catalog"
)

func (c *Campaign) Recruitments() []*RecruitmentInstance { return c.recruitments }

// activeRecruitments 未完成的招募数，占训练位。
func (c *Campaign) activeRecruitments() int {
	n := 0
	for _, r := range c.recruitments {
		if !r.Completed() {
			n++
		}
	}
	return n
}

// StartRecruitment 按目录选项开始招募。检查顺序：训练位 → 前置工程 →
// 资源，任一失败返回错误不动状态。民兵当回合即成军并立刻转为部队。
func (c *Campaign) StartRecruitment(optionID string) (*RecruitmentInstance, error) {
	opt, ok := catalog.GetRecruitment(optionID)
	if !ok {
		return nil, ErrNotFound
	}
	if c.activeRecruitments() >= c.TrainingCapacity() {
		return nil, ErrTrainingExceeded
	}
	for _, req := range opt.RequiresProjects {
		if !c.hasCompletedProject(req) {
			return nil, ErrPrerequisiteMissing
		}
	}
	if !c.canAffordCost(opt.Cost) {
		return nil, ErrInsufficientResources
	}
	c.spendCost(opt.Cost)
	r := &RecruitmentInstance{
		ID:               opt.ID + "-" + c.newID(),
		TemplateID:       opt.ID,
		Name:             opt.Name,
		Type:             opt.Type,
		Cost:             cloneCost(opt.Cost),
		TurnsRequired:    opt.TurnsRequired,
		Result:           opt.Result,
		RequiresProjects: append([]string(nil), opt.RequiresProjects...),
		StartedTurn:      c.turn,
	}
	if opt.Type == catalog.RecruitMilitia {
		r.Progress = r.TurnsRequired
		r.CompletedTurn = c.turn
		r.LastProgressTurn = c.turn
		troop := c.spawnTroopFromRecruitment(r)
		r.ConvertedTroopID = troop.ID
	}
	c.recruitments = append(c.recruitments, r)
	c.markDirty()
	return r, nil
}

// AdvanceRecruitment 推进一格训练。守卫同工程推进；训练满格时成军，
// ConvertedTroopID 保证部队只生成一次。
func (c *Campaign) AdvanceRecruitment(id string) bool {
	r := c.findRecruitment(id)
	if r == nil || r.Completed() {
		return false
	}
	if c.turn <= r.StartedTurn || r.LastProgressTurn == c.turn {
		return false
	}
	r.Progress++
	if r.Progress > r.TurnsRequired {
		r.Progress = r.TurnsRequired
	}
	r.LastProgressTurn = c.turn
	if r.Progress >= r.TurnsRequired {
		r.CompletedTurn = c.turn
		if r.ConvertedTroopID == "" {
			troop := c.spawnTroopFromRecruitment(r)
			r.ConvertedTroopID = troop.ID
		}
	}
	c.markDirty()
	return true
}

// RemoveRecruitment 取消招募。未完成的退还造价，已成军的不退。
func (c *Campaign) RemoveRecruitment(id string) bool {
	for i, r := range c.recruitments {
		if r.ID != id {
			continue
		}
		if !r.Completed() {
			c.refundCost(r.Cost)
		}
		c.recruitments = append(c.recruitments[:i], c.recruitments[i+1:]...)
		c.markDirty()
		return true
	}
	return false
}

// spawnTroopFromRecruitment 训练完成转正：部队类型取选项名，
// 梯队取选项档位（militia/regular/elite）。
func (c *Campaign) spawnTroopFromRecruitment(r *RecruitmentInstance) *Troop {
	t := &Troop{
		ID:         "troop-" + c.newID(),
		Name:       r.Name,
		Tier:       r.Type,
		Type:       r.Name,
		Status:     TroopActive,
		Advantages: r.Result,
	}
	c.troops = append(c.troops, t)
	return t
}
