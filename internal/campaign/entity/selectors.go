package entity

import (
	"Stronghold/internal/shared/gameconfig/catalog"
)

// 只读视图，不改状态。

// WorkOrderSummary 工单占用情况。
type WorkOrderSummary struct {
	Used     int `json:"used"`
	Capacity int `json:"capacity"`
}

func (c *Campaign) WorkOrderStatus() WorkOrderSummary {
	return WorkOrderSummary{Used: c.WorkOrdersUsed(), Capacity: c.WorkOrderCapacity()}
}

// RecruitmentSummary 训练位与成军情况。Ready 统计已成军且对应部队
// 仍在编（active）的招募。
type RecruitmentSummary struct {
	InProgress int `json:"inProgress"`
	Ready      int `json:"ready"`
	Capacity   int `json:"capacity"`
}

func (c *Campaign) RecruitmentStatus() RecruitmentSummary {
	s := RecruitmentSummary{Capacity: c.TrainingCapacity()}
	// 老存档的招募没有 convertedTroopId，按 名字+梯队 兜底匹配，
	// 每支部队只许被认领一次。
	claimed := make(map[string]bool)
	for _, r := range c.recruitments {
		if !r.Completed() {
			s.InProgress++
			continue
		}
		var troop *Troop
		if r.ConvertedTroopID != "" {
			troop = c.findTroop(r.ConvertedTroopID)
		} else {
			for _, t := range c.troops {
				if !claimed[t.ID] && t.Name == r.Name && t.Tier == r.Type {
					claimed[t.ID] = true
					troop = t
					break
				}
			}
		}
		if troop != nil && troop.Status == TroopActive {
			s.Ready++
		}
	}
	return s
}

// ReadyForces 在编可出动的部队数。
func (c *Campaign) ReadyForces() int {
	n := 0
	for _, t := range c.troops {
		if t.Status == TroopActive {
			n++
		}
	}
	return n
}

// AvailableRecruitment 当前可选的招募项：前置工程要齐，精锐全战役
// 唯一——已在编的同型精锐，或还在训练中的同名精锐，都会把选项压掉。
func (c *Campaign) AvailableRecruitment() []catalog.RecruitmentOption {
	var out []catalog.RecruitmentOption
	for _, opt := range catalog.Recruitments() {
		ok := true
		for _, req := range opt.RequiresProjects {
			if !c.hasCompletedProject(req) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		if opt.Type == catalog.RecruitElite {
			for _, t := range c.troops {
				if t.Type == opt.Name && t.Tier == catalog.RecruitElite {
					ok = false
					break
				}
			}
			if ok {
				for _, r := range c.recruitments {
					if r.Name == opt.Name && !r.Completed() {
						ok = false
						break
					}
				}
			}
		}
		if ok {
			out = append(out, opt)
		}
	}
	return out
}
