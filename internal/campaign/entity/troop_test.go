package entity

import "testing"

func TestUpdateTroopStatus_休整锁(t *testing.T) {
	c := newTestCampaign()
	id := c.Troops()[0].ID

	if !c.UpdateTroopStatus(id, TroopRecovering, 0) {
		t.Fatalf("转休整失败")
	}
	tr := c.findTroop(id)
	if tr.RecoveringUntilTurn != 2 {
		t.Fatalf("休整应锁到下回合，got=%d", tr.RecoveringUntilTurn)
	}

	// 锁未到期不许离开休整
	if c.UpdateTroopStatus(id, TroopActive, 0) {
		t.Fatalf("休整锁内不应能转回 active")
	}
	c.CompleteTurn() // turn 2，仍在锁内
	if c.UpdateTroopStatus(id, TroopActive, 0) {
		t.Fatalf("锁定回合内不应能转回 active")
	}

	c.CompleteTurn() // turn 3，锁过期
	if !c.UpdateTroopStatus(id, TroopActive, 0) {
		t.Fatalf("锁过期后应能转回 active")
	}
	if tr.RecoveringUntilTurn != 0 {
		t.Fatalf("离开休整应清掉锁，got=%d", tr.RecoveringUntilTurn)
	}
}

func TestUpdateTroopStatus_词表外状态拒绝(t *testing.T) {
	c := newTestCampaign()
	id := c.Troops()[0].ID

	if c.UpdateTroopStatus(id, "resting", 0) {
		t.Fatalf("词表外状态不应被接受")
	}
	if got := c.findTroop(id).Status; got != TroopActive {
		t.Fatalf("拒绝后状态不应变化，got=%s", got)
	}
}

func TestUpdateTroopStatus_战功不为负(t *testing.T) {
	c := newTestCampaign()
	id := c.Troops()[0].ID

	c.UpdateTroopStatus(id, TroopDeployed, 2)
	if c.findTroop(id).MissionsCompleted != 2 {
		t.Fatalf("战功应累加")
	}
	c.UpdateTroopStatus(id, TroopActive, -5)
	if got := c.findTroop(id).MissionsCompleted; got != 0 {
		t.Fatalf("战功下限应为 0，got=%d", got)
	}
}

func TestRemoveTroop_清理任务引用(t *testing.T) {
	c := newTestCampaign()
	id := c.Troops()[0].ID
	m := c.AddMission(MissionDraft{Name: "Patrol", Category: "Scout", Scale: "Squad"})
	c.ToggleTroopAssignment(m.ID, id)

	if !c.RemoveTroop(id) {
		t.Fatalf("除名失败")
	}
	if len(m.AssignedTroopIDs) != 0 {
		t.Fatalf("除名应清掉任务上的引用，got=%v", m.AssignedTroopIDs)
	}
	if c.findTroop(id) != nil {
		t.Fatalf("部队应被移除")
	}
}

func TestAddTroop_与战备统计(t *testing.T) {
	c := newTestCampaign()
	before := c.ReadyForces()

	tr := c.AddTroop(TroopDraft{Name: "Freed Gladiators", Tier: "regular", Type: "Infantry", Advantages: "Shock assault"})
	if tr.Status != TroopActive {
		t.Fatalf("新部队应为 active")
	}
	if c.ReadyForces() != before+1 {
		t.Fatalf("战备统计应 +1")
	}

	c.UpdateTroopStatus(tr.ID, TroopDeployed, 0)
	if c.ReadyForces() != before {
		t.Fatalf("出动中的部队不应算战备")
	}
}
