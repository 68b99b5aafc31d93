package entity

import (
	"testing"
)

func TestState_导出与装载往返(t *testing.T) {
	c := newTestCampaign(18)
	c.SelectIncome(IncomeCollectTaxes)
	p, _ := c.StartProject("barracks")
	c.StartRecruitment("militia-spears")
	m := c.AddMission(MissionDraft{Name: "Raid", Category: "Battle", Scale: "Troop"})
	c.ToggleCaptainAssignment(m.ID, "takk")
	c.ResolveMission(m.ID, 2)
	c.AddEvent("Bandit sighting", "Scouts report movement in the hills")
	c.AddNote("Mira", "Bribed the gate sergeant")
	c.CompleteTurn()
	c.AdvanceProject(p.ID)

	snap := c.State(true)

	restored := newTestCampaign()
	restored.RestoreState(snap)

	if restored.Turn() != c.Turn() || restored.Phase() != c.Phase() {
		t.Fatalf("回合/阶段不符：%d/%q vs %d/%q", restored.Turn(), restored.Phase(), c.Turn(), c.Phase())
	}
	for _, typ := range ResourceTypes {
		if restored.Resource(typ) != c.Resource(typ) {
			t.Fatalf("资源 %s 不符", typ)
		}
	}
	if len(restored.Projects()) != 1 || restored.Projects()[0].Progress != 1 {
		t.Fatalf("工程装载不符：%+v", restored.Projects())
	}
	if len(restored.Recruitments()) != 1 || !restored.Recruitments()[0].Completed() {
		t.Fatalf("招募装载不符")
	}
	if len(restored.Missions()) != 1 || restored.Missions()[0].Result == "" {
		t.Fatalf("任务装载不符")
	}
	if len(restored.Events()) != 1 || len(restored.Notes()) != 1 {
		t.Fatalf("事件/备注装载不符")
	}
	if len(restored.TurnHistory()) != 1 {
		t.Fatalf("历史装载不符：%v", restored.TurnHistory())
	}
}

func TestState_不带历史的持久化快照(t *testing.T) {
	c := newTestCampaign()
	c.CompleteTurn()
	c.CompleteTurn()

	if snap := c.State(false); snap.TurnHistory != nil {
		t.Fatalf("持久化快照不应带历史，got=%v", snap.TurnHistory)
	}
	if snap := c.State(true); len(snap.TurnHistory) != 2 {
		t.Fatalf("导出快照应带历史，got=%v", snap.TurnHistory)
	}
}

func TestState_快照与聚合互不串改(t *testing.T) {
	c := newTestCampaign()
	c.StartProject("barracks")

	snap := c.State(true)
	snap.Resources[ResourceWealth] = 0
	snap.Projects[0].Progress = 99
	snap.Troops[0].Status = "routed"

	if c.Resource(ResourceWealth) == 0 {
		t.Fatalf("改快照不应影响聚合资源")
	}
	if c.Projects()[0].Progress == 99 {
		t.Fatalf("改快照不应影响聚合工程")
	}
	if c.Troops()[0].Status == "routed" {
		t.Fatalf("改快照不应影响聚合部队")
	}
}

func TestRestoreState_资源越界装载时截断(t *testing.T) {
	c := newTestCampaign()
	snap := c.State(true)
	snap.Resources[ResourceWealth] = 99

	restored := newTestCampaign()
	restored.RestoreState(snap)
	if got := restored.Resource(ResourceWealth); got != MaxResource {
		t.Fatalf("装载时应截断到上限，got=%d", got)
	}
	if !restored.Dirty() {
		t.Fatalf("装载后应带脏标记等待落盘")
	}
}
