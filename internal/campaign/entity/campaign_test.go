package entity

import (
	"errors"
	"strings"
	"testing"
)

func TestNew_开局状态(t *testing.T) {
	c := newTestCampaign()

	if c.Turn() != 1 || c.Phase() != PhaseDashboard {
		t.Fatalf("开局应为第 1 回合 Dashboard，got turn=%d phase=%q", c.Turn(), c.Phase())
	}
	if c.Resource(ResourceWealth) != 2 || c.Resource(ResourceSupplies) != 2 || c.Resource(ResourceLoyalty) != 1 {
		t.Fatalf("初始资源应为 2/2/1，got %d/%d/%d",
			c.Resource(ResourceWealth), c.Resource(ResourceSupplies), c.Resource(ResourceLoyalty))
	}
	if len(c.Captains()) != 5 {
		t.Fatalf("应有 5 名队长，got=%d", len(c.Captains()))
	}
	if len(c.Troops()) != 8 {
		t.Fatalf("应有 8 支初始部队，got=%d", len(c.Troops()))
	}
	for _, tr := range c.Troops() {
		if tr.Status != TroopActive {
			t.Fatalf("初始部队 %s 应为 active，got=%q", tr.Name, tr.Status)
		}
	}
	if c.Dirty() {
		t.Fatalf("新建战役不应带脏标记")
	}
}

func TestIncrementResource_上下限截断(t *testing.T) {
	c := newTestCampaign()

	if err := c.IncrementResource(ResourceWealth, 10); err != nil {
		t.Fatalf("调资源失败：%v", err)
	}
	if got := c.Resource(ResourceWealth); got != MaxResource {
		t.Fatalf("上限应截断到 %d，got=%d", MaxResource, got)
	}
	if err := c.IncrementResource(ResourceLoyalty, -10); err != nil {
		t.Fatalf("调资源失败：%v", err)
	}
	if got := c.Resource(ResourceLoyalty); got != MinResource {
		t.Fatalf("下限应截断到 %d，got=%d", MinResource, got)
	}
	if err := c.IncrementResource("mana", 1); !errors.Is(err, ErrUnknownResource) {
		t.Fatalf("未知资源应报 ErrUnknownResource，got=%v", err)
	}
}

func TestSelectIncome_同回合重选只换标签(t *testing.T) {
	c := newTestCampaign()

	c.SelectIncome(IncomeTradeCommodities) // wealth+1 supplies-1
	if c.Resource(ResourceWealth) != 3 || c.Resource(ResourceSupplies) != 1 {
		t.Fatalf("倒卖后应为 3/1，got %d/%d", c.Resource(ResourceWealth), c.Resource(ResourceSupplies))
	}

	// 同回合换选项：只改标签，不再结算
	c.SelectIncome(IncomeCollectTaxes)
	if c.Resource(ResourceWealth) != 3 || c.Resource(ResourceSupplies) != 1 {
		t.Fatalf("同回合重选不应重复结算，got %d/%d", c.Resource(ResourceWealth), c.Resource(ResourceSupplies))
	}
	income, turn := c.Income()
	if income != IncomeCollectTaxes || turn != 1 {
		t.Fatalf("标签应更新为 Collect Taxes@1，got %q@%d", income, turn)
	}

	// 下一回合重新结算
	c.CompleteTurn()
	c.SelectIncome(IncomeCollectTaxes)
	if c.Resource(ResourceWealth) != 4 {
		t.Fatalf("新回合选收税应 +1 财富，got=%d", c.Resource(ResourceWealth))
	}
}

func TestSelectIncome_付不起静默不生效(t *testing.T) {
	c := newTestCampaign()
	setResources(c, 2, 0, 1)

	c.SelectIncome(IncomeTradeCommodities) // 需要扣 1 补给
	if c.Resource(ResourceWealth) != 2 || c.Resource(ResourceSupplies) != 0 {
		t.Fatalf("付不起时资源不应变动，got %d/%d", c.Resource(ResourceWealth), c.Resource(ResourceSupplies))
	}
	if income, _ := c.Income(); income != "" {
		t.Fatalf("付不起时不应记录收入选择，got=%q", income)
	}
}

func TestSelectEdict_政令结算(t *testing.T) {
	c := newTestCampaign()

	c.SelectEdict(EdictDraft) // supplies+1 loyalty-1
	if c.Resource(ResourceSupplies) != 3 || c.Resource(ResourceLoyalty) != 0 {
		t.Fatalf("征兵令后应为补给 3 忠诚 0，got %d/%d",
			c.Resource(ResourceSupplies), c.Resource(ResourceLoyalty))
	}
}

func TestHoldFestival_每回合一次(t *testing.T) {
	c := newTestCampaign()

	if !c.HoldFestival() {
		t.Fatalf("资源充足时庆典应成功")
	}
	if c.Resource(ResourceWealth) != 1 || c.Resource(ResourceSupplies) != 1 || c.Resource(ResourceLoyalty) != 2 {
		t.Fatalf("庆典结算后应为 1/1/2，got %d/%d/%d",
			c.Resource(ResourceWealth), c.Resource(ResourceSupplies), c.Resource(ResourceLoyalty))
	}
	if c.HoldFestival() {
		t.Fatalf("同回合第二次庆典应被拒")
	}

	c.CompleteTurn()
	if !c.HoldFestival() {
		t.Fatalf("新回合应可再次庆典")
	}

	c.CompleteTurn()
	setResources(c, 0, 5, 1)
	if c.HoldFestival() {
		t.Fatalf("付不起时庆典应失败")
	}
	if c.Resource(ResourceSupplies) != 5 {
		t.Fatalf("失败的庆典不应扣资源，got=%d", c.Resource(ResourceSupplies))
	}
}

func TestCompleteTurn_收尾重置(t *testing.T) {
	c := newTestCampaign(20)

	m := c.AddMission(MissionDraft{Name: "Raid the pass", Category: "Battle", Scale: "Troop"})
	c.ToggleCaptainAssignment(m.ID, "takk")
	c.ToggleTroopAssignment(m.ID, c.Troops()[0].ID)
	c.ResolveMission(m.ID, 0)
	c.HoldFestival()

	c.CompleteTurn()

	if c.Turn() != 2 || c.Phase() != PhaseDashboard {
		t.Fatalf("应推进到第 2 回合 Dashboard，got turn=%d phase=%q", c.Turn(), c.Phase())
	}
	if m.AssignedCaptainID != "" || len(m.AssignedTroopIDs) != 0 || m.Roll != 0 {
		t.Fatalf("回合结束应清掉指派与骰点，got %+v", m)
	}
	if m.Result != MissionSuccess {
		t.Fatalf("任务结果应跨回合保留，got=%q", m.Result)
	}
	if c.findCaptain("takk").AssignedMissionID != "" {
		t.Fatalf("回合结束队长应全部撤回")
	}
	if c.FestivalUsed() {
		t.Fatalf("庆典标记应重置")
	}
	history := c.TurnHistory()
	if len(history) != 1 || !strings.Contains(history[0], "Turn 1 summary: 1 missions, 0 projects.") {
		t.Fatalf("回合摘要不符：%v", history)
	}
}

func TestNextPhase_循环推进(t *testing.T) {
	c := newTestCampaign()

	for i := 1; i < len(Phases); i++ {
		if got := c.NextPhase(); got != Phases[i] {
			t.Fatalf("第 %d 次推进应到 %q，got=%q", i, Phases[i], got)
		}
	}
	if got := c.NextPhase(); got != Phases[0] {
		t.Fatalf("末尾应回绕到 %q，got=%q", Phases[0], got)
	}

	if err := c.SetPhase(PhaseMissions); err != nil || c.Phase() != PhaseMissions {
		t.Fatalf("SetPhase 失败：err=%v phase=%q", err, c.Phase())
	}
	if err := c.SetPhase("Tea Break"); !errors.Is(err, ErrUnknownPhase) {
		t.Fatalf("未知阶段应报 ErrUnknownPhase，got=%v", err)
	}
}

func TestReset_整局重开(t *testing.T) {
	c := newTestCampaign()
	c.SelectIncome(IncomeCollectTaxes)
	if _, err := c.StartProject("barracks"); err != nil {
		t.Fatalf("开工失败：%v", err)
	}
	c.CompleteTurn()

	c.Reset()

	if c.Turn() != 1 || len(c.Projects()) != 0 || len(c.TurnHistory()) != 0 {
		t.Fatalf("重开后应回到开局，got turn=%d projects=%d history=%d",
			c.Turn(), len(c.Projects()), len(c.TurnHistory()))
	}
	if c.Resource(ResourceWealth) != 2 || c.Resource(ResourceSupplies) != 2 || c.Resource(ResourceLoyalty) != 1 {
		t.Fatalf("重开后资源应回到 2/2/1")
	}
	if len(c.Troops()) != 8 || len(c.Captains()) != 5 {
		t.Fatalf("重开后名册应回到目录初始值")
	}
}
