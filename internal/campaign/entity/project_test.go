package entity

import (
	"errors"
	"testing"
)

func TestStartProject_扣资源并占产能(t *testing.T) {
	c := newTestCampaign()

	p, err := c.StartProject("barracks") // wealth 1 + supplies 1
	if err != nil {
		t.Fatalf("开工失败：%v", err)
	}
	if p.TemplateID != "barracks" || p.StartedTurn != 1 || p.Progress != 0 {
		t.Fatalf("工程实例不符：%+v", p)
	}
	if c.Resource(ResourceWealth) != 1 || c.Resource(ResourceSupplies) != 1 {
		t.Fatalf("开工应扣造价，got %d/%d", c.Resource(ResourceWealth), c.Resource(ResourceSupplies))
	}
	if got := c.WorkOrderStatus(); got.Used != 1 || got.Capacity != 2 {
		t.Fatalf("工单占用应为 1/2，got %+v", got)
	}
}

func TestStartProject_产能不足报错不动状态(t *testing.T) {
	c := newTestCampaign()
	setResources(c, 5, 5, 5)

	if _, err := c.StartProject("barracks"); err != nil {
		t.Fatalf("第一座开工失败：%v", err)
	}
	if _, err := c.StartProject("armory"); err != nil {
		t.Fatalf("第二座开工失败：%v", err)
	}

	wealth := c.Resource(ResourceWealth)
	_, err := c.StartProject("market")
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("超产能应报 ErrCapacityExceeded，got=%v", err)
	}
	if c.Resource(ResourceWealth) != wealth || len(c.Projects()) != 2 {
		t.Fatalf("被拒的开工不应动任何状态")
	}
}

func TestStartProject_资源不足报错不动状态(t *testing.T) {
	c := newTestCampaign()
	setResources(c, 1, 5, 5)

	_, err := c.StartProject("market") // 需要 2 财富
	if !errors.Is(err, ErrInsufficientResources) {
		t.Fatalf("应报 ErrInsufficientResources，got=%v", err)
	}
	if c.Resource(ResourceWealth) != 1 || len(c.Projects()) != 0 {
		t.Fatalf("被拒的开工不应动任何状态")
	}
}

func TestAdvanceProject_每回合最多一格(t *testing.T) {
	c := newTestCampaign()
	p, err := c.StartProject("barracks") // 2 回合工期
	if err != nil {
		t.Fatalf("开工失败：%v", err)
	}

	// 开工当回合不能推进
	if c.AdvanceProject(p.ID) {
		t.Fatalf("开工当回合不应能推进")
	}

	c.CompleteTurn()
	if !c.AdvanceProject(p.ID) || p.Progress != 1 {
		t.Fatalf("第 2 回合应推进到 1 格，got=%d", p.Progress)
	}
	if c.AdvanceProject(p.ID) {
		t.Fatalf("同回合不应能推进两次")
	}

	c.CompleteTurn()
	if !c.AdvanceProject(p.ID) {
		t.Fatalf("第 3 回合推进失败")
	}
	if p.Progress != 2 || p.CompletedTurn != 3 {
		t.Fatalf("完工状态不符：progress=%d completedTurn=%d", p.Progress, p.CompletedTurn)
	}
	if c.AdvanceProject(p.ID) {
		t.Fatalf("完工工程不应再推进")
	}
}

func TestRushProject_赌赢加进度赌输照扣钱(t *testing.T) {
	c := newTestCampaign(12, 13) // 先输后赢
	p, _ := c.StartProject("barracks")
	c.CompleteTurn()

	// 第一次：roll 12 失败，钱照扣，进度不动
	out := c.RushProject(p.ID)
	if out == nil || out.Success || out.Roll != 12 {
		t.Fatalf("失败的赶工结果不符：%+v", out)
	}
	if c.Resource(ResourceWealth) != 0 || p.Progress != 0 {
		t.Fatalf("赌输应扣钱不加进度，wealth=%d progress=%d", c.Resource(ResourceWealth), p.Progress)
	}
	if !p.RushRisked {
		t.Fatalf("赶工后应带 rushRisked 标记")
	}

	// 失败不占推进名额，补满钱可以再赌
	setResources(c, 1, 1, 1)
	out = c.RushProject(p.ID)
	if out == nil || !out.Success || out.Roll != 13 {
		t.Fatalf("成功的赶工结果不符：%+v", out)
	}
	if p.Progress != 1 || p.LastProgressTurn != 2 {
		t.Fatalf("赌赢应加一格并占掉本回合名额，progress=%d lastProgressTurn=%d", p.Progress, p.LastProgressTurn)
	}

	// 赌赢后本回合不能再推进
	if c.AdvanceProject(p.ID) {
		t.Fatalf("赶工成功后同回合不应再推进")
	}
}

func TestRushProject_守卫条件(t *testing.T) {
	c := newTestCampaign(24)
	p, _ := c.StartProject("barracks")

	// 开工当回合不能赶工
	if out := c.RushProject(p.ID); out != nil {
		t.Fatalf("开工当回合赶工应返回 nil")
	}

	c.CompleteTurn()
	setResources(c, 0, 5, 5)
	if out := c.RushProject(p.ID); out != nil {
		t.Fatalf("没钱赶工应返回 nil")
	}
	if out := c.RushProject("no-such-project"); out != nil {
		t.Fatalf("不存在的工程赶工应返回 nil")
	}
}

func TestRemoveProject_未完工退款(t *testing.T) {
	c := newTestCampaign()
	p, _ := c.StartProject("barracks") // 扣到 1/1
	if !c.RemoveProject(p.ID) {
		t.Fatalf("撤单失败")
	}
	if c.Resource(ResourceWealth) != 2 || c.Resource(ResourceSupplies) != 2 {
		t.Fatalf("未完工撤单应全额退款，got %d/%d",
			c.Resource(ResourceWealth), c.Resource(ResourceSupplies))
	}
	if len(c.Projects()) != 0 {
		t.Fatalf("撤单后工程应移除")
	}
}

func TestRemoveProject_已完工不退款(t *testing.T) {
	c := newTestCampaign()
	p, _ := c.StartProject("barracks")
	c.CompleteTurn()
	c.AdvanceProject(p.ID)
	c.CompleteTurn()
	c.AdvanceProject(p.ID)
	if !p.Completed() {
		t.Fatalf("前置：工程应已完工")
	}

	wealth := c.Resource(ResourceWealth)
	if !c.RemoveProject(p.ID) {
		t.Fatalf("拆除失败")
	}
	if c.Resource(ResourceWealth) != wealth {
		t.Fatalf("已完工拆除不应退款")
	}
}

func TestWorkOrderCapacity_完工建筑加产能(t *testing.T) {
	c := newTestCampaign()
	setResources(c, 5, 5, 5)

	p, err := c.StartProject("guildhall") // advanced，占 2 点，3 回合工期
	if err != nil {
		t.Fatalf("开工失败：%v", err)
	}
	if got := c.WorkOrderStatus(); got.Used != 2 || got.Capacity != 2 {
		t.Fatalf("在建 guildhall 应占 2/2，got %+v", got)
	}

	for i := 0; i < 3; i++ {
		c.CompleteTurn()
		c.AdvanceProject(p.ID)
	}
	if !p.Completed() {
		t.Fatalf("前置：guildhall 应已完工")
	}
	if got := c.WorkOrderStatus(); got.Used != 0 || got.Capacity != 3 {
		t.Fatalf("完工 guildhall 应放出产能并 +1 上限，got %+v", got)
	}
}

func TestTrainingCapacity_按模板精确匹配(t *testing.T) {
	c := newTestCampaign()
	setResources(c, 5, 5, 5)

	p, err := c.StartProject("grand-barracks")
	if err != nil {
		t.Fatalf("开工失败：%v", err)
	}
	for i := 0; i < 3; i++ {
		c.CompleteTurn()
		c.AdvanceProject(p.ID)
	}
	if !p.Completed() {
		t.Fatalf("前置：grand-barracks 应已完工")
	}

	// grand-barracks 只算它自己，不能冒充 barracks 之外再送一点
	if got := c.TrainingCapacity(); got != 2 {
		t.Fatalf("只完工 grand-barracks 时训练位应为 2，got=%d", got)
	}
	if c.hasCompletedProject("barracks") {
		t.Fatalf("grand-barracks 不应被当成 barracks")
	}
}
