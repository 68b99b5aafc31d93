package app

import (
	"context"
	"errors"
	"os"
	"testing"

	"Stronghold/internal/campaign/entity"
	"Stronghold/internal/campaign/snapshot"
	"Stronghold/internal/shared/gameconfig/catalog"
	"Stronghold/modules/kit/errx"
)

func TestMain(m *testing.M) {
	catalog.Load()
	os.Exit(m.Run())
}

type fakeJournal struct {
	turns    []string
	missions []string
	fail     bool
}

func (f *fakeJournal) AppendTurnSummary(_ context.Context, _ string, _ int, summary string) error {
	if f.fail {
		return errors.New("journal down")
	}
	f.turns = append(f.turns, summary)
	return nil
}

func (f *fakeJournal) AppendMissionLog(_ context.Context, _ string, _ int, _, name, result string, _, _ int) error {
	if f.fail {
		return errors.New("journal down")
	}
	f.missions = append(f.missions, name+"="+result)
	return nil
}

func (f *fakeJournal) TurnSummaries(_ context.Context, _ string, _ int) ([]string, error) {
	return f.turns, nil
}

type fixedRoller struct{ v int }

func (r fixedRoller) Roll2D12() int { return r.v }

func newCampaign(roll int) *entity.Campaign {
	n := 0
	return entity.New("camp-app", entity.WithRoller(fixedRoller{v: roll}), entity.WithIDGen(func() string {
		n++
		return string(rune('a'+n%26)) + string(rune('0'+n/26))
	}))
}

func TestCampaignService_错误翻译为业务码(t *testing.T) {
	svc := NewCampaignService(nil, nil)
	c := newCampaign(18)

	// 产能占满后再开工
	if _, err := svc.StartProject(c, "barracks"); err != nil {
		t.Fatalf("开工失败：%v", err)
	}
	if _, err := svc.StartProject(c, "armory"); err == nil {
		// armory 需要 2 补给，开局只剩 1
		t.Fatalf("资源不足应报错")
	} else if !errors.Is(err, errx.NewBiz(CodeInsufficientRes, "")) {
		t.Fatalf("应映射为资源不足业务码，got=%v", err)
	}

	if _, err := svc.StartProject(c, "no-such-template"); !errors.Is(err, errx.NewBiz(CodeTargetNotFound, "")) {
		t.Fatalf("未知模板应映射为目标不存在，got=%v", err)
	}

	if err := svc.SelectIncome(c, "Pillage the Countryside"); !errors.Is(err, errx.NewBiz(CodeInvalidParam, "")) {
		t.Fatalf("未知收入应报参数错误，got=%v", err)
	}
}

func TestCampaignService_任务结算写流水(t *testing.T) {
	journal := &fakeJournal{}
	svc := NewCampaignService(journal, nil)
	c := newCampaign(20)

	m := svc.AddMission(c, entity.MissionDraft{Name: "Raid the pass", Category: "Battle", Scale: "Troop"})
	out, err := svc.ResolveMission(context.Background(), c, m.ID, 0)
	if err != nil {
		t.Fatalf("结算失败：%v", err)
	}
	if out.Result != entity.MissionSuccess {
		t.Fatalf("20 点应为成功，got=%q", out.Result)
	}
	if len(journal.missions) != 1 || journal.missions[0] != "Raid the pass=Success" {
		t.Fatalf("任务流水不符：%v", journal.missions)
	}

	if _, err := svc.ResolveMission(context.Background(), c, "ghost", 0); !errors.Is(err, errx.NewBiz(CodeTargetNotFound, "")) {
		t.Fatalf("幽灵任务应报目标不存在，got=%v", err)
	}
}

func TestCampaignService_回合收尾写摘要(t *testing.T) {
	journal := &fakeJournal{}
	svc := NewCampaignService(journal, nil)
	c := newCampaign(18)

	turn, err := svc.CompleteTurn(context.Background(), c)
	if err != nil || turn != 2 {
		t.Fatalf("收尾失败：turn=%d err=%v", turn, err)
	}
	if len(journal.turns) != 1 {
		t.Fatalf("应写一条回合摘要，got=%v", journal.turns)
	}

	// 流水挂了不阻断回合推进
	journal.fail = true
	if turn, err := svc.CompleteTurn(context.Background(), c); err != nil || turn != 3 {
		t.Fatalf("流水失败不应阻断收尾：turn=%d err=%v", turn, err)
	}
}

func TestCampaignService_导入导出往返(t *testing.T) {
	svc := NewCampaignService(nil, nil)
	c := newCampaign(18)
	if _, err := svc.StartProject(c, "barracks"); err != nil {
		t.Fatalf("开工失败：%v", err)
	}
	svc.AddNote(c, "Mira", "Bribed the gate sergeant")

	raw, err := svc.Export(c)
	if err != nil {
		t.Fatalf("导出失败：%v", err)
	}

	fresh := newCampaign(18)
	if err := svc.Import(fresh, raw); err != nil {
		t.Fatalf("导入失败：%v", err)
	}
	if len(fresh.Projects()) != 1 || len(fresh.Notes()) != 1 {
		t.Fatalf("导入后状态不符")
	}

	// 坏存档整份拒绝，原状态不动
	before := svc.Overview(fresh)
	err = svc.Import(fresh, []byte(`{"turn":0}`))
	if !errors.Is(err, errx.NewBiz(snapshot.CodeInvalidSnapshot, "")) {
		t.Fatalf("坏存档应被拒，got=%v", err)
	}
	after := svc.Overview(fresh)
	if after.State.Turn != before.State.Turn || len(after.State.Projects) != len(before.State.Projects) {
		t.Fatalf("被拒的导入不应动状态")
	}
}

func TestCampaignService_部队状态区分不存在与休整锁(t *testing.T) {
	svc := NewCampaignService(nil, nil)
	c := newCampaign(18)
	id := c.Troops()[0].ID

	if _, err := svc.UpdateTroopStatus(c, "ghost", entity.TroopActive, 0); !errors.Is(err, errx.NewBiz(CodeTargetNotFound, "")) {
		t.Fatalf("幽灵部队应报目标不存在，got=%v", err)
	}

	if ok, err := svc.UpdateTroopStatus(c, id, entity.TroopRecovering, 0); err != nil || !ok {
		t.Fatalf("转休整失败：ok=%v err=%v", ok, err)
	}
	// 休整锁内转回 active：静默无效，不报错
	if ok, err := svc.UpdateTroopStatus(c, id, entity.TroopActive, 0); err != nil || ok {
		t.Fatalf("休整锁应静默拦下：ok=%v err=%v", ok, err)
	}
}
