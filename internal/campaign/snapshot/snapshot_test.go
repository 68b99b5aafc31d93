package snapshot

import (
	"errors"
	"os"
	"testing"

	"Stronghold/internal/campaign/entity"
	"Stronghold/internal/shared/gameconfig/catalog"
	"Stronghold/modules/kit/errx"
)

func TestMain(m *testing.M) {
	catalog.Load()
	os.Exit(m.Run())
}

func buildState(t *testing.T) *entity.State {
	t.Helper()
	n := 0
	c := entity.New("camp-snap", entity.WithIDGen(func() string {
		n++
		return string(rune('a' + n))
	}))
	if _, err := c.StartProject("barracks"); err != nil {
		t.Fatalf("前置开工失败：%v", err)
	}
	m := c.AddMission(entity.MissionDraft{Name: "Raid", Category: "Battle", Scale: "Troop"})
	c.ToggleCaptainAssignment(m.ID, "takk")
	c.AddEvent("Omen", "Red comet over the keep")
	c.CompleteTurn()
	return c.State(true)
}

func TestEncodeDecode_往返(t *testing.T) {
	s := buildState(t)

	raw, err := Encode(s)
	if err != nil {
		t.Fatalf("编码失败：%v", err)
	}
	decoded, err := Decode(raw)
	if err != nil {
		t.Fatalf("解码失败：%v", err)
	}
	if decoded.Turn != s.Turn || decoded.ActivePhase != s.ActivePhase {
		t.Fatalf("往返后回合/阶段不符")
	}
	if len(decoded.Projects) != 1 || decoded.Projects[0].ID != s.Projects[0].ID {
		t.Fatalf("往返后工程不符")
	}
	if len(decoded.TurnHistory) != len(s.TurnHistory) {
		t.Fatalf("往返后历史不符")
	}
}

// 聚合接受的任何变更，导出的存档都必须能原样导入。
func TestEncodeDecode_状态变更后导出仍可导入(t *testing.T) {
	n := 0
	c := entity.New("camp-rt", entity.WithIDGen(func() string {
		n++
		return string(rune('a' + n))
	}))
	m := c.AddMission(entity.MissionDraft{Name: "Escort", Category: "Battle", Scale: "Troop"})
	report := "Pyrrhic Victory"
	if !c.UpdateMission(m.ID, entity.MissionUpdate{Result: &report}) {
		t.Fatalf("更新任务战报失败")
	}
	if !c.UpdateTroopStatus(c.Troops()[0].ID, entity.TroopDeployed, 1) {
		t.Fatalf("更新部队状态失败")
	}

	raw, err := Encode(c.State(true))
	if err != nil {
		t.Fatalf("编码失败：%v", err)
	}
	decoded, err := Decode(raw)
	if err != nil {
		t.Fatalf("自家导出的存档不应被拒：%v", err)
	}
	if decoded.Missions[0].Result != report {
		t.Fatalf("战报文本应原样保留，got=%s", decoded.Missions[0].Result)
	}
}

func TestDecode_非法JSON整份拒绝(t *testing.T) {
	_, err := Decode([]byte("{not json"))
	if !errors.Is(err, errx.NewBiz(CodeInvalidSnapshot, "")) {
		t.Fatalf("应报快照非法，got=%v", err)
	}
}

func TestValidate_坏数据整份拒绝(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*entity.State)
	}{
		{"回合号非法", func(s *entity.State) { s.Turn = 0 }},
		{"未知阶段", func(s *entity.State) { s.ActivePhase = "Tea Break" }},
		{"资源缺项", func(s *entity.State) { delete(s.Resources, entity.ResourceWealth) }},
		{"资源越界", func(s *entity.State) { s.Resources[entity.ResourceWealth] = 9 }},
		{"未知资源", func(s *entity.State) { s.Resources["mana"] = 1 }},
		{"未知收入", func(s *entity.State) { s.Income = "Pillage" }},
		{"工程进度越界", func(s *entity.State) { s.Projects[0].Progress = 99 }},
		{"工程开工在未来", func(s *entity.State) { s.Projects[0].StartedTurn = s.Turn + 5 }},
		{"部队状态非法", func(s *entity.State) { s.Troops[0].Status = "routed" }},
		{"任务引用幽灵部队", func(s *entity.State) {
			s.Missions[0].AssignedTroopIDs = []string{"no-such-troop"}
		}},
		{"队长引用幽灵任务", func(s *entity.State) { s.Captains[0].AssignedMissionID = "ghost" }},
		{"部队id重复", func(s *entity.State) { s.Troops[1].ID = s.Troops[0].ID }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := buildState(t)
			tc.mutate(s)
			err := Validate(s)
			if !errors.Is(err, errx.NewBiz(CodeInvalidSnapshot, "")) {
				t.Fatalf("应整份拒绝，got=%v", err)
			}
		})
	}
}

func TestValidate_合法快照放行(t *testing.T) {
	if err := Validate(buildState(t)); err != nil {
		t.Fatalf("合法快照不应被拒：%v", err)
	}
}
