package catalog

import "testing"

func TestLoad_目录数据完整(t *testing.T) {
	Load()

	if got := len(Projects()); got != 15 {
		t.Fatalf("期望 15 个工程模板，got=%d", got)
	}
	if got := len(Recruitments()); got != 3 {
		t.Fatalf("期望 3 个招募选项，got=%d", got)
	}
	if got := len(Captains()); got != 5 {
		t.Fatalf("期望 5 名队长，got=%d", got)
	}
	if got := len(Troops()); got != 8 {
		t.Fatalf("期望 8 支初始部队，got=%d", got)
	}

	wonder, ok := GetProject("war-council")
	if !ok {
		t.Fatalf("期望能按 id 查到 war-council")
	}
	if wonder.Tier != TierWonder || wonder.TurnsRequired != 4 {
		t.Fatalf("war-council 配置不符：%+v", wonder)
	}
	if wonder.Cost["wealth"] != 3 || wonder.Cost["supplies"] != 2 || wonder.Cost["loyalty"] != 1 {
		t.Fatalf("war-council 造价不符：%v", wonder.Cost)
	}

	militia, ok := GetRecruitment("militia-spears")
	if !ok || militia.Type != RecruitMilitia {
		t.Fatalf("militia-spears 配置不符：%+v", militia)
	}
}
