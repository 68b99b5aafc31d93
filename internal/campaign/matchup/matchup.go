package matchup

import "sync"

// 兵种克制矩阵：给定攻守双方兵种，返回攻方在一次 1v1 对抗里的修正值。
// 常规兵种之间是固定的 ±2 克制关系；精英兵种定义为两个常规兵种的组合，
// 修正值按组合的笛卡尔积逐对求和（双精英对位时会出现 ±4 的叠加）。

const (
	Cavalry  = "Cavalry"
	Infantry = "Infantry"
	Shield   = "Shield"
	Mages    = "Mages"
	Archers  = "Archers"
	Militia  = "Militia"
	Scouts   = "Scouts"

	Spellknights = "Spellknights"
	Battlemages  = "Battlemages"
	Pathfinders  = "Pathfinders"
	Cataphracts  = "Cataphracts"
	Dreadguard   = "Dreadguard"
)

var AllRegular = []string{Cavalry, Infantry, Shield, Mages, Archers, Militia, Scouts}

var AllElite = []string{Spellknights, Battlemages, Pathfinders, Cataphracts, Dreadguard}

var AllTroops = append(append([]string{}, AllRegular...), AllElite...)

var beats = map[string][]string{
	Cavalry:  {Infantry, Mages, Scouts},
	Infantry: {Shield, Scouts},
	Shield:   {Archers, Scouts},
	Mages:    {Shield},
	Archers:  {Cavalry},
	Militia:  {},
	Scouts:   {Mages, Archers},
}

var elitePairs = map[string][2]string{
	Spellknights: {Cavalry, Mages},
	Battlemages:  {Infantry, Mages},
	Pathfinders:  {Infantry, Scouts},
	Cataphracts:  {Cavalry, Shield},
	Dreadguard:   {Infantry, Shield},
}

// IsTroopType 判断是否是收录在矩阵里的兵种（自由文本兵种不参与克制计算）。
func IsTroopType(value string) bool {
	_, regular := beats[value]
	_, elite := elitePairs[value]
	return regular || elite
}

func contains(list []string, target string) bool {
	for _, v := range list {
		if v == target {
			return true
		}
	}
	return false
}

func regularMatchup(attacker, defender string) int {
	if attacker == defender {
		return 0
	}
	if attacker == Militia {
		return -2
	}
	if defender == Militia {
		return +2
	}
	if contains(beats[attacker], defender) {
		return +2
	}
	if contains(beats[defender], attacker) {
		return -2
	}
	return 0
}

func expandToRegular(troop string) ([]string, bool) {
	if pair, ok := elitePairs[troop]; ok {
		return []string{pair[0], pair[1]}, true
	}
	if _, ok := beats[troop]; ok {
		return []string{troop}, true
	}
	return nil, false
}

// Modifier 返回攻方修正值；任一方兵种未收录时 ok=false（视为无克制数据）。
func Modifier(attacker, defender string) (int, bool) {
	attackerParts, ok := expandToRegular(attacker)
	if !ok {
		return 0, false
	}
	defenderParts, ok := expandToRegular(defender)
	if !ok {
		return 0, false
	}

	total := 0
	for _, a := range attackerParts {
		for _, d := range defenderParts {
			total += regularMatchup(a, d)
		}
	}
	return total, true
}

var (
	matrixOnce   sync.Once
	cachedMatrix map[string]map[string]int
)

// Matrix 返回完整兵种×兵种矩阵（纯数据，进程内只计算一次）。
func Matrix() map[string]map[string]int {
	matrixOnce.Do(func() {
		cachedMatrix = make(map[string]map[string]int, len(AllTroops))
		for _, attacker := range AllTroops {
			row := make(map[string]int, len(AllTroops))
			for _, defender := range AllTroops {
				mod, _ := Modifier(attacker, defender)
				row[defender] = mod
			}
			cachedMatrix[attacker] = row
		}
	})
	return cachedMatrix
}

type Summary struct {
	StrongAgainst []string `json:"strongAgainst"`
	WeakAgainst   []string `json:"weakAgainst"`
	EvenWith      []string `json:"evenWith"`
}

// Summarize 按矩阵把某兵种的对位拆成 克制/被克/均势 三组。
func Summarize(troop string) (Summary, bool) {
	row, ok := Matrix()[troop]
	if !ok {
		return Summary{}, false
	}
	var out Summary
	for _, opponent := range AllTroops {
		if opponent == troop {
			continue
		}
		switch result := row[opponent]; {
		case result > 0:
			out.StrongAgainst = append(out.StrongAgainst, opponent)
		case result < 0:
			out.WeakAgainst = append(out.WeakAgainst, opponent)
		default:
			out.EvenWith = append(out.EvenWith, opponent)
		}
	}
	return out, true
}
