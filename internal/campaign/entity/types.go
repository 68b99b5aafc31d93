package entity

// 战役领域类型。字段名与快照文档的 JSON 字段一一对应，
// 序列化约定：0/空串表示“未设置”（回合号从 1 开始，0 是安全的哨兵值）。

type PhaseKey string

const (
	PhaseDashboard   PhaseKey = "Dashboard"
	PhaseIncomeEdict PhaseKey = "Income & Edict"
	PhaseProjects    PhaseKey = "Projects"
	PhaseRecruitment PhaseKey = "Recruitment"
	PhasePCActions   PhaseKey = "PC Actions"
	PhaseMissions    PhaseKey = "Missions"
	PhaseEvents      PhaseKey = "Events"
)

// Phases 是固定的回合内阶段顺序。
var Phases = []PhaseKey{
	PhaseDashboard,
	PhaseIncomeEdict,
	PhaseProjects,
	PhaseRecruitment,
	PhasePCActions,
	PhaseMissions,
	PhaseEvents,
}

const (
	ResourceWealth   = "wealth"
	ResourceSupplies = "supplies"
	ResourceLoyalty  = "loyalty"
)

var ResourceTypes = []string{ResourceWealth, ResourceSupplies, ResourceLoyalty}

const (
	MaxResource = 5
	MinResource = 0
)

// StartingResources 是新战役的初始资源。
var StartingResources = map[string]int{
	ResourceWealth:   2,
	ResourceSupplies: 2,
	ResourceLoyalty:  1,
}

type IncomeType string

const (
	IncomeCollectTaxes     IncomeType = "Collect Taxes"
	IncomeTradeCommodities IncomeType = "Trade Commodities"
	IncomePurchaseReserves IncomeType = "Purchase Reserves"
	IncomeSupplyExpedition IncomeType = "Supply Expedition"
)

// IncomeEffects 是收入选项的固定资源增减表。
var IncomeEffects = map[IncomeType]map[string]int{
	IncomeCollectTaxes:     {ResourceWealth: 1},
	IncomeTradeCommodities: {ResourceWealth: 1, ResourceSupplies: -1},
	IncomePurchaseReserves: {ResourceWealth: -1, ResourceSupplies: 1},
	IncomeSupplyExpedition: {ResourceSupplies: 1},
}

type EdictType string

const (
	EdictHarvest  EdictType = "Harvest"
	EdictTrade    EdictType = "Trade"
	EdictTownHall EdictType = "Town Hall"
	EdictDraft    EdictType = "Draft"
)

// EdictEffects 是政令的固定资源增减表。
var EdictEffects = map[EdictType]map[string]int{
	EdictHarvest:  {ResourceSupplies: 1},
	EdictTrade:    {ResourceWealth: 1},
	EdictTownHall: {ResourceLoyalty: 1},
	EdictDraft:    {ResourceSupplies: 1, ResourceLoyalty: -1},
}

type ProjectInstance struct {
	ID               string         `json:"id"`
	TemplateID       string         `json:"templateId"`
	Name             string         `json:"name"`
	Tier             string         `json:"tier"`
	Cost             map[string]int `json:"cost"`
	TurnsRequired    int            `json:"turnsRequired"`
	Effects          string         `json:"effects"`
	Progress         int            `json:"progress"`
	RushRisked       bool           `json:"rushRisked,omitempty"`
	CompletedTurn    int            `json:"completedTurn,omitempty"`
	StartedTurn      int            `json:"startedTurn"`
	LastProgressTurn int            `json:"lastProgressTurn,omitempty"`
}

func (p *ProjectInstance) Completed() bool {
	return p != nil && p.CompletedTurn != 0
}

type RecruitmentInstance struct {
	ID               string         `json:"id"`
	TemplateID       string         `json:"templateId"`
	Name             string         `json:"name"`
	Type             string         `json:"type"`
	Cost             map[string]int `json:"cost"`
	TurnsRequired    int            `json:"turnsRequired"`
	Result           string         `json:"result"`
	RequiresProjects []string       `json:"requiresProjects,omitempty"`
	Progress         int            `json:"progress"`
	CompletedTurn    int            `json:"completedTurn,omitempty"`
	StartedTurn      int            `json:"startedTurn"`
	LastProgressTurn int            `json:"lastProgressTurn,omitempty"`
	ConvertedTroopID string         `json:"convertedTroopId,omitempty"`
}

func (r *RecruitmentInstance) Completed() bool {
	return r != nil && r.CompletedTurn != 0
}

type Captain struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Specialty         string   `json:"specialty"`
	Notes             string   `json:"notes,omitempty"`
	AssignedMissionID string   `json:"assignedMissionId,omitempty"`
	Traits            []string `json:"traits,omitempty"`
}

const (
	TroopActive     = "active"
	TroopDeployed   = "deployed"
	TroopRecovering = "recovering"
)

// IsTroopStatus 部队状态是闭集词表，状态变更与存档校验共用同一份判定。
func IsTroopStatus(s string) bool {
	switch s {
	case TroopActive, TroopDeployed, TroopRecovering:
		return true
	}
	return false
}

type Troop struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Tier                string `json:"tier"`
	Type                string `json:"type"`
	Status              string `json:"status"`
	Advantages          string `json:"advantages"`
	MissionsCompleted   int    `json:"missionsCompleted"`
	RecoveringUntilTurn int    `json:"recoveringUntilTurn,omitempty"`
}

const (
	MissionCritSuccess        = "Critical Success"
	MissionSuccess            = "Success"
	MissionSuccessConsequence = "Success with Consequences"
	MissionFailure            = "Failure"
)

type Mission struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Category          string   `json:"category"`
	Scale             string   `json:"scale"`
	Description       string   `json:"description,omitempty"`
	AssignedCaptainID string   `json:"assignedCaptainId,omitempty"`
	AssignedTroopIDs  []string `json:"assignedTroopIds"`
	Roll              int      `json:"roll,omitempty"`
	Modifier          int      `json:"modifier"`
	Result            string   `json:"result,omitempty"`
	Consequences      string   `json:"consequences,omitempty"`
	Turn              int      `json:"turn"`
}

type EventEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Turn        int    `json:"turn"`
	Resolved    bool   `json:"resolved"`
}

type NoteEntry struct {
	ID      string `json:"id"`
	Turn    int    `json:"turn"`
	Player  string `json:"player"`
	Details string `json:"details"`
}
