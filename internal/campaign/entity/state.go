package entity

// State 是战役状态的序列化形态，快照导入导出与落盘都用它。
// 持久化快照不带 turnHistory（历史走流水日志），对外导出时带上。
type State struct {
	Turn         int                    `json:"turn"`
	ActivePhase  PhaseKey               `json:"activePhase"`
	Resources    map[string]int         `json:"resources"`
	FestivalUsed bool                   `json:"festivalUsed"`
	Income       IncomeType             `json:"income,omitempty"`
	IncomeTurn   int                    `json:"incomeTurn,omitempty"`
	Edict        EdictType              `json:"edict,omitempty"`
	EdictTurn    int                    `json:"edictTurn,omitempty"`
	Projects     []*ProjectInstance     `json:"projects"`
	Recruitments []*RecruitmentInstance `json:"recruitments"`
	Captains     []*Captain             `json:"captains"`
	Troops       []*Troop               `json:"troops"`
	Missions     []*Mission             `json:"missions"`
	Events       []*EventEntry          `json:"events"`
	Notes        []*NoteEntry           `json:"notes"`
	TurnHistory  []string               `json:"turnHistory,omitempty"`
}

// State 导出一份深拷贝快照，调用方拿走后随便改。
func (c *Campaign) State(includeHistory bool) *State {
	s := &State{
		Turn:         c.turn,
		ActivePhase:  c.phase,
		Resources:    cloneCost(c.resources),
		FestivalUsed: c.festivalUsed,
		Income:       c.income,
		IncomeTurn:   c.incomeTurn,
		Edict:        c.edict,
		EdictTurn:    c.edictTurn,
		Projects:     make([]*ProjectInstance, 0, len(c.projects)),
		Recruitments: make([]*RecruitmentInstance, 0, len(c.recruitments)),
		Captains:     make([]*Captain, 0, len(c.captains)),
		Troops:       make([]*Troop, 0, len(c.troops)),
		Missions:     make([]*Mission, 0, len(c.missions)),
		Events:       make([]*EventEntry, 0, len(c.events)),
		Notes:        make([]*NoteEntry, 0, len(c.notes)),
	}
	for _, p := range c.projects {
		cp := *p
		cp.Cost = cloneCost(p.Cost)
		s.Projects = append(s.Projects, &cp)
	}
	for _, r := range c.recruitments {
		cp := *r
		cp.Cost = cloneCost(r.Cost)
		cp.RequiresProjects = append([]string(nil), r.RequiresProjects...)
		s.Recruitments = append(s.Recruitments, &cp)
	}
	for _, cpt := range c.captains {
		cp := *cpt
		cp.Traits = append([]string(nil), cpt.Traits...)
		s.Captains = append(s.Captains, &cp)
	}
	for _, t := range c.troops {
		cp := *t
		s.Troops = append(s.Troops, &cp)
	}
	for _, m := range c.missions {
		cp := *m
		cp.AssignedTroopIDs = append([]string{}, m.AssignedTroopIDs...)
		s.Missions = append(s.Missions, &cp)
	}
	for _, e := range c.events {
		cp := *e
		s.Events = append(s.Events, &cp)
	}
	for _, n := range c.notes {
		cp := *n
		s.Notes = append(s.Notes, &cp)
	}
	if includeHistory {
		s.TurnHistory = append([]string(nil), c.turnHistory...)
	}
	return s
}

// RestoreState 用一份状态整体覆盖聚合。调用方负责先过校验
// （snapshot 包），这里只做深拷贝装载。
func (c *Campaign) RestoreState(s *State) {
	c.turn = s.Turn
	c.phase = s.ActivePhase
	c.resources = make(map[string]int, len(ResourceTypes))
	for _, typ := range ResourceTypes {
		c.resources[typ] = clampResource(s.Resources[typ])
	}
	c.festivalUsed = s.FestivalUsed
	c.income, c.incomeTurn = s.Income, s.IncomeTurn
	c.edict, c.edictTurn = s.Edict, s.EdictTurn

	c.projects = make([]*ProjectInstance, 0, len(s.Projects))
	for _, p := range s.Projects {
		cp := *p
		cp.Cost = cloneCost(p.Cost)
		c.projects = append(c.projects, &cp)
	}
	c.recruitments = make([]*RecruitmentInstance, 0, len(s.Recruitments))
	for _, r := range s.Recruitments {
		cp := *r
		cp.Cost = cloneCost(r.Cost)
		cp.RequiresProjects = append([]string(nil), r.RequiresProjects...)
		c.recruitments = append(c.recruitments, &cp)
	}
	c.captains = make([]*Captain, 0, len(s.Captains))
	for _, cpt := range s.Captains {
		cp := *cpt
		cp.Traits = append([]string(nil), cpt.Traits...)
		c.captains = append(c.captains, &cp)
	}
	c.troops = make([]*Troop, 0, len(s.Troops))
	for _, t := range s.Troops {
		cp := *t
		c.troops = append(c.troops, &cp)
	}
	c.missions = make([]*Mission, 0, len(s.Missions))
	for _, m := range s.Missions {
		cp := *m
		if m.AssignedTroopIDs == nil {
			cp.AssignedTroopIDs = []string{}
		} else {
			cp.AssignedTroopIDs = append([]string{}, m.AssignedTroopIDs...)
		}
		c.missions = append(c.missions, &cp)
	}
	c.events = make([]*EventEntry, 0, len(s.Events))
	for _, e := range s.Events {
		cp := *e
		c.events = append(c.events, &cp)
	}
	c.notes = make([]*NoteEntry, 0, len(s.Notes))
	for _, n := range s.Notes {
		cp := *n
		c.notes = append(c.notes, &cp)
	}
	c.turnHistory = append([]string(nil), s.TurnHistory...)
	c.markDirty()
}
