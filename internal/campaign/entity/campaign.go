package entity

import (
	"strconv"

	"Stronghold/internal/campaign/dice"
	"Stronghold/internal/shared/gameconfig/catalog"
	"Stronghold/internal/shared/utils"
)

// Campaign 是单个战役的聚合根。所有修改都走导出方法，
// 内部不做并发保护——由持有它的 actor 串行化访问。
type Campaign struct {
	id           string
	turn         int
	phase        PhaseKey
	resources    map[string]int
	festivalUsed bool

	income     IncomeType
	incomeTurn int
	edict      EdictType
	edictTurn  int

	projects     []*ProjectInstance
	recruitments []*RecruitmentInstance
	captains     []*Captain
	troops       []*Troop
	missions     []*Mission
	events       []*EventEntry
	notes        []*NoteEntry
	turnHistory  []string

	roller dice.Roller
	newID  func() string

	dirty bool
}

type Option func(*Campaign)

// WithRoller 注入骰子源，测试里用固定种子保证可复现。
func WithRoller(r dice.Roller) Option {
	return func(c *Campaign) { c.roller = r }
}

// WithIDGen 注入实例 id 生成器。
func WithIDGen(gen func() string) Option {
	return func(c *Campaign) { c.newID = gen }
}

// New 创建一个全新战役：初始资源、目录里的队长与初始部队。
func New(id string, opts ...Option) *Campaign {
	c := &Campaign{id: id}
	for _, opt := range opts {
		opt(c)
	}
	if c.roller == nil {
		c.roller = dice.New(0)
	}
	if c.newID == nil {
		c.newID = func() string {
			id, err := utils.NextSnowflakeID()
			if err != nil {
				return utils.RandSeq(16)
			}
			return strconv.FormatInt(id, 10)
		}
	}
	c.resetToInitial()
	c.dirty = false
	return c
}

// resetToInitial 把所有战役状态拉回开局。Reset 与 New 共用。
func (c *Campaign) resetToInitial() {
	c.turn = 1
	c.phase = Phases[0]
	c.resources = make(map[string]int, len(StartingResources))
	for k, v := range StartingResources {
		c.resources[k] = v
	}
	c.festivalUsed = false
	c.income, c.incomeTurn = "", 0
	c.edict, c.edictTurn = "", 0
	c.projects = nil
	c.recruitments = nil
	c.missions = nil
	c.events = nil
	c.notes = nil
	c.turnHistory = nil

	specs := catalog.Captains()
	c.captains = make([]*Captain, 0, len(specs))
	for _, s := range specs {
		c.captains = append(c.captains, &Captain{
			ID:        s.ID,
			Name:      s.Name,
			Specialty: s.Specialty,
			Notes:     s.Notes,
			Traits:    append([]string(nil), s.Traits...),
		})
	}

	roster := catalog.Troops()
	c.troops = make([]*Troop, 0, len(roster))
	for _, s := range roster {
		c.troops = append(c.troops, &Troop{
			ID:         "troop-" + c.newID(),
			Name:       s.Name,
			Tier:       s.Tier,
			Type:       s.Type,
			Status:     TroopActive,
			Advantages: s.Advantages,
		})
	}
}

// Reset 整局重开。
func (c *Campaign) Reset() {
	c.resetToInitial()
	c.markDirty()
}

func (c *Campaign) ID() string      { return c.id }
func (c *Campaign) Turn() int       { return c.turn }
func (c *Campaign) Phase() PhaseKey { return c.phase }

func (c *Campaign) Resource(typ string) int { return c.resources[typ] }

func (c *Campaign) FestivalUsed() bool { return c.festivalUsed }

func (c *Campaign) Income() (IncomeType, int) { return c.income, c.incomeTurn }
func (c *Campaign) Edict() (EdictType, int)   { return c.edict, c.edictTurn }

func (c *Campaign) markDirty() { c.dirty = true }

// Dirty 自上次 ClearDirty 以来是否有改动，落盘调度用。
func (c *Campaign) Dirty() bool { return c.dirty }
func (c *Campaign) ClearDirty() { c.dirty = false }

func (c *Campaign) findProject(id string) *ProjectInstance {
	for _, p := range c.projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (c *Campaign) findRecruitment(id string) *RecruitmentInstance {
	for _, r := range c.recruitments {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func (c *Campaign) findCaptain(id string) *Captain {
	for _, cap := range c.captains {
		if cap.ID == id {
			return cap
		}
	}
	return nil
}

func (c *Campaign) findTroop(id string) *Troop {
	for _, t := range c.troops {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (c *Campaign) findMission(id string) *Mission {
	for _, m := range c.missions {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// hasTemplate 判断实例是否由某个模板建出。老存档没有 templateId，
// 按 "<模板id>-" 前缀兜底（带连字符，不会把 grand-barracks 误判成 barracks）。
func hasTemplate(instanceID, templateID, id string) bool {
	if templateID != "" {
		return templateID == id
	}
	if instanceID == id {
		return true
	}
	return len(instanceID) > len(id)+1 && instanceID[:len(id)+1] == id+"-"
}

// hasCompletedProject 是否存在某模板的已完工工程。
func (c *Campaign) hasCompletedProject(templateID string) bool {
	for _, p := range c.projects {
		if p.Completed() && hasTemplate(p.ID, p.TemplateID, templateID) {
			return true
		}
	}
	return false
}
