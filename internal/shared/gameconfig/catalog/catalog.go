package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// 战役静态配置：工程模板、招募选项、队长名册、初始部队名册。
// 配置数据放在包目录下的 JSON 文件里，启动时一次性加载，数据有误直接 panic。

const (
	projectsFile     = "projects.json"
	recruitmentsFile = "recruitments.json"
	captainsFile     = "captains.json"
	troopsFile       = "troops.json"
)

const (
	TierStandard = "standard"
	TierAdvanced = "advanced"
	TierWonder   = "wonder"
)

const (
	RecruitMilitia = "militia"
	RecruitRegular = "regular"
	RecruitElite   = "elite"
)

// Cost 是资源消耗表：资源名 -> 数量（wealth/supplies/loyalty）。
type Cost map[string]int

type ProjectTemplate struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Tier          string `json:"tier"`
	Cost          Cost   `json:"cost"`
	TurnsRequired int    `json:"turnsRequired"`
	Effects       string `json:"effects"`
}

type RecruitmentOption struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	Cost             Cost     `json:"cost"`
	TurnsRequired    int      `json:"turnsRequired"`
	Result           string   `json:"result"`
	RequiresProjects []string `json:"requiresProjects,omitempty"`
}

type CaptainSpec struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Specialty string   `json:"specialty"`
	Notes     string   `json:"notes,omitempty"`
	Traits    []string `json:"traits,omitempty"`
}

type TroopSpec struct {
	Name       string `json:"name"`
	Tier       string `json:"tier"`
	Type       string `json:"type"`
	Advantages string `json:"advantages"`
}

type catalogConf struct {
	projects     []ProjectTemplate
	recruitments []RecruitmentOption
	captains     []CaptainSpec
	troops       []TroopSpec
	projectByID  map[string]*ProjectTemplate
	recruitByID  map[string]*RecruitmentOption
}

var Conf = &catalogConf{}

// Load 保持与其他配置模块一致的调用方式。
func Load() {
	Conf.Load()
}

func (c *catalogConf) Load() {
	if c == nil {
		panic("load catalog config failed: Conf is nil")
	}

	_, file, _, ok := runtime.Caller(0)
	if !ok {
		panic("load catalog config failed: runtime.Caller(0) error")
	}
	baseDir := filepath.Dir(file)

	loadJSONFile(filepath.Join(baseDir, projectsFile), &c.projects)
	loadJSONFile(filepath.Join(baseDir, recruitmentsFile), &c.recruitments)
	loadJSONFile(filepath.Join(baseDir, captainsFile), &c.captains)
	loadJSONFile(filepath.Join(baseDir, troopsFile), &c.troops)

	c.projectByID = make(map[string]*ProjectTemplate, len(c.projects))
	for i := range c.projects {
		p := &c.projects[i]
		if p.ID == "" || p.TurnsRequired <= 0 {
			panic(fmt.Errorf("load catalog failed: invalid project template %+v", p))
		}
		if _, exists := c.projectByID[p.ID]; exists {
			panic(fmt.Errorf("load catalog failed: duplicate project id=%q", p.ID))
		}
		c.projectByID[p.ID] = p
	}

	c.recruitByID = make(map[string]*RecruitmentOption, len(c.recruitments))
	for i := range c.recruitments {
		r := &c.recruitments[i]
		if r.ID == "" || r.TurnsRequired <= 0 {
			panic(fmt.Errorf("load catalog failed: invalid recruitment option %+v", r))
		}
		if _, exists := c.recruitByID[r.ID]; exists {
			panic(fmt.Errorf("load catalog failed: duplicate recruitment id=%q", r.ID))
		}
		c.recruitByID[r.ID] = r
		// 招募前置必须指向已收录的工程模板
		for _, req := range r.RequiresProjects {
			if _, ok := c.projectByID[req]; !ok {
				panic(fmt.Errorf("load catalog failed: recruitment %q requires unknown project %q", r.ID, req))
			}
		}
	}
}

func loadJSONFile(path string, out any) {
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(fmt.Errorf("load catalog failed: read %q: %w", path, err))
	}
	if err := json.Unmarshal(raw, out); err != nil {
		panic(fmt.Errorf("load catalog failed: unmarshal %q: %w", path, err))
	}
}

func (c *catalogConf) Projects() []ProjectTemplate {
	out := make([]ProjectTemplate, len(c.projects))
	copy(out, c.projects)
	return out
}

func (c *catalogConf) Recruitments() []RecruitmentOption {
	out := make([]RecruitmentOption, len(c.recruitments))
	copy(out, c.recruitments)
	return out
}

func (c *catalogConf) Captains() []CaptainSpec {
	out := make([]CaptainSpec, len(c.captains))
	copy(out, c.captains)
	return out
}

func (c *catalogConf) Troops() []TroopSpec {
	out := make([]TroopSpec, len(c.troops))
	copy(out, c.troops)
	return out
}

func (c *catalogConf) GetProject(id string) (*ProjectTemplate, bool) {
	if c == nil || c.projectByID == nil {
		return nil, false
	}
	v, ok := c.projectByID[id]
	return v, ok
}

func (c *catalogConf) GetRecruitment(id string) (*RecruitmentOption, bool) {
	if c == nil || c.recruitByID == nil {
		return nil, false
	}
	v, ok := c.recruitByID[id]
	return v, ok
}

func Projects() []ProjectTemplate              { return Conf.Projects() }
func Recruitments() []RecruitmentOption        { return Conf.Recruitments() }
func Captains() []CaptainSpec                  { return Conf.Captains() }
func Troops() []TroopSpec                      { return Conf.Troops() }
func GetProject(id string) (*ProjectTemplate, bool) { return Conf.GetProject(id) }
func GetRecruitment(id string) (*RecruitmentOption, bool) {
	return Conf.GetRecruitment(id)
}
