// Package snapshot 负责战役状态的导入导出编解码与校验。
// 导出是带缩进的完整 JSON；导入先整体校验，任何一处不合法就整份拒绝，
// 绝不半截装载。
package snapshot

import (
	"encoding/json"

	"Stronghold/internal/campaign/entity"
	"Stronghold/modules/kit/errx"
)

// Version 持久化快照的结构版本号，字段演进时递增。
const Version = 1

const CodeInvalidSnapshot errx.Code = "CAMPAIGN_SNAPSHOT_INVALID"

func invalid(reason string) error {
	return errx.NewBiz(CodeInvalidSnapshot, "快照校验失败").WithData("reason", reason)
}

// Encode 导出为可读 JSON，给 GM 下载存档用。
func Encode(s *entity.State) ([]byte, error) {
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, errx.ErrInternal.WithCause(err)
	}
	return raw, nil
}

// Decode 解析并整体校验一份导入的存档。未知字段忽略，
// 已知字段不合法则整份拒绝。
func Decode(raw []byte) (*entity.State, error) {
	var s entity.State
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, errx.NewBiz(CodeInvalidSnapshot, "快照不是合法 JSON").WithCause(err)
	}
	if err := Validate(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate 对状态做结构校验。规则故意从严：宁可拒绝一份可疑存档，
// 也不让坏数据进聚合。
func Validate(s *entity.State) error {
	if s == nil {
		return invalid("empty state")
	}
	if s.Turn < 1 {
		return invalid("turn must be >= 1")
	}
	if !validPhase(s.ActivePhase) {
		return invalid("unknown active phase")
	}
	if s.Resources == nil {
		return invalid("resources missing")
	}
	for _, typ := range entity.ResourceTypes {
		v, ok := s.Resources[typ]
		if !ok {
			return invalid("resource missing: " + typ)
		}
		if v < entity.MinResource || v > entity.MaxResource {
			return invalid("resource out of range: " + typ)
		}
	}
	for typ := range s.Resources {
		if !knownResource(typ) {
			return invalid("unknown resource: " + typ)
		}
	}
	if s.Income != "" {
		if _, ok := entity.IncomeEffects[s.Income]; !ok {
			return invalid("unknown income type")
		}
	}
	if s.Edict != "" {
		if _, ok := entity.EdictEffects[s.Edict]; !ok {
			return invalid("unknown edict type")
		}
	}

	seen := make(map[string]bool)
	for _, p := range s.Projects {
		if p == nil || p.ID == "" {
			return invalid("project id missing")
		}
		if seen["p:"+p.ID] {
			return invalid("duplicate project id: " + p.ID)
		}
		seen["p:"+p.ID] = true
		if p.TurnsRequired < 1 {
			return invalid("project turnsRequired must be >= 1: " + p.ID)
		}
		if p.Progress < 0 || p.Progress > p.TurnsRequired {
			return invalid("project progress out of range: " + p.ID)
		}
		if p.StartedTurn < 1 || p.StartedTurn > s.Turn {
			return invalid("project startedTurn out of range: " + p.ID)
		}
		if p.CompletedTurn != 0 && p.CompletedTurn < p.StartedTurn {
			return invalid("project completedTurn before startedTurn: " + p.ID)
		}
	}
	for _, r := range s.Recruitments {
		if r == nil || r.ID == "" {
			return invalid("recruitment id missing")
		}
		if seen["r:"+r.ID] {
			return invalid("duplicate recruitment id: " + r.ID)
		}
		seen["r:"+r.ID] = true
		if r.TurnsRequired < 1 {
			return invalid("recruitment turnsRequired must be >= 1: " + r.ID)
		}
		if r.Progress < 0 || r.Progress > r.TurnsRequired {
			return invalid("recruitment progress out of range: " + r.ID)
		}
		if r.CompletedTurn == 0 && r.ConvertedTroopID != "" {
			return invalid("recruitment converted before completion: " + r.ID)
		}
	}

	troopIDs := make(map[string]bool, len(s.Troops))
	for _, t := range s.Troops {
		if t == nil || t.ID == "" {
			return invalid("troop id missing")
		}
		if troopIDs[t.ID] {
			return invalid("duplicate troop id: " + t.ID)
		}
		troopIDs[t.ID] = true
		if !entity.IsTroopStatus(t.Status) {
			return invalid("unknown troop status: " + t.Status)
		}
		if t.MissionsCompleted < 0 {
			return invalid("troop missionsCompleted negative: " + t.ID)
		}
	}

	missionIDs := make(map[string]bool, len(s.Missions))
	for _, m := range s.Missions {
		if m == nil || m.ID == "" {
			return invalid("mission id missing")
		}
		if missionIDs[m.ID] {
			return invalid("duplicate mission id: " + m.ID)
		}
		missionIDs[m.ID] = true
		// result 不限词表：GM 可以手填战报文本，掷骰结算写的也是四档之一
		for _, tid := range m.AssignedTroopIDs {
			if !troopIDs[tid] {
				return invalid("mission references unknown troop: " + m.ID)
			}
		}
	}

	captainIDs := make(map[string]bool, len(s.Captains))
	for _, cpt := range s.Captains {
		if cpt == nil || cpt.ID == "" {
			return invalid("captain id missing")
		}
		if captainIDs[cpt.ID] {
			return invalid("duplicate captain id: " + cpt.ID)
		}
		captainIDs[cpt.ID] = true
		if cpt.AssignedMissionID != "" && !missionIDs[cpt.AssignedMissionID] {
			return invalid("captain references unknown mission: " + cpt.ID)
		}
	}
	for _, m := range s.Missions {
		if m.AssignedCaptainID != "" && !captainIDs[m.AssignedCaptainID] {
			return invalid("mission references unknown captain: " + m.ID)
		}
	}
	for _, e := range s.Events {
		if e == nil || e.ID == "" {
			return invalid("event id missing")
		}
	}
	for _, n := range s.Notes {
		if n == nil || n.ID == "" {
			return invalid("note id missing")
		}
	}
	return nil
}

func validPhase(p entity.PhaseKey) bool {
	for _, known := range entity.Phases {
		if known == p {
			return true
		}
	}
	return false
}

func knownResource(typ string) bool {
	for _, known := range entity.ResourceTypes {
		if known == typ {
			return true
		}
	}
	return false
}
