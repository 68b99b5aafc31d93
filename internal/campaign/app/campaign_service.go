package app

import (
	"context"

	"Stronghold/internal/campaign/app/port"
	"Stronghold/internal/campaign/entity"
	"Stronghold/internal/campaign/snapshot"
	"Stronghold/internal/shared/gameconfig/catalog"
	"Stronghold/modules/kit/errx"
	"Stronghold/modules/kit/logx"

	"go.uber.org/zap"
)

// CampaignService 聚合之上的用例层：参数校验、错误翻译、流水落库。
// 聚合本身由 actor 串行持有，service 无状态、可并发复用。
type CampaignService struct {
	journal port.JournalRepository // 可为 nil，流水写失败不阻断主流程
	logger  logx.Logger
}

func NewCampaignService(journal port.JournalRepository, logger logx.Logger) *CampaignService {
	return &CampaignService{journal: journal, logger: logger}
}

// Overview 仪表盘一把抓：完整状态加各类汇总。
type Overview struct {
	CampaignID           string                      `json:"campaignId"`
	State                *entity.State               `json:"state"`
	WorkOrders           entity.WorkOrderSummary     `json:"workOrders"`
	Recruitment          entity.RecruitmentSummary   `json:"recruitment"`
	ReadyForces          int                         `json:"readyForces"`
	AvailableRecruitment []catalog.RecruitmentOption `json:"availableRecruitment"`
}

func (s *CampaignService) Overview(c *entity.Campaign) *Overview {
	return &Overview{
		CampaignID:           c.ID(),
		State:                c.State(true),
		WorkOrders:           c.WorkOrderStatus(),
		Recruitment:          c.RecruitmentStatus(),
		ReadyForces:          c.ReadyForces(),
		AvailableRecruitment: c.AvailableRecruitment(),
	}
}

func (s *CampaignService) SelectIncome(c *entity.Campaign, income string) error {
	if _, ok := entity.IncomeEffects[entity.IncomeType(income)]; !ok {
		return NewError(CodeInvalidParam, "未知的收入选项")
	}
	c.SelectIncome(entity.IncomeType(income))
	return nil
}

func (s *CampaignService) SelectEdict(c *entity.Campaign, edict string) error {
	if _, ok := entity.EdictEffects[entity.EdictType(edict)]; !ok {
		return NewError(CodeInvalidParam, "未知的政令")
	}
	c.SelectEdict(entity.EdictType(edict))
	return nil
}

func (s *CampaignService) HoldFestival(c *entity.Campaign) bool {
	return c.HoldFestival()
}

func (s *CampaignService) AdjustResource(c *entity.Campaign, typ string, delta int) error {
	return mapEntityErr(c.IncrementResource(typ, delta))
}

func (s *CampaignService) StartProject(c *entity.Campaign, templateID string) (*entity.ProjectInstance, error) {
	p, err := c.StartProject(templateID)
	if err != nil {
		return nil, mapEntityErr(err)
	}
	return p, nil
}

func (s *CampaignService) AdvanceProject(c *entity.Campaign, id string) bool {
	return c.AdvanceProject(id)
}

func (s *CampaignService) RushProject(c *entity.Campaign, id string) *entity.RushOutcome {
	return c.RushProject(id)
}

func (s *CampaignService) RemoveProject(c *entity.Campaign, id string) bool {
	return c.RemoveProject(id)
}

func (s *CampaignService) StartRecruitment(c *entity.Campaign, optionID string) (*entity.RecruitmentInstance, error) {
	r, err := c.StartRecruitment(optionID)
	if err != nil {
		return nil, mapEntityErr(err)
	}
	return r, nil
}

func (s *CampaignService) AdvanceRecruitment(c *entity.Campaign, id string) bool {
	return c.AdvanceRecruitment(id)
}

func (s *CampaignService) RemoveRecruitment(c *entity.Campaign, id string) bool {
	return c.RemoveRecruitment(id)
}

func (s *CampaignService) AddMission(c *entity.Campaign, draft entity.MissionDraft) *entity.Mission {
	return c.AddMission(draft)
}

func (s *CampaignService) UpdateMission(c *entity.Campaign, id string, upd entity.MissionUpdate) error {
	if !c.UpdateMission(id, upd) {
		return ErrTargetNotFound.WithReason(ReasonTargetNotFound)
	}
	return nil
}

// ResolveMission 掷骰结算并顺手写一条任务流水。流水失败只告警。
func (s *CampaignService) ResolveMission(ctx context.Context, c *entity.Campaign, id string, modifier int) (*entity.MissionResolution, error) {
	out := c.ResolveMission(id, modifier)
	if out == nil {
		return nil, ErrTargetNotFound.WithReason(ReasonTargetNotFound)
	}
	if s.journal != nil {
		var name string
		for _, m := range c.Missions() {
			if m.ID == id {
				name = m.Name
				break
			}
		}
		if err := s.journal.AppendMissionLog(ctx, c.ID(), c.Turn(), id, name, out.Result, out.Roll, out.Total); err != nil && s.logger != nil {
			s.logger.Warn("mission journal append failed",
				zap.String("campaign_id", c.ID()), zap.String("mission_id", id), zap.Error(err))
		}
	}
	return out, nil
}

func (s *CampaignService) DeleteMission(c *entity.Campaign, id string) error {
	if !c.DeleteMission(id) {
		return ErrTargetNotFound.WithReason(ReasonTargetNotFound)
	}
	return nil
}

func (s *CampaignService) ToggleCaptainAssignment(c *entity.Campaign, missionID, captainID string) error {
	if !c.ToggleCaptainAssignment(missionID, captainID) {
		return ErrTargetNotFound.WithReason(ReasonTargetNotFound)
	}
	return nil
}

func (s *CampaignService) ToggleTroopAssignment(c *entity.Campaign, missionID, troopID string) error {
	if !c.ToggleTroopAssignment(missionID, troopID) {
		return ErrTargetNotFound.WithReason(ReasonTargetNotFound)
	}
	return nil
}

func (s *CampaignService) AddTroop(c *entity.Campaign, draft entity.TroopDraft) *entity.Troop {
	return c.AddTroop(draft)
}

func (s *CampaignService) RemoveTroop(c *entity.Campaign, id string) error {
	if !c.RemoveTroop(id) {
		return ErrTargetNotFound.WithReason(ReasonTargetNotFound)
	}
	return nil
}

// UpdateTroopStatus 的 false 可能是目标不存在，也可能是休整锁生效。
// 前者报错，后者按静默无效处理，由返回值区分。
func (s *CampaignService) UpdateTroopStatus(c *entity.Campaign, id, status string, deltaMissions int) (bool, error) {
	if !entity.IsTroopStatus(status) {
		return false, NewError(CodeInvalidParam, "未知的部队状态")
	}
	found := false
	for _, t := range c.Troops() {
		if t.ID == id {
			found = true
			break
		}
	}
	if !found {
		return false, ErrTargetNotFound.WithReason(ReasonTargetNotFound)
	}
	return c.UpdateTroopStatus(id, status, deltaMissions), nil
}

func (s *CampaignService) UpdateCaptainNotes(c *entity.Campaign, id, notes string) error {
	if !c.UpdateCaptainNotes(id, notes) {
		return ErrTargetNotFound.WithReason(ReasonTargetNotFound)
	}
	return nil
}

func (s *CampaignService) AddEvent(c *entity.Campaign, title, description string) *entity.EventEntry {
	return c.AddEvent(title, description)
}

func (s *CampaignService) ResolveEvent(c *entity.Campaign, id string, resolved bool) error {
	if !c.ResolveEvent(id, resolved) {
		return ErrTargetNotFound.WithReason(ReasonTargetNotFound)
	}
	return nil
}

func (s *CampaignService) DeleteEvent(c *entity.Campaign, id string) error {
	if !c.DeleteEvent(id) {
		return ErrTargetNotFound.WithReason(ReasonTargetNotFound)
	}
	return nil
}

func (s *CampaignService) AddNote(c *entity.Campaign, player, details string) *entity.NoteEntry {
	return c.AddNote(player, details)
}

func (s *CampaignService) UpdateNote(c *entity.Campaign, id, details string) error {
	if !c.UpdateNote(id, details) {
		return ErrTargetNotFound.WithReason(ReasonTargetNotFound)
	}
	return nil
}

func (s *CampaignService) DeleteNote(c *entity.Campaign, id string) error {
	if !c.DeleteNote(id) {
		return ErrTargetNotFound.WithReason(ReasonTargetNotFound)
	}
	return nil
}

func (s *CampaignService) SetPhase(c *entity.Campaign, phase string) error {
	return mapEntityErr(c.SetPhase(entity.PhaseKey(phase)))
}

func (s *CampaignService) NextPhase(c *entity.Campaign) string {
	return string(c.NextPhase())
}

// CompleteTurn 收尾回合并把摘要写进流水仓库。
func (s *CampaignService) CompleteTurn(ctx context.Context, c *entity.Campaign) (int, error) {
	c.CompleteTurn()
	history := c.TurnHistory()
	if s.journal != nil && len(history) > 0 {
		summary := history[len(history)-1]
		if err := s.journal.AppendTurnSummary(ctx, c.ID(), c.Turn()-1, summary); err != nil && s.logger != nil {
			s.logger.Warn("turn journal append failed",
				zap.String("campaign_id", c.ID()), zap.Error(err))
		}
	}
	return c.Turn(), nil
}

func (s *CampaignService) ResetCampaign(c *entity.Campaign) {
	c.Reset()
}

// TurnLog 从流水仓库取最近的回合摘要（倒序）。
func (s *CampaignService) TurnLog(ctx context.Context, c *entity.Campaign, limit int) ([]string, error) {
	if s.journal == nil {
		return nil, Wrap(errx.CodeUnavailable, "战役流水不可用", nil).WithReason(ReasonRepoUnavailable)
	}
	out, err := s.journal.TurnSummaries(ctx, c.ID(), limit)
	if err != nil {
		return nil, Wrap(errx.CodeUnavailable, "读取回合流水失败", err).WithReason(ReasonRepoUnavailable)
	}
	return out, nil
}

// Export 导出完整存档（含回合历史）。
func (s *CampaignService) Export(c *entity.Campaign) ([]byte, error) {
	return snapshot.Encode(c.State(true))
}

// Import 整份校验通过才装载，坏存档原状态不动。
func (s *CampaignService) Import(c *entity.Campaign, raw []byte) error {
	state, err := snapshot.Decode(raw)
	if err != nil {
		return err
	}
	c.RestoreState(state)
	return nil
}
