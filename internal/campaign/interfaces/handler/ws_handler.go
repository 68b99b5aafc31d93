package handler

import (
	"context"

	"Stronghold/internal/campaign/interfaces/handler/dto"
	"Stronghold/internal/campaign/matchup"
	"Stronghold/internal/shared/actor/messages"
	"Stronghold/internal/shared/reasoncode"
	"Stronghold/internal/shared/security"
	"Stronghold/internal/shared/transport"
	"Stronghold/internal/shared/transport/ws"
	"Stronghold/internal/shared/utils"

	"go.uber.org/zap"
)

type WsHandler struct {
	campaign *Campaign
}

func NewWsHandler(g *Campaign) *WsHandler {
	return &WsHandler{campaign: g}
}

func (h *WsHandler) RegisterRoutes(r *ws.Router) {
	campaignGroup := r.Group("campaign")
	campaignGroup.Handle("enter", h.Enter)
	campaignGroup.Handle("overview", h.Overview)
	campaignGroup.Handle("unlock", h.Unlock)
	campaignGroup.Handle("reset", h.Reset)

	resourceGroup := r.Group("resource")
	resourceGroup.Handle("income", h.SelectIncome)
	resourceGroup.Handle("edict", h.SelectEdict)
	resourceGroup.Handle("festival", h.HoldFestival)
	resourceGroup.Handle("adjust", h.AdjustResource)

	turnGroup := r.Group("turn")
	turnGroup.Handle("phase", h.SetPhase)
	turnGroup.Handle("next", h.NextPhase)
	turnGroup.Handle("complete", h.CompleteTurn)
	turnGroup.Handle("log", h.TurnLog)

	projectGroup := r.Group("project")
	projectGroup.Handle("start", h.StartProject)
	projectGroup.Handle("advance", h.AdvanceProject)
	projectGroup.Handle("rush", h.RushProject)
	projectGroup.Handle("remove", h.RemoveProject)

	recruitGroup := r.Group("recruit")
	recruitGroup.Handle("start", h.StartRecruitment)
	recruitGroup.Handle("advance", h.AdvanceRecruitment)
	recruitGroup.Handle("remove", h.RemoveRecruitment)

	missionGroup := r.Group("mission")
	missionGroup.Handle("add", h.AddMission)
	missionGroup.Handle("update", h.UpdateMission)
	missionGroup.Handle("resolve", h.ResolveMission)
	missionGroup.Handle("delete", h.DeleteMission)
	missionGroup.Handle("captain", h.ToggleCaptain)
	missionGroup.Handle("troop", h.ToggleTroop)

	troopGroup := r.Group("troop")
	troopGroup.Handle("add", h.AddTroop)
	troopGroup.Handle("remove", h.RemoveTroop)
	troopGroup.Handle("status", h.UpdateTroopStatus)
	troopGroup.Handle("matchup", h.Matchup)

	captainGroup := r.Group("captain")
	captainGroup.Handle("notes", h.UpdateCaptainNotes)

	eventGroup := r.Group("event")
	eventGroup.Handle("add", h.AddEvent)
	eventGroup.Handle("resolve", h.ResolveEvent)
	eventGroup.Handle("delete", h.DeleteEvent)

	noteGroup := r.Group("note")
	noteGroup.Handle("add", h.AddNote)
	noteGroup.Handle("update", h.UpdateNote)
	noteGroup.Handle("delete", h.DeleteNote)

	stateGroup := r.Group("state")
	stateGroup.Handle("export", h.Export)
	stateGroup.Handle("import", h.Import)
}

// ============ 进入与解锁 ============

func (h *WsHandler) Enter(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	if wsReq == nil || wsReq.Conn == nil || wsResp == nil || wsResp.Body == nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}

	var req dto.EnterReq
	if err := ws.BindJSON(wsReq, &req); err != nil || req.CampaignID == "" {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}

	// token 校验失败按只读进入，不拦住观战
	canEdit := false
	if req.Token != "" {
		if _, claims, err := security.ParseToken(req.Token); err == nil && claims.CampaignID == req.CampaignID {
			canEdit = true
		}
	}

	reply, err := h.campaign.Command(req.CampaignID, &messages.GetOverview{})
	if err != nil {
		h.campaign.Logger().Error("campaign enter failed",
			zap.String("campaign_id", req.CampaignID), zap.Error(err))
		h.fail(wsResp, transport.SystemError, sysBusyMsg)
		return
	}
	if code, msg := HandleReply(ctx, reply); code != transport.OK {
		h.fail(wsResp, code, msg)
		return
	}

	sessionID, err := utils.NextSnowflakeID()
	if err != nil {
		h.campaign.Logger().Error("generate session id failed", zap.Error(err))
		h.fail(wsResp, transport.SystemError, sysBusyMsg)
		return
	}

	wsReq.Conn.SetProperty(ws.ConnKeySession, sessionID)
	wsReq.Conn.SetProperty(ws.ConnKeyCampaignID, req.CampaignID)
	wsReq.Conn.SetProperty(ws.ConnKeyCanEdit, canEdit)
	h.campaign.Session().Bind(sessionID, req.CampaignID, wsReq.Conn)

	h.ok(wsResp, dto.EnterResp{
		SessionID:  sessionID,
		CampaignID: req.CampaignID,
		CanEdit:    canEdit,
		Overview:   reply.Data,
	})
}

func (h *WsHandler) Unlock(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	campaignID, ok := h.entered(wsReq, wsResp)
	if !ok {
		return
	}

	var req dto.UnlockReq
	if err := ws.BindJSON(wsReq, &req); err != nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}

	if !h.campaign.CheckEditSecret(req.Secret) {
		transport.SetErrorReason(ctx, reasoncode.CampaignEditLocked)
		h.fail(wsResp, transport.Unauthorized, "口令不正确")
		return
	}

	token, err := security.Award(campaignID)
	if err != nil {
		h.campaign.Logger().Error("award edit token failed",
			zap.String("campaign_id", campaignID), zap.Error(err))
		h.fail(wsResp, transport.SystemError, sysBusyMsg)
		return
	}

	wsReq.Conn.SetProperty(ws.ConnKeyCanEdit, true)
	h.ok(wsResp, dto.UnlockResp{Token: token, CanEdit: true})
}

func (h *WsHandler) Overview(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	campaignID, ok := h.entered(wsReq, wsResp)
	if !ok {
		return
	}
	h.dispatch(ctx, wsResp, campaignID, &messages.GetOverview{})
}

func (h *WsHandler) Reset(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	campaignID, ok := h.editable(ctx, wsReq, wsResp)
	if !ok {
		return
	}
	h.dispatch(ctx, wsResp, campaignID, &messages.ResetCampaign{})
}

// ============ 资源与回合 ============

func (h *WsHandler) SelectIncome(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	campaignID, ok := h.editable(ctx, wsReq, wsResp)
	if !ok {
		return
	}
	var req dto.SelectIncomeReq
	if err := ws.BindJSON(wsReq, &req); err != nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}
	h.dispatch(ctx, wsResp, campaignID, &messages.SelectIncome{Income: req.Income})
}

func (h *WsHandler) SelectEdict(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	campaignID, ok := h.editable(ctx, wsReq, wsResp)
	if !ok {
		return
	}
	var req dto.SelectEdictReq
	if err := ws.BindJSON(wsReq, &req); err != nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}
	h.dispatch(ctx, wsResp, campaignID, &messages.SelectEdict{Edict: req.Edict})
}

func (h *WsHandler) HoldFestival(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	campaignID, ok := h.editable(ctx, wsReq, wsResp)
	if !ok {
		return
	}
	h.dispatch(ctx, wsResp, campaignID, &messages.HoldFestival{})
}

func (h *WsHandler) AdjustResource(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	campaignID, ok := h.editable(ctx, wsReq, wsResp)
	if !ok {
		return
	}
	var req dto.AdjustResourceReq
	if err := ws.BindJSON(wsReq, &req); err != nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}
	h.dispatch(ctx, wsResp, campaignID, &messages.AdjustResource{Type: req.Type, Delta: req.Delta})
}

func (h *WsHandler) SetPhase(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	campaignID, ok := h.editable(ctx, wsReq, wsResp)
	if !ok {
		return
	}
	var req dto.SetPhaseReq
	if err := ws.BindJSON(wsReq, &req); err != nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}
	h.dispatch(ctx, wsResp, campaignID, &messages.SetPhase{Phase: req.Phase})
}

func (h *WsHandler) NextPhase(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	campaignID, ok := h.editable(ctx, wsReq, wsResp)
	if !ok {
		return
	}
	h.dispatch(ctx, wsResp, campaignID, &messages.NextPhase{})
}

func (h *WsHandler) CompleteTurn(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	campaignID, ok := h.editable(ctx, wsReq, wsResp)
	if !ok {
		return
	}
	h.dispatch(ctx, wsResp, campaignID, &messages.CompleteTurn{})
}

func (h *WsHandler) TurnLog(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	campaignID, ok := h.entered(wsReq, wsResp)
	if !ok {
		return
	}
	var req dto.TurnLogReq
	if err := ws.BindJSON(wsReq, &req); err != nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}
	h.dispatch(ctx, wsResp, campaignID, &messages.GetTurnLog{Limit: req.Limit})
}

// ============ 工程 ============

func (h *WsHandler) StartProject(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	campaignID, ok := h.editable(ctx, wsReq, wsResp)
	if !ok {
		return
	}
	var req dto.StartProjectReq
	if err := ws.BindJSON(wsReq, &req); err != nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}
	h.dispatch(ctx, wsResp, campaignID, &messages.StartProject{TemplateID: req.TemplateID})
}

func (h *WsHandler) AdvanceProject(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	campaignID, ok := h.editable(ctx, wsReq, wsResp)
	if !ok {
		return
	}
	var req dto.ProjectIDReq
	if err := ws.BindJSON(wsReq, &req); err != nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}
	h.dispatch(ctx, wsResp, campaignID, &messages.AdvanceProject{ProjectID: req.ProjectID})
}

func (h *WsHandler) RushProject(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	campaignID, ok := h.editable(ctx, wsReq, wsResp)
	if !ok {
		return
	}
	var req dto.ProjectIDReq
	if err := ws.BindJSON(wsReq, &req); err != nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}
	h.dispatch(ctx, wsResp, campaignID, &messages.RushProject{ProjectID: req.ProjectID})
}

func (h *WsHandler) RemoveProject(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	campaignID, ok := h.editable(ctx, wsReq, wsResp)
	if !ok {
		return
	}
	var req dto.ProjectIDReq
	if err := ws.BindJSON(wsReq, &req); err != nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}
	h.dispatch(ctx, wsResp, campaignID, &messages.RemoveProject{ProjectID: req.ProjectID})
}

// ============ 招募 ============

func (h *WsHandler) StartRecruitment(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	campaignID, ok := h.editable(ctx, wsReq, wsResp)
	if !ok {
		return
	}
	var req dto.StartRecruitmentReq
	if err := ws.BindJSON(wsReq, &req); err != nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}
	h.dispatch(ctx, wsResp, campaignID, &messages.StartRecruitment{OptionID: req.OptionID})
}

func (h *WsHandler) AdvanceRecruitment(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	campaignID, ok := h.editable(ctx, wsReq, wsResp)
	if !ok {
		return
	}
	var req dto.RecruitmentIDReq
	if err := ws.BindJSON(wsReq, &req); err != nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}
	h.dispatch(ctx, wsResp, campaignID, &messages.AdvanceRecruitment{RecruitmentID: req.RecruitmentID})
}

func (h *WsHandler) RemoveRecruitment(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	campaignID, ok := h.editable(ctx, wsReq, wsResp)
	if !ok {
		return
	}
	var req dto.RecruitmentIDReq
	if err := ws.BindJSON(wsReq, &req); err != nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}
	h.dispatch(ctx, wsResp, campaignID, &messages.RemoveRecruitment{RecruitmentID: req.RecruitmentID})
}

// ============ 任务 ============

func (h *WsHandler) AddMission(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	campaignID, ok := h.editable(ctx, wsReq, wsResp)
	if !ok {
		return
	}
	var req dto.AddMissionReq
	if err := ws.BindJSON(wsReq, &req); err != nil || req.Name == "" {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}
	h.dispatch(ctx, wsResp, campaignID, &messages.AddMission{
		Name:        req.Name,
		Category:    req.Category,
		Scale:       req.Scale,
		Description: req.Description,
		Modifier:    req.Modifier,
	})
}

func (h *WsHandler) UpdateMission(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	campaignID, ok := h.editable(ctx, wsReq, wsResp)
	if !ok {
		return
	}
	var req dto.UpdateMissionReq
	if err := ws.BindJSON(wsReq, &req); err != nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}
	h.dispatch(ctx, wsResp, campaignID, &messages.UpdateMission{
		MissionID:    req.MissionID,
		Name:         req.Name,
		Category:     req.Category,
		Scale:        req.Scale,
		Description:  req.Description,
		Modifier:     req.Modifier,
		Result:       req.Result,
		Consequences: req.Consequences,
	})
}

func (h *WsHandler) ResolveMission(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	campaignID, ok := h.editable(ctx, wsReq, wsResp)
	if !ok {
		return
	}
	var req dto.ResolveMissionReq
	if err := ws.BindJSON(wsReq, &req); err != nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}
	h.dispatch(ctx, wsResp, campaignID, &messages.ResolveMission{MissionID: req.MissionID, Modifier: req.Modifier})
}

func (h *WsHandler) DeleteMission(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	campaignID, ok := h.editable(ctx, wsReq, wsResp)
	if !ok {
		return
	}
	var req dto.MissionIDReq
	if err := ws.BindJSON(wsReq, &req); err != nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}
	h.dispatch(ctx, wsResp, campaignID, &messages.DeleteMission{MissionID: req.MissionID})
}

func (h *WsHandler) ToggleCaptain(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	campaignID, ok := h.editable(ctx, wsReq, wsResp)
	if !ok {
		return
	}
	var req dto.ToggleCaptainReq
	if err := ws.BindJSON(wsReq, &req); err != nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}
	h.dispatch(ctx, wsResp, campaignID, &messages.ToggleCaptain{MissionID: req.MissionID, CaptainID: req.CaptainID})
}

func (h *WsHandler) ToggleTroop(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	campaignID, ok := h.editable(ctx, wsReq, wsResp)
	if !ok {
		return
	}
	var req dto.ToggleTroopReq
	if err := ws.BindJSON(wsReq, &req); err != nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}
	h.dispatch(ctx, wsResp, campaignID, &messages.ToggleTroop{MissionID: req.MissionID, TroopID: req.TroopID})
}

// ============ 部队与队长 ============

func (h *WsHandler) AddTroop(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	campaignID, ok := h.editable(ctx, wsReq, wsResp)
	if !ok {
		return
	}
	var req dto.AddTroopReq
	if err := ws.BindJSON(wsReq, &req); err != nil || req.Name == "" {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}
	h.dispatch(ctx, wsResp, campaignID, &messages.AddTroop{
		Name:       req.Name,
		Tier:       req.Tier,
		Type:       req.Type,
		Advantages: req.Advantages,
	})
}

func (h *WsHandler) RemoveTroop(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	campaignID, ok := h.editable(ctx, wsReq, wsResp)
	if !ok {
		return
	}
	var req dto.TroopIDReq
	if err := ws.BindJSON(wsReq, &req); err != nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}
	h.dispatch(ctx, wsResp, campaignID, &messages.RemoveTroop{TroopID: req.TroopID})
}

func (h *WsHandler) UpdateTroopStatus(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	campaignID, ok := h.editable(ctx, wsReq, wsResp)
	if !ok {
		return
	}
	var req dto.UpdateTroopStatusReq
	if err := ws.BindJSON(wsReq, &req); err != nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}
	h.dispatch(ctx, wsResp, campaignID, &messages.UpdateTroopStatus{
		TroopID:       req.TroopID,
		Status:        req.Status,
		DeltaMissions: req.DeltaMissions,
	})
}

// Matchup 兵种克制查询是纯静态数据，不进 actor，直接应答。
func (h *WsHandler) Matchup(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	if _, ok := h.entered(wsReq, wsResp); !ok {
		return
	}
	var req dto.MatchupReq
	if err := ws.BindJSON(wsReq, &req); err != nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}

	if req.TroopType == "" {
		h.ok(wsResp, dto.MatchupResp{Matrix: matchup.Matrix()})
		return
	}

	summary, ok := matchup.Summarize(req.TroopType)
	if !ok {
		h.fail(wsResp, transport.NotFound, "未收录的兵种")
		return
	}
	row := matchup.Matrix()[req.TroopType]
	modifiers := make(map[string]int, len(row))
	for defender, mod := range row {
		modifiers[defender] = mod
	}
	h.ok(wsResp, dto.MatchupResp{TroopType: req.TroopType, Modifiers: modifiers, Summary: summary})
}

func (h *WsHandler) UpdateCaptainNotes(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	campaignID, ok := h.editable(ctx, wsReq, wsResp)
	if !ok {
		return
	}
	var req dto.UpdateCaptainNotesReq
	if err := ws.BindJSON(wsReq, &req); err != nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}
	h.dispatch(ctx, wsResp, campaignID, &messages.UpdateCaptainNotes{CaptainID: req.CaptainID, Notes: req.Notes})
}

// ============ 事件与备注 ============

func (h *WsHandler) AddEvent(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	campaignID, ok := h.editable(ctx, wsReq, wsResp)
	if !ok {
		return
	}
	var req dto.AddEventReq
	if err := ws.BindJSON(wsReq, &req); err != nil || req.Title == "" {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}
	h.dispatch(ctx, wsResp, campaignID, &messages.AddEvent{Title: req.Title, Description: req.Description})
}

func (h *WsHandler) ResolveEvent(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	campaignID, ok := h.editable(ctx, wsReq, wsResp)
	if !ok {
		return
	}
	var req dto.ResolveEventReq
	if err := ws.BindJSON(wsReq, &req); err != nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}
	h.dispatch(ctx, wsResp, campaignID, &messages.ResolveEvent{EventID: req.EventID, Resolved: req.Resolved})
}

func (h *WsHandler) DeleteEvent(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	campaignID, ok := h.editable(ctx, wsReq, wsResp)
	if !ok {
		return
	}
	var req dto.EventIDReq
	if err := ws.BindJSON(wsReq, &req); err != nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}
	h.dispatch(ctx, wsResp, campaignID, &messages.DeleteEvent{EventID: req.EventID})
}

func (h *WsHandler) AddNote(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	campaignID, ok := h.editable(ctx, wsReq, wsResp)
	if !ok {
		return
	}
	var req dto.AddNoteReq
	if err := ws.BindJSON(wsReq, &req); err != nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}
	h.dispatch(ctx, wsResp, campaignID, &messages.AddNote{Player: req.Player, Details: req.Details})
}

func (h *WsHandler) UpdateNote(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	campaignID, ok := h.editable(ctx, wsReq, wsResp)
	if !ok {
		return
	}
	var req dto.UpdateNoteReq
	if err := ws.BindJSON(wsReq, &req); err != nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}
	h.dispatch(ctx, wsResp, campaignID, &messages.UpdateNote{NoteID: req.NoteID, Details: req.Details})
}

func (h *WsHandler) DeleteNote(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	campaignID, ok := h.editable(ctx, wsReq, wsResp)
	if !ok {
		return
	}
	var req dto.NoteIDReq
	if err := ws.BindJSON(wsReq, &req); err != nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}
	h.dispatch(ctx, wsResp, campaignID, &messages.DeleteNote{NoteID: req.NoteID})
}

// ============ 状态导入导出 ============

func (h *WsHandler) Export(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	campaignID, ok := h.entered(wsReq, wsResp)
	if !ok {
		return
	}
	h.dispatch(ctx, wsResp, campaignID, &messages.ExportState{})
}

func (h *WsHandler) Import(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) {
	campaignID, ok := h.editable(ctx, wsReq, wsResp)
	if !ok {
		return
	}
	var req dto.ImportStateReq
	if err := ws.BindJSON(wsReq, &req); err != nil || req.Data == "" {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return
	}
	h.dispatch(ctx, wsResp, campaignID, &messages.ImportState{Raw: []byte(req.Data)})
}

// ============ 公共逻辑 ============

// entered 要求连接已进入某个战役，返回绑定的战役 id。
func (h *WsHandler) entered(wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) (string, bool) {
	if wsReq == nil || wsReq.Conn == nil || wsResp == nil || wsResp.Body == nil {
		h.fail(wsResp, transport.InvalidParam, "参数有误")
		return "", false
	}
	campaignID, _ := wsReq.Conn.GetProperty(ws.ConnKeyCampaignID).(string)
	if campaignID == "" {
		h.fail(wsResp, transport.InvalidParam, "请先进入战役")
		return "", false
	}
	return campaignID, true
}

// editable 在 entered 的基础上额外要求编辑权限。
func (h *WsHandler) editable(ctx context.Context, wsReq *ws.WsMsgReq, wsResp *ws.WsMsgResp) (string, bool) {
	campaignID, ok := h.entered(wsReq, wsResp)
	if !ok {
		return "", false
	}
	canEdit, _ := wsReq.Conn.GetProperty(ws.ConnKeyCanEdit).(bool)
	if !canEdit {
		transport.SetErrorReason(ctx, reasoncode.CampaignEditLocked)
		h.fail(wsResp, transport.Unauthorized, "战役处于只读模式，请先解锁编辑")
		return "", false
	}
	return campaignID, true
}

func (h *WsHandler) dispatch(ctx context.Context, wsResp *ws.WsMsgResp, campaignID string, body any) {
	reply, err := h.campaign.Command(campaignID, body)
	if err != nil {
		h.campaign.Logger().Error("campaign command failed",
			zap.String("campaign_id", campaignID), zap.Error(err))
		h.fail(wsResp, transport.SystemError, sysBusyMsg)
		return
	}
	code, msg := HandleReply(ctx, reply)
	if code != transport.OK {
		h.fail(wsResp, code, msg)
		return
	}
	h.ok(wsResp, reply.Data)
}

// ============ 应答辅助 ============

func (h *WsHandler) ok(resp *ws.WsMsgResp, data any) {
	if resp == nil || resp.Body == nil {
		return
	}
	resp.Body.Code = transport.OK
	resp.Body.Msg = data
}

func (h *WsHandler) fail(resp *ws.WsMsgResp, code int, msg string) {
	if resp == nil || resp.Body == nil {
		return
	}
	resp.Body.Code = code
	if msg != "" {
		resp.Body.Msg = msg
	}
}
