package actors

import (
	"context"
	"encoding/json"

	"Stronghold/internal/campaign/entity"
	"Stronghold/internal/shared/actor/messages"

	"github.com/asynkron/protoactor-go/actor"
)

type CampaignHandler struct {
}

// 全局实例
var CH = &CampaignHandler{}

func (h *CampaignHandler) HandleSelectIncome(ctx actor.Context, a *CampaignActor, req *messages.SelectIncome) {
	if err := a.Service().SelectIncome(a.Entity(), req.Income); err != nil {
		ctx.Respond(failErr(err))
		return
	}
	a.publishChange()
	ctx.Respond(ok(nil))
}

func (h *CampaignHandler) HandleSelectEdict(ctx actor.Context, a *CampaignActor, req *messages.SelectEdict) {
	if err := a.Service().SelectEdict(a.Entity(), req.Edict); err != nil {
		ctx.Respond(failErr(err))
		return
	}
	a.publishChange()
	ctx.Respond(ok(nil))
}

func (h *CampaignHandler) HandleHoldFestival(ctx actor.Context, a *CampaignActor, req *messages.HoldFestival) {
	held := a.Service().HoldFestival(a.Entity())
	if held {
		a.publishChange()
	}
	ctx.Respond(ok(map[string]any{"held": held}))
}

func (h *CampaignHandler) HandleAdjustResource(ctx actor.Context, a *CampaignActor, req *messages.AdjustResource) {
	if err := a.Service().AdjustResource(a.Entity(), req.Type, req.Delta); err != nil {
		ctx.Respond(failErr(err))
		return
	}
	a.publishChange()
	ctx.Respond(ok(map[string]any{"value": a.Entity().Resource(req.Type)}))
}

func (h *CampaignHandler) HandleSetPhase(ctx actor.Context, a *CampaignActor, req *messages.SetPhase) {
	if err := a.Service().SetPhase(a.Entity(), req.Phase); err != nil {
		ctx.Respond(failErr(err))
		return
	}
	a.publishChange()
	ctx.Respond(ok(map[string]any{"phase": string(a.Entity().Phase())}))
}

func (h *CampaignHandler) HandleNextPhase(ctx actor.Context, a *CampaignActor, req *messages.NextPhase) {
	phase := a.Service().NextPhase(a.Entity())
	a.publishChange()
	ctx.Respond(ok(map[string]any{"phase": phase}))
}

func (h *CampaignHandler) HandleCompleteTurn(ctx actor.Context, a *CampaignActor, req *messages.CompleteTurn) {
	turn, err := a.Service().CompleteTurn(context.TODO(), a.Entity())
	if err != nil {
		ctx.Respond(failErr(err))
		return
	}
	a.publishChange()
	ctx.Respond(ok(map[string]any{"turn": turn}))
}

func (h *CampaignHandler) HandleResetCampaign(ctx actor.Context, a *CampaignActor, req *messages.ResetCampaign) {
	a.Service().ResetCampaign(a.Entity())
	a.publishChange()
	ctx.Respond(ok(nil))
}

func (h *CampaignHandler) HandleStartProject(ctx actor.Context, a *CampaignActor, req *messages.StartProject) {
	p, err := a.Service().StartProject(a.Entity(), req.TemplateID)
	if err != nil {
		ctx.Respond(failErr(err))
		return
	}
	a.publishChange()
	ctx.Respond(ok(p))
}

func (h *CampaignHandler) HandleAdvanceProject(ctx actor.Context, a *CampaignActor, req *messages.AdvanceProject) {
	advanced := a.Service().AdvanceProject(a.Entity(), req.ProjectID)
	if advanced {
		a.publishChange()
	}
	ctx.Respond(ok(map[string]any{"advanced": advanced}))
}

func (h *CampaignHandler) HandleRushProject(ctx actor.Context, a *CampaignActor, req *messages.RushProject) {
	out := a.Service().RushProject(a.Entity(), req.ProjectID)
	if out == nil {
		// 守卫拦下：不是错误，但也没有掷骰
		ctx.Respond(ok(map[string]any{"rushed": false}))
		return
	}
	a.publishChange()
	ctx.Respond(ok(map[string]any{"rushed": true, "roll": out.Roll, "success": out.Success}))
}

func (h *CampaignHandler) HandleRemoveProject(ctx actor.Context, a *CampaignActor, req *messages.RemoveProject) {
	removed := a.Service().RemoveProject(a.Entity(), req.ProjectID)
	if removed {
		a.publishChange()
	}
	ctx.Respond(ok(map[string]any{"removed": removed}))
}

func (h *CampaignHandler) HandleStartRecruitment(ctx actor.Context, a *CampaignActor, req *messages.StartRecruitment) {
	r, err := a.Service().StartRecruitment(a.Entity(), req.OptionID)
	if err != nil {
		ctx.Respond(failErr(err))
		return
	}
	a.publishChange()
	ctx.Respond(ok(r))
}

func (h *CampaignHandler) HandleAdvanceRecruitment(ctx actor.Context, a *CampaignActor, req *messages.AdvanceRecruitment) {
	advanced := a.Service().AdvanceRecruitment(a.Entity(), req.RecruitmentID)
	if advanced {
		a.publishChange()
	}
	ctx.Respond(ok(map[string]any{"advanced": advanced}))
}

func (h *CampaignHandler) HandleRemoveRecruitment(ctx actor.Context, a *CampaignActor, req *messages.RemoveRecruitment) {
	removed := a.Service().RemoveRecruitment(a.Entity(), req.RecruitmentID)
	if removed {
		a.publishChange()
	}
	ctx.Respond(ok(map[string]any{"removed": removed}))
}

func (h *CampaignHandler) HandleAddMission(ctx actor.Context, a *CampaignActor, req *messages.AddMission) {
	m := a.Service().AddMission(a.Entity(), entity.MissionDraft{
		Name:        req.Name,
		Category:    req.Category,
		Scale:       req.Scale,
		Description: req.Description,
		Modifier:    req.Modifier,
	})
	a.publishChange()
	ctx.Respond(ok(m))
}

func (h *CampaignHandler) HandleUpdateMission(ctx actor.Context, a *CampaignActor, req *messages.UpdateMission) {
	err := a.Service().UpdateMission(a.Entity(), req.MissionID, entity.MissionUpdate{
		Name:         req.Name,
		Category:     req.Category,
		Scale:        req.Scale,
		Description:  req.Description,
		Modifier:     req.Modifier,
		Result:       req.Result,
		Consequences: req.Consequences,
	})
	if err != nil {
		ctx.Respond(failErr(err))
		return
	}
	a.publishChange()
	ctx.Respond(ok(nil))
}

func (h *CampaignHandler) HandleResolveMission(ctx actor.Context, a *CampaignActor, req *messages.ResolveMission) {
	out, err := a.Service().ResolveMission(context.TODO(), a.Entity(), req.MissionID, req.Modifier)
	if err != nil {
		ctx.Respond(failErr(err))
		return
	}
	a.publishChange()
	ctx.Respond(ok(out))
}

func (h *CampaignHandler) HandleDeleteMission(ctx actor.Context, a *CampaignActor, req *messages.DeleteMission) {
	if err := a.Service().DeleteMission(a.Entity(), req.MissionID); err != nil {
		ctx.Respond(failErr(err))
		return
	}
	a.publishChange()
	ctx.Respond(ok(nil))
}

func (h *CampaignHandler) HandleToggleCaptain(ctx actor.Context, a *CampaignActor, req *messages.ToggleCaptain) {
	if err := a.Service().ToggleCaptainAssignment(a.Entity(), req.MissionID, req.CaptainID); err != nil {
		ctx.Respond(failErr(err))
		return
	}
	a.publishChange()
	ctx.Respond(ok(nil))
}

func (h *CampaignHandler) HandleToggleTroop(ctx actor.Context, a *CampaignActor, req *messages.ToggleTroop) {
	if err := a.Service().ToggleTroopAssignment(a.Entity(), req.MissionID, req.TroopID); err != nil {
		ctx.Respond(failErr(err))
		return
	}
	a.publishChange()
	ctx.Respond(ok(nil))
}

func (h *CampaignHandler) HandleAddTroop(ctx actor.Context, a *CampaignActor, req *messages.AddTroop) {
	t := a.Service().AddTroop(a.Entity(), entity.TroopDraft{
		Name:       req.Name,
		Tier:       req.Tier,
		Type:       req.Type,
		Advantages: req.Advantages,
	})
	a.publishChange()
	ctx.Respond(ok(t))
}

func (h *CampaignHandler) HandleRemoveTroop(ctx actor.Context, a *CampaignActor, req *messages.RemoveTroop) {
	if err := a.Service().RemoveTroop(a.Entity(), req.TroopID); err != nil {
		ctx.Respond(failErr(err))
		return
	}
	a.publishChange()
	ctx.Respond(ok(nil))
}

func (h *CampaignHandler) HandleUpdateTroopStatus(ctx actor.Context, a *CampaignActor, req *messages.UpdateTroopStatus) {
	applied, err := a.Service().UpdateTroopStatus(a.Entity(), req.TroopID, req.Status, req.DeltaMissions)
	if err != nil {
		ctx.Respond(failErr(err))
		return
	}
	if applied {
		a.publishChange()
	}
	ctx.Respond(ok(map[string]any{"applied": applied}))
}

func (h *CampaignHandler) HandleUpdateCaptainNotes(ctx actor.Context, a *CampaignActor, req *messages.UpdateCaptainNotes) {
	if err := a.Service().UpdateCaptainNotes(a.Entity(), req.CaptainID, req.Notes); err != nil {
		ctx.Respond(failErr(err))
		return
	}
	a.publishChange()
	ctx.Respond(ok(nil))
}

func (h *CampaignHandler) HandleAddEvent(ctx actor.Context, a *CampaignActor, req *messages.AddEvent) {
	e := a.Service().AddEvent(a.Entity(), req.Title, req.Description)
	a.publishChange()
	ctx.Respond(ok(e))
}

func (h *CampaignHandler) HandleResolveEvent(ctx actor.Context, a *CampaignActor, req *messages.ResolveEvent) {
	if err := a.Service().ResolveEvent(a.Entity(), req.EventID, req.Resolved); err != nil {
		ctx.Respond(failErr(err))
		return
	}
	a.publishChange()
	ctx.Respond(ok(nil))
}

func (h *CampaignHandler) HandleDeleteEvent(ctx actor.Context, a *CampaignActor, req *messages.DeleteEvent) {
	if err := a.Service().DeleteEvent(a.Entity(), req.EventID); err != nil {
		ctx.Respond(failErr(err))
		return
	}
	a.publishChange()
	ctx.Respond(ok(nil))
}

func (h *CampaignHandler) HandleAddNote(ctx actor.Context, a *CampaignActor, req *messages.AddNote) {
	n := a.Service().AddNote(a.Entity(), req.Player, req.Details)
	a.publishChange()
	ctx.Respond(ok(n))
}

func (h *CampaignHandler) HandleUpdateNote(ctx actor.Context, a *CampaignActor, req *messages.UpdateNote) {
	if err := a.Service().UpdateNote(a.Entity(), req.NoteID, req.Details); err != nil {
		ctx.Respond(failErr(err))
		return
	}
	a.publishChange()
	ctx.Respond(ok(nil))
}

func (h *CampaignHandler) HandleDeleteNote(ctx actor.Context, a *CampaignActor, req *messages.DeleteNote) {
	if err := a.Service().DeleteNote(a.Entity(), req.NoteID); err != nil {
		ctx.Respond(failErr(err))
		return
	}
	a.publishChange()
	ctx.Respond(ok(nil))
}

func (h *CampaignHandler) HandleGetOverview(ctx actor.Context, a *CampaignActor, req *messages.GetOverview) {
	ctx.Respond(ok(a.Service().Overview(a.Entity())))
}

func (h *CampaignHandler) HandleGetTurnLog(ctx actor.Context, a *CampaignActor, req *messages.GetTurnLog) {
	summaries, err := a.Service().TurnLog(context.TODO(), a.Entity(), req.Limit)
	if err != nil {
		ctx.Respond(failErr(err))
		return
	}
	ctx.Respond(ok(map[string]any{"summaries": summaries}))
}

func (h *CampaignHandler) HandleExportState(ctx actor.Context, a *CampaignActor, req *messages.ExportState) {
	raw, err := a.Service().Export(a.Entity())
	if err != nil {
		ctx.Respond(failErr(err))
		return
	}
	ctx.Respond(ok(json.RawMessage(raw)))
}

func (h *CampaignHandler) HandleImportState(ctx actor.Context, a *CampaignActor, req *messages.ImportState) {
	if err := a.Service().Import(a.Entity(), req.Raw); err != nil {
		ctx.Respond(failErr(err))
		return
	}
	// 导入是关键节点，同步落一版再应答
	if err := a.DC().FlushSync(context.TODO()); err != nil {
		ctx.Logger().Error("flush after import failed", "campaign_id", a.CampaignID(), "err", err)
	}
	a.publishChange()
	ctx.Respond(ok(a.Service().Overview(a.Entity())))
}
