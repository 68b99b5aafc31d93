package actors

import (
	"reflect"
	"testing"

	"Stronghold/internal/shared/actor/messages"
)

func TestNewDispatcher_全量命令可路由(t *testing.T) {
	d := NewDispatcher()

	cmds := []any{
		&messages.SelectIncome{},
		&messages.SelectEdict{},
		&messages.HoldFestival{},
		&messages.AdjustResource{},
		&messages.SetPhase{},
		&messages.NextPhase{},
		&messages.CompleteTurn{},
		&messages.ResetCampaign{},
		&messages.StartProject{},
		&messages.AdvanceProject{},
		&messages.RushProject{},
		&messages.RemoveProject{},
		&messages.StartRecruitment{},
		&messages.AdvanceRecruitment{},
		&messages.RemoveRecruitment{},
		&messages.AddMission{},
		&messages.UpdateMission{},
		&messages.ResolveMission{},
		&messages.DeleteMission{},
		&messages.ToggleCaptain{},
		&messages.ToggleTroop{},
		&messages.AddTroop{},
		&messages.RemoveTroop{},
		&messages.UpdateTroopStatus{},
		&messages.UpdateCaptainNotes{},
		&messages.AddEvent{},
		&messages.ResolveEvent{},
		&messages.DeleteEvent{},
		&messages.AddNote{},
		&messages.UpdateNote{},
		&messages.DeleteNote{},
		&messages.GetOverview{},
		&messages.GetTurnLog{},
		&messages.ExportState{},
		&messages.ImportState{},
	}

	for _, cmd := range cmds {
		if _, ok := d.handlers[reflect.TypeOf(cmd)]; !ok {
			t.Fatalf("命令 %T 没有注册处理器", cmd)
		}
	}
	if len(d.handlers) != len(cmds) {
		t.Fatalf("注册的处理器数量=%d，与命令数量=%d 不一致", len(d.handlers), len(cmds))
	}
}
