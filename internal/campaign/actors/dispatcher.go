package actors

import (
	"reflect"

	"Stronghold/internal/shared/actor/messages"

	"github.com/asynkron/protoactor-go/actor"
)

type Dispatcher struct {
	handlers map[reflect.Type]Handler
}

type Handler struct {
	fn      reflect.Value // handler 函数
	reqType reflect.Type  // 请求类型
}

func NewDispatcher() *Dispatcher {
	d := &Dispatcher{
		handlers: make(map[reflect.Type]Handler),
	}
	d.registerAll()
	return d
}

func (d *Dispatcher) registerAll() {
	register(d, CH.HandleSelectIncome)
	register(d, CH.HandleSelectEdict)
	register(d, CH.HandleHoldFestival)
	register(d, CH.HandleAdjustResource)
	register(d, CH.HandleSetPhase)
	register(d, CH.HandleNextPhase)
	register(d, CH.HandleCompleteTurn)
	register(d, CH.HandleResetCampaign)
	register(d, CH.HandleStartProject)
	register(d, CH.HandleAdvanceProject)
	register(d, CH.HandleRushProject)
	register(d, CH.HandleRemoveProject)
	register(d, CH.HandleStartRecruitment)
	register(d, CH.HandleAdvanceRecruitment)
	register(d, CH.HandleRemoveRecruitment)
	register(d, CH.HandleAddMission)
	register(d, CH.HandleUpdateMission)
	register(d, CH.HandleResolveMission)
	register(d, CH.HandleDeleteMission)
	register(d, CH.HandleToggleCaptain)
	register(d, CH.HandleToggleTroop)
	register(d, CH.HandleAddTroop)
	register(d, CH.HandleRemoveTroop)
	register(d, CH.HandleUpdateTroopStatus)
	register(d, CH.HandleUpdateCaptainNotes)
	register(d, CH.HandleAddEvent)
	register(d, CH.HandleResolveEvent)
	register(d, CH.HandleDeleteEvent)
	register(d, CH.HandleAddNote)
	register(d, CH.HandleUpdateNote)
	register(d, CH.HandleDeleteNote)
	register(d, CH.HandleGetOverview)
	register(d, CH.HandleGetTurnLog)
	register(d, CH.HandleExportState)
	register(d, CH.HandleImportState)
}

// register 注册统一分发函数，要求 Req 是命令结构体指针。
func register[Req any](
	d *Dispatcher,
	fn func(ctx actor.Context, a *CampaignActor, req Req),
) {
	reqType := reflect.TypeOf((*Req)(nil)).Elem()
	if reqType.Kind() != reflect.Ptr {
		panic("dispatcher req type must be pointer command")
	}

	d.handlers[reqType] = Handler{
		fn:      reflect.ValueOf(fn),
		reqType: reqType,
	}
}

func (d *Dispatcher) Dispatch(ctx actor.Context, a *CampaignActor, req *messages.CampaignMessage) {
	if req == nil || req.Body == nil {
		ctx.Respond(fail("empty request body"))
		return
	}

	handler, ok := d.handlers[reflect.TypeOf(req.Body)]
	if !ok {
		ctx.Respond(fail("no handler for request body"))
		return
	}

	handler.fn.Call([]reflect.Value{
		reflect.ValueOf(ctx),
		reflect.ValueOf(a),
		reflect.ValueOf(req.Body),
	})
}
