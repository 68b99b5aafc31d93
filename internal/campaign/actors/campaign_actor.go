package actors

import (
	"context"
	"time"

	"Stronghold/internal/campaign/app"
	"Stronghold/internal/campaign/app/port"
	"Stronghold/internal/campaign/dc"
	"Stronghold/internal/campaign/entity"
	"Stronghold/internal/shared/actor/messages"

	"github.com/asynkron/protoactor-go/actor"
)

type State int

const (
	None State = iota
	Init
	Online
	Offline
	Stopping
)

// ChangeNotifier 在状态变更后回调接入层（广播给同战役的其他连接）。
// 在 actor 串行上下文内调用，回调里不要再打回 actor。
type ChangeNotifier func(campaignID string, overview *app.Overview)

type CampaignActor struct {
	state      State
	campaignID string
	dc         *dc.CampaignDC
	entity     *entity.Campaign
	service    *app.CampaignService
	notifier   ChangeNotifier
	dispatcher *Dispatcher
	flushStop  chan struct{}
}

type flushTick struct{}

func (flushTick) NotInfluenceReceiveTimeout() {}

func NewCampaignActor(campaignID string, repo port.CampaignRepository, service *app.CampaignService, notifier ChangeNotifier) *CampaignActor {
	return &CampaignActor{
		state:      None,
		campaignID: campaignID,
		dc:         dc.NewCampaignDC(repo),
		service:    service,
		notifier:   notifier,
		dispatcher: NewDispatcher(),
	}
}

func (a *CampaignActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Started:
		a.state = Init
		a.init(ctx)
		return
	case *actor.Stopping:
		a.stopFlushLoop()
		closeCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := a.dc.Close(closeCtx); err != nil {
			ctx.Logger().Error("campaign dc close failed", "campaign_id", a.campaignID, "err", err)
		}
		a.state = Stopping
		return
	case *actor.Stopped:
		a.stopFlushLoop()
		a.state = Offline
		return
	case *actor.Restarting:
		a.stopFlushLoop()
		a.state = Init
		return
	case flushTick:
		if a.state != Online {
			return
		}
		a.dc.Flush(context.TODO())
		return
	case *messages.CampaignMessage:
		if msg == nil {
			ctx.Respond(fail("nil request"))
			return
		}
		if a.state != Online {
			ctx.Respond(fail("campaign not loaded"))
			return
		}
		a.dispatcher.Dispatch(ctx, a, msg)
	default:
		return
	}
}

func (a *CampaignActor) init(ctx actor.Context) {
	c, err := a.dc.Load(context.TODO(), a.campaignID)
	if err != nil {
		a.state = Stopping
		ctx.Stop(ctx.Self())
		return
	}
	a.state = Online
	a.entity = c
	a.startFlushLoop(ctx)
}

func (a *CampaignActor) CampaignID() string {
	return a.campaignID
}

func (a *CampaignActor) Entity() *entity.Campaign {
	return a.entity
}

func (a *CampaignActor) DC() *dc.CampaignDC {
	return a.dc
}

func (a *CampaignActor) Service() *app.CampaignService {
	return a.service
}

// publishChange 状态变了就把最新总览推给接入层。
func (a *CampaignActor) publishChange() {
	if a.notifier == nil || a.entity == nil {
		return
	}
	a.notifier(a.campaignID, a.service.Overview(a.entity))
}

func (a *CampaignActor) startFlushLoop(ctx actor.Context) {
	if a.flushStop != nil {
		return
	}
	interval := a.dc.FlushEvery()
	if interval <= 0 {
		return
	}
	a.flushStop = make(chan struct{})
	self := ctx.Self()
	root := ctx.ActorSystem().Root

	go func(stop <-chan struct{}, every time.Duration) {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				root.Send(self, flushTick{})
			case <-stop:
				return
			}
		}
	}(a.flushStop, interval)
}

func (a *CampaignActor) stopFlushLoop() {
	if a.flushStop == nil {
		return
	}
	close(a.flushStop)
	a.flushStop = nil
}
