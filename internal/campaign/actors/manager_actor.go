package actors

import (
	"Stronghold/internal/campaign/app"
	"Stronghold/internal/campaign/app/port"
	"Stronghold/internal/shared/actor/messages"

	"github.com/asynkron/protoactor-go/actor"
)

// ManagerActor 按战役 id 路由命令，目标 actor 不存在就拉起来。
type ManagerActor struct {
	repo           port.CampaignRepository
	service        *app.CampaignService
	notifier       ChangeNotifier
	campaignActors map[string]*actor.PID // campaign_id -> actor.pid
}

func NewManagerActor(repo port.CampaignRepository, service *app.CampaignService, notifier ChangeNotifier) *ManagerActor {
	return &ManagerActor{
		repo:           repo,
		service:        service,
		notifier:       notifier,
		campaignActors: make(map[string]*actor.PID),
	}
}

func (m *ManagerActor) Receive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Terminated:
		m.evict(msg.Who)
	case *messages.CampaignMessage:
		if msg == nil || msg.CampaignID == "" {
			ctx.Respond(fail("invalid campaign_id"))
			return
		}
		ctx.Forward(m.getOrSpawn(ctx, msg.CampaignID))
	}
}

func (m *ManagerActor) getOrSpawn(ctx actor.Context, campaignID string) *actor.PID {
	if pid, ok := m.campaignActors[campaignID]; ok && pid != nil {
		return pid
	}

	props := actor.PropsFromProducer(func() actor.Actor {
		return NewCampaignActor(campaignID, m.repo, m.service, m.notifier)
	})
	// ManagerActor 创建 子 actor，盯着它的生死：
	// 加载失败自杀的子 actor 要从表里摘掉，否则命令会一直投给死信
	pid := ctx.Spawn(props)
	ctx.Watch(pid)
	m.campaignActors[campaignID] = pid
	return pid
}

func (m *ManagerActor) evict(dead *actor.PID) {
	if dead == nil {
		return
	}
	for id, pid := range m.campaignActors {
		if pid != nil && pid.Equal(dead) {
			delete(m.campaignActors, id)
			return
		}
	}
}
