package interfaces

import (
	"Stronghold/internal/campaign/actors"
	"Stronghold/internal/campaign/app"
	"Stronghold/internal/campaign/app/port"
	"Stronghold/internal/campaign/interfaces/handler"
	httphandler "Stronghold/internal/campaign/interfaces/handler/http"
	"Stronghold/internal/shared/session"
	transporthttp "Stronghold/internal/shared/transport/http"
	"Stronghold/internal/shared/transport/ws"
	"Stronghold/modules/kit/logx"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/gin-gonic/gin"
)

// SyncPushName 战役状态变更的服务端推送路由。
const SyncPushName = "campaign.sync"

type Module struct {
	wsHandler   *handler.WsHandler
	httpHandler *httphandler.HttpHandler
	managerPID  *actor.PID
}

// New 组装战役模块：起 ManagerActor，变更后通过会话管理器向同战役连接广播。
func New(
	sys *actor.ActorSystem,
	sess session.Manager,
	repo port.CampaignRepository,
	journal port.JournalRepository,
	editSecret string,
	logger logx.Logger,
) *Module {
	service := app.NewCampaignService(journal, logger)

	notifier := actors.ChangeNotifier(func(campaignID string, overview *app.Overview) {
		sess.Broadcast(campaignID, nil, SyncPushName, overview)
	})

	props := actor.PropsFromProducer(func() actor.Actor {
		return actors.NewManagerActor(repo, service, notifier)
	})
	managerPID := sys.Root.Spawn(props)

	core := handler.NewCampaign(sess, sys.Root, managerPID, editSecret, logger)
	return &Module{
		wsHandler:   handler.NewWsHandler(core),
		httpHandler: httphandler.NewHttpHandler(core),
		managerPID:  managerPID,
	}
}

func (m *Module) WsRegister(r *ws.Router) {
	m.wsHandler.RegisterRoutes(r)
}

func (m *Module) HttpRegister(g *gin.RouterGroup) {
	m.httpHandler.RegisterRoutes(g)
}

// ManagerPID 暴露给启动侧做优雅停机（Poison 后等存档落盘）。
func (m *Module) ManagerPID() *actor.PID {
	return m.managerPID
}

var _ ws.Registrar = (*Module)(nil)
var _ transporthttp.Registrar = (*Module)(nil)
