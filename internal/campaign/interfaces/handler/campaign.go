package handler

import (
	"crypto/subtle"
	"errors"
	"time"

	"Stronghold/internal/shared/actor/messages"
	"Stronghold/internal/shared/session"
	"Stronghold/modules/kit/logx"

	"github.com/asynkron/protoactor-go/actor"
)

// commandTimeout 单条战役命令在 actor 侧的处理上限。
const commandTimeout = 5 * time.Second

var ErrBadReply = errors.New("campaign actor returned unexpected reply type")

// Campaign 是 ws/http 两套接入共享的内核：
// 拿着 ManagerActor 的 PID 发命令，拿着会话管理器做绑定与广播。
type Campaign struct {
	session    session.Manager
	root       *actor.RootContext
	managerPID *actor.PID
	editSecret string
	log        logx.Logger
}

func NewCampaign(s session.Manager, root *actor.RootContext, managerPID *actor.PID, editSecret string, log logx.Logger) *Campaign {
	return &Campaign{
		session:    s,
		root:       root,
		managerPID: managerPID,
		editSecret: editSecret,
		log:        log,
	}
}

func (g *Campaign) Session() session.Manager {
	return g.session
}

func (g *Campaign) Logger() logx.Logger {
	return g.log
}

// Command 把命令发给对应战役的 actor 并等待应答。
func (g *Campaign) Command(campaignID string, body any) (*messages.CampaignReply, error) {
	future := g.root.RequestFuture(g.managerPID, &messages.CampaignMessage{
		CampaignID: campaignID,
		Body:       body,
	}, commandTimeout)

	result, err := future.Result()
	if err != nil {
		return nil, err
	}
	reply, ok := result.(*messages.CampaignReply)
	if !ok || reply == nil {
		return nil, ErrBadReply
	}
	return reply, nil
}

// CheckEditSecret 校验编辑锁口令（常量时间比较）。
func (g *Campaign) CheckEditSecret(secret string) bool {
	if g.editSecret == "" || secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(g.editSecret), []byte(secret)) == 1
}
