package actors

import (
	"testing"

	"github.com/asynkron/protoactor-go/actor"
)

func TestManagerActor_子actor终止后摘除路由(t *testing.T) {
	m := NewManagerActor(nil, nil, nil)
	dead := actor.NewPID("nonhost", "camp-dead")
	alive := actor.NewPID("nonhost", "camp-alive")
	m.campaignActors["camp-dead"] = dead
	m.campaignActors["camp-alive"] = alive

	m.evict(dead)
	if _, ok := m.campaignActors["camp-dead"]; ok {
		t.Fatalf("终止的子 actor 应从路由表摘除")
	}
	if pid := m.campaignActors["camp-alive"]; pid == nil || !pid.Equal(alive) {
		t.Fatalf("其他战役的路由不应受影响")
	}

	// 空 PID 的终止通知只忽略，不 panic
	m.evict(nil)
}
