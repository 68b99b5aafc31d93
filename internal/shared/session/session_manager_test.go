package session

import (
	"sync"
	"testing"
	"time"
)

// fakeConn 实现 ws.WSConn，记录收到的推送。
type fakeConn struct {
	mu     sync.Mutex
	pushes []string
	done   chan struct{}
	once   sync.Once
}

func newFakeConn() *fakeConn {
	return &fakeConn{done: make(chan struct{})}
}

func (f *fakeConn) SetProperty(key string, value any) {}
func (f *fakeConn) GetProperty(key string) any        { return nil }
func (f *fakeConn) RemoveProperty(key string)         {}
func (f *fakeConn) Addr() string                      { return "fake" }

func (f *fakeConn) Push(name string, data any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pushes = append(f.pushes, name)
}

func (f *fakeConn) Close() {
	f.once.Do(func() { close(f.done) })
}

func (f *fakeConn) Done() <-chan struct{} { return f.done }

func (f *fakeConn) pushed() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.pushes))
	copy(out, f.pushes)
	return out
}

func TestSessMgr_广播跳过发起方(t *testing.T) {
	mgr := NewSessMgr()
	c1 := newFakeConn()
	c2 := newFakeConn()
	c3 := newFakeConn()
	mgr.Bind(1, "camp-1", c1)
	mgr.Bind(2, "camp-1", c2)
	mgr.Bind(3, "camp-2", c3)

	mgr.Broadcast("camp-1", c1, "state.changed", nil)

	if got := c1.pushed(); len(got) != 0 {
		t.Fatalf("期望发起方不收通知，got=%v", got)
	}
	if got := c2.pushed(); len(got) != 1 || got[0] != "state.changed" {
		t.Fatalf("期望同战役其他会话收到通知，got=%v", got)
	}
	if got := c3.pushed(); len(got) != 0 {
		t.Fatalf("期望其他战役不收通知，got=%v", got)
	}
}

func TestSessMgr_同会话重复绑定踢旧连接(t *testing.T) {
	mgr := NewSessMgr()
	oldConn := newFakeConn()
	newConn := newFakeConn()
	mgr.Bind(1, "camp-1", oldConn)
	mgr.Bind(1, "camp-1", newConn)

	select {
	case <-oldConn.Done():
	case <-time.After(time.Second):
		t.Fatalf("期望旧连接被关闭")
	}
	if got := oldConn.pushed(); len(got) != 1 || got[0] != "session.rebind" {
		t.Fatalf("期望旧连接先收到 session.rebind 再被关闭，got=%v", got)
	}
	if conn, ok := mgr.GetConn(1); !ok || conn != newConn {
		t.Fatalf("期望会话绑定到新连接")
	}
}

func TestSessMgr_连接关闭后自动解绑(t *testing.T) {
	mgr := NewSessMgr()
	conn := newFakeConn()
	mgr.Bind(1, "camp-1", conn)
	conn.Close()

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if _, ok := mgr.GetConn(1); !ok {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("期望连接关闭后会话被解绑")
}
