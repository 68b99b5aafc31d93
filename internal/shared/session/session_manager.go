package session

import (
	"sync"

	"Stronghold/internal/shared/transport/ws"
)

// Manager 管理战役会话：一条连接绑定到一个战役，可按战役广播推送。
type Manager interface {
	Bind(sessionID int64, campaignID string, conn ws.WSConn)
	UnbindConn(conn ws.WSConn)
	GetConn(sessionID int64) (ws.WSConn, bool)
	GetSession(conn ws.WSConn) (int64, bool)
	// Broadcast 向战役的所有会话推送消息；except 非 nil 时跳过该连接（变更发起方自己不用收通知）。
	Broadcast(campaignID string, except ws.WSConn, name string, data any)
}

type SessMgr struct {
	sync.RWMutex
	sess2conn map[int64]ws.WSConn
	conn2sess map[ws.WSConn]int64
	conn2camp map[ws.WSConn]string
	camp2conn map[string]map[ws.WSConn]struct{}
	watched   map[ws.WSConn]struct{}
}

func NewSessMgr() Manager {
	return &SessMgr{
		sess2conn: make(map[int64]ws.WSConn),
		conn2sess: make(map[ws.WSConn]int64),
		conn2camp: make(map[ws.WSConn]string),
		camp2conn: make(map[string]map[ws.WSConn]struct{}),
		watched:   make(map[ws.WSConn]struct{}),
	}
}

func (s *SessMgr) Bind(sessionID int64, campaignID string, conn ws.WSConn) {
	if conn == nil {
		return
	}
	s.Lock()
	defer s.Unlock()

	// 为每条连接只启动一次 watcher：连接关闭后自动解绑，避免 conn2sess 逐步膨胀
	if _, ok := s.watched[conn]; !ok {
		s.watched[conn] = struct{}{}
		go s.watchConnDone(conn)
	}

	oldConn := s.sess2conn[sessionID]
	// 同一会话重复绑定时踢掉原来的连接
	if oldConn != nil && oldConn != conn {
		oldConn.Push("session.rebind", nil)
		s.unbindLocked(oldConn)
		oldConn.Close()
	}

	// 连接换绑战役时，先从旧战役的广播集合摘除
	if oldCamp, ok := s.conn2camp[conn]; ok && oldCamp != campaignID {
		s.removeFromCampaignLocked(conn, oldCamp)
	}

	s.sess2conn[sessionID] = conn
	s.conn2sess[conn] = sessionID
	s.conn2camp[conn] = campaignID
	set := s.camp2conn[campaignID]
	if set == nil {
		set = make(map[ws.WSConn]struct{})
		s.camp2conn[campaignID] = set
	}
	set[conn] = struct{}{}
}

func (s *SessMgr) watchConnDone(conn ws.WSConn) {
	<-conn.Done()
	s.UnbindConn(conn)
}

func (s *SessMgr) UnbindConn(conn ws.WSConn) {
	s.Lock()
	defer s.Unlock()
	s.unbindLocked(conn)
}

func (s *SessMgr) unbindLocked(conn ws.WSConn) {
	sessionID := s.conn2sess[conn]
	delete(s.watched, conn)
	delete(s.conn2sess, conn)
	if s.sess2conn[sessionID] == conn {
		delete(s.sess2conn, sessionID)
	}
	if camp, ok := s.conn2camp[conn]; ok {
		s.removeFromCampaignLocked(conn, camp)
	}
}

func (s *SessMgr) removeFromCampaignLocked(conn ws.WSConn, campaignID string) {
	delete(s.conn2camp, conn)
	if set := s.camp2conn[campaignID]; set != nil {
		delete(set, conn)
		if len(set) == 0 {
			delete(s.camp2conn, campaignID)
		}
	}
}

func (s *SessMgr) GetConn(sessionID int64) (ws.WSConn, bool) {
	s.RLock()
	defer s.RUnlock()
	conn, ok := s.sess2conn[sessionID]
	return conn, ok
}

func (s *SessMgr) GetSession(conn ws.WSConn) (int64, bool) {
	s.RLock()
	defer s.RUnlock()
	sessionID, ok := s.conn2sess[conn]
	return sessionID, ok
}

func (s *SessMgr) Broadcast(campaignID string, except ws.WSConn, name string, data any) {
	s.RLock()
	conns := make([]ws.WSConn, 0, len(s.camp2conn[campaignID]))
	for conn := range s.camp2conn[campaignID] {
		if conn == except {
			continue
		}
		conns = append(conns, conn)
	}
	s.RUnlock()

	for _, conn := range conns {
		conn.Push(name, data)
	}
}
