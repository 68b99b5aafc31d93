package ws

import (
	"context"
	"testing"

	"Stronghold/internal/shared/transport"
	"Stronghold/modules/kit/logx"
)

func TestRouter_按组名和路由名分发(t *testing.T) {
	r := NewRouter(logx.NewZapLogger(nil))
	called := false
	r.Group("turn").Handle("next", func(ctx context.Context, req *WsMsgReq, resp *WsMsgResp) {
		called = true
		resp.Body.Code = transport.OK
	})

	req := &WsMsgReq{Body: &ReqBody{Seq: 1, Name: "turn.next"}}
	resp := &WsMsgResp{Body: &RespBody{Seq: 1, Name: "turn.next"}}
	r.Dispatch(req, resp)

	if !called {
		t.Fatalf("期望 handler 被调用")
	}
	if resp.Body.Code != transport.OK {
		t.Fatalf("期望 code==OK，got=%d", resp.Body.Code)
	}
}

func TestRouter_路由不存在返回参数错误(t *testing.T) {
	r := NewRouter(logx.NewZapLogger(nil))
	r.Group("turn")

	cases := []string{"", "turn", "turn.", ".next", "nosuch.next", "turn.nosuch"}
	for _, name := range cases {
		req := &WsMsgReq{Body: &ReqBody{Name: name}}
		resp := &WsMsgResp{Body: &RespBody{Name: name}}
		r.Dispatch(req, resp)
		if resp.Body.Code != transport.InvalidParam {
			t.Fatalf("name=%q 期望 code==InvalidParam，got=%d", name, resp.Body.Code)
		}
	}
}

func TestRouter_handler漏设code时保持系统错误(t *testing.T) {
	r := NewRouter(logx.NewZapLogger(nil))
	r.Group("state").Handle("get", func(ctx context.Context, req *WsMsgReq, resp *WsMsgResp) {
		// 故意不设置 code
	})

	req := &WsMsgReq{Body: &ReqBody{Name: "state.get"}}
	resp := &WsMsgResp{Body: &RespBody{Name: "state.get"}}
	r.Dispatch(req, resp)
	if resp.Body.Code != transport.SystemError {
		t.Fatalf("期望漏设 code 时保持 SystemError，got=%d", resp.Body.Code)
	}
}

func TestBindJSON_反序列化请求体(t *testing.T) {
	req := &WsMsgReq{Body: &ReqBody{Msg: map[string]any{"projectId": "p-1"}}}
	var dst struct {
		ProjectID string `json:"projectId"`
	}
	if err := BindJSON(req, &dst); err != nil {
		t.Fatalf("BindJSON err=%v", err)
	}
	if dst.ProjectID != "p-1" {
		t.Fatalf("期望 projectId==p-1，got=%q", dst.ProjectID)
	}
}
