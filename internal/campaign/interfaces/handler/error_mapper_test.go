package handler

import (
	"testing"

	"Stronghold/internal/shared/actor/messages"
	"Stronghold/internal/shared/reasoncode"
	"Stronghold/internal/shared/transport"
)

func TestHandleReply_业务码映射(t *testing.T) {
	cases := []struct {
		name     string
		reply    *messages.CampaignReply
		wantCode int
		wantMsg  string
	}{
		{
			name:     "成功",
			reply:    &messages.CampaignReply{Ok: true, Data: map[string]any{"x": 1}},
			wantCode: transport.OK,
			wantMsg:  "",
		},
		{
			name: "产能不足透传提示",
			reply: &messages.CampaignReply{
				Ok: false, Code: "CAMPAIGN_CAPACITY_EXCEEDED",
				Msg: "工单产能不足", Reason: reasoncode.CampaignCapacityExceeded,
			},
			wantCode: transport.BizReject,
			wantMsg:  "工单产能不足",
		},
		{
			name: "目标不存在",
			reply: &messages.CampaignReply{
				Ok: false, Code: "CAMPAIGN_TARGET_NOT_FOUND",
				Msg: "目标不存在", Reason: reasoncode.CampaignTargetNotFound,
			},
			wantCode: transport.NotFound,
			wantMsg:  "目标不存在",
		},
		{
			name: "参数错误",
			reply: &messages.CampaignReply{
				Ok: false, Code: "CODE_REQ_PARAM_ERROR", Msg: "unknown income type",
			},
			wantCode: transport.InvalidParam,
			wantMsg:  "unknown income type",
		},
		{
			name: "坏存档整份拒绝",
			reply: &messages.CampaignReply{
				Ok: false, Code: "CAMPAIGN_SNAPSHOT_INVALID", Msg: "存档校验失败",
			},
			wantCode: transport.BizReject,
			wantMsg:  "存档校验失败",
		},
		{
			name: "系统错误不透传内部信息",
			reply: &messages.CampaignReply{
				Ok: false, Code: "INTERNAL_ERROR", Msg: "战役操作失败",
			},
			wantCode: transport.SystemError,
			wantMsg:  sysBusyMsg,
		},
		{
			name:     "空应答按系统错误",
			reply:    nil,
			wantCode: transport.SystemError,
			wantMsg:  sysBusyMsg,
		},
		{
			name:     "无 code 的失败按系统错误",
			reply:    &messages.CampaignReply{Ok: false, Msg: "campaign not loaded", Reason: "campaign not loaded"},
			wantCode: transport.SystemError,
			wantMsg:  sysBusyMsg,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := transport.NewContext("test")
			code, msg := HandleReply(ctx, tc.reply)
			if code != tc.wantCode {
				t.Fatalf("code=%d want=%d", code, tc.wantCode)
			}
			if msg != tc.wantMsg {
				t.Fatalf("msg=%q want=%q", msg, tc.wantMsg)
			}
		})
	}
}
