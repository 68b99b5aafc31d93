package handler

import (
	"context"

	"Stronghold/internal/campaign/app"
	"Stronghold/internal/campaign/snapshot"
	"Stronghold/internal/shared/actor/messages"
	"Stronghold/internal/shared/transport"
	"Stronghold/modules/kit/errx"
)

const sysBusyMsg = "系统繁忙，请稍后重试"

// HandleReply 把 actor 应答翻译成对客户端的业务码和提示。
// 业务拒绝透传可读消息，技术错误一律收敛成统一提示。
func HandleReply(ctx context.Context, reply *messages.CampaignReply) (int, string) {
	if reply == nil {
		return transport.SystemError, sysBusyMsg
	}
	if reply.Ok {
		return transport.OK, ""
	}

	if reply.Reason != "" {
		transport.SetErrorReason(ctx, reply.Reason)
	}

	code := mapReplyCodeToClientCode(reply.Code)
	if code >= transport.SystemError {
		return code, sysBusyMsg
	}
	if reply.Msg != "" {
		return code, reply.Msg
	}
	return code, "操作被拒绝"
}

func mapReplyCodeToClientCode(code string) int {
	switch errx.Code(code) {
	case app.CodeTargetNotFound:
		return transport.NotFound
	case app.CodeInvalidParam:
		return transport.InvalidParam
	case app.CodeCapacityExceeded,
		app.CodeTrainingExceeded,
		app.CodeInsufficientRes,
		app.CodePrerequisiteMissing,
		snapshot.CodeInvalidSnapshot:
		return transport.BizReject
	default:
		// 空 code 或未识别的 code 按技术错误处理
		return transport.SystemError
	}
}
