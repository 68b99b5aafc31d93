package actors

import (
	"errors"

	"Stronghold/internal/shared/actor/messages"
	"Stronghold/modules/kit/errx"
)

func ok(data any) *messages.CampaignReply {
	return &messages.CampaignReply{Ok: true, Data: data}
}

func fail(reason string) *messages.CampaignReply {
	return &messages.CampaignReply{Ok: false, Msg: reason, Reason: reason}
}

// failErr 把 errx 错误展开成对外应答：code/msg/reason。
func failErr(err error) *messages.CampaignReply {
	var ex *errx.Error
	if errors.As(err, &ex) {
		return &messages.CampaignReply{
			Ok:     false,
			Code:   ex.CodeText(),
			Msg:    ex.Msg(),
			Reason: ex.Reason(),
		}
	}
	return fail(err.Error())
}
