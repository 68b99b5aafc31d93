package app

import "Stronghold/internal/shared/reasoncode"

type Reason struct {
	Code    string
	Message string
}

func (r Reason) ReasonCode() string {
	return r.Code
}

func NewReason(c, m string) Reason {
	return Reason{
		Code:    c,
		Message: m,
	}
}

var (
	// 业务拒绝 reason（服务内枚举），由接入层统一映射为客户端提示。
	ReasonCapacityExceeded    = NewReason(reasoncode.CampaignCapacityExceeded, "工单产能不足")
	ReasonTrainingExceeded    = NewReason(reasoncode.CampaignTrainingExceeded, "训练位不足")
	ReasonInsufficientRes     = NewReason(reasoncode.CampaignInsufficientRes, "资源不足")
	ReasonPrerequisiteMissing = NewReason(reasoncode.CampaignPrerequisiteMissing, "前置工程未完成")
	ReasonTargetNotFound      = NewReason(reasoncode.CampaignTargetNotFound, "目标不存在")
	ReasonSnapshotInvalid     = NewReason(reasoncode.CampaignSnapshotInvalid, "存档校验失败")
	ReasonEditLocked          = NewReason(reasoncode.CampaignEditLocked, "战役处于只读锁定")
)

var (
	// 技术错误 reason（服务内枚举），用于日志与排障。
	ReasonRepoUnavailable  = NewReason("CAMPAIGN_REPO_UNAVAILABLE", "战役存储库不可用")
	ReasonJournalWriteFail = NewReason("CAMPAIGN_JOURNAL_WRITE_FAIL", "战役流水写入失败")
	ReasonTokenIssue       = NewReason("TOKEN_ISSUE", "令牌签发失败")
)
