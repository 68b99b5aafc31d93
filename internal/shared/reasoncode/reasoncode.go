// Package reasoncode 收拢跨层使用的业务拒绝枚举，
// 接入层按这些枚举统一映射客户端提示。
package reasoncode

const (
	CampaignCapacityExceeded    = "CAMPAIGN_CAPACITY_EXCEEDED"
	CampaignTrainingExceeded    = "CAMPAIGN_TRAINING_EXCEEDED"
	CampaignInsufficientRes     = "CAMPAIGN_INSUFFICIENT_RESOURCES"
	CampaignPrerequisiteMissing = "CAMPAIGN_PREREQUISITE_MISSING"
	CampaignTargetNotFound      = "CAMPAIGN_TARGET_NOT_FOUND"
	CampaignSnapshotInvalid     = "CAMPAIGN_SNAPSHOT_INVALID"
	CampaignEditLocked          = "CAMPAIGN_EDIT_LOCKED"
)
