// Package dto 定义战役接入层的请求/应答结构，字段命名与前端约定保持 camelCase。
package dto

// ---- 进入与解锁 ----

type EnterReq struct {
	CampaignID string `json:"campaignId"`
	// Token 编辑 token，可为空（只读进入）
	Token string `json:"token"`
}

type EnterResp struct {
	SessionID  int64  `json:"sessionId"`
	CampaignID string `json:"campaignId"`
	CanEdit    bool   `json:"canEdit"`
	Overview   any    `json:"overview"`
}

type UnlockReq struct {
	Secret string `json:"secret"`
}

type UnlockResp struct {
	Token   string `json:"token"`
	CanEdit bool   `json:"canEdit"`
}

// ---- 资源与回合 ----

type SelectIncomeReq struct {
	Income string `json:"income"`
}

type SelectEdictReq struct {
	Edict string `json:"edict"`
}

type AdjustResourceReq struct {
	Type  string `json:"type"`
	Delta int    `json:"delta"`
}

type SetPhaseReq struct {
	Phase string `json:"phase"`
}

// ---- 工程 ----

type StartProjectReq struct {
	TemplateID string `json:"templateId"`
}

type ProjectIDReq struct {
	ProjectID string `json:"projectId"`
}

// ---- 招募 ----

type StartRecruitmentReq struct {
	OptionID string `json:"optionId"`
}

type RecruitmentIDReq struct {
	RecruitmentID string `json:"recruitmentId"`
}

// ---- 任务 ----

type AddMissionReq struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Scale       string `json:"scale"`
	Description string `json:"description"`
	Modifier    int    `json:"modifier"`
}

type UpdateMissionReq struct {
	MissionID    string  `json:"missionId"`
	Name         *string `json:"name"`
	Category     *string `json:"category"`
	Scale        *string `json:"scale"`
	Description  *string `json:"description"`
	Modifier     *int    `json:"modifier"`
	Result       *string `json:"result"`
	Consequences *string `json:"consequences"`
}

type ResolveMissionReq struct {
	MissionID string `json:"missionId"`
	Modifier  int    `json:"modifier"`
}

type MissionIDReq struct {
	MissionID string `json:"missionId"`
}

type ToggleCaptainReq struct {
	MissionID string `json:"missionId"`
	CaptainID string `json:"captainId"`
}

type ToggleTroopReq struct {
	MissionID string `json:"missionId"`
	TroopID   string `json:"troopId"`
}

// ---- 部队与队长 ----

type AddTroopReq struct {
	Name       string `json:"name"`
	Tier       string `json:"tier"`
	Type       string `json:"type"`
	Advantages string `json:"advantages"`
}

type TroopIDReq struct {
	TroopID string `json:"troopId"`
}

type UpdateTroopStatusReq struct {
	TroopID       string `json:"troopId"`
	Status        string `json:"status"`
	DeltaMissions int    `json:"deltaMissions"`
}

type UpdateCaptainNotesReq struct {
	CaptainID string `json:"captainId"`
	Notes     string `json:"notes"`
}

// ---- 事件与备注 ----

type AddEventReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ResolveEventReq struct {
	EventID  string `json:"eventId"`
	Resolved bool   `json:"resolved"`
}

type EventIDReq struct {
	EventID string `json:"eventId"`
}

type AddNoteReq struct {
	Player  string `json:"player"`
	Details string `json:"details"`
}

type UpdateNoteReq struct {
	NoteID  string `json:"noteId"`
	Details string `json:"details"`
}

type NoteIDReq struct {
	NoteID string `json:"noteId"`
}

type TurnLogReq struct {
	Limit int `json:"limit"`
}

// MatchupReq troopType 为空时返回整张克制矩阵。
type MatchupReq struct {
	TroopType string `json:"troopType"`
}

type MatchupResp struct {
	TroopType string                    `json:"troopType,omitempty"`
	Modifiers map[string]int            `json:"modifiers,omitempty"`
	Summary   any                       `json:"summary,omitempty"`
	Matrix    map[string]map[string]int `json:"matrix,omitempty"`
}

// ---- 状态导入导出 ----

type ImportStateReq struct {
	// Data 完整战役 JSON 文档（exportState 的输出）
	Data string `json:"data"`
}

// ---- HTTP 统一应答 ----

type WebResp struct {
	Code int    `json:"code"`
	Msg  string `json:"msg,omitempty"`
	Data any    `json:"data,omitempty"`
}

func Success(code int, data any) WebResp {
	return WebResp{Code: code, Data: data}
}

func Error(code int, msg string) WebResp {
	return WebResp{Code: code, Msg: msg}
}
