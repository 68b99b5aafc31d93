package messages

// CampaignMessage 是战役命令的统一信封，ManagerActor 按 CampaignID 路由，
// Body 是下面的具体命令之一（指针）。
type CampaignMessage struct {
	CampaignID string
	Body       any
}

// CampaignReply 战役命令的统一应答。
type CampaignReply struct {
	Ok     bool   `json:"ok"`
	Code   string `json:"code,omitempty"`
	Msg    string `json:"msg,omitempty"`
	Reason string `json:"reason,omitempty"`
	Data   any    `json:"data,omitempty"`
}

// ---- 资源与回合 ----

type SelectIncome struct {
	Income string
}

type SelectEdict struct {
	Edict string
}

type HoldFestival struct{}

type AdjustResource struct {
	Type  string
	Delta int
}

type SetPhase struct {
	Phase string
}

type NextPhase struct{}

type CompleteTurn struct{}

type ResetCampaign struct{}

// ---- 工程 ----

type StartProject struct {
	TemplateID string
}

type AdvanceProject struct {
	ProjectID string
}

type RushProject struct {
	ProjectID string
}

type RemoveProject struct {
	ProjectID string
}

// ---- 招募 ----

type StartRecruitment struct {
	OptionID string
}

type AdvanceRecruitment struct {
	RecruitmentID string
}

type RemoveRecruitment struct {
	RecruitmentID string
}

// ---- 任务 ----

type AddMission struct {
	Name        string
	Category    string
	Scale       string
	Description string
	Modifier    int
}

type UpdateMission struct {
	MissionID    string
	Name         *string
	Category     *string
	Scale        *string
	Description  *string
	Modifier     *int
	Result       *string
	Consequences *string
}

type ResolveMission struct {
	MissionID string
	Modifier  int
}

type DeleteMission struct {
	MissionID string
}

type ToggleCaptain struct {
	MissionID string
	CaptainID string
}

type ToggleTroop struct {
	MissionID string
	TroopID   string
}

// ---- 部队与队长 ----

type AddTroop struct {
	Name       string
	Tier       string
	Type       string
	Advantages string
}

type RemoveTroop struct {
	TroopID string
}

type UpdateTroopStatus struct {
	TroopID       string
	Status        string
	DeltaMissions int
}

type UpdateCaptainNotes struct {
	CaptainID string
	Notes     string
}

// ---- 事件与备注 ----

type AddEvent struct {
	Title       string
	Description string
}

type ResolveEvent struct {
	EventID  string
	Resolved bool
}

type DeleteEvent struct {
	EventID string
}

type AddNote struct {
	Player  string
	Details string
}

type UpdateNote struct {
	NoteID  string
	Details string
}

type DeleteNote struct {
	NoteID string
}

// ---- 状态 ----

type GetOverview struct{}

type GetTurnLog struct {
	Limit int
}

type ExportState struct{}

type ImportState struct {
	Raw []byte
}
