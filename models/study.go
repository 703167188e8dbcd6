package models

import "time"

// ExamCountdown is the wire shape of the "exam" domain.
//
// TargetDate is the current field. TargetDays is the legacy relative field
// ("days remaining") that older clients still send; it is only read, never
// written by this client.
type ExamCountdown struct {
	TargetDate *time.Time `json:"target_date,omitempty"`
	TargetDays *int       `json:"target_days,omitempty"`
	Title      string     `json:"title,omitempty"`
}

// Theme is the wire shape of the "theme" domain.
type Theme struct {
	Name      string `json:"name"`
	Accent    string `json:"accent,omitempty"`
	DarkMode  bool   `json:"dark_mode"`
	FontScale int    `json:"font_scale,omitempty"`
}

// Settings is the wire shape of the "settings" domain. It is composed from
// several independent local keys.
type Settings struct {
	Sound     *bool `json:"sound,omitempty"`
	Haptics   *bool `json:"haptics,omitempty"`
	DailyGoal *int  `json:"daily_goal,omitempty"`
}
