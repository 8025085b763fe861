package core

// StatusCode is the per-line confirmation code. Zero is success; everything
// else selects a fixed error message. Codes 20 and up belong to the g-code
// parser; unmapped codes still render, carrying the raw number.
type StatusCode uint8

const (
	StatusOK                    StatusCode = 0
	StatusExpectedCommandLetter StatusCode = 1
	StatusBadNumberFormat       StatusCode = 2
	StatusInvalidStatement      StatusCode = 3
	StatusNegativeValue         StatusCode = 4
	StatusSettingDisabled       StatusCode = 5
	StatusSettingStepPulseMin   StatusCode = 6
	StatusSettingReadFail       StatusCode = 7
	StatusIdleError             StatusCode = 8
	StatusAlarmLock             StatusCode = 9
	StatusSoftLimitError        StatusCode = 10
	StatusOverflow              StatusCode = 11

	StatusModalGroupViolation StatusCode = 20
	StatusUnsupportedCommand  StatusCode = 21
	StatusUndefinedFeedRate   StatusCode = 22
)

// AlarmCode selects an alarm message. Alarm codes are negative to keep them
// disjoint from status codes on interfaces that multiplex both.
type AlarmCode int8

const (
	AlarmLimitError AlarmCode = -1
	AlarmAbortCycle AlarmCode = -2
	AlarmProbeFail  AlarmCode = -3
)

// FeedbackCode selects a bracketed feedback message: setup warnings, mode
// toggles, and alarm-exit instructions outside the status/alarm protocol.
type FeedbackCode uint8

const (
	MessageCriticalEvent FeedbackCode = 1
	MessageAlarmLock     FeedbackCode = 2
	MessageAlarmUnlock   FeedbackCode = 3
	MessageEnabled       FeedbackCode = 4
	MessageDisabled      FeedbackCode = 5
)
