package models

type ScheduleStatus string

const (
	ScheduleStatusScheduled ScheduleStatus = "scheduled"
	ScheduleStatusCompleted ScheduleStatus = "completed"
	ScheduleStatusCancelled ScheduleStatus = "cancelled"
)

var scheduleStatusHumanName = map[ScheduleStatus]string{
	ScheduleStatusScheduled: "Scheduled",
	ScheduleStatusCompleted: "Completed",
	ScheduleStatusCancelled: "Cancelled",
}

func (s ScheduleStatus) ToHuman() string {
	if human, exist := scheduleStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// IsEditable reports whether the schedule may still be changed.
// Completed and cancelled interviews are terminal.
func (s ScheduleStatus) IsEditable() bool {
	return s == ScheduleStatusScheduled
}

func (s ScheduleStatus) IsAllowChange(to ScheduleStatus) bool {
	if s != ScheduleStatusScheduled {
		return false
	}
	return to == ScheduleStatusCompleted || to == ScheduleStatusCancelled
}

type MeetingMode string

const (
	MeetingModeVirtual  MeetingMode = "Virtual"
	MeetingModePhysical MeetingMode = "Physical"
)

func (m MeetingMode) IsValid() bool {
	return m == MeetingModeVirtual || m == MeetingModePhysical
}
