package models

type RequisitionStatus string

const (
	RequisitionStatusPending  RequisitionStatus = "pending"
	RequisitionStatusOpen     RequisitionStatus = "open"
	RequisitionStatusRejected RequisitionStatus = "rejected"
	RequisitionStatusClosed   RequisitionStatus = "closed"
)

var requisitionStatusHumanName = map[RequisitionStatus]string{
	RequisitionStatusPending:  "Pending decision",
	RequisitionStatusOpen:     "Open",
	RequisitionStatusRejected: "Rejected",
	RequisitionStatusClosed:   "Closed",
}

func (s RequisitionStatus) ToHuman() string {
	if human, exist := requisitionStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// AllowAccept reports whether the requisition still awaits a decision.
func (s RequisitionStatus) AllowAccept() bool {
	return s == RequisitionStatusPending || s == ""
}

func (s RequisitionStatus) AllowReject() bool {
	return s == RequisitionStatusPending || s == ""
}

// IsMutable gates every advert field edit: only an accepted (open)
// requisition may be drafted.
func (s RequisitionStatus) IsMutable() bool {
	return s == RequisitionStatusOpen
}

func (s RequisitionStatus) AllowPublish() bool {
	return s == RequisitionStatusOpen
}

func (s RequisitionStatus) IsAllowChange(to RequisitionStatus) bool {
	switch s {
	case RequisitionStatusPending, "":
		return to == RequisitionStatusOpen || to == RequisitionStatusRejected
	case RequisitionStatusOpen:
		return to == RequisitionStatusClosed
	}
	return false
}
