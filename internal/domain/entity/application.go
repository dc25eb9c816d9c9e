package entity

import "time"

// Review vocabulary shared by certifications and subsidies.
const (
	StatusPending       = "Pending"
	StatusApproved      = "Disetujui"
	StatusApprovedAlias = "Approved"
	StatusRejected      = "Ditolak"
	StatusRejectedAlias = "Rejected"
)

type StatusAction struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Status string `json:"status"`
}

var (
	ActionApprove = StatusAction{Name: "approve", Label: "Setujui", Status: StatusApproved}
	ActionReject  = StatusAction{Name: "reject", Label: "Tolak", Status: StatusRejected}
)

// StatusActions lists the transitions offered for a record in status.
// Only pending records can be decided.
func StatusActions(status string) []StatusAction {
	if status != StatusPending {
		return nil
	}
	return []StatusAction{ActionApprove, ActionReject}
}

// IsOfferedTransition reports whether moving from current to next is one
// of the offered actions.
func IsOfferedTransition(current, next string) bool {
	for _, a := range StatusActions(current) {
		if a.Status == next {
			return true
		}
	}
	return false
}

// StatusTone maps a status to a badge tone.
func StatusTone(status string) string {
	switch status {
	case StatusPending:
		return "warning"
	case StatusApproved, StatusApprovedAlias:
		return "success"
	default:
		return "error"
	}
}

type Certification struct {
	ID                string            `json:"id" firestore:"-"`
	Email             string            `json:"email" firestore:"email,omitempty"`
	ApplicantType     string            `json:"applicant_type" firestore:"applicantType,omitempty"`
	CertificationType string            `json:"certification_type" firestore:"certificationType,omitempty"`
	Location          string            `json:"location" firestore:"location,omitempty"`
	Status            string            `json:"status" firestore:"status,omitempty"`
	SubmittedDate     time.Time         `json:"submitted_date" firestore:"submittedDate,omitempty"`
	Description       string            `json:"description" firestore:"description,omitempty"`
	Documents         map[string]string `json:"documents" firestore:"documents,omitempty"`
}

func (c *Certification) IsPending() bool {
	return c.Status == StatusPending
}

type Subsidy struct {
	ID            string      `json:"id" firestore:"-"`
	UserName      string      `json:"user_name" firestore:"userName,omitempty"`
	ApplicantType string      `json:"applicant_type" firestore:"applicantType,omitempty"`
	SubsidyType   string      `json:"subsidy_type" firestore:"subsidyType,omitempty"`
	SubsidyAmount float64     `json:"subsidy_amount" firestore:"subsidyAmount,omitempty"`
	Status        string      `json:"status" firestore:"status,omitempty"`
	SubmittedDate time.Time   `json:"submitted_date" firestore:"submittedDate,omitempty"`
	FarmArea      interface{} `json:"farm_area" firestore:"farmArea,omitempty"`
	PhoneNumber   string      `json:"phone_number" firestore:"phoneNumber,omitempty"`
	Description   string      `json:"description" firestore:"description,omitempty"`
}

func (s *Subsidy) IsPending() bool {
	return s.Status == StatusPending
}
