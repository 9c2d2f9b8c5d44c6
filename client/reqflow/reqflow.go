package reqflow

import (
	"context"

	"github.com/pkg/errors"
	"talent-engine-backend/models"
	apimodels "talent-engine-backend/models/api"
	requisitionapimodels "talent-engine-backend/models/api/requisition"
)

// API is the slice of the service client the drafting flow needs.
type API interface {
	CreateRequisition(ctx context.Context, data requisitionapimodels.RequisitionCreateData) (id string, err error)
	AcceptRequisition(ctx context.Context, id string) error
	RejectRequisition(ctx context.Context, id string) error
	SaveAdvertDraft(ctx context.Context, id string, draft requisitionapimodels.AdvertDraft) error
	PublishAdvert(ctx context.Context, id string, data requisitionapimodels.PublishData) error
	DeleteRequisition(ctx context.Context, id string) error
}

// RequestForm is the create-requisition screen. Send validates locally
// before any network call is made.
type RequestForm struct {
	api  API
	Data requisitionapimodels.RequisitionCreateData

	banner string
}

func NewRequestForm(api API) *RequestForm {
	return &RequestForm{api: api}
}

func (f *RequestForm) Banner() string {
	return f.banner
}

func (f *RequestForm) Send(ctx context.Context) (id string, err error) {
	if err = f.Data.Validate(); err != nil {
		f.banner = err.Error()
		return "", err
	}
	id, err = f.api.CreateRequisition(ctx, f.Data)
	if err != nil {
		f.banner = err.Error()
		return "", err
	}
	f.banner = ""
	return id, nil
}

// DraftSession drives one requisition through accept/reject and advert
// drafting. Every mutating operation is gated on IsFormMutable, the
// load-bearing invariant of the whole screen.
type DraftSession struct {
	api API

	requisition requisitionapimodels.RequisitionView
	draft       requisitionapimodels.AdvertDraft
	published   bool
}

func NewDraftSession(api API, requisition requisitionapimodels.RequisitionView) *DraftSession {
	return &DraftSession{
		api:         api,
		requisition: requisition,
		draft:       requisition.Advert,
		published:   requisition.PublishStatus,
	}
}

func (s *DraftSession) Status() models.RequisitionStatus {
	return s.requisition.Status
}

func (s *DraftSession) Draft() requisitionapimodels.AdvertDraft {
	return s.draft
}

func (s *DraftSession) Requisition() requisitionapimodels.RequisitionView {
	return s.requisition
}

// IsFormMutable reports whether the advert can be edited: the requisition
// must be open and not yet published in this session. After a publish the
// form stays locked until the record is re-fetched.
func (s *DraftSession) IsFormMutable() bool {
	return s.requisition.Status.IsMutable() && !s.published
}

// Accept moves a pending requisition to open and unlocks the form.
func (s *DraftSession) Accept(ctx context.Context) error {
	if !s.requisition.Status.AllowAccept() {
		return errors.Errorf("requisition cannot be accepted from status %v", s.requisition.Status)
	}
	if err := s.api.AcceptRequisition(ctx, s.requisition.ID); err != nil {
		return err
	}
	s.requisition.Status = models.RequisitionStatusOpen
	return nil
}

// Reject is terminal, the requisition stays immutable.
func (s *DraftSession) Reject(ctx context.Context) error {
	if !s.requisition.Status.AllowReject() {
		return errors.Errorf("requisition cannot be rejected from status %v", s.requisition.Status)
	}
	if err := s.api.RejectRequisition(ctx, s.requisition.ID); err != nil {
		return err
	}
	s.requisition.Status = models.RequisitionStatusRejected
	return nil
}

// ApplyEdit runs a draft mutation. It is a no-op returning false whenever
// the form is not mutable.
func (s *DraftSession) ApplyEdit(mutate func(draft *requisitionapimodels.AdvertDraft)) bool {
	if !s.IsFormMutable() {
		return false
	}
	mutate(&s.draft)
	return true
}

// AddDocument appends a required document title. Blank and duplicate titles
// are rejected.
func (s *DraftSession) AddDocument(title string) error {
	if !s.IsFormMutable() {
		return errors.New("requisition is not open for editing")
	}
	if title == "" {
		return errors.New("document title must not be empty")
	}
	for _, existing := range s.draft.DocumentsRequired {
		if existing == title {
			return errors.New("document is already in the list")
		}
	}
	s.draft.DocumentsRequired = append(s.draft.DocumentsRequired, title)
	return nil
}

// RemoveDocument drops a document from the list. Compulsory documents
// cannot be removed.
func (s *DraftSession) RemoveDocument(title string) error {
	if !s.IsFormMutable() {
		return errors.New("requisition is not open for editing")
	}
	if models.IsCompulsoryDocument(title) {
		return errors.Errorf("%v is compulsory and cannot be removed", title)
	}
	kept := make([]string, 0, len(s.draft.DocumentsRequired))
	for _, existing := range s.draft.DocumentsRequired {
		if existing != title {
			kept = append(kept, existing)
		}
	}
	s.draft.DocumentsRequired = kept
	return nil
}

// ToggleComplianceItem checks or unchecks one compliance checklist item.
func (s *DraftSession) ToggleComplianceItem(item string) bool {
	if !s.IsFormMutable() {
		return false
	}
	for idx, existing := range s.draft.ComplianceChecklist {
		if existing == item {
			s.draft.ComplianceChecklist = append(s.draft.ComplianceChecklist[:idx], s.draft.ComplianceChecklist[idx+1:]...)
			return true
		}
	}
	s.draft.ComplianceChecklist = append(s.draft.ComplianceChecklist, item)
	return true
}

// SaveDraft persists the current draft without publishing.
func (s *DraftSession) SaveDraft(ctx context.Context) error {
	if !s.IsFormMutable() {
		return errors.New("requisition is not open for editing")
	}
	return s.api.SaveAdvertDraft(ctx, s.requisition.ID, s.draft)
}

// Publish runs the full pre-publish validation, submits the draft with
// publish_status set and locks the form on success. A validation failure
// does not transition state.
func (s *DraftSession) Publish(ctx context.Context) error {
	if !s.IsFormMutable() {
		return errors.New("only an open requisition can be published")
	}
	if fieldErrs := s.draft.ValidateForPublish(s.requisition.Title); len(fieldErrs) != 0 {
		return apimodels.ValidationError{Fields: fieldErrs}
	}
	err := s.api.PublishAdvert(ctx, s.requisition.ID, requisitionapimodels.PublishData{
		AdvertDraft:   s.draft,
		PublishStatus: true,
	})
	if err != nil {
		return err
	}
	s.published = true
	s.requisition.PublishStatus = true
	return nil
}

// DeleteAdvert removes the requisition server-side. Irreversible from this
// screen, the record lands in the recycle bin.
func (s *DraftSession) DeleteAdvert(ctx context.Context) error {
	return s.api.DeleteRequisition(ctx, s.requisition.ID)
}

// Refresh replaces the session state with a re-fetched record, unlocking
// the form again when the record is still open.
func (s *DraftSession) Refresh(requisition requisitionapimodels.RequisitionView) {
	s.requisition = requisition
	s.draft = requisition.Advert
	s.published = requisition.PublishStatus
}
