package reqflow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"talent-engine-backend/models"
	apimodels "talent-engine-backend/models/api"
	requisitionapimodels "talent-engine-backend/models/api/requisition"
)

type fakeAPI struct {
	createCalls  int
	acceptCalls  int
	rejectCalls  int
	publishCalls int
	deleteCalls  int
	published    requisitionapimodels.PublishData
}

func (f *fakeAPI) CreateRequisition(ctx context.Context, data requisitionapimodels.RequisitionCreateData) (string, error) {
	f.createCalls++
	return "rec-1", nil
}

func (f *fakeAPI) AcceptRequisition(ctx context.Context, id string) error {
	f.acceptCalls++
	return nil
}

func (f *fakeAPI) RejectRequisition(ctx context.Context, id string) error {
	f.rejectCalls++
	return nil
}

func (f *fakeAPI) SaveAdvertDraft(ctx context.Context, id string, draft requisitionapimodels.AdvertDraft) error {
	return nil
}

func (f *fakeAPI) PublishAdvert(ctx context.Context, id string, data requisitionapimodels.PublishData) error {
	f.publishCalls++
	f.published = data
	return nil
}

func (f *fakeAPI) DeleteRequisition(ctx context.Context, id string) error {
	f.deleteCalls++
	return nil
}

func pendingRequisition() requisitionapimodels.RequisitionView {
	return requisitionapimodels.RequisitionView{
		ID:     "rec-1",
		Title:  "Backend Engineer",
		Status: models.RequisitionStatusPending,
	}
}

func validDraft() requisitionapimodels.AdvertDraft {
	deadline := time.Now().Add(14 * 24 * time.Hour)
	return requisitionapimodels.AdvertDraft{
		CompanyName:         "Acme Ltd",
		JobType:             "Full-time",
		LocationType:        models.LocationTypeRemote,
		Description:         "Build and run the hiring platform.",
		Responsibilities:    []string{"Design services"},
		DocumentsRequired:   []string{"Resume"},
		ComplianceChecklist: []string{"Right to Work Check"},
		DeadlineDate:        &deadline,
	}
}

func TestRequestForm(t *testing.T) {
	t.Run(`empty title fails locally without a network call`, func(t *testing.T) {
		api := &fakeAPI{}
		form := NewRequestForm(api)
		form.Data.Reason = "Team growth"

		_, err := form.Send(context.Background())
		require.NotNil(t, err)
		require.Equal(t, "Job title is required.", err.Error())
		require.Equal(t, "Job title is required.", form.Banner())
		require.Equal(t, 0, api.createCalls)
	})

	t.Run(`valid form is sent`, func(t *testing.T) {
		api := &fakeAPI{}
		form := NewRequestForm(api)
		form.Data.Title = "Backend Engineer"
		form.Data.Reason = "Team growth"

		id, err := form.Send(context.Background())
		require.Nil(t, err)
		require.Equal(t, "rec-1", id)
		require.Equal(t, 1, api.createCalls)
		require.Empty(t, form.Banner())
	})
}

func TestDraftSession(t *testing.T) {
	t.Run(`edits are a no-op while the requisition is pending`, func(t *testing.T) {
		session := NewDraftSession(&fakeAPI{}, pendingRequisition())
		applied := session.ApplyEdit(func(draft *requisitionapimodels.AdvertDraft) {
			draft.CompanyName = "Acme Ltd"
		})
		require.Equal(t, false, applied)
		require.Empty(t, session.Draft().CompanyName)
	})

	t.Run(`edits are a no-op after reject`, func(t *testing.T) {
		api := &fakeAPI{}
		session := NewDraftSession(api, pendingRequisition())
		require.Nil(t, session.Reject(context.Background()))
		require.Equal(t, models.RequisitionStatusRejected, session.Status())

		applied := session.ApplyEdit(func(draft *requisitionapimodels.AdvertDraft) {
			draft.CompanyName = "Acme Ltd"
		})
		require.Equal(t, false, applied)
	})

	t.Run(`accept unlocks the form then publish submits the draft`, func(t *testing.T) {
		api := &fakeAPI{}
		session := NewDraftSession(api, pendingRequisition())

		require.Nil(t, session.Accept(context.Background()))
		require.Equal(t, models.RequisitionStatusOpen, session.Status())
		require.Equal(t, true, session.IsFormMutable())

		draft := validDraft()
		applied := session.ApplyEdit(func(d *requisitionapimodels.AdvertDraft) {
			*d = draft
		})
		require.Equal(t, true, applied)

		require.Nil(t, session.Publish(context.Background()))
		require.Equal(t, 1, api.publishCalls)
		require.Equal(t, true, api.published.PublishStatus)
		require.Equal(t, []string{"Right to Work Check"}, api.published.ComplianceChecklist)
		require.Equal(t, []string{"Resume"}, api.published.DocumentsRequired)

		// published in this session: locked until re-fetch
		require.Equal(t, false, session.IsFormMutable())
	})

	t.Run(`publish with an invalid draft does not transition state`, func(t *testing.T) {
		api := &fakeAPI{}
		session := NewDraftSession(api, pendingRequisition())
		require.Nil(t, session.Accept(context.Background()))

		err := session.Publish(context.Background())
		require.NotNil(t, err)
		var vErr apimodels.ValidationError
		require.ErrorAs(t, err, &vErr)
		require.NotEmpty(t, vErr.Fields)
		require.Equal(t, 0, api.publishCalls)
		require.Equal(t, true, session.IsFormMutable())
	})

	t.Run(`compulsory documents cannot be removed`, func(t *testing.T) {
		api := &fakeAPI{}
		view := pendingRequisition()
		view.Status = models.RequisitionStatusOpen
		view.Advert.DocumentsRequired = append([]string{}, models.CompulsoryDocuments...)
		session := NewDraftSession(api, view)

		err := session.RemoveDocument(models.CompulsoryDocuments[0])
		require.NotNil(t, err)
		require.Equal(t, models.CompulsoryDocuments, session.Draft().DocumentsRequired)

		require.Nil(t, session.AddDocument("Cover Letter"))
		require.Nil(t, session.RemoveDocument("Cover Letter"))
	})

	t.Run(`duplicate document titles are rejected`, func(t *testing.T) {
		view := pendingRequisition()
		view.Status = models.RequisitionStatusOpen
		session := NewDraftSession(&fakeAPI{}, view)

		require.Nil(t, session.AddDocument("Resume"))
		require.NotNil(t, session.AddDocument("Resume"))
	})

	t.Run(`toggling a compliance item twice removes it again`, func(t *testing.T) {
		view := pendingRequisition()
		view.Status = models.RequisitionStatusOpen
		session := NewDraftSession(&fakeAPI{}, view)

		require.Equal(t, true, session.ToggleComplianceItem("DBS Check"))
		require.Equal(t, []string{"DBS Check"}, session.Draft().ComplianceChecklist)
		require.Equal(t, true, session.ToggleComplianceItem("DBS Check"))
		require.Empty(t, session.Draft().ComplianceChecklist)
	})

	t.Run(`refresh after publish unlocks an open record`, func(t *testing.T) {
		api := &fakeAPI{}
		session := NewDraftSession(api, pendingRequisition())
		require.Nil(t, session.Accept(context.Background()))
		session.ApplyEdit(func(d *requisitionapimodels.AdvertDraft) { *d = validDraft() })
		require.Nil(t, session.Publish(context.Background()))
		require.Equal(t, false, session.IsFormMutable())

		refetched := pendingRequisition()
		refetched.Status = models.RequisitionStatusOpen
		session.Refresh(refetched)
		require.Equal(t, true, session.IsFormMutable())
	})
}
