package requisitionapimodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"talent-engine-backend/models"
	apimodels "talent-engine-backend/models/api"
)

func fieldsOf(fieldErrs []apimodels.FieldError) []string {
	fields := make([]string, 0, len(fieldErrs))
	for _, f := range fieldErrs {
		fields = append(fields, f.Field)
	}
	return fields
}

func TestAdvertDraftValidation(t *testing.T) {
	deadline := time.Now().Add(7 * 24 * time.Hour)
	complete := AdvertDraft{
		CompanyName:       "Acme Ltd",
		LocationType:      models.LocationTypeRemote,
		Description:       "Run the hiring pipeline.",
		Responsibilities:  []string{"Interview candidates"},
		DocumentsRequired: []string{"Resume"},
		DeadlineDate:      &deadline,
	}

	t.Run(`complete draft publishes clean`, func(t *testing.T) {
		require.Empty(t, complete.ValidateForPublish("Backend Engineer"))
	})

	t.Run(`empty draft reports every missing field`, func(t *testing.T) {
		fields := fieldsOf(AdvertDraft{}.ValidateForPublish(""))
		require.Contains(t, fields, "title")
		require.Contains(t, fields, "company_name")
		require.Contains(t, fields, "description")
		require.Contains(t, fields, "responsibilities")
		require.Contains(t, fields, "deadline_date")
		require.Contains(t, fields, "documents_required")
	})

	t.Run(`on-site adverts require an address`, func(t *testing.T) {
		draft := complete
		draft.LocationType = models.LocationTypeOnSite
		require.Contains(t, fieldsOf(draft.ValidateJobDetails("Backend Engineer")), "location")

		draft.Location = "1 Main Street"
		require.Empty(t, draft.ValidateJobDetails("Backend Engineer"))
	})

	t.Run(`whitespace-only responsibilities do not count`, func(t *testing.T) {
		draft := complete
		draft.Responsibilities = []string{"  ", ""}
		require.Contains(t, fieldsOf(draft.ValidateJobDetails("Backend Engineer")), "responsibilities")
	})

	t.Run(`duplicate document titles are flagged`, func(t *testing.T) {
		draft := complete
		draft.DocumentsRequired = []string{"Resume", "Resume"}
		require.Contains(t, fieldsOf(draft.ValidateDocuments()), "documents_required")
	})
}
