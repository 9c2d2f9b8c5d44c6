package userflow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"talent-engine-backend/models"
	userapimodels "talent-engine-backend/models/api/user"
)

type fakeAPI struct {
	createCalls int
	received    userapimodels.CreateUserData
}

func (f *fakeAPI) CreateUser(ctx context.Context, data userapimodels.CreateUserData) (string, error) {
	f.createCalls++
	f.received = data
	return "user-1", nil
}

func fillThroughModules(flow *Flow) {
	flow.Form.AccountType = models.AccountTypeClient
	flow.Form.FirstName = "Ada"
	flow.Form.LastName = "Lovelace"
	flow.Form.ModuleIDs = []string{"talent-engine"}
}

func TestUserFlow(t *testing.T) {
	t.Run(`short password blocks submission on the credentials step`, func(t *testing.T) {
		api := &fakeAPI{}
		flow := New(context.Background(), api)
		fillThroughModules(flow)

		require.Equal(t, true, flow.GoTo(StepCredentials))
		flow.Form.Email = "ada@example.com"
		flow.Form.Username = "ada"
		flow.Form.Password = "1234567"

		err := flow.Continue()
		require.NotNil(t, err)
		require.Equal(t, "Password must be at least 8 characters long", flow.ErrorFor("password"))
		require.Equal(t, StepCredentials, flow.ActiveStep())
		require.Equal(t, 0, api.createCalls)
	})

	t.Run(`staff accounts require employment details`, func(t *testing.T) {
		flow := New(context.Background(), &fakeAPI{})
		flow.Form.AccountType = models.AccountTypeStaff
		flow.Form.FirstName = "Ada"
		flow.Form.LastName = "Lovelace"

		require.Equal(t, true, flow.GoTo(StepPersonalDetails))
		require.Equal(t, false, flow.GoTo(StepModules))
		require.NotEmpty(t, flow.ErrorFor("profile.phone"))
		require.NotEmpty(t, flow.ErrorFor("profile.department"))
		require.NotEmpty(t, flow.ErrorFor("profile.job_role"))
	})

	t.Run(`completed walk submits the collected form once`, func(t *testing.T) {
		api := &fakeAPI{}
		flow := New(context.Background(), api)
		fillThroughModules(flow)
		flow.Form.Email = "ada@example.com"
		flow.Form.Username = "ada"
		flow.Form.Password = "long-enough"

		require.Nil(t, flow.Continue()) // account type -> personal details
		require.Nil(t, flow.Continue()) // personal details -> modules
		require.Nil(t, flow.Continue()) // modules -> credentials
		require.Nil(t, flow.Continue()) // terminal submit

		require.Equal(t, 1, api.createCalls)
		require.Equal(t, "ada", api.received.Username)
		require.Equal(t, []string{"talent-engine"}, api.received.ModuleIDs)
		require.Equal(t, "user-1", flow.CreatedID())
	})

	t.Run(`back from credentials never validates`, func(t *testing.T) {
		flow := New(context.Background(), &fakeAPI{})
		fillThroughModules(flow)
		require.Equal(t, true, flow.GoTo(StepCredentials))

		flow.Back()
		require.Equal(t, StepModules, flow.ActiveStep())
		require.Empty(t, flow.FieldErrors())
	})
}
