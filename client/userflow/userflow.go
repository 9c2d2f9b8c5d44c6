package userflow

import (
	"context"

	"talent-engine-backend/client/wizard"
	apimodels "talent-engine-backend/models/api"
	userapimodels "talent-engine-backend/models/api/user"
)

// Step keys of the user creation wizard, in order.
const (
	StepAccountType     = "account_type"
	StepPersonalDetails = "personal_details"
	StepModules         = "modules"
	StepCredentials     = "credentials"
)

// API is the slice of the service client the flow needs.
type API interface {
	CreateUser(ctx context.Context, data userapimodels.CreateUserData) (id string, err error)
}

// Flow is the 4-step user creation wizard. The terminal Continue submits
// the collected form as one multipart request.
type Flow struct {
	*wizard.Wizard[*userapimodels.CreateUserData]

	createdID string
}

// New builds the flow. ctx covers the whole screen lifetime and is used for
// the final submit.
func New(ctx context.Context, api API) *Flow {
	flow := &Flow{}
	form := &userapimodels.CreateUserData{}
	submit := func(form *userapimodels.CreateUserData) error {
		id, err := api.CreateUser(ctx, *form)
		if err != nil {
			return err
		}
		flow.createdID = id
		return nil
	}
	flow.Wizard = wizard.New(form, submit,
		wizard.Step[*userapimodels.CreateUserData]{
			Key: StepAccountType,
			Validate: func(form *userapimodels.CreateUserData) []apimodels.FieldError {
				return form.ValidateAccountType()
			},
		},
		wizard.Step[*userapimodels.CreateUserData]{
			Key: StepPersonalDetails,
			Validate: func(form *userapimodels.CreateUserData) []apimodels.FieldError {
				return form.ValidatePersonalDetails()
			},
		},
		wizard.Step[*userapimodels.CreateUserData]{
			Key: StepModules,
			Validate: func(form *userapimodels.CreateUserData) []apimodels.FieldError {
				return form.ValidateModules()
			},
		},
		wizard.Step[*userapimodels.CreateUserData]{
			Key: StepCredentials,
			Validate: func(form *userapimodels.CreateUserData) []apimodels.FieldError {
				return form.ValidateCredentials()
			},
		},
	)
	return flow
}

// CreatedID returns the id of the created user after a successful submit.
func (f *Flow) CreatedID() string {
	return f.createdID
}
