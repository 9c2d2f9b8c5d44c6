package wizard

import (
	"testing"

	"github.com/stretchr/testify/require"
	apimodels "talent-engine-backend/models/api"
)

type testForm struct {
	Name  string
	Email string
}

func nameStep() Step[*testForm] {
	return Step[*testForm]{
		Key: "name",
		Validate: func(form *testForm) []apimodels.FieldError {
			if form.Name == "" {
				return []apimodels.FieldError{{Field: "name", Message: "Name is required."}}
			}
			return nil
		},
	}
}

func emailStep() Step[*testForm] {
	return Step[*testForm]{
		Key: "email",
		Validate: func(form *testForm) []apimodels.FieldError {
			if form.Email == "" {
				return []apimodels.FieldError{{Field: "email", Message: "Email is required."}}
			}
			return nil
		},
	}
}

func TestWizard(t *testing.T) {
	t.Run(`forward navigation blocked by invalid current step`, func(t *testing.T) {
		w := New(&testForm{}, nil, nameStep(), emailStep())
		moved := w.GoTo("email")
		require.Equal(t, false, moved)
		require.Equal(t, "name", w.ActiveStep())
		require.Len(t, w.FieldErrors(), 1)
		require.Equal(t, "name", w.FieldErrors()[0].Field)
		require.Equal(t, "Name is required.", w.ErrorFor("name"))
		require.NotEmpty(t, w.Banner())
	})

	t.Run(`forward navigation passes once the step is valid`, func(t *testing.T) {
		w := New(&testForm{}, nil, nameStep(), emailStep())
		w.Form.Name = "Ada"
		moved := w.GoTo("email")
		require.Equal(t, true, moved)
		require.Equal(t, "email", w.ActiveStep())
		require.Empty(t, w.FieldErrors())
	})

	t.Run(`backward navigation never validates`, func(t *testing.T) {
		w := New(&testForm{Name: "Ada"}, nil, nameStep(), emailStep())
		require.Equal(t, true, w.GoTo("email"))

		// invalidate the now-current step, going back must still succeed
		w.Form.Email = ""
		w.Back()
		require.Equal(t, "name", w.ActiveStep())
		require.Empty(t, w.FieldErrors())
		require.Empty(t, w.Banner())
	})

	t.Run(`continue on terminal step validates then submits`, func(t *testing.T) {
		submitted := false
		submit := func(form *testForm) error {
			submitted = true
			return nil
		}
		w := New(&testForm{Name: "Ada"}, submit, nameStep(), emailStep())
		require.Equal(t, nil, w.Continue())
		require.Equal(t, "email", w.ActiveStep())

		err := w.Continue()
		require.NotNil(t, err)
		require.Equal(t, false, submitted)
		require.Equal(t, "Email is required.", w.ErrorFor("email"))

		w.Form.Email = "ada@example.com"
		require.Nil(t, w.Continue())
		require.Equal(t, true, submitted)
	})

	t.Run(`structured submit error maps onto fields`, func(t *testing.T) {
		submit := func(form *testForm) error {
			return apimodels.ValidationError{Fields: []apimodels.FieldError{
				{Field: "email", Message: "A user with this email already exists."},
			}}
		}
		w := New(&testForm{Name: "Ada", Email: "ada@example.com"}, submit, nameStep(), emailStep())
		require.Equal(t, true, w.GoTo("email"))
		err := w.Continue()
		require.NotNil(t, err)
		require.Equal(t, "A user with this email already exists.", w.ErrorFor("email"))
	})
}
