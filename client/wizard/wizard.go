package wizard

import (
	"github.com/pkg/errors"
	apimodels "talent-engine-backend/models/api"
)

// Validator checks one step of the form. A nil or empty result means the
// step is valid.
type Validator[F any] func(form F) []apimodels.FieldError

type Step[F any] struct {
	Key      string
	Validate Validator[F]
}

// Wizard drives an ordered multi-step form. Moving forward validates the
// current step; moving backward never does. The terminal Continue runs the
// submit action instead of navigating.
type Wizard[F any] struct {
	Form F

	steps       []Step[F]
	active      int
	fieldErrors []apimodels.FieldError
	banner      string
	submit      func(form F) error
}

func New[F any](form F, submit func(form F) error, steps ...Step[F]) *Wizard[F] {
	return &Wizard[F]{
		Form:   form,
		steps:  steps,
		submit: submit,
	}
}

func (w *Wizard[F]) ActiveStep() string {
	return w.steps[w.active].Key
}

func (w *Wizard[F]) FieldErrors() []apimodels.FieldError {
	return w.fieldErrors
}

// ErrorFor returns the message attached to a field, empty when the field is
// clean.
func (w *Wizard[F]) ErrorFor(field string) string {
	for _, f := range w.fieldErrors {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

func (w *Wizard[F]) Banner() string {
	return w.banner
}

func (w *Wizard[F]) indexOf(key string) int {
	for idx, step := range w.steps {
		if step.Key == key {
			return idx
		}
	}
	return -1
}

// GoTo navigates to the named step. Forward navigation runs the current
// step's validator and stays put on failure; backward navigation always
// succeeds and clears errors.
func (w *Wizard[F]) GoTo(key string) bool {
	target := w.indexOf(key)
	if target < 0 {
		return false
	}
	if target > w.active && !w.validateCurrent() {
		return false
	}
	w.active = target
	w.clearErrors()
	return true
}

// Continue moves to the next step, or on the terminal step validates it and
// runs the submit action.
func (w *Wizard[F]) Continue() error {
	if w.active < len(w.steps)-1 {
		w.GoTo(w.steps[w.active+1].Key)
		return nil
	}
	if !w.validateCurrent() {
		return apimodels.ValidationError{Fields: w.fieldErrors}
	}
	if w.submit == nil {
		return errors.New("no submit action configured")
	}
	err := w.submit(w.Form)
	if err != nil {
		w.applySubmitError(err)
		return err
	}
	return nil
}

// Back unconditionally moves to the previous step.
func (w *Wizard[F]) Back() {
	if w.active > 0 {
		w.active--
	}
	w.clearErrors()
}

func (w *Wizard[F]) validateCurrent() bool {
	validate := w.steps[w.active].Validate
	if validate == nil {
		return true
	}
	fieldErrs := validate(w.Form)
	if len(fieldErrs) != 0 {
		w.fieldErrors = fieldErrs
		w.banner = "Please correct the highlighted fields."
		return false
	}
	w.clearErrors()
	return true
}

type fieldErrorCarrier interface {
	FieldErrors() []apimodels.FieldError
}

// applySubmitError maps a structured server error onto the form fields.
// Unscoped errors only set the banner.
func (w *Wizard[F]) applySubmitError(err error) {
	var vErr apimodels.ValidationError
	if errors.As(err, &vErr) {
		w.fieldErrors = vErr.Fields
		w.banner = "Please correct the highlighted fields."
		return
	}
	var carrier fieldErrorCarrier
	if errors.As(err, &carrier) && len(carrier.FieldErrors()) != 0 {
		w.fieldErrors = carrier.FieldErrors()
		w.banner = "Please correct the highlighted fields."
		return
	}
	w.banner = err.Error()
}

func (w *Wizard[F]) clearErrors() {
	w.fieldErrors = nil
	w.banner = ""
}
