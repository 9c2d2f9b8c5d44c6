package userapimodels

import (
	"strings"

	"talent-engine-backend/models"
	apimodels "talent-engine-backend/models/api"
	dbmodels "talent-engine-backend/models/db"
)

type ProfileData struct {
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Department   string `json:"department"`
	JobRole      string `json:"job_role"`
	EmployeeCode string `json:"employee_code"`
}

type DocumentData struct {
	Title    string `json:"title"`
	FileName string `json:"file_name"`
	File     []byte `json:"-"`
}

// CreateUserData mirrors the 4-step user creation wizard: account type,
// personal/employment details, module permissions, login credentials.
// Sent to the server as a flattened multipart form.
type CreateUserData struct {
	AccountType models.AccountType `json:"account_type"`
	FirstName   string             `json:"first_name"`
	LastName    string             `json:"last_name"`
	Profile     ProfileData        `json:"profile"`
	ModuleIDs   []string           `json:"modules"`
	Email       string             `json:"email"`
	Username    string             `json:"username"`
	Password    string             `json:"password"`
	IsAdmin     bool               `json:"is_admin"`
	Documents   []DocumentData     `json:"documents"`
}

func (r CreateUserData) ValidateAccountType() []apimodels.FieldError {
	fieldErrs := []apimodels.FieldError{}
	if !r.AccountType.IsValid() {
		fieldErrs = append(fieldErrs, apimodels.FieldError{Field: "account_type", Message: "Account type must be Staff or Client."})
	}
	return fieldErrs
}

// ValidatePersonalDetails requires employment fields only for Staff
// accounts.
func (r CreateUserData) ValidatePersonalDetails() []apimodels.FieldError {
	fieldErrs := []apimodels.FieldError{}
	if len(strings.TrimSpace(r.FirstName)) == 0 {
		fieldErrs = append(fieldErrs, apimodels.FieldError{Field: "first_name", Message: "First name is required."})
	}
	if len(strings.TrimSpace(r.LastName)) == 0 {
		fieldErrs = append(fieldErrs, apimodels.FieldError{Field: "last_name", Message: "Last name is required."})
	}
	if r.AccountType == models.AccountTypeStaff {
		if len(strings.TrimSpace(r.Profile.Phone)) == 0 {
			fieldErrs = append(fieldErrs, apimodels.FieldError{Field: "profile.phone", Message: "Phone number is required for staff accounts."})
		}
		if len(strings.TrimSpace(r.Profile.Department)) == 0 {
			fieldErrs = append(fieldErrs, apimodels.FieldError{Field: "profile.department", Message: "Department is required for staff accounts."})
		}
		if len(strings.TrimSpace(r.Profile.JobRole)) == 0 {
			fieldErrs = append(fieldErrs, apimodels.FieldError{Field: "profile.job_role", Message: "Job role is required for staff accounts."})
		}
	}
	return fieldErrs
}

func (r CreateUserData) ValidateModules() []apimodels.FieldError {
	fieldErrs := []apimodels.FieldError{}
	if len(r.ModuleIDs) == 0 {
		fieldErrs = append(fieldErrs, apimodels.FieldError{Field: "modules", Message: "At least one module must be selected."})
	}
	return fieldErrs
}

func (r CreateUserData) ValidateCredentials() []apimodels.FieldError {
	fieldErrs := []apimodels.FieldError{}
	if len(strings.TrimSpace(r.Email)) == 0 || !strings.Contains(r.Email, "@") {
		fieldErrs = append(fieldErrs, apimodels.FieldError{Field: "email", Message: "A valid email address is required."})
	}
	if len(strings.TrimSpace(r.Username)) == 0 {
		fieldErrs = append(fieldErrs, apimodels.FieldError{Field: "username", Message: "Username is required."})
	}
	if len(r.Password) < 8 {
		fieldErrs = append(fieldErrs, apimodels.FieldError{Field: "password", Message: "Password must be at least 8 characters long"})
	}
	return fieldErrs
}

// Validate runs every wizard step check; used server-side where the form
// arrives in one request.
func (r CreateUserData) Validate() error {
	fieldErrs := r.ValidateAccountType()
	fieldErrs = append(fieldErrs, r.ValidatePersonalDetails()...)
	fieldErrs = append(fieldErrs, r.ValidateModules()...)
	fieldErrs = append(fieldErrs, r.ValidateCredentials()...)
	if len(fieldErrs) != 0 {
		return apimodels.ValidationError{Fields: fieldErrs}
	}
	return nil
}

type UserView struct {
	ID          string             `json:"id"`
	Email       string             `json:"email"`
	Username    string             `json:"username"`
	FirstName   string             `json:"first_name"`
	LastName    string             `json:"last_name"`
	AccountType models.AccountType `json:"account_type"`
	Role        models.UserRole    `json:"role"`
	RoleName    string             `json:"role_name"`
	IsActive    bool               `json:"is_active"`
	Profile     ProfileData        `json:"profile"`
	ModuleIDs   []string           `json:"modules"`
}

func UserConvert(rec dbmodels.TenantUser) UserView {
	view := UserView{
		ID:          rec.ID,
		Email:       rec.Email,
		Username:    rec.Username,
		FirstName:   rec.FirstName,
		LastName:    rec.LastName,
		AccountType: rec.AccountType,
		Role:        rec.Role,
		RoleName:    rec.Role.ToHuman(),
		IsActive:    rec.IsActive,
		Profile: ProfileData{
			Phone:        rec.Phone,
			Address:      rec.Address,
			Department:   rec.Department,
			JobRole:      rec.JobRole,
			EmployeeCode: rec.EmployeeCode,
		},
	}
	for _, module := range rec.Modules {
		view.ModuleIDs = append(view.ModuleIDs, module.ID)
	}
	return view
}

type UpdateUserData struct {
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	IsAdmin   bool        `json:"is_admin"`
	Profile   ProfileData `json:"profile"`
	ModuleIDs []string    `json:"modules"`
}
