package apimodels

import "strings"

type Response struct {
	Status  string       `json:"status"`            //fail/success
	Message string       `json:"message,omitempty"` //error message
	Data    interface{}  `json:"data,omitempty"`    //response payload
	Fields  []FieldError `json:"fields,omitempty"`  //field scoped validation errors
}

type ScrollerResponse struct {
	Response
	RowCount int64 `json:"row_count,omitempty"` //total rows matching the filter
}

// FieldError is the structured field-to-message error contract shared by
// client and server. Validation never relies on parsing message text.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

func NewFieldErrors(message string, fields []FieldError) Response {
	return Response{
		Status:  "fail",
		Message: message,
		Fields:  fields,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

func NewScrollerResponse(data interface{}, rowCount int64) ScrollerResponse {
	return ScrollerResponse{
		Response: Response{
			Status: "success",
			Data:   data,
		},
		RowCount: rowCount,
	}
}

type Pagination struct {
	Limit int `json:"limit"` // rows per page
	Page  int `json:"page"`  // page number (1,2,3..)
}

func (r Pagination) Validate() error {
	return nil
}

func (r Pagination) GetPage() (page, limit int) {
	page = 1
	limit = 10
	if r.Page > 0 {
		page = r.Page
	}
	if r.Limit > 0 {
		limit = r.Limit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// ValidationError carries structured field errors through an error return
// so handlers can answer with a field-mapped payload instead of one opaque
// message string.
type ValidationError struct {
	Fields []FieldError
}

func (e ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

// IDsRequest is the bulk operation body: soft delete, restore, purge.
type IDsRequest struct {
	IDs []string `json:"ids"`
}

func (r IDsRequest) Validate() error {
	return nil
}
