package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	dbmodels "talent-engine-backend/models/db"
)

type Provider interface {
	ExportRequisitionList(list []dbmodels.Requisition) (*bytes.Buffer, error)
	ExportApplicationList(list []dbmodels.JobApplication) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var requisitionHeaders = []string{"Code", "Job title", "Status", "Requested date", "Company", "Location", "Deadline", "Published"}
var applicationHeaders = []string{"Applicant", "Email", "Phone", "Vacancy", "Source", "Applied", "Status"}

func (i impl) ExportRequisitionList(list []dbmodels.Requisition) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("xlsx file close failed")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, requisitionHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "xlsx header write failed")
	}
	for _, rec := range list {
		row++
		deadline := ""
		if rec.DeadlineDate != nil {
			deadline = rec.DeadlineDate.Format("02.01.2006")
		}
		published := "No"
		if rec.PublishStatus {
			published = "Yes"
		}
		values := []interface{}{
			rec.JobRequisitionCode,
			rec.Title,
			rec.Status.ToHuman(),
			rec.RequestedDate.Format("02.01.2006"),
			rec.CompanyName,
			rec.Location,
			deadline,
			published,
		}
		for k, value := range values {
			if err = writeColumn(f, sheet, k+1, row, value); err != nil {
				return nil, errors.Wrap(err, "xlsx data write failed")
			}
		}
	}
	f.SetSheetName(sheet, "Requisitions")
	return f.WriteToBuffer()
}

func (i impl) ExportApplicationList(list []dbmodels.JobApplication) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("xlsx file close failed")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, applicationHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "xlsx header write failed")
	}
	for _, rec := range list {
		row++
		vacancy := ""
		if rec.Requisition != nil {
			vacancy = rec.Requisition.Title
		}
		values := []interface{}{
			rec.ApplicantName,
			rec.ApplicantEmail,
			rec.Phone,
			vacancy,
			rec.Source,
			rec.AppliedAt.Format("02.01.2006"),
			rec.Status,
		}
		for k, value := range values {
			if err = writeColumn(f, sheet, k+1, row, value); err != nil {
				return nil, errors.Wrap(err, "xlsx data write failed")
			}
		}
	}
	f.SetSheetName(sheet, "Applications")
	return f.WriteToBuffer()
}
