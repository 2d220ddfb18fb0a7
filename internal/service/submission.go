package service

import (
	"strings"

	apperrors "assessment-portal-backend/internal/errors"
)

// SubmissionForm is the validated shape of one assessment submission.
// It is constructed once at the handler boundary from the multipart form;
// pointer fields distinguish "absent from the submission" from "present
// but empty", which drives the sparse facility patch.
type SubmissionForm struct {
	OrganizationName string `validate:"required"`
	Project          string `validate:"required"`
	FacilityType     string `validate:"required"`

	StreetAddress      *string
	Status             *string
	InternetType       *string
	ISPName            *string
	ContractExpiration *string
	SubscribedSpeed    *string

	MonthlyInternetCost     *float64
	MonthlyVoiceCost        *float64
	MonthlyOtherServiceCost *float64

	Question1Speed        string
	Question2Reliability  string
	Question3Support      string
	Question4Cost         string
	Question5Sufficient   string
	Question6FutureNeeds  string
	Question7Limitations  string
	Question8Improvements string
}

// formFieldNames maps struct fields back to the submitted form field names
// so validation failures name the field the caller actually sent.
var formFieldNames = map[string]string{
	"OrganizationName": "organizationName",
	"Project":          "project",
	"FacilityType":     "facilityType",
}

// ParseSubscribedSpeed splits a "<download>/<upload>" value into its two
// halves. Both halves must be present; a missing separator or an empty
// half fails with a MalformedInputError.
func ParseSubscribedSpeed(value string) (download, upload string, err error) {
	download, upload, found := strings.Cut(value, "/")
	if !found {
		return "", "", apperrors.NewMalformedInputError("subscribedSpeed", "expected <download>/<upload>")
	}
	download = strings.TrimSpace(download)
	upload = strings.TrimSpace(upload)
	if download == "" || upload == "" {
		return "", "", apperrors.NewMalformedInputError("subscribedSpeed", "download and upload are both required")
	}
	return download, upload, nil
}
