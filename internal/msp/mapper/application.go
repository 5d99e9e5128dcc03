package mapper

import (
	"fmt"

	"mspdirect/internal/msp/models"
	"mspdirect/internal/msp/wire"
	domainerrors "mspdirect/pkg/domain-errors"
)

// ErrUnsupportedContentType rejects attachments the intake service cannot
// type. Only JPEG and PDF are accepted.
var ErrUnsupportedContentType = domainerrors.New(domainerrors.CodeInvalidInput, "unsupported attachment content type")

// Document converts a domain application into a complete wire document,
// dispatching on the application kind. The default branch is unreachable for
// types constructed inside this module; it remains as a guard for any
// future kind added without a mapping.
func Document(app models.Application) (*wire.Document, error) {
	switch a := app.(type) {
	case *models.EnrolmentApplication:
		return enrolmentDocument(a)
	case *models.AssistanceApplication:
		return assistanceDocument(a)
	default:
		return nil, domainerrors.Newf(domainerrors.CodeMapping, "no mapping for application kind %q", app.Kind())
	}
}

func enrolmentDocument(from *models.EnrolmentApplication) (*wire.Document, error) {
	applicant := wire.Applicant{
		Name:             mapName(from.Applicant),
		AttachmentUUIDs:  mapAttachmentUUIDs(from.Applicant.Documents),
		ResidenceAddress: mapAddress(from.ResidentialAddress),
		Residency:        mapResidency(from.Applicant),
		Telephone:        digits(from.PhoneNumber),
	}
	if from.Applicant.DateOfBirth != nil {
		applicant.BirthDate = formatDate(*from.Applicant.DateOfBirth)
	}
	if from.Applicant.Gender != "" {
		applicant.Gender = string(from.Applicant.Gender)
	}

	applicant.AuthorizedByApplicant = wire.FromBool(from.AuthorizedByApplicant)
	if from.AuthorizedByApplicant {
		applicant.AuthorizedByApplicantDate = formatDate(from.AuthorizedByApplicantDate)
	}
	applicant.AuthorizedBySpouse = wire.FromBool(from.AuthorizedBySpouse)

	// The mailing address rides along only when it differs from the
	// residential one.
	if !from.MailingSameAsResidential {
		mailing := mapAddress(from.MailingAddress)
		applicant.MailingAddress = &mailing
	}

	enrolment := &wire.EnrolmentApplication{Applicant: applicant}

	if from.Spouse != nil {
		spouse := mapPerson(*from.Spouse)
		enrolment.Spouse = &spouse
	}

	// Partition children by relationship: under-19 into children, 19-24 into
	// dependents. An empty partition omits the section, not an empty list.
	var children []wire.Person
	var dependents []wire.Dependent
	for _, child := range from.Children {
		switch child.Relationship {
		case models.RelationshipChildUnder19:
			children = append(children, mapPerson(child))
		case models.RelationshipChild19To24:
			dependents = append(dependents, mapDependent(child))
		}
	}
	if len(children) > 0 {
		enrolment.Children = &wire.Children{Child: children}
	}
	if len(dependents) > 0 {
		enrolment.Dependents = &wire.Dependents{Dependent: dependents}
	}

	// Enrolment always carries an attachments section, even when empty.
	attachments, err := mapAttachments(from.AllImages())
	if err != nil {
		return nil, err
	}

	return &wire.Document{
		Application: wire.Application{
			UUID:                 from.UUID.String(),
			EnrolmentApplication: enrolment,
			Attachments:          attachments,
		},
	}, nil
}

func assistanceDocument(from *models.AssistanceApplication) (*wire.Document, error) {
	applicant := wire.AssistanceApplicant{
		Name:            mapName(from.Applicant),
		Financials:      mapFinancials(from),
		PHN:             digits(from.Applicant.PreviousPHN),
		PowerOfAttorney: wire.FromBool(from.HasPowerOfAttorney),
		SIN:             digits(from.Applicant.SIN),
		Telephone:       digits(from.PhoneNumber),
	}
	if from.Applicant.DateOfBirth != nil {
		applicant.BirthDate = formatDate(*from.Applicant.DateOfBirth)
	}
	if from.Applicant.Gender != "" {
		applicant.Gender = string(from.Applicant.Gender)
	}
	if len(from.PowerOfAttorneyDocs) > 0 {
		applicant.AttachmentUUIDs = mapAttachmentUUIDs(from.PowerOfAttorneyDocs)
	}
	mailing := mapAddress(from.MailingAddress)
	applicant.MailingAddress = &mailing

	assistance := &wire.AssistanceApplication{
		Applicant:             applicant,
		AuthorizedByApplicant: wire.FromBool(from.AuthorizedByApplicant),
		AuthorizedBySpouse:    wire.FromBool(from.AuthorizedBySpouse),
	}
	if !from.AuthorizedByApplicantDate.IsZero() {
		assistance.AuthorizedByApplicantDate = formatDate(from.AuthorizedByApplicantDate)
	}

	if from.HasSpouseOrCommonLaw && from.Spouse != nil {
		assistance.Spouse = &wire.AssistanceSpouse{
			Name:                     mapName(*from.Spouse),
			PHN:                      digits(from.Spouse.PreviousPHN),
			SIN:                      digits(from.Spouse.SIN),
			SpouseDeduction:          from.Eligibility.SpouseDeduction,
			SpouseSixtyFiveDeduction: from.Eligibility.SpouseSixtyFiveDeduction,
		}
	}

	// Assistance omits the attachments section entirely when there is
	// nothing to attach, unlike the enrolment path.
	var attachments *wire.Attachments
	if images := from.AllImages(); len(images) > 0 {
		var err error
		attachments, err = mapAttachments(images)
		if err != nil {
			return nil, err
		}
	}

	return &wire.Document{
		Application: wire.Application{
			UUID:                  from.UUID.String(),
			AssistanceApplication: assistance,
			Attachments:           attachments,
		},
	}, nil
}

// mapFinancials copies the eligibility figures. Optional source figures copy
// only when present; a nil source leaves the wire field unset rather than
// zero.
func mapFinancials(from *models.AssistanceApplication) wire.Financials {
	f := wire.Financials{
		TaxYear:          from.TaxYear,
		NumberOfTaxYears: from.NumberOfTaxYears,
	}

	switch from.AssistanceYear {
	case models.AssistanceYearCurrent:
		f.AssistanceYear = wire.AssistanceYearCurrentPA
	case models.AssistanceYearPreviousTwo:
		f.AssistanceYear = wire.AssistanceYearPreviousTwo
	case models.AssistanceYearMulti:
		f.AssistanceYear = wire.AssistanceYearMultiYear
	}

	f.AdjustedNetIncome = from.Eligibility.AdjustedNetIncome
	f.ChildDeduction = from.Eligibility.ChildDeduction
	f.Deductions = from.Eligibility.Deductions
	f.SixtyFiveDeduction = from.Eligibility.SixtyFiveDeduction
	f.TotalDeductions = from.Eligibility.TotalDeductions
	f.TotalNetIncome = from.Eligibility.TotalNetIncome

	if from.DisabilityDeduction != nil && from.DisabilityDeduction.IsPositive() {
		f.DisabilityDeduction = from.DisabilityDeduction
	}
	f.ChildCareExpense = from.ClaimedChildCareExpense
	f.NetIncome = from.NetIncomeLastYear
	if from.ChildrenCount != nil && *from.ChildrenCount > 0 {
		f.NumChildren = from.ChildrenCount
	}
	if from.NumDisabled > 0 {
		n := from.NumDisabled
		f.NumDisabled = &n
	}
	f.SpouseNetIncome = from.SpouseIncomeLine236
	f.UCCB = from.ReportedUCCBenefit
	f.DisabilitySavingsPlan = from.SpouseDSPAmount

	return f
}

// mapAttachments converts gathered images into the attachments section,
// tagging each as a supporting document. An unrecognized content type is a
// mapping error on both application paths.
func mapAttachments(images []models.Image) (*wire.Attachments, error) {
	out := &wire.Attachments{Attachment: make([]wire.Attachment, 0, len(images))}
	for _, img := range images {
		contentType, err := attachmentContentType(img.ContentType)
		if err != nil {
			return nil, err
		}
		out.Attachment = append(out.Attachment, wire.Attachment{
			AttachmentDocumentType: wire.AttachmentDocumentTypeSupport,
			AttachmentUUID:         img.UUID.String(),
			ContentType:            contentType,
		})
	}
	return out, nil
}

func attachmentContentType(contentType string) (string, error) {
	switch contentType {
	case "image/jpeg", "application/pdf":
		return contentType, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedContentType, contentType)
	}
}
