package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind discriminates the two submission kinds the core supports.
type Kind string

const (
	KindEnrolment  Kind = "enrolment"
	KindAssistance Kind = "assistance"
)

// Application is the closed sum over the two application kinds. The mapper
// dispatches exhaustively on the concrete type; new kinds require a new
// branch there, which the unexported marker keeps inside this module.
type Application interface {
	Kind() Kind
	Base() *ApplicationBase
	// AllImages gathers every attachment image belonging to the application,
	// order preserved: applicant first, then spouse, then remaining members.
	AllImages() []Image

	isApplication()
}

// ApplicationBase carries the fields shared by both application kinds.
//
// Invariants:
//   - UUID identifies the submission and is preserved verbatim on the wire
//   - ReferenceNumber is empty until a successful submission writes it back
//   - the model is otherwise immutable for the duration of one submission
type ApplicationBase struct {
	UUID               uuid.UUID `json:"uuid"`
	AuthorizationToken string    `json:"authorization_token"`
	ReferenceNumber    string    `json:"reference_number,omitempty"`

	PhoneNumber string `json:"phone_number,omitempty"`

	AuthorizedByApplicant     bool      `json:"authorized_by_applicant"`
	AuthorizedByApplicantDate time.Time `json:"authorized_by_applicant_date,omitempty"`
	AuthorizedBySpouse        bool      `json:"authorized_by_spouse"`

	ResidentialAddress          Address `json:"residential_address"`
	MailingAddress              Address `json:"mailing_address,omitempty"`
	MailingSameAsResidential    bool    `json:"mailing_same_as_residential"`
}

func (b *ApplicationBase) Base() *ApplicationBase { return b }

// EnrolmentApplication is a standard MSP coverage enrolment: the applicant,
// an optional spouse, and any number of children and dependents.
type EnrolmentApplication struct {
	ApplicationBase

	Applicant Person   `json:"applicant"`
	Spouse    *Person  `json:"spouse,omitempty"`
	Children  []Person `json:"children,omitempty"`
}

func (a *EnrolmentApplication) Kind() Kind     { return KindEnrolment }
func (a *EnrolmentApplication) isApplication() {}

func (a *EnrolmentApplication) AllImages() []Image {
	images := append([]Image(nil), a.Applicant.Documents...)
	if a.Spouse != nil {
		images = append(images, a.Spouse.Documents...)
	}
	for _, child := range a.Children {
		images = append(images, child.Documents...)
	}
	return images
}

// AssistanceYearKind selects the wire tag for the assistance tax year.
type AssistanceYearKind string

const (
	AssistanceYearCurrent     AssistanceYearKind = "current_year"
	AssistanceYearPreviousTwo AssistanceYearKind = "previous_two_years"
	AssistanceYearMulti       AssistanceYearKind = "multi_year"
)

// Eligibility holds the income-deduction figures entered on the assistance
// form. Every field is optional; nil means the form left it blank and the
// wire document must leave the matching field unset rather than zero.
type Eligibility struct {
	AdjustedNetIncome        *decimal.Decimal `json:"adjusted_net_income,omitempty"`
	ChildDeduction           *decimal.Decimal `json:"child_deduction,omitempty"`
	Deductions               *decimal.Decimal `json:"deductions,omitempty"`
	SixtyFiveDeduction       *decimal.Decimal `json:"sixty_five_deduction,omitempty"`
	TotalDeductions          *decimal.Decimal `json:"total_deductions,omitempty"`
	TotalNetIncome           *decimal.Decimal `json:"total_net_income,omitempty"`
	SpouseDeduction          *decimal.Decimal `json:"spouse_deduction,omitempty"`
	SpouseSixtyFiveDeduction *decimal.Decimal `json:"spouse_sixty_five_deduction,omitempty"`
}

// AssistanceApplication is an income-based premium assistance application.
type AssistanceApplication struct {
	ApplicationBase

	Applicant Person  `json:"applicant"`
	Spouse    *Person `json:"spouse,omitempty"`

	HasSpouseOrCommonLaw bool `json:"has_spouse_or_common_law"`
	HasPowerOfAttorney   bool `json:"has_power_of_attorney"`

	PowerOfAttorneyDocs []Image `json:"power_of_attorney_docs,omitempty"`

	Eligibility Eligibility `json:"eligibility"`

	AssistanceYear   AssistanceYearKind `json:"assistance_year"`
	TaxYear          int                `json:"tax_year"`
	NumberOfTaxYears int                `json:"number_of_tax_years"`

	NetIncomeLastYear       *decimal.Decimal `json:"net_income_last_year,omitempty"`
	SpouseIncomeLine236     *decimal.Decimal `json:"spouse_income_line_236,omitempty"`
	ReportedUCCBenefit      *decimal.Decimal `json:"reported_uccb_line_117,omitempty"`
	SpouseDSPAmount         *decimal.Decimal `json:"spouse_dsp_amount_line_125,omitempty"`
	ClaimedChildCareExpense *decimal.Decimal `json:"claimed_child_care_expense_line_214,omitempty"`
	DisabilityDeduction     *decimal.Decimal `json:"disability_deduction,omitempty"`
	ChildrenCount           *int             `json:"children_count,omitempty"`
	NumDisabled             int              `json:"num_disabled,omitempty"`
}

func (a *AssistanceApplication) Kind() Kind     { return KindAssistance }
func (a *AssistanceApplication) isApplication() {}

func (a *AssistanceApplication) AllImages() []Image {
	images := append([]Image(nil), a.Applicant.Documents...)
	if a.Spouse != nil {
		images = append(images, a.Spouse.Documents...)
	}
	images = append(images, a.PowerOfAttorneyDocs...)
	return images
}
