package wire

import "github.com/shopspring/decimal"

// AssistanceYear is the schema tag for which tax years the application
// claims assistance over.
type AssistanceYear string

const (
	AssistanceYearCurrentPA   AssistanceYear = "CurrentPA"
	AssistanceYearPreviousTwo AssistanceYear = "PreviousTwo"
	AssistanceYearMultiYear   AssistanceYear = "MultiYear"
)

// AssistanceApplication is the premium-assistance section of the document.
type AssistanceApplication struct {
	Applicant AssistanceApplicant `xml:"applicant"`

	AuthorizedByApplicant     YesOrNo `xml:"authorizedByApplicant"`
	AuthorizedByApplicantDate string  `xml:"authorizedByApplicantDate,omitempty"`
	AuthorizedBySpouse        YesOrNo `xml:"authorizedBySpouse"`

	Spouse *AssistanceSpouse `xml:"spouse,omitempty"`
}

type AssistanceApplicant struct {
	Name            Name             `xml:"name"`
	AttachmentUUIDs *AttachmentUUIDs `xml:"attachmentUuids,omitempty"`
	BirthDate       string           `xml:"birthDate,omitempty"`
	Gender          string           `xml:"gender,omitempty"`

	Financials      Financials `xml:"financials"`
	MailingAddress  *Address   `xml:"mailingAddress,omitempty"`
	PHN             *uint64    `xml:"phn,omitempty"`
	PowerOfAttorney YesOrNo    `xml:"powerOfAttorney"`
	SIN             *uint64    `xml:"SIN,omitempty"`
	Telephone       *uint64    `xml:"telephone,omitempty"`
}

type AssistanceSpouse struct {
	Name                     Name             `xml:"name"`
	PHN                      *uint64          `xml:"phn,omitempty"`
	SIN                      *uint64          `xml:"SIN,omitempty"`
	SpouseDeduction          *decimal.Decimal `xml:"spouseDeduction,omitempty"`
	SpouseSixtyFiveDeduction *decimal.Decimal `xml:"spouseSixtyFiveDeduction,omitempty"`
}

// Financials carries the eligibility figures. Optional figures are pointers:
// a nil pointer leaves the element out entirely, which the intake service
// treats differently from an explicit zero.
type Financials struct {
	AdjustedNetIncome     *decimal.Decimal `xml:"adjustedNetIncome,omitempty"`
	AssistanceYear        AssistanceYear   `xml:"assistanceYear,omitempty"`
	ChildCareExpense      *decimal.Decimal `xml:"childCareExpense,omitempty"`
	ChildDeduction        *decimal.Decimal `xml:"childDeduction,omitempty"`
	Deductions            *decimal.Decimal `xml:"deductions,omitempty"`
	DisabilityDeduction   *decimal.Decimal `xml:"disabilityDeduction,omitempty"`
	DisabilitySavingsPlan *decimal.Decimal `xml:"disabilitySavingsPlan,omitempty"`
	NetIncome             *decimal.Decimal `xml:"netIncome,omitempty"`
	NumberOfTaxYears      int              `xml:"numberOfTaxYears,omitempty"`
	NumChildren           *int             `xml:"numChildren,omitempty"`
	NumDisabled           *int             `xml:"numDisabled,omitempty"`
	SixtyFiveDeduction    *decimal.Decimal `xml:"sixtyFiveDeduction,omitempty"`
	SpouseNetIncome       *decimal.Decimal `xml:"spouseNetIncome,omitempty"`
	TaxYear               int              `xml:"taxYear,omitempty"`
	TotalDeductions       *decimal.Decimal `xml:"totalDeductions,omitempty"`
	TotalNetIncome        *decimal.Decimal `xml:"totalNetIncome,omitempty"`
	UCCB                  *decimal.Decimal `xml:"uccb,omitempty"`
}
