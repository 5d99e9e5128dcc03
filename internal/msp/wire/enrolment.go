package wire

// EnrolmentApplication is the standard-coverage section of the document.
type EnrolmentApplication struct {
	Applicant  Applicant   `xml:"applicant"`
	Spouse     *Person     `xml:"spouse,omitempty"`
	Children   *Children   `xml:"children,omitempty"`
	Dependents *Dependents `xml:"dependents,omitempty"`
}

// Applicant is the enrolment applicant section.
type Applicant struct {
	Name            Name             `xml:"name"`
	AttachmentUUIDs *AttachmentUUIDs `xml:"attachmentUuids,omitempty"`
	BirthDate       string           `xml:"birthDate,omitempty"`
	Gender          string           `xml:"gender,omitempty"`

	AuthorizedByApplicant     YesOrNo `xml:"authorizedByApplicant,omitempty"`
	AuthorizedByApplicantDate string  `xml:"authorizedByApplicantDate,omitempty"`
	AuthorizedBySpouse        YesOrNo `xml:"authorizedBySpouse,omitempty"`

	MailingAddress   *Address `xml:"mailingAddress,omitempty"`
	ResidenceAddress Address  `xml:"residenceAddress"`

	Residency Residency `xml:"residency"`
	Telephone *uint64   `xml:"telephone,omitempty"`
}

// Person is a spouse or child entry within the enrolment section.
type Person struct {
	Name            Name             `xml:"name"`
	AttachmentUUIDs *AttachmentUUIDs `xml:"attachmentUuids,omitempty"`
	BirthDate       string           `xml:"birthDate,omitempty"`
	Gender          string           `xml:"gender,omitempty"`
	Residency       Residency        `xml:"residency"`
}

type Children struct {
	Child []Person `xml:"child"`
}

type Dependents struct {
	Dependent []Dependent `xml:"dependent"`
}

// Dependent is a child aged 19-24; it extends Person with schooling fields.
type Dependent struct {
	Person
	SchoolName              string   `xml:"schoolName,omitempty"`
	DepartDateSchoolOutside string   `xml:"departDateSchoolOutside,omitempty"`
	DateStudiesFinish       string   `xml:"dateStudiesFinish,omitempty"`
	SchoolAddress           *Address `xml:"schoolAddress,omitempty"`
}

// Residency captures the five residency sub-blocks the schema requires for
// every enrolment person.
type Residency struct {
	CitizenshipStatus CitizenshipStatus `xml:"citizenshipStatus"`
	LivedInBC         LivedInBC         `xml:"livedInBC"`
	OutsideBC         OutsideBC         `xml:"outsideBC"`
	WillBeAway        WillBeAway        `xml:"willBeAway"`
	PreviousCoverage  PreviousCoverage  `xml:"previousCoverage"`
}

// NewResidency returns a Residency with every mandatory Y/N field already
// set to "N". The mapper only ever flips facts to "Y"; the schema's
// never-unset requirement is guaranteed here rather than at each call site.
func NewResidency() Residency {
	return Residency{
		LivedInBC: LivedInBC{
			HasLivedInBC:    No,
			IsPermanentMove: No,
		},
		OutsideBC: OutsideBC{
			BeenOutsideBCMoreThan: No,
		},
		WillBeAway: WillBeAway{
			IsFullTimeStudent:  No,
			IsInBCAfterStudies: No,
		},
		PreviousCoverage: PreviousCoverage{
			HasPreviousCoverage: No,
		},
	}
}

type LivedInBC struct {
	HasLivedInBC          YesOrNo `xml:"hasLivedInBC"`
	IsPermanentMove       YesOrNo `xml:"isPermanentMove"`
	PrevHealthNumber      string  `xml:"prevHealthNumber,omitempty"`
	PrevProvinceOrCountry string  `xml:"prevProvinceOrCountry,omitempty"`
	RecentBCMoveDate      string  `xml:"recentBCMoveDate,omitempty"`
	RecentCanadaMoveDate  string  `xml:"recentCanadaMoveDate,omitempty"`
}

type OutsideBC struct {
	BeenOutsideBCMoreThan YesOrNo `xml:"beenOutsideBCMoreThan"`
	DepartureDate         string  `xml:"departureDate,omitempty"`
	ReturnDate            string  `xml:"returnDate,omitempty"`
	FamilyMemberReason    string  `xml:"familyMemberReason,omitempty"`
	Destination           string  `xml:"destination,omitempty"`
}

type WillBeAway struct {
	IsFullTimeStudent  YesOrNo `xml:"isFullTimeStudent"`
	IsInBCAfterStudies YesOrNo `xml:"isInBCafterStudies"`
	ArmedDischargeDate string  `xml:"armedDischargeDate,omitempty"`
}

type PreviousCoverage struct {
	HasPreviousCoverage YesOrNo `xml:"hasPreviousCoverage"`
	PrevPHN             *uint64 `xml:"prevPHN,omitempty"`
}
