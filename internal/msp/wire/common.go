// Package wire defines the schema-shaped document transmitted to the MSP
// intake service. The types are passive: they mirror the external
// applicationTypes schema and carry no behavior beyond constructors that
// bake in required defaults.
package wire

// YesOrNo encodes a boolean fact as the literal "Y"/"N" the schema expects.
type YesOrNo string

const (
	Yes YesOrNo = "Y"
	No  YesOrNo = "N"
)

// FromBool converts a domain boolean into its wire encoding.
func FromBool(b bool) YesOrNo {
	if b {
		return Yes
	}
	return No
}

// CitizenshipType is the schema's citizenship classification.
type CitizenshipType string

const (
	CitizenshipCanadianCitizen   CitizenshipType = "CanadianCitizen"
	CitizenshipPermanentResident CitizenshipType = "PermanentResident"
	CitizenshipWorkPermit        CitizenshipType = "WorkPermit"
	CitizenshipStudyPermit       CitizenshipType = "StudyPermit"
	CitizenshipDiplomat          CitizenshipType = "Diplomat"
	CitizenshipVisitorPermit     CitizenshipType = "VisitorPermit"
)

type Name struct {
	FirstName  string `xml:"firstName,omitempty"`
	LastName   string `xml:"lastName,omitempty"`
	SecondName string `xml:"secondName,omitempty"`
}

type Address struct {
	AddressLine1    string `xml:"addressLine1,omitempty"`
	AddressLine2    string `xml:"addressLine2,omitempty"`
	AddressLine3    string `xml:"addressLine3,omitempty"`
	City            string `xml:"city,omitempty"`
	Country         string `xml:"country,omitempty"`
	PostalCode      string `xml:"postalCode,omitempty"`
	ProvinceOrState string `xml:"provinceOrState,omitempty"`
}

// AttachmentUUIDs lists the attachment identities a section references.
type AttachmentUUIDs struct {
	AttachmentUUID []string `xml:"attachmentUuid"`
}

type CitizenshipStatus struct {
	CitizenshipType CitizenshipType  `xml:"citizenshipType,omitempty"`
	AttachmentUUIDs *AttachmentUUIDs `xml:"attachmentUuids,omitempty"`
}
