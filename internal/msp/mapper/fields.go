// Package mapper converts the domain model into the wire document the MSP
// intake service expects. Every function is pure: the domain model is read
// but never modified, and each call builds fresh wire values.
package mapper

import (
	"strings"
	"time"

	"mspdirect/internal/msp/models"
	"mspdirect/internal/msp/wire"
	strutil "mspdirect/pkg/platform/strings"
)

// wireDateFormat renders every date on the wire document.
const wireDateFormat = time.DateOnly

func formatDate(t time.Time) string { return t.Format(wireDateFormat) }

// digits normalizes a phone/SIN/PHN string to its numeric value. Strings
// with no digits map to nil, leaving the wire field unset.
func digits(s string) *uint64 {
	n, ok := strutil.DigitsUint64(s)
	if !ok {
		return nil
	}
	return &n
}

func mapName(p models.Person) wire.Name {
	return wire.Name{
		FirstName:  p.FirstName,
		SecondName: p.MiddleName,
		LastName:   p.LastName,
	}
}

func mapAddress(a models.Address) wire.Address {
	out := wire.Address{
		AddressLine1:    a.AddressLine1,
		AddressLine2:    a.AddressLine2,
		AddressLine3:    a.AddressLine3,
		City:            a.City,
		Country:         a.Country,
		ProvinceOrState: a.Province,
	}
	if a.PostalCode != "" {
		out.PostalCode = strings.ReplaceAll(strings.ToUpper(a.PostalCode), " ", "")
	}
	return out
}

// mapAttachmentUUIDs lists image identities in their original order. The
// returned value is never nil; an empty document list yields an empty list.
func mapAttachmentUUIDs(images []models.Image) *wire.AttachmentUUIDs {
	ids := make([]string, 0, len(images))
	for _, img := range images {
		ids = append(ids, img.UUID.String())
	}
	return &wire.AttachmentUUIDs{AttachmentUUID: ids}
}

// mapResidency builds the five-block residency subtree for one person.
// NewResidency pre-sets every mandatory Y/N field to "N"; this function only
// flips facts to "Y" and fills optional fields that the form captured.
func mapResidency(p models.Person) wire.Residency {
	r := wire.NewResidency()

	switch p.Status {
	case models.StatusCitizenAdult:
		r.CitizenshipStatus.CitizenshipType = wire.CitizenshipCanadianCitizen
	case models.StatusPermanentResident:
		r.CitizenshipStatus.CitizenshipType = wire.CitizenshipPermanentResident
	case models.StatusTemporaryResident:
		switch p.Activity {
		case models.ActivityWorkingInBC:
			r.CitizenshipStatus.CitizenshipType = wire.CitizenshipWorkPermit
		case models.ActivityStudyingInBC:
			r.CitizenshipStatus.CitizenshipType = wire.CitizenshipStudyPermit
		case models.ActivityDiplomat:
			r.CitizenshipStatus.CitizenshipType = wire.CitizenshipDiplomat
		default:
			// Visiting, unset, or anything unrecognized falls back to a
			// visitor permit.
			r.CitizenshipStatus.CitizenshipType = wire.CitizenshipVisitorPermit
		}
	}
	r.CitizenshipStatus.AttachmentUUIDs = mapAttachmentUUIDs(p.Documents)

	r.LivedInBC.HasLivedInBC = wire.FromBool(p.LivedInBCSinceBirth)
	r.LivedInBC.IsPermanentMove = wire.FromBool(p.MadePermanentMoveToBC)
	r.LivedInBC.PrevHealthNumber = p.HealthNumberFromOtherProvince
	r.LivedInBC.PrevProvinceOrCountry = p.MovedFromProvinceOrCountry
	if p.ArrivalToBC != nil {
		r.LivedInBC.RecentBCMoveDate = formatDate(*p.ArrivalToBC)
	}
	if p.ArrivalToCanada != nil {
		r.LivedInBC.RecentCanadaMoveDate = formatDate(*p.ArrivalToCanada)
	}

	if rec := p.OutOfBCRecord; rec != nil {
		r.OutsideBC.BeenOutsideBCMoreThan = wire.Yes
		if rec.DepartureDate != nil {
			r.OutsideBC.DepartureDate = formatDate(*rec.DepartureDate)
		}
		if rec.ReturnDate != nil {
			r.OutsideBC.ReturnDate = formatDate(*rec.ReturnDate)
		}
		r.OutsideBC.FamilyMemberReason = rec.Reason
		r.OutsideBC.Destination = rec.Location
	}

	r.WillBeAway.IsFullTimeStudent = wire.FromBool(p.FullTimeStudent)
	r.WillBeAway.IsInBCAfterStudies = wire.FromBool(p.InBCAfterStudies)
	if p.DischargeDate != nil {
		r.WillBeAway.ArmedDischargeDate = formatDate(*p.DischargeDate)
	}

	if p.HasPreviousBCPhn {
		r.PreviousCoverage.HasPreviousCoverage = wire.Yes
		r.PreviousCoverage.PrevPHN = digits(p.PreviousPHN)
	}

	return r
}

// mapPerson converts a spouse or child into an enrolment person entry.
func mapPerson(p models.Person) wire.Person {
	out := wire.Person{
		Name:            mapName(p),
		AttachmentUUIDs: mapAttachmentUUIDs(p.Documents),
		Residency:       mapResidency(p),
	}
	if p.DateOfBirth != nil {
		out.BirthDate = formatDate(*p.DateOfBirth)
	}
	if p.Gender != "" {
		out.Gender = string(p.Gender)
	}
	return out
}

// mapDependent extends the person conversion with the schooling fields a
// child aged 19-24 carries.
func mapDependent(p models.Person) wire.Dependent {
	out := wire.Dependent{Person: mapPerson(p)}
	out.SchoolName = p.SchoolName
	if p.StudiesDepartureDate != nil {
		out.DepartDateSchoolOutside = formatDate(*p.StudiesDepartureDate)
	}
	if p.StudiesFinishedDate != nil {
		out.DateStudiesFinish = formatDate(*p.StudiesFinishedDate)
	}
	schoolAddress := mapAddress(p.SchoolAddress)
	out.SchoolAddress = &schoolAddress
	return out
}
