package testutil

import "github.com/alexanderramin/degreeplan/internal/domain"

// Sample catalog ids.
const (
	BiologyMajorID    = 12
	BusinessMajorID   = 13
	ArtMinorID        = 40
	AccountingMinorID = 41
	ChemistryMinorID  = 42
	SharedClassID     = 900
)

func strPtr(s string) *string { return &s }

// SeedSampleCatalog loads a small catalog: two majors, three minors in
// distinct Holokai categories, the religion core, the three English
// tracks and a shared prerequisite class.
func SeedSampleCatalog(s *CatalogServer) {
	s.AddClass(domain.Class{
		ID: SharedClassID, Name: "College Writing", Number: "ENGL 101", Credits: 3,
		SemestersOffered: []string{"Fall", "Winter", "Spring"}, Restrictions: "", CourseID: 99,
	})

	program := func(id int, name string, typ domain.CourseType, holokai string, classID int, number string) domain.Course {
		return domain.Course{
			ID: id, Name: name, Type: typ, Holokai: strPtr(holokai),
			Sections: []domain.Section{{
				ID: id * 10, Name: "Core", CreditsRequired: 3, IsRequired: true,
				Classes: []domain.Class{{
					ID: classID, Name: name + " Foundations", Number: number, Credits: 3,
					SemestersOffered: []string{"Fall", "Winter"},
					Prerequisites:    []domain.ClassRef{domain.RefID(SharedClassID)},
					CourseID:         id,
				}},
			}},
		}
	}

	s.AddCourse(program(BiologyMajorID, "Biology", domain.CourseMajor, "Math & Sciences", 120, "BIOL 120"))
	s.AddCourse(program(BusinessMajorID, "Business Management", domain.CourseMajor, "Professional Studies", 130, "BUS 130"))
	s.AddCourse(program(ArtMinorID, "Art", domain.CourseMinor, "Arts & Humanities", 400, "ART 100"))
	s.AddCourse(program(AccountingMinorID, "Accounting", domain.CourseMinor, "Professional Studies", 410, "ACCT 201"))
	s.AddCourse(program(ChemistryMinorID, "Chemistry", domain.CourseMinor, "Math & Sciences", 420, "CHEM 105"))

	s.AddCourse(domain.Course{ID: domain.ReligionCourseID, Name: "Religion Core", Type: domain.CourseReligion,
		Sections: []domain.Section{{ID: 20, Name: "Religion", CreditsRequired: 14, IsRequired: true,
			Classes: []domain.Class{{ID: 200, Name: "Jesus Christ and the Everlasting Gospel", Number: "REL 200", Credits: 2}}}}})
	s.AddCourse(domain.Course{ID: domain.EIL1CourseID, Name: "EIL Level 1", Type: domain.CourseEIL})
	s.AddCourse(domain.Course{ID: domain.EIL2CourseID, Name: "EIL Level 2", Type: domain.CourseEIL})
	s.AddCourse(domain.Course{ID: domain.FluentCourseID, Name: "Fluent", Type: domain.CourseEIL})
}

// SampleSchedule is a valid two-semester scheduler answer.
func SampleSchedule() []domain.Semester {
	return []domain.Semester{
		{Type: "Fall", Year: 2024, TotalCredits: 6, Classes: []domain.ScheduledClass{
			{Number: "BIOL 120", Name: "Biology Foundations", Credits: 3, CourseType: "major"},
			{Number: "ENGL 101", Name: "College Writing", Credits: 3, CourseType: "eil/holokai"},
		}},
		{Type: "Winter", Year: 2025, TotalCredits: 5, Classes: []domain.ScheduledClass{
			{Number: "ART 100", Name: "Art Foundations", Credits: 3, CourseType: "minor"},
			{Number: "REL 200", Name: "Jesus Christ and the Everlasting Gospel", Credits: 2, CourseType: "religion"},
		}},
	}
}
