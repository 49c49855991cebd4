package payload

import (
	"context"
	"fmt"

	"github.com/alexanderramin/degreeplan/internal/domain"
)

// MinimizeClass keeps only the essential class fields and drops any
// dependency lists.
func MinimizeClass(c domain.Class) domain.Class {
	offered := c.SemestersOffered
	if offered == nil {
		offered = []string{}
	}
	return domain.Class{
		ID:               c.ID,
		Name:             c.Name,
		Number:           c.Number,
		SemestersOffered: offered,
		Credits:          c.Credits,
		IsSeniorClass:    c.IsSeniorClass,
		Restrictions:     c.Restrictions,
		IsElective:       c.IsElective,
	}
}

// minimizeEmbedded trims a dependency that arrived inline. Inline objects
// without credits count as standard three-credit classes.
func minimizeEmbedded(c domain.Class) domain.Class {
	m := MinimizeClass(c)
	if m.Credits == 0 {
		m.Credits = domain.DefaultClassCredits
	}
	return m
}

// resolveDependencies turns prerequisite or corequisite references into
// embedded minimized classes. Bare ids are fetched through the cache.
func resolveDependencies(ctx context.Context, cache *ClassCache, refs []domain.ClassRef) ([]domain.ClassRef, error) {
	out := make([]domain.ClassRef, 0, len(refs))
	for _, ref := range refs {
		switch {
		case ref.Embedded() && ref.ID > 0:
			out = append(out, domain.RefClass(minimizeEmbedded(*ref.Class)))
		case !ref.Embedded() && ref.ID > 0:
			cls, err := cache.FetchClassData(ctx, ref.ID)
			if err != nil {
				return nil, err
			}
			out = append(out, domain.RefClass(cls))
		}
	}
	return out, nil
}

// MinimizeCourse trims a full course record to the payload field set and
// resolves every class dependency.
func MinimizeCourse(ctx context.Context, cache *ClassCache, full *domain.Course) (domain.Course, error) {
	course := domain.Course{
		ID:       full.ID,
		Name:     full.Name,
		Type:     full.Type,
		Holokai:  full.Holokai,
		Sections: make([]domain.Section, 0, len(full.Sections)),
	}
	if course.Holokai != nil && *course.Holokai == "" {
		course.Holokai = nil
	}

	for _, sec := range full.Sections {
		section := domain.Section{
			ID:                  sec.ID,
			Name:                sec.Name,
			CreditsRequired:     sec.CreditsRequired,
			IsRequired:          sec.IsRequired,
			CreditsNeededToTake: sec.CreditsNeededToTake,
			Classes:             make([]domain.Class, 0, len(sec.Classes)),
		}
		if section.CreditsNeededToTake != nil && *section.CreditsNeededToTake == 0 {
			section.CreditsNeededToTake = nil
		}

		for _, cls := range sec.Classes {
			prereqs, err := resolveDependencies(ctx, cache, cls.Prerequisites)
			if err != nil {
				return domain.Course{}, fmt.Errorf("class %d prerequisites: %w", cls.ID, err)
			}
			coreqs, err := resolveDependencies(ctx, cache, cls.Corequisites)
			if err != nil {
				return domain.Course{}, fmt.Errorf("class %d corequisites: %w", cls.ID, err)
			}
			m := MinimizeClass(cls)
			m.Prerequisites = prereqs
			m.Corequisites = coreqs
			section.Classes = append(section.Classes, m)
		}
		course.Sections = append(course.Sections, section)
	}
	return course, nil
}
