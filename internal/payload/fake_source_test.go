package payload

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/alexanderramin/degreeplan/internal/domain"
)

var errFakeFetch = errors.New("fake fetch failure")

type fakeSource struct {
	mu           sync.Mutex
	courses      map[int]*domain.Course
	classes      map[int]*domain.Class
	failCourse   map[int]bool
	failClasses  bool
	courseCalls  []int
	classCalls   map[int]int
	bulkRequests int
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		courses:    map[int]*domain.Course{},
		classes:    map[int]*domain.Class{},
		failCourse: map[int]bool{},
		classCalls: map[int]int{},
	}
}

func (f *fakeSource) Course(_ context.Context, id int) (*domain.Course, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.courseCalls = append(f.courseCalls, id)
	if f.failCourse[id] {
		return nil, errFakeFetch
	}
	c, ok := f.courses[id]
	if !ok {
		return nil, fmt.Errorf("course %d: %w", id, errFakeFetch)
	}
	cp := *c
	return &cp, nil
}

func (f *fakeSource) Class(_ context.Context, id int) (*domain.Class, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.classCalls[id]++
	c, ok := f.classes[id]
	if !ok {
		return nil, fmt.Errorf("class %d: %w", id, errFakeFetch)
	}
	cp := *c
	return &cp, nil
}

func (f *fakeSource) Classes(context.Context) ([]domain.Class, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bulkRequests++
	if f.failClasses {
		return nil, errFakeFetch
	}
	out := make([]domain.Class, 0, len(f.classes))
	for _, c := range f.classes {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeSource) classCallCount(id int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.classCalls[id]
}

func strPtr(s string) *string { return &s }

// seedCatalog registers three programs sharing the prerequisite class 900,
// plus the religion and English courses every build adds.
func seedCatalog(f *fakeSource) {
	f.classes[900] = &domain.Class{ID: 900, Name: "Writing", Number: "ENGL 101", Credits: 3,
		SemestersOffered: []string{"Fall", "Winter"}, Restrictions: "none", CourseID: 77}

	program := func(id int, holokai string, classID int) *domain.Course {
		return &domain.Course{
			ID: id, Name: fmt.Sprintf("Program %d", id), Type: "major", Holokai: strPtr(holokai),
			Sections: []domain.Section{{
				ID: id * 10, Name: "Core", CreditsRequired: 6, IsRequired: true,
				Classes: []domain.Class{{
					ID: classID, Name: "Class", Number: fmt.Sprintf("C%d", classID), Credits: 3,
					Prerequisites: []domain.ClassRef{domain.RefID(900)},
					Corequisites:  []domain.ClassRef{domain.RefClass(domain.Class{ID: 901, Number: "LAB 1"})},
					CourseID:      id,
				}},
			}},
		}
	}
	f.courses[10] = program(10, "Arts", 101)
	f.courses[20] = program(20, "Professional", 201)
	f.courses[30] = program(30, "Math", 301)
	f.courses[domain.ReligionCourseID] = &domain.Course{ID: domain.ReligionCourseID, Name: "Religion", Type: "religion"}
	f.courses[domain.FluentCourseID] = &domain.Course{ID: domain.FluentCourseID, Name: "Fluent", Type: "eil"}
	f.courses[domain.EIL1CourseID] = &domain.Course{ID: domain.EIL1CourseID, Name: "EIL 1", Type: "eil"}
}
