package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderDoc(t *testing.T, resp *domain.ScheduleResponse, opts Options) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, resp, opts))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func sampleResponse() *domain.ScheduleResponse {
	score := 0.874
	return &domain.ScheduleResponse{
		Schedule: []domain.Semester{
			{Type: "Fall", Year: 2024, TotalCredits: 6, Classes: []domain.ScheduledClass{
				{Number: "CS 101", Name: "Intro", Credits: 3, CourseType: "major"},
				{Number: "CS 101", Name: "Intro (lab)", Credits: 3, CourseType: "major"},
				{Number: "EIL 110", Name: "Reading", CourseType: "eil/holokai"},
			}},
			{Type: "Winter", Year: 2025, Classes: []domain.ScheduledClass{
				{Number: "REL 200", Name: "Scripture", Credits: 2},
			}},
		},
		Improvements: []string{"Balanced load"},
		Metadata: &domain.ScheduleMetadata{
			Score:        &score,
			Improvements: []string{"Front-loaded major"},
		},
	}
}

func TestHTML_SummaryPanel(t *testing.T) {
	doc := renderDoc(t, sampleResponse(), Options{})

	assert.Equal(t, "6", doc.Find("#total-credits").Text())
	assert.Equal(t, "114", doc.Find("#electives-needed").Text())
	assert.Equal(t, "2", doc.Find("#total-semesters").Text())
	assert.Equal(t, "Winter 2025", doc.Find("#graduation-date").Text())
}

func TestHTML_SemesterCards(t *testing.T) {
	doc := renderDoc(t, sampleResponse(), Options{})

	cards := doc.Find(".semester-card")
	require.Equal(t, 2, cards.Length())

	fall := cards.Eq(0)
	assert.Equal(t, "Fall 2024", fall.Find(".semester-header").Text())
	assert.Equal(t, 2, fall.Find(".class-item").Length(), "repeated class numbers are shown once")
	assert.Equal(t, "Intro", fall.Find(".class-name").First().Text())
	assert.Equal(t, "eil", fall.Find(".class-tag").Eq(1).Text())
	assert.Equal(t, "3 cr", fall.Find(".class-credits").Eq(1).Text())
	assert.Equal(t, "Total: 6 credits", fall.Find(".semester-credits").Text())

	winter := cards.Eq(1)
	assert.Equal(t, "unknown", winter.Find(".class-tag").Text())
	assert.Equal(t, "Total: 2 credits", winter.Find(".semester-credits").Text(),
		"falls back to the class sum when totalCredits is unset")
}

func TestHTML_InsightsAndQuality(t *testing.T) {
	doc := renderDoc(t, sampleResponse(), Options{ExportHref: "schedule.json"})

	assert.Equal(t, "Schedule Insights", doc.Find(".improvements-container h3").Text())
	assert.Equal(t, "Balanced load", doc.Find(".improvements-container li").Text())
	assert.Equal(t, "Schedule Quality: 87%", doc.Find(".schedule-metadata h3").Text())
	assert.Equal(t, "Front-loaded major", doc.Find(".schedule-metadata p").Text())

	href, ok := doc.Find("a.export-button").Attr("href")
	require.True(t, ok)
	assert.Equal(t, "schedule.json", href)
}

func TestHTML_OptionalBlocksOmitted(t *testing.T) {
	resp := sampleResponse()
	resp.Improvements = nil
	resp.Metadata = nil

	doc := renderDoc(t, resp, Options{})
	assert.Zero(t, doc.Find(".improvements-container").Length())
	assert.Zero(t, doc.Find(".schedule-metadata").Length())
	assert.Zero(t, doc.Find(".export-button").Length())
}

func TestHTML_EmptySchedule(t *testing.T) {
	for _, resp := range []*domain.ScheduleResponse{nil, {}, {Schedule: []domain.Semester{}}} {
		doc := renderDoc(t, resp, Options{})
		assert.Equal(t, "Unable to Generate Schedule", doc.Find(".error-message h3").Text())
		assert.Zero(t, doc.Find("#summary").Length())
		assert.Zero(t, doc.Find(".semester-card").Length())
	}
}

func TestHTML_EscapesCatalogText(t *testing.T) {
	resp := &domain.ScheduleResponse{Schedule: []domain.Semester{{
		Type: "Fall", Year: 2024, TotalCredits: 3,
		Classes: []domain.ScheduledClass{{Number: "X 1", Name: "<script>alert(1)</script>"}},
	}}}

	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, resp, Options{}))
	assert.False(t, strings.Contains(buf.String(), "<script>alert"))
}
