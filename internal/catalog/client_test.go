package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []CallEvent
}

func (o *recordingObserver) OnCallComplete(e CallEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func newTestClient(t *testing.T, h http.HandlerFunc) (Client, *recordingObserver) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	obs := &recordingObserver{}
	return NewClient(Config{BaseURL: srv.URL + "/", FetchTimeout: time.Second}, obs), obs
}

func TestClient_BasicCourses(t *testing.T) {
	client, obs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/courses/basic", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Write([]byte(`[{"id":1,"course_name":"Biology","course_type":"major","holokai":"Math & Sciences"}]`))
	})

	got, err := client.BasicCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Biology", got[0].Name)
	assert.Equal(t, domain.CourseType("major"), got[0].Type)

	require.Len(t, obs.events, 1)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, http.StatusOK, obs.events[0].Status)
}

func TestClient_CourseRequestsEssentialFields(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/courses/12", r.URL.Path)
		assert.Equal(t, "essential", r.URL.Query().Get("fields"))
		w.Write([]byte(`{"id":12,"course_name":"Accounting","course_type":"minor","sections":[
			{"id":1,"section_name":"Core","credits_required":9,"is_required":true,"classes":[
				{"id":100,"class_name":"Intro","class_number":"ACCT 201","credits":3,"prerequisites":[7,{"id":8,"class_number":"MATH 100"}]}
			]}
		]}`))
	})

	c, err := client.Course(context.Background(), 12)
	require.NoError(t, err)
	assert.Nil(t, c.Holokai)
	require.Len(t, c.Sections, 1)
	cls := c.Sections[0].Classes[0]
	require.Len(t, cls.Prerequisites, 2)
	assert.False(t, cls.Prerequisites[0].Embedded())
	assert.True(t, cls.Prerequisites[1].Embedded())
}

func TestClient_ClassNotFound(t *testing.T) {
	client, obs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := client.Class(context.Background(), 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "fetching class 99")
	assert.Equal(t, "HTTP_404", obs.events[0].ErrorCode)
}

func TestClient_Unreachable(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://127.0.0.1:1", FetchTimeout: time.Second}, nil)
	_, err := client.Classes(context.Background())
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestClient_GenerateSchedule_Success(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req domain.ScheduleRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "credits-based", req.Preferences.Approach)
		require.Len(t, req.CourseData, 1)

		w.Write([]byte(`{"schedule":[{"type":"Fall","year":2024,"classes":[{"class_number":"C101","credits":3}],"totalCredits":3}],
			"improvements":["Balanced load"],"metadata":{"score":0.82}}`))
	})

	resp, err := client.GenerateSchedule(context.Background(), &domain.ScheduleRequest{
		CourseData:  []domain.Course{{ID: 1}},
		Preferences: domain.Preferences{Approach: "credits-based"},
	}, 0)
	require.NoError(t, err)
	require.Len(t, resp.Schedule, 1)
	assert.Equal(t, "Fall 2024", resp.Schedule[0].Label())
	assert.Equal(t, []string{"Balanced load"}, resp.Improvements)
	require.NotNil(t, resp.Metadata.Score)
	assert.InDelta(t, 0.82, *resp.Metadata.Score, 0.0001)
}

func TestClient_GenerateSchedule_MissingScheduleIsNil(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"No classes to schedule","metadata":{"success":false}}`))
	})

	resp, err := client.GenerateSchedule(context.Background(), &domain.ScheduleRequest{}, 0)
	require.NoError(t, err)
	assert.Nil(t, resp.Schedule)
	assert.Equal(t, "No classes to schedule", resp.Error)
}

func TestClient_GenerateSchedule_EmptyScheduleIsNotNil(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"schedule":[]}`))
	})

	resp, err := client.GenerateSchedule(context.Background(), &domain.ScheduleRequest{}, 0)
	require.NoError(t, err)
	assert.NotNil(t, resp.Schedule)
	assert.Empty(t, resp.Schedule)
}

func TestClient_GenerateSchedule_ServerErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"internal error", http.StatusInternalServerError, "boom", ErrSchedulerUnavailable},
		{"gateway timeout text", http.StatusBadGateway, "upstream timeout", ErrTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			_, err := client.GenerateSchedule(context.Background(), &domain.ScheduleRequest{}, 0)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestClient_GenerateSchedule_OtherStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})
	_, err := client.GenerateSchedule(context.Background(), &domain.ScheduleRequest{}, 0)
	require.Error(t, err)
	assert.Equal(t, "server error: 400", err.Error())
}

func TestClient_GenerateSchedule_Timeout(t *testing.T) {
	client, obs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{"schedule":[]}`))
	})

	_, err := client.GenerateSchedule(context.Background(), &domain.ScheduleRequest{}, 50*time.Millisecond)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Equal(t, "TIMEOUT", obs.events[0].ErrorCode)
}

func TestClient_GenerateSchedule_CancelledIsNotTimeout(t *testing.T) {
	release := make(chan struct{})
	client, obs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	t.Cleanup(func() { close(release) })

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	_, err := client.GenerateSchedule(ctx, &domain.ScheduleRequest{}, 5*time.Second)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrTimeout)
	require.Len(t, obs.events, 1)
	assert.Equal(t, "CANCELED", obs.events[0].ErrorCode)
}
