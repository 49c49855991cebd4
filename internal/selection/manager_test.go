package selection

import (
	"testing"

	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_FlowsAreIndependent(t *testing.T) {
	m := NewManager()
	credits := m.Switch(domain.FlowCredits)
	require.NoError(t, credits.Select(Major, Pick{CourseID: 1, Holokai: arts}))

	semesters := m.State(domain.FlowSemesters)
	assert.False(t, semesters.Filled(Major))
	assert.Same(t, credits, m.Current())
}

func TestManager_SwitchResetsOtherFlow(t *testing.T) {
	m := NewManager()
	credits := m.Switch(domain.FlowCredits)
	require.NoError(t, credits.Select(Major, Pick{CourseID: 1, Holokai: arts}))

	semesters := m.Switch(domain.FlowSemesters)
	require.NoError(t, semesters.Select(Major, Pick{CourseID: 2, Holokai: prof}))

	assert.Equal(t, domain.FlowSemesters, m.Active())
	assert.False(t, credits.Filled(Major))
	assert.True(t, semesters.Filled(Major))
}

func TestManager_Reset(t *testing.T) {
	m := NewManager()
	s := m.Switch(domain.FlowSemesters)
	require.NoError(t, s.Select(Major, Pick{CourseID: 1, Holokai: arts}))

	m.Reset()
	assert.Nil(t, m.Current())
	assert.False(t, s.Filled(Major))
}
