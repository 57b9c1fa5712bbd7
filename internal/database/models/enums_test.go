package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestStatus(t *testing.T) {
	testCases := []struct {
		status     RequestStatus
		valid      bool
		decision   bool
		terminal   bool
		toAccepted bool
	}{
		{RequestStatusPending, true, false, false, true},
		{RequestStatusAccepted, true, true, true, false},
		{RequestStatusDeclined, true, true, true, false},
		{RequestStatus("cancelled"), false, false, false, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.valid, tc.status.IsValid())
			assert.Equal(t, tc.decision, tc.status.IsDecision())
			assert.Equal(t, tc.terminal, tc.status.IsTerminal())
			assert.Equal(t, tc.toAccepted, tc.status.CanTransitionTo(RequestStatusAccepted))
		})
	}

	assert.False(t, RequestStatusPending.CanTransitionTo(RequestStatusPending))
	assert.True(t, RequestStatusPending.CanTransitionTo(RequestStatusDeclined))
	assert.False(t, RequestStatusAccepted.CanTransitionTo(RequestStatusDeclined))
}

func TestInvitationRole(t *testing.T) {
	assert.True(t, InvitationRoleAdmin.IsValid())
	assert.True(t, InvitationRoleMember.IsValid())
	assert.False(t, InvitationRole("leader").IsValid())

	assert.Equal(t, MembershipRoleAdmin, InvitationRoleAdmin.MembershipRole())
	assert.Equal(t, MembershipRoleMember, InvitationRoleMember.MembershipRole())
}

func TestTaskEnums(t *testing.T) {
	for _, s := range TaskStatuses {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, TaskStatus("blocked").IsValid())

	assert.True(t, TaskPriorityUrgent.IsValid())
	assert.False(t, TaskPriority("critical").IsValid())

	assert.True(t, ProjectStatusOnHold.IsValid())
	assert.False(t, ProjectStatus("inactive").IsValid())
}

func TestTaskIsSubtask(t *testing.T) {
	task := &Task{}
	assert.False(t, task.IsSubtask())

	parent := task.ID
	task.ParentID = &parent
	assert.True(t, task.IsSubtask())
}
