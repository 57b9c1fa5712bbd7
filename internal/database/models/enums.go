package models

import "slices"

// RequestStatus is the lifecycle state shared by join requests, leave requests and invitations
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusDeclined RequestStatus = "declined"
)

// requestTransitions lists the states reachable from each state; terminal states have no entry
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusPending: {RequestStatusAccepted, RequestStatusDeclined},
}

// IsValid checks if the RequestStatus is valid
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusAccepted, RequestStatusDeclined:
		return true
	}
	return false
}

// IsDecision reports whether s is a status a resolver may choose
func (s RequestStatus) IsDecision() bool {
	return s == RequestStatusAccepted || s == RequestStatusDeclined
}

// IsTerminal reports whether no further transition is possible from s
func (s RequestStatus) IsTerminal() bool {
	return s.IsValid() && len(requestTransitions[s]) == 0
}

// CanTransitionTo checks the transition table for s -> to
func (s RequestStatus) CanTransitionTo(to RequestStatus) bool {
	return slices.Contains(requestTransitions[s], to)
}

// MembershipRole represents the role of a user within a team
type MembershipRole string

const (
	MembershipRoleLeader MembershipRole = "leader"
	MembershipRoleAdmin  MembershipRole = "admin"
	MembershipRoleMember MembershipRole = "member"
)

// IsValid checks if the MembershipRole is valid
func (r MembershipRole) IsValid() bool {
	switch r {
	case MembershipRoleLeader, MembershipRoleAdmin, MembershipRoleMember:
		return true
	}
	return false
}

// MembershipStatus represents whether a membership grants access
type MembershipStatus string

const (
	MembershipStatusActive   MembershipStatus = "active"
	MembershipStatusInactive MembershipStatus = "inactive"
)

// InvitationRole is the role an invitee receives on acceptance
type InvitationRole string

const (
	InvitationRoleAdmin  InvitationRole = "admin"
	InvitationRoleMember InvitationRole = "member"
)

// IsValid checks if the InvitationRole is valid
func (r InvitationRole) IsValid() bool {
	return r == InvitationRoleAdmin || r == InvitationRoleMember
}

// MembershipRole maps the invitation role onto the team membership role
func (r InvitationRole) MembershipRole() MembershipRole {
	if r == InvitationRoleAdmin {
		return MembershipRoleAdmin
	}
	return MembershipRoleMember
}

// ProjectStatus represents the status of a project
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusArchived  ProjectStatus = "archived"
)

// IsValid checks if the ProjectStatus is valid
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusOnHold, ProjectStatusCompleted, ProjectStatusArchived:
		return true
	}
	return false
}

// TaskStatus represents the board column of a task
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusReview     TaskStatus = "review"
	TaskStatusDone       TaskStatus = "done"
)

// TaskStatuses lists task statuses in board order
var TaskStatuses = []TaskStatus{TaskStatusTodo, TaskStatusInProgress, TaskStatusReview, TaskStatusDone}

// IsValid checks if the TaskStatus is valid
func (s TaskStatus) IsValid() bool {
	return slices.Contains(TaskStatuses, s)
}

// TaskPriority represents the urgency of a task
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

// IsValid checks if the TaskPriority is valid
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent:
		return true
	}
	return false
}

// NotificationType identifies what a notification is about
type NotificationType string

const (
	NotificationJoinRequest          NotificationType = "join_request"
	NotificationJoinRequestResponse  NotificationType = "join_request_response"
	NotificationLeaveRequest         NotificationType = "leave_request"
	NotificationLeaveRequestResponse NotificationType = "leave_request_response"
	NotificationTeamInvitation       NotificationType = "team_invitation"
	NotificationTaskAssigned         NotificationType = "task_assigned"
	NotificationCommentAdded         NotificationType = "comment_added"
)
