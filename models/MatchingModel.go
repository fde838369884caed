package models

import "time"

// MatchStatus is stored as its string value in DynamoDB and in API payloads.
type MatchStatus string

const (
	MatchHosting   MatchStatus = "MATCH_HOSTING"
	MatchCancel    MatchStatus = "MATCH_CANCEL"
	MatchSuccess   MatchStatus = "MATCH_SUCCESS"
	MatchCompleted MatchStatus = "MATCH_COMPLETED"

	// Stand-by flow statuses. A request/confirm between two members counts as
	// an ongoing match for duplicate prevention.
	MatchRequested MatchStatus = "MATCH_REQUESTED"
	MatchConfirmed MatchStatus = "MATCH_CONFIRMED"
)

// OngoingStatuses are the non-terminal statuses checked when preventing a
// second simultaneous match between the same two members.
var OngoingStatuses = []MatchStatus{MatchHosting, MatchRequested, MatchConfirmed}

// Ongoing reports whether the status counts as a non-terminal match.
func (s MatchStatus) Ongoing() bool {
	for _, o := range OngoingStatuses {
		if s == o {
			return true
		}
	}
	return false
}

// Matching represents one member's offer to be matched with another.
type Matching struct {
	MatchID       string      `dynamodbav:"matchId" json:"matchId"`
	Latitude      float64     `dynamodbav:"latitude" json:"latitude"`
	Longitude     float64     `dynamodbav:"longitude" json:"longitude"`
	Status        MatchStatus `dynamodbav:"matchStatus" json:"matchStatus"`
	HostMemberID  string      `dynamodbav:"hostMemberId" json:"hostMemberId"`
	HostEmail     string      `dynamodbav:"hostEmail" json:"hostEmail"`
	GuestMemberID string      `dynamodbav:"guestMemberId,omitempty" json:"guestMemberId,omitempty"`
	GuestEmail    string      `dynamodbav:"guestEmail,omitempty" json:"guestEmail,omitempty"`
	CreatedAt     time.Time   `dynamodbav:"createdAt" json:"createdAt"`

	// HostMember is attached for display on some read paths; never persisted.
	HostMember *Member `dynamodbav:"-" json:"hostMember,omitempty"`
}

// MatchingStandBy is a pending request from a third party against a hosted
// match. Deleted in bulk when the hosted match is cancelled.
type MatchingStandBy struct {
	StandByID     string `dynamodbav:"standById" json:"standById"`
	MatchID       string `dynamodbav:"matchId" json:"matchId"`
	HostMemberID  string `dynamodbav:"hostMemberId" json:"hostMemberId"`
	GuestMemberID string `dynamodbav:"guestMemberId" json:"guestMemberId"`
	Status        string `dynamodbav:"standByStatus" json:"standByStatus"`
}
