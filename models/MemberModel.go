package models

// Member is the resolved identity behind an authenticated request.
type Member struct {
	MemberID string `dynamodbav:"memberId" json:"memberId"`
	Email    string `dynamodbav:"email" json:"email"`
	Nickname string `dynamodbav:"nickname" json:"nickname"`
}
