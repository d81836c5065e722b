package models

// MatchReason is the single reported reason a message qualified for
// printing. When multiple reasons apply, the highest-priority one wins:
// DirectMention, ReplyToSelf, RoleMention, BroadcastMention, DirectMessage.
type MatchReason string

const (
	MatchReasonDirectMention    MatchReason = "direct_mention"
	MatchReasonReplyToSelf      MatchReason = "reply_to_self"
	MatchReasonRoleMention      MatchReason = "role_mention"
	MatchReasonBroadcastMention MatchReason = "broadcast_mention"
	MatchReasonDirectMessage    MatchReason = "direct_message"
)

// MatchResult is the outcome of a successful match.
type MatchResult struct {
	Reason MatchReason
	// RoleID is the matched role for RoleMention results, empty otherwise
	RoleID string
}
