package notifications

import (
	"slices"

	"github.com/samber/mo"

	"printfeed/models"
)

// Match decides whether a normalized message concerns the monitored user.
// Pure and deterministic: no I/O, no clock. selfRoleIDs is the user's role
// membership in the message's guild, resolved by the caller immediately
// before matching - membership differs per guild and changes over time.
//
// Rules are evaluated in priority order and the first satisfied one wins:
// direct mention, reply to self, role mention, broadcast mention, direct
// message. A message authored by the monitored user never matches.
func Match(msg models.NormalizedMessage, self models.SelfIdentity, selfRoleIDs []string) mo.Option[models.MatchResult] {
	if msg.Author.ID == self.UserID {
		return mo.None[models.MatchResult]()
	}

	if slices.Contains(msg.MentionedUserIDs, self.UserID) {
		return mo.Some(models.MatchResult{Reason: models.MatchReasonDirectMention})
	}

	if msg.RepliedToAuthorID != nil && *msg.RepliedToAuthorID == self.UserID {
		return mo.Some(models.MatchResult{Reason: models.MatchReasonReplyToSelf})
	}

	for _, roleID := range msg.MentionedRoleIDs {
		if slices.Contains(selfRoleIDs, roleID) {
			return mo.Some(models.MatchResult{Reason: models.MatchReasonRoleMention, RoleID: roleID})
		}
	}

	if msg.IsBroadcastMention {
		return mo.Some(models.MatchResult{Reason: models.MatchReasonBroadcastMention})
	}

	if msg.IsDirectMessage() {
		return mo.Some(models.MatchResult{Reason: models.MatchReasonDirectMessage})
	}

	return mo.None[models.MatchResult]()
}
