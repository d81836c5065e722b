package notifications

import (
	"context"
	"errors"
	"fmt"
	"log"

	"printfeed/alerts"
	"printfeed/clients"
	"printfeed/core"
	"printfeed/models"
)

// NotificationsUseCase runs the notification pipeline for one event at a
// time: normalize, match, format, dispatch. It holds no state across events
// beyond its immutable configuration.
type NotificationsUseCase struct {
	discordClient clients.DiscordClient
	printerClient clients.PrinterClient
	self          models.SelfIdentity
	printerWidth  int
}

// NewNotificationsUseCase creates a new instance of NotificationsUseCase
func NewNotificationsUseCase(
	discordClient clients.DiscordClient,
	printerClient clients.PrinterClient,
	self models.SelfIdentity,
	printerWidth int,
) *NotificationsUseCase {
	return &NotificationsUseCase{
		discordClient: discordClient,
		printerClient: printerClient,
		self:          self,
		printerWidth:  printerWidth,
	}
}

// ProcessMessageEvent handles one raw message event to completion. Pipeline
// errors are handled locally per policy: malformed events and undecidable
// matches are dropped, only dispatch failures propagate to the caller's
// log. The listener must survive every return path.
func (u *NotificationsUseCase) ProcessMessageEvent(ctx context.Context, event models.RawMessageEvent) error {
	log.Printf("📨 Processing %s event %s from user %s", event.Kind, event.MessageID, event.AuthorID)

	if event.AuthorID == u.self.UserID {
		log.Printf("🔍 Message %s authored by the monitored user - ignoring", event.MessageID)
		return nil
	}

	msg, err := u.Normalize(ctx, event)
	if err != nil {
		if errors.Is(err, core.ErrMalformedEvent) {
			log.Printf("⚠️ Dropping malformed event %s: %v", event.MessageID, err)
			return nil
		}
		return fmt.Errorf("failed to normalize event %s: %w", event.MessageID, err)
	}

	selfRoleIDs := []string{}
	if msg.Origin != nil {
		roleIDs, err := u.discordClient.GetMemberRoleIDs(msg.Origin.GuildID, u.self.UserID)
		if err != nil {
			if len(msg.MentionedRoleIDs) > 0 {
				// Role mentions present and membership unknown: the match
				// cannot be decided either way. Fail closed, skip.
				log.Printf("❌ Role lookup failed with role mentions present - skipping message %s: %v",
					msg.MessageID, err)
				return nil
			}
			log.Printf("⚠️ Role lookup failed for guild %s - proceeding without roles: %v",
				msg.Origin.GuildID, err)
		} else {
			selfRoleIDs = roleIDs
		}
	}

	maybeMatch := Match(msg, u.self, selfRoleIDs)
	if !maybeMatch.IsPresent() {
		log.Printf("🔍 Message %s does not concern user %s - ignoring", msg.MessageID, u.self.UserID)
		return nil
	}
	match := maybeMatch.MustGet()
	log.Printf("🔔 Message %s matched (%s)", msg.MessageID, match.Reason)

	roleName := ""
	if match.Reason == models.MatchReasonRoleMention {
		name, err := u.discordClient.GetRoleName(msg.Origin.GuildID, match.RoleID)
		if err != nil {
			log.Printf("⚠️ Could not resolve name of role %s: %v", match.RoleID, err)
		} else {
			roleName = name
		}
	}

	fmt.Println(EchoLine(msg, match))

	job := Format(msg, match, roleName, u.printerWidth)
	receiptID := core.NewID("rcpt")
	log.Printf("🖨️ Dispatching receipt %s for message %s", receiptID, msg.MessageID)

	if err := u.printerClient.PrintReceipt(ctx, job); err != nil {
		alerts.PrinterFailure(receiptID, err)
		return fmt.Errorf("failed to print receipt %s: %w", receiptID, err)
	}

	log.Printf("✅ Printed receipt %s for message %s", receiptID, msg.MessageID)
	return nil
}
