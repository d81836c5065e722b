package handlers

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"

	"printfeed/models"
	"printfeed/usecases"
)

// DiscordEventsHandler owns the discordgo session: it registers the event
// callbacks, maps SDK payloads to the strict raw event model and delegates
// to the notification pipeline. Events are handled one at a time in arrival
// order; a failed event never takes the session down.
type DiscordEventsHandler struct {
	discordSDKClient     *discordgo.Session
	selfUserID           string
	notificationsUseCase usecases.NotificationsUseCaseInterface
}

// NewDiscordEventsHandler registers the message callbacks and gateway
// intents on the given session. The session is not opened here - call
// StartBot.
func NewDiscordEventsHandler(
	session *discordgo.Session,
	selfUserID string,
	notificationsUseCase usecases.NotificationsUseCaseInterface,
) *DiscordEventsHandler {
	handler := &DiscordEventsHandler{
		discordSDKClient:     session,
		selfUserID:           selfUserID,
		notificationsUseCase: notificationsUseCase,
	}

	// Register event handlers
	session.AddHandler(handler.handleMessageCreatedEvent)
	session.AddHandler(handler.handleMessageUpdatedEvent)

	// Guild messages, direct messages and message content are all needed
	// to decide whether an event concerns the monitored user
	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	return handler
}

// StartBot opens the Discord connection and starts listening for events
func (h *DiscordEventsHandler) StartBot() error {
	if err := h.discordSDKClient.Open(); err != nil {
		return err
	}

	log.Printf("🤖 Discord listener is now running and waiting for messages")
	return nil
}

// StopBot gracefully closes the Discord connection
func (h *DiscordEventsHandler) StopBot() {
	h.discordSDKClient.Close()
}

// handleMessageCreatedEvent handles incoming Discord messages
func (h *DiscordEventsHandler) handleMessageCreatedEvent(s *discordgo.Session, m *discordgo.MessageCreate) {
	h.processMessage(m.Message, models.RawEventMessageCreated)
}

// handleMessageUpdatedEvent handles edited Discord messages. Discord also
// delivers partial update payloads (embed unfurls) with no author - those
// are dropped by the malformed-event check downstream.
func (h *DiscordEventsHandler) handleMessageUpdatedEvent(s *discordgo.Session, m *discordgo.MessageUpdate) {
	h.processMessage(m.Message, models.RawEventMessageUpdated)
}

func (h *DiscordEventsHandler) processMessage(m *discordgo.Message, kind models.RawEventKind) {
	if m == nil {
		return
	}

	// Cheap pre-filter: the monitored account's own messages can never
	// qualify, skip them before any lookups. The matcher guards this
	// again as its first rule.
	if m.Author != nil && m.Author.ID == h.selfUserID {
		return
	}

	log.Printf("📨 Discord %s event in guild %q, channel %s", kind, m.GuildID, m.ChannelID)

	event := mapToRawMessageEvent(m, kind)
	if err := h.notificationsUseCase.ProcessMessageEvent(context.Background(), event); err != nil {
		log.Printf("❌ Failed to process Discord message %s: %v", m.ID, err)
	}
}

// mapToRawMessageEvent maps a Discord SDK message to our raw event model.
// Fields the SDK omitted stay at their zero value; validation happens in
// the normalizer.
func mapToRawMessageEvent(m *discordgo.Message, kind models.RawEventKind) models.RawMessageEvent {
	event := models.RawMessageEvent{
		Kind:             kind,
		GuildID:          m.GuildID,
		ChannelID:        m.ChannelID,
		MessageID:        m.ID,
		Content:          m.Content,
		Timestamp:        m.Timestamp,
		MentionedRoleIDs: m.MentionRoles,
		MentionsEveryone: m.MentionEveryone,
	}

	if m.Author != nil {
		event.AuthorID = m.Author.ID
		event.AuthorDisplayName = displayName(m)
		event.AuthorAvatarURL = m.Author.AvatarURL("256")
	}

	for _, mentionedUser := range m.Mentions {
		event.MentionedUserIDs = append(event.MentionedUserIDs, mentionedUser.ID)
	}

	if m.MessageReference != nil {
		event.ReferencedMessageID = m.MessageReference.MessageID
		event.ReferencedChannelID = m.MessageReference.ChannelID
	}
	if m.ReferencedMessage != nil && m.ReferencedMessage.Author != nil {
		event.ReferencedAuthorID = m.ReferencedMessage.Author.ID
	}

	for _, att := range m.Attachments {
		event.Attachments = append(event.Attachments, models.MessageAttachment{
			Filename: att.Filename,
			URL:      att.URL,
		})
	}

	return event
}

// displayName prefers the guild nickname, then the global display name,
// then the account username.
func displayName(m *discordgo.Message) string {
	if m.Member != nil && m.Member.Nick != "" {
		return m.Member.Nick
	}
	if m.Author.GlobalName != "" {
		return m.Author.GlobalName
	}
	return m.Author.Username
}
