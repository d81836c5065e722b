package discord

import (
	"github.com/stretchr/testify/mock"
)

// MockDiscordClient is a mock implementation of the clients.DiscordClient interface
type MockDiscordClient struct {
	mock.Mock
}

func (m *MockDiscordClient) GetGuildName(guildID string) (string, error) {
	args := m.Called(guildID)
	return args.String(0), args.Error(1)
}

func (m *MockDiscordClient) GetChannelName(channelID string) (string, error) {
	args := m.Called(channelID)
	return args.String(0), args.Error(1)
}

func (m *MockDiscordClient) GetMemberRoleIDs(guildID, userID string) ([]string, error) {
	args := m.Called(guildID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockDiscordClient) IsBroadcastSuppressed(channelID, authorID string) (bool, error) {
	args := m.Called(channelID, authorID)
	return args.Bool(0), args.Error(1)
}

func (m *MockDiscordClient) GetReplyAuthorID(channelID, messageID string) (string, error) {
	args := m.Called(channelID, messageID)
	return args.String(0), args.Error(1)
}

func (m *MockDiscordClient) GetRoleName(guildID, roleID string) (string, error) {
	args := m.Called(guildID, roleID)
	return args.String(0), args.Error(1)
}
