package providerapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlackClient_Team(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/team.info", r.URL.Path)
		assert.Equal(t, "Bearer xoxb-abc", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"team":{"id":"T1","name":"devfriend","domain":"devfriend-hq"}}`))
	}))
	defer server.Close()

	factory := &slackClientFactory{baseURL: server.URL}
	client := factory.New("xoxb-abc")

	team, err := client.Team(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "T1", team.ID)
	assert.Equal(t, "devfriend", team.Name)
	assert.Equal(t, "devfriend-hq", team.Domain)
}

func TestSlackClient_Channels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/conversations.list", r.URL.Path)
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		assert.Equal(t, "public_channel,private_channel", r.URL.Query().Get("types"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"channels":[
			{"id":"C1","name":"general","is_private":false,"is_member":true,"num_members":8},
			{"id":"C2","name":"incidents","is_private":true,"is_member":false,"num_members":3}
		]}`))
	}))
	defer server.Close()

	factory := &slackClientFactory{baseURL: server.URL}
	client := factory.New("xoxb-abc")

	channels, err := client.Channels(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, channels, 2)
	assert.Equal(t, "general", channels[0].Name)
	assert.True(t, channels[1].IsPrivate)
	assert.Equal(t, 3, channels[1].NumMembers)
}

func TestSlackClient_Channels_ClampsLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1000", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"channels":[]}`))
	}))
	defer server.Close()

	factory := &slackClientFactory{baseURL: server.URL}
	client := factory.New("xoxb-abc")

	_, err := client.Channels(context.Background(), 5000)
	require.NoError(t, err)
}

func TestSlackClient_History(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/conversations.history", r.URL.Path)
		assert.Equal(t, "C1", r.URL.Query().Get("channel"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"messages":[{"user":"U1","text":"deploy done","ts":"1725000000.000100"}]}`))
	}))
	defer server.Close()

	factory := &slackClientFactory{baseURL: server.URL}
	client := factory.New("xoxb-abc")

	messages, err := client.History(context.Background(), "C1", 10)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "U1", messages[0].User)
	assert.Equal(t, "deploy done", messages[0].Text)
	assert.Equal(t, "1725000000.000100", messages[0].Timestamp)
}

func TestSlackClient_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":false,"error":"invalid_auth"}`))
	}))
	defer server.Close()

	factory := &slackClientFactory{baseURL: server.URL}
	client := factory.New("xoxb-revoked")

	_, err := client.Team(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid_auth")
}
