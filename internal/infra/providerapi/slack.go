package providerapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"devfriend/internal/domain/service"
)

const (
	slackAPIBaseURL = "https://slack.com/api"
	// slackMaxLimit is the largest page size the Web API accepts.
	slackMaxLimit = 1000
)

// slackClientFactory builds Slack Web API clients.
type slackClientFactory struct {
	baseURL string
}

// NewSlackClientFactory is the constructor for slackClientFactory.
func NewSlackClientFactory() service.SlackClientFactory {
	return &slackClientFactory{baseURL: slackAPIBaseURL}
}

// New builds a client authenticated with one bot or user token.
func (f *slackClientFactory) New(token string) service.SlackClient {
	return &slackClient{
		baseURL: f.baseURL,
		token:   token,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type slackClient struct {
	baseURL string
	token   string
	client  *http.Client
}

// Team fetches workspace metadata.
func (c *slackClient) Team(ctx context.Context) (*service.SlackTeam, error) {
	var response struct {
		slackEnvelope
		Team struct {
			ID     string `json:"id"`
			Name   string `json:"name"`
			Domain string `json:"domain"`
		} `json:"team"`
	}
	if err := c.call(ctx, "team.info", nil, &response); err != nil {
		return nil, err
	}

	return &service.SlackTeam{
		ID:     response.Team.ID,
		Name:   response.Team.Name,
		Domain: response.Team.Domain,
	}, nil
}

// Channels lists conversations visible to the token.
func (c *slackClient) Channels(ctx context.Context, limit int) ([]*service.SlackChannel, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(clampSlackLimit(limit)))
	params.Set("types", "public_channel,private_channel")

	var response struct {
		slackEnvelope
		Channels []struct {
			ID         string `json:"id"`
			Name       string `json:"name"`
			IsPrivate  bool   `json:"is_private"`
			IsMember   bool   `json:"is_member"`
			NumMembers int    `json:"num_members"`
		} `json:"channels"`
	}
	if err := c.call(ctx, "conversations.list", params, &response); err != nil {
		return nil, err
	}

	channels := make([]*service.SlackChannel, 0, len(response.Channels))
	for _, ch := range response.Channels {
		channels = append(channels, &service.SlackChannel{
			ID:         ch.ID,
			Name:       ch.Name,
			IsPrivate:  ch.IsPrivate,
			IsMember:   ch.IsMember,
			NumMembers: ch.NumMembers,
		})
	}

	return channels, nil
}

// History lists recent messages from one conversation.
func (c *slackClient) History(ctx context.Context, channelID string, limit int) ([]*service.SlackMessage, error) {
	params := url.Values{}
	params.Set("channel", channelID)
	params.Set("limit", strconv.Itoa(clampSlackLimit(limit)))

	var response struct {
		slackEnvelope
		Messages []struct {
			User string `json:"user"`
			Text string `json:"text"`
			TS   string `json:"ts"`
		} `json:"messages"`
	}
	if err := c.call(ctx, "conversations.history", params, &response); err != nil {
		return nil, err
	}

	messages := make([]*service.SlackMessage, 0, len(response.Messages))
	for _, m := range response.Messages {
		messages = append(messages, &service.SlackMessage{
			User:      m.User,
			Text:      m.Text,
			Timestamp: m.TS,
		})
	}

	return messages, nil
}

// slackEnvelope is the ok/error wrapper every Web API response carries.
type slackEnvelope struct {
	OK        bool   `json:"ok"`
	ErrorCode string `json:"error"`
}

func (e *slackEnvelope) check() error {
	if !e.OK {
		return errors.Errorf("slack api error: %s", e.ErrorCode)
	}

	return nil
}

type slackChecker interface {
	check() error
}

func (c *slackClient) call(ctx context.Context, method string, params url.Values, out any) error {
	endpoint := c.baseURL + "/" + method
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "create request")
	}

	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "slack %s request failed", method)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return errors.Errorf("slack api returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response")
	}

	if checker, ok := out.(slackChecker); ok {
		return checker.check()
	}

	return nil
}

func clampSlackLimit(limit int) int {
	if limit <= 0 {
		return 100
	}
	if limit > slackMaxLimit {
		return slackMaxLimit
	}

	return limit
}
