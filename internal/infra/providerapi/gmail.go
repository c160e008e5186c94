// Package providerapi implements the read-side clients for connected
// services. Each client authenticates with credentials resolved from a
// stored secret.
package providerapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"devfriend/internal/domain/service"
)

const gmailBaseURL = "https://gmail.googleapis.com/gmail/v1/users/me"

// gmailClientFactory builds Gmail clients backed by refresh-token sources.
type gmailClientFactory struct {
	baseURL string
}

// NewGmailClientFactory is the constructor for gmailClientFactory.
func NewGmailClientFactory() service.GmailClientFactory {
	return &gmailClientFactory{baseURL: gmailBaseURL}
}

// New builds a client for one mailbox. Access tokens are minted lazily from
// the refresh token on first use and cached by the token source.
func (f *gmailClientFactory) New(creds service.GmailCredentials) service.GmailClient {
	conf := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Endpoint:     google.Endpoint,
	}

	return &gmailClient{
		baseURL: f.baseURL,
		conf:    conf,
		token:   &oauth2.Token{RefreshToken: creds.RefreshToken},
	}
}

type gmailClient struct {
	baseURL string
	conf    *oauth2.Config
	token   *oauth2.Token
}

func (c *gmailClient) httpClient(ctx context.Context) *http.Client {
	client := oauth2.NewClient(ctx, c.conf.TokenSource(ctx, c.token))
	client.Timeout = 30 * time.Second

	return client
}

// Profile fetches the mailbox profile.
func (c *gmailClient) Profile(ctx context.Context) (*service.GmailProfile, error) {
	var profile struct {
		EmailAddress  string `json:"emailAddress"`
		MessagesTotal int    `json:"messagesTotal"`
		ThreadsTotal  int    `json:"threadsTotal"`
	}
	if err := c.get(ctx, c.baseURL+"/profile", &profile); err != nil {
		return nil, errors.Wrap(err, "fetch gmail profile")
	}

	return &service.GmailProfile{
		EmailAddress:  profile.EmailAddress,
		MessagesTotal: profile.MessagesTotal,
		ThreadsTotal:  profile.ThreadsTotal,
	}, nil
}

// Messages lists up to maxResults messages matching the Gmail query, with
// headers resolved per message.
func (c *gmailClient) Messages(ctx context.Context, maxResults int, query string) ([]*service.EmailMessage, error) {
	if maxResults <= 0 {
		maxResults = 10
	}

	params := url.Values{}
	params.Set("maxResults", strconv.Itoa(maxResults))
	if query != "" {
		params.Set("q", query)
	}

	var listing struct {
		Messages []struct {
			ID       string `json:"id"`
			ThreadID string `json:"threadId"`
		} `json:"messages"`
	}
	if err := c.get(ctx, c.baseURL+"/messages?"+params.Encode(), &listing); err != nil {
		return nil, errors.Wrap(err, "list gmail messages")
	}

	messages := make([]*service.EmailMessage, 0, len(listing.Messages))
	for _, ref := range listing.Messages {
		message, err := c.message(ctx, ref.ID)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}

	return messages, nil
}

// UnreadCount returns the number of unread inbox messages.
func (c *gmailClient) UnreadCount(ctx context.Context) (int, error) {
	var listing struct {
		ResultSizeEstimate int `json:"resultSizeEstimate"`
	}
	if err := c.get(ctx, c.baseURL+"/messages?q="+url.QueryEscape("is:unread in:inbox"), &listing); err != nil {
		return 0, errors.Wrap(err, "count unread messages")
	}

	return listing.ResultSizeEstimate, nil
}

// message fetches one message in metadata form.
func (c *gmailClient) message(ctx context.Context, id string) (*service.EmailMessage, error) {
	endpoint := fmt.Sprintf(
		"%s/messages/%s?format=metadata&metadataHeaders=Subject&metadataHeaders=From&metadataHeaders=Date",
		c.baseURL, id,
	)

	var detail struct {
		ID       string   `json:"id"`
		ThreadID string   `json:"threadId"`
		Snippet  string   `json:"snippet"`
		LabelIDs []string `json:"labelIds"`
		Payload  struct {
			Headers []struct {
				Name  string `json:"name"`
				Value string `json:"value"`
			} `json:"headers"`
		} `json:"payload"`
	}
	if err := c.get(ctx, endpoint, &detail); err != nil {
		return nil, errors.Wrapf(err, "fetch gmail message %s", id)
	}

	message := &service.EmailMessage{
		ID:       detail.ID,
		ThreadID: detail.ThreadID,
		Snippet:  detail.Snippet,
	}
	for _, header := range detail.Payload.Headers {
		switch header.Name {
		case "Subject":
			message.Subject = header.Value
		case "From":
			message.From = header.Value
		case "Date":
			message.Date = header.Value
		}
	}
	for _, label := range detail.LabelIDs {
		if label == "UNREAD" {
			message.Unread = true

			break
		}
	}

	return message, nil
}

func (c *gmailClient) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "create request")
	}

	resp, err := c.httpClient(ctx).Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return errors.Errorf("gmail api returned status %d: %s", resp.StatusCode, string(body))
	}

	return errors.Wrap(json.NewDecoder(resp.Body).Decode(out), "decode response")
}
