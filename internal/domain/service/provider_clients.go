package service

import "context"

// GmailCredentials authenticates a Gmail API client. Access tokens are
// minted from the refresh token on demand.
type GmailCredentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// GmailProfile describes the mailbox behind a Gmail credential.
type GmailProfile struct {
	EmailAddress  string
	MessagesTotal int
	ThreadsTotal  int
}

// EmailMessage is a single message summary from a mailbox.
type EmailMessage struct {
	ID       string
	ThreadID string
	Subject  string
	From     string
	Date     string
	Snippet  string
	Unread   bool
}

// GmailClient reads from one authenticated mailbox.
type GmailClient interface {
	// Profile fetches the mailbox profile.
	Profile(ctx context.Context) (*GmailProfile, error)

	// Messages lists up to maxResults messages matching the Gmail query.
	Messages(ctx context.Context, maxResults int, query string) ([]*EmailMessage, error)

	// UnreadCount returns the number of unread inbox messages.
	UnreadCount(ctx context.Context) (int, error)
}

// GmailClientFactory builds Gmail clients from stored credentials.
type GmailClientFactory interface {
	New(creds GmailCredentials) GmailClient
}

// GitHubUser describes the account behind a GitHub token.
type GitHubUser struct {
	Login       string
	Name        string
	Followers   int
	Following   int
	PublicRepos int
}

// GitHubRepo is a single repository summary.
type GitHubRepo struct {
	Name        string
	FullName    string
	Description string
	Private     bool
	Stars       int
	Forks       int
	Language    string
	HTMLURL     string
	UpdatedAt   string
}

// GitHubClient reads from the GitHub REST API with one token.
type GitHubClient interface {
	// User fetches the authenticated account.
	User(ctx context.Context) (*GitHubUser, error)

	// Repos lists the authenticated account's repositories.
	// Visibility is "all", "public" or "private".
	Repos(ctx context.Context, visibility string) ([]*GitHubRepo, error)
}

// GitHubClientFactory builds GitHub clients from stored tokens.
type GitHubClientFactory interface {
	New(accessToken string) GitHubClient
}

// SlackTeam describes a Slack workspace.
type SlackTeam struct {
	ID     string
	Name   string
	Domain string
}

// SlackChannel is a single conversation summary.
type SlackChannel struct {
	ID         string
	Name       string
	IsPrivate  bool
	IsMember   bool
	NumMembers int
}

// SlackMessage is a single message from a conversation's history.
type SlackMessage struct {
	User      string
	Text      string
	Timestamp string
}

// SlackClient reads from the Slack Web API with one token.
type SlackClient interface {
	// Team fetches workspace metadata.
	Team(ctx context.Context) (*SlackTeam, error)

	// Channels lists conversations visible to the token.
	Channels(ctx context.Context, limit int) ([]*SlackChannel, error)

	// History lists recent messages from one conversation.
	History(ctx context.Context, channelID string, limit int) ([]*SlackMessage, error)
}

// SlackClientFactory builds Slack clients from stored tokens.
type SlackClientFactory interface {
	New(token string) SlackClient
}
