package extcal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"

	"github.com/juniperhealth/juniper_backend/config"
	"github.com/juniperhealth/juniper_backend/pkg/crypto"
)

const googleCalendarBase = "https://www.googleapis.com/calendar/v3"

// GoogleProvider talks to the Google Calendar v3 REST API. Only the two
// endpoints the synchronizer needs are implemented: the events delta list and
// watch-channel registration.
type GoogleProvider struct {
	http *http.Client
	base string
}

func NewGoogleProvider(cfg config.CalendarConfig) *GoogleProvider {
	return &GoogleProvider{
		http: &http.Client{
			Timeout: time.Duration(cfg.ProviderTimeoutSeconds) * time.Second,
		},
		base: googleCalendarBase,
	}
}

type googleEventTime struct {
	DateTime string `json:"dateTime,omitempty"`
	Date     string `json:"date,omitempty"`
}

type googleEvent struct {
	ID     string           `json:"id"`
	Status string           `json:"status"`
	Start  *googleEventTime `json:"start,omitempty"`
	End    *googleEventTime `json:"end,omitempty"`
}

type googleEventsPage struct {
	Items         []googleEvent `json:"items"`
	NextPageToken string        `json:"nextPageToken,omitempty"`
	NextSyncToken string        `json:"nextSyncToken,omitempty"`
}

func (g *GoogleProvider) ListChanges(ctx context.Context, accessToken, calendarID, syncToken string, window TimeWindow) (ListResult, error) {
	var out ListResult
	pageToken := ""

	for {
		q := url.Values{}
		q.Set("singleEvents", "true")
		q.Set("showDeleted", "true")
		q.Set("maxResults", "250")
		if syncToken != "" {
			q.Set("syncToken", syncToken)
		} else {
			q.Set("timeMin", window.Start.Format(time.RFC3339))
			q.Set("timeMax", window.End.Format(time.RFC3339))
		}
		if pageToken != "" {
			q.Set("pageToken", pageToken)
		}

		endpoint := fmt.Sprintf("%s/calendars/%s/events?%s", g.base, url.PathEscape(calendarID), q.Encode())
		var page googleEventsPage
		if err := g.get(ctx, accessToken, endpoint, &page); err != nil {
			return ListResult{}, err
		}

		for _, item := range page.Items {
			out.Changes = append(out.Changes, eventChange(item))
		}

		if page.NextPageToken == "" {
			out.NextSyncToken = page.NextSyncToken
			return out, nil
		}
		pageToken = page.NextPageToken
	}
}

func (g *GoogleProvider) Watch(ctx context.Context, accessToken, calendarID, channelID, address string) (string, time.Time, error) {
	body, err := json.Marshal(map[string]string{
		"id":      channelID,
		"type":    "web_hook",
		"address": address,
	})
	if err != nil {
		return "", time.Time{}, fmt.Errorf("encode watch request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/calendars/%s/events/watch", g.base, url.PathEscape(calendarID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("build watch request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %v", ErrProviderAPI, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", time.Time{}, fmt.Errorf("%w: watch returned %d", ErrProviderAPI, resp.StatusCode)
	}

	var watch struct {
		ResourceID string `json:"resourceId"`
		Expiration string `json:"expiration"` // unix millis as string
	}
	if err := json.NewDecoder(resp.Body).Decode(&watch); err != nil {
		return "", time.Time{}, fmt.Errorf("decode watch response: %w", err)
	}

	var expires time.Time
	if watch.Expiration != "" {
		var millis int64
		if _, err := fmt.Sscan(watch.Expiration, &millis); err == nil {
			expires = time.UnixMilli(millis).UTC()
		}
	}
	return watch.ResourceID, expires, nil
}

func (g *GoogleProvider) get(ctx context.Context, accessToken, endpoint string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := g.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProviderAPI, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusGone:
		return ErrSyncCursorExpired
	default:
		return fmt.Errorf("%w: events list returned %d", ErrProviderAPI, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode events page: %w", err)
	}
	return nil
}

// eventChange flattens a provider event into the neutral change record.
// Date-only starts stay nil, which downstream treats as "skip".
func eventChange(ev googleEvent) EventChange {
	c := EventChange{ID: ev.ID, Status: ev.Status}
	if ev.Start != nil && ev.Start.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, ev.Start.DateTime); err == nil {
			t = t.UTC()
			c.Start = &t
		}
	}
	if ev.End != nil && ev.End.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, ev.End.DateTime); err == nil {
			t = t.UTC()
			c.End = &t
		}
	}
	return c
}

// ---------------------------------------------------------------------------
// OAuth token source
// ---------------------------------------------------------------------------

// OAuthTokenSource exchanges the stored (encrypted) refresh token for a
// short-lived access token on every sync pass. Tokens are not cached; a sync
// pass is rare enough that a fresh exchange keeps the logic simple.
type OAuthTokenSource struct {
	oauth *oauth2.Config
	key   []byte
}

func NewOAuthTokenSource(cfg *config.Config) (*OAuthTokenSource, error) {
	key, err := crypto.KeyFromHex(cfg.Authentication.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("calendar token source: %w", err)
	}
	return &OAuthTokenSource{
		oauth: &oauth2.Config{
			ClientID:     cfg.Calendar.Google.ClientID,
			ClientSecret: cfg.Calendar.Google.ClientSecret,
			Endpoint:     googleoauth.Endpoint,
			Scopes:       []string{"https://www.googleapis.com/auth/calendar.readonly"},
		},
		key: key,
	}, nil
}

func (ts *OAuthTokenSource) AccessToken(ctx context.Context, conn Connection) (string, error) {
	refreshToken, err := crypto.Decrypt(ts.key, conn.RefreshTokenEnc)
	if err != nil {
		return "", fmt.Errorf("%w: decrypt refresh token: %v", ErrTokenRefresh, err)
	}

	src := ts.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	tok, err := src.Token()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenRefresh, err)
	}
	return tok.AccessToken, nil
}
