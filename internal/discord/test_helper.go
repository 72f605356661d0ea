package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
)

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// TestContext bundles a mock backend API, an APIClient pointed at it,
// and a Discord session whose HTTP transport is intercepted.
type TestContext struct {
	Server       *httptest.Server
	Mux          *http.ServeMux
	APIClient    *APIClient
	Session      *discordgo.Session
	DiscordMocks *MockRoundTripper
}

// SetupTestContext sets up the command test environment. Tests register
// backend handlers on ctx.Mux and capture Discord calls by replacing
// ctx.DiscordMocks.RoundTripFunc.
func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)

	client := NewAPIClient(server.URL, "test-api-key")

	session, err := discordgo.New("Bot test-token")
	if err != nil {
		t.Fatalf("Failed to create mock session: %v", err)
	}

	ctx := &TestContext{
		Server:    server,
		Mux:       mux,
		APIClient: client,
		Session:   session,
	}

	ctx.DiscordMocks = &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString("{}")),
				Header:     make(http.Header),
			}, nil
		},
	}
	session.Client = &http.Client{Transport: ctx.DiscordMocks}

	t.Cleanup(func() {
		server.Close()
	})

	return ctx
}

// CaptureEmbed returns a RoundTripFunc that records the first embed sent
// via an interaction response edit.
func (ctx *TestContext) CaptureEmbed(out **discordgo.MessageEmbed) {
	ctx.DiscordMocks.RoundTripFunc = func(req *http.Request) (*http.Response, error) {
		if req.Method == http.MethodPatch {
			var body discordgo.WebhookEdit
			_ = json.NewDecoder(req.Body).Decode(&body)
			if body.Embeds != nil && len(*body.Embeds) > 0 {
				*out = (*body.Embeds)[0]
			}
		}
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewBufferString("{}")),
			Header:     make(http.Header),
		}, nil
	}
}

// CaptureContent returns a RoundTripFunc that records the plain content
// sent via an interaction response edit.
func (ctx *TestContext) CaptureContent(out *string) {
	ctx.DiscordMocks.RoundTripFunc = func(req *http.Request) (*http.Response, error) {
		if req.Method == http.MethodPatch {
			var body discordgo.WebhookEdit
			_ = json.NewDecoder(req.Body).Decode(&body)
			if body.Content != nil {
				*out = *body.Content
			}
		}
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewBufferString("{}")),
			Header:     make(http.Header),
		}, nil
	}
}

// ServeUser makes the mocked Discord API resolve the given user by id, so
// user-type command options can be looked up. Other requests fall through to
// the current RoundTripFunc.
func (ctx *TestContext) ServeUser(user *discordgo.User) {
	next := ctx.DiscordMocks.RoundTripFunc
	ctx.DiscordMocks.RoundTripFunc = func(req *http.Request) (*http.Response, error) {
		if req.Method == http.MethodGet && strings.HasSuffix(req.URL.Path, "/users/"+user.ID) {
			buf, _ := json.Marshal(user)
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewReader(buf)),
				Header:     make(http.Header),
			}, nil
		}
		return next(req)
	}
}

// WriteJSON writes a JSON payload in a backend mock handler
func WriteJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}

// NewCommandInteraction builds an application command interaction from a
// guild member.
func NewCommandInteraction(name string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: options,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "test-user", Username: "Tester"},
			},
		},
	}
}
