package apistub_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorhub/platform-client/internal/apistub"
	"github.com/creatorhub/platform-client/internal/config"
	"github.com/creatorhub/platform-client/internal/core/domain"
	"github.com/creatorhub/platform-client/internal/core/feed"
	"github.com/creatorhub/platform-client/internal/core/ports"
	"github.com/creatorhub/platform-client/internal/core/session"
	"github.com/creatorhub/platform-client/internal/rest"
	"github.com/creatorhub/platform-client/internal/store"
)

// harness drives the full client stack against an in-process stub server,
// the closest thing to the real deployment this repo can test.
type harness struct {
	srv    *httptest.Server
	tokens ports.TokenStore
	mgr    *session.Manager
	api    *rest.Client
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	e := apistub.New(config.StubConfig{JWTSecret: "e2e-secret", TokenTTL: 1}, zerolog.Nop(), apistub.Options{})
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	h := &harness{srv: srv, tokens: store.NewMemStore()}
	h.mgr, h.api = newClient(srv, h.tokens)
	return h
}

// newClient builds a fresh manager/client pair on top of an existing token
// store, mirroring the wiring in cmd/creatorctl.
func newClient(srv *httptest.Server, tokens ports.TokenStore) (*session.Manager, *rest.Client) {
	sessionStore := session.NewStore()
	api := rest.NewClient(srv.URL+"/api", sessionStore, zerolog.Nop())
	return session.NewManagerWith(sessionStore, api, tokens, zerolog.Nop()), api
}

func TestE2E_RegisterBootstrapLogout(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	tok, err := h.mgr.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	snap := h.mgr.Store().Snapshot()
	require.True(t, snap.Authenticated)
	assert.Equal(t, "alice@example.com", snap.Identity.Email)
	assert.Equal(t, domain.RoleUser, snap.Identity.Role)

	// A second process sharing the token store restores the session from the
	// persisted token alone.
	mgr2, _ := newClient(h.srv, h.tokens)
	require.NoError(t, mgr2.Bootstrap(ctx))

	snap2 := mgr2.Store().Snapshot()
	assert.True(t, snap2.Authenticated)
	assert.False(t, snap2.Loading)
	assert.Equal(t, snap.Identity.ID, snap2.Identity.ID)

	mgr2.Logout()
	_, err = h.tokens.Load(ctx)
	assert.ErrorIs(t, err, domain.ErrNoToken)

	mgr3, _ := newClient(h.srv, h.tokens)
	require.NoError(t, mgr3.Bootstrap(ctx))
	assert.False(t, mgr3.Store().Snapshot().Authenticated)
}

func TestE2E_DuplicateRegistrationSurfacesServerMessage(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	_, err := h.mgr.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	mgr2, _ := newClient(h.srv, store.NewMemStore())
	_, err = mgr2.Register(ctx, "Imposter", "alice@example.com", "password456")
	require.Error(t, err)
	assert.NotEmpty(t, mgr2.Store().Snapshot().LastError)
	assert.False(t, mgr2.Store().Snapshot().Authenticated)
}

func TestE2E_SeededAdminLogin(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	_, err := h.mgr.Login(ctx, "admin@creatorhub.local", "admin123")
	require.NoError(t, err)

	snap := h.mgr.Store().Snapshot()
	require.True(t, snap.Authenticated)
	assert.True(t, snap.Identity.IsAdmin())
}

func TestE2E_ReportModeration(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	// A regular user files a report against seeded content.
	_, err := h.mgr.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	contents, _, err := h.api.Contents(ctx, rest.ContentQuery{})
	require.NoError(t, err)
	require.NotEmpty(t, contents, "stub seeds demo content")

	filed, err := h.api.FileReport(ctx, domain.ReportInput{
		ContentID: contents[0].ID,
		Reason:    domain.ReasonSpam,
		Details:   "looks automated",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ReportPending, filed.Status)

	// The same user may not read the moderation queue.
	_, err = h.api.Reports(ctx)
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)

	// The seeded admin works the queue.
	adminMgr, adminAPI := newClient(h.srv, store.NewMemStore())
	_, err = adminMgr.Login(ctx, "admin@creatorhub.local", "admin123")
	require.NoError(t, err)

	reports, err := adminAPI.Reports(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, filed.ID, reports[0].ID)

	reviewed, err := adminAPI.UpdateReportStatus(ctx, filed.ID, domain.ReportReviewed)
	require.NoError(t, err)
	assert.Equal(t, domain.ReportReviewed, reviewed.Status)

	_, err = adminAPI.UpdateReportStatus(ctx, filed.ID, domain.ReportPending)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
}

func TestE2E_FeedSavedRoundTrip(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	_, err := h.mgr.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	items, page, err := h.api.Feed(ctx, domain.FeedQuery{Page: 1})
	require.NoError(t, err)
	require.NotEmpty(t, items)
	require.NotNil(t, page)
	assert.Equal(t, 1, page.Page)

	saved, err := h.api.SaveFeedItem(ctx, items[0])
	require.NoError(t, err)
	assert.Equal(t, items[0].ContentID, saved.ContentID)
	assert.NotEmpty(t, saved.ID)

	// Saving the same item again is idempotent.
	again, err := h.api.SaveFeedItem(ctx, items[0])
	require.NoError(t, err)
	assert.Equal(t, saved.ID, again.ID)

	collection, err := h.api.SavedItems(ctx)
	require.NoError(t, err)
	require.Len(t, collection, 1)

	tracker := feed.NewTracker()
	tracker.Reset(collection)
	require.True(t, tracker.IsSaved(items[0].ContentID))

	savedID, ok := tracker.SavedID(items[0].ContentID)
	require.True(t, ok)
	require.NoError(t, h.api.DeleteSavedItem(ctx, savedID))
	tracker.Unmark(items[0].ContentID)

	collection, err = h.api.SavedItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, collection)
	assert.False(t, tracker.IsSaved(items[0].ContentID))
}

func TestE2E_FeedSourceFilter(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	items, _, err := h.api.Feed(ctx, domain.FeedQuery{Sources: []domain.FeedSource{domain.SourceReddit}})
	require.NoError(t, err)
	require.NotEmpty(t, items)
	for _, it := range items {
		assert.Equal(t, domain.SourceReddit, it.Source)
	}
}

func TestE2E_ContentLifecycle(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	_, err := h.mgr.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)
	me := h.mgr.Store().Snapshot().Identity

	created, err := h.api.CreateContent(ctx, domain.ContentInput{
		Type:  domain.ContentArticle,
		Title: "My first post",
		Body:  "Hello from the e2e suite.",
	})
	require.NoError(t, err)
	assert.Equal(t, me.ID, created.UserID)

	liked, err := h.api.LikeContent(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, liked.LikedBy(me.ID))

	unliked, err := h.api.LikeContent(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, unliked.LikedBy(me.ID))

	commented, err := h.api.CommentOnContent(ctx, created.ID, "nice one")
	require.NoError(t, err)
	require.Len(t, commented.Comments, 1)
	assert.Equal(t, "nice one", commented.Comments[0].Text)
	assert.Equal(t, me.Name, commented.Comments[0].UserName)

	require.NoError(t, h.api.DeleteContent(ctx, created.ID))
	_, err = h.api.Content(ctx, created.ID)
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestE2E_ProfileUpdate(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	_, err := h.mgr.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	updated, err := h.mgr.UpdateProfile(ctx, domain.ProfileUpdate{Name: "Alice Cooper"})
	require.NoError(t, err)
	assert.Equal(t, "Alice Cooper", updated.Name)
	assert.Equal(t, "Alice Cooper", h.mgr.Store().Snapshot().Identity.Name)

	// Colliding with the seeded creator's email fails and leaves the local
	// identity untouched.
	_, err = h.mgr.UpdateProfile(ctx, domain.ProfileUpdate{Email: "creator@creatorhub.local"})
	require.Error(t, err)
	snap := h.mgr.Store().Snapshot()
	assert.Equal(t, "alice@example.com", snap.Identity.Email)
	assert.NotEmpty(t, snap.LastError)
}
