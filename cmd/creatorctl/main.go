// Command creatorctl is the terminal client for the CreatorHub platform.
// Every invocation bootstraps the session from the persisted token, then
// runs one subcommand against the API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/creatorhub/platform-client/internal/config"
	"github.com/creatorhub/platform-client/internal/core/domain"
	"github.com/creatorhub/platform-client/internal/core/feed"
	"github.com/creatorhub/platform-client/internal/core/guard"
	"github.com/creatorhub/platform-client/internal/core/ports"
	"github.com/creatorhub/platform-client/internal/core/session"
	"github.com/creatorhub/platform-client/internal/rest"
	"github.com/creatorhub/platform-client/internal/store"
	"github.com/creatorhub/platform-client/pkg/logger"
)

const usage = `usage: creatorctl <command> [flags]

commands:
  register    create an account and log in
  login       log in with email and password
  logout      clear the local session
  whoami      show the current identity
  profile     update the current user's profile
  feed        browse the aggregated social feed
  saved       list the saved collection
  save        save a feed item by content id
  unsave      remove a feed item from the saved collection
  publish     publish a new piece of content
  contents    list published content
  report      report a piece of content
  reports     list or moderate reports (admin)
`

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.RequestTimeout)*time.Second*2)
	defer cancel()

	tokens, err := buildTokenStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("token store unavailable")
	}

	// The session store doubles as the token provider: the client reads
	// the live token at call time instead of a mutable default header.
	sessionStore := session.NewStore()
	api := rest.NewClient(cfg.APIBaseURL, sessionStore, log,
		rest.WithTimeout(time.Duration(cfg.RequestTimeout)*time.Second))
	mgr := session.NewManagerWith(sessionStore, api, tokens, log)

	app := &app{cfg: cfg, mgr: mgr, api: api}

	if err := app.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func buildTokenStore(ctx context.Context, cfg *config.Config) (ports.TokenStore, error) {
	switch cfg.Token.Backend {
	case "redis":
		client, err := store.Connect(ctx, store.RedisConfig{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, err
		}
		return store.NewRedisStore(client), nil
	case "memory":
		return store.NewMemStore(), nil
	default:
		return store.NewFileStore(cfg.Token.Path)
	}
}

type app struct {
	cfg *config.Config
	mgr *session.Manager
	api *rest.Client
}

func (a *app) run(ctx context.Context, cmd string, args []string) error {
	// register/login replace the session; everything else restores it.
	switch cmd {
	case "register", "login":
	default:
		if err := a.mgr.Bootstrap(ctx); err != nil {
			return err
		}
	}

	switch cmd {
	case "register":
		return a.register(ctx, args)
	case "login":
		return a.login(ctx, args)
	case "logout":
		a.mgr.Logout()
		fmt.Println("logged out")
		return nil
	case "whoami":
		return a.whoami()
	case "profile":
		return a.profile(ctx, args)
	case "feed":
		return a.feed(ctx, args)
	case "saved":
		return a.saved(ctx)
	case "save":
		return a.save(ctx, args)
	case "unsave":
		return a.unsave(ctx, args)
	case "publish":
		return a.publish(ctx, args)
	case "contents":
		return a.contents(ctx, args)
	case "report":
		return a.report(ctx, args)
	case "reports":
		return a.reports(ctx, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// requireAuth applies the authenticated-only guard to a CLI command.
func (a *app) requireAuth() error {
	v := guard.RequireAuth(a.mgr.Store().Snapshot())
	if v.Decision != guard.Allow {
		return fmt.Errorf("not logged in (try: creatorctl login)")
	}
	return nil
}

// requireAdmin applies the admin-only guard to a CLI command.
func (a *app) requireAdmin() error {
	v := guard.RequireAdmin(a.mgr.Store().Snapshot())
	if v.Decision != guard.Allow {
		return fmt.Errorf("admin access required")
	}
	return nil
}

func (a *app) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	_ = fs.Parse(args)

	if _, err := a.mgr.Register(ctx, *name, *email, *password); err != nil {
		return sessionError(a.mgr, err)
	}
	return a.whoami()
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	_ = fs.Parse(args)

	if _, err := a.mgr.Login(ctx, *email, *password); err != nil {
		return sessionError(a.mgr, err)
	}
	return a.whoami()
}

func (a *app) whoami() error {
	snap := a.mgr.Store().Snapshot()
	if !snap.Authenticated {
		fmt.Println("not logged in")
		return nil
	}
	u := snap.Identity
	fmt.Printf("%s <%s> role=%s credits=%d\n", u.Name, u.Email, u.Role, u.Credits)
	return nil
}

func (a *app) profile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	name := fs.String("name", "", "new display name")
	email := fs.String("email", "", "new email address")
	avatar := fs.String("avatar", "", "new profile image URL")
	_ = fs.Parse(args)

	if err := a.requireAuth(); err != nil {
		return err
	}
	user, err := a.mgr.UpdateProfile(ctx, domain.ProfileUpdate{
		Name:      *name,
		Email:     *email,
		AvatarURL: *avatar,
	})
	if err != nil {
		return sessionError(a.mgr, err)
	}
	fmt.Printf("updated: %s <%s>\n", user.Name, user.Email)
	return nil
}

func (a *app) feed(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("feed", flag.ExitOnError)
	page := fs.Int("page", 1, "page number")
	sources := fs.String("sources", "", "comma-separated sources (twitter,reddit,linkedin)")
	search := fs.String("search", "", "filter by title")
	_ = fs.Parse(args)

	q := domain.FeedQuery{Page: *page, Search: *search}
	for _, s := range strings.Split(*sources, ",") {
		if s = strings.TrimSpace(s); s != "" {
			q.Sources = append(q.Sources, domain.FeedSource(s))
		}
	}

	items, pagination, err := a.api.Feed(ctx, q)
	if err != nil {
		return err
	}

	// Mark items already in the saved collection, as the feed view does.
	tracker := feed.NewTracker()
	if a.mgr.Store().Snapshot().Authenticated {
		if savedItems, err := a.api.SavedItems(ctx); err == nil {
			tracker.Reset(savedItems)
		}
	}

	for _, item := range items {
		mark := " "
		if tracker.IsSaved(item.ContentID) {
			mark = "*"
		}
		fmt.Printf("%s [%-8s] %-14s %s (by %s)\n", mark, item.Source, item.ContentID, item.Title, item.Author)
	}
	if pagination != nil {
		fmt.Printf("page %d of %d (%d items)\n", pagination.Page, pagination.TotalPages, pagination.Total)
	}
	return nil
}

func (a *app) saved(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}
	items, err := a.api.SavedItems(ctx)
	if err != nil {
		return err
	}
	for _, item := range items {
		fmt.Printf("[%-8s] %-14s %s\n", item.Source, item.ContentID, item.Title)
	}
	return nil
}

func (a *app) save(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("save", flag.ExitOnError)
	contentID := fs.String("content-id", "", "feed content id to save")
	_ = fs.Parse(args)

	if err := a.requireAuth(); err != nil {
		return err
	}
	if *contentID == "" {
		return fmt.Errorf("-content-id is required")
	}

	items, _, err := a.api.Feed(ctx, domain.FeedQuery{})
	if err != nil {
		return err
	}
	for _, item := range items {
		if item.ContentID == *contentID {
			saved, err := a.api.SaveFeedItem(ctx, item)
			if err != nil {
				return err
			}
			fmt.Printf("saved %s (record %s)\n", saved.ContentID, saved.ID)
			return nil
		}
	}
	return fmt.Errorf("content %q not found in the current feed", *contentID)
}

func (a *app) unsave(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("unsave", flag.ExitOnError)
	contentID := fs.String("content-id", "", "feed content id to unsave")
	_ = fs.Parse(args)

	if err := a.requireAuth(); err != nil {
		return err
	}

	savedItems, err := a.api.SavedItems(ctx)
	if err != nil {
		return err
	}
	tracker := feed.NewTracker()
	tracker.Reset(savedItems)

	savedID, ok := tracker.SavedID(*contentID)
	if !ok {
		return fmt.Errorf("content %q is not in the saved collection", *contentID)
	}
	if err := a.api.DeleteSavedItem(ctx, savedID); err != nil {
		return err
	}
	tracker.Unmark(*contentID)
	fmt.Printf("removed %s\n", *contentID)
	return nil
}

func (a *app) publish(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("publish", flag.ExitOnError)
	typ := fs.String("type", "article", "content type (article|video|image|audio)")
	title := fs.String("title", "", "title")
	description := fs.String("description", "", "short description")
	body := fs.String("body", "", "article body")
	media := fs.String("media", "", "media URL")
	tags := fs.String("tags", "", "comma-separated tags")
	_ = fs.Parse(args)

	if err := a.requireAuth(); err != nil {
		return err
	}

	in := domain.ContentInput{
		Type:        domain.ContentType(*typ),
		Title:       *title,
		Description: *description,
		Body:        *body,
		MediaURL:    *media,
	}
	for _, t := range strings.Split(*tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			in.Tags = append(in.Tags, t)
		}
	}

	item, err := a.api.CreateContent(ctx, in)
	if err != nil {
		return err
	}
	fmt.Printf("published %s: %s\n", item.ID, item.Title)
	return nil
}

func (a *app) contents(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("contents", flag.ExitOnError)
	page := fs.Int("page", 1, "page number")
	typ := fs.String("type", "", "filter by content type")
	search := fs.String("search", "", "filter by title")
	_ = fs.Parse(args)

	items, pagination, err := a.api.Contents(ctx, rest.ContentQuery{
		Page:   *page,
		Type:   domain.ContentType(*typ),
		Search: *search,
	})
	if err != nil {
		return err
	}
	for _, item := range items {
		fmt.Printf("%-36s [%-7s] %s (%d likes)\n", item.ID, item.Type, item.Title, len(item.Likes))
	}
	if pagination != nil {
		fmt.Printf("page %d of %d (%d items)\n", pagination.Page, pagination.TotalPages, pagination.Total)
	}
	return nil
}

func (a *app) report(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	contentID := fs.String("content-id", "", "content to report")
	reason := fs.String("reason", "other", "reason (spam|abuse|copyright|inappropriate|other)")
	details := fs.String("details", "", "additional details")
	_ = fs.Parse(args)

	if err := a.requireAuth(); err != nil {
		return err
	}

	report, err := a.api.FileReport(ctx, domain.ReportInput{
		ContentID: *contentID,
		Reason:    domain.ReportReason(*reason),
		Details:   *details,
	})
	if err != nil {
		return err
	}
	fmt.Printf("report %s filed (%s)\n", report.ID, report.Status)
	return nil
}

func (a *app) reports(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reports", flag.ExitOnError)
	id := fs.String("id", "", "report to update")
	status := fs.String("status", "", "new status (reviewed|resolved|dismissed)")
	_ = fs.Parse(args)

	if err := a.requireAdmin(); err != nil {
		return err
	}

	if *id != "" {
		report, err := a.api.UpdateReportStatus(ctx, *id, domain.ReportStatus(*status))
		if err != nil {
			return err
		}
		fmt.Printf("report %s is now %s\n", report.ID, report.Status)
		return nil
	}

	reports, err := a.api.Reports(ctx)
	if err != nil {
		return err
	}
	for _, r := range reports {
		fmt.Printf("%-36s %-10s %-14s %s\n", r.ID, r.Status, r.Reason, r.ContentID)
	}
	return nil
}

// sessionError prefers the user-facing LastError the session recorded over
// the raw transport error.
func sessionError(mgr *session.Manager, err error) error {
	if msg := mgr.Store().Snapshot().LastError; msg != "" {
		return fmt.Errorf("%s", msg)
	}
	return err
}
