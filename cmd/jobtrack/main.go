package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"go-jobtrack/internal/api"
	"go-jobtrack/internal/config"
	"go-jobtrack/internal/guard"
	"go-jobtrack/internal/session"
)

// app bundles what every command needs.
type app struct {
	cfg     *config.Config
	client  *api.Client
	session *session.Store
}

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	//load config
	cfg := config.Load()

	storage := session.NewFileStorage(cfg.TokenPath)
	client, err := api.New(api.Config{
		BaseURL:    cfg.APIBaseURL,
		HTTPClient: &http.Client{Timeout: time.Duration(cfg.RequestTimeout) * time.Second},
		Tokens:     storage,
	})
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	store := session.NewStore(client, storage)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	//hydrate session from the persisted token before any command runs
	store.Bootstrap(ctx)

	a := &app{cfg: cfg, client: client, session: store}

	switch os.Args[1] {
	case "register":
		a.cmdRegister(ctx, os.Args[2:])
	case "login":
		a.cmdLogin(ctx, os.Args[2:])
	case "logout":
		a.cmdLogout()
	case "whoami":
		a.cmdWhoami()
	case "apps":
		a.cmdApps(ctx, os.Args[2:])
	case "resumes":
		a.cmdResumes(ctx, os.Args[2:])
	case "match":
		a.cmdMatch(ctx, os.Args[2:])
	case "history":
		a.cmdHistory(ctx)
	case "rankings":
		a.cmdRankings(ctx)
	case "remind":
		a.cmdRemind(ctx)
	case "help", "-h", "--help":
		usage()
	default:
		log.Printf("❌ Unknown command %q", os.Args[1])
		usage()
		os.Exit(2)
	}
}

// requireAuthenticated gates commands that need a logged-in user, the CLI
// rendition of the protected-route redirect.
func (a *app) requireAuthenticated() {
	switch guard.RequireAuthenticated(a.session.Snapshot()) {
	case guard.Render:
	case guard.RedirectLogin:
		log.Fatal("❌ You are not logged in. Run `jobtrack login` first.")
	case guard.Pending:
		// Bootstrap has run by the time commands dispatch.
		log.Fatal("❌ Session is still loading. Try again.")
	}
}

// requireAnonymous gates login/register, which a logged-in user skips.
func (a *app) requireAnonymous() {
	switch guard.RequireAnonymous(a.session.Snapshot()) {
	case guard.Render:
	case guard.RedirectHome:
		snap := a.session.Snapshot()
		who := ""
		if snap.User != nil {
			who = " as " + snap.User.Email
		}
		log.Fatalf("ℹ️ Already logged in%s. Run `jobtrack logout` first.", who)
	case guard.Pending:
		log.Fatal("❌ Session is still loading. Try again.")
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `jobtrack - job application tracker

Usage:
  jobtrack register  --email <email> --name <full name> [--password <pw>]
  jobtrack login     --email <email> [--password <pw>]
  jobtrack logout
  jobtrack whoami

  jobtrack apps list    [--search <term>] [--status <status>] [--limit <n>] [--order <field>]
  jobtrack apps get     --id <id>
  jobtrack apps add     --company <name> --title <position> [--status applied] [--date YYYY-MM-DD] ...
  jobtrack apps edit    --id <id> [--company <name>] [--title <position>] [--status <status>] ...
  jobtrack apps delete  --id <id>
  jobtrack apps stats

  jobtrack resumes list
  jobtrack resumes upload --file <path.pdf>
  jobtrack resumes peek   --file <path.pdf>
  jobtrack resumes delete --id <id>

  jobtrack match     --app <application id> --resume <resume id>
  jobtrack history
  jobtrack rankings
  jobtrack remind
`)
}
