package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"go-jobtrack/internal/api"
	"go-jobtrack/internal/models"
	"go-jobtrack/internal/store"
)

func (a *app) cmdApps(ctx context.Context, args []string) {
	if len(args) == 0 {
		log.Fatal("❌ Usage: jobtrack apps <list|get|add|edit|delete|stats>")
	}
	a.requireAuthenticated()

	list := store.NewApplicationList(a.client)

	switch args[0] {
	case "list":
		a.appsList(ctx, list, args[1:])
	case "get":
		a.appsGet(ctx, args[1:])
	case "add":
		a.appsAdd(ctx, list, args[1:])
	case "edit":
		a.appsEdit(ctx, list, args[1:])
	case "delete":
		a.appsDelete(ctx, list, args[1:])
	case "stats":
		a.appsStats(ctx, list)
	default:
		log.Fatalf("❌ Unknown apps subcommand %q", args[0])
	}
}

func (a *app) appsList(ctx context.Context, list *store.ApplicationList, args []string) {
	fs := flag.NewFlagSet("apps list", flag.ExitOnError)
	search := fs.String("search", "", "match company or position")
	status := fs.String("status", "all", "filter by status")
	limit := fs.Int("limit", 0, "max rows")
	order := fs.String("order", "", "server-side ordering")
	fs.Parse(args)

	if err := list.FetchWith(ctx, api.ListOptions{Limit: *limit, Ordering: *order}); err != nil {
		log.Fatalf("❌ %s (%v)", list.Err(), err)
	}

	apps := list.Filter(*search, *status)
	if len(apps) == 0 {
		log.Println("ℹ️ No applications found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCOMPANY\tPOSITION\tSTATUS\tAPPLIED\tFOLLOW-UP")
	for _, app := range apps {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			app.ID, app.CompanyName, app.PositionTitle, app.Status.Label(), app.AppliedDate, app.FollowUpDate)
	}
	w.Flush()
}

func (a *app) appsGet(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("apps get", flag.ExitOnError)
	id := fs.Int("id", 0, "application id")
	fs.Parse(args)
	if *id <= 0 {
		log.Fatal("❌ --id is required")
	}

	app, err := a.client.GetApplication(ctx, *id)
	if err != nil {
		log.Fatalf("❌ Failed to fetch application: %v", err)
	}
	printApplication(app)
}

func (a *app) appsAdd(ctx context.Context, list *store.ApplicationList, args []string) {
	fs := flag.NewFlagSet("apps add", flag.ExitOnError)
	company := fs.String("company", "", "company name")
	title := fs.String("title", "", "position title")
	status := fs.String("status", "applied", "application status")
	date := fs.String("date", time.Now().Format("2006-01-02"), "applied date (YYYY-MM-DD)")
	desc := fs.String("desc", "", "job description")
	followUp := fs.String("follow-up", "", "follow-up date (YYYY-MM-DD)")
	notes := fs.String("notes", "", "notes")
	jobURL := fs.String("url", "", "job posting URL")
	salary := fs.String("salary", "", "salary range")
	location := fs.String("location", "", "location")
	fs.Parse(args)

	if *company == "" || *title == "" {
		log.Fatal("❌ --company and --title are required")
	}
	parsedStatus, err := models.ParseStatus(*status)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	req := models.CreateApplicationRequest{
		CompanyName:    *company,
		PositionTitle:  *title,
		JobDescription: *desc,
		Status:         parsedStatus,
		AppliedDate:    *date,
		FollowUpDate:   *followUp,
		Notes:          *notes,
		JobURL:         *jobURL,
		SalaryRange:    *salary,
		Location:       *location,
	}

	created, err := list.Create(ctx, req)
	if err != nil {
		log.Fatalf("❌ Failed to create application: %v", err)
	}
	log.Printf("✅ Application #%d created: %s @ %s", created.ID, created.PositionTitle, created.CompanyName)
}

func (a *app) appsEdit(ctx context.Context, list *store.ApplicationList, args []string) {
	fs := flag.NewFlagSet("apps edit", flag.ExitOnError)
	id := fs.Int("id", 0, "application id")
	company := fs.String("company", "", "company name")
	title := fs.String("title", "", "position title")
	status := fs.String("status", "", "application status")
	date := fs.String("date", "", "applied date (YYYY-MM-DD)")
	desc := fs.String("desc", "", "job description")
	followUp := fs.String("follow-up", "", "follow-up date (YYYY-MM-DD)")
	notes := fs.String("notes", "", "notes")
	jobURL := fs.String("url", "", "job posting URL")
	salary := fs.String("salary", "", "salary range")
	location := fs.String("location", "", "location")
	fs.Parse(args)

	if *id <= 0 {
		log.Fatal("❌ --id is required")
	}

	//only fields the user actually passed go into the PUT body
	var req models.UpdateApplicationRequest
	fields := 0
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "id" {
			return
		}
		fields++
		switch f.Name {
		case "company":
			req.CompanyName = company
		case "title":
			req.PositionTitle = title
		case "status":
			parsed, err := models.ParseStatus(*status)
			if err != nil {
				log.Fatalf("❌ %v", err)
			}
			req.Status = &parsed
		case "date":
			req.AppliedDate = date
		case "desc":
			req.JobDescription = desc
		case "follow-up":
			req.FollowUpDate = followUp
		case "notes":
			req.Notes = notes
		case "url":
			req.JobURL = jobURL
		case "salary":
			req.SalaryRange = salary
		case "location":
			req.Location = location
		}
	})
	if fields == 0 {
		log.Fatal("❌ Nothing to update; pass at least one field flag")
	}

	updated, err := list.Update(ctx, *id, req)
	if err != nil {
		log.Fatalf("❌ Failed to update application: %v", err)
	}
	log.Printf("✅ Application #%d updated (%s @ %s, %s)", updated.ID, updated.PositionTitle, updated.CompanyName, updated.Status.Label())
}

func (a *app) appsDelete(ctx context.Context, list *store.ApplicationList, args []string) {
	fs := flag.NewFlagSet("apps delete", flag.ExitOnError)
	id := fs.Int("id", 0, "application id")
	yes := fs.Bool("yes", false, "skip confirmation")
	fs.Parse(args)
	if *id <= 0 {
		log.Fatal("❌ --id is required")
	}
	if !*yes && !confirm(fmt.Sprintf("Delete application #%d? This cannot be undone.", *id)) {
		log.Println("Aborted.")
		return
	}

	if err := list.Delete(ctx, *id); err != nil {
		log.Fatalf("❌ Failed to delete application: %v", err)
	}
	log.Printf("✅ Application #%d deleted", *id)
}

func (a *app) appsStats(ctx context.Context, list *store.ApplicationList) {
	list.FetchStats(ctx)
	stats := list.Stats()
	if stats == nil {
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Total\t%d\n", stats.Total)
	fmt.Fprintf(w, "Applied\t%d\n", stats.Applied)
	fmt.Fprintf(w, "Interview\t%d\n", stats.Interview)
	fmt.Fprintf(w, "Offer\t%d\n", stats.Offer)
	fmt.Fprintf(w, "Rejected\t%d\n", stats.Rejected)
	fmt.Fprintf(w, "Withdrawn\t%d\n", stats.Withdrawn)
	w.Flush()
}

func printApplication(app *models.Application) {
	fmt.Printf("#%d %s @ %s\n", app.ID, app.PositionTitle, app.CompanyName)
	fmt.Printf("Status:      %s\n", app.Status.Label())
	fmt.Printf("Applied:     %s\n", app.AppliedDate)
	if app.FollowUpDate != "" {
		fmt.Printf("Follow up:   %s\n", app.FollowUpDate)
	}
	if app.Location != "" {
		fmt.Printf("Location:    %s\n", app.Location)
	}
	if app.SalaryRange != "" {
		fmt.Printf("Salary:      %s\n", app.SalaryRange)
	}
	if app.JobURL != "" {
		fmt.Printf("URL:         %s\n", app.JobURL)
	}
	if app.JobDescription != "" {
		fmt.Printf("Description:\n%s\n", app.JobDescription)
	}
	if app.Notes != "" {
		fmt.Printf("Notes:\n%s\n", app.Notes)
	}
}

func confirm(question string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N] ", question)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
