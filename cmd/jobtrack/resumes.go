package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"go-jobtrack/internal/pdfcheck"
	"go-jobtrack/internal/store"
)

func (a *app) cmdResumes(ctx context.Context, args []string) {
	if len(args) == 0 {
		log.Fatal("❌ Usage: jobtrack resumes <list|upload|peek|delete>")
	}

	// peek is purely local, no session needed
	if args[0] == "peek" {
		resumesPeek(args[1:])
		return
	}

	a.requireAuthenticated()
	list := store.NewResumeList(a.client)

	switch args[0] {
	case "list":
		a.resumesList(ctx, list)
	case "upload":
		a.resumesUpload(ctx, list, args[1:])
	case "delete":
		a.resumesDelete(ctx, list, args[1:])
	default:
		log.Fatalf("❌ Unknown resumes subcommand %q", args[0])
	}
}

func (a *app) resumesList(ctx context.Context, list *store.ResumeList) {
	if err := list.Fetch(ctx); err != nil {
		log.Fatalf("❌ %s (%v)", list.Err(), err)
	}
	resumes := list.Items()
	if len(resumes) == 0 {
		log.Println("ℹ️ No resumes uploaded yet.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFILENAME\tUPLOADED\tTEXT")
	for _, r := range resumes {
		extracted := "pending"
		if r.ExtractedText != "" {
			extracted = "extracted"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", r.ID, r.OriginalFilename, r.UploadedAt, extracted)
	}
	w.Flush()
}

func (a *app) resumesUpload(ctx context.Context, list *store.ResumeList, args []string) {
	fs := flag.NewFlagSet("resumes upload", flag.ExitOnError)
	file := fs.String("file", "", "path to a PDF (max 10 MB)")
	fs.Parse(args)
	if *file == "" {
		log.Fatal("❌ --file is required")
	}

	uploaded, err := list.Upload(ctx, *file)
	if err != nil {
		log.Fatalf("❌ Upload failed: %v", err)
	}
	log.Printf("✅ Resume #%d uploaded (%s). Text extraction runs server-side and may take a moment.",
		uploaded.ID, uploaded.OriginalFilename)
}

func (a *app) resumesDelete(ctx context.Context, list *store.ResumeList, args []string) {
	fs := flag.NewFlagSet("resumes delete", flag.ExitOnError)
	id := fs.Int("id", 0, "resume id")
	yes := fs.Bool("yes", false, "skip confirmation")
	fs.Parse(args)
	if *id <= 0 {
		log.Fatal("❌ --id is required")
	}
	if !*yes && !confirm(fmt.Sprintf("Delete resume #%d?", *id)) {
		log.Println("Aborted.")
		return
	}

	if err := list.Delete(ctx, *id); err != nil {
		log.Fatalf("❌ Failed to delete resume: %v", err)
	}
	log.Printf("✅ Resume #%d deleted", *id)
}

// resumesPeek extracts text locally so the user can sanity-check a PDF
// before uploading it.
func resumesPeek(args []string) {
	fs := flag.NewFlagSet("resumes peek", flag.ExitOnError)
	file := fs.String("file", "", "path to a PDF")
	limit := fs.Int("chars", 2000, "max characters to print")
	fs.Parse(args)
	if *file == "" {
		log.Fatal("❌ --file is required")
	}

	if err := pdfcheck.Validate(*file); err != nil {
		log.Fatalf("❌ %v", err)
	}
	text, err := pdfcheck.Preview(*file, *limit)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	if text == "" {
		log.Println("ℹ️ No extractable text found (scanned PDF?)")
		return
	}
	fmt.Println(text)
}
