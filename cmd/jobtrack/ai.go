package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"text/tabwriter"

	"go-jobtrack/internal/models"
)

func (a *app) cmdMatch(ctx context.Context, args []string) {
	a.requireAuthenticated()

	fs := flag.NewFlagSet("match", flag.ExitOnError)
	appID := fs.Int("app", 0, "application id")
	resumeID := fs.Int("resume", 0, "resume id")
	fs.Parse(args)

	if *appID <= 0 || *resumeID <= 0 {
		log.Fatal("❌ Both --app and --resume are required")
	}

	log.Println("🤖 Running AI analysis...")
	result, err := a.client.RunMatch(ctx, *appID, *resumeID)
	if err != nil {
		log.Fatalf("❌ Failed to analyze match: %v", err)
	}
	printAnalysis(result)
}

func (a *app) cmdHistory(ctx context.Context) {
	a.requireAuthenticated()

	history, err := a.client.MatchHistory(ctx)
	if err != nil {
		log.Fatalf("❌ Failed to fetch history: %v", err)
	}
	if len(history) == 0 {
		log.Println("ℹ️ No analyses yet. Run `jobtrack match` first.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tAPPLICATION\tRESUME\tSCORE\tTIER\tDATE")
	for _, h := range history {
		fmt.Fprintf(w, "%d\t#%d\t#%d\t%d%%\t%s\t%s\n",
			h.ID, h.ApplicationID, h.ResumeID, int(math.Round(h.MatchScore)), models.MatchTier(h.MatchScore), h.CreatedAt)
	}
	w.Flush()
}

func (a *app) cmdRankings(ctx context.Context) {
	a.requireAuthenticated()

	rankings, err := a.client.MatchRankings(ctx)
	if err != nil {
		log.Fatalf("❌ Failed to fetch rankings: %v", err)
	}
	if len(rankings) == 0 {
		log.Println("ℹ️ No rankings yet.")
		return
	}

	// The ranking shape is backend-owned; print it as indented JSON.
	data, err := json.MarshalIndent(rankings, "", "  ")
	if err != nil {
		log.Fatalf("❌ Failed to render rankings: %v", err)
	}
	fmt.Println(string(data))
}

func printAnalysis(result *models.AIAnalysis) {
	score := int(math.Round(result.MatchScore))
	fmt.Printf("\n  Match score: %d%% — %s\n\n", score, models.MatchTier(result.MatchScore))

	if len(result.Strengths) > 0 {
		fmt.Println("  Strengths:")
		for _, s := range result.Strengths {
			fmt.Printf("   ✅ %s\n", s)
		}
		fmt.Println()
	}
	if len(result.MissingSkills) > 0 {
		fmt.Println("  Missing skills:")
		for _, s := range result.MissingSkills {
			fmt.Printf("   ⚠️ %s\n", s)
		}
		fmt.Println()
	}
	if result.Recommendation != "" {
		fmt.Printf("  Recommendation:\n  %s\n", result.Recommendation)
	}
}
