package main

import (
	"context"
	"log"
	"time"

	"go-jobtrack/internal/reporter"
	"go-jobtrack/internal/store"
)

// cmdRemind sends a Telegram message for every application whose follow-up
// date is due within the configured window. Delivered reminders land in
// the sent cache so cron-style re-runs stay quiet.
func (a *app) cmdRemind(ctx context.Context) {
	a.requireAuthenticated()

	if !a.cfg.ReminderConfigured() {
		log.Println("ℹ️ Reminders are not configured. Set telegram_token and telegram_chat_id (or TELEGRAM_BOT_TOKEN / TELEGRAM_CHAT_ID).")
		return
	}

	list := store.NewApplicationList(a.client)
	if err := list.Fetch(ctx); err != nil {
		log.Fatalf("❌ %s (%v)", list.Err(), err)
	}

	due := reporter.DueFollowUps(list.Items(), time.Now(), a.cfg.ReminderDays)
	if len(due) == 0 {
		log.Println("✅ No follow-ups due.")
		return
	}

	cache := reporter.NewSentCache(a.cfg.CachePath)
	bot, err := reporter.NewTelegramReporter(a.cfg)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	var sentKeys []string
	sent := 0
	for _, app := range due {
		key := reporter.ReminderKey(app)
		if cache.IsSent(key) {
			continue
		}
		if err := bot.SendFollowUp(app); err != nil {
			log.Printf("⚠️ Failed to send reminder for #%d: %v", app.ID, err)
			continue
		}
		sentKeys = append(sentKeys, key)
		sent++
		//1 second delay to avoid 429
		time.Sleep(1 * time.Second)
	}
	cache.Add(sentKeys)

	log.Printf("✅ %d follow-up(s) due, %d reminder(s) sent", len(due), sent)
}
