// Command beni-ov is the praise companion CLI.
//
// Commands:
//
//	profile set|show          Manage the praise profile
//	praise                    Generate a new praise
//	favorites add|list|remove Manage favorite praises
//	share                     Record a share and print link + QR URL
//	stats                     Print the statistics summary
//	achievements              List achievements and unlock state
//	backup export|import|link Backup and restore all data
//	settings theme|notify     Preferences
//	reset                     Wipe all data
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/ahmetunaluzun/beni-ov/internal/backup"
	"github.com/ahmetunaluzun/beni-ov/internal/config"
	"github.com/ahmetunaluzun/beni-ov/internal/logging"
	"github.com/ahmetunaluzun/beni-ov/internal/models"
	"github.com/ahmetunaluzun/beni-ov/internal/notify"
	"github.com/ahmetunaluzun/beni-ov/internal/praise"
	"github.com/ahmetunaluzun/beni-ov/internal/session"
	"github.com/ahmetunaluzun/beni-ov/internal/share"
	"github.com/ahmetunaluzun/beni-ov/internal/storage"
)

func main() {
	// Structured logging (JSON to stderr, stdout carries command output)
	logging.Setup()

	cfg := config.Load()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(0)
	}

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}

	// Local log sink (ERROR+ async batch) and optional Sentry
	storeHandler := logging.NewStoreHandler(db)
	defer storeHandler.Stop()
	handlers := []slog.Handler{
		slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}),
		storeHandler,
	}
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
			handlers = append(handlers, logging.NewSentryHandler())
		}
	}
	slog.SetDefault(slog.New(logging.NewMultiHandler(handlers...)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	defer close(cleanupDone)
	logging.StartCleanup(db, cleanupDone)

	store := storage.NewStore(db)
	client := praise.NewGeminiClient(cfg.GeminiAPIURL, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.AITimeout)
	generator := praise.NewGenerator(client).WithRetryHook(func(attempt int, delay time.Duration, err error) {
		slog.Info("quota hit, backing off", "attempt", attempt+1, "delay", delay.String(), "error", err.Error())
	})
	sess := session.New(store, generator, notify.LogNotifier{})
	sharer := share.NewService(cfg.ShareBaseURL, cfg.QRAPIURL, cfg.QRSize)

	ctx := context.Background()

	switch os.Args[1] {
	case "profile":
		handleProfile(ctx, sess, os.Args[2:])
	case "praise":
		handlePraise(ctx, sess)
	case "favorites":
		handleFavorites(sess, os.Args[2:])
	case "share":
		handleShare(sess, sharer)
	case "stats":
		handleStats(sess)
	case "achievements":
		handleAchievements(sess)
	case "backup":
		handleBackup(cfg, sess, os.Args[2:])
	case "settings":
		handleSettings(sess, os.Args[2:])
	case "reset":
		fail(sess.Reset())
		fmt.Println("All data removed.")
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func handleProfile(ctx context.Context, sess *session.Session, args []string) {
	if len(args) == 0 || args[0] == "show" {
		p := sess.Profile()
		if p == nil {
			fmt.Println("No profile set. Use: beni-ov profile set --name ... --age ...")
			return
		}
		printJSON(p)
		return
	}
	if args[0] != "set" {
		fmt.Fprintf(os.Stderr, "Unknown profile command: %s\n", args[0])
		os.Exit(1)
	}

	fs := flag.NewFlagSet("profile set", flag.ExitOnError)
	name := fs.String("name", "", "person's name")
	age := fs.Int("age", 0, "age (1-120)")
	gender := fs.String("gender", string(models.GenderOther), "female|male|other")
	style := fs.String("style", string(models.StyleMotivational), "praise style")
	occasion := fs.String("occasion", string(models.OccasionNone), "special occasion")
	fs.Parse(args[1:])

	p := models.Profile{
		Name:            *name,
		Age:             *age,
		Gender:          models.Gender(*gender),
		PraiseStyle:     models.PraiseStyle(*style),
		SpecialOccasion: models.SpecialOccasion(*occasion),
	}

	newly, err := sess.SaveProfile(ctx, p)
	if err != nil {
		fail(err)
	}
	fmt.Println("Profile saved.")
	if sess.CurrentPraise() != "" {
		fmt.Println()
		fmt.Println(sess.CurrentPraise())
	}
	printUnlocks(newly)
}

func handlePraise(ctx context.Context, sess *session.Session) {
	newly, err := sess.Generate(ctx)
	if err != nil {
		var rateLimited *praise.RateLimitedError
		if errors.As(err, &rateLimited) {
			fmt.Fprintln(os.Stderr, "⏳ Too many requests. The app retried automatically but the limit held. Please wait 1-2 minutes and try again.")
			os.Exit(1)
		}
		fail(err)
	}
	fmt.Println(sess.CurrentPraise())
	printUnlocks(newly)
}

func handleFavorites(sess *session.Session, args []string) {
	if len(args) == 0 || args[0] == "list" {
		favorites := sess.Favorites()
		if len(favorites) == 0 {
			fmt.Println("No favorites yet.")
			return
		}
		for i, f := range favorites {
			fmt.Printf("%d. %s\n", i+1, f)
		}
		return
	}

	switch args[0] {
	case "add":
		newly, err := sess.AddFavorite()
		if errors.Is(err, session.ErrAlreadyFavorited) {
			fmt.Println("Already in favorites!")
			return
		}
		fail(err)
		fmt.Println("Added to favorites!")
		printUnlocks(newly)
	case "remove":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "Usage: beni-ov favorites remove <text>")
			os.Exit(1)
		}
		fail(sess.RemoveFavorite(strings.Join(args[1:], " ")))
		fmt.Println("Removed from favorites.")
	default:
		fmt.Fprintf(os.Stderr, "Unknown favorites command: %s\n", args[0])
		os.Exit(1)
	}
}

func handleShare(sess *session.Session, sharer *share.Service) {
	text := sess.CurrentPraise()
	newly, err := sess.Share()
	if err != nil {
		fail(err)
	}
	link := sharer.ShareableLink(text)
	fmt.Println("Share link:", link)
	fmt.Println("QR image:  ", sharer.QRImageURL(link))
	printUnlocks(newly)
}

func handleStats(sess *session.Session) {
	printJSON(sess.Statistics())
}

func handleAchievements(sess *session.Session) {
	for _, a := range sess.Achievements() {
		mark := " "
		if a.Unlocked {
			mark = "x"
		}
		fmt.Printf("[%s] %s %s - %s\n", mark, a.Icon, a.Title, a.Description)
	}
}

func handleBackup(cfg *config.Config, sess *session.Session, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: beni-ov backup export|import <file> | link")
		os.Exit(1)
	}
	switch args[0] {
	case "export":
		blob, err := backup.Encode(sess.CreateBackup())
		fail(err)
		name := fmt.Sprintf("beni-ov-backup-%s.json", time.Now().Format("2006-01-02"))
		if len(args) > 1 {
			name = args[1]
		}
		fail(os.WriteFile(name, blob, 0o644))
		fmt.Println("Backup written to", name)
	case "import":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "Usage: beni-ov backup import <file>")
			os.Exit(1)
		}
		blob, err := os.ReadFile(args[1])
		fail(err)
		data, err := backup.Decode(blob)
		fail(err)
		fail(sess.RestoreBackup(data))
		fmt.Println("Backup restored.")
	case "link":
		link, err := backup.ShareableLink(cfg.ShareBaseURL, sess.CreateBackup())
		fail(err)
		fmt.Println(link)
	default:
		fmt.Fprintf(os.Stderr, "Unknown backup command: %s\n", args[0])
		os.Exit(1)
	}
}

func handleSettings(sess *session.Session, args []string) {
	if len(args) == 0 {
		fmt.Println("Theme:", sess.Theme())
		printJSON(sess.NotificationSettings())
		return
	}
	switch args[0] {
	case "theme":
		if len(args) < 2 {
			fmt.Println("Theme:", sess.Theme())
			return
		}
		fail(sess.SetTheme(args[1]))
		fmt.Println("Theme set to", args[1])
	case "notify":
		ns := sess.NotificationSettings()
		if len(args) > 1 {
			switch args[1] {
			case "on":
				ns.Enabled = true
			case "off":
				ns.Enabled = false
			default:
				fmt.Fprintln(os.Stderr, "Usage: beni-ov settings notify on|off")
				os.Exit(1)
			}
			fail(sess.SetNotificationSettings(ns))
		}
		printJSON(sess.NotificationSettings())
		if ns.Enabled && ns.DailyReminder {
			fmt.Println("Next reminder:", notify.NextReminder(ns, time.Now()).Format(time.RFC1123))
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown settings command: %s\n", args[0])
		os.Exit(1)
	}
}

func printUnlocks(newly []models.Achievement) {
	for _, a := range newly {
		fmt.Printf("🏆 Achievement unlocked: %s %s - %s\n", a.Icon, a.Title, a.Description)
	}
}

func printJSON(v interface{}) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fail(err)
	}
	fmt.Println(string(out))
}

func fail(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Println("beni-ov — your personal praise companion")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  beni-ov <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  profile set|show           Manage the praise profile")
	fmt.Println("  praise                     Generate a new praise")
	fmt.Println("  favorites add|list|remove  Manage favorite praises")
	fmt.Println("  share                      Record a share, print link + QR URL")
	fmt.Println("  stats                      Print the statistics summary")
	fmt.Println("  achievements               List achievements")
	fmt.Println("  backup export|import|link  Backup and restore all data")
	fmt.Println("  settings theme|notify      Preferences")
	fmt.Println("  reset                      Wipe all data")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  beni-ov profile set --name Ada --age 30 --gender female --style poetic")
	fmt.Println("  beni-ov praise")
	fmt.Println("  beni-ov favorites add")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  GEMINI_API_KEY    Gemini API key (required for generation)")
	fmt.Println("  BENIOV_DB_PATH    Path to the local database (default beni-ov.db)")
	fmt.Println("  SENTRY_DSN        Optional error tracking DSN")
}
