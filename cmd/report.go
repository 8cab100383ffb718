package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"log/slog"

	"liveCrime/internal/capture"
	"liveCrime/internal/client"
	"liveCrime/internal/components"
	"liveCrime/internal/composer"
	"liveCrime/internal/config"
	"liveCrime/internal/domain"
)

type reportFlags struct {
	category    string
	description string
	inProgress  bool
	contacts    string
	files       string
	audioFile   string
	audioFor    time.Duration
}

func parseReportFlags(args []string) (*reportFlags, error) {
	fs := flag.NewFlagSet("report", flag.ContinueOnError)

	f := &reportFlags{}
	fs.StringVar(&f.category, "category", "", "crime category: ROBBERY, FRAUD, CYBERCRIME, SCAM, IMPERSONATION, OTHER")
	fs.StringVar(&f.description, "description", "", "what is happening (at least 20 characters)")
	fs.BoolVar(&f.inProgress, "in-progress", false, "the crime is happening right now")
	fs.StringVar(&f.contacts, "contacts", "", "comma-separated emergency contacts")
	fs.StringVar(&f.files, "files", "", "comma-separated evidence file paths")
	fs.StringVar(&f.audioFile, "audio", "", "audio input to record from (file or pipe)")
	fs.DurationVar(&f.audioFor, "record-for", 5*time.Second, "how long to record audio input")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// RunReport drives one composition session end to end: acquire
// location, attach evidence, record audio if asked, submit.
func RunReport(args []string) error {
	flags, err := parseReportFlags(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config failed: %w", err)
	}
	logger := components.SetupLogger(cfg.Env)

	var audioSrc capture.AudioSource
	if flags.audioFile != "" {
		in, err := os.Open(flags.audioFile)
		if err != nil {
			return fmt.Errorf("open audio input: %w", err)
		}
		defer in.Close()
		audioSrc = capture.NewChunkReaderSource(in, cfg.Client.CaptureChunkKB*1024, "audio/webm")
	}

	comp := composer.NewComposer(
		logger,
		client.NewPositionClient(cfg.Client.PositionURL, cfg.Client.RequestTimeout),
		client.NewGeocoder(cfg.Client.GeocodeURL, cfg.Client.RequestTimeout),
		client.NewEvidenceClient(cfg.Client.GatewayURL, cfg.Client.UploadTimeout),
		client.NewTicketClient(cfg.Client.GatewayURL, cfg.APIKey, cfg.Client.RequestTimeout),
		audioSrc,
	)

	// location first; the report cannot be submitted without it
	if err := comp.AcquireLocation(ctx); err != nil {
		logger.Warn("location acquisition failed", slog.Any("error", err))
		fmt.Fprintln(os.Stderr, "could not resolve location:", err)
		fmt.Fprintln(os.Stderr, "a report without location will be rejected; retrying once")

		if err := comp.AcquireLocation(ctx); err != nil {
			return fmt.Errorf("location unavailable: %w", err)
		}
	}
	if loc := comp.Location(); loc != nil {
		fmt.Printf("reporting from: %s (%.4f, %.4f)\n", loc.Address, loc.Latitude, loc.Longitude)
	}

	if paths := splitList(flags.files); len(paths) > 0 {
		items, err := capture.LoadFiles(paths)
		if err != nil {
			return fmt.Errorf("load evidence files: %w", err)
		}
		comp.AddFiles(items...)
		fmt.Printf("attached %d file(s)\n", len(items))
	}

	if audioSrc != nil {
		if err := comp.StartRecording(ctx); err != nil {
			return fmt.Errorf("start recording: %w", err)
		}
		fmt.Printf("recording audio for %s...\n", flags.audioFor)

		select {
		case <-time.After(flags.audioFor):
		case <-ctx.Done():
		}

		clip, err := comp.StopRecording("report-audio.webm")
		if err != nil {
			return fmt.Errorf("stop recording: %w", err)
		}
		fmt.Printf("recorded %d bytes of audio\n", len(clip.Data))
	}

	form := domain.ReportForm{
		Category:          domain.CrimeCategory(strings.ToUpper(flags.category)),
		Description:       flags.description,
		InProgress:        flags.inProgress,
		EmergencyContacts: splitList(flags.contacts),
	}

	id, err := comp.Submit(ctx, form)
	if err != nil {
		return fmt.Errorf("submit failed: %w", err)
	}

	fmt.Println("report submitted, ticket id:", id)
	return nil
}
