package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"strings"
	"syscall"

	"github.com/poiesic/faqit/embedcache"
	"github.com/poiesic/faqit/httpapi"
	"github.com/urfave/cli/v2"
)

func questionArg(c *cli.Context) (string, error) {
	question := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if question == "" {
		return "", fmt.Errorf("a question is required")
	}
	return question, nil
}

func askCommand(c *cli.Context) error {
	ctx := c.Context
	question, err := questionArg(c)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	engine, err := openEngine(ctx, cfg, c.App.ErrWriter)
	if err != nil {
		return err
	}
	defer engine.Close()

	result := engine.AnswerQuestion(ctx, question)

	out := c.App.Writer
	fmt.Fprintln(out, result.Answer)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Confidence: %s (top similarity %.2f)\n", result.Confidence, result.TopSimilarity)
	for i, m := range result.MatchedFAQs() {
		fmt.Fprintf(out, "  %d. %s (%d%%)\n", i+1, m.Question, m.SimilarityPercent)
	}
	return nil
}

func debugCommand(c *cli.Context) error {
	ctx := c.Context
	question, err := questionArg(c)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	engine, err := openEngine(ctx, cfg, c.App.ErrWriter)
	if err != nil {
		return err
	}
	defer engine.Close()

	matches, err := engine.FindSimilar(ctx, question, c.Int("top-k"))
	if err != nil {
		return fmt.Errorf("failed to rank question: %w", err)
	}

	out := c.App.Writer
	fmt.Fprintf(out, "Question: %q\n", question)
	if len(matches) == 0 {
		fmt.Fprintln(out, "  No matches found")
	}
	for i, m := range matches {
		fmt.Fprintf(out, "  %d. Score: %.3f (%.1f%%) - %s\n", i+1, m.Similarity, m.Similarity*100, truncate(m.Entry.Question, 60))
	}

	probes := append([]float64{engine.Thresholds().Low}, c.Float64Slice("probe")...)
	for _, threshold := range probes {
		verdict := "NO"
		if len(matches) > 0 && matches[0].Similarity >= threshold {
			verdict = "YES"
		}
		fmt.Fprintf(out, "  Would match at threshold %.2f? %s\n", threshold, verdict)
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

func rebuildCommand(c *cli.Context) error {
	ctx := c.Context
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	store, err := openCacheStore(ctx, cfg.Cache)
	if err != nil {
		return fmt.Errorf("failed to open embedding cache: %w", err)
	}
	err = embedcache.New(store, embedcache.WithLogger(slog.Default())).Invalidate(ctx)
	store.Close()
	if err != nil {
		return fmt.Errorf("failed to delete embedding cache: %w", err)
	}

	engine, err := openEngine(ctx, cfg, c.App.ErrWriter)
	if err != nil {
		return err
	}
	defer engine.Close()

	fmt.Fprintf(c.App.Writer, "Rebuilt embeddings for %d entries (corpus %s)\n", engine.Count(), engine.Fingerprint().String()[:12])
	return nil
}

func listCommand(c *cli.Context) error {
	ctx := c.Context
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	engine, err := openEngine(ctx, cfg, c.App.ErrWriter)
	if err != nil {
		return err
	}
	defer engine.Close()

	out := c.App.Writer
	for _, e := range engine.Entries() {
		fmt.Fprintf(out, "[%d] %s\n    %s\n", e.ID, e.Question, e.Answer)
	}
	fmt.Fprintf(out, "%d entries\n", engine.Count())
	return nil
}

func serveCommand(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if v := c.String("addr"); v != "" {
		cfg.HTTP.Address = v
	}

	engine, err := openEngine(ctx, cfg, c.App.ErrWriter)
	if err != nil {
		return err
	}
	defer engine.Close()

	server := httpapi.NewServer(cfg.HTTP, engine, nil)
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()
	fmt.Fprintf(c.App.ErrWriter, "Serving %d FAQ entries on %s\n", engine.Count(), cfg.HTTP.Address)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
