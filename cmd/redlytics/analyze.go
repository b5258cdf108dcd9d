package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spacesedan/redlytics/config"
	"github.com/spacesedan/redlytics/internal/acquisition"
	"github.com/spacesedan/redlytics/internal/analysis"
	"github.com/spacesedan/redlytics/internal/archive"
	"github.com/spacesedan/redlytics/internal/cache"
	"github.com/spacesedan/redlytics/internal/clients"
	"github.com/spacesedan/redlytics/internal/models"
	"github.com/spacesedan/redlytics/internal/pipeline"
	"github.com/spacesedan/redlytics/internal/resilience"
)

var analyzeJSON bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze <username>",
	Short: "Fetch a user's posts, comments and trophies and print the report",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the full report as JSON")
}

// newChain refuses to start without a way to reach the API.
func newChain(cfg config.Config) (*clients.Chain, error) {
	chain := clients.NewChainFromConfig(cfg)
	if len(chain.Adapters()) == 0 {
		return nil, fmt.Errorf("%w: set REDDIT_CLIENT_ID and REDDIT_CLIENT_SECRET or RELAY_URLS", clients.ErrNoAdapters)
	}
	return chain, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.Load()
	username := args[0]

	chain, err := newChain(cfg)
	if err != nil {
		return err
	}

	var store cache.Store = cache.NewMemoryStore()
	if cfg.ValkeyAddress != "" {
		vs, err := cache.NewValkeyStore(cache.ValkeyOptions{
			Address:  cfg.ValkeyAddress,
			Password: cfg.ValkeyPassword,
			TLS:      cfg.ValkeyTLS,
		})
		if err != nil {
			slog.Warn("[Main] Valkey unavailable, using in-memory cache",
				slog.String("error", err.Error()))
		} else {
			defer vs.Close()
			store = vs
		}
	}

	service := acquisition.NewService(
		chain,
		cache.New(store, cfg.CacheTTL),
		acquisition.WithPaging(cfg.MaxPages, cfg.PageSize),
	)

	opts := []pipeline.Option{pipeline.WithPolicy(resilience.PolicyFromConfig(cfg))}
	if cfg.ReportTable != "" {
		client, err := archive.NewDynamoDBClient(ctx, cfg)
		if err != nil {
			slog.Warn("[Main] Report archive disabled", slog.String("error", err.Error()))
		} else {
			opts = append(opts, pipeline.WithArchive(archive.NewDynamoArchive(client, cfg.ReportTable, cfg.ReportTTL)))
		}
	}

	runner := pipeline.NewRunner(service, analysis.NewAnalyzer(), opts...)
	result, err := runner.Run(ctx, username)
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), pipeline.UserMessage(err, username))
		return err
	}

	if analyzeJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	printSummary(cmd.OutOrStdout(), result)
	return nil
}

func printSummary(w io.Writer, r *models.AnalysisResult) {
	fmt.Fprintf(w, "u/%s\n", r.Username)
	fmt.Fprintf(w, "  posts %d (karma %d, avg %.1f)  comments %d (karma %d, avg %.1f)\n",
		r.TotalPosts, r.PostKarma, r.AvgPostScore, r.TotalComments, r.CommentKarma, r.AvgCommentScore)
	fmt.Fprintf(w, "  spans %d days, most active %s on %s\n", r.DataSpansDays, r.MostActiveHour, r.MostActiveDay)

	if len(r.TopSubredditsByActivity) > 0 {
		names := make([]string, 0, len(r.TopSubredditsByActivity))
		for _, s := range r.TopSubredditsByActivity {
			names = append(names, fmt.Sprintf("r/%s (%d)", s.Name, s.Value))
		}
		fmt.Fprintf(w, "  top subreddits: %s\n", strings.Join(names, ", "))
	}

	moods := make([]string, 0, len(r.SentimentDistribution))
	for _, s := range r.SentimentDistribution {
		moods = append(moods, fmt.Sprintf("%s %d", s.Name, s.Value))
	}
	if len(moods) > 0 {
		fmt.Fprintf(w, "  sentiment: %s\n", strings.Join(moods, ", "))
	}

	fmt.Fprintf(w, "  vocabulary: %d words, %d unique, grade %.1f\n",
		r.Vocabulary.WordCount, r.Vocabulary.UniqueWords, r.Vocabulary.Readability)
	if n := min(10, len(r.Vocabulary.TopWords)); n > 0 {
		top := make([]string, 0, n)
		for _, word := range r.Vocabulary.TopWords[:n] {
			top = append(top, word.Text)
		}
		fmt.Fprintf(w, "  signature words: %s\n", strings.Join(top, ", "))
	}
	if r.TotalAwards > 0 {
		fmt.Fprintf(w, "  awards: %d\n", r.TotalAwards)
	}
}
