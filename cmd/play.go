package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/riskdrill/internal/app"
	"github.com/abhisek/riskdrill/internal/controller"
	"github.com/abhisek/riskdrill/internal/corpus"
	"github.com/abhisek/riskdrill/internal/evaluation"
	"github.com/abhisek/riskdrill/internal/llm"
	"github.com/abhisek/riskdrill/internal/proficiency"
	"github.com/abhisek/riskdrill/internal/questiongen"
	"github.com/abhisek/riskdrill/internal/retrieval"
	"github.com/abhisek/riskdrill/internal/session"
	"github.com/abhisek/riskdrill/internal/store"
)

var playCmd = &cobra.Command{
	Use:   "play <topic>",
	Short: "Start a lesson on a topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := args[0]
		ctx := cmd.Context()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		cfg, err := resolveLLMConfig()
		if err != nil {
			return err
		}
		provider, err := llm.NewProvider(ctx, cfg, st.EventRepo())
		if err != nil {
			return fmt.Errorf("create LLM provider: %w", err)
		}
		embedder, err := llm.NewEmbedder(ctx, cfg)
		if err != nil {
			return fmt.Errorf("create embedder: %w", err)
		}

		corpusPath, err := resolveCorpusPath(ctx, cmd, st)
		if err != nil {
			return err
		}
		records, err := corpus.LoadFile(corpusPath)
		if err != nil {
			return fmt.Errorf("load corpus: %w", err)
		}

		fmt.Fprintf(os.Stderr, "Indexing corpus (%d records)...\n", len(records))
		index := corpus.NewIndex(corpus.ConfigFromEnv())
		if _, err := index.Build(ctx, records, embedder); err != nil {
			return fmt.Errorf("build corpus index: %w", err)
		}

		prof := proficiency.NewService(proficiency.DefaultConfig(), st.EventRepo())
		engine := session.NewEngine(
			session.DefaultConfig(),
			prof,
			retrieval.New(index, embedder, retrieval.DefaultConfig()),
			questiongen.New(provider, questiongen.DefaultConfig()),
			evaluation.New(provider, evaluation.DefaultConfig()),
			st.EventRepo(),
		)
		ctrl := controller.New(engine, prof, st.SnapshotRepo())

		return app.Run(ctrl, resolveUserID(cmd), topic)
	},
}

// resolveCorpusPath finds the corpus source: --corpus flag, then
// RISKDRILL_CORPUS, then the source recorded by the last corpus build.
func resolveCorpusPath(ctx context.Context, cmd *cobra.Command, st *store.Store) (string, error) {
	if p, _ := cmd.Flags().GetString("corpus"); p != "" {
		return p, nil
	}
	if p := os.Getenv("RISKDRILL_CORPUS"); p != "" {
		return p, nil
	}
	build, err := st.EventRepo().LatestCorpusBuild(ctx)
	if err != nil {
		return "", fmt.Errorf("look up last corpus build: %w", err)
	}
	if build == nil || build.Source == "" {
		return "", fmt.Errorf("no corpus configured: run \"riskdrill corpus build <file.jsonl>\" or pass --corpus")
	}
	return build.Source, nil
}

func init() {
	playCmd.Flags().String("corpus", "", "Path to the corpus JSONL file")
	playCmd.SetContext(context.Background())
}
