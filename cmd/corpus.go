package cmd

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/riskdrill/internal/corpus"
	"github.com/abhisek/riskdrill/internal/llm"
	"github.com/abhisek/riskdrill/internal/proficiency"
	"github.com/abhisek/riskdrill/internal/store"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Manage the methodology knowledge base",
}

var corpusBuildCmd = &cobra.Command{
	Use:   "build <file.jsonl>",
	Short: "Validate a corpus file, build its index, and record the build",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		path, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		records, err := corpus.LoadFile(path)
		if err != nil {
			return fmt.Errorf("load corpus: %w", err)
		}

		cfg, err := resolveLLMConfig()
		if err != nil {
			return err
		}
		embedder, err := llm.NewEmbedder(ctx, cfg)
		if err != nil {
			return fmt.Errorf("create embedder: %w", err)
		}

		fmt.Printf("Embedding %d records...\n", len(records))
		index := corpus.NewIndex(corpus.ConfigFromEnv())
		result, err := index.Build(ctx, records, embedder)
		if err != nil {
			return fmt.Errorf("build index: %w", err)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		err = st.EventRepo().AppendCorpusBuildEvent(ctx, store.CorpusBuildEventData{
			Version:        result.Version,
			Source:         path,
			RecordCount:    result.RecordCount,
			ChunkCount:     result.ChunkCount,
			EmbeddingModel: result.EmbeddingModel,
		})
		if err != nil {
			return fmt.Errorf("record corpus build: %w", err)
		}

		fmt.Printf("Corpus built: %d records, %d chunks, embedded with %s.\n",
			result.RecordCount, result.ChunkCount, result.EmbeddingModel)
		printCorpusBreakdown(index.Stats())
		return nil
	},
}

var corpusStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show corpus contents by topic and difficulty",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		build, err := st.EventRepo().LatestCorpusBuild(ctx)
		if err != nil {
			return fmt.Errorf("look up last corpus build: %w", err)
		}
		if build == nil {
			fmt.Println("No corpus has been built yet. Run \"riskdrill corpus build <file.jsonl>\".")
			return nil
		}

		fmt.Printf("Last build:  %s\n", build.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Source:      %s\n", build.Source)
		fmt.Printf("Records:     %d\n", build.RecordCount)
		fmt.Printf("Chunks:      %d\n", build.ChunkCount)
		fmt.Printf("Embeddings:  %s\n", build.EmbeddingModel)

		// Re-read the source for the per-topic breakdown; the chunk
		// index itself lives in memory only.
		records, err := corpus.LoadFile(build.Source)
		if err != nil {
			fmt.Printf("\nSource no longer readable (%v); breakdown unavailable.\n", err)
			return nil
		}

		byTopic := make(map[string]int)
		byDifficulty := make(map[int]int)
		for _, r := range records {
			byTopic[r.Metadata.Topic]++
			byDifficulty[r.Metadata.Difficulty]++
		}
		printBreakdown(byTopic, byDifficulty, "records")
		return nil
	},
}

func printCorpusBreakdown(stats corpus.Stats) {
	printBreakdown(stats.ByTopic, stats.ByDifficulty, "chunks")
}

func printBreakdown(byTopic map[string]int, byDifficulty map[int]int, unit string) {
	fmt.Printf("\nBy topic (%s)\n", unit)
	fmt.Println(strings.Repeat("─", 40))
	topics := make([]string, 0, len(byTopic))
	for t := range byTopic {
		topics = append(topics, t)
	}
	sort.Strings(topics)
	for _, t := range topics {
		fmt.Printf("  %-28s  %6d\n", t, byTopic[t])
	}

	fmt.Printf("\nBy difficulty (%s)\n", unit)
	fmt.Println(strings.Repeat("─", 40))
	levels := make([]int, 0, len(byDifficulty))
	for d := range byDifficulty {
		levels = append(levels, d)
	}
	sort.Ints(levels)
	for _, d := range levels {
		label := fmt.Sprintf("%d (%s)", d, proficiency.LevelName(d))
		fmt.Printf("  %-28s  %6d\n", label, byDifficulty[d])
	}
}

func init() {
	corpusCmd.AddCommand(corpusBuildCmd)
	corpusCmd.AddCommand(corpusStatsCmd)
}
