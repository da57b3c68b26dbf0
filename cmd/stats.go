package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/riskdrill/internal/proficiency"
	"github.com/abhisek/riskdrill/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show proficiency and recent lessons",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		userID := resolveUserID(cmd)

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		snap, err := st.SnapshotRepo().Latest(ctx, userID)
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}

		fmt.Printf("Learner: %s\n\n", userID)

		if snap == nil || len(snap.Data.Proficiency) == 0 {
			fmt.Println("No proficiency recorded yet. Play a lesson first.")
		} else {
			fmt.Println("Proficiency by topic")
			fmt.Println(strings.Repeat("─", 72))
			fmt.Printf("%-28s  %-14s  %9s  %8s\n", "Topic", "Level", "Answered", "Correct")
			fmt.Println(strings.Repeat("─", 72))

			topics := make([]string, 0, len(snap.Data.Proficiency))
			for t := range snap.Data.Proficiency {
				topics = append(topics, t)
			}
			sort.Strings(topics)
			for _, t := range topics {
				p := snap.Data.Proficiency[t]
				level := fmt.Sprintf("%d (%s)", p.Level, proficiency.LevelName(p.Level))
				fmt.Printf("%-28s  %-14s  %9d  %8d\n",
					t, level, p.QuestionsAnswered, p.CorrectAnswers)
			}
		}

		lessons, err := st.EventRepo().LessonSummaries(ctx, userID, 10)
		if err != nil {
			return fmt.Errorf("query lessons: %w", err)
		}
		if len(lessons) > 0 {
			fmt.Println()
			fmt.Println("Recent lessons")
			fmt.Println(strings.Repeat("─", 72))
			fmt.Printf("%-19s  %-22s  %7s  %6s  %s\n", "When", "Topic", "Score", "Rate", "Outcome")
			fmt.Println(strings.Repeat("─", 72))
			for _, l := range lessons {
				outcome := l.Action
				if l.Action == "complete" {
					if l.Passed {
						outcome = "passed"
					} else {
						outcome = "retry"
					}
				}
				fmt.Printf("%-19s  %-22s  %3d/%-3d  %5.0f%%  %s\n",
					l.Timestamp.Local().Format("2006-01-02 15:04"),
					l.Topic,
					l.CorrectAnswers, l.QuestionsAnswered,
					l.SuccessRate,
					outcome,
				)
			}
		}

		build, err := st.EventRepo().LatestCorpusBuild(ctx)
		if err != nil {
			return fmt.Errorf("look up corpus build: %w", err)
		}
		if build != nil {
			fmt.Printf("\nCorpus: %d chunks from %d records (built %s)\n",
				build.ChunkCount, build.RecordCount,
				build.Timestamp.Local().Format("2006-01-02"))
		}

		return nil
	},
}
