package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/revisa-app/revisa/internal/perf"
	"github.com/revisa-app/revisa/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study statistics for a user",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().String("user", "", "User ID to report on")
	statsCmd.MarkFlagRequired("user")
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	userID, _ := cmd.Flags().GetString("user")

	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	svc := perf.NewService(st.Events(), st.Records(), st.Catalog(), nil)
	overall, err := svc.Overall(cmd.Context(), userID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Reviews:        %d (%d correct, %d incorrect)\n",
		overall.TotalReviews, overall.CorrectAnswers, overall.IncorrectAnswers)
	fmt.Fprintf(out, "Accuracy:       %.1f%%\n", overall.Accuracy)
	fmt.Fprintf(out, "Study time:     %.1f min\n", overall.TotalStudyTimeSecs/60)
	fmt.Fprintf(out, "Streak:         %d day(s)\n", overall.StreakDays)
	fmt.Fprintf(out, "Contests:       %d\n", overall.ContestsCount)
	if overall.LastStudyDate != nil {
		fmt.Fprintf(out, "Last studied:   %s\n", overall.LastStudyDate.Format("2006-01-02"))
	}

	if len(overall.DailyProgress) > 0 {
		fmt.Fprintln(out, "\nRecent days:")
		for _, d := range overall.DailyProgress {
			fmt.Fprintf(out, "  %s  %3d reviews  %3d correct  %2d new\n",
				d.Date, d.ReviewsCount, d.CorrectCount, d.NewCardsLearned)
		}
	}
	return nil
}
