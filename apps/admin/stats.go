package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/trezcool/gradebook/core/student"
)

func (cli *commandLine) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the dashboard aggregates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats := cli.svc.Stats()
			w := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Total students\t%d\n", stats.TotalStudents)
			fmt.Fprintf(w, "Average score\t%s\n", stats.AverageScore)
			fmt.Fprintf(w, "Top performer\t%s\n", stats.TopPerformer)
			fmt.Fprintf(w, "Passing rate\t%s\n", stats.PassingRate)
			_ = w.Flush()

			fmt.Fprintln(cli.out, "\nGrade distribution")
			w = tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
			for _, b := range stats.GradeDistribution.Buckets {
				fmt.Fprintf(w, "%s\t%d\t%s\n", cli.grade(b.Grade), b.Count, strings.Repeat("#", b.Count))
			}
			if n := stats.GradeDistribution.Ungraded; n > 0 {
				fmt.Fprintf(w, "%s\t%d\t%s\n", cli.grade(student.GradeNone), n, strings.Repeat("#", n))
			}
			_ = w.Flush()
			return nil
		},
	}
}

func (cli *commandLine) subjectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subjects",
		Short: "Print the average of every subject",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SUBJECT\tAVERAGE\tGRADE")
			for _, sa := range cli.svc.Stats().SubjectPerformance {
				fmt.Fprintf(w, "%s\t%.2f\t%s\n", sa.Subject, sa.Average, cli.grade(student.Classify(sa.Average)))
			}
			return w.Flush()
		},
	}
}
