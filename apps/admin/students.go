package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/student"
)

var errInvalidScore = errors.New("invalid score")

func (cli *commandLine) listCmd() *cobra.Command {
	var search, ordering string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List students with their average and grade",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := student.ParseSortSpec(ordering)
			if err != nil {
				return err
			}
			cli.printRecords(cli.svc.Query(search, spec))
			return nil
		},
	}
	cmd.Flags().StringVarP(&search, "search", "s", "", "filter by name or registered id (case insensitive)")
	cmd.Flags().StringVarP(&ordering, "sort", "o", "", "sort by name or averageScore; prefix with - for descending")
	return cmd
}

func (cli *commandLine) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a student's scores",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := cli.svc.Preview(args[0])
			if err != nil {
				return err
			}
			cli.printRecord(rec)
			return nil
		},
	}
}

func (cli *commandLine) addCmd() *cobra.Command {
	var (
		name   string
		scores []string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a student; unscored subjects default to 0",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseScores(scores)
			if err != nil {
				return err
			}
			ns := student.NewStudent{
				Name:   name,
				Scores: append(student.FormScores(cli.svc.Subjects(), parsed), extraScores(cli.svc.Subjects(), parsed)...),
			}
			st, err := cli.svc.Add(cmd.Context(), ns)
			if err != nil {
				return err
			}
			fmt.Fprintf(cli.out, "added %s (%s)\n", st.Name, st.RegisteredID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "the student's name")
	cmd.Flags().StringArrayVar(&scores, "score", nil, "a SUBJECT=SCORE pair; repeat for every subject")
	return cmd
}

func (cli *commandLine) updateCmd() *cobra.Command {
	var (
		name   string
		scores []string
	)
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Rename a student or change some of their scores",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseScores(scores)
			if err != nil {
				return err
			}
			us := student.UpdateStudent{Name: name}
			if len(parsed) > 0 {
				orig, found := cli.svc.Roster().Find(args[0])
				if !found {
					return student.ErrNotFound
				}
				us.Scores = mergeScores(orig.Scores, parsed)
			}
			st, err := cli.svc.Update(cmd.Context(), args[0], us)
			if err != nil {
				return err
			}
			fmt.Fprintf(cli.out, "updated %s (%s)\n", st.Name, st.RegisteredID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "the new name (unchanged if empty)")
	cmd.Flags().StringArrayVar(&scores, "score", nil, "a SUBJECT=SCORE pair to set; other scores are kept")
	return cmd
}

func (cli *commandLine) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Remove a student from the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.svc.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cli.out, "deleted %s\n", args[0])
			return nil
		},
	}
}

func (cli *commandLine) resetCmd() *cobra.Command {
	var clearStore bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace the roster with the sample roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if clearStore {
				if err := cli.repo.Clear(cmd.Context()); err != nil {
					return err
				}
			}
			if err := cli.svc.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cli.out, "roster reset (%d students)\n", len(cli.svc.Roster()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&clearStore, "clear", false, "also delete the persisted roster and theme first")
	return cmd
}

// parseScores parses SUBJECT=SCORE pairs, keeping their order.
func parseScores(pairs []string) ([]student.SubjectScore, error) {
	scores := make([]student.SubjectScore, 0, len(pairs))
	for _, pair := range pairs {
		subj, raw, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, errors.Wrapf(errInvalidScore, "%q, expected SUBJECT=SCORE", pair)
		}
		score, err := strconv.ParseFloat(core.CleanString(raw), 64)
		if err != nil {
			return nil, errors.Wrapf(errInvalidScore, "%q, %q is not a number", pair, raw)
		}
		scores = append(scores, student.SubjectScore{Subject: core.CleanString(subj), Score: score})
	}
	return scores, nil
}

// extraScores returns the scores whose subject is not configured, so validation reports them.
func extraScores(subjects []string, scores []student.SubjectScore) []student.SubjectScore {
	known := make(map[string]bool, len(subjects))
	for _, s := range subjects {
		known[s] = true
	}
	var extra []student.SubjectScore
	for _, sc := range scores {
		if !known[sc.Subject] {
			extra = append(extra, sc)
		}
	}
	return extra
}

// mergeScores overrides the matching entries of orig and appends new subjects.
func mergeScores(orig, changes []student.SubjectScore) []student.SubjectScore {
	merged := append([]student.SubjectScore(nil), orig...)
	for _, ch := range changes {
		replaced := false
		for i := range merged {
			if merged[i].Subject == ch.Subject {
				merged[i].Score = ch.Score
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, ch)
		}
	}
	return merged
}

func (cli *commandLine) printRecords(records []student.Record) {
	w := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tREGISTERED ID\tNAME\tAVERAGE\tGRADE")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", rec.ID, rec.RegisteredID, rec.Name, formatAverage(rec.AverageScore), cli.grade(rec.Grade))
	}
	_ = w.Flush()
	fmt.Fprintf(cli.out, "%d student(s)\n", len(records))
}

func (cli *commandLine) printRecord(rec student.Record) {
	fmt.Fprintf(cli.out, "%s (%s) id=%s\n", rec.Name, rec.RegisteredID, rec.ID)
	w := tabwriter.NewWriter(cli.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SUBJECT\tSCORE\tGRADE")
	for _, sc := range rec.Scores {
		fmt.Fprintf(w, "%s\t%s\t%s\n", sc.Subject, strconv.FormatFloat(sc.Score, 'f', -1, 64), cli.grade(student.Classify(sc.Score)))
	}
	fmt.Fprintf(w, "AVERAGE\t%s\t%s\n", formatAverage(rec.AverageScore), cli.grade(rec.Grade))
	_ = w.Flush()
}

func (cli *commandLine) grade(g student.Grade) string {
	if !cli.colored() {
		return string(g)
	}
	return colorize(string(g), g.Color())
}

func formatAverage(avg *float64) string {
	if avg == nil {
		return student.NotAvailable
	}
	return fmt.Sprintf("%.1f", *avg)
}
