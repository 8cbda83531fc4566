package main

import (
	"fmt"
	"os"
	"strings"

	"sjsage522/courseadvisor/config"
	"sjsage522/courseadvisor/helpers"
	"sjsage522/courseadvisor/internal/advisor"
	"sjsage522/courseadvisor/internal/catalog"
	"sjsage522/courseadvisor/internal/recommend"
	"sjsage522/courseadvisor/internal/server"
	"sjsage522/courseadvisor/logger"
	"sjsage522/courseadvisor/pkg/errors"
	"sjsage522/courseadvisor/services/worker"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract [SUBJECT...]",
	Short: "Fetches catalog pages and writes one {SUBJECT}_catalog.txt per subject.",
	RunE: func(cmd *cobra.Command, args []string) error {
		subjects := cfg.Subjects
		if len(args) > 0 {
			subjects = nil
			for _, a := range args {
				s := strings.ToUpper(a)
				if !config.IsKnownSubject(s) {
					return errors.NewValidation(s, "unknown subject code")
				}
				subjects = append(subjects, s)
			}
		}

		deps, err := initializeServices(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer deps.Cleanup()

		extractors := catalog.CreateExtractorsFor(cfg, deps.Cache, subjects)
		logger.ForWorker().Info().
			Int("extractor_count", len(extractors)).
			Str("output_dir", cfg.OutputDir).
			Msg("Created extractors")

		w := worker.NewWorker(cmd.Context(), extractors, deps.Publisher, helpers.NewLogger(cfg.ErrorLogFile), cfg.Environment)
		summary := w.Run()

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Subject", "Entries", "Artifact", "Error"})
		for _, s := range summary {
			errText := ""
			if s.Err != nil {
				errText = s.Err.Error()
			}
			t.AppendRow(table.Row{s.Subject, s.Entries, s.Artifact, errText})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()

		// per-subject failures are reported above and do not fail the run
		return nil
	},
}

var (
	interestFlags []string
	workloadFlag  string
	askFlag       bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Ranks catalog courses matching the given interests.",
	RunE: func(cmd *cobra.Command, args []string) error {
		courses, ratings, err := loadDatasets(cfg)
		if err != nil {
			return err
		}

		a := &advisor.Advisor{Courses: courses, Ratings: ratings}
		pref := recommend.WorkloadPreference(workloadFlag)
		result := a.Rank(interestFlags, pref)

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"#", "Course", "Instructor", "Rating", "Workload", "Description"})
		for i, r := range result {
			t.AppendRow(table.Row{
				i + 1,
				r.Course.CourseCode,
				r.Rating.Instructor,
				fmt.Sprintf("%.2f", r.Rating.InstructorRating),
				fmt.Sprintf("%.2f", r.Rating.Workload),
				r.Course.Description,
			})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()

		if !askFlag {
			return nil
		}

		completer, err := advisor.NewOpenAIClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel)
		if err != nil {
			return err
		}
		a.Completer = completer

		advice, err := a.Advise(cmd.Context(), interestFlags, pref)
		if err != nil {
			return err
		}
		fmt.Println(advice.Reply.Content)
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the chat and recommendation endpoints.",
	RunE: func(cmd *cobra.Command, args []string) error {
		courses, ratings, err := loadDatasets(cfg)
		if err != nil {
			return err
		}

		completer, err := advisor.NewOpenAIClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel)
		if err != nil {
			return err
		}

		router := server.NewRouter(&server.Handler{
			Advisor:       &advisor.Advisor{Completer: completer, Courses: courses, Ratings: ratings},
			Conversations: advisor.NewConversationManager(cfg.ChatHistoryLimit),
		})

		logger.ForServer().Info().Str("port", cfg.ServerPort).Msg("Server listening")
		return server.Run(cmd.Context(), router, ":"+cfg.ServerPort)
	},
}

func init() {
	recommendCmd.Flags().StringArrayVarP(&interestFlags, "interest", "i", nil, "interest keyword matched against course descriptions (repeatable)")
	recommendCmd.Flags().StringVarP(&workloadFlag, "workload", "w", "", "workload preference")
	recommendCmd.Flags().BoolVar(&askFlag, "ask", false, "ask the language model to explain the ranking")
}

func loadDatasets(cfg *config.Config) ([]recommend.CourseRecord, []recommend.RatingRecord, error) {
	courses, err := recommend.LoadCoursesFile(cfg.CoursesCSV)
	if err != nil {
		return nil, nil, err
	}
	ratings, err := recommend.LoadRatingsFile(cfg.RatingsCSV)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Loaded %d courses and %d ratings", len(courses), len(ratings))
	return courses, ratings, nil
}
