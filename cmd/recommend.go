package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/careerise/internal/recommend"
	"github.com/spigell/careerise/internal/store"
)

const PromptBack = "back"

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank careers or exams for a stored profile or for skills given as flags",
}

var recommendCareersCmd = &cobra.Command{
	Use:   "careers",
	Short: "Rank careers by skill overlap",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		if err := recommendCareers(cmd); err != nil {
			log.Fatal(err)
		}
	},
}

var recommendExamsCmd = &cobra.Command{
	Use:   "exams",
	Short: "Rank exams by eligibility keywords",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		if err := recommendExams(cmd); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)
	recommendCmd.AddCommand(recommendCareersCmd, recommendExamsCmd)

	recommendCmd.PersistentFlags().StringP("user", "u", "", "read skills and academic level from this stored profile")
	recommendCmd.PersistentFlags().StringSlice("skills", nil, "manually entered skills, comma separated")
	recommendCmd.PersistentFlags().StringSlice("resume-skills", nil, "skills extracted from a resume, comma separated")
	recommendCmd.PersistentFlags().String("level", "", "academic level, e.g. BTech")

	recommendCareersCmd.Flags().BoolP("interactive", "i", false, "browse the ranked careers interactively")

	recommendExamsCmd.Flags().Int("limit", 0, "maximum number of exams (default is recommend.exam-limit)")
	viper.BindPFlag("recommend.exam-limit", recommendExamsCmd.Flags().Lookup("limit"))
}

// recommendInput merges the stored profile of --user with the skills and level given as flags.
func recommendInput(cmd *cobra.Command, st *store.Store) (recommend.Input, error) {
	userID, _ := cmd.Flags().GetString("user")
	skills, _ := cmd.Flags().GetStringSlice("skills")
	resumeSkills, _ := cmd.Flags().GetStringSlice("resume-skills")
	level, _ := cmd.Flags().GetString("level")

	in := recommend.FromProfile(nil)
	if userID != "" {
		p, err := st.Get(userID)
		if err != nil {
			return in, err
		}
		in = recommend.FromProfile(p)
	}

	in.UserSkills = append(in.UserSkills, skills...)
	in.ResumeSkills = append(in.ResumeSkills, resumeSkills...)
	if level != "" {
		in.AcademicLevel = level
	}

	return in, nil
}

func recommendCareers(cmd *cobra.Command) error {
	d, err := setup()
	if err != nil {
		return err
	}
	defer d.logger.Sync()

	in, err := recommendInput(cmd, d.store)
	if err != nil {
		return err
	}

	result := in.Careers(d.base)

	interactive, _ := cmd.Flags().GetBool("interactive")
	if !interactive || len(result.Matches) == 0 {
		return printJSON(cmd.OutOrStdout(), result)
	}

	return browseCareers(cmd.OutOrStdout(), result.Matches)
}

func recommendExams(cmd *cobra.Command) error {
	d, err := setup()
	if err != nil {
		return err
	}
	defer d.logger.Sync()

	in, err := recommendInput(cmd, d.store)
	if err != nil {
		return err
	}

	return printJSON(cmd.OutOrStdout(), in.Exams(d.base, d.config.Recommend.ExamLimit))
}

func browseCareers(w io.Writer, matches []recommend.CareerMatch) error {
	items := make([]string, 0, len(matches)+1)
	for _, m := range matches {
		items = append(items, careerLabel(m))
	}
	items = append(items, PromptBack)

	for {
		careerPrompt := promptui.Select{
			Label: "Choose a career and press ENTER",
			Items: items,
		}

		idx, selected, err := careerPrompt.Run()
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if selected == PromptBack {
			return nil
		}

		fmt.Fprint(w, careerDetails(matches[idx]))
	}
}

func careerLabel(m recommend.CareerMatch) string {
	return fmt.Sprintf("%s (%d)", m.Role, m.Score)
}

func careerDetails(m recommend.CareerMatch) string {
	return fmt.Sprintf("%s\n  score: %d\n  study level: %s\n  have: %v\n  missing: %v\n  course: %s\n  playlist: %s\n  roadmap: %s\n",
		m.Role, m.Score, m.StudyLevel, m.MatchedSkills, m.MissingSkills, m.CourseLink, m.PlaylistLink, m.Roadmap)
}
