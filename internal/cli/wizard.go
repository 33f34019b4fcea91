package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/gedgen/internal/cli/formatter"
	"github.com/alexanderramin/gedgen/internal/gen"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// gedgenHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func gedgenHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive whole number")
	}
	return nil
}

func validateInt(s string) error {
	if _, err := strconv.ParseInt(s, 10, 64); err != nil {
		return fmt.Errorf("enter a whole number")
	}
	return nil
}

func validateProbability(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || f > 1 {
		return fmt.Errorf("enter a number between 0 and 1")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("enter a date as YYYY-MM-DD")
	}
	return nil
}

// runGenerateWizard collects the generation configuration through a form,
// prefilled from the current flag values.
func runGenerateWizard(cfg *gen.Config, out *string) error {
	count := strconv.Itoa(cfg.IndividualCount)
	founders := strconv.Itoa(cfg.FounderCount)
	seed := strconv.FormatInt(cfg.Seed, 10)
	marriage := strconv.FormatFloat(cfg.MarriageProbability, 'f', -1, 64)
	death := strconv.FormatFloat(cfg.DeathProbability, 'f', -1, 64)
	children := strconv.Itoa(cfg.ExpectedChildren)
	start := cfg.FounderBirthStart.Format("2006-01-02")
	reference := cfg.Reference.Format("2006-01-02")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Individuals").
				Description("Target tree size").
				Value(&count).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Founders").
				Description("Root individuals without parents").
				Value(&founders).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Seed").
				Value(&seed).
				Validate(validateInt),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Marriage probability").
				Value(&marriage).
				Validate(validateProbability),
			huh.NewInput().
				Title("Death probability").
				Value(&death).
				Validate(validateProbability),
			huh.NewInput().
				Title("Expected children per union").
				Value(&children).
				Validate(validatePositiveInt),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Founder birth start").
				Placeholder("1670-01-01").
				Value(&start).
				Validate(validateDate),
			huh.NewInput().
				Title("Reference date").
				Placeholder("2020-01-01").
				Value(&reference).
				Validate(validateDate),
			huh.NewInput().
				Title("Output file").
				Description("Blank writes to stdout").
				Value(out),
		),
	).WithTheme(gedgenHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	cfg.IndividualCount, _ = strconv.Atoi(count)
	cfg.FounderCount, _ = strconv.Atoi(founders)
	cfg.Seed, _ = strconv.ParseInt(seed, 10, 64)
	cfg.MarriageProbability, _ = strconv.ParseFloat(marriage, 64)
	cfg.DeathProbability, _ = strconv.ParseFloat(death, 64)
	cfg.ExpectedChildren, _ = strconv.Atoi(children)
	cfg.FounderBirthStart, _ = time.Parse("2006-01-02", start)
	cfg.Reference, _ = time.Parse("2006-01-02", reference)
	return nil
}
