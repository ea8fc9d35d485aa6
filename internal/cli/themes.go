package cli

import (
	"context"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/topo/pkg/errors"
	"github.com/matzehuels/topo/pkg/theme"
)

type themesFlags struct {
	offset int
	limit  int
	pick   bool
}

// themesCommand creates the themes command.
func (c *CLI) themesCommand() *cobra.Command {
	var flags themesFlags

	cmd := &cobra.Command{
		Use:   "themes [themes.bin]",
		Short: "List or pick palettes from a theme file",
		Long: `List the palettes stored in a theme file as color swatches.

With --pick an interactive browser opens; the chosen theme is printed as
path:index, ready to pass to render --theme.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.themePath()
			if len(args) == 1 {
				path = args[0]
			}
			if flags.pick {
				return c.runThemePicker(cmd.Context(), path)
			}
			return c.runThemes(cmd.Context(), path, flags)
		},
	}

	cmd.Flags().IntVar(&flags.offset, "offset", 0, "first theme to list")
	cmd.Flags().IntVar(&flags.limit, "limit", 50, "number of themes to list (0 for all)")
	cmd.Flags().BoolVar(&flags.pick, "pick", false, "browse themes interactively")
	return cmd
}

// themePath returns the theme file from the config, or the built-in default.
func (c *CLI) themePath() string {
	f := defaultRenderFlags()
	if c.config.Theme != "" {
		if ref, err := theme.ParseRef(c.config.Theme); err == nil {
			return ref.Path
		}
	}
	return f.theme.Path
}

// loadPalettes reads every palette in the theme file at path.
func loadPalettes(path string) ([]theme.Palette, error) {
	s, err := theme.Open(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	out := make([]theme.Palette, s.Len())
	for i := range out {
		if out[i], err = s.Get(i); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (c *CLI) runThemes(ctx context.Context, path string, flags themesFlags) error {
	logger := loggerFromContext(ctx)

	palettes, err := loadPalettes(path)
	if err != nil {
		return err
	}
	if flags.offset < 0 || flags.limit < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "offset and limit must not be negative")
	}
	logger.Debug("loaded theme file", "path", path, "themes", len(palettes))

	start := min(flags.offset, len(palettes))
	end := len(palettes)
	if flags.limit > 0 {
		end = min(start+flags.limit, end)
	}

	fmt.Fprintln(c.stdout, themeTable(palettes[start:end], start))
	fmt.Fprintln(c.stdout, StyleDim.Render(fmt.Sprintf("  showing %d of %d themes in %s", end-start, len(palettes), path)))
	return nil
}

// themeTable renders palettes as a table of swatches. first is the index of
// palettes[0] in the file.
func themeTable(palettes []theme.Palette, first int) string {
	rows := make([][]string, len(palettes))
	for i, p := range palettes {
		lo, hi := theme.Extremes(p)
		rows[i] = []string{
			strconv.Itoa(first + i),
			swatches(p),
			p[lo].Hex(),
			p[hi].Hex(),
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Palette", "Darkest", "Brightest").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return lipgloss.NewStyle().Foreground(colorCyan)
			case col >= 2:
				return lipgloss.NewStyle().Foreground(colorGray)
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

// swatches renders each palette color as a colored block.
func swatches(p theme.Palette) string {
	var s string
	for _, col := range p {
		s += lipgloss.NewStyle().Background(lipgloss.Color(col.Hex())).Render("   ")
	}
	return s
}

func (c *CLI) runThemePicker(ctx context.Context, path string) error {
	palettes, err := loadPalettes(path)
	if err != nil {
		return err
	}
	if len(palettes) == 0 {
		return errors.New(errors.ErrCodeFormat, "theme file %s is empty", path)
	}

	final, err := tea.NewProgram(newThemePicker(palettes), tea.WithContext(ctx), tea.WithOutput(errWriter())).Run()
	if err != nil {
		return err
	}
	m := final.(ThemePickerModel)
	if m.Selected < 0 {
		return context.Canceled
	}
	ref := theme.Ref{Path: path, Index: m.Selected, Fixed: true}
	fmt.Fprintln(c.stdout, ref.String())
	return nil
}
