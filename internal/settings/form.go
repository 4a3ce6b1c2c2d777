package settings

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"mogger/internal/config"
	"mogger/internal/ui"
	"mogger/pkg/mogger"
)

// Run launches an interactive form to edit config.yaml at path.
// Current values are preselected and the selection is saved on submit.
func Run(path string) (config.Settings, error) {
	current, err := config.Load(path)
	if err != nil {
		return config.Settings{}, err
	}

	// Selections bound to the fields
	timeFmt := current.Config.Time
	levelFmt := current.Config.Level

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Settings").Description("Choose how log lines are prefixed"),
			huh.NewSelect[mogger.TimeFormat]().
				Title("Time").
				Options(
					huh.NewOption("14:07 05/03/2024", mogger.TimeClockDateMonthYear),
					huh.NewOption("14:07", mogger.TimeDefault),
					huh.NewOption("off", mogger.TimeNone),
				).
				Value(&timeFmt),
			huh.NewSelect[mogger.LevelFormat]().
				Title("Level").
				Options(
					huh.NewOption("[Warning]", mogger.LevelFormatDefault),
					huh.NewOption("off", mogger.LevelFormatNone),
				).
				Value(&levelFmt),
		),
	).WithTheme(ui.FormTheme()).WithWidth(60)

	if err := form.Run(); err != nil {
		return config.Settings{}, err // form canceled or failed
	}

	next := config.Settings{
		Config: mogger.NewBuilder().TimeFormat(timeFmt).LevelFormat(levelFmt).Build(),
		Format: current.Format,
	}
	if err := config.Save(path, next); err != nil {
		return config.Settings{}, err
	}
	fmt.Printf("\n✓ saved %s\n\n", path)
	return next, nil
}
