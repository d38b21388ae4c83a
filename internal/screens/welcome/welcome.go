package welcome

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyplan/internal/router"
	"github.com/abhisek/studyplan/internal/screen"
	"github.com/abhisek/studyplan/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 400 * time.Millisecond
	phase2End    = 1200 * time.Millisecond
	totalDur     = 2000 * time.Millisecond
)

const bookArt = `    ______ ______
  _/      Y      \_
 // ~~ ~~ | ~~ ~  \\
// ~ ~ ~~ | ~~~ ~~ \\
//________.|.________\\
'----------'-'----------'`

// pageFrames flicker beside the book
var pageFrames = []string{"✎", "✐"}

type tickMsg time.Time

// WelcomeScreen shows a short splash, then hands over to the home screen
// on the first key press.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	streak       int
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced
// by homeFactory. streak is the current day streak shown in the greeting.
func New(homeFactory func() screen.Screen, streak int) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
		streak:      streak,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed >= totalDur {
			return w, nil
		}
		w.elapsed += tickInterval
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	return router.Swap(w.homeFactory())
}

// Greeting is the line shown under the banner.
func (w *WelcomeScreen) Greeting() string {
	switch {
	case w.streak <= 0:
		return "Plan the week. Tick it off."
	case w.streak == 1:
		return "Day 1 of your streak. Keep it going!"
	default:
		return fmt.Sprintf("%d days in a row. Keep it going!", w.streak)
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	book := lipgloss.NewStyle().Foreground(theme.Secondary).Render(bookArt)
	if w.elapsed >= phase1End && w.elapsed < totalDur {
		page := lipgloss.NewStyle().Foreground(theme.Accent).Render(pageFrames[w.tickCount%len(pageFrames)])
		lines := strings.Split(book, "\n")
		lines[0] = page + "  " + lines[0]
		book = strings.Join(lines, "\n")
	}
	sections = append(sections, book)

	if w.elapsed >= phase1End {
		sections = append(sections, "", RenderBanner(width))
	}

	if w.elapsed >= phase2End {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(w.Greeting()),
			"",
			theme.Hint.Render("press any key to continue"))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
