// Command play is an interactive two-player chess board for the terminal.
//
// Moves are entered in coordinate notation with optional disambiguation:
// "e4", "nf3", "rd1", "e7e8/q". The board is drawn from the point of view of
// the player to move. Pass -plain for a line-based mode without the TUI.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"kingdom-chess/game"
	"kingdom-chess/rules"
)

var (
	promptStyle = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	checkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	mateStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true).Reverse(true)
)

type playModel struct {
	game    *game.Game
	input   textinput.Model
	lastErr string
	done    bool
}

func newPlayModel(g *game.Game) playModel {
	ti := textinput.New()
	ti.Placeholder = "your move"
	ti.CharLimit = 8
	ti.Width = 16
	ti.Focus()
	return playModel{game: g, input: ti}
}

func (m playModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			notation := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if notation == "" {
				return m, nil
			}
			if notation == "quit" || notation == "exit" {
				return m, tea.Quit
			}
			m.lastErr = ""
			if err := playMove(m.game, notation); err != nil {
				m.lastErr = err.Error()
				return m, nil
			}
			if m.game.KingState() == rules.Checkmate {
				m.done = true
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m playModel) View() string {
	var s strings.Builder
	s.WriteString(boardFor(m.game))
	s.WriteByte('\n')

	switch m.game.KingState() {
	case rules.Checkmate:
		s.WriteString(mateStyle.Render(fmt.Sprintf("checkmate, %v wins", m.game.EnemyColor())))
		s.WriteByte('\n')
		return s.String()
	case rules.Check:
		s.WriteString(checkStyle.Render(fmt.Sprintf("%v king is in check", m.game.MovingColor())))
		s.WriteByte('\n')
	}

	s.WriteString(promptStyle.Render(fmt.Sprintf("%v to move", m.game.MovingColor())))
	s.WriteByte('\n')
	s.WriteString(m.input.View())
	s.WriteByte('\n')
	if m.lastErr != "" {
		s.WriteString(errorStyle.Render(m.lastErr))
		s.WriteByte('\n')
	}
	return s.String()
}

// boardFor draws the position from the perspective of the player to move:
// White sees rank 1 at the bottom, Black sees the board rotated.
func boardFor(g *game.Game) string {
	return g.Board().UnicodeWithCoordinates(g.MovingColor() == rules.Black)
}

// playMove resolves the notation against the position and commits the move.
func playMove(g *game.Game, notation string) error {
	move, err := g.ParseMove(notation)
	if err != nil {
		return err
	}
	if _, err := g.MakeMove(move.Departure, move.Destination, move.Promotion.Type); err != nil {
		return err
	}
	return nil
}

// runPlain is the fallback loop for terminals where the TUI is unwanted.
func runPlain(g *game.Game) error {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Println(boardFor(g))
		switch g.KingState() {
		case rules.Checkmate:
			fmt.Printf("checkmate, %v wins\n", g.EnemyColor())
			return nil
		case rules.Check:
			fmt.Printf("%v king is in check\n", g.MovingColor())
		}
		fmt.Printf("%v> ", g.MovingColor())
		if !scanner.Scan() {
			return scanner.Err()
		}
		notation := strings.TrimSpace(scanner.Text())
		if notation == "" {
			continue
		}
		if notation == "quit" || notation == "exit" {
			return nil
		}
		if err := playMove(g, notation); err != nil {
			fmt.Println(err)
		}
	}
}

func main() {
	fen := flag.String("fen", "", "start from this position instead of the standard layout")
	plain := flag.Bool("plain", false, "line-based input instead of the interactive board")
	flag.Parse()

	g := game.New()
	if *fen != "" {
		board, side, err := rules.ParseFEN(*fen)
		if err != nil {
			slog.Error("cannot parse position", "fen", *fen, "error", err)
			os.Exit(1)
		}
		g = game.NewFromBoard(board, side)
	}

	if *plain {
		if err := runPlain(g); err != nil {
			slog.Error("input error", "error", err)
			os.Exit(1)
		}
		return
	}

	m := newPlayModel(g)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		slog.Error("terminal error", "error", err)
		os.Exit(1)
	}
	if pm, ok := final.(playModel); ok && pm.done {
		fmt.Println(boardFor(pm.game))
		fmt.Printf("checkmate, %v wins\n", pm.game.EnemyColor())
	}
}
