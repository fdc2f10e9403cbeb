// Package cli implements a command-line UI for the game.
package cli

import (
	"bufio"
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"github.com/janpfeifer/colonyGo/internal/generics"
	. "github.com/janpfeifer/colonyGo/internal/state"
	"github.com/janpfeifer/colonyGo/internal/ui/terminal"
	"github.com/pkg/errors"
	"io"
	"k8s.io/klog/v2"
	"os"
	"regexp"
	"strconv"
	"strings"
)

const (
	// Prompt shown when waiting for a command.
	Prompt = "AvB $ "

	WonMessage  = "All bees are vanquished. You win!"
	LostMessage = "The ant queen has perished! Please try again."
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	promptStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	beeStyle       = lipgloss.NewStyle().Background(lipgloss.Color("3")).Foreground(lipgloss.Color("0"))
	waterStyle     = lipgloss.NewStyle().Background(lipgloss.Color("6"))
	guardStyle     = lipgloss.NewStyle().Underline(true)
	wonStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	lostStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	bannerStyle    = lipgloss.NewStyle().Padding(1, 2).Foreground(lipgloss.Color("0"))
	fullEaterStyle = lipgloss.NewStyle().Background(lipgloss.Color("5")).Foreground(lipgloss.Color("3"))

	antStyles = [LastAntKind]lipgloss.Style{
		Grower:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Thrower: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Eater:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		Scuba:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	}

	commandSplitter = regexp.MustCompile(`\s+`)
)

// UI reads commands and prints the colony on a text terminal.
type UI struct {
	color, clearScreen bool
	reader             *bufio.Reader
	out                io.Writer

	// MaxTurns, if > 0, ends Run once the game reaches that many turns.
	MaxTurns int
}

// New creates a UI on the standard input and output.
func New(color, clearScreen bool) *UI {
	return NewWithIO(os.Stdin, os.Stdout, color, clearScreen)
}

// NewWithIO creates a UI reading commands from in and printing to out.
func NewWithIO(in io.Reader, out io.Writer, color, clearScreen bool) *UI {
	return &UI{
		color:       color,
		clearScreen: clearScreen,
		reader:      bufio.NewReader(in),
		out:         out,
	}
}

// render text with the style, if colors are enabled.
func (ui *UI) render(style lipgloss.Style, text string) string {
	if !ui.color {
		return text
	}
	return style.Render(text)
}

func (ui *UI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(ui.out, format, args...)
}

// PrintMap prints the colony: ants, bees and water of each tunnel, the bees left in the
// hive, and the status of the game.
func (ui *UI) PrintMap(game *Game) {
	if ui.clearScreen {
		ui.printf("\033c")
	}
	ui.printf("%s", ui.Map(game))
}

// Map returns the representation of the colony printed by PrintMap.
func (ui *UI) Map(game *Game) string {
	var sb strings.Builder
	places := game.Places()
	tunnelLength := len(places[0])
	beeIcon := ui.render(beeStyle, "B")
	columns := make([]string, tunnelLength)
	for ii := range columns {
		columns[ii] = strconv.Itoa(ii)
	}
	columnsLine := "     " + strings.Join(columns, "    ")

	sb.WriteString(ui.render(titleStyle, "The Colony is under attack!"))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Turn: %d, Food: %d, Boosts available: [%s]\n",
		game.Turn(), game.Food(), strings.Join(game.BoostNames(), ","))
	if waveTurn, numBees, found := game.Hive().NextWave(game.Turn()); found {
		fmt.Fprintf(&sb, "Next wave: turn %d (%d bees)\n", waveTurn, numBees)
	}
	sb.WriteString(columnsLine + "      Hive\n")

	for tunnel, tunnelPlaces := range places {
		sb.WriteString("    " + strings.Repeat("=====", tunnelLength))
		if tunnel == 0 {
			sb.WriteString("    ")
			if count := game.HiveBeesCount(); count > 0 {
				sb.WriteString(beeIcon + beeCount(count))
			}
		}
		sb.WriteString("\n")

		fmt.Fprintf(&sb, "%d)  ", tunnel)
		for _, place := range tunnelPlaces {
			sb.WriteString(ui.iconFor(place.Ant()))
			sb.WriteString(" ")
			if count := len(place.Bees()); count > 0 {
				sb.WriteString(beeIcon + beeCount(count))
			} else {
				sb.WriteString("  ")
			}
			sb.WriteString(" ")
		}
		sb.WriteString("\n    ")
		for _, place := range tunnelPlaces {
			if place.IsWater() {
				sb.WriteString(ui.render(waterStyle, "~~~~") + " ")
			} else {
				sb.WriteString("==== ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString(columnsLine + "\n")
	return sb.String()
}

// beeCount is shown next to the bee icon: blank for a single bee.
func beeCount(count int) string {
	if count > 1 {
		return strconv.Itoa(count)
	}
	return " "
}

// iconFor returns the one letter icon of the ant, or a space if there is none.
func (ui *UI) iconFor(ant *Ant) string {
	if ant == nil {
		return " "
	}
	switch kind := ant.Kind(); kind {
	case Guard:
		if guarded := ant.Guarded(); guarded != nil {
			return ui.render(guardStyle, ui.iconFor(guarded))
		}
		return ui.render(guardStyle, "x")
	case Eater:
		if ant.IsFull() {
			return ui.render(fullEaterStyle, "E")
		}
		return ui.render(antStyles[kind], "E")
	default:
		return ui.render(antStyles[kind], kind.String()[:1])
	}
}

// PrintOutcome prints the message for a finished game. It's a no-op if the game is Undecided.
func (ui *UI) PrintOutcome(outcome Outcome) {
	switch outcome {
	case Won:
		ui.printf("%s\n", ui.render(wonStyle, "Yaaaay---\n"+WonMessage+"\n"))
	case Lost:
		ui.printf("%s\n", ui.render(lostStyle, "Bzzzzz---\n"+LostMessage+"\n"))
	}
}

// PrintBanner prints a message centered in the terminal, in a colored box if colors are enabled.
func (ui *UI) PrintBanner(message string, background lipgloss.Color) {
	block := message
	if ui.color {
		block = bannerStyle.Background(background).Render(message)
	}
	width := terminal.Width(ui.out)
	for _, line := range strings.Split(block, "\n") {
		indent := max((width-lipgloss.Width(line))/2, 0)
		ui.printf("%s%s\n", strings.Repeat(" ", indent), line)
	}
}

// PrintHelp lists the available commands.
func (ui *UI) PrintHelp() {
	ui.printf(`Commands:
  show                      Shows the current game board.
  deploy <kind> <row,col>   Deploys an ant to the tunnel, e.g.: "deploy Thrower 0,6". Aliases: add, d.
                            Kinds: %s.
  remove <row,col>          Removes the ant from the tunnel. Alias: rm.
  boost <boost> <row,col>   Applies a boost to the ant in the tunnel. Alias: b.
  turn                      Ends the current turn: ants and bees will act. Aliases: t, end turn, take turn.
  help                      Shows this message.
  quit                      Leaves the game. Alias: exit.
`, strings.Join(antKindNames(), ", "))
}

func antKindNames() []string {
	return generics.SliceMap(AntKinds[:], AntKind.String)
}

// Run prints the map and executes the commands read until the game is finished, the user
// quits, the input ends or MaxTurns is reached. It returns the game outcome.
func (ui *UI) Run(game *Game) (Outcome, error) {
	ui.PrintMap(game)
	for {
		ui.printf("%s", ui.render(promptStyle, Prompt))
		line, err := ui.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return game.GameIsWon(), errors.Wrap(err, "failed to read command")
		}
		if ui.Execute(game, line) {
			return game.GameIsWon(), nil
		}
		if err == io.EOF {
			ui.printf("\n")
			return game.GameIsWon(), nil
		}
		if ui.MaxTurns > 0 && game.Turn() >= ui.MaxTurns {
			ui.printf("Reached the maximum of %d turns.\n", ui.MaxTurns)
			return game.GameIsWon(), nil
		}
	}
}

// Execute runs one command line. It returns true if the game is over, either because it
// is finished or because the user quit.
func (ui *UI) Execute(game *Game, line string) (done bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	fields := commandSplitter.Split(line, -1)
	command := strings.ToLower(fields[0])
	args := fields[1:]
	if len(fields) >= 2 && (command == "end" || command == "take") && strings.EqualFold(fields[1], "turn") {
		command = "turn"
		args = fields[2:]
	}
	klog.V(2).Infof("Command %q, args=%q", command, args)

	switch command {
	case "show":
		ui.PrintMap(game)
	case "deploy", "add", "d":
		if len(args) < 2 {
			ui.printf("Usage: deploy <kind> <row,col>\n")
			return false
		}
		if err := game.DeployAnt(args[0], strings.Join(args[1:], "")); err != nil {
			ui.printf("Invalid deployment: %s.\n", err)
			return false
		}
		ui.PrintMap(game)
	case "remove", "rm":
		if len(args) < 1 {
			ui.printf("Usage: remove <row,col>\n")
			return false
		}
		if err := game.RemoveAnt(strings.Join(args, "")); err != nil {
			ui.printf("Invalid removal: %s.\n", err)
			return false
		}
		ui.PrintMap(game)
	case "boost", "b":
		if len(args) < 2 {
			ui.printf("Usage: boost <boost> <row,col>\n")
			return false
		}
		if err := game.BoostAnt(args[0], strings.Join(args[1:], "")); err != nil {
			ui.printf("Invalid boost: %s\n", err)
		}
	case "turn", "t":
		game.TakeTurn()
		ui.PrintMap(game)
		outcome := game.GameIsWon()
		ui.PrintOutcome(outcome)
		return outcome != Undecided
	case "help", "h", "?":
		ui.PrintHelp()
	case "quit", "exit":
		return true
	default:
		ui.printf("Unknown command %q, type \"help\" for the list of commands.\n", fields[0])
	}
	return false
}
