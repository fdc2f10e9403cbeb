// colony is an interactive terminal game: deploy ants in the tunnels of the colony to
// defend the queen from waves of bees.
//
// Use -auto to watch an automated player instead, e.g.: -auto=greedy:kind=scuba.
package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/colonyGo/internal/players"
	_ "github.com/janpfeifer/colonyGo/internal/players/default"
	"github.com/janpfeifer/colonyGo/internal/profilers"
	. "github.com/janpfeifer/colonyGo/internal/state"
	"github.com/janpfeifer/colonyGo/internal/ui/cli"
	"github.com/janpfeifer/colonyGo/internal/ui/terminal"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"os"
	"time"
)

var (
	flagConfig = flag.String("config", "",
		"Game configuration, e.g.: \"food=4,tunnels=3,length=8,moat=3,bee_armor=3,bee_damage=1,waves=2:1|5:2\". "+
			"It is applied on top of -config_file, if given.")
	flagConfigFile = flag.String("config_file", "", "YAML scenario file.")
	flagSeed       = flag.Uint64("seed", 0, "Seed for the game's random numbers. If 0, a random seed is used.")
	flagColor      = flag.Bool("color", true, "Use colors in the map.")
	flagClear      = flag.Bool("clear", false, "Clear the screen before printing the map.")
	flagAuto       = flag.String("auto", "",
		fmt.Sprintf("Watch an automated player defend the colony instead of playing. Players: %q", players.Modules()))
	flagDelay    = flag.Duration("delay", 500*time.Millisecond, "Delay between turns when using -auto.")
	flagMaxTurns = flag.Int("max_turns", 0, "If > 0, the game stops after these many turns.")
)

func main() {
	klog.InitFlags(nil)
	// Game events are logged at verbosity 1: show them by default.
	must.M(flag.Set("v", "1"))
	flag.Parse()
	if *flagMaxTurns < 0 {
		exceptions.Panicf("invalid -max_turns=%d, it must be >= 0", *flagMaxTurns)
	}

	// Capture Control+C
	ctx, cancel := context.WithCancel(context.Background())
	terminal.SafeInterrupt(cancel, 3*time.Second)
	defer cancel()

	must.M(profilers.Setup(ctx))
	defer profilers.OnQuit()

	config := must.M1(NewConfig(*flagConfigFile, *flagConfig))
	klog.V(1).Infof("Scenario: %s", config)
	game := must.M1(NewGameFromConfig(config, NewRand(*flagSeed)))
	ui := cli.New(*flagColor, *flagClear)
	ui.MaxTurns = *flagMaxTurns

	var outcome Outcome
	var err error
	if *flagAuto == "" {
		outcome, err = ui.Run(game)
	} else {
		outcome, err = watch(ctx, ui, game)
	}
	if err != nil {
		klog.Errorf("Game failed: %+v", err)
		os.Exit(1)
	}

	fmt.Println()
	switch outcome {
	case Won:
		ui.PrintBanner(fmt.Sprintf("*** Colony saved in %d turns! ***", game.Turn()), "10")
	case Lost:
		ui.PrintBanner(fmt.Sprintf("*** Colony lost at turn %d ***", game.Turn()), "9")
	default:
		ui.PrintBanner(fmt.Sprintf("*** Game left undecided at turn %d ***", game.Turn()), "13")
	}
}

// watch runs the game with the player configured by -auto, printing the map after every turn.
func watch(ctx context.Context, ui *cli.UI, game *Game) (Outcome, error) {
	player, err := players.New(*flagAuto)
	if err != nil {
		return Undecided, err
	}
	fmt.Printf("Player: %s\n", player)
	ui.PrintMap(game)
	outcome, err := players.RunGame(ctx, game, &spinningPlayer{Player: player, ctx: ctx}, *flagMaxTurns,
		func(game *Game) {
			ui.PrintMap(game)
			ui.PrintOutcome(game.GameIsWon())
			time.Sleep(*flagDelay)
		})
	if errors.Is(err, context.Canceled) {
		return outcome, nil
	}
	return outcome, err
}

// spinningPlayer shows a spinner while the player is deciding.
type spinningPlayer struct {
	players.Player
	ctx context.Context
}

func (p *spinningPlayer) Play(game *Game) error {
	fmt.Printf("%s plays turn %d ", p.Player, game.Turn())
	s := terminal.NewSpinner(p.ctx, os.Stdout)
	err := p.Player.Play(game)
	s.Done()
	fmt.Println()
	return err
}
