// simulate runs many games of an automated player, in parallel, and reports how often the
// colony survives.
//
// Example:
//
//	$ go run ./cmd/simulate -player=greedy:kind=thrower -num_games=1000 -config="tunnels=2,moat=3"
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
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
	"os"
	"runtime"
	"sync"
	"time"
)

var (
	flagPlayer      = flag.String("player", "greedy", fmt.Sprintf("Player configuration. Players: %q", players.Modules()))
	flagNumGames    = flag.Int("num_games", 100, "Number of games to play.")
	flagParallelism = flag.Int("parallelism", 0, "If > 0 ignore GOMAXPROCS and play "+
		"these many games simultaneously.")
	flagMaxTurns = flag.Int("max_turns", 200, "Max turns before a game is considered unfinished.")
	flagSeed     = flag.Uint64("seed", 0, "Seed of the first game, each following game uses the next seed. "+
		"If 0, every game gets a random seed.")
	flagConfig     = flag.String("config", "", "Game configuration, applied on top of -config_file, if given.")
	flagConfigFile = flag.String("config_file", "", "YAML scenario file.")
	flagPrintSteps = flag.Bool("print_steps", false, "Print the map after each turn. "+
		"Very verbose, and you probably want to set -parallelism=1.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if *flagNumGames <= 0 {
		exceptions.Panicf("invalid -num_games=%d, it must be > 0", *flagNumGames)
	}

	// Capture Control+C
	ctx, cancel := context.WithCancel(context.Background())
	terminal.SafeInterrupt(cancel, 5*time.Second)
	defer cancel()

	must.M(profilers.Setup(ctx))
	defer profilers.OnQuit()

	config := must.M1(NewConfig(*flagConfigFile, *flagConfig))
	// Check the player configuration before starting.
	player := must.M1(players.New(*flagPlayer))
	fmt.Printf("Player: %s\nScenario: %s\n", player, config)

	results, err := runGames(ctx, config)
	fmt.Print(results)
	if ctx.Err() != nil {
		fmt.Printf("Interrupted: %s\n", ctx.Err())
		return
	}
	must.M(err)
}

// runGames plays -num_games games in parallel and returns the results.
func runGames(ctx context.Context, config *Config) (*Results, error) {
	results := NewResults(*flagNumGames)
	bar := progressbar.NewOptions(*flagNumGames,
		progressbar.OptionSetDescription("Defending"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish())
	var wg errgroup.Group
	wg.SetLimit(getParallelism())
	for gameIdx := range *flagNumGames {
		wg.Go(func() error {
			outcome, turns, err := runGame(ctx, gameIdx, config)
			if ctx.Err() != nil {
				return nil
			}
			if err != nil {
				results.RecordFailure()
				return err
			}
			results.Record(outcome, turns)
			_ = bar.Add(1)
			return nil
		})
	}
	err := wg.Wait()
	_ = bar.Finish()
	return results, err
}

var (
	stepUI   = cli.New(true, false)
	muStepUI sync.Mutex
)

// runGame plays one game from start to end. Panics during the game are returned as errors.
func runGame(ctx context.Context, gameIdx int, config *Config) (outcome Outcome, turns int, err error) {
	if ctx.Err() != nil {
		return Undecided, 0, nil
	}
	if klog.V(1).Enabled() {
		klog.Infof("Starting game %d", gameIdx)
		defer klog.Infof("Finished game %d", gameIdx)
	}
	player, err := players.New(*flagPlayer)
	if err != nil {
		return
	}
	var seed uint64
	if *flagSeed != 0 {
		seed = *flagSeed + uint64(gameIdx)
	}
	game, err := NewGameFromConfig(config, NewRand(seed))
	if err != nil {
		return
	}
	var onTurn func(game *Game)
	if *flagPrintSteps {
		onTurn = func(game *Game) {
			muStepUI.Lock()
			defer muStepUI.Unlock()
			fmt.Printf("Game-%05d (seed=%d), after turn #%d\n", gameIdx, seed, game.Turn()-1)
			stepUI.PrintMap(game)
			fmt.Println("------------------")
		}
	}
	var runErr error
	err = exceptions.TryCatch[error](func() {
		outcome, runErr = players.RunGame(ctx, game, player, *flagMaxTurns, onTurn)
	})
	if err == nil {
		err = runErr
	}
	if err != nil {
		return Undecided, game.Turn(), errors.WithMessagef(err, "game %d (seed=%d)", gameIdx, seed)
	}
	return outcome, game.Turn(), nil
}

// getParallelism returns the parallelism.
func getParallelism() (parallelism int) {
	parallelism = runtime.GOMAXPROCS(0)
	if *flagParallelism > 0 {
		parallelism = *flagParallelism
	}
	return
}
