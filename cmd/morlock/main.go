package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/herohde/morlock/pkg/board"
	"github.com/herohde/morlock/pkg/board/fen"
	"github.com/herohde/morlock/pkg/engine"
	"github.com/herohde/morlock/pkg/eval"
	"github.com/herohde/morlock/pkg/search"
	"github.com/herohde/morlock/pkg/search/searchctl"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"os"
	"strings"
	"time"
)

var (
	depth = flag.Uint("depth", 6, "Search depth limit (zero for no limit)")
	hash  = flag.Uint("hash", 32, "Transposition table size in MB (zero disables it)")
	noise = flag.Uint("noise", 10, "Evaluation noise in millipawns (zero if deterministic)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: morlock [options]

MORLOCK is a simple chess engine. It reads commands from stdin, one per line:

  position <fen>|startpos [moves ...]   set the position, optionally playing moves
  go                                     search and print the best move found
  undo                                   take back the last move
  state                                  print the current game state
  quit                                   exit

Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	s := search.AlphaBeta{
		Explore: search.FullExploration,
		Eval: search.Quiescence{
			Explore: search.QuickGain,
			Eval:    search.NoisyEval{Eval: eval.Material{}},
		},
	}
	e := engine.New(ctx, "morlock", "herohde", s,
		engine.WithTable(search.NewTranspositionTable),
		engine.WithOptions(engine.Options{Depth: *depth, Hash: *hash, Noise: *noise}),
		engine.WithZobrist(time.Now().UnixNano()),
	)

	logw.Infof(ctx, "%v by %v ready", e.Name(), e.Author())

	for line := range engine.ReadStdinLines(ctx) {
		if !dispatch(ctx, e, line) {
			return
		}
	}
}

func dispatch(ctx context.Context, e *engine.Engine, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	switch fields[0] {
	case "position":
		handlePosition(ctx, e, fields[1:])

	case "go":
		handleGo(ctx, e)

	case "undo":
		if err := e.TakeBack(ctx); err != nil {
			fmt.Println(err)
		}

	case "state":
		fmt.Println(e.Board().State())

	case "quit":
		return false

	default:
		fmt.Printf("unknown command: %v\n", fields[0])
	}
	return true
}

func handlePosition(ctx context.Context, e *engine.Engine, args []string) {
	if len(args) == 0 {
		fmt.Println("position: missing fen or startpos")
		return
	}

	position := fen.Initial
	rest := args[1:]
	if args[0] != "startpos" {
		// A FEN string has 6 space-separated fields; consume them from args.
		if len(args) < 6 {
			fmt.Println("position: incomplete fen")
			return
		}
		position = strings.Join(args[:6], " ")
		rest = args[6:]
	}

	if err := e.Reset(ctx, position); err != nil {
		fmt.Println(err)
		return
	}

	i := 0
	if i < len(rest) && rest[i] == "moves" {
		i++
	}
	for ; i < len(rest); i++ {
		if err := e.Move(ctx, rest[i]); err != nil {
			fmt.Println(err)
			return
		}
	}
}

func handleGo(ctx context.Context, e *engine.Engine) {
	opt := searchctl.Options{}
	if d := e.Options().Depth; d > 0 {
		opt.DepthLimit = lang.Some(d)
	}

	out, err := e.Analyze(ctx, opt)
	if err != nil {
		fmt.Println(err)
		return
	}

	var best board.Move
	for pv := range out {
		fmt.Println(pv)
		if len(pv.Moves) > 0 {
			best = pv.Moves[0]
		}
	}
	if _, err := e.Halt(ctx); err != nil {
		logw.Debugf(ctx, "Halt: %v", err)
	}
	fmt.Printf("bestmove %v\n", best)
}
