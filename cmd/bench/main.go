package main

import (
	"flag"
	"fmt"
	"log"

	pentamind "github.com/pentamind"
)

var (
	variant     = flag.String("variant", "duo", "game variant")
	simulations = flag.Int("simulations", 10000, "simulations per move")
	workers     = flag.Int("workers", 0, "simulation workers (0 = NumCPU)")
	games       = flag.Int("games", 0, "self-play games (0 = single search)")
	seed        = flag.Int64("seed", 1, "random seed")
	dot         = flag.Bool("dot", false, "dump the root search tree as DOT")
	verbose     = flag.Bool("v", false, "log search progress")
)

func main() {
	flag.Parse()

	conf := pentamind.DefaultConfig(*variant)
	conf.Simulations = *simulations
	conf.Seed = *seed
	conf.LogSearch = *verbose
	if *workers > 0 {
		conf.Workers = *workers
	}

	if *games > 0 {
		arena, err := pentamind.NewArena(conf, conf)
		if err != nil {
			log.Fatal(err)
		}
		if err := arena.Play(*games); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("A %d / B %d / draws %d\n",
			arena.WinsA, arena.WinsB, arena.Draws)
		return
	}

	eng, err := pentamind.NewEngine(conf)
	if err != nil {
		log.Fatal(err)
	}
	best := eng.BestMove()
	fmt.Printf("best move: %d\n", best)
	fmt.Println(eng.Info())
	fmt.Print(eng.Board())
	if *dot {
		graph, err := eng.DotGraph(10)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(graph)
	}
}
