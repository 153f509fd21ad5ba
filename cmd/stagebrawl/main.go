package main

import (
	"flag"
	"fmt"
	"log"

	cfg "github.com/stagebrawl/stagebrawl/config"
	"github.com/stagebrawl/stagebrawl/core"
	"github.com/stagebrawl/stagebrawl/events"
	"github.com/stagebrawl/stagebrawl/stages"
)

func main() {
	var (
		stageName = flag.String("stage", "battlefield", "stage to load (battlefield, plains)")
		p1        = flag.String("p1", "balanced", "player 1 archetype")
		p2        = flag.String("p2", "grappler", "player 2 archetype")
		seconds   = flag.Float64("seconds", 60, "simulated match time to run")
		realtime  = flag.Bool("realtime", false, "run on a wall clock ticker instead of as fast as possible")
		quiet     = flag.Bool("quiet", false, "suppress per-event logging")
	)
	flag.Parse()

	stage, err := stageByName(*stageName)
	if err != nil {
		log.Fatal(err)
	}

	sim, err := core.NewSim(core.Settings{
		Stage:      stage,
		Archetypes: [2]string{*p1, *p2},
	})
	if err != nil {
		log.Fatal(err)
	}

	if !*quiet {
		events.AttachDebugSink(sim.ECS().World)
	}

	log.Printf("%s vs %s on %s", *p1, *p2, stage.Name)

	if *realtime {
		loop := core.NewLoop(sim, cfg.C.TickRate)
		loop.Run()
	} else {
		runScripted(sim, *seconds)
	}

	match := sim.Match()
	if match.Finished() {
		log.Printf("winner: player %d after %d ticks", match.WinnerIndex, sim.Ticks())
	} else {
		log.Printf("no result after %d ticks, clock at %.1fs", sim.Ticks(), match.Timer)
	}
}

func stageByName(name string) (stages.Definition, error) {
	switch name {
	case "battlefield":
		return stages.Battlefield(), nil
	case "plains":
		return stages.Plains(), nil
	}
	return stages.Definition{}, fmt.Errorf("unknown stage %q", name)
}

// runScripted drives both players with a simple canned routine: walk
// toward the middle and attack on a short cycle. Enough to exercise
// movement, collisions and KOs without a frontend.
func runScripted(sim *core.Sim, seconds float64) {
	ticks := int(seconds * float64(cfg.C.TickRate))

	for t := 0; t < ticks && !sim.Match().Finished(); t++ {
		for player := 1; player <= 2; player++ {
			if err := sim.SetInput(player, scriptedActions(player, t), 0, 0); err != nil {
				log.Fatal(err)
			}
		}
		sim.Tick()
	}
}

func scriptedActions(player, tick int) [cfg.ActionCount]bool {
	var actions [cfg.ActionCount]bool

	// Close the gap, then mash.
	towardRight := player == 1
	phase := (tick + player*17) % 90
	switch {
	case phase < 40:
		if towardRight {
			actions[cfg.ActionRight] = true
		} else {
			actions[cfg.ActionLeft] = true
		}
	case phase < 42:
		actions[cfg.ActionAttack] = true
	case phase < 50:
		actions[cfg.ActionUp] = true
	}
	return actions
}
