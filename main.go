package main

import (
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gomdp/agent"
	"github.com/samuelfneumann/gomdp/agent/dp"
	"github.com/samuelfneumann/gomdp/agent/td"
	"github.com/samuelfneumann/gomdp/experiment/checkpointer"
	"github.com/samuelfneumann/gomdp/experiment/trackers"
	"github.com/samuelfneumann/gomdp/mdp"
	"github.com/samuelfneumann/gomdp/valuation"
)

func main() {
	var seed uint64 = 192382
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// Create a 4x4 grid world with a wall in the middle, a rewarding
	// goal in the bottom right and a punishing pit beside it
	nan := math.NaN()
	grid := mat.NewDense(4, 4, []float64{
		0, 0, 0, 0,
		0, nan, nan, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	})
	goal, pit := 13, 12
	terminal := []int{pit, goal}

	T, err := mdp.GridToAdjacency(grid, terminal)
	if err != nil {
		log.Fatal(err)
	}
	n, _ := T.Dims()

	// Entering the goal pays +1, entering the pit costs -1
	R := mat.NewDense(n, n, nil)
	for s := 0; s < n; s++ {
		if s != goal && s != pit {
			R.Set(s, goal, 1)
			R.Set(s, pit, -1)
		}
	}

	m, err := mdp.NewGraphWorld(T, R, 0, terminal, 0.1)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(m)

	// Solve the model with pessimistic value iteration
	c := dp.DefaultConfig()
	c.W = 0.5
	vi, err := dp.New(c, logger)
	if err != nil {
		log.Fatal(err)
	}
	solved, err := vi.Fit(m)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(solved)

	// Learn the same values from experience
	tc := td.DefaultConfig()
	tc.Policy = valuation.Pessimism
	tc.W = 0.5
	tc.Eta = 0.2
	tc.Schedule = make([]float64, 2000)
	tc.Verbose = true
	learner, err := td.New(tc, seed, logger)
	if err != nil {
		log.Fatal(err)
	}

	dataFile := filepath.Join(os.TempDir(), "gomdp-returns.bin")
	tracker := trackers.NewReturn(dataFile)
	learner.Register(tracker)

	// Checkpoint the learned values every 500 episodes
	checkpoints := filepath.Join(os.TempDir(), "gomdp-q")
	saver, err := checkpointer.NewNEpisode(500, learner,
		checkpointer.FileTimer(checkpoints, ".bin"))
	if err != nil {
		log.Fatal(err)
	}
	learner.Checkpoint(saver)

	learned, err := learner.Fit(m)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(learned)

	if err := tracker.Save(); err != nil {
		log.Fatal(err)
	}
	data, err := trackers.LoadData(dataFile)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Last returns:", data[len(data)-10:])

	// Save the configuration used so that the run can be repeated
	configFile := filepath.Join(os.TempDir(), "gomdp-td.yaml")
	if err := agent.SaveConfig(configFile, tc); err != nil {
		log.Fatal(err)
	}
}
