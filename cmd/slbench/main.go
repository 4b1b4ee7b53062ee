// Command slbench runs timed workloads against the skip list container and
// prints per-distribution latency and throughput tables.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/ordlist/skiplist"
)

type distributionKind int

const (
	distUniform distributionKind = iota
	distAscending
	distZipf
)

var distNames = map[string]distributionKind{
	"uniform":   distUniform,
	"ascending": distAscending,
	"zipf":      distZipf,
}

func main() {
	var (
		keyRange     int
		opCount      int
		dist         string
		writePercent int
		runs         int
		seed         int64
		pool         bool
		prob         float64
	)

	flag.IntVar(&keyRange, "n", 1<<12, "key range for generated operations")
	flag.IntVar(&opCount, "ops", 1_000_000, "operations per run")
	flag.StringVar(&dist, "dist", "all", "key distribution: all or comma list (uniform,ascending,zipf)")
	flag.IntVar(&writePercent, "write", 50, "percentage of operations that mutate the list")
	flag.IntVar(&runs, "runs", 5, "how many times to repeat each workload")
	flag.Int64Var(&seed, "seed", time.Now().UnixNano(), "seed for the workload generator and the list's level source")
	flag.BoolVar(&pool, "pool", false, "recycle erased nodes through a sync.Pool")
	flag.Float64Var(&prob, "p", 0.5, "level promotion probability")
	flag.Parse()

	if keyRange <= 0 || opCount <= 0 || runs <= 0 {
		log.Fatalf("invalid -n/-ops/-runs: n=%d ops=%d runs=%d", keyRange, opCount, runs)
	}
	if writePercent < 0 || writePercent > 100 {
		log.Fatalf("invalid -write: %d (want 0..100)", writePercent)
	}

	toRun := parseDists(dist)
	fmt.Printf("distributions: %s\n", strings.Join(toRun, ","))
	fmt.Printf("ops: %d, key range: %d, write%%: %d, runs: %d, seed: %d\n",
		opCount, keyRange, writePercent, runs, seed)
	fmt.Println(strings.Repeat("=", 72))

	rows := make([][]string, 0, len(toRun))
	statRows := make([][]string, 0, len(toRun))
	for _, name := range toRun {
		kind := distNames[name]
		result := benchmarkDist(kind, keyRange, opCount, writePercent, runs, seed, pool, prob)
		thr := float64(opCount) / (result.avgMs / 1000.0)
		rows = append(rows, []string{
			name,
			fmt.Sprintf("%d", runs),
			fmt.Sprintf("%.3f", result.avgMs),
			fmt.Sprintf("%.3f", result.minMs),
			fmt.Sprintf("%.3f", result.maxMs),
			fmt.Sprintf("%.2f", thr),
		})
		statRows = append(statRows, []string{
			name,
			fmt.Sprintf("%d", result.finalLen),
			fmt.Sprintf("%d", result.stats.Inserts),
			fmt.Sprintf("%d", result.stats.Erases),
			fmt.Sprintf("%d", result.stats.Searches),
		})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Dist", "Runs", "Avg(ms)", "Min(ms)", "Max(ms)", "Ops/s"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()

	fmt.Println("final run container counters:")
	table = tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Dist", "Len", "Inserts", "Erases", "Searches"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)
	table.AppendBulk(statRows)
	table.Render()
}

type benchResult struct {
	avgMs    float64
	minMs    float64
	maxMs    float64
	finalLen int
	stats    skiplist.Stats
}

func benchmarkDist(kind distributionKind, keyRange, opCount, writePercent, runs int, seed int64, pool bool, prob float64) benchResult {
	durations := make([]float64, 0, runs)
	var finalLen int
	var finalStats skiplist.Stats

	for run := 0; run < runs; run++ {
		opts := []skiplist.Option[int]{
			skiplist.WithSeed[int](uint64(seed) + uint64(run)),
			skiplist.WithProbability[int](prob),
		}
		if pool {
			opts = append(opts, skiplist.WithNodePooling[int]())
		}
		list := skiplist.New[int](opts...)

		for i := 0; i < keyRange/2; i++ {
			list.Insert(i)
		}

		elapsed := runOps(list, kind, keyRange, opCount, writePercent, seed+int64(run))
		durations = append(durations, float64(elapsed.Microseconds())/1000.0)
		finalLen = list.Len()
		finalStats = list.Stats()
	}

	sort.Float64s(durations)
	sum := 0.0
	for _, d := range durations {
		sum += d
	}
	return benchResult{
		avgMs:    sum / float64(len(durations)),
		minMs:    durations[0],
		maxMs:    durations[len(durations)-1],
		finalLen: finalLen,
		stats:    finalStats,
	}
}

func runOps(list *skiplist.SkipList[int], kind distributionKind, keyRange, opCount, writePercent int, seed int64) time.Duration {
	r := rand.New(rand.NewSource(seed))
	var zipf *rand.Zipf
	if kind == distZipf {
		upper := uint64(keyRange - 1)
		if upper == 0 {
			upper = 1
		}
		zipf = rand.NewZipf(r, 1.2, 1, upper)
	}
	ascending := 0

	start := time.Now()
	for i := 0; i < opCount; i++ {
		var key int
		switch kind {
		case distUniform:
			key = r.Intn(keyRange)
		case distAscending:
			key = ascending % keyRange
			ascending++
		case distZipf:
			key = int(zipf.Uint64())
		}

		if r.Intn(100) < writePercent {
			if r.Intn(2) == 0 {
				list.Insert(key)
			} else {
				if it := list.Find(key); it != list.End() {
					if _, err := list.Erase(it); err != nil {
						log.Fatalf("erase %d: %v", key, err)
					}
				}
			}
		} else {
			if r.Intn(2) == 0 {
				list.Find(key)
			} else {
				list.Contains(key)
			}
		}
	}
	return time.Since(start)
}

func parseDists(s string) []string {
	if s == "" || s == "all" {
		return []string{"uniform", "ascending", "zipf"}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	seen := map[string]bool{}
	for _, p := range parts {
		t := strings.TrimSpace(strings.ToLower(p))
		if t == "" || seen[t] {
			continue
		}
		if _, ok := distNames[t]; ok {
			out = append(out, t)
			seen[t] = true
		}
	}
	if len(out) == 0 {
		return []string{"uniform", "ascending", "zipf"}
	}
	return out
}
