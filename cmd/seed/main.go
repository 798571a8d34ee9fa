// Command seed loads the demo inventory and brief into a matchdesk database.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/kibisports/matchdesk/internal/adapters/repository"
	"github.com/kibisports/matchdesk/internal/seed"
)

const seedTimeout = 30 * time.Second

func main() {
	dbPath := flag.String("db", "matchdesk.db", "Path to the sqlite database")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	store, err := repository.Open(*dbPath)
	if err != nil {
		os.Stderr.WriteString("failed to open store: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer store.Close()

	sum, err := seed.Run(ctx, store)
	if err != nil {
		os.Stderr.WriteString("seed failed: " + err.Error() + "\n")
		os.Exit(1)
	}

	fmt.Printf("seeded %d athletes, %d leagues, %d venues\n", sum.Athletes, sum.Leagues, sum.Venues)
	fmt.Printf("demo brief id: %d (owner user id: %d)\n", sum.BriefID, seed.DemoUserID)
}
