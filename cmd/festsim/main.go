// Command festsim runs the festival business simulation.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/caarlos0/env/v11"
	"github.com/dustin/go-humanize"

	"github.com/soundfield/festsim/internal/api"
	"github.com/soundfield/festsim/internal/catalog"
	"github.com/soundfield/festsim/internal/festival"
	"github.com/soundfield/festsim/internal/roster"
	"github.com/soundfield/festsim/internal/sim"
	"github.com/soundfield/festsim/internal/store"
)

type config struct {
	Seed     int64  `env:"FESTSIM_SEED" envDefault:"42"`
	DBPath   string `env:"FESTSIM_DB" envDefault:"data/festsim.db"`
	Port     int    `env:"FESTSIM_PORT" envDefault:"8080"`
	AdminKey string `env:"FESTSIM_ADMIN_KEY"`

	Name          string  `env:"FESTSIM_NAME" envDefault:"Soundfield"`
	Location      string  `env:"FESTSIM_LOCATION" envDefault:"Riverside Park"`
	Budget        float64 `env:"FESTSIM_BUDGET" envDefault:"100000"`
	VenueCapacity int     `env:"FESTSIM_CAPACITY" envDefault:"20000"`
	Days          int     `env:"FESTSIM_DAYS" envDefault:"60"`

	// Opening hires for a fresh festival.
	Artists int `env:"FESTSIM_ARTISTS" envDefault:"4"`
	Vendors int `env:"FESTSIM_VENDORS" envDefault:"5"`
}

func main() {
	serve := flag.Bool("serve", false, "serve the HTTP API instead of running a batch simulation")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		slog.Error("config parse failed", "error", err)
		os.Exit(1)
	}

	slog.Info("festsim starting", "seed", cfg.Seed, "days", cfg.Days, "capacity", cfg.VenueCapacity)

	os.MkdirAll(filepath.Dir(cfg.DBPath), 0755)
	db, err := store.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", cfg.DBPath)

	tables := catalog.Default()
	rng := rand.New(rand.NewSource(cfg.Seed))
	coord := sim.New(tables, rng)
	gen := roster.NewGenerator(tables, cfg.Seed)

	// Load or create the festival.
	fest, err := db.LoadFestival(1)
	fresh := false
	if errors.Is(err, festival.ErrNotFound) {
		fresh = true
		fest = &festival.Festival{
			ID:            1,
			Name:          cfg.Name,
			Location:      cfg.Location,
			Budget:        cfg.Budget,
			Reputation:    50,
			DaysRemaining: cfg.Days,
			VenueCapacity: cfg.VenueCapacity,
		}
		slog.Info("new festival created", "name", fest.Name, "location", fest.Location)
	} else if err != nil {
		slog.Error("failed to load festival", "error", err)
		os.Exit(1)
	} else {
		slog.Info("festival restored",
			"name", fest.Name,
			"days_remaining", fest.DaysRemaining,
			"artists", len(fest.Artists),
			"vendors", len(fest.Vendors),
		)
		maxID := int64(0)
		for _, a := range fest.Artists {
			if a.ID > maxID {
				maxID = a.ID
			}
		}
		for _, v := range fest.Vendors {
			if v.ID > maxID {
				maxID = v.ID
			}
		}
		gen.SetNextID(maxID + 1)
	}

	if fresh {
		openingHires(coord, gen, fest, cfg.Artists, cfg.Vendors)
		if err := db.SaveSnapshot(fest); err != nil {
			slog.Error("initial save failed", "error", err)
		}
	}

	if *serve {
		runServer(coord, gen, db, fest, cfg)
		return
	}

	runBatch(coord, db, fest)
}

// openingHires spends the starting budget on a first lineup.
func openingHires(coord *sim.Coordinator, gen *roster.Generator, fest *festival.Festival, artists, vendors int) {
	for i := 0; i < artists; i++ {
		a := gen.GenerateArtist(fest.DaysRemaining)
		if err := coord.HireArtist(fest, a); err != nil {
			slog.Warn("skipping artist hire", "name", a.Name, "fee", a.Fee, "error", err)
			continue
		}
	}
	for i := 0; i < vendors; i++ {
		v := gen.GenerateVendor(fest.DaysRemaining)
		if err := coord.HireVendor(fest, v); err != nil {
			slog.Warn("skipping vendor hire", "name", v.Name, "cost", v.Cost, "error", err)
			continue
		}
	}

	// Slot the four most popular artists, headliner first.
	slots := []string{catalog.SlotHeadliner, catalog.SlotEvening, catalog.SlotAfternoon, catalog.SlotOpening}
	byPop := make([]*festival.Artist, len(fest.Artists))
	copy(byPop, fest.Artists)
	for i := 0; i < len(byPop)-1; i++ {
		for j := i + 1; j < len(byPop); j++ {
			if byPop[j].Popularity > byPop[i].Popularity {
				byPop[i], byPop[j] = byPop[j], byPop[i]
			}
		}
	}
	for i, a := range byPop {
		if i >= len(slots) {
			break
		}
		if err := coord.AssignSlot(fest, a.ID, slots[i]); err != nil {
			slog.Warn("slot assignment failed", "artist", a.Name, "slot", slots[i], "error", err)
		}
	}
}

func runServer(coord *sim.Coordinator, gen *roster.Generator, db *store.DB, fest *festival.Festival, cfg config) {
	if cfg.AdminKey == "" {
		slog.Warn("FESTSIM_ADMIN_KEY not set, control POST endpoints will be disabled")
	}

	server := api.NewServer(coord, gen, db, fest, cfg.Port, cfg.AdminKey)
	server.Start()

	fmt.Printf("%s is open for planning: %d artists, %d vendors, %d days to showtime.\n",
		fest.Name, len(fest.Artists), len(fest.Vendors), fest.DaysRemaining)
	fmt.Printf("API: http://localhost:%d/api/v1/summary\n", cfg.Port)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	slog.Info("received signal, shutting down", "signal", sig)

	if err := db.SaveSnapshot(fest); err != nil {
		slog.Error("final save failed", "error", err)
	}
	fmt.Println("Server stopped. Festival state saved.")
}

func runBatch(coord *sim.Coordinator, db *store.DB, fest *festival.Festival) {
	for !fest.Ended() {
		day, err := coord.AdvanceDay(fest)
		if err != nil {
			slog.Error("day advance failed", "error", err)
			break
		}

		fmt.Printf("Day %d to go | %s | budget $%s | reputation %d | %d event(s)\n",
			day.DaysRemaining, day.Weather,
			humanize.Commaf(day.Budget), day.Reputation, len(day.Events))
		for _, ev := range day.Events {
			fmt.Printf("  [%s] %s\n", ev.Severity, ev.Description)
		}

		if err := db.AppendDayLog(fest.ID, day); err != nil {
			slog.Error("day log append failed", "error", err)
		}
		if err := db.SaveSnapshot(fest); err != nil {
			slog.Error("daily save failed", "error", err)
		}
	}

	fin := coord.Finances(fest)
	fmt.Println()
	fmt.Printf("%s wrapped with reputation %d.\n", fest.Name, fest.Reputation)
	fmt.Printf("Expected attendance: %s at $%s per ticket\n",
		humanize.Comma(int64(fin.ExpectedAttendance)), humanize.Commaf(fin.TicketPrice))
	fmt.Printf("Revenue $%s against costs $%s, net $%s (margin %.1f%%)\n",
		humanize.Commaf(fin.TotalRevenue), humanize.Commaf(fin.Costs.Total),
		humanize.Commaf(fin.NetProfit), fin.ProfitMargin)

	if err := db.SaveSnapshot(fest); err != nil {
		slog.Error("final save failed", "error", err)
	}
}
