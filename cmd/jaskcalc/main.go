package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ternarybob/arbor"

	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/config"
	"github.com/jask/jaskcalc/internal/database"
	"github.com/jask/jaskcalc/internal/database/repository"
	"github.com/jask/jaskcalc/internal/logger"
	"github.com/jask/jaskcalc/internal/service"
	"github.com/jask/jaskcalc/internal/tui"
)

func main() {
	ctx := context.Background()

	var (
		expr        string
		cfgPath     string
		writeConfig bool
	)
	flag.StringVar(&expr, "eval", "", "Evaluate a key sequence such as \"12+3=\" and print the display.")
	flag.StringVar(&cfgPath, "config", "", "Config file (overrides JASKCALC_CONFIG).")
	flag.BoolVar(&writeConfig, "write-config", false, "Write the effective config to disk and exit.")
	flag.Parse()

	if cfgPath != "" {
		_ = os.Setenv("JASKCALC_CONFIG", cfgPath)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if writeConfig {
		if err := config.Save(cfg); err != nil {
			log.Fatalf("save config: %v", err)
		}
		fmt.Println(config.Path())
		return
	}

	lg, err := logger.Setup(cfg.Logging)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Stop()
	lg.Info().Str("config", config.Path()).Msg("jaskcalc starting")

	var tape *service.TapeService
	if cfg.History.Enabled {
		db, err := database.Prepare(cfg.Database.Path)
		if err != nil {
			lg.Error().Err(err).Str("path", cfg.Database.Path).Msg("database unavailable")
			log.Fatalf("database: %v", err)
		}
		defer db.Close()
		tape = newTape(db, cfg, lg)
	}

	if expr != "" {
		if err := runBatch(ctx, os.Stdout, expr, tape, lg); err != nil {
			log.Fatalf("eval: %v", err)
		}
		return
	}

	opts := []tea.ProgramOption{}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(tui.New(ctx, cfg, tape, lg), opts...)
	if _, err := p.Run(); err != nil {
		lg.Error().Err(err).Msg("ui exited with error")
		fmt.Printf("error: %v\n", err)
	}
}

func newTape(db *sql.DB, cfg config.Config, lg arbor.ILogger) *service.TapeService {
	return &service.TapeService{
		History: repository.NewHistoryRepo(db),
		Limit:   cfg.History.Limit,
		Log:     lg,
	}
}

// runBatch feeds expr through the dispatcher and prints the final display.
// Evaluations are recorded on the tape when one is configured. A token the
// accumulator rejects is logged and skipped; the state stays as it was.
// Only a failed write is returned.
func runBatch(ctx context.Context, w io.Writer, expr string, tape *service.TapeService, lg arbor.ILogger) error {
	acc := calc.New()
	for i, tok := range calc.Tokenize(expr) {
		out, err := calc.DispatchToken(acc, tok)
		if err != nil {
			if lg != nil {
				lg.Warn().Err(err).Str("token", tok).Str("position", strconv.Itoa(i)).Msg("token skipped")
			}
			continue
		}
		if out.Evaluated && tape != nil {
			if _, err := tape.Record(ctx, out.Result, acc.Display()); err != nil {
				if lg != nil {
					lg.Warn().Err(err).Msg("tape record failed")
				}
			}
		}
	}
	_, err := fmt.Fprintln(w, acc.Display())
	return err
}
