package simulator

import (
	"context"
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/gtobot/internal/deck"
	"github.com/lox/gtobot/internal/game"
	"github.com/lox/gtobot/internal/gameid"
	"github.com/lox/gtobot/internal/player"
	"github.com/lox/gtobot/internal/randutil"
	"github.com/lox/gtobot/internal/statistics"
	"github.com/lox/gtobot/internal/table"
)

const heroUUID = "hero"

// streams is the number of independent random streams each table draws
// from the run seed: deck, policy, villains and hand ids.
const streams = 4

type tableResult struct {
	stats     *statistics.Statistics
	actions   [4][3]int
	decisions int
	rebuys    int
}

// tableRunner plays consecutive hands at one table. Stacks carry over
// between hands; a busted seat rebuys to the starting stack.
type tableRunner struct {
	id      int
	cfg     Config
	seed    int64
	deck    *deck.Deck
	villain *rand.Rand
	hero    *player.Player
	ids     *gameid.Generator
	uuids   []string
	stacks  []int
	logger  *log.Logger
	result  tableResult
}

func newTable(id int, cfg Config, logger *log.Logger) *tableRunner {
	logger = logger.With("table", id)
	t := &tableRunner{
		id:      id,
		cfg:     cfg,
		seed:    cfg.Seed,
		deck:    deck.NewDeck(randutil.New(randutil.Derive(cfg.Seed, streams*id))),
		hero:    player.New(heroUUID, cfg.Policy, randutil.New(randutil.Derive(cfg.Seed, streams*id+1)), logger),
		villain: randutil.New(randutil.Derive(cfg.Seed, streams*id+2)),
		ids:     gameid.NewGenerator(randutil.New(randutil.Derive(cfg.Seed, streams*id+3)), cfg.Clock),
		uuids:   make([]string, cfg.Seats),
		stacks:  make([]int, cfg.Seats),
		logger:  logger,
		result:  tableResult{stats: &statistics.Statistics{}},
	}
	t.uuids[0] = heroUUID
	for i := 1; i < cfg.Seats; i++ {
		t.uuids[i] = fmt.Sprintf("villain-%d", i)
	}
	for i := range t.stacks {
		t.stacks[i] = cfg.StartingStack
	}
	return t
}

func (t *tableRunner) rounds() int {
	if t.cfg.Policy.TotalRounds > 0 {
		return t.cfg.Policy.TotalRounds
	}
	return t.cfg.HandsPerTable
}

func (t *tableRunner) play(ctx context.Context) (*tableResult, error) {
	t.hero.ReceiveGameStart(game.Rules{
		InitialStack: t.cfg.StartingStack,
		MaxRound:     t.rounds(),
		SmallBlind:   t.cfg.SmallBlind,
	})
	for n := range t.cfg.HandsPerTable {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err := t.playHand(n)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", n, err)
		}
		t.result.stats.Add(res)
	}
	return &t.result, nil
}

// playHand deals and plays one hand, returning the hero's result.
func (t *tableRunner) playHand(n int) (statistics.HandResult, error) {
	for i, stack := range t.stacks {
		if stack == 0 {
			t.stacks[i] = t.cfg.StartingStack
			t.result.rebuys++
		}
	}

	h := newHand(t, n)
	heroStart := t.stacks[0]
	position := table.ResolvePosition(heroUUID, h.seatViews(), h.dealer, h.sbPos, h.bbPos)

	t.hero.ReceiveRoundStart(h.round, h.seats[0].hole)
	if err := h.play(); err != nil {
		return statistics.HandResult{}, err
	}
	showdown, winners := h.settle()
	t.hero.ReceiveRoundResult(winners, h.state())
	if t.cfg.HistoryDir != "" {
		if err := t.writeHistory(h, n); err != nil {
			return statistics.HandResult{}, err
		}
	}

	for i, s := range h.seats {
		t.stacks[i] = s.stack
	}
	net := t.stacks[0] - heroStart
	t.logger.Debug("Hand complete", "hand", n, "position", position.String(), "net", net, "showdown", showdown)

	return statistics.HandResult{
		NetBB:    float64(net) / float64(2*t.cfg.SmallBlind),
		Seed:     t.seed,
		Position: position,
		Showdown: showdown,
		Pot:      h.pot(),
		Street:   h.street,
	}, nil
}
