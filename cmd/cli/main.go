// Command cli plays one seeded round of Revolution between five bots and
// renders the table state, so the whole engine surface can be exercised from
// a terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/pterm/pterm"

	"github.com/axelbellec/revolution/deck"
	"github.com/axelbellec/revolution/game"
	"github.com/axelbellec/revolution/roles"
	"github.com/axelbellec/revolution/rules"
)

const maxSteps = 500

func main() {
	seed := flag.Int64("seed", 42, "shuffle seed")
	flag.Parse()

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		log.Fatalf("could not read config: %s", err)
	}

	names := []string{"Ada", "Brahms", "Chopin", "Debussy", "Elgar"}
	host := game.NewPlayerID()

	g := game.NewGame(game.NewGameID(), host, cfg, time.Now())
	for i, name := range names {
		id := host
		if i > 0 {
			id = game.NewPlayerID()
		}
		if g, err = g.AddPlayer(id, name); err != nil {
			log.Fatalf("could not seat %s: %s", name, err)
		}
	}

	if g, err = g.StartGame(*seed); err != nil {
		log.Fatalf("could not start game: %s", err)
	}
	pterm.DefaultSection.Printfln("Round %d (seed %d)", g.Round, *seed)

	g = playRound(g)
	printFinishingOrder(g)

	if g, err = g.StartNextRound(*seed + 1); err != nil {
		log.Fatalf("could not start next round: %s", err)
	}
	printRoles(g)

	if g.Phase == game.CardExchange {
		g = runExchange(g)
	}
	renderTable(g)
	pterm.Success.Printfln("Round %d ready, %s leads", g.Round, nameOf(g, g.CurrentPlayer().ID))
}

func playRound(g *game.GameState) *game.GameState {
	var err error
	for steps := 0; g.Phase == game.Playing; steps++ {
		if steps >= maxSteps {
			log.Fatal("round did not finish; engine is stuck")
		}
		cur := g.CurrentPlayer()
		cards := chooseMove(g)
		if cards == nil {
			if g, err = g.PassTurn(cur.ID); err != nil {
				log.Fatalf("%s could not pass: %s", nameOf(g, cur.ID), err)
			}
			continue
		}
		if g, err = g.PlayCards(cur.ID, cards, time.Now()); err != nil {
			log.Fatalf("%s could not play %v: %s", nameOf(g, cur.ID), cards, err)
		}
		describePlay(g, cur.ID, cards)
	}
	return g
}

// chooseMove picks the weakest legal same-rank set, or nil to pass.
func chooseMove(g *game.GameState) []deck.Card {
	cur := g.CurrentPlayer()
	if cur.Finished() {
		return nil
	}

	groups := map[deck.Rank][]deck.Card{}
	for _, c := range cur.Hand {
		groups[c.Rank] = append(groups[c.Rank], c)
	}
	ranks := make([]deck.Rank, 0, len(groups))
	for r := range groups {
		ranks = append(ranks, r)
	}
	sort.Slice(ranks, func(i, j int) bool {
		return deck.RankValue(ranks[i], g.RevolutionActive) < deck.RankValue(ranks[j], g.RevolutionActive)
	})

	need := 0
	if g.LastPlay != nil {
		need = len(g.LastPlay.Cards)
	}

	for _, r := range ranks {
		candidate := groups[r]
		if need > 0 {
			if len(candidate) < need {
				continue
			}
			candidate = candidate[:need]
		}
		probe, err := g.PlayCards(cur.ID, candidate, time.Now())
		if err == nil && probe != nil {
			return candidate
		}
	}
	return nil
}

func runExchange(g *game.GameState) *game.GameState {
	var err error
	for _, ex := range g.Exchanges {
		from, findErr := g.FindPlayer(ex.From)
		if findErr != nil {
			log.Fatalf("exchange refers to a missing player: %s", findErr)
		}
		sorted := deck.SortByRank(from.Hand, g.RevolutionActive)
		cards := sorted[:ex.Count]
		if ex.Quality == rules.QualityAny { // winners hand back their weakest cards
			cards = sorted[len(sorted)-ex.Count:]
		}
		if g, err = g.SubmitExchange(ex.From, cards); err != nil {
			log.Fatalf("exchange by %s failed: %s", nameOf(g, ex.From), err)
		}
		pterm.Info.Printfln("%s hands %s to %s", nameOf(g, ex.From), cardNames(cards), nameOf(g, ex.To))
	}
	return g
}

func describePlay(g *game.GameState, id game.PlayerID, cards []deck.Card) {
	line := fmt.Sprintf("%s plays %s", nameOf(g, id), cardNames(cards))
	if g.LastPlay == nil {
		line += pterm.LightYellow(" (pile cleared)")
	}
	if g.RevolutionActive {
		line += pterm.LightRed(" [revolution]")
	}
	pterm.Println(line)
}

func printFinishingOrder(g *game.GameState) {
	pterm.DefaultSection.Println("Round over")
	for i, id := range g.FinishingOrder {
		pterm.Printfln("%d. %s (%d points)", i+1, nameOf(g, id), g.Scores[id])
	}
}

func printRoles(g *game.GameState) {
	theme := g.Config.RoleTheme
	for _, p := range g.Players {
		if p.Role == nil {
			continue
		}
		label := roles.LabelWithOverrides(*p.Role, theme, g.Config.CustomRoleLabels)
		pterm.Printfln("%s is now %s", p.Name, pterm.LightCyan(label))
	}
}

func renderTable(g *game.GameState) {
	panels := make([]pterm.Panel, 0, len(g.Players))
	for _, p := range g.Players {
		box := pterm.DefaultBox.WithTitle(p.Name).Sprintf("%d cards", len(p.Hand))
		panels = append(panels, pterm.Panel{Data: box})
	}
	if err := pterm.DefaultPanel.WithPanels([][]pterm.Panel{panels}).Render(); err != nil {
		log.Fatalf("could not render table: %s", err)
	}
}

func nameOf(g *game.GameState, id game.PlayerID) string {
	p, err := g.FindPlayer(id)
	if err != nil {
		return string(id)
	}
	return p.Name
}

func cardNames(cards []deck.Card) string {
	out := ""
	for i, c := range cards {
		if i > 0 {
			out += ", "
		}
		out += c.String()
	}
	return out
}
