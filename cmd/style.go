package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/heads-up-poker/domain/poker"
	"github.com/luca-patrignani/heads-up-poker/game"
)

// terminalView renders the table with pterm panels.
type terminalView struct {
	seat    int
	table   *poker.Table
	hand    [2]poker.Card
	spinner *pterm.SpinnerPrinter
}

var _ game.View = (*terminalView)(nil)

func (v *terminalView) Session(id string, t *poker.Table) {
	v.table = t
	opponent := t.Players[poker.Opponent(v.seat)]
	pterm.Success.Printfln("Seated against %s, %d chips each", pterm.LightCyan(opponent.Name), opponent.Chips)
	pterm.Debug.Printfln("Session %s", id)
}

func (v *terminalView) Hand(hand [2]poker.Card) {
	v.hand = hand
	pterm.DefaultSection.Println("New round")
}

func (v *terminalView) Board(stage poker.Stage, board []poker.Card) {
	v.printState(stage, board)
}

func (v *terminalView) Waiting(name string) {
	text := pterm.Sprintf("Waiting for %s to make an action ...", pterm.LightCyan(name))
	v.spinner, _ = pterm.DefaultSpinner.Start(text)
}

func (v *terminalView) Action(name string, a poker.Action) {
	if v.spinner != nil {
		v.spinner.Success()
		v.spinner = nil
	}
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{{getActionPanel(name, a)}}).Render()
}

func (v *terminalView) Invalid(err error) {
	pterm.Error.Printfln("Invalid action: %s", err.Error())
}

func (v *terminalView) Status(lines []string) {
	pterm.Info.Println(strings.Join(lines, " | "))
}

func (v *terminalView) Result(o game.Outcome) {
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{{getResultPanel(o)}}).Render()
}

func (v *terminalView) SessionEnd(text string) {
	pterm.DefaultBox.WithTitle(pterm.LightGreen("|GAME OVER|")).WithTitleTopCenter().Println(text)
}

func (v *terminalView) printState(stage poker.Stage, board []poker.Card) {
	t := v.table
	me := t.Players[v.seat]
	opponent := t.Players[poker.Opponent(v.seat)]
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{{Data: printPlayerInfo(opponent, [2]poker.Card{}, false)}},
		{{Data: printBoardInfo(board, stage, t.Pot)}},
		{{Data: printPlayerInfo(me, v.hand, true)}},
	}).Render()
}

func getActionPanel(name string, a poker.Action) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightYellow("|LAST ACTION|")).WithTitleTopCenter().Sprint(actionText(name, a))}
}

func actionText(name string, a poker.Action) string {
	switch a.Type {
	case poker.ActionBet:
		return fmt.Sprintf("%s bet %d", name, a.Amount)
	case poker.ActionRaise:
		return fmt.Sprintf("%s raised by %d", name, a.Amount)
	case poker.ActionCall:
		return fmt.Sprintf("%s called", name)
	case poker.ActionCheck:
		return fmt.Sprintf("%s checked", name)
	case poker.ActionFold:
		return fmt.Sprintf("%s folded", name)
	default:
		return fmt.Sprintf("%s performed action: %s", name, a)
	}
}

func getResultPanel(o game.Outcome) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	title := "|SHOWDOWN|"
	if o.Result.Fold {
		title = "|FOLD|"
	}
	return pterm.Panel{Data: pbox.WithTitle(pterm.LightGreen(title)).WithTitleTopCenter().Sprint(resultText(o))}
}

// resultText lists the revealed hands, the winner and the new stacks.
func resultText(o game.Outcome) string {
	var b strings.Builder
	if len(o.Result.Hands) == len(o.Players) && len(o.Board) == 5 {
		for i, hand := range o.Result.Hands {
			desc, err := poker.Describe(hand, o.Board)
			if err != nil {
				desc = err.Error()
			}
			fmt.Fprintf(&b, "%s: %s %s, %s\n", o.Players[i], hand[0], hand[1], desc)
		}
	}
	b.WriteString(o.Result.Text)
	for _, line := range o.Result.Chips {
		b.WriteString("\n" + line)
	}
	return b.String()
}

func printPlayerInfo(p poker.Player, hand [2]poker.Card, main bool) string {
	hpadding := 4
	if main {
		hpadding = 10
	}
	pbox := pterm.DefaultBox.WithHorizontalPadding(hpadding).WithTopPadding(1).WithBottomPadding(1)
	var active string
	if p.HasFolded {
		active = pterm.LightRed("Folded")
	} else {
		active = pterm.LightGreen("Active")
	}
	cards := pterm.BgGreen.Sprintf("%s - %s", hand[0].Colored(), hand[1].Colored())
	return pbox.WithTitle(p.Name).WithTitleTopLeft().Sprintf("%s\nBankroll: %d\n%s\n", active, p.Chips, cards)
}

func printBoardInfo(board []poker.Card, stage poker.Stage, pot uint) string {
	cards := make([]string, 5)
	for i := range cards {
		if i < len(board) {
			cards[i] = board[i].Colored()
		} else {
			cards[i] = poker.FaceDown
		}
	}
	return pterm.BgGreen.Sprint("\n" + strings.Join(cards, " - ") + fmt.Sprintf(" | Pot: %d | %s\n", pot, stage))
}
