package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/heads-up-poker/domain/poker"
	"github.com/luca-patrignani/heads-up-poker/game"
)

// terminalInput asks for decisions with interactive pterm prompts.
type terminalInput struct{}

var _ game.Input = terminalInput{}

func (terminalInput) ChooseAction(p game.Prompt) (string, error) {
	options := make([]string, len(p.Allowed))
	for i, a := range p.Allowed {
		options[i] = string(a)
	}
	text := fmt.Sprintf("Choose an action (%s)", strings.Join(options, " / "))
	if p.ToCall > 0 {
		text += fmt.Sprintf(", %d to call", p.ToCall)
	}
	pterm.Info.Printfln("Your hand: %s", describePrompt(p))
	return pterm.DefaultInteractiveSelect.WithDefaultText(text).WithOptions(options).Show()
}

func (terminalInput) ChooseAmount(p game.Prompt) (string, error) {
	text := fmt.Sprintf("Enter the amount (stack %d)", p.Chips)
	return pterm.DefaultInteractiveTextInput.WithDefaultText(text).Show()
}

func describePrompt(p game.Prompt) string {
	if len(p.Board) < 5 {
		return fmt.Sprintf("%s - %s", p.Hand[0], p.Hand[1])
	}
	desc, err := poker.Describe(p.Hand, p.Board)
	if err != nil {
		return err.Error()
	}
	return desc
}
