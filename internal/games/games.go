package games

import (
	"fmt"
	"math/rand"
	"strings"

	"gary-bot/internal/utils"
)

var eightBallResponses = []string{"Yes", "No", "Maybe", "Definitely", "I don't know"}

// EightBall returns one of the magic 8-ball's answers.
func EightBall() string {
	return eightBallResponses[rand.Intn(len(eightBallResponses))]
}

// Coinflip returns "Heads" or "Tails".
func Coinflip() string {
	if rand.Intn(2) == 0 {
		return "Heads"
	}
	return "Tails"
}

// Roll returns a die roll from 1 to 6.
func Roll() int {
	return rand.Intn(6) + 1
}

var rpsChoices = []string{"rock", "paper", "scissors"}

// RPSOutcome judges a finished rock-paper-scissors round from the player's
// point of view.
func RPSOutcome(player, bot string) string {
	if player == bot {
		return "It's a tie!"
	}
	wins := map[string]string{"rock": "scissors", "paper": "rock", "scissors": "paper"}
	if wins[player] == bot {
		return "You win!"
	}
	return "You lose!"
}

// RPS plays a round against a random bot pick and renders the result line.
// The player's choice is case-insensitive; anything but rock, paper or
// scissors is a usage error.
func RPS(choice string) (string, error) {
	player := strings.ToLower(strings.TrimSpace(choice))
	valid := false
	for _, c := range rpsChoices {
		if player == c {
			valid = true
			break
		}
	}
	if !valid {
		return "", utils.Usagef("choose rock, paper or scissors, not %q", choice)
	}

	bot := rpsChoices[rand.Intn(len(rpsChoices))]
	return fmt.Sprintf("🪨 %s vs %s - %s", capitalize(player), capitalize(bot), RPSOutcome(player, bot)), nil
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
