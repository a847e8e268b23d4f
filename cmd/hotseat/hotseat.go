package main

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/pyramid/internal/common/uuid"
	"github.com/KirkDiggler/pyramid/internal/engine"
	"github.com/KirkDiggler/pyramid/internal/models"
	"github.com/KirkDiggler/pyramid/internal/services/messaging"
	"github.com/pterm/pterm"
)

const (
	choiceGive   = "Give sips"
	choiceDone   = "Done giving"
	choiceAccept = "Drink"
	choiceBluff  = "No card, I'm bluffing"
	choiceLiar   = "Menteur!"
)

type hotseat struct {
	engine *engine.Engine
	msgs   messaging.Service
	ids    uuid.UUID
	state  *models.GameState
}

// apply adopts an accepted transition and prints its events
func (h *hotseat) apply(res *engine.Result, err error) bool {
	if err != nil {
		h.printError(err)
		return false
	}
	h.state = res.State
	for _, ev := range res.Events {
		pterm.Info.Println(ev.Message)
	}
	return true
}

func (h *hotseat) printError(err error) {
	out, msgErr := h.msgs.GetErrorMessage(context.Background(), &messaging.GetErrorMessageInput{Err: err})
	if msgErr != nil {
		pterm.Error.Println(err.Error())
		return
	}
	pterm.Error.Printfln("%s %s", out.Title, out.Message)
}

func (h *hotseat) seatPlayers() bool {
	for len(h.state.Players) < h.engine.MaxPlayers() {
		name, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText(fmt.Sprintf("Player %d name (empty to start)", len(h.state.Players)+1)).
			Show()
		name = strings.TrimSpace(name)
		if name == "" {
			break
		}
		h.apply(h.engine.AddPlayer(h.state, &engine.AddPlayerInput{
			PlayerID: h.ids.NewUUID(),
			Name:     name,
		}))
	}
	if len(h.state.Players) == 0 {
		return false
	}

	return h.apply(h.engine.StartGame(h.state, &engine.StartGameInput{PlayerID: h.host()}))
}

func (h *hotseat) host() string {
	if p := h.state.Host(); p != nil {
		return p.ID
	}
	return ""
}

// play runs until the game ends or nothing can move it on
func (h *hotseat) play() {
	for h.state.CurrentPhase != models.PhaseGameOver {
		printTable(h.state)

		var progressed bool
		switch h.state.CurrentPhase {
		case models.PhaseDistribution:
			progressed = h.playTurn()
		case models.PhasePyramid:
			if len(h.state.Pyramid) == 0 {
				progressed = h.apply(h.engine.InitializePyramid(h.state, &engine.InitializePyramidInput{PlayerID: h.host()}))
			} else {
				progressed = h.reveal()
			}
		case models.PhaseReveal:
			progressed = h.reveal()
		case models.PhaseAllocate:
			progressed = h.allocate()
		case models.PhaseResolve:
			progressed = h.resolve()
		}

		if !progressed && h.stuck() {
			pterm.Error.Println("The table is stuck, ending the game.")
			return
		}
	}
}

// stuck reports whether the resolve phase has nothing left to answer
func (h *hotseat) stuck() bool {
	if h.state.CurrentPhase != models.PhaseResolve || h.state.ActiveChallenge != nil {
		return false
	}
	for _, p := range h.state.Players {
		if len(pendingFor(h.state, p.ID)) > 0 {
			return false
		}
	}
	return true
}

func (h *hotseat) playTurn() bool {
	p := h.state.Player(h.state.CurrentTurnPlayerID)
	if p == nil {
		return false
	}
	if h.state.ActiveCard == nil {
		return h.apply(h.engine.DrawCard(h.state, &engine.DrawCardInput{PlayerID: p.ID}))
	}

	q := engine.Questions[h.state.CurrentQuestionIndex]
	pterm.DefaultSection.Printfln("%s, question %d: %s", p.Name, h.state.CurrentQuestionIndex+1, q.Prompt)
	if len(p.Hand) > 0 {
		pterm.Println("Your cards: " + handLabel(p.Hand))
	}

	var answer string
	if len(q.Options) > 0 {
		answer, _ = pterm.DefaultInteractiveSelect.WithOptions(q.Options).Show()
	} else {
		answer, _ = pterm.DefaultInteractiveTextInput.WithDefaultText(fmt.Sprintf("Card, like %s", q.Example)).Show()
	}

	card := *h.state.ActiveCard
	card.Hidden = false

	res, err := h.engine.SubmitAnswer(h.state, &engine.SubmitAnswerInput{PlayerID: p.ID, Answer: answer})
	if err != nil {
		h.printError(err)
		return false
	}

	if msg, err := h.msgs.GetTurnResultMessage(context.Background(), &messaging.GetTurnResultMessageInput{
		PlayerName: p.Name,
		Correct:    res.Correct,
		Card:       card,
	}); err == nil {
		if res.Correct {
			pterm.Success.Printfln("%s %s", msg.Title, msg.Message)
		} else {
			pterm.Warning.Printfln("%s %s", msg.Title, msg.Message)
		}
	}

	return h.apply(res, nil)
}

func (h *hotseat) reveal() bool {
	ok, _ := pterm.DefaultInteractiveConfirm.WithDefaultText("Flip the next pyramid card?").WithDefaultValue(true).Show()
	if !ok {
		return false
	}
	if !h.apply(h.engine.RevealPyramidCard(h.state, &engine.RevealPyramidCardInput{PlayerID: h.host()})) {
		return false
	}
	if h.state.ActiveCard == nil {
		return true
	}
	if msg, err := h.msgs.GetPhaseMessage(context.Background(), &messaging.GetPhaseMessageInput{
		Phase:      h.state.CurrentPhase,
		Multiplier: engine.SipMultiplier(h.state.PyramidIndex(h.state.ActiveCard.ID)),
	}); err == nil {
		pterm.Info.Println(msg.Message)
	}
	return true
}

func (h *hotseat) allocate() bool {
	progressed := false
	for _, id := range h.state.PlayerIDs() {
		for h.state.CurrentPhase == models.PhaseAllocate && !h.state.HasConfirmed(id) {
			giver := h.state.Player(id)
			pterm.DefaultSection.Printfln("%s has %s", giver.Name, handLabel(giver.Hand))

			choice, _ := pterm.DefaultInteractiveSelect.
				WithDefaultText(fmt.Sprintf("%s, give sips for the %s?", giver.Name, cardLabel(*h.state.ActiveCard))).
				WithOptions([]string{choiceGive, choiceDone}).
				Show()

			if choice == choiceDone {
				progressed = h.apply(h.engine.ConfirmPhase2Turn(h.state, &engine.ConfirmPhase2TurnInput{PlayerID: id})) || progressed
				continue
			}
			progressed = h.give(giver) || progressed
		}
	}
	return progressed
}

func (h *hotseat) give(giver *models.Player) bool {
	var names []string
	targets := map[string]string{}
	for _, p := range h.state.Players {
		if p.ID != giver.ID {
			names = append(names, p.Name)
			targets[p.Name] = p.ID
		}
	}
	if len(names) == 0 {
		pterm.Warning.Println("Nobody to give sips to.")
		return false
	}

	target, _ := pterm.DefaultInteractiveSelect.WithDefaultText("Who drinks?").WithOptions(names).Show()
	raw, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("How many sips?").Show()
	amount, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		h.printError(engine.ErrInvalidAmount)
		return false
	}

	options := []string{choiceBluff}
	cards := map[string]string{}
	for _, c := range giver.Hand {
		face := c
		face.Hidden = false
		label := cardLabel(face)
		options = append(options, label)
		cards[label] = c.ID
	}
	claim, _ := pterm.DefaultInteractiveSelect.WithDefaultText("Which card do you claim?").WithOptions(options).Show()

	return h.apply(h.engine.AllocateSips(h.state, &engine.AllocateSipsInput{
		PlayerID:       giver.ID,
		TargetPlayerID: targets[target],
		Amount:         amount,
		UsingCardID:    cards[claim],
	}))
}

func (h *hotseat) resolve() bool {
	if ch := h.state.ActiveChallenge; ch != nil {
		return h.answerChallenge(ch)
	}

	for _, id := range h.state.PlayerIDs() {
		pending := pendingFor(h.state, id)
		if len(pending) == 0 {
			continue
		}
		allocID := pending[0]
		a := h.state.PendingAllocations[allocID]
		recipient := h.state.Player(id)

		choice, _ := pterm.DefaultInteractiveSelect.
			WithDefaultText(fmt.Sprintf("%s, %s gives you %d sips for the %s", recipient.Name, playerName(h.state, a.FromPlayerID), a.Amount, cardLabel(*h.state.ActiveCard))).
			WithOptions([]string{choiceAccept, choiceLiar}).
			Show()

		action := engine.ResponseAccept
		if choice == choiceLiar {
			action = engine.ResponseChallenge
		}
		return h.apply(h.engine.RespondToAllocation(h.state, &engine.RespondToAllocationInput{
			PlayerID:     id,
			AllocationID: allocID,
			Action:       action,
		}))
	}
	return false
}

func (h *hotseat) answerChallenge(ch *models.Challenge) bool {
	giver := h.state.Player(ch.TargetID)
	challenger := h.state.Player(ch.ChallengerID)
	if giver == nil || challenger == nil {
		return false
	}

	pterm.DefaultSection.Printfln("%s calls %s a liar!", challenger.Name, giver.Name)

	options := make([]string, 0, len(giver.Hand))
	cards := map[string]string{}
	for _, c := range giver.Hand {
		face := c
		face.Hidden = false
		label := cardLabel(face)
		options = append(options, label)
		cards[label] = c.ID
	}
	options = append(options, choiceBluff)
	shown, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText(fmt.Sprintf("%s, show your card", giver.Name)).
		WithOptions(options).
		Show()

	res, err := h.engine.ResolveChallenge(h.state, &engine.ResolveChallengeInput{
		PlayerID: giver.ID,
		CardID:   cards[shown],
	})
	if err != nil {
		h.printError(err)
		return false
	}

	truthful := true
	penalty := 0
	for _, sip := range res.Sips {
		penalty = sip.Amount
		if sip.Reason == models.SipReasonChallengeLostGiver {
			truthful = false
		}
	}
	if msg, err := h.msgs.GetChallengeVerdictMessage(context.Background(), &messaging.GetChallengeVerdictMessageInput{
		GiverName:      giver.Name,
		ChallengerName: challenger.Name,
		Truthful:       truthful,
		Penalty:        penalty,
	}); err == nil {
		pterm.Warning.Printfln("%s %s", msg.Title, msg.Message)
	}

	return h.apply(res, nil)
}

func (h *hotseat) printLeaderboard() {
	players := make([]*models.Player, len(h.state.Players))
	copy(players, h.state.Players)
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].SipsTaken > players[j].SipsTaken
	})

	data := pterm.TableData{{"#", "Player", "Took", "Gave"}}
	for i, p := range players {
		data = append(data, []string{strconv.Itoa(i + 1), p.Name, strconv.Itoa(p.SipsTaken), strconv.Itoa(p.SipsGiven)})
	}

	pterm.DefaultSection.Println("Game over")
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// pendingFor lists allocations still waiting on a recipient
func pendingFor(state *models.GameState, playerID string) []string {
	var ids []string
	for _, id := range engine.PendingFor(state, playerID) {
		if state.PendingAllocations[id].Status == models.AllocationStatusPending {
			ids = append(ids, id)
		}
	}
	return ids
}
