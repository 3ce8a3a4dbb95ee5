package handlers

import (
	"net/http"

	"marketmaster/internal/models"
)

// BattleHandler pages through the brand-battle scenarios.
type BattleHandler struct{}

// NewBattleHandler creates a new battle handler.
func NewBattleHandler() *BattleHandler {
	return &BattleHandler{}
}

// Next advances to the next scenario, wrapping around.
func (h *BattleHandler) Next(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	sess.Lock()
	sess.NextScenario()
	sess.Unlock()

	http.Redirect(w, r, "/section/"+string(models.SectionBrandBattle), http.StatusSeeOther)
}

// Prev steps back to the previous scenario, wrapping around.
func (h *BattleHandler) Prev(w http.ResponseWriter, r *http.Request) {
	sess := GetSessionFromContext(r.Context())

	sess.Lock()
	sess.PrevScenario()
	sess.Unlock()

	http.Redirect(w, r, "/section/"+string(models.SectionBrandBattle), http.StatusSeeOther)
}
