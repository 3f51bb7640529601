package game

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ProgressStore persists how far the player has gotten through the
// tutorial, so finished lessons stay finished across sessions.
type ProgressStore interface {
	LoadIndex() (int, error)
	SaveIndex(index int) error
}

// tutorialMessages is the ordered onboarding sequence. The stage index
// doubles as the persisted progress value; len(tutorialMessages) means done.
var tutorialMessages = []string{
	"WASD to move",
	"Left Mouse Click to shoot",
}

// Tutorial is the onboarding popup state machine. Each stage shows one
// message; the triggering player action starts a fade-out, and the stage
// index advances only once the fade completes. The next message then
// fades in.
type Tutorial struct {
	stage int
	alpha float64

	fade      *gween.Tween
	fadingOut bool

	store ProgressStore
}

// NewTutorial restores progress from store (which may be nil) and fades
// in the current message, if any remain.
func NewTutorial(store ProgressStore) *Tutorial {
	t := &Tutorial{store: store}
	if store != nil {
		if idx, err := store.LoadIndex(); err == nil && idx > 0 {
			t.stage = idx
		}
	}
	if t.stage > len(tutorialMessages) {
		t.stage = len(tutorialMessages)
	}
	if !t.Finished() {
		t.fadeIn()
	}
	return t
}

// Finished reports whether every lesson has been completed.
func (t *Tutorial) Finished() bool {
	return t.stage >= len(tutorialMessages)
}

// Message returns the current popup text and alpha. Text is empty when
// nothing should be shown.
func (t *Tutorial) Message() (string, float64) {
	if t.Finished() || t.alpha <= 0 {
		return "", 0
	}
	return tutorialMessages[t.stage], t.alpha
}

// NoteMove records that a movement key was pressed.
func (t *Tutorial) NoteMove() {
	t.complete(0)
}

// NoteShot records that the player fired.
func (t *Tutorial) NoteShot() {
	t.complete(1)
}

// complete starts the fade-out for the given stage if it is the one
// currently showing. The stage index itself advances in Update, when the
// fade reaches zero.
func (t *Tutorial) complete(stage int) {
	if t.stage != stage || t.fadingOut {
		return
	}
	t.fadingOut = true
	t.fade = gween.New(float32(t.alpha), 0, tutorialFadeDuration, ease.Linear)
}

func (t *Tutorial) fadeIn() {
	t.fadingOut = false
	t.fade = gween.New(float32(t.alpha), 1, tutorialFadeDuration, ease.Linear)
}

// Update advances the active fade. Uses wall-clock dt: the popup is UI and
// is not affected by death slow-motion.
func (t *Tutorial) Update(dt float64) {
	if t.fade == nil {
		return
	}
	v, done := t.fade.Update(float32(dt))
	t.alpha = float64(v)
	if !done {
		return
	}
	t.fade = nil
	if t.fadingOut {
		t.fadingOut = false
		t.stage++
		if t.store != nil {
			// Best effort; losing progress persistence is not fatal.
			_ = t.store.SaveIndex(t.stage)
		}
		if !t.Finished() {
			t.fadeIn()
		}
	}
}
