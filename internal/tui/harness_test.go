package tui

import (
	"context"
	"maps"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-crew-pass/internal/adapter"
	"github.com/MKhiriev/go-crew-pass/internal/config"
	"github.com/MKhiriev/go-crew-pass/internal/crypto"
	"github.com/MKhiriev/go-crew-pass/internal/logger"
	"github.com/MKhiriev/go-crew-pass/internal/passcode"
	"github.com/MKhiriev/go-crew-pass/internal/service"
	"github.com/MKhiriev/go-crew-pass/internal/store"
	"github.com/MKhiriev/go-crew-pass/internal/validators"
	"github.com/MKhiriev/go-crew-pass/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// cmdTimeout drops commands that wait longer than this, such as cursor
// blinks and spinner ticks.
const cmdTimeout = 30 * time.Millisecond

var testTiming = config.ClientKeypad{
	HighlightDelay: time.Millisecond,
	ShakeStep:      time.Millisecond,
}

// memRepo is an in-memory session store that records every write.
type memRepo struct {
	mu     sync.Mutex
	items  map[string]string
	writes []map[string]string
}

func newMemRepo() *memRepo {
	return &memRepo{items: map[string]string{}}
}

func (r *memRepo) SetItems(_ context.Context, items map[string]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes = append(r.writes, maps.Clone(items))
	maps.Copy(r.items, items)
	return nil
}

func (r *memRepo) GetItem(_ context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.items[key]
	if !ok {
		return "", store.ErrKeyNotFound
	}
	return v, nil
}

func (r *memRepo) RemoveItems(_ context.Context, keys ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, k := range keys {
		delete(r.items, k)
	}
	return nil
}

func (r *memRepo) item(key string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.items[key]
	return v, ok
}

// recordingVibrator remembers every pulse.
type recordingVibrator struct {
	pulses []passcode.Pulse
}

func (v *recordingVibrator) Vibrate(p passcode.Pulse) {
	v.pulses = append(v.pulses, p)
}

func (v *recordingVibrator) last() passcode.Pulse {
	if len(v.pulses) == 0 {
		return passcode.PulseNone
	}
	return v.pulses[len(v.pulses)-1]
}

// harness drives a RootModel the way the Bubble Tea runtime does, but on the
// test goroutine. Keypad timers are held back until flushTimers so that
// tests can look at highlights and shakes in flight.
type harness struct {
	t        *testing.T
	root     RootModel
	pages    map[string]tea.Model
	vibrator *recordingVibrator
	held     []tea.Msg
}

func newTestServices(backend adapter.BackendAdapter, repo store.SessionRepository) *service.ClientServices {
	log := logger.Nop()
	return &service.ClientServices{
		AuthService:    service.NewAuthService(backend, validators.NewInputValidator(), log),
		SessionService: service.NewSessionService(repo, log),
		ProfileService: service.NewProfileService(backend, repo, log),
		AppInfoService: service.NewAppInfoService(models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123")),
	}
}

func newHarness(t *testing.T, backend adapter.BackendAdapter, repo store.SessionRepository, start NavigateTo) *harness {
	t.Helper()

	services := newTestServices(backend, repo)
	vib := &recordingVibrator{}
	ui, err := New(services, testTiming, crypto.NewPasscodeHasher(bcrypt.MinCost), vib, logger.Nop())
	require.NoError(t, err)

	pages := ui.Pages(context.Background())
	h := &harness{
		t:        t,
		root:     NewRootModel(pages, start, services.AppInfoService.BuildInfo()),
		pages:    pages,
		vibrator: vib,
	}
	h.run(h.root.Init())
	return h
}

// collect runs cmd and flattens batches into the messages they produce.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(cmdTimeout):
		return nil
	}

	switch m := msg.(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range m {
			out = append(out, collect(c)...)
		}
		return out
	default:
		return []tea.Msg{msg}
	}
}

func (h *harness) run(cmd tea.Cmd) {
	h.process(collect(cmd))
}

func (h *harness) send(msg tea.Msg) {
	h.process([]tea.Msg{msg})
}

// process feeds queue and everything it produces to the root model, holding
// back keypad timers.
func (h *harness) process(queue []tea.Msg) {
	h.loop(queue, true)
}

// deliver is process without holding timers back.
func (h *harness) deliver(queue ...tea.Msg) {
	h.loop(queue, false)
}

func (h *harness) loop(queue []tea.Msg, hold bool) {
	h.t.Helper()
	for steps := 0; len(queue) > 0; steps++ {
		require.Less(h.t, steps, 1000, "message loop does not settle")

		msg := queue[0]
		queue = queue[1:]

		switch msg.(type) {
		case highlightExpired, shakeTick:
			if hold {
				h.held = append(h.held, msg)
				continue
			}
		case tea.QuitMsg:
			continue
		}

		model, cmd := h.root.Update(msg)
		h.root = model.(RootModel)
		queue = append(queue, collect(cmd)...)
	}
}

// flushTimers delivers the held timer messages and every timer they arm.
func (h *harness) flushTimers() {
	held := h.held
	h.held = nil
	h.deliver(held...)
}

// press sends each key: digits, "backspace", "enter", "esc" or any other
// single rune.
func (h *harness) press(keys ...string) {
	for _, k := range keys {
		h.send(keyMsg(k))
	}
}

func (h *harness) typeText(s string) {
	for _, r := range s {
		h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func (h *harness) page() string {
	return h.root.CurrentPage()
}

func (h *harness) login() *LoginPasscodeModel {
	return h.pages[pageLoginPasscode].(*LoginPasscodeModel)
}

func (h *harness) confirm() *ConfirmPasscodeModel {
	return h.pages[pageConfirmPasscode].(*ConfirmPasscodeModel)
}

func (h *harness) create() *CreatePasscodeModel {
	return h.pages[pageCreatePasscode].(*CreatePasscodeModel)
}

func (h *harness) aadhaar() *AadhaarModel {
	return h.pages[pageAadhaar].(*AadhaarModel)
}

func (h *harness) profile() *ProfileModel {
	return h.pages[pageProfile].(*ProfileModel)
}

func (h *harness) menu() *MenuModel {
	return h.pages[pageMenu].(*MenuModel)
}

func (h *harness) home(page string) *HomeModel {
	return h.pages[page].(*HomeModel)
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+v":
		return tea.KeyMsg{Type: tea.KeyCtrlV}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func digits(code string) []string {
	out := make([]string, 0, len(code))
	for _, r := range code {
		out = append(out, string(r))
	}
	return out
}
