package tui

import (
	"errors"
	"testing"

	"github.com/MKhiriev/go-crew-pass/internal/adapter"
	"github.com/MKhiriev/go-crew-pass/internal/app"
	"github.com/MKhiriev/go-crew-pass/internal/mock"
	"github.com/MKhiriev/go-crew-pass/internal/service"
	"github.com/MKhiriev/go-crew-pass/internal/store"
	"github.com/MKhiriev/go-crew-pass/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func menuHarness(t *testing.T) (*harness, *mock.MockBackendAdapter, *memRepo) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackendAdapter(ctrl)
	repo := newMemRepo()
	return newHarness(t, backend, repo, StartPage(nil)), backend, repo
}

func pasteAadhaar(h *harness, text string) {
	h.aadhaar().paste = func() (string, error) { return text, nil }
	h.press("ctrl+v")
}

func TestMenu_LoginFlowReachesPasscode(t *testing.T) {
	h, backend, _ := menuHarness(t)
	backend.EXPECT().CheckAadhaar(gomock.Any(), testAadhaar).Return(true, nil)

	h.press("enter")
	require.Equal(t, pageAadhaar, h.page())
	assert.False(t, h.aadhaar().register)

	pasteAadhaar(h, "2345 6789 0123")
	assert.Equal(t, testAadhaar, h.aadhaar().input.Value())

	h.press("enter")
	require.Equal(t, pageLoginPasscode, h.page())
	assert.Equal(t, testAadhaar, h.login().aadhaar)
}

func TestMenu_RegisterFlowReachesProfile(t *testing.T) {
	h, backend, _ := menuHarness(t)
	backend.EXPECT().CheckAadhaar(gomock.Any(), testAadhaar).Return(false, nil)

	h.press("down", "enter")
	require.Equal(t, pageAadhaar, h.page())
	assert.True(t, h.aadhaar().register)

	pasteAadhaar(h, testAadhaar)
	h.press("enter")

	require.Equal(t, pageProfile, h.page())
	assert.Equal(t, testAadhaar, h.profile().aadhaar)
}

func TestAadhaar_Lookups(t *testing.T) {
	tests := []struct {
		name     string
		register bool
		found    bool
		err      error
		want     string
	}{
		{name: "login unknown number", register: false, found: false, want: app.MsgAadhaarNotRegistered},
		{name: "register known number", register: true, found: true, want: app.MsgAadhaarAlreadyRegistered},
		{name: "backend down", register: false, err: errors.New("dial tcp: connection refused"), want: app.MsgServerUnavailable},
		{name: "server message", register: true, err: adapter.NewServerError(500, "try later"), want: "try later"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			backend := mock.NewMockBackendAdapter(ctrl)
			backend.EXPECT().CheckAadhaar(gomock.Any(), testAadhaar).Return(tt.found, tt.err)

			h := newHarness(t, backend, newMemRepo(), NavigateTo{
				Page:    pageAadhaar,
				Payload: aadhaarStart{register: tt.register},
			})
			pasteAadhaar(h, testAadhaar)
			h.press("enter")

			assert.Equal(t, pageAadhaar, h.page())
			assert.Equal(t, tt.want, h.aadhaar().errMsg)
			assert.False(t, h.aadhaar().checking)
		})
	}
}

func TestAadhaar_InvalidNumberIsNotSent(t *testing.T) {
	h, _, _ := menuHarness(t)
	h.press("enter")

	h.typeText("12ab34")
	assert.Equal(t, "1234", h.aadhaar().input.Value())

	h.press("enter")
	assert.Equal(t, app.MsgInvalidAadhaar, h.aadhaar().errMsg)
	assert.False(t, h.aadhaar().checking)
}

func TestAadhaar_ClipboardUnavailable(t *testing.T) {
	h, _, _ := menuHarness(t)
	h.press("enter")

	h.aadhaar().paste = func() (string, error) { return "", errors.New("no clipboard utility") }
	h.press("ctrl+v")

	assert.Equal(t, "Clipboard is not available", h.aadhaar().errMsg)
	assert.Empty(t, h.aadhaar().input.Value())
}

func TestAadhaar_EscReturnsToMenu(t *testing.T) {
	h, _, _ := menuHarness(t)
	h.press("enter", "esc")
	assert.Equal(t, pageMenu, h.page())
}

func profileHarness(t *testing.T) *harness {
	ctrl := gomock.NewController(t)
	return newHarness(t, mock.NewMockBackendAdapter(ctrl), newMemRepo(), NavigateTo{
		Page:    pageProfile,
		Payload: profileStart{aadhaar: testAadhaar},
	})
}

func TestProfile_SubmitsRegistration(t *testing.T) {
	h := profileHarness(t)

	h.typeText("Asha")
	h.press("tab")
	h.typeText("Rao")
	h.press("tab")
	h.typeText("98765x43210")
	h.press("enter")
	h.press("right")
	h.press("enter")

	require.Equal(t, pageCreatePasscode, h.page())
	assert.Equal(t, models.Registration{
		Aadhaar:   testAadhaar,
		FirstName: "Asha",
		LastName:  "Rao",
		Phone:     "9876543210",
		Role:      "Contractor",
	}, h.create().registration)
}

func TestProfile_ValidationErrors(t *testing.T) {
	h := profileHarness(t)

	h.press("tab", "tab", "tab", "enter")
	assert.Equal(t, pageProfile, h.page())
	assert.NotEmpty(t, h.profile().errMsg)

	h.press("tab")
	h.typeText("Asha")
	h.press("tab")
	h.typeText("Rao")
	h.press("tab")
	h.typeText("123")
	h.press("enter", "enter")

	assert.Equal(t, pageProfile, h.page())
	assert.Contains(t, h.profile().errMsg, "phone")
}

func TestProfile_RoleWrapsAround(t *testing.T) {
	h := profileHarness(t)

	h.press("tab", "tab", "tab", "left")
	assert.Equal(t, models.RoleAdmin, models.Roles[h.profile().roleIdx])

	h.press("right")
	assert.Equal(t, models.RoleWorker, models.Roles[h.profile().roleIdx])
}

func homeHarness(t *testing.T) (*harness, *mock.MockBackendAdapter, *memRepo) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackendAdapter(ctrl)
	repo := newMemRepo()
	repo.items[store.KeyAuthToken] = "t1"
	repo.items[store.KeyRole] = "Worker"
	repo.items[store.KeyWorkerName] = "A B"

	session := &models.Session{Aadhaar: testAadhaar, Token: "t1", Role: models.RoleWorker, DisplayName: "A B"}
	backend.EXPECT().
		UserData(gomock.Any(), "t1").
		Return(models.UserDataResponse{Status: models.StatusOK, Data: models.User{FirstName: "A", LastName: "B", Role: "Worker"}}, nil)

	return newHarness(t, backend, repo, StartPage(session)), backend, repo
}

func TestHome_LogoutClearsSession(t *testing.T) {
	h, _, repo := homeHarness(t)
	require.Equal(t, pageWorkerHome, h.page())
	require.NotNil(t, h.home(pageWorkerHome).user)

	h.press("l")

	assert.Equal(t, pageMenu, h.page())
	for _, k := range []string{store.KeyAuthToken, store.KeyRole, store.KeyWorkerName, store.KeyUserData} {
		_, ok := repo.item(k)
		assert.False(t, ok, k)
	}
	assert.Empty(t, h.menu().notice)
}

func TestHome_Refresh(t *testing.T) {
	h, backend, _ := homeHarness(t)

	backend.EXPECT().
		UserData(gomock.Any(), "t1").
		Return(models.UserDataResponse{Status: models.StatusOK, Data: models.User{FirstName: "A", LastName: "C"}}, nil)

	h.press("r")
	require.NotNil(t, h.home(pageWorkerHome).user)
	assert.Equal(t, "A C", h.home(pageWorkerHome).user.FullName())
}

func TestHome_ProfileOfEarlierSessionIgnored(t *testing.T) {
	h, backend, repo := homeHarness(t)
	h.press("l")
	require.Equal(t, pageMenu, h.page())

	repo.items[store.KeyAuthToken] = "t2"
	backend.EXPECT().
		UserData(gomock.Any(), "t2").
		Return(models.UserDataResponse{Status: models.StatusOK, Data: models.User{FirstName: "C", LastName: "D"}}, nil)
	h.send(NavigateTo{Page: pageWorkerHome, Payload: models.Session{Token: "t2", Role: models.RoleWorker, DisplayName: "C D"}})

	home := h.home(pageWorkerHome)
	require.NotNil(t, home.user)
	require.Equal(t, "C D", home.user.FullName())

	// answers to the first session's load arrive late
	h.send(userDataLoaded{gen: 1, token: "t1", user: models.User{FirstName: "A", LastName: "B"}})
	h.send(userDataLoaded{gen: 1, token: "t1", err: service.ErrSessionExpired})

	assert.Equal(t, pageWorkerHome, h.page())
	assert.Equal(t, "C D", home.user.FullName())
	assert.Empty(t, home.errMsg)
	v, ok := repo.item(store.KeyAuthToken)
	assert.True(t, ok)
	assert.Equal(t, "t2", v)
}

func TestHome_ProfileArrivingAfterLogoutIgnored(t *testing.T) {
	h, _, _ := homeHarness(t)
	h.press("l")

	h.send(userDataLoaded{gen: 1, token: "t1", user: models.User{FirstName: "A", LastName: "B"}})

	assert.Equal(t, pageMenu, h.page())
	assert.Nil(t, h.home(pageWorkerHome).user)
}

func TestHome_ExpiredSessionLogsOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackendAdapter(ctrl)
	repo := newMemRepo()
	repo.items[store.KeyAuthToken] = "t1"

	backend.EXPECT().UserData(gomock.Any(), "t1").Return(models.UserDataResponse{}, adapter.NewServerError(401, ""))

	h := newHarness(t, backend, repo, StartPage(&models.Session{Token: "t1", Role: models.RoleAdmin}))

	assert.Equal(t, pageMenu, h.page())
	assert.Equal(t, app.MsgSessionExpired, h.menu().notice)
	_, ok := repo.item(store.KeyAuthToken)
	assert.False(t, ok)
}

func TestHome_ProfileErrorStaysOnPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mock.NewMockBackendAdapter(ctrl)
	backend.EXPECT().UserData(gomock.Any(), "t1").Return(models.UserDataResponse{Status: "FAILED", Message: "user blocked"}, nil)

	h := newHarness(t, backend, newMemRepo(), StartPage(&models.Session{Token: "t1", Role: models.RoleContractor}))

	assert.Equal(t, pageContractorHome, h.page())
	assert.Equal(t, "user blocked", h.home(pageContractorHome).errMsg)
	assert.Nil(t, h.home(pageContractorHome).user)
}

func TestRoot_BuildInfoOnMenuOnly(t *testing.T) {
	h, _, _ := menuHarness(t)

	h.press("v")
	assert.True(t, h.root.showBuildInfo)
	assert.Contains(t, h.root.View(), "1.2.3")

	h.press("enter")
	assert.Equal(t, pageMenu, h.page(), "keys are swallowed while build info is open")

	h.press("esc")
	assert.False(t, h.root.showBuildInfo)
}

func TestRoot_CtrlCQuits(t *testing.T) {
	h, _, _ := menuHarness(t)
	h.press("ctrl+c")
	assert.True(t, h.root.quitByUser)
}

func TestRoot_UnknownPageIgnored(t *testing.T) {
	h, _, _ := menuHarness(t)
	h.send(NavigateTo{Page: "nowhere"})
	assert.Equal(t, pageMenu, h.page())
}

func TestStartPage(t *testing.T) {
	assert.Equal(t, NavigateTo{Page: pageMenu}, StartPage(nil))
	assert.Equal(t, NavigateTo{Page: pageMenu}, StartPage(&models.Session{Token: "t"}))

	session := models.Session{Token: "t", Role: models.RoleAdmin}
	assert.Equal(t, NavigateTo{Page: pageAdminHome, Payload: session}, StartPage(&session))
}

func TestMenuPage_ShowsNotice(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := newHarness(t, mock.NewMockBackendAdapter(ctrl), newMemRepo(), MenuPage(app.MsgSessionExpired))

	assert.Equal(t, pageMenu, h.page())
	assert.Equal(t, app.MsgSessionExpired, h.menu().notice)
	assert.Equal(t, NavigateTo{Page: pageMenu}, MenuPage(""))
}

func TestHomePage(t *testing.T) {
	page, err := HomePage(models.RoleWorker)
	require.NoError(t, err)
	assert.Equal(t, pageWorkerHome, page)

	_, err = HomePage(models.RoleUnknown)
	assert.ErrorIs(t, err, models.ErrUnknownRole)
}

func TestNew_RequiresServices(t *testing.T) {
	_, err := New(nil, testTiming, nil, nil, nil)
	assert.Error(t, err)
}
