package app_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus-bank/internal/app"
	"nexus-bank/internal/domain"
	"nexus-bank/internal/format"
	"nexus-bank/internal/gateway"
	"nexus-bank/internal/usecase"
	mock_usecase "nexus-bank/internal/usecase/mocks"
)

type stubForm struct {
	values     map[string]string
	submitting []bool
	resets     int
}

func newForm(kv ...string) *stubForm {
	f := &stubForm{values: make(map[string]string)}
	for i := 0; i+1 < len(kv); i += 2 {
		f.values[kv[i]] = kv[i+1]
	}
	return f
}

func (f *stubForm) Value(field string) string { return f.values[field] }
func (f *stubForm) SetSubmitting(s bool)      { f.submitting = append(f.submitting, s) }
func (f *stubForm) Reset() {
	f.values = make(map[string]string)
	f.resets++
}

type fixture struct {
	app     *app.App
	view    *mock_usecase.MockView
	session *usecase.Session
}

func newFixture(t *testing.T, delay time.Duration) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	view := mock_usecase.NewMockView(ctrl)

	// Page plumbing is covered by the navigator tests.
	view.EXPECT().SetPageVisible(gomock.Any(), gomock.Any()).AnyTimes()
	view.EXPECT().SetActiveLink(gomock.Any()).AnyTimes()
	view.EXPECT().CloseMenu().AnyTimes()

	cur, err := format.NewCurrency("en-US", "₹")
	require.NoError(t, err)

	session := usecase.NewSession(gateway.NewSeedUserRepository(), delay)
	ledger := usecase.NewLedger(&usecase.SequenceGenerator{})
	nav := usecase.NewNavigator(session, ledger, view, 3)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &fixture{
		app:     app.New(session, ledger, nav, view, cur, logger),
		view:    view,
		session: session,
	}
}

func (f *fixture) login(t *testing.T) {
	t.Helper()
	f.view.EXPECT().ShowAuthButtons(true)
	f.view.EXPECT().RenderDashboard(gomock.Any())
	_, err := f.app.SubmitLogin(context.Background(), newForm(app.FieldEmail, "astaad@nexus.com", app.FieldPassword, "1234"))
	require.NoError(t, err)
}

func TestApp_SubmitLogin(t *testing.T) {
	f := newFixture(t, 5*time.Millisecond)
	form := newForm(app.FieldEmail, "astaad@nexus.com", app.FieldPassword, "1234")

	f.view.EXPECT().ShowAuthButtons(true)
	f.view.EXPECT().RenderDashboard(gomock.Any())

	user, err := f.app.SubmitLogin(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, "Astaad", user.Name)
	assert.Equal(t, domain.PageDashboard, f.app.Current())
	assert.Equal(t, []bool{true, false}, form.submitting, "submit disabled for the delay, then re-enabled")
	assert.Equal(t, 1, form.resets)
}

func TestApp_SubmitLoginInvalid(t *testing.T) {
	f := newFixture(t, 0)
	form := newForm(app.FieldEmail, "astaad@nexus.com", app.FieldPassword, "nope")

	f.view.EXPECT().Notify("Invalid email or password")

	user, err := f.app.SubmitLogin(context.Background(), form)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.Nil(t, user)
	assert.Nil(t, f.app.CurrentUser())
	assert.Empty(t, form.submitting)
	assert.Zero(t, form.resets)
}

func TestApp_SubmitLoginCancelled(t *testing.T) {
	f := newFixture(t, time.Hour)
	form := newForm(app.FieldEmail, "astaad@nexus.com", app.FieldPassword, "1234")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.app.SubmitLogin(ctx, form)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, f.app.CurrentUser())
	assert.Equal(t, []bool{true, false}, form.submitting)
}

func TestApp_Transfer(t *testing.T) {
	f := newFixture(t, 0)
	f.login(t)

	form := newForm(app.FieldRecipient, "Rahul", app.FieldAmount, "5000")
	f.view.EXPECT().Notify("₹5,000.00 transferred successfully!\nNew Balance: ₹120,000.00")
	f.view.EXPECT().RenderDashboard(gomock.Any()).Do(func(d domain.Dashboard) {
		require.Len(t, d.Recent, 1)
		assert.Equal(t, "Transfer to Rahul", d.Recent[0].Description)
	})

	tx, err := f.app.SubmitTransfer(form)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(-5000).Equal(tx.Amount))
	assert.True(t, decimal.NewFromInt(120000).Equal(f.app.CurrentUser().Balance))
	assert.Equal(t, domain.PageDashboard, f.app.Current())
	assert.Equal(t, 1, form.resets)
}

func TestApp_TransferErrors(t *testing.T) {
	tests := []struct {
		name    string
		form    *stubForm
		message string
		wantErr error
	}{
		{
			name:    "missing recipient",
			form:    newForm(app.FieldAmount, "10"),
			message: "Please fill all fields",
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "bad amount",
			form:    newForm(app.FieldRecipient, "Rahul", app.FieldAmount, "abc"),
			message: "Please fill all fields",
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "insufficient funds",
			form:    newForm(app.FieldRecipient, "Rahul", app.FieldAmount, "200000"),
			message: "Insufficient balance",
			wantErr: domain.ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 0)
			f.login(t)
			f.view.EXPECT().Notify(tt.message)

			_, err := f.app.SubmitTransfer(tt.form)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, decimal.NewFromInt(125000).Equal(f.app.CurrentUser().Balance))
			assert.Empty(t, f.app.CurrentUser().Transactions)
			assert.Zero(t, tt.form.resets)
		})
	}
}

func TestApp_TransferLoggedOut(t *testing.T) {
	f := newFixture(t, 0)
	f.view.EXPECT().Notify("Please login to access this page.")

	_, err := f.app.SubmitTransfer(newForm(app.FieldRecipient, "Rahul", app.FieldAmount, "10"))
	assert.ErrorIs(t, err, domain.ErrUnauthenticatedAccess)
	assert.Equal(t, domain.PageLogin, f.app.Current())
}

func TestApp_LogoutThenProtectedPage(t *testing.T) {
	f := newFixture(t, 0)
	f.login(t)

	f.view.EXPECT().ShowAuthButtons(false).Times(2)
	f.view.EXPECT().Notify("Logged out successfully")
	f.app.Logout()
	assert.Equal(t, domain.PageHome, f.app.Current())
	assert.Nil(t, f.app.CurrentUser())

	f.view.EXPECT().Notify("Please login to access this page.")
	page, err := f.app.Navigate(domain.PageTransactions)
	assert.ErrorIs(t, err, domain.ErrUnauthenticatedAccess)
	assert.Equal(t, domain.PageLogin, page)
}

func TestApp_NavigateUnknown(t *testing.T) {
	f := newFixture(t, 0)
	f.view.EXPECT().Notify(`Unknown page "about"`)

	_, err := f.app.Navigate("about")
	assert.ErrorIs(t, err, domain.ErrUnknownPage)
}

func TestApp_Start(t *testing.T) {
	f := newFixture(t, 0)
	f.view.EXPECT().ShowAuthButtons(false)

	assert.Equal(t, domain.PageHome, f.app.Start("#nowhere"))
}
