package booking

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wichananm65/prism-styles-backend/internal/forms"
	"github.com/wichananm65/prism-styles-backend/internal/settings"
)

type recordingSubmitter struct {
	err  error
	subs []forms.Submission
}

func (r *recordingSubmitter) Submit(_ context.Context, s forms.Submission) error {
	r.subs = append(r.subs, s)
	return r.err
}

func newApp(sub *recordingSubmitter) *fiber.App {
	app := fiber.New()
	NewHandler(sub, settings.NewInMemoryRepository(settings.Default())).RegisterPublicRoutes(app)
	return app
}

func post(t *testing.T, app *fiber.App, path, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return res.StatusCode
}

func TestBookingDefaultsService(t *testing.T) {
	sub := &recordingSubmitter{}
	app := newApp(sub)

	code := post(t, app, "/api/v1/bookings", `{"name":"Ada","email":"ada@x.io","date":"2026-11-02","time":"14:00"}`)

	assert.Equal(t, fiber.StatusAccepted, code)
	require.Len(t, sub.subs, 1)
	b := sub.subs[0].(forms.Booking)
	assert.Equal(t, "Personal Styling", b.Service)
	assert.Equal(t, "New VIP Booking Request - Personal Styling from Ada", b.Subject())
}

func TestBookingValidation(t *testing.T) {
	sub := &recordingSubmitter{}
	app := newApp(sub)

	assert.Equal(t, fiber.StatusBadRequest, post(t, app, "/api/v1/bookings", `{"email":"ada@x.io"}`))
	assert.Equal(t, fiber.StatusBadRequest, post(t, app, "/api/v1/bookings", `{"name":"Ada","email":"not-an-email"}`))
	assert.Empty(t, sub.subs)
}

func TestBookingRemoteFailure(t *testing.T) {
	app := newApp(&recordingSubmitter{err: errors.New("timeout")})

	assert.Equal(t, fiber.StatusBadGateway, post(t, app, "/api/v1/bookings", `{"name":"Ada","email":"ada@x.io"}`))
}

func TestNewsletterUsesBrandName(t *testing.T) {
	sub := &recordingSubmitter{}
	app := newApp(sub)

	assert.Equal(t, 200, post(t, app, "/api/v1/newsletter", `{"email":"fan@prism.io"}`))
	require.Len(t, sub.subs, 1)
	assert.Equal(t, "Newsletter Signup - PRISM STYLES INC.", sub.subs[0].Subject())
}

func TestNewsletterRemoteFailure(t *testing.T) {
	app := newApp(&recordingSubmitter{err: errors.New("down")})

	assert.Equal(t, fiber.StatusBadGateway, post(t, app, "/api/v1/newsletter", `{"email":"fan@prism.io"}`))
}
