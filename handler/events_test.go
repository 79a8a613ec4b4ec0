package handler_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"booking_console/client"
	"booking_console/handler"
	"booking_console/router"
	"booking_console/view"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// fakeAPI scripts the remote booking API and counts what the console sends.
type fakeAPI struct {
	mu           sync.Mutex
	listCalls    int
	createCalls  int
	bookCalls    int
	confirmCalls int
	cancelCalls  int

	lastCreateBody map[string]any

	listFail   bool
	bookStatus int
	bookError  string
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case r.Method == http.MethodGet:
		f.listCalls++
		if f.listFail {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"error": "events not found"}`)
			return
		}
		fmt.Fprint(w, `{"result": [{"id": "11111111-2222-3333-4444-555555555555", "title": "Talk",
			"total_seats": 50, "available_seats": 50, "event_at": "2025-01-01T10:00:00Z"}]}`)

	case r.URL.Path == "/":
		f.createCalls++
		json.NewDecoder(r.Body).Decode(&f.lastCreateBody)
		fmt.Fprint(w, `{"result": {"id": "11111111-2222-3333-4444-555555555555", "title": "Talk", "total_seats": 50, "available_seats": 50}}`)

	case strings.HasSuffix(r.URL.Path, "/book"):
		f.bookCalls++
		if f.bookStatus != 0 {
			w.WriteHeader(f.bookStatus)
			fmt.Fprintf(w, `{"error": %q}`, f.bookError)
			return
		}
		fmt.Fprint(w, `{"result": {"id": "aaaaaaaa-0000-0000-0000-000000000001", "status": "pending"}}`)

	case strings.HasSuffix(r.URL.Path, "/confirm"):
		f.confirmCalls++
		fmt.Fprint(w, `{"result": {"status": "confirmed"}}`)

	default:
		f.cancelCalls++
		fmt.Fprint(w, `{"result": {"status": "cancelled"}}`)
	}
}

func (f *fakeAPI) snapshotCalls() (list, create, book, confirm, cancel int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls, f.createCalls, f.bookCalls, f.confirmCalls, f.cancelCalls
}

func newTestApp(t *testing.T, fake *fakeAPI) *fiber.App {
	t.Helper()
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	api := client.New(server.URL, nil)
	hub := handler.NewHub(nil)
	h := handler.New(api, view.New(api), handler.NewFlash(nil), hub, nil, "http://console.test")

	app := fiber.New()
	router.SetupRoutes(app, h, hub)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("request %s failed: %v", path, err)
	}
	return resp
}

type actionResponse struct {
	Status string `json:"status"`
	Data   struct {
		Message       string `json:"message"`
		HTML          string `json:"html"`
		ClearForm     bool   `json:"clear_form"`
		CloseModal    string `json:"close_modal"`
		RefreshFailed bool   `json:"refresh_failed"`
	} `json:"data"`
	Message string `json:"message"`
}

func decodeAction(t *testing.T, resp *http.Response) actionResponse {
	t.Helper()
	raw, _ := io.ReadAll(resp.Body)
	var out actionResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("bad response body %q: %v", raw, err)
	}
	return out
}

func TestCreateEventHappyPath(t *testing.T) {
	fake := &fakeAPI{}
	app := newTestApp(t, fake)

	resp := postJSON(t, app, "/console/events",
		`{"title": "Talk", "event_at": "2025-01-01T10:00", "total_seats": 50}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	out := decodeAction(t, resp)
	if !out.Data.ClearForm {
		t.Error("successful create should tell the browser to clear the form")
	}
	if !strings.Contains(out.Data.HTML, "event-card") {
		t.Error("response should carry the refreshed fragment")
	}

	list, create, _, _, _ := fake.snapshotCalls()
	if create != 1 {
		t.Errorf("create calls = %d, want 1", create)
	}
	if fake.lastCreateBody["total_seats"] != float64(50) {
		t.Errorf("upstream got total_seats = %v, want 50", fake.lastCreateBody["total_seats"])
	}
	if list != 1 {
		t.Errorf("refresh fetches = %d, want exactly 1 after the action", list)
	}
}

func TestCreateEventLocalValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing title", `{"title": "", "event_at": "2025-01-01T10:00", "total_seats": 50}`},
		{"zero seats", `{"title": "Talk", "event_at": "2025-01-01T10:00", "total_seats": 0}`},
		{"negative seats", `{"title": "Talk", "event_at": "2025-01-01T10:00", "total_seats": -3}`},
		{"missing date", `{"title": "Talk", "total_seats": 50}`},
		{"garbage date", `{"title": "Talk", "event_at": "soon", "total_seats": 50}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeAPI{}
			app := newTestApp(t, fake)

			resp := postJSON(t, app, "/console/events", tt.body)
			if resp.StatusCode != http.StatusUnprocessableEntity {
				t.Errorf("status = %d, want 422", resp.StatusCode)
			}

			list, create, _, _, _ := fake.snapshotCalls()
			if create != 0 || list != 0 {
				t.Errorf("validation failure must not reach the API (list=%d create=%d)", list, create)
			}
		})
	}
}

func TestBookSeatsRejectsFalsyRequester(t *testing.T) {
	fake := &fakeAPI{}
	app := newTestApp(t, fake)

	resp := postJSON(t, app, "/console/events/"+uuid.NewString()+"/book",
		`{"telegram_id": 0, "places_count": 2}`)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", resp.StatusCode)
	}

	_, _, book, _, _ := fake.snapshotCalls()
	if book != 0 {
		t.Error("local rejection must not produce a booking request")
	}
}

func TestBookSeatsUpstreamConflict(t *testing.T) {
	fake := &fakeAPI{bookStatus: http.StatusConflict, bookError: "no seats available"}
	app := newTestApp(t, fake)

	resp := postJSON(t, app, "/console/events/"+uuid.NewString()+"/book",
		`{"telegram_id": 7, "places_count": 2}`)
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("status = %d, want upstream 409 passed through", resp.StatusCode)
	}

	out := decodeAction(t, resp)
	if !strings.Contains(out.Message, "no seats available") {
		t.Errorf("notification %q should contain the server message", out.Message)
	}
	if !strings.Contains(out.Message, "Booking failed") {
		t.Errorf("notification %q should name the failed action", out.Message)
	}

	list, _, _, _, _ := fake.snapshotCalls()
	if list != 0 {
		t.Error("a failed booking must not trigger a refresh")
	}
}

func TestBookSeatsSuccessClosesDialog(t *testing.T) {
	fake := &fakeAPI{}
	app := newTestApp(t, fake)

	resp := postJSON(t, app, "/console/events/"+uuid.NewString()+"/book",
		`{"telegram_id": 7, "places_count": 2}`)
	out := decodeAction(t, resp)

	if out.Data.CloseModal != "bookModal" {
		t.Errorf("close_modal = %q, want bookModal", out.Data.CloseModal)
	}
	// the public refresh hides bookings
	if strings.Contains(out.Data.HTML, "Bookings:") {
		t.Error("post-booking refresh should use the public view")
	}
}

func TestCancelDeclinedPrompt(t *testing.T) {
	fake := &fakeAPI{}
	app := newTestApp(t, fake)

	resp := postJSON(t, app, "/console/events/"+uuid.NewString()+"/cancel", `{"confirm": "no"}`)
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d, want 204", resp.StatusCode)
	}

	list, _, _, _, cancel := fake.snapshotCalls()
	if cancel != 0 || list != 0 {
		t.Errorf("declined prompt must cause no traffic (cancel=%d list=%d)", cancel, list)
	}
}

func TestCancelConfirmedRefreshesAdminView(t *testing.T) {
	fake := &fakeAPI{}
	app := newTestApp(t, fake)

	resp := postJSON(t, app, "/console/events/"+uuid.NewString()+"/cancel", `{"confirm": "yes"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	_, _, _, _, cancel := fake.snapshotCalls()
	if cancel != 1 {
		t.Errorf("cancel calls = %d, want 1", cancel)
	}
}

func TestConfirmBookingClosesDialog(t *testing.T) {
	fake := &fakeAPI{}
	app := newTestApp(t, fake)

	resp := postJSON(t, app, "/console/events/"+uuid.NewString()+"/confirm", "")
	out := decodeAction(t, resp)

	if out.Data.CloseModal != "confirmModal" {
		t.Errorf("close_modal = %q, want confirmModal", out.Data.CloseModal)
	}

	_, _, _, confirm, _ := fake.snapshotCalls()
	if confirm != 1 {
		t.Errorf("confirm calls = %d, want 1", confirm)
	}
}

func TestCreateSucceedsButRefreshFails(t *testing.T) {
	fake := &fakeAPI{listFail: true}
	app := newTestApp(t, fake)

	resp := postJSON(t, app, "/console/events",
		`{"title": "Talk", "event_at": "2025-01-01T10:00", "total_seats": 50}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200: the action itself succeeded", resp.StatusCode)
	}

	out := decodeAction(t, resp)
	if out.Data.Message == "" {
		t.Error("success notification must still be delivered")
	}
	if !out.Data.RefreshFailed {
		t.Error("response should flag the failed refresh")
	}
	if !strings.Contains(out.Data.HTML, "Failed to load events") {
		t.Error("fragment should be the inline error, not cards")
	}
	if strings.Contains(out.Data.HTML, "event-card") {
		t.Error("no stale cards may survive a failed refresh")
	}
}

func TestInvalidEventIDParam(t *testing.T) {
	fake := &fakeAPI{}
	app := newTestApp(t, fake)

	resp := postJSON(t, app, "/console/events/not-a-uuid/confirm", "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}

	_, _, _, confirm, _ := fake.snapshotCalls()
	if confirm != 0 {
		t.Error("invalid id must not reach the API")
	}
}

func TestEventQR(t *testing.T) {
	fake := &fakeAPI{}
	app := newTestApp(t, fake)

	req := httptest.NewRequest(http.MethodGet, "/console/events/"+uuid.NewString()+"/qr", nil)
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("qr request failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}
}

func TestRenderEventsFragment(t *testing.T) {
	fake := &fakeAPI{}
	app := newTestApp(t, fake)

	req := httptest.NewRequest(http.MethodGet, "/console/events?bookings=1", nil)
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("fragment request failed: %v", err)
	}

	raw, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(raw), "Talk") {
		t.Error("fragment should contain the fetched event")
	}
}
