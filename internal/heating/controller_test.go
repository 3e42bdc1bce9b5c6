package heating

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/hheat/hheat/internal/hive"
	"github.com/hheat/hheat/internal/session"
	"github.com/hheat/hheat/internal/tokenstore"
)

type fakeSession struct {
	listing hive.Listing
	err     error
	token   string
}

func (f *fakeSession) Products(ctx context.Context) (hive.Listing, error) {
	return f.listing, f.err
}

func (f *fakeSession) Token() string { return f.token }

type fakeUpdater struct {
	calls    int
	token    string
	deviceID string
	update   hive.HeatingUpdate
	err      error
}

func (f *fakeUpdater) UpdateHeating(ctx context.Context, token string, deviceID string, update hive.HeatingUpdate) error {
	f.calls++
	f.token, f.deviceID, f.update = token, deviceID, update
	return f.err
}

func heatingListing(t *testing.T, mode hive.Mode) hive.Listing {
	t.Helper()
	raw := fmt.Sprintf(`[{"id":"hub","type":"hub"},{"id":"heat-1","type":"heating","state":{"mode":%q,"target":21},"props":{"temperature":19.5,"working":true}}]`, mode)
	return mustListing(t, raw)
}

func mustListing(t *testing.T, raw string) hive.Listing {
	t.Helper()
	client := hive.NewClientWithURL(serveBody(t, raw))
	listing, err := client.Products(context.Background(), "tok")
	if err != nil {
		t.Fatalf("failed to build listing: %v", err)
	}
	return listing
}

func serveBody(t *testing.T, body string) string {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server.URL
}

func TestRun_Status(t *testing.T) {
	var out bytes.Buffer
	updater := &fakeUpdater{}
	c := &Controller{
		Session: &fakeSession{listing: heatingListing(t, hive.ModeManual), token: "tok"},
		Updater: updater,
		Out:     &out,
	}

	result, err := c.Run(context.Background(), Command{Action: ActionStatus})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if out.String() != FormatStatus(result.Device) {
		t.Errorf("output = %q", out.String())
	}
	if result.Update != nil {
		t.Error("status should not report an update")
	}
	if updater.calls != 0 {
		t.Errorf("updater calls = %d, want 0", updater.calls)
	}
}

func TestRun_SetMode(t *testing.T) {
	var out bytes.Buffer
	updater := &fakeUpdater{}
	c := &Controller{
		Session: &fakeSession{listing: heatingListing(t, hive.ModeSchedule), token: "tok-9"},
		Updater: updater,
		Out:     &out,
	}

	cmd, err := ParseCommand([]string{"manual"})
	if err != nil {
		t.Fatal(err)
	}
	result, err := c.Run(context.Background(), cmd)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if updater.calls != 1 {
		t.Fatalf("updater calls = %d, want 1", updater.calls)
	}
	if updater.token != "tok-9" || updater.deviceID != "heat-1" {
		t.Errorf("update sent with token %s to %s", updater.token, updater.deviceID)
	}
	if updater.update.Mode != hive.ModeManual || updater.update.Target != nil {
		t.Errorf("update = %+v, want mode MANUAL only", updater.update)
	}
	if result.Update == nil || result.Update.Mode != hive.ModeManual {
		t.Errorf("result update = %+v", result.Update)
	}
	if out.Len() != 0 {
		t.Errorf("mutations should print nothing, got %q", out.String())
	}
}

func TestRun_SetTarget(t *testing.T) {
	tests := []struct {
		current  hive.Mode
		wantMode hive.Mode
	}{
		{hive.ModeOff, hive.ModeManual},
		{hive.ModeManual, ""},
		{hive.ModeSchedule, ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.current), func(t *testing.T) {
			updater := &fakeUpdater{}
			c := &Controller{
				Session: &fakeSession{listing: heatingListing(t, tt.current), token: "tok"},
				Updater: updater,
				Out:     io.Discard,
			}

			cmd, err := ParseCommand([]string{"19.5"})
			if err != nil {
				t.Fatal(err)
			}
			if _, err := c.Run(context.Background(), cmd); err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if updater.update.Target == nil || *updater.update.Target != 19.5 {
				t.Errorf("Target = %v, want 19.5", updater.update.Target)
			}
			if updater.update.Mode != tt.wantMode {
				t.Errorf("Mode = %q, want %q", updater.update.Mode, tt.wantMode)
			}
		})
	}
}

func TestRun_DeviceNotFound(t *testing.T) {
	updater := &fakeUpdater{}
	c := &Controller{
		Session: &fakeSession{listing: mustListing(t, `[{"id":"hub","type":"hub"}]`)},
		Updater: updater,
		Out:     io.Discard,
	}

	_, err := c.Run(context.Background(), Command{Action: ActionSetMode, Mode: hive.ModeOff})
	if !errors.Is(err, hive.ErrDeviceNotFound) {
		t.Errorf("Run() error = %v, want ErrDeviceNotFound", err)
	}
	if updater.calls != 0 {
		t.Errorf("updater calls = %d, want 0", updater.calls)
	}
}

func TestRun_SessionFailure(t *testing.T) {
	sessionErr := errors.New("login failed")
	c := &Controller{Session: &fakeSession{err: sessionErr}, Updater: &fakeUpdater{}, Out: io.Discard}

	if _, err := c.Run(context.Background(), Command{}); !errors.Is(err, sessionErr) {
		t.Errorf("Run() error = %v, want session error", err)
	}
}

func TestRun_MutationFailureNotRetried(t *testing.T) {
	updateErr := hive.NewHTTPError(http.StatusBadRequest, "bad request")
	updater := &fakeUpdater{err: updateErr}
	c := &Controller{
		Session: &fakeSession{listing: heatingListing(t, hive.ModeManual), token: "tok"},
		Updater: updater,
		Out:     io.Discard,
	}

	_, err := c.Run(context.Background(), Command{Action: ActionSetMode, Mode: hive.ModeOff})

	var me *MutationError
	if !errors.As(err, &me) {
		t.Fatalf("Run() error = %v, want *MutationError", err)
	}
	if !errors.Is(err, updateErr) {
		t.Error("MutationError should wrap the client error")
	}
	if updater.calls != 1 {
		t.Errorf("updater calls = %d, want exactly 1", updater.calls)
	}
}

// TestRun_EndToEnd drives session, client and controller against one server.
func TestRun_EndToEnd(t *testing.T) {
	var mutations []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/global/login":
			w.Write([]byte(`{"token":"fresh"}`))
		case "/products":
			w.Write([]byte(`[{"id":"heat-1","type":"heating","state":{"mode":"OFF","target":7},"props":{"temperature":16.0,"working":false}}]`))
		case "/nodes/heating/heat-1":
			if r.Header.Get("Authorization") != "fresh" {
				t.Errorf("mutation sent with token %q", r.Header.Get("Authorization"))
			}
			body, _ := io.ReadAll(r.Body)
			mutations = append(mutations, string(body))
			w.Write([]byte(`{}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := hive.NewClientWithURL(server.URL)
	store := tokenstore.New(filepath.Join(t.TempDir(), "token"))
	mgr := session.NewManager(client, store, hive.Credentials{Username: "u", Password: "p"})

	c := &Controller{Session: mgr, Updater: client, Out: io.Discard}
	cmd, err := ParseCommand([]string{"20"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Run(context.Background(), cmd); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(mutations) != 1 || mutations[0] != `{"target":20,"mode":"MANUAL"}` {
		t.Errorf("mutations = %v", mutations)
	}
}
