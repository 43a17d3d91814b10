package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	splittyHttp "github.com/MrJamesThe3rd/splitty/internal/http"
	billHandler "github.com/MrJamesThe3rd/splitty/internal/http/bill"
	friendHandler "github.com/MrJamesThe3rd/splitty/internal/http/friend"
	sessionHandler "github.com/MrJamesThe3rd/splitty/internal/http/session"
	"github.com/MrJamesThe3rd/splitty/internal/roster"
	"github.com/MrJamesThe3rd/splitty/internal/roster/store"
	"github.com/MrJamesThe3rd/splitty/internal/session"
)

type testServer struct {
	handler http.Handler
	friends []*roster.Friend
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	friends := []*roster.Friend{
		{ID: uuid.New(), Name: "Clark", Image: "https://i.pravatar.cc/48?u=1", Balance: -700},
		{ID: uuid.New(), Name: "Sarah", Image: "https://i.pravatar.cc/48?u=2", Balance: 2000},
	}

	s := session.New(roster.NewService(store.New()))
	require.NoError(t, s.Seed(context.Background(), friends))

	h := splittyHttp.New(
		[]string{"*"},
		sessionHandler.NewHandler(s),
		friendHandler.NewHandler(s, roster.DefaultAvatarURL),
		billHandler.NewHandler(s),
	)

	return &testServer{handler: h, friends: friends}
}

func (ts *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))

	return v
}

type friendJSON struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Balance  string `json:"balance"`
	Standing string `json:"standing"`
	Summary  string `json:"summary"`
	Selected bool   `json:"selected"`
}

type stateJSON struct {
	Mode        string       `json:"mode"`
	AddFormOpen bool         `json:"add_form_open"`
	SelectedID  string       `json:"selected_id"`
	Friends     []friendJSON `json:"friends"`
}

func TestHealthAndMetrics(t *testing.T) {
	ts := newTestServer(t)

	assert.Equal(t, http.StatusNoContent, ts.do(t, http.MethodGet, "/healthz", "").Code)

	rec := ts.do(t, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "splitty_roster_size")
}

func TestFriends_ListAndCreate(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/friends", "")
	require.Equal(t, http.StatusOK, rec.Code)

	list := decode[[]friendJSON](t, rec)
	require.Len(t, list, 2)
	assert.Equal(t, "You owe Clark 7.00", list[0].Summary)
	assert.Equal(t, "owed", list[1].Standing)

	rec = ts.do(t, http.MethodPost, "/api/v1/friends", `{"name":"Dana"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	created := decode[friendJSON](t, rec)
	assert.Equal(t, "Dana", created.Name)
	assert.Equal(t, "0.00", created.Balance)
	assert.Equal(t, roster.DefaultAvatarURL+"?u="+created.ID, created.Image)

	rec = ts.do(t, http.MethodGet, "/api/v1/friends/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Dana", decode[friendJSON](t, rec).Name)

	rec = ts.do(t, http.MethodGet, "/api/v1/friends", "")
	assert.Len(t, decode[[]friendJSON](t, rec), 3)
}

func TestFriends_CreateRejected(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "EmptyName", body: `{"name":""}`, want: http.StatusUnprocessableEntity},
		{name: "EmptyImage", body: `{"name":"Dana","image":""}`, want: http.StatusUnprocessableEntity},
		{name: "BadJSON", body: `{`, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)

			rec := ts.do(t, http.MethodPost, "/api/v1/friends", tt.body)
			assert.Equal(t, tt.want, rec.Code)

			rec = ts.do(t, http.MethodGet, "/api/v1/friends", "")
			assert.Len(t, decode[[]friendJSON](t, rec), 2)
		})
	}
}

func TestFriends_GetErrors(t *testing.T) {
	ts := newTestServer(t)

	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodGet, "/api/v1/friends/nope", "").Code)
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodGet, "/api/v1/friends/"+uuid.NewString(), "").Code)
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodPost, "/api/v1/friends/"+uuid.NewString()+"/select", "").Code)
}

func TestSelectAndSplit(t *testing.T) {
	ts := newTestServer(t)
	sarah := ts.friends[1].ID.String()

	rec := ts.do(t, http.MethodPost, "/api/v1/friends/"+sarah+"/select", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/state", "")
	state := decode[stateJSON](t, rec)
	assert.Equal(t, "split_bill", state.Mode)
	assert.Equal(t, sarah, state.SelectedID)
	assert.True(t, state.Friends[1].Selected)

	rec = ts.do(t, http.MethodPost, "/api/v1/bills/preview", `{"total":"100","paid_by_user":"40","payer":"friend"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"friend_share":"60.00"`)
	assert.Contains(t, rec.Body.String(), `"delta":"-40.00"`)

	rec = ts.do(t, http.MethodPost, "/api/v1/bills", `{"total":"100","paid_by_user":"40","payer":"user"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"balance":"80.00"`)
	assert.Contains(t, rec.Body.String(), `"delta":"60.00"`)

	rec = ts.do(t, http.MethodGet, "/api/v1/state", "")
	state = decode[stateJSON](t, rec)
	assert.Equal(t, "list", state.Mode)
	assert.Empty(t, state.SelectedID)
	assert.Equal(t, "-7.00", state.Friends[0].Balance)
	assert.Equal(t, "80.00", state.Friends[1].Balance)
}

func TestSplit_Errors(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/bills", `{"total":"100","paid_by_user":"40"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	_ = ts.do(t, http.MethodPost, "/api/v1/friends/"+ts.friends[0].ID.String()+"/select", "")

	tests := []struct {
		name string
		body string
	}{
		{name: "MissingTotal", body: `{"paid_by_user":"40"}`},
		{name: "PaidAboveTotal", body: `{"total":"10","paid_by_user":"40"}`},
		{name: "UnknownPayer", body: `{"total":"100","paid_by_user":"40","payer":"bank"}`},
		{name: "BadAmount", body: `{"total":"ten","paid_by_user":"4"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, http.MethodPost, "/api/v1/bills", tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		})
	}

	rec = ts.do(t, http.MethodGet, "/api/v1/state", "")
	state := decode[stateJSON](t, rec)
	assert.Equal(t, ts.friends[0].ID.String(), state.SelectedID, "rejected splits keep the selection")
}

func TestBills_RequireJSON(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bills", strings.NewReader("total=1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestAddFormToggle(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/add-form/toggle", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"add_form_open":true}`, rec.Body.String())

	_ = ts.do(t, http.MethodPost, "/api/v1/friends/"+ts.friends[0].ID.String()+"/select", "")

	rec = ts.do(t, http.MethodGet, "/api/v1/state", "")
	state := decode[stateJSON](t, rec)
	assert.False(t, state.AddFormOpen, "selecting closes the add form")
}
