package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/dataset"
	"github.com/YuhaoZhang00/shanghai-metro-guess-game-solver/internal/graph"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	g, err := graph.New([]dataset.Station{
		{ID: 1, Name: "人民广场", Lines: []string{"1号线", "2号线"}, Adjacent: []int{2, 3}, District: "黄浦区", Year: 1995},
		{ID: 2, Name: "新闸路", Lines: []string{"1号线"}, Adjacent: []int{1}, District: "静安区", Year: 1995},
		{ID: 3, Name: "南京东路", Lines: []string{"2号线", "10号线"}, Adjacent: []int{1, 4}, District: "黄浦区", Year: 2000},
		{ID: 4, Name: "陆家嘴", Lines: []string{"2号线", "14号线"}, Adjacent: []int{3}, District: "浦东新区", Year: 1999},
	})
	if err != nil {
		t.Fatalf("failed to build graph: %v", err)
	}

	ts := httptest.NewServer(New(g).Router([]string{"*"}))
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, wantStatus int, out interface{}) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		t.Fatalf("GET %s status = %d, want %d", url, resp.StatusCode, wantStatus)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("failed to decode response from %s: %v", url, err)
		}
	}
}

func postJSON(t *testing.T, url string, body interface{}, wantStatus int, out interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	resp, err := http.Post(url, "application/json", &buf)
	if err != nil {
		t.Fatalf("POST %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		t.Fatalf("POST %s status = %d, want %d", url, resp.StatusCode, wantStatus)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("failed to decode response from %s: %v", url, err)
		}
	}
}

func TestHealth(t *testing.T) {
	ts := testServer(t)

	var health struct {
		Status   string `json:"status"`
		Stations int    `json:"stations"`
	}
	getJSON(t, ts.URL+"/health", http.StatusOK, &health)

	if health.Status != "ok" {
		t.Errorf("status = %q, want ok", health.Status)
	}
	if health.Stations != 4 {
		t.Errorf("stations = %d, want 4", health.Stations)
	}
}

func TestStationEndpoints(t *testing.T) {
	ts := testServer(t)

	var list StationListResponse
	getJSON(t, ts.URL+"/api/stations", http.StatusOK, &list)
	if list.Count != 4 || len(list.Stations) != 4 {
		t.Errorf("station list count = %d, want 4", list.Count)
	}

	var station dataset.Station
	getJSON(t, ts.URL+"/api/stations/人民广场", http.StatusOK, &station)
	if station.ID != 1 || station.District != "黄浦区" {
		t.Errorf("station = %+v", station)
	}

	getJSON(t, ts.URL+"/api/stations/不存在的站", http.StatusNotFound, nil)

	var lineStations LineStationsResponse
	getJSON(t, ts.URL+"/api/lines/2号线/stations", http.StatusOK, &lineStations)
	if lineStations.Count != 3 {
		t.Errorf("2号线 count = %d, want 3", lineStations.Count)
	}

	getJSON(t, ts.URL+"/api/lines/99号线/stations", http.StatusOK, &lineStations)
	if lineStations.Count != 0 {
		t.Errorf("unknown line count = %d, want 0", lineStations.Count)
	}
}

func TestPlaySessionLifecycle(t *testing.T) {
	ts := testServer(t)

	var created SessionResponse
	postJSON(t, ts.URL+"/api/sessions", nil, http.StatusCreated, &created)
	if created.SessionID == "" {
		t.Fatal("created session has no id")
	}
	if created.Remaining != 4 || created.Guesses != 0 {
		t.Errorf("fresh session: %+v", created)
	}

	base := ts.URL + "/api/sessions/" + created.SessionID

	// The answer endpoint reveals the target, which makes the winning
	// guess deterministic for the rest of the test.
	var target dataset.Station
	getJSON(t, base+"/answer", http.StatusOK, &target)
	if target.Name == "" {
		t.Fatal("answer endpoint returned no station")
	}

	var guess GuessResponse
	postJSON(t, base+"/guesses", GuessRequest{Name: target.Name}, http.StatusOK, &guess)
	if !guess.Correct {
		t.Errorf("guessing the revealed answer was not correct: %+v", guess)
	}
	if guess.GuessNumber != 1 {
		t.Errorf("GuessNumber = %d, want 1", guess.GuessNumber)
	}
	if guess.MinStations != 0 || guess.MinTransfer != 0 {
		t.Errorf("distances = (%d, %d), want (0, 0)", guess.MinStations, guess.MinTransfer)
	}
	if !guess.District || guess.Line != "every" || guess.Year != 0 {
		t.Errorf("pattern = (%v, %s, %d), want exact match", guess.District, guess.Line, guess.Year)
	}

	var state SessionResponse
	getJSON(t, base, http.StatusOK, &state)
	if !state.Won || state.Guesses != 1 {
		t.Errorf("state after winning: %+v", state)
	}

	var reset SessionResponse
	postJSON(t, base+"/reset", nil, http.StatusOK, &reset)
	if reset.Guesses != 0 || reset.Won || reset.Remaining != 4 {
		t.Errorf("state after reset: %+v", reset)
	}
}

func TestGuessUnknownStationLeavesSessionAlone(t *testing.T) {
	ts := testServer(t)

	var created SessionResponse
	postJSON(t, ts.URL+"/api/sessions", nil, http.StatusCreated, &created)
	base := ts.URL + "/api/sessions/" + created.SessionID

	postJSON(t, base+"/guesses", GuessRequest{Name: "不存在的站"}, http.StatusNotFound, nil)

	var state SessionResponse
	getJSON(t, base, http.StatusOK, &state)
	if state.Guesses != 0 || state.Remaining != 4 {
		t.Errorf("session changed by a not-found guess: %+v", state)
	}
}

func TestSessionNotFound(t *testing.T) {
	ts := testServer(t)
	getJSON(t, ts.URL+"/api/sessions/no-such-id", http.StatusNotFound, nil)
	postJSON(t, ts.URL+"/api/sessions/no-such-id/guesses", GuessRequest{Name: "人民广场"}, http.StatusNotFound, nil)
}

func TestSolverSessionLifecycle(t *testing.T) {
	ts := testServer(t)

	var created SolverResponse
	postJSON(t, ts.URL+"/api/solver/sessions", nil, http.StatusCreated, &created)
	if created.Count != 4 {
		t.Fatalf("fresh solver count = %d, want 4", created.Count)
	}

	base := ts.URL + "/api/solver/sessions/" + created.SessionID

	var narrowed SolverResponse
	postJSON(t, base+"/constraints", ConstraintRequest{
		Name: "新闸路", District: false, Line: "none", Year: 1,
	}, http.StatusOK, &narrowed)
	if narrowed.Count != 2 {
		t.Errorf("count after first constraint = %d, want 2", narrowed.Count)
	}
	if len(narrowed.History) != 1 {
		t.Errorf("history = %d entries, want 1", len(narrowed.History))
	}

	postJSON(t, base+"/constraints", ConstraintRequest{
		Name: "南京东路", District: false, Line: "some", Year: -1,
	}, http.StatusOK, &narrowed)
	if narrowed.Count != 1 || narrowed.Possible[0].Name != "陆家嘴" {
		t.Errorf("final possible = %+v", narrowed.Possible)
	}

	var reset SolverResponse
	postJSON(t, base+"/reset", nil, http.StatusOK, &reset)
	if reset.Count != 4 || len(reset.History) != 0 {
		t.Errorf("state after reset: %+v", reset)
	}
}

func TestSolverRejectsInvalidConstraint(t *testing.T) {
	ts := testServer(t)

	var created SolverResponse
	postJSON(t, ts.URL+"/api/solver/sessions", nil, http.StatusCreated, &created)
	base := ts.URL + "/api/solver/sessions/" + created.SessionID

	postJSON(t, base+"/constraints", ConstraintRequest{
		Name: "新闸路", Line: "most", Year: 0,
	}, http.StatusBadRequest, nil)
	postJSON(t, base+"/constraints", ConstraintRequest{
		Name: "新闸路", Line: "some", Year: 5,
	}, http.StatusBadRequest, nil)
	postJSON(t, base+"/constraints", ConstraintRequest{
		Name: "不存在的站", Line: "some", Year: 0,
	}, http.StatusNotFound, nil)
}
