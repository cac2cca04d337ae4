package roam

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
)

// fakeBlock is a block stored by the in-memory graph.
type fakeBlock struct {
	text     string
	uid      string
	editTime int64
}

// fakeGraph is an in-memory stand-in for the Roam service. It interprets
// the gateway's query and write requests just far enough for round-trip
// tests: pages by title, flat block lists, monotonically increasing edit
// times.
type fakeGraph struct {
	mu            sync.Mutex
	pages         map[string]string // title -> uid
	uids          map[string]bool
	blocks        map[string][]fakeBlock // parent uid -> blocks in insert order
	createdPages  []createPageRequest
	createdBlocks []createBlockRequest
	clock         int64
}

func newFakeGraph() *fakeGraph {
	return &fakeGraph{
		pages:  make(map[string]string),
		uids:   make(map[string]bool),
		blocks: make(map[string][]fakeBlock),
		clock:  1000,
	}
}

func (g *fakeGraph) addPage(title, uid string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pages[title] = uid
	g.uids[uid] = true
}

func (g *fakeGraph) transport() *stubTransport {
	return &stubTransport{handler: g.handle}
}

func (g *fakeGraph) handle(req *http.Request, body []byte) (*http.Response, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch {
	case strings.HasSuffix(req.URL.Path, "/q"):
		return g.handleQuery(body)
	case strings.HasSuffix(req.URL.Path, "/write"):
		return g.handleWrite(body)
	default:
		return jsonResponse(http.StatusNotFound, `{"message": "unknown endpoint"}`)
	}
}

func (g *fakeGraph) handleQuery(body []byte) (*http.Response, error) {
	var q queryRequest
	if err := json.Unmarshal(body, &q); err != nil {
		return jsonResponse(http.StatusBadRequest, `{"message": "bad query"}`)
	}

	arg := ""
	if len(q.Args) > 0 {
		arg, _ = q.Args[0].(string)
	}

	var rows [][]any
	switch {
	case strings.Contains(q.Query, ":block/refs"):
		// Reference queries are exercised against canned transports; the
		// fake graph has no link index.

	case strings.Contains(q.Query, ":block/page"):
		if uid, ok := g.pages[arg]; ok {
			for _, b := range g.blocks[uid] {
				rows = append(rows, []any{map[string]any{
					":block/string": b.text,
					":block/uid":    b.uid,
					":edit/time":    b.editTime,
				}, b.editTime})
			}
		}

	case strings.Contains(q.Query, ":node/title"):
		if uid, ok := g.pages[arg]; ok {
			rows = append(rows, []any{uid})
		}

	default: // entity lookup by :block/uid
		if g.uids[arg] {
			rows = append(rows, []any{1})
		}
	}

	data, err := json.Marshal(map[string]any{"result": rows})
	if err != nil {
		return jsonResponse(http.StatusInternalServerError, `{"message": "marshal failure"}`)
	}
	return jsonResponse(http.StatusOK, string(data))
}

func (g *fakeGraph) handleWrite(body []byte) (*http.Response, error) {
	var probe struct {
		Action string `json:"action"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return jsonResponse(http.StatusBadRequest, `{"message": "bad write"}`)
	}

	switch probe.Action {
	case "create-page":
		var req createPageRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return jsonResponse(http.StatusBadRequest, `{"message": "bad create-page"}`)
		}
		g.createdPages = append(g.createdPages, req)
		g.pages[req.Page.Title] = req.Page.UID
		g.uids[req.Page.UID] = true

	case "create-block":
		var req createBlockRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return jsonResponse(http.StatusBadRequest, `{"message": "bad create-block"}`)
		}
		if !g.uids[req.Location.ParentUID] {
			return jsonResponse(http.StatusBadRequest, fmt.Sprintf(`{"message": "unknown parent %s"}`, req.Location.ParentUID))
		}
		g.createdBlocks = append(g.createdBlocks, req)
		g.clock++
		g.blocks[req.Location.ParentUID] = append(g.blocks[req.Location.ParentUID], fakeBlock{
			text:     req.Block.String,
			uid:      req.Block.UID,
			editTime: g.clock,
		})

	default:
		return jsonResponse(http.StatusBadRequest, `{"message": "unknown action"}`)
	}

	// The real API answers write actions with an empty body.
	return jsonResponse(http.StatusOK, "")
}
