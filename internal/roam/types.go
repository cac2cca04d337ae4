package roam

import (
	"encoding/json"
	"sort"

	"github.com/roamkit/roam-mcp/internal/roamerr"
)

// BlockContent is one rendered block tree returned by read operations.
// EditTime is the Roam edit timestamp in Unix milliseconds.
type BlockContent struct {
	Content  string `json:"content"`
	EditTime int64  `json:"timestamp"`
}

// ReferencePage is one page of reference results. NextCursor is set when
// more results exist; passing it back narrows the next query to older edits.
type ReferencePage struct {
	Results    []BlockContent `json:"result"`
	NextCursor *int64         `json:"next_cursor,omitempty"`
}

// pulledBlock mirrors the Roam pull-result shape. Keys carry the Datomic
// attribute names verbatim.
type pulledBlock struct {
	String   string        `json:":block/string"`
	UID      string        `json:":block/uid"`
	EditTime int64         `json:":edit/time"`
	Order    int           `json:":block/order"`
	Children []pulledBlock `json:":block/children"`
}

// pulledRow is one result row of a pull query: the pulled block followed by
// the edit-time the :where clause bound.
type pulledRow struct {
	Block pulledBlock
	Time  int64
}

// decodePulledRows decodes the heterogeneous [block, time] rows of a pull
// query result. Rows that cannot be decoded make the whole payload
// unusable, which is an upstream error.
func decodePulledRows(rows []json.RawMessage) ([]pulledRow, error) {
	out := make([]pulledRow, 0, len(rows))
	for _, raw := range rows {
		var cells []json.RawMessage
		if err := json.Unmarshal(raw, &cells); err != nil {
			return nil, roamerr.Upstreamf("decoding query result row: %v", err)
		}
		if len(cells) == 0 {
			continue
		}

		var row pulledRow
		if err := json.Unmarshal(cells[0], &row.Block); err != nil {
			return nil, roamerr.Upstreamf("decoding pulled block: %v", err)
		}
		if len(cells) > 1 {
			if err := json.Unmarshal(cells[1], &row.Time); err != nil {
				return nil, roamerr.Upstreamf("decoding edit time: %v", err)
			}
		}
		out = append(out, row)
	}
	return out, nil
}

// decodeScalarRows decodes rows whose single cell is a string, e.g. the
// page-UID lookup.
func decodeScalarRows(rows []json.RawMessage) ([]string, error) {
	out := make([]string, 0, len(rows))
	for _, raw := range rows {
		var cells []string
		if err := json.Unmarshal(raw, &cells); err != nil {
			return nil, roamerr.Upstreamf("decoding query result row: %v", err)
		}
		if len(cells) > 0 {
			out = append(out, cells[0])
		}
	}
	return out, nil
}

// sortByEditTimeDesc orders rows newest-edited first.
func sortByEditTimeDesc(rows []pulledRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Time > rows[j].Time
	})
}
